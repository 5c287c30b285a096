package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/comment"
)

// DeleteCommentHandler removes the caller's own comment.
func DeleteCommentHandler(svc port.CommentDeleter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		if err := svc.DeleteComment(r.Context(), port.DeleteCommentInput{ID: id, RequesterID: userID}); err != nil {
			switch {
			case errors.Is(err, comment.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Comment not found", nil)
			case errors.Is(err, comment.ErrNotAuthor):
				WriteError(w, http.StatusForbidden, "You can only delete your own comments", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not delete comment", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, MessageResponse{Message: "Comment deleted"})
		log.Printf("✅  Successfully deleted comment #%s", id)
	}
}
