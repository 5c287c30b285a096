package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/comment"
	"github.com/mlegrand/photoshare-go/internal/validation"
)

type UpdateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

// UpdateCommentHandler edits the caller's own comment.
func UpdateCommentHandler(svc port.CommentUpdater) http.HandlerFunc {
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

		var req UpdateCommentRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		if errs := validation.ValidateStruct(req); errs != nil {
			errsJSON, err := validation.ErrorsToJson(errs)
			if err != nil {
				WriteError(w, http.StatusInternalServerError, "failed to encode validation errors", err)
				return
			}
			RespondRawJSON(w, http.StatusBadRequest, []byte(errsJSON))
			log.Printf("❌  Validation failed: %s", errsJSON)
			return
		}

		out, err := svc.UpdateComment(r.Context(), port.UpdateCommentInput{
			ID:          id,
			RequesterID: userID,
			Text:        req.Text,
		})
		if err != nil {
			switch {
			case errors.Is(err, comment.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Comment not found", nil)
			case errors.Is(err, comment.ErrNotAuthor):
				WriteError(w, http.StatusForbidden, "You can only edit your own comments", nil)
			case errors.Is(err, comment.ErrEmptyText):
				WriteError(w, http.StatusBadRequest, "Comment text is required", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not update comment", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, CommentResponse{
			Message: "Comment updated",
			Comment: out,
		})
		log.Printf("✅  Successfully updated comment #%s", id)
	}
}
