package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/photo"
)

// DeletePhotoHandler removes the caller's own post together with its
// comments and ratings.
func DeletePhotoHandler(svc port.PhotoDeleter) http.HandlerFunc {
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

		if err := svc.DeletePhoto(r.Context(), port.DeletePhotoInput{ID: id, RequesterID: userID}); err != nil {
			switch {
			case errors.Is(err, photo.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Photo not found", nil)
			case errors.Is(err, photo.ErrNotOwner):
				WriteError(w, http.StatusForbidden, "You can only delete your own posts", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not delete photo", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, MessageResponse{Message: "Post deleted successfully"})
		log.Printf("✅  Successfully deleted photo #%s", id)
	}
}
