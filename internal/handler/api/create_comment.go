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

type CreateCommentRequest struct {
	Text string `json:"text" validate:"required"`
}

type CommentResponse struct {
	Message string              `json:"message"`
	Comment *port.CommentOutput `json:"comment"`
}

// CreateCommentHandler attaches a comment to the photo in the URL.
func CreateCommentHandler(svc port.CommentCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		photoID, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		var req CreateCommentRequest
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

		out, err := svc.CreateComment(r.Context(), port.CreateCommentInput{
			PhotoID: photoID,
			UserID:  userID,
			Text:    req.Text,
		})
		if err != nil {
			switch {
			case errors.Is(err, comment.ErrPhotoNotFound):
				WriteError(w, http.StatusNotFound, "Photo not found", nil)
			case errors.Is(err, comment.ErrEmptyText):
				WriteError(w, http.StatusBadRequest, "Comment text is required", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not create comment", err)
			}
			return
		}

		RespondJSON(w, http.StatusCreated, CommentResponse{
			Message: "Comment added",
			Comment: out,
		})
		log.Printf("✅  Successfully created comment #%s on photo #%s", out.ID, photoID)
	}
}
