package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/photo"
)

type UpdatePhotoRequest struct {
	Title    *string   `json:"title"`
	Caption  *string   `json:"caption"`
	Location *string   `json:"location"`
	People   *[]string `json:"people"`
}

type UpdatePhotoResponse struct {
	Message string                  `json:"message"`
	Photo   *port.UpdatePhotoOutput `json:"photo"`
}

// UpdatePhotoHandler applies a partial edit to the caller's own post.
func UpdatePhotoHandler(svc port.PhotoUpdater) http.HandlerFunc {
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

		var req UpdatePhotoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.UpdatePhoto(r.Context(), port.UpdatePhotoInput{
			ID:          id,
			RequesterID: userID,
			Title:       req.Title,
			Caption:     req.Caption,
			Location:    req.Location,
			People:      req.People,
		})
		if err != nil {
			switch {
			case errors.Is(err, photo.ErrNotFound):
				WriteError(w, http.StatusNotFound, "Photo not found", nil)
			case errors.Is(err, photo.ErrNotOwner):
				WriteError(w, http.StatusForbidden, "You can only edit your own posts", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not update photo", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, UpdatePhotoResponse{
			Message: "Post updated successfully",
			Photo:   out,
		})
		log.Printf("✅  Successfully updated photo #%s", id)
	}
}
