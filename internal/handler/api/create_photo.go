package api

import (
	"encoding/json"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/validation"
)

type CreatePhotoRequest struct {
	Title        string   `json:"title" validate:"required,max=200"`
	Caption      string   `json:"caption"`
	Location     string   `json:"location"`
	People       []string `json:"people"`
	MediaURL     string   `json:"imageUrl" validate:"required,url"`
	ThumbnailURL string   `json:"thumbnailUrl" validate:"omitempty,url"`
}

// CreatePhotoHandler records an already-uploaded media file as a post.
// Creator role only.
func CreatePhotoHandler(svc port.PhotoCreator) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		if role, _ := api_context.AuthRoleFromContext(r.Context()); role != string(model.RoleCreator) {
			WriteError(w, http.StatusForbidden, "Only creators can publish posts", nil)
			return
		}

		var req CreatePhotoRequest
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

		out, err := svc.CreatePhoto(r.Context(), port.CreatePhotoInput{
			CreatorID:    userID,
			Title:        req.Title,
			Caption:      req.Caption,
			Location:     req.Location,
			People:       req.People,
			MediaURL:     req.MediaURL,
			ThumbnailURL: req.ThumbnailURL,
		})
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not create photo", err)
			return
		}

		RespondJSON(w, http.StatusCreated, out)
		log.Printf("✅  Successfully created photo #%s", out.ID)
	}
}
