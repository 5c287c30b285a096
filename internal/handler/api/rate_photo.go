package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/rating"
	"github.com/mlegrand/photoshare-go/internal/validation"
)

type RatePhotoRequest struct {
	Value int `json:"value" validate:"required,min=1,max=5"`
}

// RatePhotoHandler submits or replaces the caller's rating of a photo.
func RatePhotoHandler(svc port.PhotoRater) http.HandlerFunc {
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

		var req RatePhotoRequest
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

		err := svc.RatePhoto(r.Context(), port.RatePhotoInput{
			PhotoID: photoID,
			UserID:  userID,
			Value:   req.Value,
		})
		if err != nil {
			switch {
			case errors.Is(err, rating.ErrPhotoNotFound):
				WriteError(w, http.StatusNotFound, "Photo not found", nil)
			case errors.Is(err, rating.ErrInvalidValue):
				WriteError(w, http.StatusBadRequest, "Rating must be between 1 and 5", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not rate photo", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, MessageResponse{Message: "Rating saved"})
		log.Printf("✅  Successfully rated photo #%s", photoID)
	}
}
