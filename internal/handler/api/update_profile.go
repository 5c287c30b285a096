package api

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/profile"
)

type UpdateProfileRequest struct {
	Username    *string `json:"username"`
	DisplayName *string `json:"displayName"`
	Bio         *string `json:"bio"`
	AvatarURL   *string `json:"avatarUrl"`
	Website     *string `json:"website"`
}

type UpdateProfileResponse struct {
	Message string              `json:"message"`
	Profile *port.ProfileOutput `json:"profile"`
}

// UpdateProfileHandler applies a partial update to the authenticated user's
// own profile.
func UpdateProfileHandler(svc port.ProfileUpdater) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		var req UpdateProfileRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			WriteError(w, http.StatusBadRequest, "invalid request payload", err)
			return
		}

		out, err := svc.UpdateProfile(r.Context(), port.UpdateProfileInput{
			UserID: userID,
			Patch: model.ProfilePatch{
				Username:    req.Username,
				DisplayName: req.DisplayName,
				Bio:         req.Bio,
				AvatarURL:   req.AvatarURL,
				Website:     req.Website,
			},
		})
		if err != nil {
			switch {
			case errors.Is(err, profile.ErrNotFound):
				WriteError(w, http.StatusNotFound, "User not found", nil)
			case errors.Is(err, profile.ErrEmptyPatch):
				WriteError(w, http.StatusBadRequest, "No fields to update", nil)
			case errors.Is(err, profile.ErrInvalidUsername):
				WriteError(w, http.StatusBadRequest, "Username must be 3-30 characters (letters, digits, underscore)", nil)
			case errors.Is(err, profile.ErrUsernameTaken):
				WriteError(w, http.StatusBadRequest, "Username is already taken", nil)
			case errors.Is(err, profile.ErrBioTooLong):
				WriteError(w, http.StatusBadRequest, "Bio must be 150 characters or fewer", nil)
			default:
				WriteError(w, http.StatusInternalServerError, "Could not update profile", err)
			}
			return
		}

		RespondJSON(w, http.StatusOK, UpdateProfileResponse{
			Message: "Profile updated successfully",
			Profile: out,
		})
		log.Printf("✅  Successfully updated profile of user #%s", userID)
	}
}
