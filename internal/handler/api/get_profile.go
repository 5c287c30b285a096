package api

import (
	"errors"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/profile"
)

// GetProfileHandler returns the authenticated user's own profile.
func GetProfileHandler(svc port.ProfileGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}

		out, err := svc.GetProfile(r.Context(), userID)
		if err != nil {
			if errors.Is(err, profile.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "User not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get profile", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully returned profile of user #%s", userID)
	}
}
