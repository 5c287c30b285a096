package api

import (
	"log"
	"net/http"
	"strconv"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

// ListPhotosHandler serves the public, paginated photo feed.
func ListPhotosHandler(svc port.FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		in := port.ListPhotosInput{
			Page:   intQueryParam(r, "page", 1),
			Limit:  intQueryParam(r, "limit", 12),
			Search: r.URL.Query().Get("search"),
		}

		out, err := svc.ListPhotos(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list photos", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully listed %d photos (page %d)", len(out.Photos), out.Pagination.Page)
	}
}

// ListOwnPhotosHandler serves the authenticated creator's own posts.
func ListOwnPhotosHandler(svc port.FeedLister) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		userID, ok := api_context.AuthUserIDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusUnauthorized, "authentication required", nil)
			return
		}
		if role, _ := api_context.AuthRoleFromContext(r.Context()); role != string(model.RoleCreator) {
			WriteError(w, http.StatusForbidden, "Only creators can access this listing", nil)
			return
		}

		in := port.ListPhotosInput{
			Page:      intQueryParam(r, "page", 1),
			Limit:     intQueryParam(r, "limit", 12),
			Search:    r.URL.Query().Get("search"),
			CreatorID: &userID,
		}

		out, err := svc.ListPhotos(r.Context(), in)
		if err != nil {
			WriteError(w, http.StatusInternalServerError, "Could not list photos", err)
			return
		}

		RespondJSON(w, http.StatusOK, out)
		log.Printf("✅  Successfully listed %d photos for creator #%s", len(out.Photos), userID)
	}
}

// intQueryParam parses a positive integer query parameter, silently falling
// back to the default on absence or garbage.
func intQueryParam(r *http.Request, name string, def int) int {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def
	}
	v, err := strconv.Atoi(raw)
	if err != nil || v < 1 {
		return def
	}
	return v
}
