package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"hash/crc32"
	"log"
	"net/http"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/port"
	"github.com/mlegrand/photoshare-go/internal/usecase/photo"
)

// GetPhotoHandler serves the photo detail view, cached as rendered JSON.
func GetPhotoHandler(svc port.PhotoGetter, cache port.Cache) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := api_context.IDFromContext(r.Context())
		if !ok {
			WriteError(w, http.StatusBadRequest, "ID is required", nil)
			return
		}

		raw, err := renderPhotoDetails(r.Context(), svc, cache, id)
		if err != nil {
			if errors.Is(err, photo.ErrNotFound) {
				WriteError(w, http.StatusNotFound, "Photo not found", nil)
				return
			}
			WriteError(w, http.StatusInternalServerError, "Could not get photo details", err)
			return
		}

		etag := fmt.Sprintf(`"%08x"`, crc32.ChecksumIEEE(raw))
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", "public, max-age=300")
		if match := r.Header.Get("If-None-Match"); match == etag {
			w.WriteHeader(http.StatusNotModified)
			log.Printf("✅  Returning cached photo #%s", id)
			return
		}

		RespondRawJSON(w, http.StatusOK, raw)
		log.Printf("✅  Successfully returned details for photo #%s", id)
	}
}

func renderPhotoDetails(ctx context.Context, svc port.PhotoGetter, cache port.Cache, id db.UUID) ([]byte, error) {
	if raw, err := cache.GetPhotoDetails(ctx, id); err == nil && raw != nil {
		return raw, nil
	}

	out, err := svc.GetPhoto(ctx, id)
	if err != nil {
		return nil, err
	}
	raw, err := json.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("error marshalling photo #%s: %w", id, err)
	}
	cache.SetPhotoDetails(ctx, id, raw)
	return raw, nil
}
