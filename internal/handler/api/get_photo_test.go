package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/mlegrand/photoshare-go/internal/api_context"
	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/mock"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
	photoUC "github.com/mlegrand/photoshare-go/internal/usecase/photo"
)

func newGetPhotoRequest(id db.UUID) *http.Request {
	req := httptest.NewRequest(http.MethodGet, "/photos/"+id.String(), nil)
	ctx := context.WithValue(req.Context(), api_context.IDKey, id)
	return req.WithContext(ctx)
}

func TestGetPhotoHandler_NotFound(t *testing.T) {
	id := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	h := GetPhotoHandler(&mock.MockPhotoGetter{Err: photoUC.ErrNotFound}, &mock.Cache{})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newGetPhotoRequest(id))

	if rr.Code != http.StatusNotFound {
		t.Fatalf("got status %d; want 404", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), "Photo not found") {
		t.Errorf("unexpected body %q", rr.Body.String())
	}
}

func TestGetPhotoHandler_CacheMissRendersAndStores(t *testing.T) {
	id := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	out := &port.PhotoDetailOutput{ID: id, Title: "sunset", MediaType: model.MediaKindImage, People: []string{}, Comments: []port.CommentView{}}
	svc := &mock.MockPhotoGetter{Out: out}
	ca := &mock.Cache{}
	h := GetPhotoHandler(svc, ca)

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newGetPhotoRequest(id))

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d; want 200", rr.Code)
	}
	if !svc.Called {
		t.Error("getter should run on a cache miss")
	}
	if !ca.SetCalled {
		t.Error("rendered payload should be cached")
	}
	if rr.Header().Get("ETag") == "" {
		t.Error("response must carry an ETag")
	}
	if cc := rr.Header().Get("Cache-Control"); cc != "public, max-age=300" {
		t.Errorf("got Cache-Control %q", cc)
	}

	var body port.PhotoDetailOutput
	if err := json.Unmarshal(rr.Body.Bytes(), &body); err != nil {
		t.Fatalf("response is not valid JSON: %v", err)
	}
	if body.Title != "sunset" {
		t.Errorf("got title %q; want sunset", body.Title)
	}
}

func TestGetPhotoHandler_CacheHitSkipsGetter(t *testing.T) {
	id := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	cached := []byte(`{"id":"` + id.String() + `","title":"cached"}`)
	svc := &mock.MockPhotoGetter{}
	h := GetPhotoHandler(svc, &mock.Cache{DetailsOut: cached})

	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newGetPhotoRequest(id))

	if rr.Code != http.StatusOK {
		t.Fatalf("got status %d; want 200", rr.Code)
	}
	if svc.Called {
		t.Error("getter must not run on a cache hit")
	}
	if rr.Body.String() != string(cached) {
		t.Errorf("got body %q; want cached payload", rr.Body.String())
	}
}

func TestGetPhotoHandler_IfNoneMatchReturns304(t *testing.T) {
	id := db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee"))
	cached := []byte(`{"id":"x"}`)
	h := GetPhotoHandler(&mock.MockPhotoGetter{}, &mock.Cache{DetailsOut: cached})

	// first request to learn the etag
	rr := httptest.NewRecorder()
	h.ServeHTTP(rr, newGetPhotoRequest(id))
	etag := rr.Header().Get("ETag")
	if etag == "" {
		t.Fatal("expected an ETag on the first response")
	}

	req := newGetPhotoRequest(id)
	req.Header.Set("If-None-Match", etag)
	rr = httptest.NewRecorder()
	h.ServeHTTP(rr, req)

	if rr.Code != http.StatusNotModified {
		t.Fatalf("got status %d; want 304", rr.Code)
	}
	if rr.Body.Len() != 0 {
		t.Error("304 must carry no body")
	}
}
