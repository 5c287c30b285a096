package photo

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/mock"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

func TestListPhotos_PaginationDefaults(t *testing.T) {
	tests := []struct {
		name       string
		page       int
		limit      int
		total      int
		wantPage   int
		wantLimit  int
		wantOffset int
		wantPages  int
	}{
		{"zero values fall back", 0, 0, 25, 1, 12, 0, 3},
		{"negative values fall back", -3, -1, 25, 1, 12, 0, 3},
		{"second page offsets", 2, 10, 25, 2, 10, 10, 3},
		{"exact division", 1, 5, 20, 1, 5, 0, 4},
		{"empty listing has zero pages", 1, 12, 0, 1, 12, 0, 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			photoRepo := &mock.MockPhotoRepo{CountOut: tc.total}
			svc := NewFeedLister(photoRepo, &mock.MockCommentRepo{}, &mock.MockRatingRepo{})

			out, err := svc.ListPhotos(context.Background(), port.ListPhotosInput{Page: tc.page, Limit: tc.limit})
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if out.Pagination.Page != tc.wantPage || out.Pagination.Limit != tc.wantLimit {
				t.Errorf("got page=%d limit=%d; want page=%d limit=%d",
					out.Pagination.Page, out.Pagination.Limit, tc.wantPage, tc.wantLimit)
			}
			if out.Pagination.Total != tc.total || out.Pagination.Pages != tc.wantPages {
				t.Errorf("got total=%d pages=%d; want total=%d pages=%d",
					out.Pagination.Total, out.Pagination.Pages, tc.total, tc.wantPages)
			}
			if photoRepo.ListFilter.Offset != tc.wantOffset || photoRepo.ListFilter.Limit != tc.wantLimit {
				t.Errorf("got filter offset=%d limit=%d; want offset=%d limit=%d",
					photoRepo.ListFilter.Offset, photoRepo.ListFilter.Limit, tc.wantOffset, tc.wantLimit)
			}
		})
	}
}

func TestListPhotos_MediaKindOverridesStoredValue(t *testing.T) {
	p := model.Photo{
		ID:        db.NewUUID(),
		CreatorID: db.NewUUID(),
		Title:     "clip",
		MediaURL:  "https://storage.example.com/photos/clip.mp4",
		MediaKind: model.MediaKindImage, // stale on purpose
	}
	photoRepo := &mock.MockPhotoRepo{ListOut: []model.Photo{p}, CountOut: 1}
	svc := NewFeedLister(photoRepo, &mock.MockCommentRepo{}, &mock.MockRatingRepo{})

	out, err := svc.ListPhotos(context.Background(), port.ListPhotosInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	item := out.Photos[0]
	if item.MediaType != model.MediaKindVideo {
		t.Errorf("got media type %q; want %q", item.MediaType, model.MediaKindVideo)
	}
	if item.VideoURL != p.MediaURL || item.ImageURL != "" {
		t.Errorf("video URL should carry the media URL, got image=%q video=%q", item.ImageURL, item.VideoURL)
	}
}

func TestListPhotos_CreatorRefOmittedOnOwnListing(t *testing.T) {
	creatorID := db.NewUUID()
	p := model.Photo{ID: db.NewUUID(), CreatorID: creatorID, MediaURL: "https://storage.example.com/photos/a.jpg"}
	photoRepo := &mock.MockPhotoRepo{ListOut: []model.Photo{p}, CountOut: 1}
	svc := NewFeedLister(photoRepo, &mock.MockCommentRepo{}, &mock.MockRatingRepo{})

	out, err := svc.ListPhotos(context.Background(), port.ListPhotosInput{CreatorID: &creatorID})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Photos[0].Creator != nil {
		t.Error("creator ref should be omitted on a creator-scoped listing")
	}

	out, err = svc.ListPhotos(context.Background(), port.ListPhotosInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Photos[0].Creator == nil || out.Photos[0].Creator.ID != creatorID {
		t.Error("public listing should carry the creator ref")
	}
}

func TestListPhotos_Counts(t *testing.T) {
	p := model.Photo{ID: db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")), MediaURL: "https://storage.example.com/photos/a.jpg"}
	photoRepo := &mock.MockPhotoRepo{ListOut: []model.Photo{p}, CountOut: 1}
	commentRepo := &mock.MockCommentRepo{CountByPhotoOut: 4}
	ratingRepo := &mock.MockRatingRepo{CountByPhotoOut: 7}
	svc := NewFeedLister(photoRepo, commentRepo, ratingRepo)

	out, err := svc.ListPhotos(context.Background(), port.ListPhotosInput{})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := out.Photos[0].Counts; got.Comments != 4 || got.Ratings != 7 {
		t.Errorf("got counts %+v; want comments=4 ratings=7", got)
	}
}

func TestListPhotos_RepoErrors(t *testing.T) {
	svc := NewFeedLister(&mock.MockPhotoRepo{CountErr: errors.New("count fail")}, &mock.MockCommentRepo{}, &mock.MockRatingRepo{})
	if _, err := svc.ListPhotos(context.Background(), port.ListPhotosInput{}); err == nil {
		t.Fatal("expected count error to propagate")
	}

	svc = NewFeedLister(&mock.MockPhotoRepo{ListErr: errors.New("list fail")}, &mock.MockCommentRepo{}, &mock.MockRatingRepo{})
	if _, err := svc.ListPhotos(context.Background(), port.ListPhotosInput{}); err == nil {
		t.Fatal("expected list error to propagate")
	}
}
