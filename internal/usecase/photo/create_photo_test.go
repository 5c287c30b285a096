package photo

import (
	"context"
	"errors"
	"testing"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/mock"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

func TestCreatePhoto_Success(t *testing.T) {
	repo := &mock.MockPhotoRepo{}
	id := db.NewUUID()
	svc := NewPhotoCreator(repo, func() db.UUID { return id })

	out, err := svc.CreatePhoto(context.Background(), port.CreatePhotoInput{
		CreatorID: db.NewUUID(),
		Title:     "sunset",
		MediaURL:  "https://storage.example.com/photos/sunset.jpg",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.ID != id {
		t.Errorf("got id %s; want %s", out.ID, id)
	}
	if out.MediaType != model.MediaKindImage {
		t.Errorf("got media type %q; want image", out.MediaType)
	}
	if repo.Created == nil {
		t.Fatal("expected repo.Create to be called")
	}
	if repo.Created.People == nil || len(repo.Created.People) != 0 {
		t.Errorf("nil people should be stored as an empty list, got %v", repo.Created.People)
	}
}

func TestCreatePhoto_VideoKindDerivedFromURL(t *testing.T) {
	repo := &mock.MockPhotoRepo{}
	svc := NewPhotoCreator(repo, db.NewUUID)

	out, err := svc.CreatePhoto(context.Background(), port.CreatePhotoInput{
		CreatorID: db.NewUUID(),
		Title:     "clip",
		MediaURL:  "https://cdn.example.com/video/upload/clip",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.MediaType != model.MediaKindVideo {
		t.Errorf("got media type %q; want video", out.MediaType)
	}
	if repo.Created.MediaKind != model.MediaKindVideo {
		t.Errorf("stored kind %q; want video", repo.Created.MediaKind)
	}
}

func TestCreatePhoto_RepoError(t *testing.T) {
	repo := &mock.MockPhotoRepo{CreateErr: errors.New("insert fail")}
	svc := NewPhotoCreator(repo, db.NewUUID)

	if _, err := svc.CreatePhoto(context.Background(), port.CreatePhotoInput{Title: "x", MediaURL: "https://e.com/a.jpg"}); err == nil {
		t.Fatal("expected insert error to propagate")
	}
}
