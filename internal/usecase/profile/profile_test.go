package profile

import (
	"context"
	"database/sql"
	"errors"
	"strings"
	"testing"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/mock"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

func strPtr(s string) *string { return &s }

func TestGetProfile_NotFound(t *testing.T) {
	svc := NewProfileGetter(&mock.MockUserRepo{GetErr: sql.ErrNoRows}, &mock.MockPhotoRepo{})

	if _, err := svc.GetProfile(context.Background(), db.NewUUID()); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestGetProfile_Success(t *testing.T) {
	username := "alice_42"
	u := &model.User{
		ID:          db.NewUUID(),
		Email:       "alice@example.com",
		Role:        model.RoleCreator,
		Username:    &username,
		DisplayName: "Alice",
	}
	svc := NewProfileGetter(&mock.MockUserRepo{UserRecord: u}, &mock.MockPhotoRepo{CountByCreatorOut: 9})

	out, err := svc.GetProfile(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Username != username || out.PostCount != 9 {
		t.Errorf("got username=%q postCount=%d; want %q and 9", out.Username, out.PostCount, username)
	}
}

func TestGetProfile_UnsetUsernameRendersEmpty(t *testing.T) {
	u := &model.User{ID: db.NewUUID(), Email: "bob@example.com", Role: model.RoleConsumer}
	svc := NewProfileGetter(&mock.MockUserRepo{UserRecord: u}, &mock.MockPhotoRepo{})

	out, err := svc.GetProfile(context.Background(), u.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if out.Username != "" {
		t.Errorf("got username %q; want empty for unset username", out.Username)
	}
}

func TestUpdateProfile_EmptyPatch(t *testing.T) {
	svc := NewProfileUpdater(&mock.MockUserRepo{}, &mock.MockPhotoRepo{})

	_, err := svc.UpdateProfile(context.Background(), port.UpdateProfileInput{UserID: db.NewUUID()})
	if !errors.Is(err, ErrEmptyPatch) {
		t.Fatalf("expected ErrEmptyPatch, got %v", err)
	}
}

func TestUpdateProfile_UsernameValidation(t *testing.T) {
	tests := []struct {
		name     string
		username string
		wantErr  error
	}{
		{"too short", "ab", ErrInvalidUsername},
		{"too long", strings.Repeat("a", 31), ErrInvalidUsername},
		{"spaces inside", "no spaces", ErrInvalidUsername},
		{"punctuation", "nope!", ErrInvalidUsername},
		{"valid", "good_name_7", nil},
		{"uppercase is lowercased", "MixedCase", nil},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			users := &mock.MockUserRepo{UserRecord: &model.User{ID: db.NewUUID()}}
			svc := NewProfileUpdater(users, &mock.MockPhotoRepo{})

			_, err := svc.UpdateProfile(context.Background(), port.UpdateProfileInput{
				UserID: db.NewUUID(),
				Patch:  model.ProfilePatch{Username: strPtr(tc.username)},
			})
			if tc.wantErr != nil {
				if !errors.Is(err, tc.wantErr) {
					t.Fatalf("expected %v, got %v", tc.wantErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if users.AppliedPatch.Username == nil || *users.AppliedPatch.Username != strings.ToLower(tc.username) {
				t.Errorf("stored username should be lowercased, got %v", users.AppliedPatch.Username)
			}
		})
	}
}

func TestUpdateProfile_UsernameTaken(t *testing.T) {
	users := &mock.MockUserRepo{UsernameTakenOut: true}
	svc := NewProfileUpdater(users, &mock.MockPhotoRepo{})

	_, err := svc.UpdateProfile(context.Background(), port.UpdateProfileInput{
		UserID: db.NewUUID(),
		Patch:  model.ProfilePatch{Username: strPtr("taken_name")},
	})
	if !errors.Is(err, ErrUsernameTaken) {
		t.Fatalf("expected ErrUsernameTaken, got %v", err)
	}
	if users.UpdateProfileCalled {
		t.Error("update must not run when the username is taken")
	}
}

func TestUpdateProfile_EmptyUsernameClearsWithoutValidation(t *testing.T) {
	users := &mock.MockUserRepo{UserRecord: &model.User{ID: db.NewUUID()}}
	svc := NewProfileUpdater(users, &mock.MockPhotoRepo{})

	_, err := svc.UpdateProfile(context.Background(), port.UpdateProfileInput{
		UserID: db.NewUUID(),
		Patch:  model.ProfilePatch{Username: strPtr("")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if users.UsernameTakenCalled {
		t.Error("clearing the username must not run a uniqueness check")
	}
	if users.AppliedPatch.Username == nil || *users.AppliedPatch.Username != "" {
		t.Error("patch should carry the empty username through to the repository")
	}
}

func TestUpdateProfile_BioTooLong(t *testing.T) {
	svc := NewProfileUpdater(&mock.MockUserRepo{}, &mock.MockPhotoRepo{})

	long := strings.Repeat("x", 151)
	_, err := svc.UpdateProfile(context.Background(), port.UpdateProfileInput{
		UserID: db.NewUUID(),
		Patch:  model.ProfilePatch{Bio: &long},
	})
	if !errors.Is(err, ErrBioTooLong) {
		t.Fatalf("expected ErrBioTooLong, got %v", err)
	}
}

func TestUpdateProfile_Success(t *testing.T) {
	u := &model.User{ID: db.NewUUID(), Email: "alice@example.com", Role: model.RoleCreator, DisplayName: "Alice"}
	users := &mock.MockUserRepo{UserRecord: u}
	svc := NewProfileUpdater(users, &mock.MockPhotoRepo{CountByCreatorOut: 3})

	out, err := svc.UpdateProfile(context.Background(), port.UpdateProfileInput{
		UserID: u.ID,
		Patch:  model.ProfilePatch{DisplayName: strPtr("Alice B.")},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !users.UpdateProfileCalled || users.UpdatedID != u.ID {
		t.Error("expected UpdateProfile on the repository")
	}
	if out.PostCount != 3 {
		t.Errorf("got postCount %d; want 3", out.PostCount)
	}
}
