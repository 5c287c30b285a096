package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type getterSrv struct {
	users  port.UserRepository
	photos port.PhotoRepository
}

// NewProfileGetter returns the use case for reading the caller's own profile.
func NewProfileGetter(users port.UserRepository, photos port.PhotoRepository) port.ProfileGetter {
	return &getterSrv{users: users, photos: photos}
}

// compile-time check
var _ port.ProfileGetter = (*getterSrv)(nil)

func (s *getterSrv) GetProfile(ctx context.Context, userID db.UUID) (*port.ProfileOutput, error) {
	u, err := s.users.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error getting user #%s: %w", userID, err)
	}

	postCount, err := s.photos.CountByCreator(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("error counting posts for user #%s: %w", userID, err)
	}

	return toProfileOutput(u, postCount), nil
}

func toProfileOutput(u *model.User, postCount int) *port.ProfileOutput {
	username := ""
	if u.Username != nil {
		username = *u.Username
	}
	return &port.ProfileOutput{
		ID:          u.ID,
		Email:       u.Email,
		Role:        u.Role,
		Username:    username,
		DisplayName: u.DisplayName,
		Bio:         u.Bio,
		AvatarURL:   u.AvatarURL,
		Website:     u.Website,
		PostCount:   postCount,
		CreatedAt:   u.CreatedAt,
	}
}
