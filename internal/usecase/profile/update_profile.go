package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/mlegrand/photoshare-go/internal/port"
)

const maxBioLength = 150

var usernameRe = regexp.MustCompile(`^[a-z0-9_]{3,30}$`)

type updaterSrv struct {
	users  port.UserRepository
	photos port.PhotoRepository
}

// NewProfileUpdater returns the use case for partially updating the caller's
// own profile.
func NewProfileUpdater(users port.UserRepository, photos port.PhotoRepository) port.ProfileUpdater {
	return &updaterSrv{users: users, photos: photos}
}

// compile-time check
var _ port.ProfileUpdater = (*updaterSrv)(nil)

func (s *updaterSrv) UpdateProfile(ctx context.Context, in port.UpdateProfileInput) (*port.ProfileOutput, error) {
	patch := in.Patch
	if patch.Empty() {
		return nil, ErrEmptyPatch
	}

	if patch.Bio != nil && utf8.RuneCountInString(*patch.Bio) > maxBioLength {
		return nil, ErrBioTooLong
	}

	if patch.Username != nil {
		// Usernames are stored lowercase so uniqueness is case-insensitive.
		username := strings.ToLower(strings.TrimSpace(*patch.Username))
		patch.Username = &username
		if username != "" {
			if !usernameRe.MatchString(username) {
				return nil, ErrInvalidUsername
			}
			taken, err := s.users.UsernameTaken(ctx, username, in.UserID)
			if err != nil {
				return nil, fmt.Errorf("error checking username %q: %w", username, err)
			}
			if taken {
				return nil, ErrUsernameTaken
			}
		}
	}

	if err := s.users.UpdateProfile(ctx, in.UserID, patch); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("error updating profile of user #%s: %w", in.UserID, err)
	}

	u, err := s.users.GetByID(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("error reloading user #%s: %w", in.UserID, err)
	}
	postCount, err := s.photos.CountByCreator(ctx, in.UserID)
	if err != nil {
		return nil, fmt.Errorf("error counting posts for user #%s: %w", in.UserID, err)
	}

	return toProfileOutput(u, postCount), nil
}
