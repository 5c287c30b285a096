package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlegrand/photoshare-go/internal/port"
)

type loginSrv struct {
	users     port.UserRepository
	jwtSecret string
}

// NewAuthenticator constructs a port.Authenticator implementation.
func NewAuthenticator(users port.UserRepository, jwtSecret string) port.Authenticator {
	return &loginSrv{users: users, jwtSecret: jwtSecret}
}

func (s *loginSrv) Login(ctx context.Context, in port.LoginInput) (*port.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	user, err := s.users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	token, err := signToken(s.jwtSecret, user.ID, user.Role)
	if err != nil {
		return nil, fmt.Errorf("sign token: %w", err)
	}

	return &port.AuthOutput{
		Token: token,
		User:  port.AuthUser{ID: user.ID, Email: user.Email, Role: user.Role},
	}, nil
}
