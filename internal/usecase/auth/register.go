package auth

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type registerSrv struct {
	users     port.UserRepository
	genUUID   port.UUIDGen
	jwtSecret string
}

// NewRegisterer constructs a port.Registerer implementation.
func NewRegisterer(users port.UserRepository, genUUID port.UUIDGen, jwtSecret string) port.Registerer {
	return &registerSrv{users: users, genUUID: genUUID, jwtSecret: jwtSecret}
}

func (s *registerSrv) Register(ctx context.Context, in port.RegisterInput) (*port.AuthOutput, error) {
	email := strings.ToLower(strings.TrimSpace(in.Email))

	role := in.Role
	if role == "" {
		role = model.RoleConsumer
	}

	if _, err := s.users.GetByEmail(ctx, email); err == nil {
		return nil, ErrEmailTaken
	} else if !errors.Is(err, sql.ErrNoRows) {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &model.User{
		ID:           s.genUUID(),
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
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
