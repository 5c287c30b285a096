package mariadb

import (
	"context"
	"database/sql"
	"log"
	"strings"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type UserRepository struct {
	db *sql.DB
}

// compile-time check: *UserRepository must satisfy port.UserRepository
var _ port.UserRepository = (*UserRepository)(nil)

func NewUserRepository(db *sql.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Create(ctx context.Context, user *model.User) error {
	log.Printf("creating database record for user %q...", user.Email)

	const query = `
      INSERT INTO users
        (id, email, password_hash, role, username, display_name, bio, avatar_url, website)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		user.ID, user.Email, user.PasswordHash, user.Role,
		user.Username, user.DisplayName, user.Bio,
		user.AvatarURL, user.Website,
	)
	return err
}

const userColumns = `id, email, password_hash, role, username, display_name, bio, avatar_url, website, created_at, updated_at`

func (r *UserRepository) GetByID(ctx context.Context, id db.UUID) (*model.User, error) {
	log.Printf("fetching user #%s from the database...", id)

	const query = `
      SELECT ` + userColumns + `
      FROM users
      WHERE id = ?
    `
	return r.scanUser(r.db.QueryRowContext(ctx, query, id))
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*model.User, error) {
	log.Printf("fetching user %q from the database...", email)

	const query = `
      SELECT ` + userColumns + `
      FROM users
      WHERE email = ?
    `
	return r.scanUser(r.db.QueryRowContext(ctx, query, email))
}

func (r *UserRepository) UsernameTaken(ctx context.Context, username string, excludeID db.UUID) (bool, error) {
	const query = `
      SELECT EXISTS (
        SELECT 1 FROM users WHERE username = ? AND id <> ?
      )
    `
	var taken bool
	if err := r.db.QueryRowContext(ctx, query, username, excludeID).Scan(&taken); err != nil {
		return false, err
	}
	return taken, nil
}

func (r *UserRepository) UpdateProfile(ctx context.Context, id db.UUID, patch model.ProfilePatch) error {
	log.Printf("updating profile of user #%s...", id)

	var (
		sets []string
		args []any
	)
	if patch.Username != nil {
		if *patch.Username == "" {
			// clear back to the sparse/unset state, never store ''
			sets = append(sets, "username = NULL")
		} else {
			sets = append(sets, "username = ?")
			args = append(args, *patch.Username)
		}
	}
	if patch.DisplayName != nil {
		sets = append(sets, "display_name = ?")
		args = append(args, *patch.DisplayName)
	}
	if patch.Bio != nil {
		sets = append(sets, "bio = ?")
		args = append(args, *patch.Bio)
	}
	if patch.AvatarURL != nil {
		sets = append(sets, "avatar_url = ?")
		args = append(args, *patch.AvatarURL)
	}
	if patch.Website != nil {
		sets = append(sets, "website = ?")
		args = append(args, *patch.Website)
	}
	if len(sets) == 0 {
		return nil
	}

	query := "UPDATE users SET " + strings.Join(sets, ", ") + " WHERE id = ?"
	args = append(args, id)

	res, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// an update to only-unchanged values also reports 0, so double-check
		// the row actually exists
		var exists bool
		if err := r.db.QueryRowContext(ctx, "SELECT EXISTS (SELECT 1 FROM users WHERE id = ?)", id).Scan(&exists); err != nil {
			return err
		}
		if !exists {
			return sql.ErrNoRows
		}
	}
	return nil
}

func (r *UserRepository) scanUser(row *sql.Row) (*model.User, error) {
	var user model.User
	if err := row.Scan(
		&user.ID, &user.Email, &user.PasswordHash, &user.Role,
		&user.Username, &user.DisplayName, &user.Bio,
		&user.AvatarURL, &user.Website,
		&user.CreatedAt, &user.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &user, nil
}
