package mariadb

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"strings"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type PhotoRepository struct {
	db *sql.DB
}

// compile-time check: *PhotoRepository must satisfy port.PhotoRepository
var _ port.PhotoRepository = (*PhotoRepository)(nil)

func NewPhotoRepository(db *sql.DB) *PhotoRepository {
	return &PhotoRepository{db: db}
}

const photoColumns = `id, creator_id, title, caption, location, people, media_url, media_kind, thumbnail_url, created_at, updated_at`

func (r *PhotoRepository) Create(ctx context.Context, photo *model.Photo) error {
	log.Printf("creating database record for photo #%s...", photo.ID)

	const query = `
      INSERT INTO photos
        (id, creator_id, title, caption, location, people, media_url, media_kind, thumbnail_url)
      VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		photo.ID, photo.CreatorID, photo.Title, photo.Caption,
		photo.Location, photo.People, photo.MediaURL,
		photo.MediaKind, photo.ThumbnailURL,
	)
	return err
}

func (r *PhotoRepository) GetByID(ctx context.Context, id db.UUID) (*model.Photo, error) {
	log.Printf("fetching photo #%s from the database...", id)

	const query = `
      SELECT ` + photoColumns + `
      FROM photos
      WHERE id = ?
    `
	var photo model.Photo
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&photo.ID, &photo.CreatorID, &photo.Title, &photo.Caption,
		&photo.Location, &photo.People, &photo.MediaURL,
		&photo.MediaKind, &photo.ThumbnailURL,
		&photo.CreatedAt, &photo.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &photo, nil
}

func (r *PhotoRepository) List(ctx context.Context, filter port.PhotoListFilter) ([]model.Photo, error) {
	where, args := buildPhotoFilter(filter)

	query := `SELECT ` + photoColumns + ` FROM photos` + where +
		` ORDER BY created_at DESC LIMIT ? OFFSET ?`
	args = append(args, filter.Limit, filter.Offset)

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var photos []model.Photo
	for rows.Next() {
		var photo model.Photo
		if err := rows.Scan(
			&photo.ID, &photo.CreatorID, &photo.Title, &photo.Caption,
			&photo.Location, &photo.People, &photo.MediaURL,
			&photo.MediaKind, &photo.ThumbnailURL,
			&photo.CreatedAt, &photo.UpdatedAt,
		); err != nil {
			return nil, err
		}
		photos = append(photos, photo)
	}
	return photos, rows.Err()
}

func (r *PhotoRepository) Count(ctx context.Context, filter port.PhotoListFilter) (int, error) {
	where, args := buildPhotoFilter(filter)

	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos`+where, args...).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func (r *PhotoRepository) Update(ctx context.Context, photo *model.Photo) error {
	log.Printf("updating database record for photo #%s...", photo.ID)

	// media_url, media_kind and thumbnail_url are immutable after creation
	const query = `
      UPDATE photos
      SET
        title    = ?,
        caption  = ?,
        location = ?,
        people   = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query,
		photo.Title, photo.Caption, photo.Location, photo.People,
		photo.ID,
	)
	return err
}

// DeleteWithDependents removes the photo's comments and ratings, then the
// photo itself, in one transaction (children first).
func (r *PhotoRepository) DeleteWithDependents(ctx context.Context, id db.UUID) error {
	log.Printf("deleting photo #%s and its comments and ratings...", id)

	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer func() {
		if err := tx.Rollback(); err != nil && err != sql.ErrTxDone {
			log.Printf("rollback failed for photo #%s: %v", id, err)
		}
	}()

	if _, err := tx.ExecContext(ctx, `DELETE FROM comments WHERE photo_id = ?`, id); err != nil {
		return fmt.Errorf("delete comments of photo #%s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM ratings WHERE photo_id = ?`, id); err != nil {
		return fmt.Errorf("delete ratings of photo #%s: %w", id, err)
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM photos WHERE id = ?`, id); err != nil {
		return fmt.Errorf("delete photo #%s: %w", id, err)
	}

	return tx.Commit()
}

func (r *PhotoRepository) CountByCreator(ctx context.Context, creatorID db.UUID) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM photos WHERE creator_id = ?`, creatorID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}

func buildPhotoFilter(filter port.PhotoListFilter) (string, []any) {
	var (
		conds []string
		args  []any
	)
	if filter.Search != "" {
		pattern := "%" + escapeLike(filter.Search) + "%"
		conds = append(conds, `(title LIKE ? OR caption LIKE ? OR location LIKE ?)`)
		args = append(args, pattern, pattern, pattern)
	}
	if filter.CreatorID != nil {
		conds = append(conds, `creator_id = ?`)
		args = append(args, *filter.CreatorID)
	}
	if len(conds) == 0 {
		return "", nil
	}
	return " WHERE " + strings.Join(conds, " AND "), args
}

// escapeLike neutralises LIKE metacharacters in user input so a search term
// is only ever a literal substring match.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
