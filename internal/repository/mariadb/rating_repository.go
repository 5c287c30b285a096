package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type RatingRepository struct {
	db *sql.DB
}

// compile-time check: *RatingRepository must satisfy port.RatingRepository
var _ port.RatingRepository = (*RatingRepository)(nil)

func NewRatingRepository(db *sql.DB) *RatingRepository {
	return &RatingRepository{db: db}
}

// Upsert inserts the rating or replaces the value of the caller's existing
// rating on the same photo (one current rating per user per photo).
func (r *RatingRepository) Upsert(ctx context.Context, rating *model.Rating) error {
	log.Printf("upserting rating of user #%s on photo #%s...", rating.UserID, rating.PhotoID)

	const query = `
      INSERT INTO ratings (id, user_id, photo_id, value)
      VALUES (?, ?, ?, ?)
      ON DUPLICATE KEY UPDATE value = VALUES(value)
    `
	_, err := r.db.ExecContext(ctx, query,
		rating.ID, rating.UserID, rating.PhotoID, rating.Value,
	)
	return err
}

func (r *RatingRepository) ListByPhoto(ctx context.Context, photoID db.UUID) ([]model.Rating, error) {
	const query = `
      SELECT id, user_id, photo_id, value, created_at, updated_at
      FROM ratings
      WHERE photo_id = ?
    `
	rows, err := r.db.QueryContext(ctx, query, photoID)
	if err != nil {
		return nil, err
	}
	defer func() {
		if err := rows.Close(); err != nil {
			log.Printf("failed to close rows: %v", err)
		}
	}()

	var ratings []model.Rating
	for rows.Next() {
		var rating model.Rating
		if err := rows.Scan(
			&rating.ID, &rating.UserID, &rating.PhotoID,
			&rating.Value, &rating.CreatedAt, &rating.UpdatedAt,
		); err != nil {
			return nil, err
		}
		ratings = append(ratings, rating)
	}
	return ratings, rows.Err()
}

func (r *RatingRepository) CountByPhoto(ctx context.Context, photoID db.UUID) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM ratings WHERE photo_id = ?`, photoID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
