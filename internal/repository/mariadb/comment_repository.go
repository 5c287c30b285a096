package mariadb

import (
	"context"
	"database/sql"
	"log"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
	"github.com/mlegrand/photoshare-go/internal/port"
)

type CommentRepository struct {
	db *sql.DB
}

// compile-time check: *CommentRepository must satisfy port.CommentRepository
var _ port.CommentRepository = (*CommentRepository)(nil)

func NewCommentRepository(db *sql.DB) *CommentRepository {
	return &CommentRepository{db: db}
}

func (r *CommentRepository) Create(ctx context.Context, comment *model.Comment) error {
	log.Printf("creating database record for comment #%s on photo #%s...", comment.ID, comment.PhotoID)

	const query = `
      INSERT INTO comments (id, user_id, photo_id, text)
      VALUES (?, ?, ?, ?)
    `
	_, err := r.db.ExecContext(ctx, query,
		comment.ID, comment.UserID, comment.PhotoID, comment.Text,
	)
	return err
}

func (r *CommentRepository) GetByID(ctx context.Context, id db.UUID) (*model.Comment, error) {
	log.Printf("fetching comment #%s from the database...", id)

	const query = `
      SELECT id, user_id, photo_id, text, created_at, updated_at
      FROM comments
      WHERE id = ?
    `
	var comment model.Comment
	if err := r.db.QueryRowContext(ctx, query, id).Scan(
		&comment.ID, &comment.UserID, &comment.PhotoID,
		&comment.Text, &comment.CreatedAt, &comment.UpdatedAt,
	); err != nil {
		return nil, err
	}
	return &comment, nil
}

func (r *CommentRepository) Update(ctx context.Context, comment *model.Comment) error {
	log.Printf("updating database record for comment #%s...", comment.ID)

	const query = `
      UPDATE comments
      SET text = ?
      WHERE id = ?
    `
	_, err := r.db.ExecContext(ctx, query, comment.Text, comment.ID)
	return err
}

func (r *CommentRepository) Delete(ctx context.Context, id db.UUID) error {
	log.Printf("deleting comment #%s from the database...", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM comments WHERE id = ?`, id)
	return err
}

func (r *CommentRepository) ListByPhoto(ctx context.Context, photoID db.UUID) ([]model.CommentWithAuthor, error) {
	const query = `
      SELECT c.id, c.user_id, c.photo_id, c.text, c.created_at, c.updated_at, u.email
      FROM comments c
      JOIN users u ON u.id = c.user_id
      WHERE c.photo_id = ?
      ORDER BY c.created_at DESC
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

	var comments []model.CommentWithAuthor
	for rows.Next() {
		var c model.CommentWithAuthor
		if err := rows.Scan(
			&c.ID, &c.UserID, &c.PhotoID, &c.Text,
			&c.CreatedAt, &c.UpdatedAt, &c.AuthorEmail,
		); err != nil {
			return nil, err
		}
		comments = append(comments, c)
	}
	return comments, rows.Err()
}

func (r *CommentRepository) CountByPhoto(ctx context.Context, photoID db.UUID) (int, error) {
	var total int
	if err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM comments WHERE photo_id = ?`, photoID).Scan(&total); err != nil {
		return 0, err
	}
	return total, nil
}
