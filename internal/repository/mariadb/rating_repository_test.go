package mariadb

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
)

func TestRatingRepository_Upsert(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewRatingRepository(sqlDB)

	rating := &model.Rating{
		ID:      db.UUID(uuid.MustParse("aaaaaaaa-bbbb-cccc-dddd-eeeeeeeeeeee")),
		UserID:  db.UUID(uuid.MustParse("11111111-2222-3333-4444-555555555555")),
		PhotoID: db.UUID(uuid.MustParse("99999999-8888-7777-6666-555555555555")),
		Value:   4,
	}

	mock.ExpectExec(regexp.QuoteMeta(`
      INSERT INTO ratings (id, user_id, photo_id, value)
      VALUES (?, ?, ?, ?)
      ON DUPLICATE KEY UPDATE value = VALUES(value)
    `)).
		WithArgs(rating.ID, rating.UserID, rating.PhotoID, rating.Value).
		WillReturnResult(sqlmock.NewResult(1, 1))

	if err := repo.Upsert(context.Background(), rating); err != nil {
		t.Errorf("Upsert() returned unexpected error: %v", err)
	}

	if err := mock.ExpectationsWereMet(); err != nil {
		t.Errorf("there were unfulfilled expectations: %s", err)
	}
}

func TestRatingRepository_Upsert_ExecError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("unexpected error when opening stub database: %s", err)
	}
	defer func() { _ = sqlDB.Close() }()

	repo := NewRatingRepository(sqlDB)

	mock.ExpectExec(`INSERT INTO ratings`).WillReturnError(errors.New("constraint fail"))

	rating := &model.Rating{ID: db.NewUUID(), UserID: db.NewUUID(), PhotoID: db.NewUUID(), Value: 1}
	if err := repo.Upsert(context.Background(), rating); err == nil {
		t.Error("expected error to propagate")
	}
}
