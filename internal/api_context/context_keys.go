package api_context

import (
	"context"

	"github.com/mlegrand/photoshare-go/internal/db"
)

type ctxKey string

const (
	IDKey         ctxKey = "id"
	AuthUserIDKey ctxKey = "authUserID"
	AuthRoleKey   ctxKey = "authRole"
)

func IDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(IDKey).(db.UUID)
	return id, ok
}

func AuthUserIDFromContext(ctx context.Context) (db.UUID, bool) {
	id, ok := ctx.Value(AuthUserIDKey).(db.UUID)
	return id, ok
}

func AuthRoleFromContext(ctx context.Context) (string, bool) {
	role, ok := ctx.Value(AuthRoleKey).(string)
	return role, ok
}
