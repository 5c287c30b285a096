package model

import (
	"time"

	"github.com/mlegrand/photoshare-go/internal/db"
)

type Role string

const (
	RoleCreator  Role = "CREATOR"
	RoleConsumer Role = "CONSUMER"
)

// User is an identity record. Username is a pointer because the column is
// nullable: NULL means "unset" and is ignored by the unique index, so two
// users without a username never collide.
type User struct {
	ID           db.UUID   `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         Role      `json:"role"`
	Username     *string   `json:"username,omitempty"`
	DisplayName  string    `json:"displayName"`
	Bio          string    `json:"bio"`
	AvatarURL    string    `json:"avatarUrl"`
	Website      string    `json:"website"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// ProfilePatch carries a partial profile update. A nil field was absent from
// the request and leaves the stored value untouched. For Username, a present
// empty string clears the field back to NULL.
type ProfilePatch struct {
	Username    *string
	DisplayName *string
	Bio         *string
	AvatarURL   *string
	Website     *string
}

// Empty reports whether the patch carries no field at all.
func (p ProfilePatch) Empty() bool {
	return p.Username == nil && p.DisplayName == nil && p.Bio == nil &&
		p.AvatarURL == nil && p.Website == nil
}
