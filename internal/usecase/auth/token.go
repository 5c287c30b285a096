package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v4"

	"github.com/mlegrand/photoshare-go/internal/db"
	"github.com/mlegrand/photoshare-go/internal/model"
)

const tokenTTL = 24 * time.Hour

// Claims carries the identity inside the bearer token: user id as subject,
// role as a custom claim.
type Claims struct {
	Role string `json:"role"`
	jwt.RegisteredClaims
}

func signToken(secret string, userID db.UUID, role model.Role) (string, error) {
	now := time.Now()
	claims := &Claims{
		Role: string(role),
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   userID.String(),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(tokenTTL)),
		},
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(secret))
}
