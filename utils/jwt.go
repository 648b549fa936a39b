package utils

import (
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Tokens carry the account email; the auth middleware resolves the user row
// from that claim on every request.
func GenerateJWT(email string) (string, error) {
	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"email": email,
		"iat":   now.Unix(),
		"exp":   now.Add(24 * time.Hour).Unix(),
	})

	return token.SignedString([]byte(os.Getenv("JWT_SECRET")))
}
