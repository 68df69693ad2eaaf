package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// GenerateToken signs a short-lived HS256 bearer token for username with the
// given role claim. Token issuance endpoints are out of scope for this
// service; this exists for operator tooling and the test suites.
func GenerateToken(secret []byte, username, role string) (string, error) {
	claims := jwt.MapClaims{
		"sub":      username,
		"username": username,
		"role":     role,
		"exp":      time.Now().Add(15 * time.Minute).Unix(),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(secret)
}

// ParseToken validates tokenStr against secret and returns the parsed token.
func ParseToken(secret []byte, tokenStr string) (*jwt.Token, error) {
	return jwt.Parse(tokenStr, func(t *jwt.Token) (any, error) {
		return secret, nil
	})
}
