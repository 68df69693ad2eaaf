package http

import (
	"context"
	"net"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"

	"github.com/stockwise/inventory-api/internal/auth"
	rl "github.com/stockwise/inventory-api/internal/http/rate_limiter"
)

type contextKey string

const claimsKey = contextKey("claims")

// AuthConfig parametrizes the bearer-token middleware. An empty Roles list
// accepts any authenticated caller; a non-empty list additionally requires
// the token's role claim to be one of the named roles.
type AuthConfig struct {
	Secret []byte
	Roles  []string
}

func Authenticator(cfg AuthConfig) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authorization := r.Header.Get("Authorization")
			if !strings.HasPrefix(authorization, "Bearer ") {
				http.Error(w, "missing or invalid token", http.StatusUnauthorized)
				return
			}

			tokenStr := strings.TrimPrefix(authorization, "Bearer ")
			token, err := auth.ParseToken(cfg.Secret, tokenStr)
			if err != nil || !token.Valid {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			claims, ok := token.Claims.(jwt.MapClaims)
			if !ok {
				http.Error(w, "invalid token", http.StatusUnauthorized)
				return
			}

			if len(cfg.Roles) > 0 {
				role, _ := claims["role"].(string)
				if !slices.Contains(cfg.Roles, role) {
					http.Error(w, "insufficient role", http.StatusForbidden)
					return
				}
			}

			ctx := context.WithValue(r.Context(), claimsKey, claims)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// Claims returns the token claims stored by Authenticator, or nil on
// unauthenticated requests.
func Claims(r *http.Request) jwt.MapClaims {
	if claims, ok := r.Context().Value(claimsKey).(jwt.MapClaims); ok {
		return claims
	}
	return nil
}

func RateLimit(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip, _, err := net.SplitHostPort(r.RemoteAddr)
		if err != nil {
			ip = r.RemoteAddr
		}
		if !rl.GetVisitor(ip).Allow() {
			http.Error(w, "too many requests", http.StatusTooManyRequests)
			return
		}
		next.ServeHTTP(w, r)
	})
}
