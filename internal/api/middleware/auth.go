package middleware

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Harshitk-cp/stratcheck/internal/domain"
)

type contextKey string

const labContextKey contextKey = "lab"

func LabFromContext(ctx context.Context) *domain.Lab {
	l, _ := ctx.Value(labContextKey).(*domain.Lab)
	return l
}

// WithLab returns a copy of ctx carrying the authenticated lab.
func WithLab(ctx context.Context, l *domain.Lab) context.Context {
	return context.WithValue(ctx, labContextKey, l)
}

func APIKeyAuth(labStore domain.LabStore) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			if authHeader == "" {
				writeError(w, http.StatusUnauthorized, "missing authorization header")
				return
			}

			scheme, apiKey, ok := strings.Cut(authHeader, " ")
			if !ok || !strings.EqualFold(scheme, "Bearer") || apiKey == "" {
				writeError(w, http.StatusUnauthorized, "invalid authorization header format")
				return
			}

			lab, err := labStore.GetByAPIKeyHash(r.Context(), HashAPIKey(apiKey))
			if err != nil {
				writeError(w, http.StatusUnauthorized, "invalid API key")
				return
			}

			recordLab(r.Context(), lab)
			next.ServeHTTP(w, r.WithContext(WithLab(r.Context(), lab)))
		})
	}
}

// HashAPIKey returns the hex SHA-256 of an API key, the form stored for labs.
func HashAPIKey(key string) string {
	h := sha256.Sum256([]byte(key))
	return hex.EncodeToString(h[:])
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
