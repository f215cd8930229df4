package httpapi

import (
	"context"
	"net/http"
	"strings"

	"github.com/mkalvins/taskboard/internal/common"
	"github.com/mkalvins/taskboard/internal/server/auth"
)

type ctxKey string

const claimsKey ctxKey = "claims"

// requireAuth gates a handler behind bearer-token verification.
//
// A missing Authorization header is a 403, a present but invalid or expired
// token a 401. On success the verified claims are injected into the request
// context; downstream handlers must take the owner id from there and nowhere
// else.
func (s *Server) requireAuth(next http.HandlerFunc) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if header == "" {
			s.writeError(w, r, common.ErrMissingCredentials)
			return
		}

		tokenString, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || tokenString == "" {
			s.writeError(w, r, common.ErrInvalidToken)
			return
		}

		claims, err := auth.ParseToken(tokenString, s.jwtSecret)
		if err != nil {
			s.writeError(w, r, err)
			return
		}

		ctx := context.WithValue(r.Context(), claimsKey, claims)
		next(w, r.WithContext(ctx))
	}
}

// ClaimsFromContext returns the verified claims injected by requireAuth.
// The boolean is false on a request that did not pass the middleware.
func ClaimsFromContext(ctx context.Context) (*auth.Claims, bool) {
	claims, ok := ctx.Value(claimsKey).(*auth.Claims)
	return claims, ok
}

// withRequestTimeout bounds every request with the configured deadline so a
// stuck storage round-trip cannot hold a connection open indefinitely.
func (s *Server) withRequestTimeout(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.requestTimeout <= 0 {
			next.ServeHTTP(w, r)
			return
		}
		ctx, cancel := context.WithTimeout(r.Context(), s.requestTimeout)
		defer cancel()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
