package httpapi

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalvins/taskboard/internal/logging"
	"github.com/mkalvins/taskboard/internal/server/auth"
)

func newAuthTestServer(t *testing.T) *Server {
	t.Helper()
	logger := logging.NewSlogLogger(slog.New(slog.NewTextHandler(io.Discard, nil)))
	return NewServer(":0", logger, nil, nil, nil, testSecret, 0)
}

func TestRequireAuth(t *testing.T) {
	t.Parallel()

	srv := newAuthTestServer(t)

	validToken, err := auth.GenerateToken("u-1", "alice", []byte(testSecret), time.Hour)
	require.NoError(t, err)

	expiredToken, err := auth.GenerateToken("u-1", "alice", []byte(testSecret), -time.Hour)
	require.NoError(t, err)

	foreignToken, err := auth.GenerateToken("u-1", "alice", []byte("other-secret"), time.Hour)
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantClaims bool
	}{
		{"no header", "", http.StatusForbidden, false},
		{"not a bearer header", "Basic abc", http.StatusUnauthorized, false},
		{"empty bearer value", "Bearer ", http.StatusUnauthorized, false},
		{"garbage token", "Bearer not.a.jwt", http.StatusUnauthorized, false},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, false},
		{"wrong signing key", "Bearer " + foreignToken, http.StatusUnauthorized, false},
		{"valid token", "Bearer " + validToken, http.StatusOK, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var gotClaims *auth.Claims
			handler := srv.requireAuth(func(w http.ResponseWriter, r *http.Request) {
				gotClaims, _ = ClaimsFromContext(r.Context())
				w.WriteHeader(http.StatusOK)
			})

			req := httptest.NewRequest(http.MethodGet, "/user/me", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rec := httptest.NewRecorder()

			handler(rec, req)

			assert.Equal(t, tt.wantStatus, rec.Code)
			if tt.wantClaims {
				require.NotNil(t, gotClaims)
				assert.Equal(t, "u-1", gotClaims.UserID)
				assert.Equal(t, "alice", gotClaims.Username)
			} else {
				assert.Nil(t, gotClaims)
			}
		})
	}
}

func TestClaimsFromContext_Missing(t *testing.T) {
	t.Parallel()

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	claims, ok := ClaimsFromContext(req.Context())
	assert.False(t, ok)
	assert.Nil(t, claims)
}
