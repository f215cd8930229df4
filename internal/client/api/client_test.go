package api

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mkalvins/taskboard/internal/common"
)

func TestRegister_StoresTokenPair(t *testing.T) {
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/register":
			require.Equal(t, http.MethodPost, r.Method)
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "alice", body["username"])

			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(map[string]any{
				"token":         "access-1",
				"refresh_token": "refresh-1",
				"user":          map[string]string{"id": "u-1", "username": "alice"},
			})
		case "/user/me":
			gotAuth = r.Header.Get("Authorization")
			json.NewEncoder(w).Encode(map[string]string{"id": "u-1", "username": "alice"})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	require.False(t, c.IsAuthenticated())

	user, err := c.Register(context.Background(), "alice", []byte("pw"))
	require.NoError(t, err)
	assert.Equal(t, "alice", user.Username)
	assert.True(t, c.IsAuthenticated())

	_, err = c.Me(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "Bearer access-1", gotAuth)
}

func TestErrorMapping(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		wantErr error
	}{
		{"conflict", http.StatusConflict, `{"error":"user already exists"}`, common.ErrorAlreadyExists},
		{"missing credentials", http.StatusForbidden, `{"error":"missing credentials"}`, common.ErrMissingCredentials},
		{"unauthorized", http.StatusUnauthorized, `{"error":"invalid credentials"}`, common.ErrorUnauthorized},
		{"not found", http.StatusNotFound, `{"error":"not found"}`, common.ErrorNotFound},
		{"validation", http.StatusBadRequest, `{"error":"validation error"}`, common.ErrorValidation},
		{"server error", http.StatusInternalServerError, `{"error":"internal error"}`, common.ErrorInternal},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			c := NewClient(srv.URL, time.Second)
			_, err := c.Me(context.Background())
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestRefresh_RotatesPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"token":         "access-1",
				"refresh_token": "refresh-1",
				"user":          map[string]string{"id": "u-1", "username": "alice"},
			})
		case "/auth/refresh":
			var body map[string]string
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "refresh-1", body["refresh_token"])
			json.NewEncoder(w).Encode(map[string]string{
				"token":         "access-2",
				"refresh_token": "refresh-2",
			})
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.Login(context.Background(), "alice", []byte("pw"))
	require.NoError(t, err)

	require.NoError(t, c.Refresh(context.Background()))
	assert.Equal(t, "access-2", c.token)
	assert.Equal(t, "refresh-2", c.refreshToken)
}

func TestRefresh_WithoutToken(t *testing.T) {
	c := NewClient("http://localhost:0", time.Second)
	assert.ErrorIs(t, c.Refresh(context.Background()), common.ErrInvalidToken)
}

func TestLogout_ClearsPair(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/auth/login":
			json.NewEncoder(w).Encode(map[string]any{
				"token":         "access-1",
				"refresh_token": "refresh-1",
				"user":          map[string]string{"id": "u-1", "username": "alice"},
			})
		case "/auth/logout":
			w.WriteHeader(http.StatusNoContent)
		default:
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)

	_, err := c.Login(context.Background(), "alice", []byte("pw"))
	require.NoError(t, err)
	require.True(t, c.IsAuthenticated())

	require.NoError(t, c.Logout(context.Background()))
	assert.False(t, c.IsAuthenticated())

	// idempotent, no server round-trip needed
	require.NoError(t, c.Logout(context.Background()))
}

func TestTasks_CRUD(t *testing.T) {
	due := time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method + " " + r.URL.Path {
		case "POST /api/tasks":
			var body map[string]any
			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
			assert.Equal(t, "write report", body["title"])
			_, hasStatus := body["status"]
			assert.False(t, hasStatus, "empty status must be omitted")
			w.WriteHeader(http.StatusCreated)
			json.NewEncoder(w).Encode(Task{ID: "t-1", Title: "write report", Status: "Pending", Due: due})
		case "GET /api/tasks":
			json.NewEncoder(w).Encode([]Task{{ID: "t-1", Title: "write report", Status: "Pending", Due: due}})
		case "PUT /api/tasks/t-1":
			var upd TaskUpdate
			require.NoError(t, json.NewDecoder(r.Body).Decode(&upd))
			require.NotNil(t, upd.Status)
			json.NewEncoder(w).Encode(Task{ID: "t-1", Title: "write report", Status: *upd.Status, Due: due})
		case "DELETE /api/tasks/t-1":
			json.NewEncoder(w).Encode(map[string]string{"message": "task deleted"})
		default:
			t.Fatalf("unexpected request %s %s", r.Method, r.URL.Path)
		}
	}))
	defer srv.Close()

	c := NewClient(srv.URL, time.Second)
	ctx := context.Background()

	task, err := c.CreateTask(ctx, "write report", "", due)
	require.NoError(t, err)
	assert.Equal(t, "t-1", task.ID)

	list, err := c.ListTasks(ctx)
	require.NoError(t, err)
	require.Len(t, list, 1)

	status := "Completed"
	task, err = c.UpdateTask(ctx, "t-1", TaskUpdate{Status: &status})
	require.NoError(t, err)
	assert.Equal(t, "Completed", task.Status)

	require.NoError(t, c.DeleteTask(ctx, "t-1"))
}
