// Package httpapi exposes the REST surface of the server: the auth
// endpoints, the bearer-token middleware, and the owner-scoped task and
// project routes.
package httpapi

import (
	"context"
	"net/http"
	"time"

	"github.com/mkalvins/taskboard/internal/logging"
	"github.com/mkalvins/taskboard/internal/server/services"
)

type Server struct {
	address        string
	logger         logging.Logger
	users          *services.UserService
	tasks          *services.TaskService
	projects       *services.ProjectService
	jwtSecret      []byte
	requestTimeout time.Duration
}

func NewServer(address string, l logging.Logger, us *services.UserService, ts *services.TaskService, ps *services.ProjectService, secretKey string, requestTimeout time.Duration) *Server {
	return &Server{
		address:        address,
		logger:         l.With("module", "httpapi"),
		users:          us,
		tasks:          ts,
		projects:       ps,
		jwtSecret:      []byte(secretKey),
		requestTimeout: requestTimeout,
	}
}

// Handler builds the route table. Everything under /user and /api sits
// behind the auth middleware; handlers obtain the caller's identity only
// through ClaimsFromContext.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()

	mux.HandleFunc("POST /auth/register", s.handleRegister)
	mux.HandleFunc("POST /auth/login", s.handleLogin)
	mux.HandleFunc("POST /auth/refresh", s.handleRefresh)
	mux.HandleFunc("POST /auth/logout", s.handleLogout)

	mux.HandleFunc("GET /user/me", s.requireAuth(s.handleMe))

	mux.HandleFunc("GET /api/tasks", s.requireAuth(s.handleListTasks))
	mux.HandleFunc("POST /api/tasks", s.requireAuth(s.handleCreateTask))
	mux.HandleFunc("PUT /api/tasks/{id}", s.requireAuth(s.handleUpdateTask))
	mux.HandleFunc("DELETE /api/tasks/{id}", s.requireAuth(s.handleDeleteTask))

	mux.HandleFunc("GET /api/projects", s.requireAuth(s.handleListProjects))
	mux.HandleFunc("POST /api/projects", s.requireAuth(s.handleCreateProject))
	mux.HandleFunc("PUT /api/projects/{id}", s.requireAuth(s.handleUpdateProject))
	mux.HandleFunc("DELETE /api/projects/{id}", s.requireAuth(s.handleDeleteProject))

	return s.withRequestTimeout(mux)
}

// Run serves the API until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.address,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      15 * time.Second,
	}

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping HTTP server...")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}()

	s.logger.Info(ctx, "Starting HTTP server", "address", s.address)

	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return err
	}
	return nil
}
