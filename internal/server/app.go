// Package server initializes and runs the application server. It connects
// the document store, wires the repositories and services, starts the HTTP
// API, and handles graceful shutdown on OS signals.
package server

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"sync"
	"syscall"

	"github.com/mkalvins/taskboard/internal/logging"
	"github.com/mkalvins/taskboard/internal/server/config"
	"github.com/mkalvins/taskboard/internal/server/httpapi"
	"github.com/mkalvins/taskboard/internal/server/repositories/projects"
	"github.com/mkalvins/taskboard/internal/server/repositories/refreshtokens"
	"github.com/mkalvins/taskboard/internal/server/repositories/tasks"
	"github.com/mkalvins/taskboard/internal/server/repositories/users"
	"github.com/mkalvins/taskboard/internal/server/services"
	"github.com/mkalvins/taskboard/internal/server/storage"
)

// ErrMissingSecretKey is returned when no signing secret is configured.
// There is deliberately no built-in default: a server signing tokens with a
// known key authenticates nobody.
var ErrMissingSecretKey = errors.New("secret key is not configured")

type App struct {
	config         *config.Config
	logger         logging.Logger
	store          *storage.Mongo
	userService    *services.UserService
	taskService    *services.TaskService
	projectService *services.ProjectService
}

func NewApp(ctx context.Context, cfg *config.Config) (*App, error) {
	if cfg.SecretKey == "" {
		return nil, ErrMissingSecretKey
	}

	logger := logging.NewSlogLogger(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	store, err := storage.NewMongo(ctx, cfg.DatabaseURI, cfg.DatabaseName)
	if err != nil {
		return nil, fmt.Errorf("db init error: %w", err)
	}

	db := store.Database()

	us := services.NewUserService(users.NewMongoRepository(db), refreshtokens.NewMongoRepository(db), cfg)
	ts := services.NewTaskService(tasks.NewMongoRepository(db))
	ps := services.NewProjectService(projects.NewMongoRepository(db))

	return &App{
		config:         cfg,
		logger:         logger,
		store:          store,
		userService:    us,
		taskService:    ts,
		projectService: ps,
	}, nil
}

func (app *App) initSignalHandler(cancelFunc context.CancelFunc) {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	go func() {
		<-sigs
		cancelFunc()
	}()
}

func (app *App) startHTTPServer(ctx context.Context, cancelFunc context.CancelFunc) {
	s := httpapi.NewServer(
		app.config.EndpointAddr,
		app.logger,
		app.userService,
		app.taskService,
		app.projectService,
		app.config.SecretKey,
		app.config.RequestTimeout,
	)

	if err := s.Run(ctx); err != nil {
		app.logger.Error(ctx, err.Error())
		cancelFunc()
	}
}

func (app *App) Run(ctx context.Context) {
	ctx, cancelFunc := context.WithCancel(ctx)
	defer cancelFunc()

	app.logger.Info(ctx, "Starting app...")

	app.initSignalHandler(cancelFunc)

	var wg sync.WaitGroup

	wg.Add(1)
	go func() {
		defer wg.Done()
		app.startHTTPServer(ctx, cancelFunc)
	}()

	wg.Wait()

	if err := app.store.Close(context.Background()); err != nil {
		app.logger.Error(ctx, "error closing storage", "error", err)
	}
}
