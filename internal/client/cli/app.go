// Package cli implements the interactive terminal client. It wraps the REST
// api client in a small read-eval-print loop with prompt helpers for text
// and password input.
package cli

import (
	"bufio"
	"context"
	"os"

	"github.com/mkalvins/taskboard/internal/client/api"
	"github.com/mkalvins/taskboard/internal/client/config"
)

type App struct {
	config   *config.Config
	api      *api.Client
	userName string
	reader   *bufio.Reader
}

func NewApp(c *config.Config) *App {
	return &App{
		config: c,
		api:    api.NewClient(c.ServerEndpointAddr, c.RequestTimeout),
		reader: bufio.NewReader(os.Stdin),
	}
}

func (a *App) isLoggedIn() bool {
	return a.api.IsAuthenticated()
}

func (a *App) Run(ctx context.Context) {
	printlnFn("Welcome to taskboard CLI (type 'help' for commands)")
	scanner := bufio.NewScanner(os.Stdin)
	runREPL(ctx, a, a.getStatus, scanner)
}

func (a *App) getStatus() string {
	if a.userName == "" {
		return ""
	}
	return "(" + a.userName + ")"
}
