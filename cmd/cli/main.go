package main

import (
	"context"

	"github.com/mkalvins/taskboard/internal/client/cli"
	"github.com/mkalvins/taskboard/internal/client/config"
)

func main() {
	ctx := context.Background()
	cfg := config.LoadConfig()
	app := cli.NewApp(cfg)
	app.Run(ctx)
}
