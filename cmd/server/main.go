package main

import (
	"context"
	"log"

	"github.com/mkalvins/taskboard/internal/server"
	"github.com/mkalvins/taskboard/internal/server/config"
)

func main() {
	ctx := context.Background()

	cfg := config.LoadConfig()

	app, err := server.NewApp(ctx, cfg)
	if err != nil {
		log.Fatalf("init error: %v", err)
	}

	app.Run(ctx)
}
