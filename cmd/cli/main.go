package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/jkimani/safarihub/internal/cli"
	"github.com/jkimani/safarihub/internal/config"
	"github.com/jkimani/safarihub/internal/logging"
)

func main() {
	cfg := config.Load()
	logger := logging.NewJSON(os.Stderr, cfg.LogLevel)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	app, err := cli.NewApp(ctx, cfg, logger)
	if err != nil {
		log.Fatalf("%v", err)
	}

	app.Run(ctx)
}
