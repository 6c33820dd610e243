package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/crimson-sun/chartpull/internal/config"
	"github.com/crimson-sun/chartpull/internal/connector"
	"github.com/crimson-sun/chartpull/internal/logging"
	"github.com/crimson-sun/chartpull/internal/output/csvfile"
	"github.com/crimson-sun/chartpull/internal/pipeline"

	// Register connector implementations.
	_ "github.com/crimson-sun/chartpull/internal/connector/steamcharts"
)

const provider = "steamcharts"

func main() {
	if len(os.Args) != 2 {
		fmt.Println("Usage: chartpull <app_id>")
		os.Exit(1)
	}
	appID := os.Args[1]

	cfg := config.Load()
	logging.Init(logging.ParseLevel(cfg.LogLevel))

	if err := run(appID, cfg); err != nil {
		fmt.Printf("Error: %v\n", err)
		os.Exit(1)
	}
}

func run(appID string, cfg config.Config) error {
	ctor, err := connector.Get(provider)
	if err != nil {
		return err
	}
	conn := ctor()

	path := filepath.Join(cfg.OutputDir, fmt.Sprintf("steamcharts_%s.csv", appID))
	p := pipeline.New(conn, csvfile.New(path))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	connCfg := connector.ConnectorConfig{
		Endpoint: cfg.Endpoint,
		Timeout:  cfg.HTTPTimeout,
	}
	if err := p.Run(ctx, connCfg, appID); err != nil {
		p.Close()
		return err
	}
	if err := p.Close(); err != nil {
		return err
	}

	fmt.Printf("Data saved to %s\n", path)
	return nil
}
