package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/dunkmaster/hoopstats/internal/bridge"
	"github.com/dunkmaster/hoopstats/internal/config"
	"github.com/dunkmaster/hoopstats/internal/dataset"
	"github.com/dunkmaster/hoopstats/internal/debug"
	"github.com/dunkmaster/hoopstats/internal/mcp"
	"github.com/dunkmaster/hoopstats/internal/query"
)

// loadDataset validates config and performs the one-time startup load.
// Any missing required table is fatal before serving begins.
func loadDataset(ctx context.Context, cfg *config.Config) (*dataset.Dataset, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return dataset.NewLoader(cfg.DataDir).LoadAll(ctx)
}

// mcpCommand serves the tools over stdio for an MCP host.
func mcpCommand(c *cli.Context) error {
	// Keep stdout clean for protocol frames before anything loads
	debug.SetMCPMode(true)

	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	errChan := make(chan error, 1)
	go func() {
		errChan <- mcp.NewServer(ds).Start(ctx)
	}()

	select {
	case err := <-errChan:
		return err
	case sig := <-sigChan:
		debug.LogMCP("received signal %v, shutting down\n", sig)
		cancel()
		select {
		case <-errChan:
		case <-time.After(2 * time.Second):
		}
		return nil
	}
}

// serveCommand runs the HTTP JSON-RPC bridge.
func serveCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	ds, err := loadDataset(ctx, cfg)
	if err != nil {
		return err
	}

	srv := bridge.NewServer(cfg.Server.Port, ds)

	errChan := make(chan error, 1)
	go func() {
		errChan <- srv.Start()
	}()

	fmt.Printf("hoopstats bridge listening on :%d (POST /jsonrpc)\n", cfg.Server.Port)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errChan:
		return err
	case <-srv.ShutdownRequested():
		fmt.Println("shutdown requested by client")
	case sig := <-sigChan:
		fmt.Printf("received signal %v, shutting down\n", sig)
	}

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown error: %w", err)
	}
	return nil
}

// tablesCommand loads the dataset and prints the inventory.
func tablesCommand(c *cli.Context) error {
	cfg, err := loadConfigWithOverrides(c)
	if err != nil {
		return err
	}

	ds, err := loadDataset(context.Background(), cfg)
	if err != nil {
		return err
	}

	info := query.DatasetInfo(ds)
	fmt.Printf("%-22s %8s %8s  %-16s %s\n", "TABLE", "ROWS", "COLS", "XXH64", "FILE")
	for _, t := range info.Tables {
		fmt.Printf("%-22s %8d %8d  %-16s %s\n", t.Name, t.Rows, t.Columns, t.Fingerprint, t.File)
	}
	return nil
}
