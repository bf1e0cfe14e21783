package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/dunkmaster/hoopstats/internal/config"
	"github.com/dunkmaster/hoopstats/internal/version"
)

// loadConfigWithOverrides loads configuration and applies CLI flag overrides
func loadConfigWithOverrides(c *cli.Context) (*config.Config, error) {
	cfg, err := config.Load(c.String("config"))
	if err != nil {
		return nil, err
	}

	if dataFlag := c.String("data"); dataFlag != "" {
		cfg.DataDir = dataFlag
	}
	if c.IsSet("port") {
		cfg.Server.Port = c.Int("port")
	}

	return cfg, nil
}

func main() {
	app := &cli.App{
		Name:                   "hoopstats",
		Usage:                  "Local NBA CSV analytics served as JSON-RPC tools",
		Version:                version.Version,
		UseShortOptionHandling: true,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "Config file path",
				Value:   config.DefaultConfigFile,
			},
			&cli.StringFlag{
				Name:    "data",
				Aliases: []string{"d"},
				Usage:   "Directory containing the NBA CSV files (overrides config)",
			},
		},
		Commands: []*cli.Command{
			{
				Name:   "mcp",
				Usage:  "Serve the query tools over MCP stdio (for chatbot hosts)",
				Action: mcpCommand,
			},
			{
				Name:  "serve",
				Usage: "Serve the query tools over an HTTP JSON-RPC 2.0 bridge",
				Flags: []cli.Flag{
					&cli.IntFlag{
						Name:    "port",
						Aliases: []string{"p"},
						Usage:   "HTTP listen port",
					},
				},
				Action: serveCommand,
			},
			{
				Name:   "tables",
				Usage:  "Load the dataset and print the table inventory",
				Action: tablesCommand,
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
