package config

import (
	"fmt"
	"os"
)

// DefaultConfigFile is looked for in the working directory when no
// --config flag is given.
const DefaultConfigFile = ".hoopstats.kdl"

// EnvDataDir overrides the configured data directory when set. It loses
// to an explicit --data flag.
const EnvDataDir = "HOOPSTATS_DATA"

// Config holds process configuration: where the CSV dataset lives and
// how the HTTP bridge listens. Precedence, lowest to highest: built-in
// defaults, KDL config file, environment, CLI flags.
type Config struct {
	DataDir string
	Server  Server
}

// Server configures the HTTP JSON-RPC bridge.
type Server struct {
	Port int
}

// Default returns the built-in configuration.
func Default() *Config {
	return &Config{
		DataDir: "./data",
		Server:  Server{Port: 9000},
	}
}

// Load reads configuration from a KDL file, falling back to defaults
// when the file does not exist. The environment override is applied
// after the file.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		path = DefaultConfigFile
	}
	content, err := os.ReadFile(path)
	if err == nil {
		cfg, err = parseKDL(string(content))
		if err != nil {
			return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
		}
	} else if !os.IsNotExist(err) {
		return nil, fmt.Errorf("failed to read config %s: %w", path, err)
	}

	if env := os.Getenv(EnvDataDir); env != "" {
		cfg.DataDir = env
	}

	return cfg, nil
}

// Validate checks that the configuration can serve: the data directory
// must exist before any table load is attempted.
func (c *Config) Validate() error {
	info, err := os.Stat(c.DataDir)
	if err != nil || !info.IsDir() {
		return fmt.Errorf("data directory does not exist: %s", c.DataDir)
	}
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("invalid server port: %d", c.Server.Port)
	}
	return nil
}
