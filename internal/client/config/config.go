// Package config holds runtime settings for the planner CLI.
package config

import (
	"flag"
	"os"

	"github.com/caarlos0/env/v11"

	"github.com/planitapp/planit/internal/flagx"
)

// Config holds runtime settings for the CLI.
//
// Fields:
//   - ServerURL: base URL of the planner server (scheme included).
type Config struct {
	ServerURL string `env:"PLANIT_SERVER"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerURL = "http://localhost:4000"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// the environment and command-line flags. Later sources take precedence.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}

func parseEnv(cfg *Config) {
	if err := env.Parse(cfg); err != nil {
		panic(err)
	}
}

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-a string   base URL of the planner server
//
// The function filters os.Args to only the flags it recognizes using
// flagx.FilterArgs, avoiding collisions with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-a"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.ServerURL, "a", cfg.ServerURL, "base URL of the planner server")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
