package config

import (
	"time"

	"github.com/caarlos0/env/v11"
)

// envConfig mirrors Config for environment parsing. JWT_SECRET and PORT keep
// the names earlier deployments were configured with.
type envConfig struct {
	EndpointAddr  string        `env:"ADDRESS"`
	Port          string        `env:"PORT"`
	DatabaseDSN   string        `env:"DATABASE_DSN"`
	SecretKey     string        `env:"JWT_SECRET"`
	TokenValidity time.Duration `env:"TOKEN_VALIDITY"`
	StaticDir     string        `env:"STATIC_DIR"`
}

// parseEnv overlays environment values onto the Config. Unset variables leave
// the existing values untouched. ADDRESS wins over PORT when both are set.
func parseEnv(config *Config) {
	c := envConfig{}
	if err := env.Parse(&c); err != nil {
		panic(err)
	}

	if c.Port != "" {
		config.EndpointAddr = ":" + c.Port
	}
	if c.EndpointAddr != "" {
		config.EndpointAddr = c.EndpointAddr
	}
	if c.DatabaseDSN != "" {
		config.DatabaseDSN = c.DatabaseDSN
	}
	if c.SecretKey != "" {
		config.SecretKey = c.SecretKey
	}
	if c.TokenValidity != 0 {
		config.TokenValidityDuration = c.TokenValidity
	}
	if c.StaticDir != "" {
		config.StaticDir = c.StaticDir
	}
}
