package config

import (
	"encoding/json"
	"os"
	"time"

	"github.com/planitapp/planit/internal/flagx"
	"github.com/planitapp/planit/internal/timex"
)

// JsonConfig is the DTO for reading JSON configuration files. Interval fields
// use timex.Duration so both "720h" strings and integer nanoseconds parse.
type JsonConfig struct {
	EndpointAddr          string         `json:"endpoint_addr"`
	DatabaseDSN           string         `json:"database_dsn"`
	SecretKey             string         `json:"secret_key"`
	TokenValidityDuration timex.Duration `json:"token_validity_duration"`
	StaticDir             string         `json:"static_dir"`
}

// parseJson loads configuration values from the JSON file named by the -c or
// -config flags. When neither flag is set, nothing is loaded. Unreadable or
// invalid files panic: a half-applied config is worse than a refused start.
func parseJson(config *Config) {

	jsonConfigFile := flagx.JsonConfigFlags()

	// nothing to load
	if jsonConfigFile == "" {
		return
	}

	c := &JsonConfig{}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
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
	if c.TokenValidityDuration.Duration != 0 {
		config.TokenValidityDuration = time.Duration(c.TokenValidityDuration.Duration)
	}
	if c.StaticDir != "" {
		config.StaticDir = c.StaticDir
	}
}
