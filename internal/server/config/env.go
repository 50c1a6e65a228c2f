package config

import (
	"github.com/caarlos0/env/v11"
)

// parseEnv overlays HC_* environment variables. Unset variables leave the
// field as is. A malformed value panics, same as a malformed JSON file.
func parseEnv(config *Config) {
	if err := env.Parse(config); err != nil {
		panic(err)
	}
}
