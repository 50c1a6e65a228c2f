package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/hoopaconnect/internal/flagx"
)

// JsonConfig is the on-disk shape of the client config file. Absent keys
// keep the current value.
type JsonConfig struct {
	ServerEndpointAddr *string `json:"server_endpoint_addr"`
	SessionDBPath      *string `json:"session_db_path"`
	LogLevel           *string `json:"log_level"`
}

// parseJson overlays Config with values from the file named by -c/-config.
// Read or decode errors panic.
func parseJson(cfg *Config) {
	path := flagx.ConfigPath()
	if path == "" {
		return
	}

	data, err := os.ReadFile(path)
	if err != nil {
		panic(err)
	}
	var jc JsonConfig
	if err := json.Unmarshal(data, &jc); err != nil {
		panic(err)
	}

	for _, f := range []struct {
		dst *string
		v   *string
	}{
		{&cfg.ServerEndpointAddr, jc.ServerEndpointAddr},
		{&cfg.SessionDBPath, jc.SessionDBPath},
		{&cfg.LogLevel, jc.LogLevel},
	} {
		if f.v != nil {
			*f.dst = *f.v
		}
	}
}
