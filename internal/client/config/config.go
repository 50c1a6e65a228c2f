package config

// Config holds runtime settings for the Hoopa Connect terminal client.
//
// Fields:
//   - ServerEndpointAddr: host:port of the backend gRPC endpoint.
//   - SessionDBPath: SQLite file that keeps the signed-in session.
//   - LogLevel: debug, info, warn or error.
type Config struct {
	ServerEndpointAddr string `env:"HC_CLIENT_SERVER_ADDR"`
	SessionDBPath      string `env:"HC_CLIENT_SESSION_DB"`
	LogLevel           string `env:"HC_CLIENT_LOG_LEVEL"`
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.ServerEndpointAddr = "127.0.0.1:50051"
	c.SessionDBPath = "hoopaconnect_session.db"
	c.LogLevel = "warn"
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON, the environment and command-line flags. Later sources take
// precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
