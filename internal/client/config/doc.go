// Package config loads runtime configuration for the Hoopa Connect client.
//
// Sources, later ones win:
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file given with -c or -config.
//  3. HC_CLIENT_* environment variables.
//  4. Command-line flags -a, -s and -l.
//
// JSON example:
//
//	{
//	  "server_endpoint_addr": "127.0.0.1:50051",
//	  "session_db_path": "session.db",
//	  "log_level": "info"
//	}
package config
