// Package config loads runtime configuration for the sprintpilot CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Environment variables, with a .env file in the working directory
//     loaded first (see parseEnv). SPRINTPILOT_API_URL selects the backend.
//  3. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend base URL (default http://localhost:8000)
//	-d string   local database path
//	-p string   default generation provider
//	-i int      online status check interval (seconds)
//
// # JSON schema
//
// The JSON loader uses timex.Duration for intervals, so values can be either
// strings like "3s" or integer nanoseconds:
//
//	{
//	  "api_base_url": "http://localhost:8000",
//	  "online_check_interval": "3s",
//	  "export_dir": "exports"
//	}
package config
