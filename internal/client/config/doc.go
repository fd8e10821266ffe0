// Package config loads runtime configuration for the job-board CLI.
//
// Sources & precedence
//
//  1. Built-in defaults (see (*Config).LoadDefaults).
//  2. Optional JSON file (see parseJson) selected via flags: -c or -config.
//  3. Environment variables with the JOBBOARD_ prefix, optionally read from
//     a .env file in the working directory (see parseEnv).
//  4. Command-line flags (see parseFlags), which override earlier values.
//
// Supported flags
//
//	-a string   backend API base URL
//	-t int      request timeout (seconds)
//	-d string   path of the session database
//
// # JSON schema
//
// Durations are strings accepted by time.ParseDuration:
//
//	{
//	  "api_url": "http://localhost:8000/api",
//	  "request_timeout": "30s",
//	  "database_path": "session.db",
//	  "log_level": "info",
//	  "log_format": "text",
//	  "jobs_on_home": 6
//	}
//
// # Environment
//
//	JOBBOARD_API_URL, JOBBOARD_REQUEST_TIMEOUT, JOBBOARD_DATABASE_PATH,
//	JOBBOARD_STORE_PASSPHRASE, JOBBOARD_LOG_LEVEL, JOBBOARD_LOG_FORMAT,
//	JOBBOARD_JOBS_ON_HOME
//
// The store passphrase is read from the environment only.
package config
