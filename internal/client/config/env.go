package config

import (
	"time"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
)

const envPrefix = "jobboard"

// EnvConfig mirrors Config for envconfig. Pointers distinguish "unset" from
// a zero value so only variables that are present override earlier sources.
type EnvConfig struct {
	APIURL          *string        `envconfig:"API_URL"`
	RequestTimeout  *time.Duration `envconfig:"REQUEST_TIMEOUT"`
	DatabasePath    *string        `envconfig:"DATABASE_PATH"`
	StorePassphrase *string        `envconfig:"STORE_PASSPHRASE"`
	LogLevel        *string        `envconfig:"LOG_LEVEL"`
	LogFormat       *string        `envconfig:"LOG_FORMAT"`
	JobsOnHome      *int           `envconfig:"JOBS_ON_HOME"`
}

// parseEnv overlays Config with JOBBOARD_* variables. A .env file in the
// working directory is loaded first if it exists. It panics on malformed
// values.
func parseEnv(cfg *Config) {
	_ = godotenv.Load()

	var ec EnvConfig
	if err := envconfig.Process(envPrefix, &ec); err != nil {
		panic(err)
	}

	if ec.APIURL != nil {
		cfg.APIURL = *ec.APIURL
	}
	if ec.RequestTimeout != nil {
		cfg.RequestTimeout = *ec.RequestTimeout
	}
	if ec.DatabasePath != nil {
		cfg.DatabasePath = *ec.DatabasePath
	}
	if ec.StorePassphrase != nil {
		cfg.StorePassphrase = *ec.StorePassphrase
	}
	if ec.LogLevel != nil {
		cfg.LogLevel = *ec.LogLevel
	}
	if ec.LogFormat != nil {
		cfg.LogFormat = *ec.LogFormat
	}
	if ec.JobsOnHome != nil {
		cfg.JobsOnHome = *ec.JobsOnHome
	}
}
