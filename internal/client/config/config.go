package config

import "time"

// Config holds runtime settings for the job-board CLI.
type Config struct {
	APIURL          string
	RequestTimeout  time.Duration
	DatabasePath    string
	StorePassphrase string
	LogLevel        string
	LogFormat       string
	JobsOnHome      int
}

// LoadDefaults populates c with sensible defaults.
func (c *Config) LoadDefaults() {
	c.APIURL = "http://localhost:8000/api"
	c.RequestTimeout = 30 * time.Second
	c.DatabasePath = "session.db"
	c.LogLevel = "info"
	c.LogFormat = "text"
	c.JobsOnHome = 6
}

// LoadConfig constructs a Config, applies defaults, then overlays values from
// JSON (if present), the environment and command-line flags. Later sources
// take precedence over earlier ones.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
