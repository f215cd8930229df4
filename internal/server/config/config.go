// Package config handles configuration for the server component,
// including defaults, JSON overlay, environment variables, and
// command-line flags.
package config

import "time"

// Config holds runtime settings for the taskboard server.
//
// Fields:
//   - EndpointAddr: bind address for the HTTP API.
//   - DatabaseURI / DatabaseName: MongoDB connection string and database.
//   - SecretKey: HMAC secret for signing JWTs (HS256). There is no default;
//     the server refuses to start without one.
//   - AccessTokenValidityDuration / RefreshTokenValidityDuration: token lifetimes.
//   - RequestTimeout: per-request deadline applied by the HTTP layer.
type Config struct {
	EndpointAddr                 string
	DatabaseURI                  string
	DatabaseName                 string
	SecretKey                    string
	AccessTokenValidityDuration  time.Duration
	RefreshTokenValidityDuration time.Duration
	RequestTimeout               time.Duration
}

// LoadDefaults populates Config with development defaults. SecretKey is
// deliberately left empty: it must be supplied externally.
func (c *Config) LoadDefaults() {
	c.EndpointAddr = ":8080"
	c.DatabaseURI = "mongodb://localhost:27017"
	c.DatabaseName = "taskboard"
	c.SecretKey = ""
	c.AccessTokenValidityDuration = 2 * time.Hour
	c.RefreshTokenValidityDuration = 30 * 24 * time.Hour
	c.RequestTimeout = 10 * time.Second
}

// LoadConfig builds a Config by applying defaults, then overlaying values
// from an optional JSON file, the environment, and finally command-line flags.
func LoadConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	parseJson(cfg)
	parseEnv(cfg)
	parseFlags(cfg)
	return cfg
}
