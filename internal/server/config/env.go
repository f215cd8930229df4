package config

import (
	"os"
	"strconv"
	"time"
)

// parseEnv overlays Config fields from environment variables. Unset or empty
// variables leave the current value in place.
//
//	ADDRESS                 HTTP bind address
//	DATABASE_URI            MongoDB connection string
//	DATABASE_NAME           MongoDB database name
//	SECRET_KEY              JWT HMAC secret
//	ACCESS_TOKEN_MINUTES    access token validity, minutes
//	REFRESH_TOKEN_MINUTES   refresh token validity, minutes
func parseEnv(config *Config) {
	if v := os.Getenv("ADDRESS"); v != "" {
		config.EndpointAddr = v
	}
	if v := os.Getenv("DATABASE_URI"); v != "" {
		config.DatabaseURI = v
	}
	if v := os.Getenv("DATABASE_NAME"); v != "" {
		config.DatabaseName = v
	}
	if v := os.Getenv("SECRET_KEY"); v != "" {
		config.SecretKey = v
	}
	if v := os.Getenv("ACCESS_TOKEN_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			config.AccessTokenValidityDuration = time.Duration(m) * time.Minute
		}
	}
	if v := os.Getenv("REFRESH_TOKEN_MINUTES"); v != "" {
		if m, err := strconv.Atoi(v); err == nil {
			config.RefreshTokenValidityDuration = time.Duration(m) * time.Minute
		}
	}
}
