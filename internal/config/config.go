// Package config loads application settings from the environment.
package config

import "fmt"

// Config holds application configuration.
type Config struct {
	Server      ServerConfig
	Logger      LoggerConfig
	Auth        AuthConfig
	CORS        CORSConfig
	Interceptor InterceptorConfig
	// GinMode is the Gin framework mode (debug, release, test).
	GinMode string
}

// LoadFromEnv loads all configuration from environment variables.
func LoadFromEnv() Config {
	return Config{
		Server:      LoadServerConfigFromEnv(),
		Logger:      LoadLoggerConfigFromEnv(),
		Auth:        LoadAuthConfigFromEnv(),
		CORS:        LoadCORSConfigFromEnv(),
		Interceptor: LoadInterceptorConfigFromEnv(),
		GinMode:     GetEnv("GIN_MODE", "release"),
	}
}

// Validate validates all configuration.
func (c Config) Validate() error {
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("server config validation failed: %w", err)
	}
	if err := c.Logger.Validate(); err != nil {
		return fmt.Errorf("logger config validation failed: %w", err)
	}
	if err := c.Auth.Validate(); err != nil {
		return fmt.Errorf("auth config validation failed: %w", err)
	}

	switch c.GinMode {
	case "debug", "release", "test":
	default:
		return fmt.Errorf("invalid GIN_MODE: %s (must be: debug, release, test)", c.GinMode)
	}

	return nil
}
