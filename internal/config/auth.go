package config

import (
	"errors"
	"fmt"
	"os"
)

// AuthConfig holds bearer token verification settings.
// Exactly one of JWTSecret (HS256) or PublicKeyFile (RS256) must be set.
type AuthConfig struct {
	JWTSecret     string
	PublicKeyFile string
	// Issuer and Audience are checked only when non-empty.
	Issuer   string
	Audience string
	// ClientID selects the resource_access entry whose roles are merged
	// with the realm roles.
	ClientID string
}

// LoadAuthConfigFromEnv loads auth configuration from environment variables.
func LoadAuthConfigFromEnv() AuthConfig {
	return AuthConfig{
		JWTSecret:     GetEnv("AUTH_JWT_SECRET", ""),
		PublicKeyFile: GetEnv("AUTH_JWT_PUBLIC_KEY_FILE", ""),
		Issuer:        GetEnv("AUTH_ISSUER", ""),
		Audience:      GetEnv("AUTH_AUDIENCE", ""),
		ClientID:      GetEnv("AUTH_CLIENT_ID", "ticketing-rest-api"),
	}
}

// Validate validates auth configuration.
func (c AuthConfig) Validate() error {
	switch {
	case c.JWTSecret == "" && c.PublicKeyFile == "":
		return errors.New("one of AUTH_JWT_SECRET or AUTH_JWT_PUBLIC_KEY_FILE is required")
	case c.JWTSecret != "" && c.PublicKeyFile != "":
		return errors.New("AUTH_JWT_SECRET and AUTH_JWT_PUBLIC_KEY_FILE are mutually exclusive")
	}
	if c.PublicKeyFile != "" {
		if _, err := os.Stat(c.PublicKeyFile); err != nil {
			return fmt.Errorf("public key file: %w", err)
		}
	}
	return nil
}
