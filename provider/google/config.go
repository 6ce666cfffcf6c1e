package google

import (
	"time"
)

const (
	defaultIssuer  = "https://accounts.google.com"
	defaultJWKSURL = "https://www.googleapis.com/oauth2/v3/certs"
)

// Config holds Google Sign-In configuration for ID token validation.
type Config struct {
	// ClientID is the OAuth client ID the token audience must match.
	ClientID string

	// JWKSURL overrides the default Google certificate endpoint
	// (optional, used in tests).
	JWKSURL string

	// RefreshInterval is how often to refresh the JWKS key set.
	// Default: 1 hour.
	RefreshInterval time.Duration
}

// DefaultConfig returns a Config with sensible defaults.
func DefaultConfig(clientID string) Config {
	return Config{
		ClientID:        clientID,
		RefreshInterval: time.Hour,
	}
}

func (c Config) jwksURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return defaultJWKSURL
}

func (c Config) refreshInterval() time.Duration {
	if c.RefreshInterval > 0 {
		return c.RefreshInterval
	}
	return time.Hour
}
