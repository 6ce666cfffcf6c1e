package main

import (
	"log"
	"os"
	"strconv"
)

// Config collects the runtime settings, sourced from the environment.
// It satisfies the auth.Config interface.
type Config struct {
	Addr              string
	DatabaseDSN       string
	SigningKey        string
	SigningMethod     string
	ContextKey        string
	TokenExpiration   int
	RefreshExpiration int
	TokenLookup       string
	AuthScheme        string
	Issuer            string
	Audience          []string
	GoogleClientID    string
	Debug             bool
}

func LoadConfig() Config {
	return Config{
		Addr:              getString("ADDR", ":8000"),
		DatabaseDSN:       getString("DATABASE_DSN", "file:users.db?cache=shared"),
		SigningKey:        getString("JWT_SIGNING_KEY", ""),
		SigningMethod:     getString("JWT_SIGNING_METHOD", "HS256"),
		ContextKey:        getString("JWT_CONTEXT_KEY", "user"),
		TokenExpiration:   getInt("JWT_TOKEN_EXPIRATION_HOURS", 2),
		RefreshExpiration: getInt("JWT_REFRESH_EXPIRATION_HOURS", 24*7),
		TokenLookup:       getString("JWT_TOKEN_LOOKUP", "header:Authorization"),
		AuthScheme:        getString("JWT_AUTH_SCHEME", "Bearer"),
		Issuer:            getString("JWT_ISSUER", "userAuthentication"),
		Audience:          []string{getString("JWT_AUDIENCE", "userAuthentication")},
		GoogleClientID:    getString("GOOGLE_CLIENT_ID", ""),
		Debug:             getBool("DEBUG", false),
	}
}

func (c Config) GetSigningKey() string     { return c.SigningKey }
func (c Config) GetSigningMethod() string  { return c.SigningMethod }
func (c Config) GetContextKey() string     { return c.ContextKey }
func (c Config) GetTokenExpiration() int   { return c.TokenExpiration }
func (c Config) GetRefreshExpiration() int { return c.RefreshExpiration }
func (c Config) GetTokenLookup() string    { return c.TokenLookup }
func (c Config) GetAuthScheme() string     { return c.AuthScheme }
func (c Config) GetIssuer() string         { return c.Issuer }
func (c Config) GetAudience() []string     { return c.Audience }

// getString retrieves an environment variable or returns a fallback when unset.
func getString(key, fallback string) string {
	if value, ok := os.LookupEnv(key); ok {
		return value
	}
	return fallback
}

// getInt retrieves an environment variable as integer or returns fallback.
func getInt(key string, fallback int) int {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.Atoi(value)
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}

// getBool retrieves an environment variable as bool or returns fallback.
func getBool(key string, fallback bool) bool {
	if value, ok := os.LookupEnv(key); ok {
		parsed, err := strconv.ParseBool(value)
		if err != nil {
			log.Printf("invalid value for %s: %v", key, err)
			return fallback
		}
		return parsed
	}
	return fallback
}
