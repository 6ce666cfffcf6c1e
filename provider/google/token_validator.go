package google

import (
	stderrors "errors"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/MicahParks/keyfunc/v2"
	"github.com/golang-jwt/jwt/v5"

	auth "github.com/Meekemma/userAuthentication"
)

// Google issues tokens under both forms of the issuer.
var acceptedIssuers = []string{defaultIssuer, "accounts.google.com"}

type idTokenClaims struct {
	jwt.RegisteredClaims
	Email         string `json:"email"`
	EmailVerified bool   `json:"email_verified"`
	GivenName     string `json:"given_name"`
	FamilyName    string `json:"family_name"`
}

// TokenValidator validates Google-issued ID tokens using JWKS.
type TokenValidator struct {
	config Config
	jwks   *keyfunc.JWKS
}

// NewTokenValidator creates a new Google ID token validator.
func NewTokenValidator(cfg Config) (*TokenValidator, error) {
	if strings.TrimSpace(cfg.ClientID) == "" {
		return nil, fmt.Errorf("google: client ID is required")
	}

	jwks, err := keyfunc.Get(cfg.jwksURL(), keyfunc.Options{
		RefreshErrorHandler: func(err error) {
			log.Printf("failed to do a background refresh of Google JWK set: %s", err)
		},
		RefreshInterval:   cfg.refreshInterval(),
		RefreshRateLimit:  time.Minute * 5,
		RefreshTimeout:    time.Second * 10,
		RefreshUnknownKID: true,
	})
	if err != nil {
		return nil, fmt.Errorf("google: failed to fetch JWK set: %w", err)
	}

	return &TokenValidator{
		config: cfg,
		jwks:   jwks,
	}, nil
}

// Validate implements auth token validation for Google ID tokens. The
// returned claims carry the profile fields the rest of the package
// expects from locally issued tokens.
func (v *TokenValidator) Validate(tokenString string) (auth.AuthClaims, error) {
	claims := &idTokenClaims{}

	token, err := jwt.ParseWithClaims(tokenString, claims, v.jwks.Keyfunc,
		jwt.WithAudience(v.config.ClientID),
		jwt.WithExpirationRequired(),
	)
	if err != nil {
		return nil, normalizeValidationError(err)
	}

	if !token.Valid {
		return nil, auth.ErrTokenMalformed
	}

	if !acceptedIssuer(claims.Issuer) {
		return nil, auth.ErrTokenMalformed.Clone().WithMetadata(map[string]any{
			"provider": "google",
			"issuer":   claims.Issuer,
		})
	}

	return mapClaims(claims), nil
}

// Close releases the background JWKS refresh goroutine.
func (v *TokenValidator) Close() {
	if v.jwks != nil {
		v.jwks.EndBackground()
	}
}

func acceptedIssuer(issuer string) bool {
	for _, accepted := range acceptedIssuers {
		if issuer == accepted {
			return true
		}
	}
	return false
}

func mapClaims(claims *idTokenClaims) *auth.JWTClaims {
	return &auth.JWTClaims{
		RegisteredClaims: claims.RegisteredClaims,
		UID:              claims.RegisteredClaims.Subject,
		GivenName:        claims.GivenName,
		FamilyName:       claims.FamilyName,
		EmailAddr:        claims.Email,
		IsVerified:       claims.EmailVerified,
		Use:              auth.TokenUseAccess,
	}
}

func normalizeValidationError(err error) error {
	if err == nil {
		return nil
	}

	clone := auth.ErrTokenMalformed.Clone()
	if stderrors.Is(err, jwt.ErrTokenExpired) {
		clone = auth.ErrTokenExpired.Clone()
	}

	if clone == nil {
		return err
	}

	clone.Source = err
	return clone.WithMetadata(map[string]any{
		"provider": "google",
		"cause":    err.Error(),
	})
}
