package auth

import (
	"context"
	"reflect"

	"github.com/golang-jwt/jwt/v5"
)

// Auther verifies credentials through an IdentityProvider and mints
// token pairs through the TokenService.
type Auther struct {
	provider          IdentityProvider
	signingKey        []byte
	tokenExpiration   int
	refreshExpiration int
	issuer            string
	audience          []string
	logger            Logger
	tokenService      TokenService
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(provider IdentityProvider, opts Config) *Auther {
	tokenService := NewTokenService(
		[]byte(opts.GetSigningKey()),
		opts.GetTokenExpiration(),
		opts.GetRefreshExpiration(),
		opts.GetIssuer(),
		jwt.ClaimStrings(opts.GetAudience()),
		defLogger{},
	)

	return &Auther{
		provider:          provider,
		signingKey:        []byte(opts.GetSigningKey()),
		tokenExpiration:   opts.GetTokenExpiration(),
		refreshExpiration: opts.GetRefreshExpiration(),
		issuer:            opts.GetIssuer(),
		audience:          opts.GetAudience(),
		logger:            defLogger{},
		tokenService:      tokenService,
	}
}

func (s *Auther) WithLogger(logger Logger) *Auther {
	if logger == nil {
		return s
	}
	s.logger = logger
	// Update the TokenService logger as well
	s.tokenService = NewTokenService(
		s.signingKey,
		s.tokenExpiration,
		s.refreshExpiration,
		s.issuer,
		jwt.ClaimStrings(s.audience),
		logger,
	)
	return s
}

// WithTokenService overrides the token service, mostly for tests.
func (s *Auther) WithTokenService(ts TokenService) *Auther {
	if ts != nil {
		s.tokenService = ts
	}
	return s
}

// TokenService returns the TokenService instance used by this Authenticator
func (s *Auther) TokenService() TokenService {
	return s.tokenService
}

// Login verifies the identifier/password pair and returns an
// access/refresh token pair plus the verified identity. Credential
// failures pass through unchanged from the provider; no retry or
// lockout logic is layered on top.
func (s *Auther) Login(ctx context.Context, identifier, password string) (TokenPair, Identity, error) {
	identity, err := s.provider.VerifyIdentity(ctx, identifier, password)
	if err != nil {
		s.logger.Error("Login verify identity error", "error", err)
		return TokenPair{}, nil, err
	}

	if identity == nil || reflect.ValueOf(identity).IsZero() {
		s.logger.Error("Login identity is nil or zero value")
		return TokenPair{}, nil, ErrIdentityNotFound
	}

	pair, err := s.tokenService.GeneratePair(identity)
	if err != nil {
		s.logger.Error("Login token generation error", "error", err)
		return TokenPair{}, nil, err
	}

	return pair, identity, nil
}

// Refresh exchanges a valid refresh token for a fresh pair. The
// identity is re-resolved so revoked or deactivated accounts stop
// refreshing immediately.
func (s *Auther) Refresh(ctx context.Context, refreshToken string) (TokenPair, Identity, error) {
	claims, err := s.tokenService.ValidateRefresh(refreshToken)
	if err != nil {
		s.logger.Error("Refresh token validation error", "error", err)
		return TokenPair{}, nil, err
	}

	identity, err := s.provider.FindIdentityByIdentifier(ctx, claims.Email())
	if err != nil {
		s.logger.Error("Refresh identity lookup error", "error", err)
		return TokenPair{}, nil, err
	}

	pair, err := s.tokenService.GeneratePair(identity)
	if err != nil {
		return TokenPair{}, nil, err
	}

	return pair, identity, nil
}

var _ Authenticator = (*Auther)(nil)
