package google

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	auth "github.com/Meekemma/userAuthentication"
)

// IdentityProviderConfig configures the Google identity provider.
type IdentityProviderConfig struct {
	// Validator checks the incoming ID token.
	Validator auth.TokenValidator

	// Users is the local user repository accounts are provisioned into.
	Users auth.Users

	// Logger is optional.
	Logger auth.Logger
}

// IdentityProvider resolves Google ID tokens to local accounts,
// provisioning the account on first sign-in.
type IdentityProvider struct {
	validator auth.TokenValidator
	users     auth.Users
	logger    auth.Logger
}

// NewIdentityProvider creates a Google-backed identity provider.
func NewIdentityProvider(cfg IdentityProviderConfig) (*IdentityProvider, error) {
	if cfg.Validator == nil {
		return nil, fmt.Errorf("google: token validator is required")
	}

	if cfg.Users == nil {
		return nil, fmt.Errorf("google: user repository is required")
	}

	logger := cfg.Logger
	if logger == nil {
		logger = auth.NewDefaultLogger()
	}

	return &IdentityProvider{
		validator: cfg.Validator,
		users:     cfg.Users,
		logger:    logger,
	}, nil
}

// SignIn validates the ID token and returns the matching local
// identity, creating the account on first sign-in.
func (p *IdentityProvider) SignIn(ctx context.Context, idToken string) (auth.Identity, error) {
	claims, err := p.validator.Validate(idToken)
	if err != nil {
		return nil, err
	}

	if claims.Email() == "" {
		return nil, auth.ErrTokenMalformed
	}

	user, err := p.users.GetOrCreate(ctx, mapClaimsToUser(claims))
	if err != nil {
		return nil, fmt.Errorf("google: failed to provision user: %w", err)
	}

	if !user.IsActive {
		return nil, auth.ErrUserInactive
	}

	return user.Identity(), nil
}

// FindIdentityByIdentifier implements auth.IdentityProvider.
func (p *IdentityProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (auth.Identity, error) {
	identifier = strings.TrimSpace(identifier)
	if identifier == "" {
		return nil, auth.ErrIdentityNotFound
	}

	user, err := p.users.GetByEmail(ctx, identifier)
	if err != nil {
		return nil, err
	}

	if user == nil {
		return nil, auth.ErrIdentityNotFound
	}

	return user.Identity(), nil
}

// VerifyIdentity is not supported, Google handles authentication.
func (p *IdentityProvider) VerifyIdentity(ctx context.Context, identifier, password string) (auth.Identity, error) {
	return nil, fmt.Errorf("google: direct password verification not supported; use the Google sign-in flow")
}

func mapClaimsToUser(claims auth.AuthClaims) *auth.User {
	return &auth.User{
		ID:           uuid.Nil,
		Email:        auth.NormalizeEmail(claims.Email()),
		FirstName:    claims.FirstName(),
		LastName:     claims.LastName(),
		IsActive:     true,
		IsVerified:   claims.Verified(),
		AuthProvider: auth.ProviderGoogle,
	}
}
