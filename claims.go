package auth

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Token use values carried in the token_use claim.
const (
	TokenUseAccess  = "access"
	TokenUseRefresh = "refresh"
)

// AuthClaims represents the structured claims we embed in issued tokens
type AuthClaims interface {
	Subject() string
	UserID() string
	Email() string
	FirstName() string
	LastName() string
	Verified() bool
	TokenUse() string
	Expires() time.Time
	IssuedAt() time.Time
}

// JWTClaims is the concrete implementation of AuthClaims. The struct is
// assembled once per token and serialized as-is; claims are never
// mutated after construction.
type JWTClaims struct {
	jwt.RegisteredClaims
	UID        string `json:"user_id,omitempty"`
	GivenName  string `json:"first_name,omitempty"`
	FamilyName string `json:"last_name,omitempty"`
	EmailAddr  string `json:"email,omitempty"`
	IsVerified bool   `json:"is_verified"`
	Use        string `json:"token_use,omitempty"`
}

// Verify interface compliance
var _ AuthClaims = (*JWTClaims)(nil)

// Subject returns the subject claim
func (c *JWTClaims) Subject() string {
	return c.RegisteredClaims.Subject
}

// UserID returns the user ID
func (c *JWTClaims) UserID() string {
	if c.UID != "" {
		return c.UID
	}
	return c.Subject()
}

// Email returns the email claim
func (c *JWTClaims) Email() string {
	return c.EmailAddr
}

// FirstName returns the first name claim
func (c *JWTClaims) FirstName() string {
	return c.GivenName
}

// LastName returns the last name claim
func (c *JWTClaims) LastName() string {
	return c.FamilyName
}

// Verified reports the account verification flag captured at issuance
func (c *JWTClaims) Verified() bool {
	return c.IsVerified
}

// TokenUse distinguishes access tokens from refresh tokens
func (c *JWTClaims) TokenUse() string {
	if c.Use == "" {
		return TokenUseAccess
	}
	return c.Use
}

// FullName concatenates the name claims the same way the user model does
func (c *JWTClaims) FullName() string {
	if c.GivenName == "" {
		return c.FamilyName
	}
	if c.FamilyName == "" {
		return c.GivenName
	}
	return c.GivenName + " " + c.FamilyName
}

// Expires returns the expiration time
func (c *JWTClaims) Expires() time.Time {
	if c.RegisteredClaims.ExpiresAt != nil {
		return c.RegisteredClaims.ExpiresAt.Time
	}
	return time.Time{}
}

// IssuedAt returns the issued at time
func (c *JWTClaims) IssuedAt() time.Time {
	if c.RegisteredClaims.IssuedAt != nil {
		return c.RegisteredClaims.IssuedAt.Time
	}
	return time.Time{}
}
