package auth

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// AuthProvider is the enumerated origin of a user's identity.
type AuthProvider string

const (
	// ProviderEmail is direct email/password registration
	ProviderEmail AuthProvider = "email"
	// ProviderGoogle is Google federated sign in
	ProviderGoogle AuthProvider = "google"
)

// IsValid checks if the provider is one of the predefined variants
func (p AuthProvider) IsValid() bool {
	switch p {
	case ProviderEmail, ProviderGoogle:
		return true
	default:
		return false
	}
}

// ParseProvider safely parses a string into an AuthProvider
func ParseProvider(s string) (AuthProvider, bool) {
	p := AuthProvider(strings.ToLower(strings.TrimSpace(s)))
	return p, p.IsValid()
}

// User is the user model. Email is the login identifier and is always
// stored lowercase; the database enforces uniqueness on lower(email).
type User struct {
	bun.BaseModel `bun:"table:users,alias:usr"`
	ID            uuid.UUID    `bun:"id,pk,nullzero,type:uuid" json:"id,omitempty"`
	Email         string       `bun:"email,notnull,unique" json:"email,omitempty"`
	FirstName     string       `bun:"first_name,notnull" json:"first_name,omitempty"`
	LastName      string       `bun:"last_name,notnull" json:"last_name,omitempty"`
	Phone         string       `bun:"phone_number" json:"phone_number,omitempty"`
	PasswordHash  string       `bun:"password_hash" json:"-"`
	IsActive      bool         `bun:"is_active" json:"is_active"`
	IsStaff       bool         `bun:"is_staff" json:"is_staff"`
	IsSuperuser   bool         `bun:"is_superuser" json:"is_superuser"`
	IsVerified    bool         `bun:"is_verified" json:"is_verified"`
	AuthProvider  AuthProvider `bun:"auth_provider,notnull,default:'email'" json:"auth_provider,omitempty"`
	CreatedAt     *time.Time   `bun:"created_at,nullzero,default:current_timestamp" json:"created_at,omitempty"`
	UpdatedAt     *time.Time   `bun:"updated_at,nullzero,default:current_timestamp" json:"updated_at,omitempty"`
}

var _ bun.BeforeAppendModelHook = (*User)(nil)

// BeforeAppendModel normalizes the record before it hits the database:
// email is forced lowercase and timestamps are maintained.
func (u *User) BeforeAppendModel(ctx context.Context, query bun.Query) error {
	u.Email = NormalizeEmail(u.Email)

	now := time.Now()
	switch query.(type) {
	case *bun.InsertQuery:
		if u.CreatedAt == nil {
			u.CreatedAt = &now
		}
		u.UpdatedAt = &now
	case *bun.UpdateQuery:
		u.UpdatedAt = &now
	}
	return nil
}

// FullName concatenates first and last name
func (u *User) FullName() string {
	return strings.TrimSpace(u.FirstName + " " + u.LastName)
}

// Identity adapts the record to the Identity interface used by the
// token issuance path.
func (u *User) Identity() Identity {
	return authIdentity{
		id:        u.ID.String(),
		email:     u.Email,
		firstName: u.FirstName,
		lastName:  u.LastName,
		verified:  u.IsVerified,
	}
}

// NormalizeEmail lowercases and trims an email identifier. Applied on
// every write and before every credential check so that casing never
// affects identity.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
