package auth

import (
	"context"
	"strings"

	"github.com/goliatone/go-errors"
)

// UserStore is the subset of the users repository the provider needs
type UserStore interface {
	GetByEmail(ctx context.Context, email string) (*User, error)
}

// UserProvider resolves identities against the users store and verifies
// credentials. Failure semantics are deliberately plain: a missing user
// and a wrong password both surface as ErrMismatchedHashAndPassword so
// callers cannot probe for registered addresses.
type UserProvider struct {
	store  UserStore
	logger Logger
}

// NewUserProvider will create a new UserProvider
func NewUserProvider(store UserStore) *UserProvider {
	return &UserProvider{
		store:  store,
		logger: defLogger{},
	}
}

func (u *UserProvider) WithLogger(l Logger) *UserProvider {
	if l != nil {
		u.logger = l
	}
	return u
}

// VerifyIdentity will find the user, compare the password, and return
// the identity. The identifier is normalized to lowercase first so that
// Email@Example.com and email@example.com verify identically.
func (u *UserProvider) VerifyIdentity(ctx context.Context, identifier, password string) (Identity, error) {
	user, err := u.store.GetByEmail(ctx, NormalizeEmail(identifier))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrMismatchedHashAndPassword
		}
		return nil, errors.Wrap(err, errors.CategoryInternal, "failed to retrieve user during verification")
	}

	if err := ensureAuthenticatableUser(user); err != nil {
		return nil, err
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return nil, ErrMismatchedHashAndPassword
	}

	return user.Identity(), nil
}

// FindIdentityByIdentifier resolves an identity without checking
// credentials, used by the refresh flow.
func (u *UserProvider) FindIdentityByIdentifier(ctx context.Context, identifier string) (Identity, error) {
	user, err := u.store.GetByEmail(ctx, NormalizeEmail(identifier))
	if err != nil {
		if errors.IsNotFound(err) {
			return nil, ErrIdentityNotFound
		}
		return nil, err
	}

	if err := ensureAuthenticatableUser(user); err != nil {
		return nil, err
	}

	return user.Identity(), nil
}

var _ IdentityProvider = (*UserProvider)(nil)

type authIdentity struct {
	id        string
	email     string
	firstName string
	lastName  string
	verified  bool
}

func (a authIdentity) ID() string {
	return a.id
}

func (a authIdentity) Email() string {
	return a.email
}

func (a authIdentity) FirstName() string {
	return a.firstName
}

func (a authIdentity) LastName() string {
	return a.lastName
}

// FullName concatenates the name parts the same way the user model does.
func (a authIdentity) FullName() string {
	return strings.TrimSpace(a.firstName + " " + a.lastName)
}

func (a authIdentity) Verified() bool {
	return a.verified
}

var _ Identity = authIdentity{}

func ensureAuthenticatableUser(user *User) error {
	if user == nil {
		return ErrIdentityNotFound
	}

	if !user.IsActive {
		return ErrUserInactive
	}

	return nil
}
