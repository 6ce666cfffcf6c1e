package auth

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-repository-bun"
)

// UserManager constructs valid user records. It is the only path that
// turns a cleartext password into a stored hash outside the command
// handlers.
type UserManager struct {
	repo   Users
	logger Logger
}

// NewUserManager creates a manager over the users repository
func NewUserManager(repo Users) *UserManager {
	return &UserManager{
		repo:   repo,
		logger: defLogger{},
	}
}

func (m *UserManager) WithLogger(l Logger) *UserManager {
	if l != nil {
		m.logger = l
	}
	return m
}

// CreateUser creates, saves, and returns a user with the given email,
// first name, last name, and password. Email is normalized to lowercase
// and the password is hashed before persisting.
func (m *UserManager) CreateUser(ctx context.Context, email, firstName, lastName, password string) (*User, error) {
	if email == "" {
		return nil, goerrors.New("email is required", goerrors.CategoryValidation).
			WithTextCode("EMAIL_REQUIRED")
	}

	if firstName == "" {
		return nil, goerrors.New("first name is required", goerrors.CategoryValidation).
			WithTextCode("FIRST_NAME_REQUIRED")
	}

	if lastName == "" {
		return nil, goerrors.New("last name is required", goerrors.CategoryValidation).
			WithTextCode("LAST_NAME_REQUIRED")
	}

	hash, err := HashPassword(password)
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryValidation, "invalid password provided")
	}

	user := &User{
		Email:        NormalizeEmail(email),
		FirstName:    firstName,
		LastName:     lastName,
		PasswordHash: hash,
		AuthProvider: ProviderEmail,
	}

	created, err := m.repo.Create(ctx, user)
	if err != nil {
		if IsDuplicateEmailError(err) {
			return nil, ErrDuplicateEmail
		}
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not create user")
	}

	return created, nil
}

// CreateSuperuser delegates to CreateUser and then elevates the staff,
// superuser, and verified flags in a second save.
func (m *UserManager) CreateSuperuser(ctx context.Context, email, firstName, lastName, password string) (*User, error) {
	user, err := m.CreateUser(ctx, email, firstName, lastName, password)
	if err != nil {
		return nil, err
	}

	user.IsSuperuser = true
	user.IsStaff = true
	user.IsVerified = true

	updated, err := m.repo.Update(ctx, user, repository.UpdateByID(user.ID.String()))
	if err != nil {
		return nil, goerrors.Wrap(err, goerrors.CategoryInternal, "could not elevate superuser flags")
	}

	return updated, nil
}
