package auth

import (
	"errors"
	"strings"

	goerrors "github.com/goliatone/go-errors"
)

// ErrIdentityNotFound is the error we return for non found identities
var ErrIdentityNotFound = errors.New("identity not found")

// ErrNoEmptyString rejects empty secrets handed to the hasher
var ErrNoEmptyString = errors.New("value must not be an empty string")

// ErrMismatchedHashAndPassword is returned when a cleartext password
// does not match the stored hash
var ErrMismatchedHashAndPassword = errors.New("password does not match stored hash")

// ErrUnableToDecodeClaims unable to get typed claims from a parsed token
var ErrUnableToDecodeClaims = errors.New("unable to decode claims")

// ErrTokenExpired is surfaced for expired access or refresh tokens
var ErrTokenExpired = goerrors.New("authentication token expired", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_EXPIRED")

// ErrTokenMalformed is surfaced for undecodable or tampered tokens
var ErrTokenMalformed = goerrors.New("invalid authentication token", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("TOKEN_MALFORMED")

// ErrDuplicateEmail is returned when registration hits an existing
// account, regardless of the casing used
var ErrDuplicateEmail = goerrors.New("a user with this email already exists", goerrors.CategoryConflict).
	WithCode(goerrors.CodeConflict).
	WithTextCode("DUPLICATE_EMAIL")

// ErrIncorrectOldPassword is returned by the change password flow when
// the supplied current password does not verify
var ErrIncorrectOldPassword = goerrors.New("old password is incorrect", goerrors.CategoryValidation).
	WithCode(goerrors.CodeBadRequest).
	WithTextCode("INCORRECT_OLD_PASSWORD")

// ErrPasswordMismatch is returned when a password and its confirmation
// do not match
var ErrPasswordMismatch = goerrors.New("password and confirm password do not match", goerrors.CategoryValidation).
	WithCode(goerrors.CodeBadRequest).
	WithTextCode("PASSWORD_MISMATCH")

// ErrUserInactive blocks authentication for deactivated accounts
var ErrUserInactive = goerrors.New("user account is deactivated", goerrors.CategoryAuth).
	WithCode(goerrors.CodeUnauthorized).
	WithTextCode("USER_INACTIVE")

// IsTokenExpiredError will check for expired tokens
func IsTokenExpiredError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenExpired) {
		return true
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.TextCode == ErrTokenExpired.TextCode {
		return true
	}
	return strings.Contains(err.Error(), "token is expired")
}

// IsMalformedError will check for error message
func IsMalformedError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrTokenMalformed) {
		return true
	}
	var rich *goerrors.Error
	if goerrors.As(err, &rich) && rich.TextCode == ErrTokenMalformed.TextCode {
		return true
	}
	return strings.Contains(err.Error(), "token is malformed") ||
		strings.Contains(err.Error(), "missing or malformed JWT")
}

// IsDuplicateEmailError matches both our pre-insert check and the
// storage engine's unique constraint violation on lower(email).
func IsDuplicateEmailError(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrDuplicateEmail) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "unique constraint") ||
		strings.Contains(msg, "duplicate key")
}
