package auth

import (
	"errors"
	"strings"
	"unicode"

	validation "github.com/go-ozzo/ozzo-validation"
)

// Password policy bounds. MinPasswordLength mirrors the platform's
// default strength policy.
const (
	MinPasswordLength = 8
	MaxPasswordLength = 128
)

// ValidatePasswordStrength is a validation.RuleFunc enforcing the
// password policy: bounded length, not entirely numeric, and not equal
// to the account email or its local part.
func ValidatePasswordStrength(email string) validation.RuleFunc {
	return func(value any) error {
		password, _ := value.(string)

		if len(password) < MinPasswordLength {
			return errors.New("password is too short, it must contain at least 8 characters")
		}

		if len(password) > MaxPasswordLength {
			return errors.New("password is too long")
		}

		if isEntirelyNumeric(password) {
			return errors.New("password cannot be entirely numeric")
		}

		lowered := strings.ToLower(password)
		normalized := NormalizeEmail(email)
		if normalized != "" {
			if lowered == normalized {
				return errors.New("password is too similar to the email")
			}
			if local, _, found := strings.Cut(normalized, "@"); found && local != "" && lowered == local {
				return errors.New("password is too similar to the email")
			}
		}

		return nil
	}
}

// ValidateStringEquals will check that both values match
func ValidateStringEquals(str string) validation.RuleFunc {
	return func(value any) error {
		s, _ := value.(string)
		if s != str {
			return errors.New("values must match")
		}
		return nil
	}
}

func isEntirelyNumeric(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
