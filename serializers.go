package auth

import (
	validation "github.com/go-ozzo/ozzo-validation"
	"github.com/go-ozzo/ozzo-validation/is"
)

// RegistrationPayload is the self-registration request body. The
// password confirmation never leaves the payload; it is checked and
// discarded.
type RegistrationPayload struct {
	Email     string `form:"email" json:"email"`
	FirstName string `form:"first_name" json:"first_name"`
	LastName  string `form:"last_name" json:"last_name"`
	Phone     string `form:"phone_number" json:"phone_number"`
	Password  string `form:"password" json:"password"`
	Password2 string `form:"password2" json:"password2"`
}

// Validate will run validation rules. Order matters: confirmation
// equality is checked before the strength policy so a mismatch is
// reported first.
func (r RegistrationPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(6, 255), is.Email),
		validation.Field(&r.FirstName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.LastName, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.Password2,
			validation.Required,
			validation.By(ValidateStringEquals(r.Password)),
		),
		validation.Field(&r.Password,
			validation.Required,
			validation.By(ValidatePasswordStrength(r.Email)),
		),
	)
}

// ChangePasswordPayload carries a password change for an authenticated
// user. The acting user is never part of the payload; handlers thread
// it in explicitly.
type ChangePasswordPayload struct {
	OldPassword     string `form:"old_password" json:"old_password"`
	NewPassword     string `form:"new_password" json:"new_password"`
	ConfirmPassword string `form:"confirm_password" json:"confirm_password"`
}

// Validate will validate the payload
func (r ChangePasswordPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.OldPassword, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.NewPassword, validation.Required, validation.Length(1, 255)),
		validation.Field(&r.ConfirmPassword,
			validation.Required,
			validation.By(ValidateStringEquals(r.NewPassword)),
		),
	)
}

// ResetPasswordRequestPayload accepts an email address for a password
// reset request. Only field validation is implemented here; token
// generation and delivery belong to an external collaborator.
type ResetPasswordRequestPayload struct {
	Email string `form:"email" json:"email"`
}

// Validate will validate the payload
func (r ResetPasswordRequestPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, validation.Length(3, 255), is.Email),
	)
}

// LoginPayload is the credential pair submitted to the token endpoint
type LoginPayload struct {
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

// Validate will run validation rules
func (r LoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Email, validation.Required, is.Email),
		validation.Field(&r.Password, validation.Required),
	)
}

// RefreshPayload carries a refresh token back to the token endpoint
type RefreshPayload struct {
	Refresh string `form:"refresh" json:"refresh"`
}

// Validate will run validation rules
func (r RefreshPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.Refresh, validation.Required),
	)
}

// SocialLoginPayload carries a third party ID token.
type SocialLoginPayload struct {
	IDToken string `json:"id_token"`
}

func (r SocialLoginPayload) Validate() error {
	return validation.ValidateStruct(&r,
		validation.Field(&r.IDToken, validation.Required),
	)
}

// FormatValidationErrorToMap flattens an ozzo validation error into a
// field to message map suitable for a 400 response body.
func FormatValidationErrorToMap(err error) map[string]string {
	out := map[string]string{}
	if err == nil {
		return out
	}

	if errs, ok := err.(validation.Errors); ok {
		for field, fieldErr := range errs {
			if fieldErr != nil {
				out[field] = fieldErr.Error()
			}
		}
		return out
	}

	out["error"] = err.Error()
	return out
}
