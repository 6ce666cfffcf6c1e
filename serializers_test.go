package auth_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	auth "github.com/Meekemma/userAuthentication"
)

func validRegistration() auth.RegistrationPayload {
	return auth.RegistrationPayload{
		Email:     "ada@example.com",
		FirstName: "Ada",
		LastName:  "Lovelace",
		Password:  "s3curePass!",
		Password2: "s3curePass!",
	}
}

func TestRegistrationPayloadValidate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(*auth.RegistrationPayload)
		wantField string
	}{
		{
			name:   "Valid payload",
			mutate: func(p *auth.RegistrationPayload) {},
		},
		{
			name: "Missing email",
			mutate: func(p *auth.RegistrationPayload) {
				p.Email = ""
			},
			wantField: "email",
		},
		{
			name: "Invalid email",
			mutate: func(p *auth.RegistrationPayload) {
				p.Email = "not-an-email"
			},
			wantField: "email",
		},
		{
			name: "Missing first name",
			mutate: func(p *auth.RegistrationPayload) {
				p.FirstName = ""
			},
			wantField: "first_name",
		},
		{
			name: "Missing last name",
			mutate: func(p *auth.RegistrationPayload) {
				p.LastName = ""
			},
			wantField: "last_name",
		},
		{
			name: "Password confirmation mismatch",
			mutate: func(p *auth.RegistrationPayload) {
				p.Password2 = "different!"
			},
			wantField: "password2",
		},
		{
			name: "Password too short",
			mutate: func(p *auth.RegistrationPayload) {
				p.Password = "short"
				p.Password2 = "short"
			},
			wantField: "password",
		},
		{
			name: "Password entirely numeric",
			mutate: func(p *auth.RegistrationPayload) {
				p.Password = "12345678"
				p.Password2 = "12345678"
			},
			wantField: "password",
		},
		{
			name: "Password equals email",
			mutate: func(p *auth.RegistrationPayload) {
				p.Password = "ada@example.com"
				p.Password2 = "ada@example.com"
			},
			wantField: "password",
		},
		{
			name: "Password equals email local part",
			mutate: func(p *auth.RegistrationPayload) {
				p.Email = "adalovelace@example.com"
				p.Password = "AdaLovelace"
				p.Password2 = "AdaLovelace"
			},
			wantField: "password",
		},
		{
			name: "Password too long",
			mutate: func(p *auth.RegistrationPayload) {
				long := strings.Repeat("a", 129)
				p.Password = long
				p.Password2 = long
			},
			wantField: "password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			payload := validRegistration()
			tt.mutate(&payload)

			err := payload.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			fields := auth.FormatValidationErrorToMap(err)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestChangePasswordPayloadValidate(t *testing.T) {
	tests := []struct {
		name      string
		payload   auth.ChangePasswordPayload
		wantField string
	}{
		{
			name: "Valid payload",
			payload: auth.ChangePasswordPayload{
				OldPassword:     "oldSecret1!",
				NewPassword:     "newSecret1!",
				ConfirmPassword: "newSecret1!",
			},
		},
		{
			name: "Missing old password",
			payload: auth.ChangePasswordPayload{
				NewPassword:     "newSecret1!",
				ConfirmPassword: "newSecret1!",
			},
			wantField: "old_password",
		},
		{
			name: "Missing new password",
			payload: auth.ChangePasswordPayload{
				OldPassword:     "oldSecret1!",
				ConfirmPassword: "newSecret1!",
			},
			wantField: "new_password",
		},
		{
			name: "Confirmation mismatch",
			payload: auth.ChangePasswordPayload{
				OldPassword:     "oldSecret1!",
				NewPassword:     "newSecret1!",
				ConfirmPassword: "otherSecret1!",
			},
			wantField: "confirm_password",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.payload.Validate()

			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}

			assert.Error(t, err)
			fields := auth.FormatValidationErrorToMap(err)
			assert.Contains(t, fields, tt.wantField)
		})
	}
}

func TestLoginPayloadValidate(t *testing.T) {
	assert.NoError(t, auth.LoginPayload{Email: "a@b.com", Password: "x"}.Validate())
	assert.Error(t, auth.LoginPayload{Email: "", Password: "x"}.Validate())
	assert.Error(t, auth.LoginPayload{Email: "nope", Password: "x"}.Validate())
	assert.Error(t, auth.LoginPayload{Email: "a@b.com", Password: ""}.Validate())
}

func TestRefreshPayloadValidate(t *testing.T) {
	assert.NoError(t, auth.RefreshPayload{Refresh: "token"}.Validate())
	assert.Error(t, auth.RefreshPayload{}.Validate())
}

func TestResetPasswordRequestPayloadValidate(t *testing.T) {
	assert.NoError(t, auth.ResetPasswordRequestPayload{Email: "a@b.com"}.Validate())
	assert.Error(t, auth.ResetPasswordRequestPayload{}.Validate())
	assert.Error(t, auth.ResetPasswordRequestPayload{Email: "nope"}.Validate())
}

func TestFormatValidationErrorToMap(t *testing.T) {
	payload := auth.RegistrationPayload{}
	err := payload.Validate()
	assert.Error(t, err)

	fields := auth.FormatValidationErrorToMap(err)
	assert.Contains(t, fields, "email")
	assert.Contains(t, fields, "first_name")
	assert.Contains(t, fields, "last_name")
	assert.Contains(t, fields, "password")
	assert.NotEmpty(t, fields["email"])

	assert.Empty(t, auth.FormatValidationErrorToMap(nil))
}
