package auth_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	auth "github.com/Meekemma/userAuthentication"
)

func TestNormalizeEmail(t *testing.T) {
	tests := []struct {
		name  string
		email string
		want  string
	}{
		{
			name:  "Lowercases the whole address",
			email: "Person@Example.COM",
			want:  "person@example.com",
		},
		{
			name:  "Trims surrounding whitespace",
			email: "  a@b.com ",
			want:  "a@b.com",
		},
		{
			name:  "Already normalized",
			email: "a@b.com",
			want:  "a@b.com",
		},
		{
			name:  "Empty string",
			email: "",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, auth.NormalizeEmail(tt.email))
		})
	}
}

func TestUserFullName(t *testing.T) {
	tests := []struct {
		name string
		user auth.User
		want string
	}{
		{
			name: "Both names",
			user: auth.User{FirstName: "Ada", LastName: "Lovelace"},
			want: "Ada Lovelace",
		},
		{
			name: "First name only",
			user: auth.User{FirstName: "Ada"},
			want: "Ada",
		},
		{
			name: "Last name only",
			user: auth.User{LastName: "Lovelace"},
			want: "Lovelace",
		},
		{
			name: "No names",
			user: auth.User{},
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.user.FullName())
		})
	}
}

func TestParseProvider(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  auth.AuthProvider
		ok    bool
	}{
		{"Email provider", "email", auth.ProviderEmail, true},
		{"Google provider", "google", auth.ProviderGoogle, true},
		{"Mixed case", "Google", auth.ProviderGoogle, true},
		{"Unknown provider", "facebook", "", false},
		{"Empty", "", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := auth.ParseProvider(tt.input)
			assert.Equal(t, tt.ok, ok)
			if tt.ok {
				assert.Equal(t, tt.want, got)
				assert.True(t, got.IsValid())
			}
		})
	}
}

func TestUserIdentity(t *testing.T) {
	id := uuid.New()
	user := &auth.User{
		ID:         id,
		Email:      "ada@example.com",
		FirstName:  "Ada",
		LastName:   "Lovelace",
		IsVerified: true,
	}

	identity := user.Identity()

	assert.Equal(t, id.String(), identity.ID())
	assert.Equal(t, "ada@example.com", identity.Email())
	assert.Equal(t, "Ada", identity.FirstName())
	assert.Equal(t, "Lovelace", identity.LastName())
	assert.Equal(t, "Ada Lovelace", identity.FullName())
	assert.True(t, identity.Verified())

	partial := &auth.User{ID: id, Email: "ada@example.com", FirstName: "Ada"}
	assert.Equal(t, "Ada", partial.Identity().FullName())
}
