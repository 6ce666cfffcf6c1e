package google

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	auth "github.com/Meekemma/userAuthentication"
)

func setupUsers(t *testing.T) (auth.Users, *bun.DB) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())
	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)
	sqldb.SetMaxOpenConns(1)
	t.Cleanup(func() { sqldb.Close() })

	require.NoError(t, auth.RunMigrations(context.Background(), sqldb, "sqlite3"))

	db := bun.NewDB(sqldb, sqlitedialect.New())
	return auth.NewRepositoryManager(db).Users(), db
}

func googleClaims(email string) *auth.JWTClaims {
	return &auth.JWTClaims{
		RegisteredClaims: jwt.RegisteredClaims{Subject: "google-sub-42"},
		UID:              "google-sub-42",
		GivenName:        "Ada",
		FamilyName:       "Lovelace",
		EmailAddr:        email,
		IsVerified:       true,
		Use:              auth.TokenUseAccess,
	}
}

func stubTokenValidator(email string) auth.TokenValidator {
	return auth.TokenValidatorFunc(func(tokenString string) (auth.AuthClaims, error) {
		if tokenString != "good-token" {
			return nil, auth.ErrTokenMalformed
		}
		return googleClaims(email), nil
	})
}

func TestNewIdentityProviderValidation(t *testing.T) {
	users, _ := setupUsers(t)

	_, err := NewIdentityProvider(IdentityProviderConfig{Users: users})
	require.Error(t, err)

	_, err = NewIdentityProvider(IdentityProviderConfig{Validator: stubTokenValidator("x@y.com")})
	require.Error(t, err)
}

func TestSignInProvisionsAccount(t *testing.T) {
	users, _ := setupUsers(t)

	provider, err := NewIdentityProvider(IdentityProviderConfig{
		Validator: stubTokenValidator("Ada@Example.com"),
		Users:     users,
	})
	require.NoError(t, err)

	identity, err := provider.SignIn(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, "ada@example.com", identity.Email())

	user, err := users.GetByEmail(context.Background(), "ada@example.com")
	require.NoError(t, err)
	assert.Equal(t, auth.ProviderGoogle, user.AuthProvider)
	assert.True(t, user.IsVerified)
	assert.Equal(t, "Ada", user.FirstName)

	// A second sign-in reuses the provisioned account.
	again, err := provider.SignIn(context.Background(), "good-token")
	require.NoError(t, err)
	assert.Equal(t, identity.ID(), again.ID())
}

func TestSignInRejectsInvalidToken(t *testing.T) {
	users, _ := setupUsers(t)

	provider, err := NewIdentityProvider(IdentityProviderConfig{
		Validator: stubTokenValidator("ada@example.com"),
		Users:     users,
	})
	require.NoError(t, err)

	_, err = provider.SignIn(context.Background(), "bad-token")
	assert.True(t, auth.IsMalformedError(err))
}

func TestSignInRejectsMissingEmail(t *testing.T) {
	users, _ := setupUsers(t)

	provider, err := NewIdentityProvider(IdentityProviderConfig{
		Validator: stubTokenValidator(""),
		Users:     users,
	})
	require.NoError(t, err)

	_, err = provider.SignIn(context.Background(), "good-token")
	assert.True(t, auth.IsMalformedError(err))
}

func TestSignInRejectsInactiveAccount(t *testing.T) {
	users, db := setupUsers(t)

	provider, err := NewIdentityProvider(IdentityProviderConfig{
		Validator: stubTokenValidator("ada@example.com"),
		Users:     users,
	})
	require.NoError(t, err)

	_, err = provider.SignIn(context.Background(), "good-token")
	require.NoError(t, err)

	_, err = db.NewUpdate().
		Table("users").
		Set("is_active = ?", false).
		Where("email = ?", "ada@example.com").
		Exec(context.Background())
	require.NoError(t, err)

	_, err = provider.SignIn(context.Background(), "good-token")
	assert.ErrorIs(t, err, auth.ErrUserInactive)
}
