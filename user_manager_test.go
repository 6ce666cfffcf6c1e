package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/Meekemma/userAuthentication"
)

func TestUserManagerCreateUser(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	manager := auth.NewUserManager(repo.Users())

	t.Run("Creates a user with hashed password", func(t *testing.T) {
		user, err := manager.CreateUser(ctx, "Ada@Example.com", "Ada", "Lovelace", "s3curePass!")
		require.NoError(t, err)

		assert.Equal(t, "ada@example.com", user.Email)
		assert.Equal(t, "Ada Lovelace", user.FullName())
		assert.True(t, user.IsActive)
		assert.False(t, user.IsStaff)
		assert.False(t, user.IsSuperuser)
		assert.NoError(t, auth.ComparePasswordAndHash("s3curePass!", user.PasswordHash))
	})

	t.Run("Requires email", func(t *testing.T) {
		_, err := manager.CreateUser(ctx, "", "Ada", "Lovelace", "s3curePass!")
		assert.Error(t, err)
	})

	t.Run("Requires first name", func(t *testing.T) {
		_, err := manager.CreateUser(ctx, "x@example.com", "", "Lovelace", "s3curePass!")
		assert.Error(t, err)
	})

	t.Run("Requires last name", func(t *testing.T) {
		_, err := manager.CreateUser(ctx, "x@example.com", "Ada", "", "s3curePass!")
		assert.Error(t, err)
	})

	t.Run("Rejects duplicate email", func(t *testing.T) {
		_, err := manager.CreateUser(ctx, "ADA@example.com", "Other", "Person", "s3curePass!")
		require.Error(t, err)
		assert.True(t, auth.IsDuplicateEmailError(err))
	})
}

func TestUserManagerCreateSuperuser(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	manager := auth.NewUserManager(repo.Users())

	user, err := manager.CreateSuperuser(ctx, "root@example.com", "Root", "Admin", "s3curePass!")
	require.NoError(t, err)

	assert.True(t, user.IsSuperuser)
	assert.True(t, user.IsStaff)
	assert.True(t, user.IsVerified)
	assert.True(t, user.IsActive)

	stored, err := repo.Users().GetByEmail(ctx, "root@example.com")
	require.NoError(t, err)
	assert.True(t, stored.IsSuperuser)
	assert.True(t, stored.IsStaff)
	assert.True(t, stored.IsVerified)
}
