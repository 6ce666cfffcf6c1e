package auth_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	auth "github.com/Meekemma/userAuthentication"
)

func TestChangePasswordHandler(t *testing.T) {
	_, repo := setupTestDB(t)
	ctx := context.Background()
	handler := auth.ChangePasswordHandler{Repo: repo}

	user := registerTestUser(t, repo, "ada@example.com", "oldSecret1!")

	t.Run("Wrong old password", func(t *testing.T) {
		err := handler.Execute(ctx, auth.ChangePasswordMessage{
			User:            user,
			OldPassword:     "not-the-password",
			NewPassword:     "newSecret1!",
			ConfirmPassword: "newSecret1!",
		})
		assert.ErrorIs(t, err, auth.ErrIncorrectOldPassword)
	})

	t.Run("Confirmation mismatch", func(t *testing.T) {
		err := handler.Execute(ctx, auth.ChangePasswordMessage{
			User:            user,
			OldPassword:     "oldSecret1!",
			NewPassword:     "newSecret1!",
			ConfirmPassword: "otherSecret1!",
		})
		assert.ErrorIs(t, err, auth.ErrPasswordMismatch)
	})

	t.Run("Missing acting user", func(t *testing.T) {
		err := handler.Execute(ctx, auth.ChangePasswordMessage{
			OldPassword:     "oldSecret1!",
			NewPassword:     "newSecret1!",
			ConfirmPassword: "newSecret1!",
		})
		assert.Error(t, err)
	})

	t.Run("Changes the password", func(t *testing.T) {
		err := handler.Execute(ctx, auth.ChangePasswordMessage{
			User:            user,
			OldPassword:     "oldSecret1!",
			NewPassword:     "newSecret1!",
			ConfirmPassword: "newSecret1!",
		})
		require.NoError(t, err)

		stored, err := repo.Users().GetByEmail(ctx, user.Email)
		require.NoError(t, err)
		assert.NoError(t, auth.ComparePasswordAndHash("newSecret1!", stored.PasswordHash))
		assert.Error(t, auth.ComparePasswordAndHash("oldSecret1!", stored.PasswordHash))
	})
}
