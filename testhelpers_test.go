package auth_test

import (
	"context"
	"database/sql"
	"fmt"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	auth "github.com/Meekemma/userAuthentication"
)

// setupTestDB opens a uniquely named in-memory sqlite database and
// applies the embedded migrations.
func setupTestDB(t *testing.T) (*bun.DB, auth.RepositoryManager) {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", uuid.NewString())

	sqldb, err := sql.Open(sqliteshim.ShimName, dsn)
	require.NoError(t, err)

	// a single connection keeps the in-memory database alive
	sqldb.SetMaxOpenConns(1)

	t.Cleanup(func() {
		sqldb.Close()
	})

	require.NoError(t, auth.RunMigrations(context.Background(), sqldb, "sqlite3"))

	db := bun.NewDB(sqldb, sqlitedialect.New())
	return db, auth.NewRepositoryManager(db)
}

func registerTestUser(t *testing.T, repo auth.RepositoryManager, email, password string) *auth.User {
	t.Helper()

	handler := auth.RegisterUserHandler{Repo: repo}
	user, err := handler.Execute(context.Background(), auth.RegisterUserMessage{
		FirstName: "Ada",
		LastName:  "Lovelace",
		Email:     email,
		Password:  password,
	})
	require.NoError(t, err)
	require.NotNil(t, user)

	return user
}
