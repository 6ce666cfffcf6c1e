package main

import (
	"context"
	"database/sql"
	"log"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/sqlitedialect"
	"github.com/uptrace/bun/driver/sqliteshim"

	auth "github.com/Meekemma/userAuthentication"
	"github.com/Meekemma/userAuthentication/admin"
	"github.com/Meekemma/userAuthentication/middleware/jwtware"
	"github.com/Meekemma/userAuthentication/provider/google"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg := LoadConfig()

	if cfg.SigningKey == "" {
		log.Fatal("JWT_SIGNING_KEY is required")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	sqldb, err := sql.Open(sqliteshim.ShimName, cfg.DatabaseDSN)
	if err != nil {
		return err
	}
	defer sqldb.Close()

	db := bun.NewDB(sqldb, sqlitedialect.New())

	if err := auth.RunMigrations(ctx, sqldb, "sqlite3"); err != nil {
		return err
	}

	repo := auth.NewRepositoryManager(db)

	provider := auth.NewUserProvider(repo.Users())
	auther := auth.NewAuthenticator(provider, cfg)
	tokens := auther.TokenService()

	controllerOpts := []auth.AuthControllerOption{
		auth.WithControllerRepo(repo),
		auth.WithControllerAuthenticator(auther, tokens),
	}

	var googleValidator *google.TokenValidator
	if cfg.GoogleClientID != "" {
		googleValidator, err = google.NewTokenValidator(google.DefaultConfig(cfg.GoogleClientID))
		if err != nil {
			return err
		}
		defer googleValidator.Close()

		social, err := google.NewIdentityProvider(google.IdentityProviderConfig{
			Validator: googleValidator,
			Users:     repo.Users(),
		})
		if err != nil {
			return err
		}

		controllerOpts = append(controllerOpts, auth.WithControllerSocial(social))
	}

	controller := auth.NewAuthController(controllerOpts...)
	controller.Debug = cfg.Debug

	app := fiber.New(fiber.Config{
		AppName: "userAuthentication",
		Views:   admin.NewViewEngine(),
	})

	api := app.Group("/api")
	auth.RegisterAuthRoutes(api, controller, cfg)

	adminGroup := app.Group("/admin",
		auth.ProtectedRouteMiddleware(tokens, cfg),
		requireStaff(repo, cfg),
	)
	admin.NewController(db).RegisterRoutes(adminGroup)

	errCh := make(chan error, 1)
	go func() {
		errCh <- app.Listen(cfg.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
		log.Println("shutting down")
		return app.ShutdownWithTimeout(10 * time.Second)
	}
}

// requireStaff rejects authenticated callers whose account lacks the
// staff flag.
func requireStaff(repo auth.RepositoryManager, cfg auth.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		claims, ok := jwtware.ClaimsFromContext(c, cfg.GetContextKey())
		if !ok {
			return c.Status(fiber.StatusUnauthorized).SendString("authentication required")
		}

		user, err := repo.Users().GetByEmail(c.Context(), claims.Email())
		if err != nil || user == nil || !user.IsStaff {
			return c.Status(fiber.StatusForbidden).SendString("staff access required")
		}

		return c.Next()
	}
}
