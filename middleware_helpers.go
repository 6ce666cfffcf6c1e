package auth

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Meekemma/userAuthentication/middleware/jwtware"
)

// tokenValidatorAdapter bridges TokenService to the middleware's
// validator interface. The concrete JWTClaims type satisfies both
// claim interfaces, only the method signatures differ.
type tokenValidatorAdapter struct {
	svc TokenService
}

func (a tokenValidatorAdapter) Validate(tokenString string) (jwtware.AuthClaims, error) {
	claims, err := a.svc.Validate(tokenString)
	if err != nil {
		return nil, err
	}
	return claims, nil
}

// NewTokenValidator wraps a TokenService for use in jwtware.Config.
func NewTokenValidator(svc TokenService) jwtware.TokenValidator {
	return tokenValidatorAdapter{svc: svc}
}

// ProtectedRouteMiddleware builds the JWT middleware for routes that
// require an authenticated caller. A missing token is an authentication
// failure on these routes, so every middleware error answers 401.
func ProtectedRouteMiddleware(tokens TokenService, cfg Config) fiber.Handler {
	return jwtware.New(jwtware.Config{
		TokenValidator: NewTokenValidator(tokens),
		SigningKey: jwtware.SigningKey{
			Key:    []byte(cfg.GetSigningKey()),
			JWTAlg: cfg.GetSigningMethod(),
		},
		AuthScheme:  cfg.GetAuthScheme(),
		ContextKey:  cfg.GetContextKey(),
		TokenLookup: cfg.GetTokenLookup(),
		ErrorHandler: func(c *fiber.Ctx, err error) error {
			return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
				"error": "authentication required",
			})
		},
	})
}
