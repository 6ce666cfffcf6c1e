package auth

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	goerrors "github.com/goliatone/go-errors"
	"github.com/goliatone/go-print"

	"github.com/Meekemma/userAuthentication/middleware/jwtware"
)

// AuthControllerRoutes holds the paths the controller mounts
type AuthControllerRoutes struct {
	Register       string
	Login          string
	Refresh        string
	SocialLogin    string
	ChangePassword string
	PasswordReset  string
}

// SocialAuthenticator resolves a third party ID token to a local
// identity. Implemented by the provider packages.
type SocialAuthenticator interface {
	SignIn(ctx context.Context, idToken string) (Identity, error)
}

// AuthController maps the HTTP surface onto the serializers and command
// handlers. Handlers validate, execute, and translate errors into
// structured JSON; they never swallow validation failures.
type AuthController struct {
	Debug  bool
	Logger Logger
	Repo   RepositoryManager
	Auther Authenticator
	Tokens TokenService
	Social SocialAuthenticator
	Routes *AuthControllerRoutes

	contextKey string
}

type AuthControllerOption func(*AuthController) *AuthController

func NewAuthController(opts ...AuthControllerOption) *AuthController {
	c := &AuthController{
		Logger: defLogger{},
		Routes: &AuthControllerRoutes{
			Register:       "/register",
			Login:          "/login",
			Refresh:        "/login/refresh",
			SocialLogin:    "/login/google",
			ChangePassword: "/change-password",
			PasswordReset:  "/password-reset",
		},
	}

	for _, opt := range opts {
		c = opt(c)
	}

	if c.Repo == nil {
		panic("Missing RepositoryManager in auth controller...")
	}

	if c.Auther == nil {
		panic("Missing Authenticator in auth controller...")
	}

	if c.Tokens == nil {
		panic("Missing TokenService in auth controller...")
	}

	return c
}

func WithControllerRepo(repo RepositoryManager) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Repo = repo
		return c
	}
}

func WithControllerAuthenticator(auther Authenticator, tokens TokenService) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Auther = auther
		c.Tokens = tokens
		return c
	}
}

func WithControllerSocial(social SocialAuthenticator) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		c.Social = social
		return c
	}
}

func WithControllerLogger(l Logger) AuthControllerOption {
	return func(c *AuthController) *AuthController {
		if l != nil {
			c.Logger = l
		}
		return c
	}
}

// RegisterAuthRoutes mounts the controller onto the fiber app. The
// change password route sits behind the JWT middleware; everything else
// is anonymous.
func RegisterAuthRoutes(app fiber.Router, controller *AuthController, cfg Config) {
	controller.contextKey = cfg.GetContextKey()

	app.Post(controller.Routes.Register, controller.RegistrationCreate)
	app.Post(controller.Routes.Login, controller.Login)
	app.Post(controller.Routes.Refresh, controller.Refresh)
	app.Post(controller.Routes.PasswordReset, controller.PasswordResetRequest)

	if controller.Social != nil {
		app.Post(controller.Routes.SocialLogin, controller.SocialLogin)
	}

	app.Put(controller.Routes.ChangePassword,
		ProtectedRouteMiddleware(controller.Tokens, cfg),
		controller.ChangePassword,
	)
}

// RegistrationCreate handles POST /register
func (a *AuthController) RegistrationCreate(c *fiber.Ctx) error {
	payload := new(RegistrationPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("register user parse payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		a.Logger.Error("register user validate payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(FormatValidationErrorToMap(err))
	}

	if a.Debug {
		fmt.Println(print.MaybePrettyJSON(payload))
	}

	registerUser := RegisterUserHandler{Repo: a.Repo}
	if _, err := registerUser.Execute(c.Context(), RegisterUserMessage{
		FirstName: payload.FirstName,
		LastName:  payload.LastName,
		Email:     payload.Email,
		Phone:     payload.Phone,
		Password:  payload.Password,
	}); err != nil {
		a.Logger.Error("register user execute", "error", err)

		if IsDuplicateEmailError(err) {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"email": ErrDuplicateEmail.Message,
			})
		}

		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "User registered successfully",
	})
}

// Login handles POST /login and returns the token pair plus the extra
// user fields alongside it.
func (a *AuthController) Login(c *fiber.Ctx) error {
	payload := new(LoginPayload)

	if err := c.BodyParser(payload); err != nil {
		a.Logger.Error("login parse payload", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(FormatValidationErrorToMap(err))
	}

	pair, identity, err := a.Auther.Login(c.Context(), payload.Email, payload.Password)
	if err != nil {
		a.Logger.Error("login failed", "email", NormalizeEmail(payload.Email), "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "no active account found with the given credentials",
		})
	}

	return c.JSON(loginResponse(pair, identity))
}

// Refresh handles POST /login/refresh
func (a *AuthController) Refresh(c *fiber.Ctx) error {
	payload := new(RefreshPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(FormatValidationErrorToMap(err))
	}

	pair, identity, err := a.Auther.Refresh(c.Context(), payload.Refresh)
	if err != nil {
		a.Logger.Error("refresh failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid or expired refresh token",
		})
	}

	return c.JSON(loginResponse(pair, identity))
}

// SocialLogin handles POST /login/google. The provider validates the
// ID token and provisions the local account on first sign-in; the
// response carries locally issued tokens.
func (a *AuthController) SocialLogin(c *fiber.Ctx) error {
	payload := new(SocialLoginPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(FormatValidationErrorToMap(err))
	}

	identity, err := a.Social.SignIn(c.Context(), payload.IDToken)
	if err != nil {
		a.Logger.Error("social login failed", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "invalid identity token",
		})
	}

	pair, err := a.Tokens.GeneratePair(identity)
	if err != nil {
		a.Logger.Error("social login token issue", "error", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "failed to issue tokens",
		})
	}

	return c.JSON(loginResponse(pair, identity))
}

// ChangePassword handles PUT /change-password for authenticated
// callers. The acting user is resolved from the validated claims and
// passed to the command explicitly.
func (a *AuthController) ChangePassword(c *fiber.Ctx) error {
	claims, ok := jwtware.ClaimsFromContext(c, a.contextKey)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	user, err := a.Repo.Users().GetByEmail(c.Context(), claims.Email())
	if err != nil {
		a.Logger.Error("change password user lookup", "error", err)
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "authentication required",
		})
	}

	payload := new(ChangePasswordPayload)
	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "failed to change password",
			"details": FormatValidationErrorToMap(err),
		})
	}

	changePassword := ChangePasswordHandler{Repo: a.Repo}
	if err := changePassword.Execute(c.Context(), ChangePasswordMessage{
		User:            user,
		OldPassword:     payload.OldPassword,
		NewPassword:     payload.NewPassword,
		ConfirmPassword: payload.ConfirmPassword,
	}); err != nil {
		a.Logger.Error("change password execute", "error", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error":   "failed to change password",
			"details": fiber.Map{changePasswordErrorField(err): err.Error()},
		})
	}

	return c.JSON(fiber.Map{
		"message": "password changed successfully",
	})
}

// PasswordResetRequest handles POST /password-reset. Only the payload
// validation half of the flow lives here; token generation and email
// dispatch are external collaborators.
func (a *AuthController) PasswordResetRequest(c *fiber.Ctx) error {
	payload := new(ResetPasswordRequestPayload)

	if err := c.BodyParser(payload); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "failed to parse request body",
		})
	}

	if err := payload.Validate(); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(FormatValidationErrorToMap(err))
	}

	// Always confirm, the response must not reveal whether the address
	// is registered.
	return c.JSON(fiber.Map{
		"message": "password reset instructions will be sent if the account exists",
	})
}

// changePasswordErrorField attributes a command failure to the request
// field that caused it.
func changePasswordErrorField(err error) string {
	switch {
	case goerrors.Is(err, ErrIncorrectOldPassword):
		return "old_password"
	case goerrors.Is(err, ErrPasswordMismatch):
		return "confirm_password"
	default:
		return "new_password"
	}
}

func loginResponse(pair TokenPair, identity Identity) fiber.Map {
	return fiber.Map{
		"access":      pair.Access,
		"refresh":     pair.Refresh,
		"user_id":     identity.ID(),
		"full_name":   identity.FullName(),
		"email":       identity.Email(),
		"is_verified": identity.Verified(),
	}
}
