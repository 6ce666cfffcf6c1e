package admin

import (
	"embed"
	"net/http"
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/template/django/v3"
	"github.com/uptrace/bun"

	auth "github.com/Meekemma/userAuthentication"
)

//go:embed views
var viewsFS embed.FS

// NewViewEngine builds the django engine backed by the embedded
// templates. Pass it to fiber.Config.Views when mounting the admin.
func NewViewEngine() *django.Engine {
	return django.NewPathForwardingFileSystem(http.FS(viewsFS), "/views", ".html")
}

type Controller struct {
	DB     *bun.DB
	Admin  UserAdmin
	Logger auth.Logger
}

type ControllerOption func(*Controller) *Controller

func NewController(db *bun.DB, opts ...ControllerOption) *Controller {
	c := &Controller{
		DB:     db,
		Admin:  DefaultUserAdmin(),
		Logger: auth.NewDefaultLogger(),
	}

	for _, opt := range opts {
		c = opt(c)
	}

	return c
}

func WithAdmin(cfg UserAdmin) ControllerOption {
	return func(c *Controller) *Controller {
		c.Admin = cfg
		return c
	}
}

func WithLogger(l auth.Logger) ControllerOption {
	return func(c *Controller) *Controller {
		if l != nil {
			c.Logger = l
		}
		return c
	}
}

// RegisterRoutes mounts the admin screens. The caller is responsible
// for wrapping the router group in staff only middleware.
func (ctrl *Controller) RegisterRoutes(app fiber.Router) {
	app.Get("/users", ctrl.UserList)
	app.Get("/users/:id", ctrl.UserDetail)
}

// UserList renders the account list with search, filters, and the
// configured ordering applied.
func (ctrl *Controller) UserList(c *fiber.Ctx) error {
	var users []*auth.User

	q := ctrl.DB.NewSelect().Model(&users)

	if search := strings.TrimSpace(c.Query("q")); search != "" {
		pattern := "%" + strings.ToLower(search) + "%"
		q = q.WhereGroup(" AND ", func(sq *bun.SelectQuery) *bun.SelectQuery {
			for _, field := range ctrl.Admin.SearchFields {
				sq = sq.WhereOr("LOWER(CAST(?TableAlias."+field+" AS TEXT)) LIKE ?", pattern)
			}
			return sq
		})
	}

	for _, filter := range ctrl.Admin.ListFilter {
		if val := c.Query(filter); val != "" {
			q = q.Where("?TableAlias."+filter+" = ?", val == "true" || val == "1")
		}
	}

	for _, order := range ctrl.Admin.Ordering {
		if strings.HasPrefix(order, "-") {
			q = q.OrderExpr("?TableAlias." + strings.TrimPrefix(order, "-") + " DESC")
		} else {
			q = q.OrderExpr("?TableAlias." + order + " ASC")
		}
	}

	if err := q.Scan(c.Context()); err != nil {
		ctrl.Logger.Error("admin user list", "error", err)
		return c.Status(fiber.StatusInternalServerError).SendString("failed to load users")
	}

	return c.Render("users", fiber.Map{
		"title":  "Users",
		"users":  users,
		"admin":  ctrl.Admin,
		"search": c.Query("q"),
	})
}

// UserDetail renders a single account grouped by the configured
// fieldsets.
func (ctrl *Controller) UserDetail(c *fiber.Ctx) error {
	user := new(auth.User)

	err := ctrl.DB.NewSelect().
		Model(user).
		Where("?TableAlias.id = ?", c.Params("id")).
		Scan(c.Context())
	if err != nil {
		ctrl.Logger.Error("admin user detail", "id", c.Params("id"), "error", err)
		return c.Status(fiber.StatusNotFound).SendString("user not found")
	}

	return c.Render("user_detail", fiber.Map{
		"title": user.Email,
		"user":  user,
		"admin": ctrl.Admin,
	})
}
