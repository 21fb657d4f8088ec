package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/tasklist-service/internal/api/http/handlers"
	"github.com/spec-kit/tasklist-service/internal/auth"
)

// RouteConfig bundles dependencies for route registration.
type RouteConfig struct {
	Health         *handlers.HealthHandler
	Users          *handlers.UsersHandler
	Tasklists      *handlers.TasklistsHandler
	Tasks          *handlers.TasksHandler
	AuthMiddleware *auth.AuthMiddleware
}

// RegisterRoutes wires HTTP routes. The identity gate runs on every request;
// only groups classified as protected additionally require an identity.
func RegisterRoutes(app *fiber.App, cfg RouteConfig) {
	app.Use(cfg.AuthMiddleware.Handle)

	app.Get("/health/live", cfg.Health.Live)
	app.Get("/health/ready", cfg.Health.Ready)

	authGroup := app.Group("/auth")
	authGroup.Post("/register", cfg.Users.Register)
	authGroup.Post("/login", cfg.Users.Login)

	tasklists := app.Group("/tasklist", groupGuards("/tasklist")...)
	tasklists.Get("/getAll", cfg.Tasklists.GetAll)
	tasklists.Get("/get/:id", cfg.Tasklists.Get)
	tasklists.Post("/create", cfg.Tasklists.Create)
	tasklists.Post("/update", cfg.Tasklists.Update)
	tasklists.Delete("/delete/:id", cfg.Tasklists.Delete)

	tasks := app.Group("/task", groupGuards("/task")...)
	tasks.Get("/getAll", cfg.Tasks.GetAll)
	tasks.Get("/get/:id", cfg.Tasks.Get)
	tasks.Post("/create", cfg.Tasks.Create)
	tasks.Post("/update", cfg.Tasks.Update)
	tasks.Delete("/delete/:id", cfg.Tasks.Delete)
}

// groupGuards resolves the guard chain for a route group from the policy table.
func groupGuards(prefix string) []fiber.Handler {
	if PolicyFor(prefix) == PolicyProtected {
		return []fiber.Handler{auth.RequireIdentity()}
	}
	return nil
}
