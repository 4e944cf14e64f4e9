package router

import (
	"github.com/gofiber/fiber/v2"

	"github.com/taskflow/taskflow-api/handlers"
)

// SetupRoutes wires the route table. requireAuth guards every task route and
// the current-user lookup; registration and login stay public.
func SetupRoutes(app *fiber.App, authHandler *handlers.AuthHandler, taskHandler *handlers.TaskHandler, requireAuth fiber.Handler) {
	app.Get("/", handlers.HandleWelcome)
	app.Get("/health", handlers.HandleHealthCheck)

	auth := app.Group("/api/auth")
	auth.Post("/register", authHandler.Register)
	auth.Post("/login", authHandler.Login)
	auth.Get("/me", requireAuth, authHandler.Me)

	tasks := app.Group("/api/tasks", requireAuth)
	tasks.Post("/", taskHandler.Create)
	tasks.Get("/", taskHandler.List)
	tasks.Get("/:id", taskHandler.GetByID)
	tasks.Put("/:id", taskHandler.Update)
	tasks.Delete("/:id", taskHandler.Delete)
}
