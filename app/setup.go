package app

import (
	"errors"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/taskflow/taskflow-api/auth"
	"github.com/taskflow/taskflow-api/config"
	"github.com/taskflow/taskflow-api/database"
	"github.com/taskflow/taskflow-api/handlers"
	"github.com/taskflow/taskflow-api/middleware"
	"github.com/taskflow/taskflow-api/router"
	"github.com/taskflow/taskflow-api/store"
)

// SetupAndRunApp boots the whole service: configuration, database, stores,
// credential service, HTTP app.
func SetupAndRunApp() error {
	log.Logger = zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	cfg, err := config.Load()
	if err != nil {
		return err
	}

	db, err := database.Connect(cfg.PostgresURI)
	if err != nil {
		return err
	}
	defer database.Close(db)

	users := store.NewPostgresUserStore(db)
	tasks := store.NewPostgresTaskStore(db)
	creds := auth.NewCredentialService(cfg.JWTSecret, cfg.TokenLifetime)

	app := New(cfg, users, tasks, creds)

	log.Info().Str("port", cfg.Port).Msg("starting TaskFlow API")
	return app.Listen(":" + cfg.Port)
}

// New builds the Fiber application with all middleware and routes attached.
// Tests call it directly with in-memory stores.
func New(cfg *config.Config, users store.UserStore, tasks store.TaskStore, creds *auth.CredentialService) *fiber.App {
	app := fiber.New(fiber.Config{
		DisableStartupMessage: true,
		ErrorHandler:          errorHandler,
	})

	app.Use(cors.New(cors.Config{
		AllowOrigins: cfg.CORSOrigin,
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))
	app.Use(recover.New())
	app.Use(logger.New(logger.Config{
		Format: "[${ip}]:${port} ${status} - ${method} ${path} ${latency}\n",
	}))

	router.SetupRoutes(app,
		handlers.NewAuthHandler(users, creds),
		handlers.NewTaskHandler(tasks),
		middleware.RequireAuth(creds),
	)
	config.AddSwaggerRoutes(app)

	// Anything that falls through the route table.
	app.Use(handlers.HandleNotFound)

	return app
}

// errorHandler converts every error that escapes a handler into the standard
// envelope; nothing reaches the client unformatted.
func errorHandler(c *fiber.Ctx, err error) error {
	code := fiber.StatusInternalServerError
	message := "Error interno del servidor"

	var fiberErr *fiber.Error
	if errors.As(err, &fiberErr) {
		code = fiberErr.Code
		if code != fiber.StatusInternalServerError {
			message = fiberErr.Message
		}
	}
	if code == fiber.StatusInternalServerError {
		log.Error().Err(err).Str("path", c.Path()).Msg("unhandled error")
	}

	return c.Status(code).JSON(handlers.Response{Success: false, Message: message})
}
