package handlers

import "github.com/gofiber/fiber/v2"

// HandleHealthCheck reports service liveness.
func HandleHealthCheck(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{"status": "ok"})
}

// HandleWelcome answers the API root with a pointer to the documentation.
func HandleWelcome(c *fiber.Ctx) error {
	return c.Status(fiber.StatusOK).JSON(fiber.Map{
		"message":       "Bienvenido a TaskFlow API",
		"version":       "1.0.0",
		"documentation": "/api-docs",
	})
}

// HandleNotFound terminates the middleware chain for unrecognized routes.
func HandleNotFound(c *fiber.Ctx) error {
	return fail(c, fiber.StatusNotFound, "Ruta no encontrada")
}
