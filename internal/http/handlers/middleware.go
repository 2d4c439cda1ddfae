package handlers

import "github.com/gofiber/fiber/v2"

// APIHeaders applies the public cross-origin contract to every API response
// and short-circuits preflight with a 200 and an empty body (the storefront
// expects 200, not 204).
func APIHeaders(c *fiber.Ctx) error {
	c.Set("Access-Control-Allow-Origin", "*")
	c.Set("Access-Control-Allow-Headers", "Content-Type")
	c.Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
	if c.Method() == fiber.MethodOptions {
		c.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
		return c.Status(fiber.StatusOK).SendString("")
	}
	return c.Next()
}

// MethodNotAllowed is the catch-all for unsupported verbs on API routes.
func MethodNotAllowed(c *fiber.Ctx) error {
	return c.Status(fiber.StatusMethodNotAllowed).JSON(fiber.Map{"error": "Method not allowed"})
}
