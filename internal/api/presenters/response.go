package presenters

import (
	"github.com/gofiber/fiber/v2"
)

// SuccessResponse writes the payload as-is; when there is no payload the
// message is returned instead so every success still has a body.
func SuccessResponse(c *fiber.Ctx, data interface{}, status int, message string) error {
	if data == nil {
		return c.Status(status).JSON(fiber.Map{"message": message})
	}
	return c.Status(status).JSON(data)
}

// ErrorResponse shapes every failure as {"error": <message>}. Internal error
// details are only exposed through the domain error text, never raw traces.
func ErrorResponse(c *fiber.Ctx, status int, message string, err error) error {
	if err != nil {
		return c.Status(status).JSON(fiber.Map{"error": err.Error()})
	}
	return c.Status(status).JSON(fiber.Map{"error": message})
}
