// Package presenters renders handler results as HTTP responses.
package presenters

import (
	"github.com/bradymcatee/recipeBox/internal/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/log"
)

// SuccessResponse writes data as the response body. A nil data renders as a
// plain message object so callers always get JSON back.
func SuccessResponse(c *fiber.Ctx, data any, code int, message string) error {
	if data == nil {
		return c.Status(code).JSON(fiber.Map{"message": message})
	}
	return c.Status(code).JSON(data)
}

// ErrorResponse writes {"error": message}. The underlying error is logged
// and only echoed to the caller outside production.
func ErrorResponse(c *fiber.Ctx, code int, message string, err error) error {
	if err != nil {
		log.Errorf("%s %s: %s: %v", c.Method(), c.Path(), message, err)
		if code == fiber.StatusInternalServerError && utils.GetConfig("APP_ENV") != "production" {
			return c.Status(code).JSON(fiber.Map{"error": err.Error()})
		}
	}
	return c.Status(code).JSON(fiber.Map{"error": message})
}
