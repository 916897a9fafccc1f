package api

import "github.com/gofiber/fiber/v2"

func apiMessage(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(fiber.Map{"message": message})
}

func apiError(c *fiber.Ctx, status int, message string) error {
	return apiMessage(c, status, message)
}
