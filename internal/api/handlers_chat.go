package api

import (
	"strings"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahanavh/cognicare/internal/services"
)

func (handler *Handler) Chat(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	input := chatInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid chat input.")
	}
	if strings.TrimSpace(input.Message) == "" {
		return apiError(c, fiber.StatusBadRequest, "Message cannot be empty.")
	}

	reply := handler.assistant.ChatReply(c.Context(), *user, input.Message)
	return c.JSON(fiber.Map{"reply": reply})
}

func (handler *Handler) DailyMyth(c *fiber.Ctx) error {
	pair := handler.assistant.DailyMyth(c.Context())
	return c.JSON(pair)
}

func (handler *Handler) HealthAlert(c *fiber.Ctx) error {
	alert := services.LocalHealthAlert(time.Now().In(handler.location))
	return c.JSON(alert)
}
