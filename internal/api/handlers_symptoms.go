package api

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/sahanavh/cognicare/internal/services"
)

func (handler *Handler) LogSymptom(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	input := symptomInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid symptom input.")
	}

	_, err := handler.symptomService.LogSymptom(user.ID, input.Symptom, input.LogDate, input.Severity, input.Notes)
	switch {
	case errors.Is(err, services.ErrInvalidSymptomName):
		return apiError(c, fiber.StatusBadRequest, "Symptom name cannot be empty.")
	case errors.Is(err, services.ErrInvalidLogDate):
		return apiError(c, fiber.StatusBadRequest, "Log date must be a valid date (YYYY-MM-DD).")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to log symptom.")
	}

	return apiMessage(c, fiber.StatusCreated, "Symptom logged successfully!")
}

func (handler *Handler) GetSymptoms(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	// The calendar sends year and month, but the response always covers the
	// owner's whole history; the widget filters client-side.
	_ = c.QueryInt("year")
	_ = c.QueryInt("month")

	logs, err := handler.symptomService.ListForCalendar(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load symptoms.")
	}

	events := make([]calendarEvent, 0, len(logs))
	for _, entry := range logs {
		events = append(events, calendarEvent{
			Title: entry.SymptomName,
			Start: entry.LogDate.Format("2006-01-02"),
			Color: services.SeverityColor(entry.Severity),
			ExtendedProps: calendarEventProps{
				Notes:    entry.Notes,
				Severity: entry.Severity,
			},
		})
	}
	return c.JSON(events)
}

func (handler *Handler) AnalyzeTrends(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	logs, err := handler.symptomService.HistoryOrderedByDate(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load symptoms.")
	}

	analysis := handler.assistant.AnalyzeTrends(c.Context(), *user, logs)
	return c.JSON(fiber.Map{"analysis": analysis})
}
