package api

import (
	"errors"
	"strconv"

	"github.com/gofiber/fiber/v2"
	"github.com/sahanavh/cognicare/internal/services"
)

func (handler *Handler) AddChecklistItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	input := checklistItemInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Content cannot be empty.")
	}

	item, err := handler.checklistService.AddItem(user.ID, input.Content)
	switch {
	case errors.Is(err, services.ErrEmptyChecklistContent):
		return apiError(c, fiber.StatusBadRequest, "Content cannot be empty.")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to add item.")
	}

	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"message": "Item added!",
		"item": checklistItemView{
			ItemID:      item.ID,
			Content:     item.Content,
			IsCompleted: item.IsCompleted,
		},
	})
}

func (handler *Handler) GetChecklistItems(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	items, err := handler.checklistService.ListItems(user.ID)
	if err != nil {
		return apiError(c, fiber.StatusInternalServerError, "Failed to load checklist.")
	}

	views := make([]checklistItemView, 0, len(items))
	for _, item := range items {
		views = append(views, checklistItemView{
			ItemID:      item.ID,
			Content:     item.Content,
			IsCompleted: item.IsCompleted,
		})
	}
	return c.JSON(views)
}

func (handler *Handler) UpdateChecklistItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	itemID, err := parseItemID(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "Item not found.")
	}

	input := checklistToggleInput{}
	if err := c.BodyParser(&input); err != nil {
		return apiError(c, fiber.StatusBadRequest, "Invalid checklist input.")
	}

	// Another user's item id answers the same not-found as a missing one.
	err = handler.checklistService.SetCompleted(user.ID, itemID, input.IsCompleted)
	switch {
	case errors.Is(err, services.ErrChecklistItemNotFound):
		return apiError(c, fiber.StatusNotFound, "Item not found.")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to update item.")
	}

	return apiMessage(c, fiber.StatusOK, "Item updated!")
}

func (handler *Handler) DeleteChecklistItem(c *fiber.Ctx) error {
	user, ok := currentUser(c)
	if !ok {
		return apiError(c, fiber.StatusUnauthorized, "Authentication required.")
	}

	itemID, err := parseItemID(c)
	if err != nil {
		return apiError(c, fiber.StatusNotFound, "Item not found.")
	}

	err = handler.checklistService.RemoveItem(user.ID, itemID)
	switch {
	case errors.Is(err, services.ErrChecklistItemNotFound):
		return apiError(c, fiber.StatusNotFound, "Item not found.")
	case err != nil:
		return apiError(c, fiber.StatusInternalServerError, "Failed to delete item.")
	}

	return apiMessage(c, fiber.StatusOK, "Item deleted!")
}

func parseItemID(c *fiber.Ctx) (uint, error) {
	raw := c.Params("id")
	parsed, err := strconv.ParseUint(raw, 10, 32)
	if err != nil {
		return 0, err
	}
	return uint(parsed), nil
}
