package services

import (
	"errors"
	"fmt"
	"strings"

	"github.com/sahanavh/cognicare/internal/models"
)

var (
	ErrEmptyChecklistContent = errors.New("empty checklist content")
	ErrChecklistItemNotFound = errors.New("checklist item not found")
	ErrCreateItemFailed      = errors.New("create checklist item failed")
	ErrUpdateItemFailed      = errors.New("update checklist item failed")
	ErrDeleteItemFailed      = errors.New("delete checklist item failed")
)

type ChecklistItemRepository interface {
	Create(item *models.ChecklistItem) error
	ListByUser(userID uint) ([]models.ChecklistItem, error)
	UpdateCompletion(itemID uint, userID uint, isCompleted bool) (int64, error)
	DeleteByIDForUser(itemID uint, userID uint) (int64, error)
}

type ChecklistService struct {
	items ChecklistItemRepository
}

func NewChecklistService(items ChecklistItemRepository) *ChecklistService {
	return &ChecklistService{items: items}
}

func (service *ChecklistService) AddItem(userID uint, content string) (models.ChecklistItem, error) {
	if strings.TrimSpace(content) == "" {
		return models.ChecklistItem{}, ErrEmptyChecklistContent
	}

	item := models.ChecklistItem{
		UserID:      userID,
		Content:     content,
		IsCompleted: false,
	}
	if err := service.items.Create(&item); err != nil {
		return models.ChecklistItem{}, fmt.Errorf("%w: %v", ErrCreateItemFailed, err)
	}
	return item, nil
}

func (service *ChecklistService) ListItems(userID uint) ([]models.ChecklistItem, error) {
	return service.items.ListByUser(userID)
}

// SetCompleted only ever touches the is_completed column. The lookup is
// scoped by owner, so a foreign item id reads as not found.
func (service *ChecklistService) SetCompleted(userID uint, itemID uint, isCompleted bool) error {
	affected, err := service.items.UpdateCompletion(itemID, userID, isCompleted)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUpdateItemFailed, err)
	}
	if affected == 0 {
		return ErrChecklistItemNotFound
	}
	return nil
}

func (service *ChecklistService) RemoveItem(userID uint, itemID uint) error {
	affected, err := service.items.DeleteByIDForUser(itemID, userID)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrDeleteItemFailed, err)
	}
	if affected == 0 {
		return ErrChecklistItemNotFound
	}
	return nil
}
