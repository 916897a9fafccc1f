package db

import (
	"github.com/sahanavh/cognicare/internal/models"
	"gorm.io/gorm"
)

type ChecklistRepository struct {
	database *gorm.DB
}

func NewChecklistRepository(database *gorm.DB) *ChecklistRepository {
	return &ChecklistRepository{database: database}
}

func (repo *ChecklistRepository) Create(item *models.ChecklistItem) error {
	return repo.database.Create(item).Error
}

func (repo *ChecklistRepository) ListByUser(userID uint) ([]models.ChecklistItem, error) {
	items := make([]models.ChecklistItem, 0)
	if err := repo.database.
		Where("user_id = ?", userID).
		Order("created_at ASC, id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (repo *ChecklistRepository) FindByIDForUser(itemID uint, userID uint) (models.ChecklistItem, error) {
	item := models.ChecklistItem{}
	if err := repo.database.Where("id = ? AND user_id = ?", itemID, userID).First(&item).Error; err != nil {
		return models.ChecklistItem{}, err
	}
	return item, nil
}

func (repo *ChecklistRepository) UpdateCompletion(itemID uint, userID uint, isCompleted bool) (int64, error) {
	result := repo.database.Model(&models.ChecklistItem{}).
		Where("id = ? AND user_id = ?", itemID, userID).
		Update("is_completed", isCompleted)
	return result.RowsAffected, result.Error
}

func (repo *ChecklistRepository) DeleteByIDForUser(itemID uint, userID uint) (int64, error) {
	result := repo.database.
		Where("id = ? AND user_id = ?", itemID, userID).
		Delete(&models.ChecklistItem{})
	return result.RowsAffected, result.Error
}
