package models

import "time"

type ChecklistItem struct {
	ID          uint   `gorm:"primaryKey"`
	UserID      uint   `gorm:"not null;index"`
	Content     string `gorm:"not null"`
	IsCompleted bool   `gorm:"not null;default:false"`
	CreatedAt   time.Time
}
