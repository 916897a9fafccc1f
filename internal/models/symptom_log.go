package models

import "time"

const (
	SeverityMild     = "Mild"
	SeverityModerate = "Moderate"
	SeveritySevere   = "Severe"
)

type SymptomLog struct {
	ID          uint      `gorm:"primaryKey"`
	UserID      uint      `gorm:"not null;index"`
	SymptomName string    `gorm:"not null"`
	LogDate     time.Time `gorm:"type:date;not null"`
	Severity    string
	Notes       string
}
