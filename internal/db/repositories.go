package db

import "gorm.io/gorm"

type Repositories struct {
	Users       *UserRepository
	SymptomLogs *SymptomLogRepository
	Checklist   *ChecklistRepository
}

func NewRepositories(database *gorm.DB) *Repositories {
	return &Repositories{
		Users:       NewUserRepository(database),
		SymptomLogs: NewSymptomLogRepository(database),
		Checklist:   NewChecklistRepository(database),
	}
}
