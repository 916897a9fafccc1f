package services

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/sahanavh/cognicare/internal/models"
)

var (
	ErrInvalidSymptomName = errors.New("invalid symptom name")
	ErrInvalidLogDate     = errors.New("invalid log date")
	ErrLogSymptomFailed   = errors.New("log symptom failed")
)

// Calendar colors derived from severity on every read. The mapping is a
// display rule, not stored data.
const (
	ColorMild     = "#7ED321"
	ColorSevere   = "#D0021B"
	ColorModerate = "#F5A623"
)

const logDateLayout = "2006-01-02"

type SymptomLogRepository interface {
	Create(entry *models.SymptomLog) error
	ListByUser(userID uint) ([]models.SymptomLog, error)
	ListByUserOrderedByDate(userID uint) ([]models.SymptomLog, error)
}

type SymptomService struct {
	logs SymptomLogRepository
}

func NewSymptomService(logs SymptomLogRepository) *SymptomService {
	return &SymptomService{logs: logs}
}

func (service *SymptomService) LogSymptom(userID uint, name string, logDate string, severity string, notes string) (models.SymptomLog, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.SymptomLog{}, ErrInvalidSymptomName
	}

	date, err := time.Parse(logDateLayout, strings.TrimSpace(logDate))
	if err != nil {
		return models.SymptomLog{}, ErrInvalidLogDate
	}

	entry := models.SymptomLog{
		UserID:      userID,
		SymptomName: name,
		LogDate:     date,
		Severity:    strings.TrimSpace(severity),
		Notes:       notes,
	}
	if err := service.logs.Create(&entry); err != nil {
		return models.SymptomLog{}, fmt.Errorf("%w: %v", ErrLogSymptomFailed, err)
	}
	return entry, nil
}

// ListForCalendar returns every log the user owns. The calendar sends year
// and month, but the stored behavior returns the full set regardless; the
// repository deliberately has no date-scoped variant of this query.
func (service *SymptomService) ListForCalendar(userID uint) ([]models.SymptomLog, error) {
	return service.logs.ListByUser(userID)
}

func (service *SymptomService) HistoryOrderedByDate(userID uint) ([]models.SymptomLog, error) {
	return service.logs.ListByUserOrderedByDate(userID)
}

func SeverityColor(severity string) string {
	switch severity {
	case models.SeverityMild:
		return ColorMild
	case models.SeveritySevere:
		return ColorSevere
	default:
		return ColorModerate
	}
}
