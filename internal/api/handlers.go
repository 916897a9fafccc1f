package api

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/sahanavh/cognicare/internal/ai"
	"github.com/sahanavh/cognicare/internal/db"
	"github.com/sahanavh/cognicare/internal/services"
	"gorm.io/gorm"
)

const (
	authCookieName = "cognicare_auth"
	contextUserKey = "current_user"

	authTokenTTL = 7 * 24 * time.Hour
)

type Handler struct {
	db           *gorm.DB
	secretKey    []byte
	location     *time.Location
	cookieSecure bool

	repositories     *db.Repositories
	authService      *services.AuthService
	symptomService   *services.SymptomService
	checklistService *services.ChecklistService
	assistant        *ai.Gateway
}

func NewHandler(database *gorm.DB, secret string, location *time.Location, generator ai.TextGenerator, cookieSecure bool) *Handler {
	if location == nil {
		location = time.Local
	}

	repositories := db.NewRepositories(database)
	return &Handler{
		db:               database,
		secretKey:        []byte(secret),
		location:         location,
		cookieSecure:     cookieSecure,
		repositories:     repositories,
		authService:      services.NewAuthService(repositories.Users),
		symptomService:   services.NewSymptomService(repositories.SymptomLogs),
		checklistService: services.NewChecklistService(repositories.Checklist),
		assistant:        ai.NewGateway(generator),
	}
}

func (handler *Handler) Health(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}
