package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/healthz", handler.Health)

	app.Post("/register", handler.Register)
	app.Post("/login", handler.Login)
	app.Post("/logout", handler.AuthRequired, handler.Logout)

	app.Post("/chat", handler.AuthRequired, handler.Chat)
	app.Get("/daily_myth", handler.AuthRequired, handler.DailyMyth)
	app.Get("/health_alert", handler.AuthRequired, handler.HealthAlert)

	app.Post("/log_symptom", handler.AuthRequired, handler.LogSymptom)
	app.Get("/get_symptoms", handler.AuthRequired, handler.GetSymptoms)
	app.Post("/analyze_trends", handler.AuthRequired, handler.AnalyzeTrends)

	app.Post("/add_checklist_item", handler.AuthRequired, handler.AddChecklistItem)
	app.Get("/get_checklist_items", handler.AuthRequired, handler.GetChecklistItems)
	app.Post("/update_checklist_item/:id", handler.AuthRequired, handler.UpdateChecklistItem)
	app.Post("/delete_checklist_item/:id", handler.AuthRequired, handler.DeleteChecklistItem)
}
