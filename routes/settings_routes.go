package routes

import (
	"github.com/anocab/anocab-admin/handlers"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func SettingsRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	calc := api.Group("/calculator-data", middleware.Protected(), middleware.AdminRequired())
	calc.Get("", handlers.ListCalculatorData)
	calc.Get("/:id", handlers.GetCalculatorData)
	calc.Post("", handlers.CreateCalculatorData)
	calc.Put("/:id", handlers.UpdateCalculatorData)
	calc.Delete("/:id", handlers.DeleteCalculatorData)

	points := api.Group("/point-value-settings", middleware.Protected(), middleware.AdminRequired())
	points.Get("", handlers.GetPointValueSetting)
	points.Put("", handlers.UpdatePointValueSetting)
}
