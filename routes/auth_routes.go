package routes

import (
	"github.com/anocab/anocab-admin/handlers"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func AuthRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	auth := api.Group("/auth")
	auth.Post("/login", middleware.LoginRateLimit(), handlers.LoginAdmin)
}
