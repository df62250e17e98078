package routes

import (
	"github.com/anocab/anocab-admin/handlers"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func AdminRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	admins := api.Group("/admins", middleware.Protected(), middleware.AdminRequired())
	admins.Get("", handlers.ListAdmins)
	admins.Get("/:id", handlers.GetAdmin)
	admins.Post("", handlers.CreateAdmin)
	admins.Put("/:id", handlers.UpdateAdmin)
	admins.Delete("/:id", handlers.DeleteAdmin)

	dashboard := api.Group("/dashboard", middleware.Protected(), middleware.AdminRequired())
	dashboard.Get("/stats", handlers.GetDashboardStats)
	dashboard.Get("/recent", handlers.GetRecentActivities)

	api.Get("/notifications", middleware.Protected(), middleware.AdminRequired(), handlers.GetNotifications)
}
