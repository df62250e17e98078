package routes

import (
	"github.com/anocab/anocab-admin/handlers"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func QrRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	codes := api.Group("/qr-codes", middleware.Protected(), middleware.AdminRequired())
	codes.Get("", handlers.ListQrCodes)
	codes.Get("/:id", handlers.GetQrCode)
	codes.Post("", handlers.CreateQrCodes)
	codes.Put("/:id", handlers.UpdateQrCode)
	codes.Delete("/:id", handlers.DeleteQrCode)

	scans := api.Group("/qr-scans", middleware.Protected(), middleware.AdminRequired())
	scans.Get("", handlers.ListQrScans)
	scans.Get("/:id", handlers.GetQrScan)
}
