package routes

import (
	"github.com/anocab/anocab-admin/handlers"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func UserRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	users := api.Group("/users", middleware.Protected(), middleware.AdminRequired())
	users.Get("", handlers.ListUsers)
	users.Get("/:id", handlers.GetUser)
	users.Get("/:id/redeemable", handlers.GetUserRedeemable)
	users.Post("", handlers.CreateUser)
	users.Put("/:id", handlers.UpdateUser)
	users.Delete("/:id", handlers.DeleteUser)

	kyc := api.Group("/user-kyc", middleware.Protected(), middleware.AdminRequired())
	kyc.Get("", handlers.ListKycRecords)
	kyc.Get("/user/:userId", handlers.GetKycByUser)
	kyc.Get("/:id", handlers.GetKycRecord)
	kyc.Post("", handlers.UpsertKyc)
	kyc.Put("/:id/approval", handlers.UpdateKycApproval)
}
