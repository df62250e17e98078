package routes

import (
	"github.com/anocab/anocab-admin/handlers"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func RedeemRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	redeems := api.Group("/redeem-transactions", middleware.Protected(), middleware.AdminRequired())
	redeems.Get("", handlers.ListRedeemTransactions)
	redeems.Post("", handlers.CreateRedeemTransaction)
	redeems.Get("/:id", handlers.GetRedeemTransaction)
	redeems.Put("/:id", handlers.UpdateRedeemTransaction)
	redeems.Delete("/:id", handlers.DeleteRedeemTransaction)

	payouts := api.Group("/redeem-payouts", middleware.Protected(), middleware.AdminRequired())
	payouts.Get("", handlers.ListRedeemPayouts)
	payouts.Post("", handlers.CreateRedeemPayout)
	payouts.Post("/mark-done", handlers.MarkRedeemPayoutDone)
	payouts.Get("/:id", handlers.GetRedeemPayout)

	payments := api.Group("/payment-transactions", middleware.Protected(), middleware.AdminRequired())
	payments.Get("", handlers.ListPaymentTransactions)
	payments.Get("/:id", handlers.GetPaymentTransaction)
	payments.Put("/:id", handlers.UpdatePaymentTransaction)
}
