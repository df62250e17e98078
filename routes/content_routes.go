package routes

import (
	"github.com/anocab/anocab-admin/handlers"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/gofiber/fiber/v2"
)

func ContentRoutes(app *fiber.App) {
	api := app.Group("/api/v1")

	blogs := api.Group("/blogs", middleware.Protected(), middleware.AdminRequired())
	blogs.Get("", handlers.ListBlogs)
	blogs.Get("/:id", handlers.GetBlog)
	blogs.Post("", handlers.CreateBlog)
	blogs.Put("/:id", handlers.UpdateBlog)
	blogs.Delete("/:id", handlers.DeleteBlog)

	catalog := api.Group("/catalog", middleware.Protected(), middleware.AdminRequired())
	catalog.Get("", handlers.ListCatalogItems)
	catalog.Get("/:id", handlers.GetCatalogItem)
	catalog.Post("", handlers.CreateCatalogItem)
	catalog.Put("/:id", handlers.UpdateCatalogItem)
	catalog.Delete("/:id", handlers.DeleteCatalogItem)
}
