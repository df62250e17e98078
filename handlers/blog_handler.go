package handlers

import (
	"strings"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func ListBlogs(c *fiber.Ctx) error {
	query := database.DB.Model(&models.Blog{}).Preload("Creator")

	if blogType := c.Query("type"); blogType != "" {
		query = query.Where("type = ?", blogType)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		searchTerm := "%" + search + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", searchTerm, searchTerm)
	}

	blogs := []models.Blog{}
	if err := query.Order("created_at desc").Find(&blogs).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch blogs"})
	}
	return c.JSON(blogs)
}

func GetBlog(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var blog models.Blog
	if err := database.DB.Preload("Creator").First(&blog, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
	}
	return c.JSON(blog)
}

type BlogRequest struct {
	Title       string  `json:"title" validate:"required,min=3"`
	Description string  `json:"description"`
	Img         *string `json:"img"`
	Type        int     `json:"type"`
	Status      int     `json:"status"`
}

func CreateBlog(c *fiber.Ctx) error {
	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	blogType := req.Type
	if blogType == 0 {
		blogType = 1
	}

	blog := models.Blog{
		Title:       req.Title,
		Description: req.Description,
		Img:         req.Img,
		Type:        blogType,
		Status:      req.Status,
	}
	if adminID := middleware.AdminID(c); adminID > 0 {
		blog.CreatedBy = &adminID
	}
	if err := database.DB.Create(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create blog"})
	}

	return c.Status(fiber.StatusCreated).JSON(blog)
}

func UpdateBlog(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var blog models.Blog
	if err := database.DB.First(&blog, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
	}

	var req BlogRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	blog.Title = req.Title
	blog.Description = req.Description
	blog.Img = req.Img
	if req.Type != 0 {
		blog.Type = req.Type
	}
	blog.Status = req.Status
	if err := database.DB.Save(&blog).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update blog"})
	}

	return c.JSON(blog)
}

func DeleteBlog(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	result := database.DB.Delete(&models.Blog{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete blog"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Blog not found"})
	}
	return c.JSON(fiber.Map{"message": "Blog deleted successfully"})
}
