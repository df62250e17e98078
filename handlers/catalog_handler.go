package handlers

import (
	"strings"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/middleware"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

func ListCatalogItems(c *fiber.Ctx) error {
	query := database.DB.Model(&models.CatalogItem{}).Preload("Creator")

	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if search := strings.TrimSpace(c.Query("search")); search != "" {
		query = query.Where("title LIKE ?", "%"+search+"%")
	}

	items := []models.CatalogItem{}
	if err := query.Order("created_at desc").Find(&items).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to fetch catalog"})
	}
	return c.JSON(items)
}

func GetCatalogItem(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var item models.CatalogItem
	if err := database.DB.Preload("Creator").First(&item, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catalog item not found"})
	}
	return c.JSON(item)
}

type CatalogItemRequest struct {
	Title    string  `json:"title" validate:"required,min=3"`
	Link     string  `json:"link" validate:"required,url"`
	FileType string  `json:"file_type" validate:"omitempty,oneof=pdf image video"`
	FileSize *string `json:"file_size"`
	Status   int     `json:"status"`
}

func CreateCatalogItem(c *fiber.Ctx) error {
	var req CatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	fileType := req.FileType
	if fileType == "" {
		fileType = "pdf"
	}

	item := models.CatalogItem{
		Title:    req.Title,
		Link:     req.Link,
		FileType: fileType,
		FileSize: req.FileSize,
		Status:   req.Status,
	}
	if adminID := middleware.AdminID(c); adminID > 0 {
		item.CreatedBy = &adminID
	}
	if err := database.DB.Create(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to create catalog item"})
	}

	return c.Status(fiber.StatusCreated).JSON(item)
}

func UpdateCatalogItem(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	var item models.CatalogItem
	if err := database.DB.First(&item, "id = ?", id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catalog item not found"})
	}

	var req CatalogItemRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Cannot parse JSON"})
	}
	if err := validate.Struct(req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": err.Error()})
	}

	item.Title = req.Title
	item.Link = req.Link
	if req.FileType != "" {
		item.FileType = req.FileType
	}
	item.FileSize = req.FileSize
	item.Status = req.Status
	if err := database.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to update catalog item"})
	}

	return c.JSON(item)
}

func DeleteCatalogItem(c *fiber.Ctx) error {
	id, err := positiveIntParam(c, "id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"error": "Invalid id"})
	}

	result := database.DB.Delete(&models.CatalogItem{}, "id = ?", id)
	if result.Error != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{"error": "Failed to delete catalog item"})
	}
	if result.RowsAffected == 0 {
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{"error": "Catalog item not found"})
	}
	return c.JSON(fiber.Map{"message": "Catalog item deleted successfully"})
}
