package handlers

import (
	"sort"
	"time"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

type DashboardStatsResponse struct {
	TotalUsers     int64   `json:"total_users"`
	ActiveUsers    int64   `json:"active_users"`
	TotalAdmins    int64   `json:"total_admins"`
	TotalBlogs     int64   `json:"total_blogs"`
	PublishedBlogs int64   `json:"published_blogs"`
	TotalQRCodes   int64   `json:"total_qr_codes"`
	ScannedQRCodes int64   `json:"scanned_qr_codes"`
	TotalRedeems   int64   `json:"total_redeems"`
	PendingRedeems int64   `json:"pending_redeems"`
	TotalPayments  int64   `json:"total_payments"`
	TotalPoints    int64   `json:"total_points"`
	TotalRedeemed  float64 `json:"total_redeemed"`
	TotalCatalogs  int64   `json:"total_catalogs"`
}

func GetDashboardStats(c *fiber.Ctx) error {
	var stats DashboardStatsResponse

	database.DB.Model(&models.User{}).Count(&stats.TotalUsers)
	database.DB.Model(&models.User{}).Where("status = ?", 0).Count(&stats.ActiveUsers)
	database.DB.Model(&models.Admin{}).Where("status = ?", 1).Count(&stats.TotalAdmins)
	database.DB.Model(&models.Blog{}).Count(&stats.TotalBlogs)
	database.DB.Model(&models.Blog{}).Where("status = ?", 1).Count(&stats.PublishedBlogs)
	database.DB.Model(&models.QrCode{}).Count(&stats.TotalQRCodes)
	database.DB.Model(&models.QrCode{}).Where("is_scanned = ?", true).Count(&stats.ScannedQRCodes)
	database.DB.Model(&models.RedeemTransaction{}).Count(&stats.TotalRedeems)
	database.DB.Model(&models.RedeemTransaction{}).Where("status = ?", models.RedeemPending).Count(&stats.PendingRedeems)
	database.DB.Model(&models.PaymentTransaction{}).Count(&stats.TotalPayments)
	database.DB.Model(&models.User{}).Select("COALESCE(SUM(points), 0)").Row().Scan(&stats.TotalPoints)
	database.DB.Model(&models.RedeemTransaction{}).Where("status = ?", models.RedeemCompleted).
		Select("COALESCE(SUM(amount), 0)").Row().Scan(&stats.TotalRedeemed)
	database.DB.Model(&models.CatalogItem{}).Where("status = ?", 1).Count(&stats.TotalCatalogs)

	return c.JSON(stats)
}

type RecentActivity struct {
	Type      string    `json:"type"`
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	CreatedAt time.Time `json:"created_at"`
}

func GetRecentActivities(c *fiber.Ctx) error {
	activities := []RecentActivity{}

	var users []models.User
	database.DB.Order("created_at desc").Limit(5).Find(&users)
	for _, u := range users {
		activities = append(activities, RecentActivity{Type: "user", ID: u.ID, Name: u.FirstName + " " + u.LastName, CreatedAt: u.CreatedAt})
	}

	var blogs []models.Blog
	database.DB.Order("created_at desc").Limit(5).Find(&blogs)
	for _, b := range blogs {
		activities = append(activities, RecentActivity{Type: "blog", ID: b.ID, Name: b.Title, CreatedAt: b.CreatedAt})
	}

	var redeems []models.RedeemTransaction
	database.DB.Order("created_at desc").Limit(5).Find(&redeems)
	for _, r := range redeems {
		activities = append(activities, RecentActivity{Type: "redeem", ID: r.ID, Name: r.OrderID, CreatedAt: r.CreatedAt})
	}

	sort.Slice(activities, func(i, j int) bool {
		return activities[i].CreatedAt.After(activities[j].CreatedAt)
	})
	if len(activities) > 10 {
		activities = activities[:10]
	}

	return c.JSON(activities)
}
