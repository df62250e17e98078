package handlers

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
	"github.com/gofiber/fiber/v2"
)

type NotificationItem struct {
	Type      string    `json:"type"`
	RefID     uint      `json:"ref_id"`
	Title     string    `json:"title"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

func clampIntQuery(c *fiber.Ctx, key string, def, min, max int) int {
	raw := c.Query(key)
	if raw == "" {
		return def
	}
	n, err := strconv.Atoi(raw)
	if err != nil {
		return def
	}
	if n < min {
		return min
	}
	if n > max {
		return max
	}
	return n
}

// GetNotifications builds the polled admin feed: recent signups, pending
// redeems, pending KYC submissions and completed payouts merged together,
// newest first.
func GetNotifications(c *fiber.Ctx) error {
	limit := clampIntQuery(c, "limit", 20, 1, 100)
	perType := clampIntQuery(c, "per_type", 10, 1, 50)

	items := []NotificationItem{}

	var users []models.User
	database.DB.Order("created_at desc").Limit(perType).Find(&users)
	for _, u := range users {
		items = append(items, NotificationItem{
			Type:      "new_user",
			RefID:     u.ID,
			Title:     "New user registered",
			Message:   fmt.Sprintf("%s %s joined", u.FirstName, u.LastName),
			CreatedAt: u.CreatedAt,
		})
	}

	var redeems []models.RedeemTransaction
	database.DB.Where("status = ?", models.RedeemPending).
		Order("created_at desc").Limit(perType).Find(&redeems)
	for _, r := range redeems {
		items = append(items, NotificationItem{
			Type:      "pending_redeem",
			RefID:     r.ID,
			Title:     "Redeem request pending",
			Message:   fmt.Sprintf("Order %s for %.2f awaiting action", r.OrderID, r.Amount),
			CreatedAt: r.CreatedAt,
		})
	}

	var kycs []models.UserKyc
	database.DB.Where("approval_status = ?", models.ApprovalPending).
		Order("created_at desc").Limit(perType).Find(&kycs)
	for _, k := range kycs {
		items = append(items, NotificationItem{
			Type:      "pending_kyc",
			RefID:     k.ID,
			Title:     "KYC awaiting review",
			Message:   fmt.Sprintf("KYC record #%d is pending approval", k.ID),
			CreatedAt: k.CreatedAt,
		})
	}

	var payouts []models.RedeemPayout
	database.DB.Where("status = ?", models.PayoutDone).
		Order("created_at desc").Limit(perType).Find(&payouts)
	for _, p := range payouts {
		items = append(items, NotificationItem{
			Type:      "payout_done",
			RefID:     p.ID,
			Title:     "Payout completed",
			Message:   fmt.Sprintf("Payout of %.2f for redeem #%d is done", p.Amount, p.RedeemTransactionID),
			CreatedAt: p.CreatedAt,
		})
	}

	sort.Slice(items, func(i, j int) bool {
		return items[i].CreatedAt.After(items[j].CreatedAt)
	})
	if len(items) > limit {
		items = items[:limit]
	}

	var pendingRedeems, pendingKyc int64
	database.DB.Model(&models.RedeemTransaction{}).Where("status = ?", models.RedeemPending).Count(&pendingRedeems)
	database.DB.Model(&models.UserKyc{}).Where("approval_status = ?", models.ApprovalPending).Count(&pendingKyc)

	return c.JSON(fiber.Map{
		"notifications":   items,
		"pending_redeems": pendingRedeems,
		"pending_kyc":     pendingKyc,
	})
}
