package jobs

import (
	"log"
	"time"

	"github.com/anocab/anocab-admin/database"
	"github.com/anocab/anocab-admin/models"
)

// ExpireQrCodes flags unscanned QR codes whose expiry has passed so they stop
// counting as awardable in listings and dashboard stats.
func ExpireQrCodes() {
	result := database.DB.Model(&models.QrCode{}).
		Where("is_expired = ? AND is_scanned = ? AND expires_at IS NOT NULL AND expires_at < ?", false, false, time.Now()).
		Update("is_expired", true)

	if result.Error != nil {
		log.Printf("Error expiring QR codes: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Expired %d QR code(s)", result.RowsAffected)
	}
}
