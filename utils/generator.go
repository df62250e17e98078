package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateQrCodeValue produces a printable QR code payload. The uuid keeps
// codes unique across bulk batches; the timestamp keeps them roughly sortable.
func GenerateQrCodeValue() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:12]
	return fmt.Sprintf("QR-%d-%s", time.Now().Unix(), suffix)
}

// GenerateOrderID builds an order reference for redeem transactions.
func GenerateOrderID() string {
	suffix := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", ""))[:8]
	return fmt.Sprintf("RD-%s", suffix)
}
