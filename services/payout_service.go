package services

import (
	"errors"
	"time"

	"github.com/anocab/anocab-admin/models"
	"gorm.io/gorm"
)

var (
	ErrRedeemNotFound = errors.New("redeem transaction not found")
	ErrPayoutExists   = errors.New("payout already exists for this redeem transaction")
)

type CompletePayoutInput struct {
	ProcessedBy     *uint
	PayoutMethod    models.PayoutMethod
	PayoutReference *string
	AdminNotes      *string
}

// CompletePayout records a done payout for a redeem transaction and flips the
// transaction to completed, as one atomic unit. The unique index on
// redeem_payouts.redeem_transaction_id guarantees at most one payout per
// transaction: of two concurrent calls for the same id, the first committer
// wins and the second gets ErrPayoutExists with no writes applied.
//
// The prior status of the transaction is deliberately not checked; the payout
// uniqueness constraint is the sole completion gate.
func CompletePayout(db *gorm.DB, redeemTransactionID uint, in CompletePayoutInput) (*models.RedeemPayout, error) {
	method := in.PayoutMethod
	if method == "" {
		method = models.PayoutMethodBank
	}

	var payoutID uint
	err := db.Transaction(func(tx *gorm.DB) error {
		var rt models.RedeemTransaction
		if err := tx.First(&rt, "id = ?", redeemTransactionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRedeemNotFound
			}
			return err
		}

		now := time.Now()
		payout := models.RedeemPayout{
			RedeemTransactionID: rt.ID,
			UserID:              rt.UserID,
			Amount:              rt.Amount,
			PayoutMethod:        method,
			PayoutReference:     in.PayoutReference,
			Status:              models.PayoutDone,
			ProcessedBy:         in.ProcessedBy,
			ProcessedAt:         &now,
			AdminNotes:          in.AdminNotes,
		}
		if err := tx.Create(&payout).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrPayoutExists
			}
			return err
		}

		remarks := appendRemark(rt.Remarks, payoutRemark(in.AdminNotes))
		rt.Status = models.RedeemCompleted
		rt.ProcessedBy = in.ProcessedBy
		rt.ProcessedAt = &now
		rt.Remarks = &remarks
		if err := tx.Save(&rt).Error; err != nil {
			return err
		}

		payoutID = payout.ID
		return nil
	})
	if err != nil {
		return nil, err
	}

	var payout models.RedeemPayout
	if err := db.Preload("User").Preload("RedeemTransaction").First(&payout, "id = ?", payoutID).Error; err != nil {
		return nil, err
	}
	return &payout, nil
}

// payoutRemark builds the audit line appended to the transaction's remarks.
func payoutRemark(adminNotes *string) string {
	if adminNotes != nil && *adminNotes != "" {
		return "Payout note: " + *adminNotes
	}
	return "Payout done"
}

// appendRemark preserves any prior remarks text; the new line is the first
// line when there was none.
func appendRemark(prev *string, line string) string {
	if prev == nil || *prev == "" {
		return line
	}
	return *prev + "\n" + line
}
