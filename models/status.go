package models

import "fmt"

// Status values are stored as strings but only ever constructed through the
// Parse helpers, so an invalid value cannot reach the database.

type RedeemStatus string

const (
	RedeemPending    RedeemStatus = "pending"
	RedeemProcessing RedeemStatus = "processing"
	RedeemCompleted  RedeemStatus = "completed"
	RedeemFailed     RedeemStatus = "failed"
	RedeemCancelled  RedeemStatus = "cancelled"
)

func ParseRedeemStatus(s string) (RedeemStatus, error) {
	switch RedeemStatus(s) {
	case RedeemPending, RedeemProcessing, RedeemCompleted, RedeemFailed, RedeemCancelled:
		return RedeemStatus(s), nil
	}
	return "", fmt.Errorf("invalid redeem status %q", s)
}

type PayoutStatus string

const (
	PayoutPending   PayoutStatus = "pending"
	PayoutDone      PayoutStatus = "done"
	PayoutFailed    PayoutStatus = "failed"
	PayoutCancelled PayoutStatus = "cancelled"
)

func ParsePayoutStatus(s string) (PayoutStatus, error) {
	switch PayoutStatus(s) {
	case PayoutPending, PayoutDone, PayoutFailed, PayoutCancelled:
		return PayoutStatus(s), nil
	}
	return "", fmt.Errorf("invalid payout status %q", s)
}

type PayoutMethod string

const (
	PayoutMethodBank  PayoutMethod = "bank"
	PayoutMethodUpi   PayoutMethod = "upi"
	PayoutMethodCash  PayoutMethod = "cash"
	PayoutMethodOther PayoutMethod = "other"
)

func ParsePayoutMethod(s string) (PayoutMethod, error) {
	switch PayoutMethod(s) {
	case PayoutMethodBank, PayoutMethodUpi, PayoutMethodCash, PayoutMethodOther:
		return PayoutMethod(s), nil
	}
	return "", fmt.Errorf("invalid payout method %q", s)
}

type ApprovalStatus string

const (
	ApprovalPending  ApprovalStatus = "pending"
	ApprovalApproved ApprovalStatus = "approved"
	ApprovalRejected ApprovalStatus = "rejected"
)

func ParseApprovalStatus(s string) (ApprovalStatus, error) {
	switch ApprovalStatus(s) {
	case ApprovalPending, ApprovalApproved, ApprovalRejected:
		return ApprovalStatus(s), nil
	}
	return "", fmt.Errorf("invalid approval status %q", s)
}
