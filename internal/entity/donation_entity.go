package entity

import (
	"math"
	"time"

	"github.com/google/uuid"
)

const (
	DonationMethodCash       = "cash"
	DonationMethodCheck      = "check"
	DonationMethodCreditCard = "credit_card"
	DonationMethodACH        = "ach"
	DonationMethodWire       = "wire"
	DonationMethodOther      = "other"
)

type Donation struct {
	Id           uuid.UUID
	DonorName    string
	Amount       float64
	DonationDate time.Time
	Method       string
	CheckNumber  *string
	DonorEmail   *string
	DonorPhone   *string
	Notes        *string
	ReceiptSent  bool
	CreatedBy    uuid.UUID
	CreatedAt    time.Time
}

func ValidDonationMethod(method string) bool {
	switch method {
	case DonationMethodCash, DonationMethodCheck, DonationMethodCreditCard,
		DonationMethodACH, DonationMethodWire, DonationMethodOther:
		return true
	}
	return false
}

// ValidCurrencyAmount reports whether amount is positive and representable
// with at most two decimal places.
func ValidCurrencyAmount(amount float64) bool {
	if amount <= 0 || math.IsNaN(amount) || math.IsInf(amount, 0) {
		return false
	}
	cents := amount * 100
	return math.Abs(cents-math.Round(cents)) < 1e-6
}
