package dto

import (
	"time"

	"github.com/google/uuid"
)

type RecordDonationRequest struct {
	DonorName    string  `json:"donor_name" validate:"required"`
	Amount       float64 `json:"amount" validate:"required,gt=0"`
	DonationDate string  `json:"donation_date" validate:"required"` // YYYY-MM-DD
	Method       string  `json:"method" validate:"required"`
	CheckNumber  *string `json:"check_number"`
	DonorEmail   *string `json:"donor_email" validate:"omitempty,email"`
	DonorPhone   *string `json:"donor_phone"`
	Notes        *string `json:"notes"`
}

type DonationResponse struct {
	Id           uuid.UUID `json:"id"`
	DonorName    string    `json:"donor_name"`
	Amount       float64   `json:"amount"`
	DonationDate time.Time `json:"donation_date"`
	Method       string    `json:"method"`
	CheckNumber  *string   `json:"check_number"`
	ReceiptSent  bool      `json:"receipt_sent"`
	CreatedAt    time.Time `json:"created_at"`
}

type SetReceiptSentRequest struct {
	ReceiptSent bool `json:"receipt_sent"`
}
