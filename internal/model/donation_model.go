package model

import (
	"time"

	"github.com/google/uuid"
)

type Donation struct {
	Id           uuid.UUID `gorm:"type:uuid;primaryKey"`
	DonorName    string    `gorm:"type:varchar(255);not null"`
	Amount       float64   `gorm:"type:numeric(12,2);not null"`
	DonationDate time.Time `gorm:"not null;index"`
	Method       string    `gorm:"type:varchar(50);not null"`
	CheckNumber  *string   `gorm:"type:varchar(50)"`
	DonorEmail   *string   `gorm:"type:varchar(255)"`
	DonorPhone   *string   `gorm:"type:varchar(50)"`
	Notes        *string   `gorm:"type:text"`
	ReceiptSent  bool      `gorm:"not null;default:false"`
	CreatedBy    uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt    time.Time `gorm:"autoCreateTime"`
}

func (Donation) TableName() string {
	return "donations"
}
