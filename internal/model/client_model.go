package model

import (
	"time"

	"github.com/google/uuid"
)

type Client struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	RefCode1  string    `gorm:"type:varchar(100);not null;index"`
	RefCode2  *string   `gorm:"type:varchar(100)"`
	RefCode3  *string   `gorm:"type:varchar(100)"`
	Notes     *string   `gorm:"type:text"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedBy uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

func (Client) TableName() string {
	return "clients"
}

type TreatmentCenter struct {
	Id        uuid.UUID `gorm:"type:uuid;primaryKey"`
	Name      string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	City      string    `gorm:"type:varchar(100);not null"`
	State     string    `gorm:"type:varchar(50);not null"`
	IsActive  bool      `gorm:"not null;default:true"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
}

func (TreatmentCenter) TableName() string {
	return "treatment_centers"
}
