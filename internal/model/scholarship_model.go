package model

import (
	"time"

	"github.com/google/uuid"
)

type Scholarship struct {
	Id                uuid.UUID `gorm:"type:uuid;primaryKey"`
	Reference         string    `gorm:"type:varchar(255);uniqueIndex;not null"`
	ClientId          uuid.UUID `gorm:"type:uuid;not null;index"`
	TreatmentCenterId uuid.UUID `gorm:"type:uuid;not null;index"`
	Amount            float64   `gorm:"type:numeric(12,2);not null"`
	AwardDate         time.Time `gorm:"not null"`
	Insurance         string    `gorm:"type:varchar(50);not null"`
	Purpose           string    `gorm:"type:varchar(50);not null"`
	Notes             *string   `gorm:"type:text"`
	Status            string    `gorm:"type:varchar(50);not null;default:'pending';index"`
	ApprovalCount     int       `gorm:"not null;default:0"`
	CreatedBy         uuid.UUID `gorm:"type:uuid;not null"`
	CreatedAt         time.Time `gorm:"autoCreateTime"`
	UpdatedAt         time.Time `gorm:"autoUpdateTime"`
}

func (Scholarship) TableName() string {
	return "scholarships"
}

// ScholarshipApproval holds one vote per (scholarship, approver). The
// composite unique index is the hard guard against duplicate votes; the
// service relies on it rather than on a check-then-insert.
type ScholarshipApproval struct {
	Id            uuid.UUID `gorm:"type:uuid;primaryKey"`
	ScholarshipId uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_scholarship_approver"`
	ApproverId    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:ux_scholarship_approver"`
	Comment       *string   `gorm:"type:text"`
	CreatedAt     time.Time `gorm:"autoCreateTime"`
}

func (ScholarshipApproval) TableName() string {
	return "scholarship_approvals"
}
