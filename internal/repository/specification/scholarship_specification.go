package specification

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type ByScholarshipID struct {
	ScholarshipID uuid.UUID
}

func (s ByScholarshipID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("scholarship_id = ?", s.ScholarshipID)
}

type ByApproverID struct {
	ApproverID uuid.UUID
}

func (s ByApproverID) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("approver_id = ?", s.ApproverID)
}

type ByStatus struct {
	Status string
}

func (s ByStatus) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status = ?", s.Status)
}

type ByStatuses struct {
	Statuses []string
}

func (s ByStatuses) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("status IN ?", s.Statuses)
}

type ByReference struct {
	Reference string
}

func (s ByReference) Apply(db *gorm.DB) *gorm.DB {
	return db.Where("reference = ?", s.Reference)
}
