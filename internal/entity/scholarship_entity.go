package entity

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
)

const (
	ScholarshipStatusPending   = "pending"
	ScholarshipStatusApproved  = "approved"
	ScholarshipStatusDisbursed = "disbursed"
	ScholarshipStatusCancelled = "cancelled"
)

const (
	InsuranceNoInsurance     = "no_insurance"
	InsuranceHighDeductible  = "high_deductible"
	InsuranceNotAccepted     = "not_accepted"
	InsurancePartialCoverage = "partial_coverage"
	InsuranceOther           = "other"
)

const (
	PurposeDeductible      = "deductible"
	PurposeCopay           = "copay"
	PurposeNoInsurance     = "no_insurance"
	PurposePreferredCenter = "preferred_center"
	PurposeOther           = "other"
)

// RequiredApprovals is the number of distinct super-admin votes a
// scholarship needs before funds may be disbursed.
const RequiredApprovals = 2

type Scholarship struct {
	Id                uuid.UUID
	Reference         string
	ClientId          uuid.UUID
	TreatmentCenterId uuid.UUID
	Amount            float64
	AwardDate         time.Time
	Insurance         string
	Purpose           string
	Notes             *string
	Status            string
	ApprovalCount     int
	CreatedBy         uuid.UUID
	CreatedAt         time.Time
	UpdatedAt         *time.Time
}

// Final reports whether the scholarship no longer accepts approval votes.
func (s *Scholarship) Final() bool {
	return s.Status != ScholarshipStatusPending || s.ApprovalCount >= RequiredApprovals
}

type ScholarshipApproval struct {
	Id            uuid.UUID
	ScholarshipId uuid.UUID
	ApproverId    uuid.UUID
	Comment       *string
	CreatedAt     time.Time
}

func ValidInsuranceSituation(v string) bool {
	switch v {
	case InsuranceNoInsurance, InsuranceHighDeductible, InsuranceNotAccepted,
		InsurancePartialCoverage, InsuranceOther:
		return true
	}
	return false
}

func ValidScholarshipPurpose(v string) bool {
	switch v {
	case PurposeDeductible, PurposeCopay, PurposeNoInsurance,
		PurposePreferredCenter, PurposeOther:
		return true
	}
	return false
}

// ScholarshipReference builds the human-readable scholarship reference from
// the client's non-empty reference codes and the award date: codes joined by
// dashes, then the date compacted to YYYYMMDD.
// Example: refs ["ABC123"], 2024-03-15 -> "ABC123-20240315".
func ScholarshipReference(refCodes []string, awardDate time.Time) string {
	codes := make([]string, 0, len(refCodes))
	for _, c := range refCodes {
		if c != "" {
			codes = append(codes, c)
		}
	}
	return fmt.Sprintf("%s-%s", strings.Join(codes, "-"), awardDate.Format("20060102"))
}
