package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateScholarshipRequest struct {
	ClientId          uuid.UUID `json:"client_id" validate:"required"`
	TreatmentCenterId uuid.UUID `json:"treatment_center_id" validate:"required"`
	Amount            float64   `json:"amount" validate:"required,gt=0"`
	AwardDate         string    `json:"award_date" validate:"required"` // YYYY-MM-DD
	Insurance         string    `json:"insurance_situation" validate:"required"`
	Purpose           string    `json:"purpose" validate:"required"`
	Notes             *string   `json:"notes"`
}

type ScholarshipResponse struct {
	Id            uuid.UUID  `json:"id"`
	Reference     string     `json:"reference"`
	ClientId      uuid.UUID  `json:"client_id"`
	CenterId      uuid.UUID  `json:"treatment_center_id"`
	Amount        float64    `json:"amount"`
	AwardDate     time.Time  `json:"award_date"`
	Insurance     string     `json:"insurance_situation"`
	Purpose       string     `json:"purpose"`
	Notes         *string    `json:"notes"`
	Status        string     `json:"status"`
	ApprovalCount int        `json:"approval_count"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     *time.Time `json:"updated_at"`
}

type RecordApprovalRequest struct {
	Comment *string `json:"comment"`
}

// RecordApprovalResponse reports the post-vote state: the authoritative
// approval count and the status it produced.
type RecordApprovalResponse struct {
	ScholarshipId uuid.UUID `json:"scholarship_id"`
	ApprovalCount int       `json:"approval_count"`
	Status        string    `json:"status"`
}
