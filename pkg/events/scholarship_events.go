package events

import (
	"time"

	"github.com/google/uuid"
)

const (
	TypeScholarshipApproved = "SCHOLARSHIP_APPROVED"
	TypeAuditRecorded       = "AUDIT_RECORDED"
)

// NewScholarshipApprovedEvent marks a scholarship reaching its second vote.
func NewScholarshipApprovedEvent(scholarshipId uuid.UUID, reference string, amount float64) Event {
	return BaseEvent{
		Type: TypeScholarshipApproved,
		Data: map[string]interface{}{
			"scholarship_id": scholarshipId.String(),
			"reference":      reference,
			"amount":         amount,
		},
		OccurredAt: time.Now(),
	}
}

func NewAuditRecordedEvent(action, resourceType string, resourceId *uuid.UUID) Event {
	data := map[string]interface{}{
		"action":        action,
		"resource_type": resourceType,
	}
	if resourceId != nil {
		data["resource_id"] = resourceId.String()
	}
	return BaseEvent{
		Type:       TypeAuditRecorded,
		Data:       data,
		OccurredAt: time.Now(),
	}
}
