package entity

import (
	"time"

	"github.com/google/uuid"
)

// Client is a scholarship beneficiary, identified by up to three external
// reference codes. The first code is mandatory.
type Client struct {
	Id        uuid.UUID
	RefCode1  string
	RefCode2  *string
	RefCode3  *string
	Notes     *string
	IsActive  bool
	CreatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt *time.Time
}

// RefCodes returns the non-empty reference codes in order.
func (c *Client) RefCodes() []string {
	codes := []string{c.RefCode1}
	if c.RefCode2 != nil && *c.RefCode2 != "" {
		codes = append(codes, *c.RefCode2)
	}
	if c.RefCode3 != nil && *c.RefCode3 != "" {
		codes = append(codes, *c.RefCode3)
	}
	return codes
}

type TreatmentCenter struct {
	Id        uuid.UUID
	Name      string
	City      string
	State     string
	IsActive  bool
	CreatedAt time.Time
}
