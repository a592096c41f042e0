package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateClientRequest struct {
	RefCode1 string  `json:"ref_code_1" validate:"required"`
	RefCode2 *string `json:"ref_code_2"`
	RefCode3 *string `json:"ref_code_3"`
	Notes    *string `json:"notes"`
}

type ClientResponse struct {
	Id        uuid.UUID `json:"id"`
	RefCode1  string    `json:"ref_code_1"`
	RefCode2  *string   `json:"ref_code_2"`
	RefCode3  *string   `json:"ref_code_3"`
	Notes     *string   `json:"notes"`
	IsActive  bool      `json:"is_active"`
	CreatedAt time.Time `json:"created_at"`
}

type TreatmentCenterResponse struct {
	Id    uuid.UUID `json:"id"`
	Name  string    `json:"name"`
	City  string    `json:"city"`
	State string    `json:"state"`
}
