package v1

import (
	"github.com/shopspring/decimal"
)

// CreateResponderRequest is the payload for registering a responder.
type CreateResponderRequest struct {
	Name         *string          `json:"name" validate:"required,min=2,max=255"`
	PhoneNumber  *string          `json:"phoneNumber,omitempty"`
	Latitude     *decimal.Decimal `json:"latitude,omitempty"`
	Longitude    *decimal.Decimal `json:"longitude,omitempty"`
	BoatCapacity *int             `json:"boatCapacity,omitempty"`
	MedicalKit   *bool            `json:"medicalKit,omitempty"`
	Available    *bool            `json:"available,omitempty"`
	Enrolled     *bool            `json:"enrolled,omitempty"`
	Person       *bool            `json:"person,omitempty"`
}

// UpdateResponderRequest is a partial update: absent fields leave the
// stored value untouched.
type UpdateResponderRequest struct {
	ID           string           `json:"id" validate:"required"`
	Name         *string          `json:"name,omitempty"`
	PhoneNumber  *string          `json:"phoneNumber,omitempty"`
	Latitude     *decimal.Decimal `json:"latitude,omitempty"`
	Longitude    *decimal.Decimal `json:"longitude,omitempty"`
	BoatCapacity *int             `json:"boatCapacity,omitempty"`
	MedicalKit   *bool            `json:"medicalKit,omitempty"`
	Available    *bool            `json:"available,omitempty"`
	Enrolled     *bool            `json:"enrolled,omitempty"`
	Person       *bool            `json:"person,omitempty"`
}
