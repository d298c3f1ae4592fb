package models

import (
	"github.com/shopspring/decimal"
)

func init() {
	// Coordinates are serialized as plain JSON numbers, matching the
	// wire format expected by the other simulator services.
	decimal.MarshalJSONWithoutQuotes = true
}

// Responder is a tracked rescue unit, human or vehicle. All fields
// except ID and Version are pointers: a nil field in an update payload
// means "leave the stored value alone", a non-nil field overwrites it.
// There is no way to clear a field once set.
type Responder struct {
	ID          int64            `json:"id,string,omitempty"`
	Name        *string          `json:"name,omitempty"`
	PhoneNumber *string          `json:"phoneNumber,omitempty"`
	Latitude    *decimal.Decimal `json:"latitude,omitempty"`
	Longitude   *decimal.Decimal `json:"longitude,omitempty"`
	// BoatCapacity only carries meaning for vehicle responders.
	BoatCapacity *int  `json:"boatCapacity,omitempty"`
	MedicalKit   *bool `json:"medicalKit,omitempty"`
	// Available is true when the responder is not assigned to a mission.
	Available *bool `json:"available,omitempty"`
	// Enrolled is true when the responder is part of the active pool.
	Enrolled *bool `json:"enrolled,omitempty"`
	// Person distinguishes human participants from simulated units.
	Person *bool `json:"person,omitempty"`
	// Version is the optimistic concurrency token, managed by the
	// repository. It never travels over the wire.
	Version int64 `json:"-"`
}
