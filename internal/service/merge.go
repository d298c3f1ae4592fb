package service

import (
	"github.com/rescuesim/responder-service/internal/models"
	"github.com/shopspring/decimal"
)

// merge computes the next state of a responder from the stored record
// and a partial update. A field in patch only takes part when it is
// non-nil; nil fields never touch the stored value. The returned
// changed flag reflects field-level differences only, so callers can
// short-circuit writes that would not alter the record.
func merge(current, patch *models.Responder) (next *models.Responder, changed bool) {
	merged := *current

	if differs(patch.Name, current.Name) {
		merged.Name = patch.Name
		changed = true
	}
	if differs(patch.PhoneNumber, current.PhoneNumber) {
		merged.PhoneNumber = patch.PhoneNumber
		changed = true
	}
	if decimalDiffers(patch.Latitude, current.Latitude) {
		merged.Latitude = patch.Latitude
		changed = true
	}
	if decimalDiffers(patch.Longitude, current.Longitude) {
		merged.Longitude = patch.Longitude
		changed = true
	}
	if differs(patch.BoatCapacity, current.BoatCapacity) {
		merged.BoatCapacity = patch.BoatCapacity
		changed = true
	}
	if differs(patch.MedicalKit, current.MedicalKit) {
		merged.MedicalKit = patch.MedicalKit
		changed = true
	}
	if differs(patch.Available, current.Available) {
		merged.Available = patch.Available
		changed = true
	}
	if differs(patch.Enrolled, current.Enrolled) {
		merged.Enrolled = patch.Enrolled
		changed = true
	}
	if differs(patch.Person, current.Person) {
		merged.Person = patch.Person
		changed = true
	}

	// Mission completion: when a human responder becomes available
	// again and the update did not say anything about enrollment, the
	// responder drops out of the active pool. Keyed on the stored
	// person flag, not the incoming one. Ideally this would be driven
	// by the mission service.
	if isTrue(current.Person) && isTrue(merged.Available) && patch.Enrolled == nil {
		enrolled := false
		merged.Enrolled = &enrolled
	}

	return &merged, changed
}

// differs reports whether patch carries a value different from current.
// An absent patch field never differs.
func differs[T comparable](patch, current *T) bool {
	if patch == nil {
		return false
	}
	return current == nil || *patch != *current
}

// decimalDiffers compares coordinates by exact value, 10.5 equals 10.50.
func decimalDiffers(patch, current *decimal.Decimal) bool {
	if patch == nil {
		return false
	}
	return current == nil || !patch.Equal(*current)
}

func isTrue(b *bool) bool {
	return b != nil && *b
}
