package service

import (
	"testing"

	"github.com/rescuesim/responder-service/internal/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func ptr[T any](v T) *T {
	return &v
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func storedResponder() *models.Responder {
	return &models.Responder{
		ID:           1,
		Name:         ptr("Sean Bailey"),
		PhoneNumber:  ptr("555-0199"),
		Latitude:     dec("30.12345"),
		Longitude:    dec("-97.54321"),
		BoatCapacity: ptr(4),
		MedicalKit:   ptr(true),
		Available:    ptr(false),
		Enrolled:     ptr(true),
		Person:       ptr(false),
		Version:      3,
	}
}

func TestMergeEmptyPatchChangesNothing(t *testing.T) {
	current := storedResponder()

	next, changed := merge(current, &models.Responder{ID: 1})

	assert.False(t, changed)
	assert.Equal(t, current, next)
}

func TestMergeEqualValuesAreNoChange(t *testing.T) {
	current := storedResponder()
	patch := &models.Responder{
		ID:         1,
		Name:       ptr("Sean Bailey"),
		Latitude:   dec("30.12345"),
		MedicalKit: ptr(true),
		Available:  ptr(false),
	}

	_, changed := merge(current, patch)

	assert.False(t, changed)
}

func TestMergeOverwritesPresentFields(t *testing.T) {
	current := storedResponder()
	patch := &models.Responder{
		ID:           1,
		Name:         ptr("Avery Mitchell"),
		BoatCapacity: ptr(6),
	}

	next, changed := merge(current, patch)

	assert.True(t, changed)
	assert.Equal(t, "Avery Mitchell", *next.Name)
	assert.Equal(t, 6, *next.BoatCapacity)
	// untouched fields keep the stored values
	assert.Equal(t, "555-0199", *next.PhoneNumber)
	assert.True(t, next.Latitude.Equal(decimal.RequireFromString("30.12345")))
}

func TestMergeExplicitFalseIsAChange(t *testing.T) {
	current := storedResponder()
	patch := &models.Responder{ID: 1, MedicalKit: ptr(false)}

	next, changed := merge(current, patch)

	assert.True(t, changed)
	assert.False(t, *next.MedicalKit)
}

func TestMergeDecimalEqualityIsByValue(t *testing.T) {
	current := storedResponder()

	// 30.12345 vs 30.123450 is the same coordinate
	_, changed := merge(current, &models.Responder{ID: 1, Latitude: dec("30.123450")})
	assert.False(t, changed)

	next, changed := merge(current, &models.Responder{ID: 1, Latitude: dec("30.12346")})
	assert.True(t, changed)
	assert.True(t, next.Latitude.Equal(decimal.RequireFromString("30.12346")))
}

func TestMergeIntoUnsetFields(t *testing.T) {
	current := &models.Responder{ID: 2, Available: ptr(true)}
	patch := &models.Responder{ID: 2, Latitude: dec("30.00001"), Longitude: dec("-97.00001")}

	next, changed := merge(current, patch)

	require.True(t, changed)
	assert.True(t, next.Latitude.Equal(decimal.RequireFromString("30.00001")))
	assert.True(t, next.Longitude.Equal(decimal.RequireFromString("-97.00001")))
}

func TestMergeMissionCompletionUnenrollsPerson(t *testing.T) {
	current := &models.Responder{
		ID:        1,
		Available: ptr(false),
		Enrolled:  ptr(true),
		Person:    ptr(true),
	}

	next, changed := merge(current, &models.Responder{ID: 1, Available: ptr(true)})

	require.True(t, changed)
	assert.True(t, *next.Available)
	assert.False(t, *next.Enrolled)
}

func TestMergeMissionCompletionIgnoresNonPersons(t *testing.T) {
	current := &models.Responder{
		ID:        1,
		Available: ptr(false),
		Enrolled:  ptr(true),
		Person:    ptr(false),
	}

	next, _ := merge(current, &models.Responder{ID: 1, Available: ptr(true)})

	assert.True(t, *next.Enrolled)
}

func TestMergeMissionCompletionRespectsExplicitEnrollment(t *testing.T) {
	current := &models.Responder{
		ID:        1,
		Available: ptr(false),
		Enrolled:  ptr(true),
		Person:    ptr(true),
	}

	next, _ := merge(current, &models.Responder{ID: 1, Available: ptr(true), Enrolled: ptr(true)})

	assert.True(t, *next.Enrolled)
}

func TestMergeMissionCompletionKeysOnResultingAvailability(t *testing.T) {
	// The stored record is already available; any merge that leaves it
	// available without saying anything about enrollment unenrolls a
	// person responder.
	current := &models.Responder{
		ID:        1,
		Name:      ptr("Sean Bailey"),
		Available: ptr(true),
		Enrolled:  ptr(true),
		Person:    ptr(true),
	}

	next, changed := merge(current, &models.Responder{ID: 1, Name: ptr("Avery Mitchell")})

	require.True(t, changed)
	assert.False(t, *next.Enrolled)
}

func TestMergeMissionCompletionKeysOnStoredPersonFlag(t *testing.T) {
	// The incoming person flag does not arm the rule for this merge.
	current := &models.Responder{
		ID:        1,
		Available: ptr(false),
		Enrolled:  ptr(true),
		Person:    ptr(false),
	}

	next, _ := merge(current, &models.Responder{ID: 1, Available: ptr(true), Person: ptr(true)})

	assert.True(t, *next.Enrolled)
}
