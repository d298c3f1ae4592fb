package v1

import (
	"strconv"

	"github.com/rescuesim/responder-service/internal/models"
)

// CreateRequestToModel converts a creation request into the domain
// model. The id stays zero; the repository assigns it.
func CreateRequestToModel(dto CreateResponderRequest) *models.Responder {
	return &models.Responder{
		Name:         dto.Name,
		PhoneNumber:  dto.PhoneNumber,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		BoatCapacity: dto.BoatCapacity,
		MedicalKit:   dto.MedicalKit,
		Available:    dto.Available,
		Enrolled:     dto.Enrolled,
		Person:       dto.Person,
	}
}

// UpdateRequestToModel converts an update request into a partial
// responder for the merge pipeline.
func UpdateRequestToModel(dto UpdateResponderRequest) (*models.Responder, error) {
	id, err := strconv.ParseInt(dto.ID, 10, 64)
	if err != nil {
		return nil, err
	}
	return &models.Responder{
		ID:           id,
		Name:         dto.Name,
		PhoneNumber:  dto.PhoneNumber,
		Latitude:     dto.Latitude,
		Longitude:    dto.Longitude,
		BoatCapacity: dto.BoatCapacity,
		MedicalKit:   dto.MedicalKit,
		Available:    dto.Available,
		Enrolled:     dto.Enrolled,
		Person:       dto.Person,
	}, nil
}
