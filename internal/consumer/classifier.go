package consumer

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	"github.com/rescuesim/responder-service/internal/models"
	"github.com/shopspring/decimal"
)

const (
	updateResponderCommand = "UpdateResponderCommand"
	statusMoving           = "MOVING"
)

// responderPayload mirrors the partial responder object inside a
// command body. Every field except the id is a pointer so an absent
// field decodes as nil rather than a zero value.
type responderPayload struct {
	ID           string           `json:"id"`
	Name         *string          `json:"name"`
	PhoneNumber  *string          `json:"phoneNumber"`
	Latitude     *decimal.Decimal `json:"latitude"`
	Longitude    *decimal.Decimal `json:"longitude"`
	BoatCapacity *int             `json:"boatCapacity"`
	MedicalKit   *bool            `json:"medicalKit"`
	Available    *bool            `json:"available"`
	Enrolled     *bool            `json:"enrolled"`
	Person       *bool            `json:"person"`
}

type commandEnvelope struct {
	MessageType string         `json:"messageType"`
	Header      map[string]any `json:"header"`
	Body        struct {
		Responder *responderPayload `json:"responder"`
	} `json:"body"`
}

type locationPing struct {
	ResponderID string           `json:"responderId"`
	Status      string           `json:"status"`
	Lat         *decimal.Decimal `json:"lat"`
	Lon         *decimal.Decimal `json:"lon"`
}

// extractCommand validates a command payload and pulls out the partial
// responder plus the correlation headers. Anything that fails
// validation is a rejection for the caller to log and drop, never an
// error to propagate.
func extractCommand(payload []byte) (*models.Responder, map[string]string, error) {
	var envelope commandEnvelope
	if err := json.Unmarshal(payload, &envelope); err != nil {
		return nil, nil, fmt.Errorf("message is not valid JSON: %w", err)
	}
	if envelope.MessageType != updateResponderCommand {
		return nil, nil, fmt.Errorf("message type '%s' is ignored", envelope.MessageType)
	}
	if envelope.Body.Responder == nil || envelope.Body.Responder.ID == "" {
		return nil, nil, fmt.Errorf("message has no body.responder with an id")
	}

	id, err := strconv.ParseInt(envelope.Body.Responder.ID, 10, 64)
	if err != nil {
		return nil, nil, fmt.Errorf("responder id '%s' is not numeric: %w", envelope.Body.Responder.ID, err)
	}

	r := envelope.Body.Responder
	patch := &models.Responder{
		ID:           id,
		Name:         r.Name,
		PhoneNumber:  r.PhoneNumber,
		Latitude:     r.Latitude,
		Longitude:    r.Longitude,
		BoatCapacity: r.BoatCapacity,
		MedicalKit:   r.MedicalKit,
		Available:    r.Available,
		Enrolled:     r.Enrolled,
		Person:       r.Person,
	}

	headers := make(map[string]string, len(envelope.Header))
	for k, v := range envelope.Header {
		headers[k] = fmt.Sprint(v)
	}

	return patch, headers, nil
}

// extractLocation pulls a position update out of a location ping.
// Pings without a responder id or with a status other than MOVING are
// not updates at all; those return (nil, nil) and the caller moves on.
// Only a payload that cannot be parsed comes back as an error.
func extractLocation(payload []byte) (*models.Responder, error) {
	var ping locationPing
	if err := json.Unmarshal(payload, &ping); err != nil {
		return nil, fmt.Errorf("message is not valid JSON: %w", err)
	}
	if ping.ResponderID == "" || !strings.EqualFold(ping.Status, statusMoving) {
		return nil, nil
	}

	id, err := strconv.ParseInt(ping.ResponderID, 10, 64)
	if err != nil {
		return nil, fmt.Errorf("responder id '%s' is not numeric: %w", ping.ResponderID, err)
	}

	return &models.Responder{
		ID:        id,
		Latitude:  ping.Lat,
		Longitude: ping.Lon,
	}, nil
}
