package publisher

import (
	"github.com/rescuesim/responder-service/internal/models"
)

const (
	respondersCreatedEvent = "RespondersCreatedEvent"
	respondersDeletedEvent = "RespondersDeletedEvent"
	responderUpdatedEvent  = "ResponderUpdatedEvent"

	invokingService = "ResponderService"
)

// Message is the outbound event envelope shared by all responder
// events. Header carries correlation metadata copied verbatim from the
// inbound command, when present. Trace context travels at the
// transport level, not inside the envelope.
type Message struct {
	ID              string            `json:"id"`
	MessageType     string            `json:"messageType"`
	InvokingService string            `json:"invokingService"`
	Timestamp       int64             `json:"timestamp"`
	Header          map[string]string `json:"header,omitempty"`
	Body            any               `json:"body"`
}

// RespondersCreatedEvent announces newly created responders.
type RespondersCreatedEvent struct {
	Created    int     `json:"created"`
	Responders []int64 `json:"responders"`
}

// RespondersDeletedEvent announces responders removed from the pool.
type RespondersDeletedEvent struct {
	Deleted    int     `json:"deleted"`
	Responders []int64 `json:"responders"`
}

// ResponderUpdatedEvent reports the outcome of a correlated update
// command, success or not.
type ResponderUpdatedEvent struct {
	Status        string            `json:"status"`
	StatusMessage string            `json:"statusMessage,omitempty"`
	Responder     *models.Responder `json:"responder,omitempty"`
}
