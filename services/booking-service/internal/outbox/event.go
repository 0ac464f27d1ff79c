package outbox

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

// Topic per event type; the Kafka topic name equals EventType.
const (
	TopicAppointmentCreated   = "booking.appointment.created.v1"
	TopicAppointmentCancelled = "booking.appointment.cancelled.v1"
)

// Event is the domain event envelope written to the outbox table.
// EventID is the consumer-side dedupe key.
type Event struct {
	EventID       string
	AggregateType string
	AggregateID   string
	EventType     string
	Payload       []byte
}

// AppointmentEvent is the payload shared by created and cancelled events.
// The notifier formats webhook messages from it without calling back into
// the booking database.
type AppointmentEvent struct {
	AppointmentID    string   `json:"appointment_id"`
	ClientName       string   `json:"client_name"`
	Phone            string   `json:"phone"`
	ProfessionalName string   `json:"professional_name"`
	Date             string   `json:"date"`
	StartClock       string   `json:"start_clock"`
	Services         []string `json:"services,omitempty"`
	TotalValue       float64  `json:"total_value"`
	CancelledBy      string   `json:"cancelled_by,omitempty"`
	OccurredAt       string   `json:"occurred_at"`
}

func NewAppointmentEvent(eventType, appointmentID string, payload AppointmentEvent) (Event, error) {
	payload.AppointmentID = appointmentID
	payload.OccurredAt = time.Now().UTC().Format(time.RFC3339)
	raw, err := json.Marshal(payload)
	if err != nil {
		return Event{}, err
	}
	return Event{
		EventID:       uuid.NewString(),
		AggregateType: "appointment",
		AggregateID:   appointmentID,
		EventType:     eventType,
		Payload:       raw,
	}, nil
}
