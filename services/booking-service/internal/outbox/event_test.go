package outbox

import (
	"encoding/json"
	"testing"
)

func TestNewAppointmentEvent(t *testing.T) {
	evt, err := NewAppointmentEvent(TopicAppointmentCreated, "appt-1", AppointmentEvent{
		ClientName:       "Carlos",
		Phone:            "+5511999990000",
		ProfessionalName: "Rafael",
		Date:             "2026-03-02",
		StartClock:       "10:30",
		Services:         []string{"Corte"},
		TotalValue:       45,
	})
	if err != nil {
		t.Fatalf("NewAppointmentEvent: %v", err)
	}
	if evt.EventID == "" {
		t.Fatal("event id must be set")
	}
	if evt.AggregateID != "appt-1" || evt.EventType != TopicAppointmentCreated {
		t.Fatalf("unexpected envelope: %+v", evt)
	}

	var payload AppointmentEvent
	if err := json.Unmarshal(evt.Payload, &payload); err != nil {
		t.Fatalf("payload not valid json: %v", err)
	}
	if payload.AppointmentID != "appt-1" {
		t.Fatalf("payload appointment_id = %q", payload.AppointmentID)
	}
	if payload.OccurredAt == "" {
		t.Fatal("occurred_at must be stamped")
	}

	other, err := NewAppointmentEvent(TopicAppointmentCancelled, "appt-1", AppointmentEvent{})
	if err != nil {
		t.Fatalf("NewAppointmentEvent: %v", err)
	}
	if other.EventID == evt.EventID {
		t.Fatal("event ids must be unique")
	}
}
