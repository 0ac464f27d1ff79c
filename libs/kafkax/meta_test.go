package kafkax

import (
	"testing"

	"github.com/segmentio/kafka-go"
)

func TestExtractEventMeta(t *testing.T) {
	msg := kafka.Message{
		Topic: "booking.appointment.created.v1",
		Key:   []byte("appt-1"),
		Headers: []kafka.Header{
			{Key: "event_id", Value: []byte("evt-1")},
			{Key: "event_type", Value: []byte("booking.appointment.created.v1")},
		},
	}
	meta := ExtractEventMeta(msg)
	if meta.EventID != "evt-1" || meta.EventType != "booking.appointment.created.v1" {
		t.Fatalf("unexpected meta: %+v", meta)
	}
}

func TestExtractEventMeta_FallsBackToKeyAndTopic(t *testing.T) {
	msg := kafka.Message{Topic: "booking.appointment.cancelled.v1", Key: []byte("appt-2")}
	meta := ExtractEventMeta(msg)
	if meta.EventID != "appt-2" {
		t.Fatalf("EventID = %q, want message key fallback", meta.EventID)
	}
	if meta.EventType != "booking.appointment.cancelled.v1" {
		t.Fatalf("EventType = %q, want topic fallback", meta.EventType)
	}
}

func TestSplitBrokers(t *testing.T) {
	got := SplitBrokers(" kafka-1:9092, ,kafka-2:9092 ")
	if len(got) != 2 || got[0] != "kafka-1:9092" || got[1] != "kafka-2:9092" {
		t.Fatalf("SplitBrokers = %v", got)
	}
	if SplitBrokers("") != nil {
		t.Fatal("empty input must yield no brokers")
	}
}
