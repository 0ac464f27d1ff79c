package webhook

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestHTTPSender_Send(t *testing.T) {
	var got Message
	var auth string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		if err := json.NewDecoder(r.Body).Decode(&got); err != nil {
			t.Fatalf("decode payload: %v", err)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	s := NewHTTPSender("tok")
	err := s.Send(context.Background(), srv.URL, Message{
		Kind:          "reminder_2h",
		AppointmentID: "a1",
		ClientName:    "Carlos",
		Phone:         "+5511999990000",
		Start:         "14:30",
	})
	if err != nil {
		t.Fatalf("Send: %v", err)
	}
	if got.Kind != "reminder_2h" || got.Phone != "+5511999990000" {
		t.Fatalf("unexpected payload: %+v", got)
	}
	if auth != "Bearer tok" {
		t.Fatalf("Authorization = %q, want bearer token", auth)
	}
}

func TestHTTPSender_Non2xxIsError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer srv.Close()

	s := NewHTTPSender("")
	if err := s.Send(context.Background(), srv.URL, Message{Kind: "confirmation"}); err == nil {
		t.Fatal("non-2xx response must be an error")
	}
}

func TestHTTPSender_EmptyURL(t *testing.T) {
	s := NewHTTPSender("")
	if err := s.Send(context.Background(), "", Message{}); err == nil {
		t.Fatal("empty url must be an error")
	}
}
