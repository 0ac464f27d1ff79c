package handlers

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/thiagovm/barberflow/services/notifier-service/internal/reminders"
)

type stubRunner struct {
	sum  reminders.Summary
	err  error
	runs int
}

func (s *stubRunner) Scan(context.Context) (reminders.Summary, error) {
	s.runs++
	return s.sum, s.err
}

func newTestLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func TestCronReminders_RequiresBearerSecret(t *testing.T) {
	runner := &stubRunner{}
	h := NewCronHandler(runner, "s3cret", newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/internal/cron/reminders", nil)
	rec := httptest.NewRecorder()
	h.Reminders(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("missing token: status = %d, want 401", rec.Code)
	}

	req = httptest.NewRequest(http.MethodPost, "/internal/cron/reminders", nil)
	req.Header.Set("Authorization", "Bearer wrong")
	rec = httptest.NewRecorder()
	h.Reminders(rec, req)
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("wrong token: status = %d, want 401", rec.Code)
	}

	if runner.runs != 0 {
		t.Fatalf("scan must not run without a valid token, ran %d times", runner.runs)
	}
}

func TestCronReminders_RunsScan(t *testing.T) {
	runner := &stubRunner{sum: reminders.Summary{Sent: 3, Skipped: 1}}
	h := NewCronHandler(runner, "s3cret", newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/internal/cron/reminders", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	h.Reminders(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("status = %d, want 200", rec.Code)
	}
	if runner.runs != 1 {
		t.Fatalf("scan ran %d times, want 1", runner.runs)
	}
}

func TestCronReminders_DisabledWithoutSecret(t *testing.T) {
	h := NewCronHandler(&stubRunner{}, "", newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/internal/cron/reminders", nil)
	rec := httptest.NewRecorder()
	h.Reminders(rec, req)
	if rec.Code != http.StatusServiceUnavailable {
		t.Fatalf("status = %d, want 503", rec.Code)
	}
}

func TestCronReminders_ScanError(t *testing.T) {
	h := NewCronHandler(&stubRunner{err: errors.New("db down")}, "s3cret", newTestLogger())

	req := httptest.NewRequest(http.MethodPost, "/internal/cron/reminders", nil)
	req.Header.Set("Authorization", "Bearer s3cret")
	rec := httptest.NewRecorder()
	h.Reminders(rec, req)
	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rec.Code)
	}
}
