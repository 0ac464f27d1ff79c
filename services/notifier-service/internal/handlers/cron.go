package handlers

import (
	"context"
	"crypto/subtle"
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thiagovm/barberflow/services/notifier-service/internal/reminders"
)

type reminderRunner interface {
	Scan(ctx context.Context) (reminders.Summary, error)
}

// CronHandler exposes the reminder pass to an external scheduler. The
// endpoint is guarded by a shared bearer secret; without one configured
// it stays disabled.
type CronHandler struct {
	runner reminderRunner
	secret string
	logger *slog.Logger
}

func NewCronHandler(runner reminderRunner, secret string, logger *slog.Logger) *CronHandler {
	return &CronHandler{runner: runner, secret: strings.TrimSpace(secret), logger: logger}
}

func (h *CronHandler) Reminders(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}
	if h.secret == "" {
		http.Error(w, "cron endpoint disabled", http.StatusServiceUnavailable)
		return
	}

	auth := strings.TrimSpace(r.Header.Get("Authorization"))
	token, ok := strings.CutPrefix(auth, "Bearer ")
	if !ok || subtle.ConstantTimeCompare([]byte(token), []byte(h.secret)) != 1 {
		http.Error(w, "unauthorized", http.StatusUnauthorized)
		return
	}

	sum, err := h.runner.Scan(r.Context())
	if err != nil {
		h.logger.Error("reminder scan failed", "err", err)
		http.Error(w, "reminder scan failed", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(sum)
}
