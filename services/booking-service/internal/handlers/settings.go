package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thiagovm/barberflow/services/booking-service/internal/model"
	"github.com/thiagovm/barberflow/services/booking-service/internal/schedule"
	"github.com/thiagovm/barberflow/services/booking-service/internal/storage"
)

type SettingsHandler struct {
	settings *storage.SettingsRepository
	logger   *slog.Logger
}

func NewSettingsHandler(settings *storage.SettingsRepository, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{settings: settings, logger: logger}
}

type settingsPayload struct {
	Timezone           string `json:"timezone"`
	WebhookURL         string `json:"webhook_url"`
	CancelMinLeadHours int    `json:"cancel_min_lead_hours"`
	SlotStepMinutes    int    `json:"slot_step_minutes"`
	NotifyConfirmation bool   `json:"notify_confirmation"`
	NotifyCancellation bool   `json:"notify_cancellation"`
	NotifyReminder24h  bool   `json:"notify_reminder_24h"`
	NotifyReminder2h   bool   `json:"notify_reminder_2h"`
	NotifyFollowUp3d   bool   `json:"notify_follow_up_3d"`
	NotifyFollowUp21d  bool   `json:"notify_follow_up_21d"`
}

func (h *SettingsHandler) Settings(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cfg, err := h.settings.Get(r.Context())
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsPayload(cfg))
	case http.MethodPut:
		var req settingsPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		req.Timezone = strings.TrimSpace(req.Timezone)
		if req.Timezone != "" {
			if _, err := time.LoadLocation(req.Timezone); err != nil {
				http.Error(w, "invalid timezone", http.StatusBadRequest)
				return
			}
		} else {
			req.Timezone = "UTC"
		}
		if req.CancelMinLeadHours < 0 {
			http.Error(w, "cancel_min_lead_hours must not be negative", http.StatusBadRequest)
			return
		}
		if req.SlotStepMinutes <= 0 {
			req.SlotStepMinutes = schedule.DefaultStepMinutes
		}
		cfg := model.Settings{
			Timezone:           req.Timezone,
			WebhookURL:         strings.TrimSpace(req.WebhookURL),
			CancelMinLeadHours: req.CancelMinLeadHours,
			SlotStepMinutes:    req.SlotStepMinutes,
			NotifyConfirmation: req.NotifyConfirmation,
			NotifyCancellation: req.NotifyCancellation,
			NotifyReminder24h:  req.NotifyReminder24h,
			NotifyReminder2h:   req.NotifyReminder2h,
			NotifyFollowUp3d:   req.NotifyFollowUp3d,
			NotifyFollowUp21d:  req.NotifyFollowUp21d,
		}
		if err := h.settings.Save(r.Context(), cfg); err != nil {
			http.Error(w, "failed to save settings", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, toSettingsPayload(cfg))
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type businessHoursPayload struct {
	Weekday int    `json:"weekday"`
	Opens   string `json:"opens"`
	Closes  string `json:"closes"`
	IsOpen  bool   `json:"is_open"`
}

func (h *SettingsHandler) Hours(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		hours, err := h.settings.GetBusinessHours(r.Context())
		if err != nil {
			http.Error(w, "failed to load business hours", http.StatusInternalServerError)
			return
		}
		items := make([]businessHoursPayload, 0, len(hours))
		for _, hrs := range hours {
			items = append(items, toHoursPayload(hrs))
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPut:
		var req []businessHoursPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		seen := make(map[int]bool)
		hours := make([]model.BusinessHours, 0, len(req))
		for _, p := range req {
			if p.Weekday < 0 || p.Weekday > 6 || seen[p.Weekday] {
				http.Error(w, "weekday must be 0-6 and unique", http.StatusBadRequest)
				return
			}
			seen[p.Weekday] = true

			hrs := model.BusinessHours{Weekday: p.Weekday, IsOpen: p.IsOpen}
			if p.IsOpen {
				opens, err := schedule.ParseClock(p.Opens)
				if err != nil {
					http.Error(w, "invalid opens time", http.StatusBadRequest)
					return
				}
				closes, err := schedule.ParseClock(p.Closes)
				if err != nil {
					http.Error(w, "invalid closes time", http.StatusBadRequest)
					return
				}
				if closes <= opens {
					http.Error(w, "closes must be after opens", http.StatusBadRequest)
					return
				}
				hrs.OpensMinute = opens
				hrs.ClosesMinute = closes
			}
			hours = append(hours, hrs)
		}
		if err := h.settings.SaveBusinessHours(r.Context(), hours); err != nil {
			http.Error(w, "failed to save business hours", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, req)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

func toSettingsPayload(s model.Settings) settingsPayload {
	return settingsPayload{
		Timezone:           s.Timezone,
		WebhookURL:         s.WebhookURL,
		CancelMinLeadHours: s.CancelMinLeadHours,
		SlotStepMinutes:    s.SlotStepMinutes,
		NotifyConfirmation: s.NotifyConfirmation,
		NotifyCancellation: s.NotifyCancellation,
		NotifyReminder24h:  s.NotifyReminder24h,
		NotifyReminder2h:   s.NotifyReminder2h,
		NotifyFollowUp3d:   s.NotifyFollowUp3d,
		NotifyFollowUp21d:  s.NotifyFollowUp21d,
	}
}

func toHoursPayload(h model.BusinessHours) businessHoursPayload {
	p := businessHoursPayload{Weekday: h.Weekday, IsOpen: h.IsOpen}
	if h.IsOpen {
		p.Opens = schedule.FormatClock(h.OpensMinute)
		p.Closes = schedule.FormatClock(h.ClosesMinute)
	}
	return p
}
