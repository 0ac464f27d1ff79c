package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thiagovm/barberflow/services/booking-service/internal/storage"
)

type ReportsHandler struct {
	bookings *storage.BookingRepository
	logger   *slog.Logger
}

func NewReportsHandler(bookings *storage.BookingRepository, logger *slog.Logger) *ReportsHandler {
	return &ReportsHandler{bookings: bookings, logger: logger}
}

type revenueResponse struct {
	ProfessionalID   string  `json:"professional_id"`
	ProfessionalName string  `json:"professional_name"`
	Month            string  `json:"month"`
	Appointments     int     `json:"appointments"`
	Total            float64 `json:"total"`
}

// ProfessionalRevenue reports one professional's completed, attended
// revenue for a calendar month (?month=YYYY-MM, default current).
func (h *ReportsHandler) ProfessionalRevenue(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	professionalID := strings.TrimSpace(r.URL.Query().Get("professional_id"))
	if professionalID == "" {
		http.Error(w, "professional_id is required", http.StatusBadRequest)
		return
	}

	monthStr := strings.TrimSpace(r.URL.Query().Get("month"))
	if monthStr == "" {
		monthStr = time.Now().UTC().Format("2006-01")
	}
	month, err := time.Parse("2006-01", monthStr)
	if err != nil {
		http.Error(w, "invalid month", http.StatusBadRequest)
		return
	}
	monthStart := month.Format("2006-01-02")
	monthEnd := month.AddDate(0, 1, 0).Format("2006-01-02")

	rep, err := h.bookings.MonthlyRevenue(r.Context(), professionalID, monthStart, monthEnd)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "professional not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to build report", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, revenueResponse{
		ProfessionalID:   rep.ProfessionalID,
		ProfessionalName: rep.ProfessionalName,
		Month:            monthStr,
		Appointments:     rep.Appointments,
		Total:            rep.Total,
	})
}
