package handlers

import (
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thiagovm/barberflow/services/booking-service/internal/storage"
)

type ClientsHandler struct {
	clients *storage.ClientRepository
	logger  *slog.Logger
}

func NewClientsHandler(clients *storage.ClientRepository, logger *slog.Logger) *ClientsHandler {
	return &ClientsHandler{clients: clients, logger: logger}
}

type clientItem struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Appointments int    `json:"appointments"`
	LastVisit    string `json:"last_visit,omitempty"`
	CreatedAt    string `json:"created_at"`
}

func (h *ClientsHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	clients, err := h.clients.List(r.Context(), strings.TrimSpace(r.URL.Query().Get("search")))
	if err != nil {
		http.Error(w, "failed to list clients", http.StatusInternalServerError)
		return
	}

	items := make([]clientItem, 0, len(clients))
	for _, c := range clients {
		item := clientItem{
			ID:           c.ID,
			Name:         c.Name,
			Phone:        c.Phone,
			Appointments: c.Appointments,
			CreatedAt:    c.CreatedAt.UTC().Format(time.RFC3339),
		}
		if c.LastVisit != nil {
			item.LastVisit = c.LastVisit.Format("2006-01-02")
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}
