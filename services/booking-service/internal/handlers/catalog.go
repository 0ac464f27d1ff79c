package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"strings"

	"github.com/thiagovm/barberflow/services/booking-service/internal/model"
	"github.com/thiagovm/barberflow/services/booking-service/internal/storage"
)

type CatalogHandler struct {
	catalog *storage.CatalogRepository
	logger  *slog.Logger
}

func NewCatalogHandler(catalog *storage.CatalogRepository, logger *slog.Logger) *CatalogHandler {
	return &CatalogHandler{catalog: catalog, logger: logger}
}

type servicePayload struct {
	ID              string  `json:"id,omitempty"`
	Name            string  `json:"name"`
	DurationMinutes int     `json:"duration_minutes"`
	Price           float64 `json:"price"`
	Active          bool    `json:"active"`
}

func (h *CatalogHandler) Services(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		activeOnly := strings.TrimSpace(r.URL.Query().Get("all")) == ""
		services, err := h.catalog.ListServices(r.Context(), activeOnly)
		if err != nil {
			http.Error(w, "failed to list services", http.StatusInternalServerError)
			return
		}
		items := make([]servicePayload, 0, len(services))
		for _, s := range services {
			items = append(items, servicePayload{
				ID:              s.ID,
				Name:            s.Name,
				DurationMinutes: s.DurationMinutes,
				Price:           s.Price,
				Active:          s.Active,
			})
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPost:
		var req servicePayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" || req.DurationMinutes <= 0 || req.Price < 0 {
			http.Error(w, "name, positive duration_minutes, and non-negative price are required", http.StatusBadRequest)
			return
		}
		s, err := h.catalog.CreateService(r.Context(), model.Service{
			Name:            req.Name,
			DurationMinutes: req.DurationMinutes,
			Price:           req.Price,
		})
		if err != nil {
			http.Error(w, "failed to create service", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, servicePayload{
			ID:              s.ID,
			Name:            s.Name,
			DurationMinutes: s.DurationMinutes,
			Price:           s.Price,
			Active:          s.Active,
		})
	case http.MethodPut, http.MethodPatch:
		var req servicePayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		req.ID = strings.TrimSpace(req.ID)
		if req.ID == "" || strings.TrimSpace(req.Name) == "" || req.DurationMinutes <= 0 || req.Price < 0 {
			http.Error(w, "id, name, positive duration_minutes, and non-negative price are required", http.StatusBadRequest)
			return
		}
		if err := h.catalog.UpdateService(r.Context(), model.Service{
			ID:              req.ID,
			Name:            req.Name,
			DurationMinutes: req.DurationMinutes,
			Price:           req.Price,
			Active:          req.Active,
		}); err != nil {
			http.Error(w, "failed to update service", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, req)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}

type professionalPayload struct {
	ID     string `json:"id,omitempty"`
	Name   string `json:"name"`
	Phone  string `json:"phone"`
	Active bool   `json:"active"`
}

func (h *CatalogHandler) Professionals(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		activeOnly := strings.TrimSpace(r.URL.Query().Get("all")) == ""
		pros, err := h.catalog.ListProfessionals(r.Context(), activeOnly)
		if err != nil {
			http.Error(w, "failed to list professionals", http.StatusInternalServerError)
			return
		}
		items := make([]professionalPayload, 0, len(pros))
		for _, p := range pros {
			items = append(items, professionalPayload{ID: p.ID, Name: p.Name, Phone: p.Phone, Active: p.Active})
		}
		writeJSON(w, http.StatusOK, items)
	case http.MethodPost:
		var req professionalPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		if strings.TrimSpace(req.Name) == "" {
			http.Error(w, "name is required", http.StatusBadRequest)
			return
		}
		p, err := h.catalog.CreateProfessional(r.Context(), model.Professional{
			Name:  req.Name,
			Phone: strings.TrimSpace(req.Phone),
		})
		if err != nil {
			http.Error(w, "failed to create professional", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, professionalPayload{ID: p.ID, Name: p.Name, Phone: p.Phone, Active: p.Active})
	case http.MethodPut, http.MethodPatch:
		var req professionalPayload
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "invalid json body", http.StatusBadRequest)
			return
		}
		req.ID = strings.TrimSpace(req.ID)
		if req.ID == "" || strings.TrimSpace(req.Name) == "" {
			http.Error(w, "id and name are required", http.StatusBadRequest)
			return
		}
		if err := h.catalog.UpdateProfessional(r.Context(), model.Professional{
			ID:     req.ID,
			Name:   req.Name,
			Phone:  strings.TrimSpace(req.Phone),
			Active: req.Active,
		}); err != nil {
			http.Error(w, "failed to update professional", http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, req)
	default:
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
	}
}
