package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/thiagovm/barberflow/services/booking-service/internal/model"
	"github.com/thiagovm/barberflow/services/booking-service/internal/outbox"
	"github.com/thiagovm/barberflow/services/booking-service/internal/schedule"
	"github.com/thiagovm/barberflow/services/booking-service/internal/storage"
)

type BookingHandler struct {
	bookings   *storage.BookingRepository
	catalog    *storage.CatalogRepository
	settings   *storage.SettingsRepository
	outboxRepo *outbox.Repository
	logger     *slog.Logger
}

func NewBookingHandler(bookings *storage.BookingRepository, catalog *storage.CatalogRepository, settings *storage.SettingsRepository, outboxRepo *outbox.Repository, logger *slog.Logger) *BookingHandler {
	return &BookingHandler{
		bookings:   bookings,
		catalog:    catalog,
		settings:   settings,
		outboxRepo: outboxRepo,
		logger:     logger,
	}
}

type createBookingRequest struct {
	ClientName       string   `json:"client_name"`
	Phone            string   `json:"phone"`
	Date             string   `json:"date"`
	Start            string   `json:"start"`
	ServiceIDs       []string `json:"service_ids"`
	ProfessionalID   string   `json:"professional_id"`
	ProfessionalName string   `json:"professional_name"`
	Notes            string   `json:"notes"`
}

type createBookingResponse struct {
	AppointmentID    string   `json:"appointment_id"`
	ProfessionalID   string   `json:"professional_id"`
	ProfessionalName string   `json:"professional_name"`
	Date             string   `json:"date"`
	Start            string   `json:"start"`
	End              string   `json:"end"`
	Services         []string `json:"services"`
	TotalValue       float64  `json:"total_value"`
	Status           string   `json:"status"`
}

type conflictResponse struct {
	Error         string   `json:"error"`
	ConflictStart string   `json:"conflict_start"`
	ConflictEnd   string   `json:"conflict_end"`
	Suggestions   []string `json:"suggestions"`
}

type cancelBookingRequest struct {
	AppointmentID string `json:"appointment_id"`
	Phone         string `json:"phone"`
	Actor         string `json:"actor"`
	Reason        string `json:"reason"`
}

type cancelBookingResponse struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	CancelledAt   string `json:"cancelled_at"`
}

type slotItem struct {
	Start       string `json:"start"`
	StartMinute int    `json:"start_minute"`
}

type appointmentItem struct {
	AppointmentID    string   `json:"appointment_id"`
	ProfessionalID   string   `json:"professional_id"`
	ProfessionalName string   `json:"professional_name"`
	ClientName       string   `json:"client_name"`
	Phone            string   `json:"phone"`
	Date             string   `json:"date"`
	Start            string   `json:"start"`
	End              string   `json:"end"`
	TotalValue       float64  `json:"total_value"`
	Notes            string   `json:"notes,omitempty"`
	Status           string   `json:"status"`
	Attended         *bool    `json:"attended,omitempty"`
	CancelledAt      string   `json:"cancelled_at,omitempty"`
	CanCancel        *bool    `json:"can_cancel,omitempty"`
	HoursUntil       *float64 `json:"hours_until,omitempty"`
	CreatedAt        string   `json:"created_at"`
}

// Slots lists the bookable starts for a date. With professional_id it
// answers for that professional's agenda; without, a slot is offered when
// at least one active professional is free.
func (h *BookingHandler) Slots(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	professionalID := strings.TrimSpace(r.URL.Query().Get("professional_id"))
	if dateStr == "" {
		http.Error(w, "date is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	cfg, err := h.settings.Get(ctx)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	loc := cfg.Location()

	day, err := time.ParseInLocation("2006-01-02", dateStr, loc)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	dayHours, err := h.hoursFor(ctx, int(day.Weekday()))
	if err != nil {
		http.Error(w, "failed to load business hours", http.StatusInternalServerError)
		return
	}
	if !dayHours.IsOpen {
		writeJSON(w, http.StatusOK, []slotItem{})
		return
	}

	duration, err := h.resolveServices(ctx, r.URL.Query()["service_ids"])
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	candidates := schedule.Slots(dayHours.OpensMinute, dayHours.ClosesMinute, cfg.SlotStepMinutes)

	var starts []int
	if professionalID != "" {
		busy, err := h.bookings.ListActiveIntervals(ctx, h.bookings.Pool(), professionalID, dateStr)
		if err != nil {
			http.Error(w, "failed to load agenda", http.StatusInternalServerError)
			return
		}
		starts = schedule.AvailableSlots(candidates, busy, duration)
	} else {
		busyByPro, err := h.bookings.ActiveIntervalsByProfessional(ctx, dateStr)
		if err != nil {
			http.Error(w, "failed to load agendas", http.StatusInternalServerError)
			return
		}
		starts = schedule.SlotsWithAnyFree(candidates, busyByPro, duration)
	}

	// Drop starts already behind the clock when the date is today.
	now := time.Now().In(loc)
	if dateStr == now.Format("2006-01-02") {
		nowMinute := now.Hour()*60 + now.Minute()
		kept := starts[:0]
		for _, s := range starts {
			if s > nowMinute {
				kept = append(kept, s)
			}
		}
		starts = kept
	}

	items := make([]slotItem, 0, len(starts))
	for _, s := range starts {
		items = append(items, slotItem{Start: schedule.FormatClock(s), StartMinute: s})
	}
	writeJSON(w, http.StatusOK, items)
}

func (h *BookingHandler) Create(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req createBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.ClientName = strings.TrimSpace(req.ClientName)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Date = strings.TrimSpace(req.Date)
	req.Start = strings.TrimSpace(req.Start)
	req.ProfessionalID = strings.TrimSpace(req.ProfessionalID)
	req.ProfessionalName = strings.TrimSpace(req.ProfessionalName)

	if req.ClientName == "" || req.Phone == "" || req.Date == "" || req.Start == "" || len(req.ServiceIDs) == 0 {
		http.Error(w, "client_name, phone, date, start, and service_ids are required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	cfg, err := h.settings.Get(ctx)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	loc := cfg.Location()

	day, err := time.ParseInLocation("2006-01-02", req.Date, loc)
	if err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}
	startMinute, err := schedule.ParseClock(req.Start)
	if err != nil {
		http.Error(w, "invalid start", http.StatusBadRequest)
		return
	}

	startAt := day.Add(time.Duration(startMinute) * time.Minute)
	if !startAt.After(time.Now().In(loc)) {
		http.Error(w, "start must be in the future", http.StatusUnprocessableEntity)
		return
	}

	dayHours, err := h.hoursFor(ctx, int(day.Weekday()))
	if err != nil {
		http.Error(w, "failed to load business hours", http.StatusInternalServerError)
		return
	}
	if !dayHours.IsOpen {
		http.Error(w, "the shop is closed on that day", http.StatusUnprocessableEntity)
		return
	}

	services, err := h.catalog.GetServicesByIDs(ctx, req.ServiceIDs)
	if err != nil {
		http.Error(w, "failed to load services", http.StatusInternalServerError)
		return
	}
	if len(services) != len(req.ServiceIDs) {
		http.Error(w, "unknown or inactive service", http.StatusBadRequest)
		return
	}

	var duration int
	var totalValue float64
	var serviceNames []string
	lines := make([]storage.AppointmentService, 0, len(services))
	for _, s := range services {
		duration += s.DurationMinutes
		totalValue += s.Price
		serviceNames = append(serviceNames, s.Name)
		lines = append(lines, storage.AppointmentService{
			ServiceID:       s.ID,
			Price:           s.Price,
			DurationMinutes: s.DurationMinutes,
		})
	}
	duration = schedule.ClampDuration(duration)

	if startMinute < dayHours.OpensMinute || startMinute+duration > dayHours.ClosesMinute {
		http.Error(w, "requested time is outside business hours", http.StatusUnprocessableEntity)
		return
	}

	pro, err := h.resolveProfessional(ctx, req.ProfessionalID, req.ProfessionalName, req.Date)
	if err != nil {
		if errors.Is(err, schedule.ErrNoProfessionalAvailable) {
			http.Error(w, "no professional available", http.StatusConflict)
			return
		}
		if storage.IsNotFound(err) {
			http.Error(w, "professional not found", http.StatusNotFound)
			return
		}
		if errors.Is(err, storage.ErrInactiveProfessional) {
			http.Error(w, "professional is inactive", http.StatusUnprocessableEntity)
			return
		}
		http.Error(w, "failed to resolve professional", http.StatusInternalServerError)
		return
	}

	tx, err := h.bookings.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	// Serialize on the professional's day, then validate against the
	// agenda as of this transaction.
	if err := h.bookings.LockAgenda(ctx, tx, pro.ID, req.Date); err != nil {
		http.Error(w, "failed to lock agenda", http.StatusInternalServerError)
		return
	}
	busy, err := h.bookings.ListActiveIntervals(ctx, tx, pro.ID, req.Date)
	if err != nil {
		http.Error(w, "failed to load agenda", http.StatusInternalServerError)
		return
	}

	decision := schedule.ValidateStart(busy, startMinute, duration, dayHours.ClosesMinute, cfg.SlotStepMinutes, schedule.MaxSuggestions)
	if !decision.Accepted {
		writeConflict(w, decision)
		return
	}

	appt := &model.Appointment{
		ProfessionalID:       pro.ID,
		Date:                 req.Date,
		StartMinute:          startMinute,
		TotalDurationMinutes: duration,
		TotalValue:           totalValue,
		ClientName:           req.ClientName,
		Phone:                req.Phone,
		Notes:                strings.TrimSpace(req.Notes),
		Status:               schedule.StatusScheduled,
	}

	id, err := h.bookings.Create(ctx, tx, appt, lines)
	if err != nil {
		if storage.IsConflict(err) {
			http.Error(w, "time slot already booked", http.StatusConflict)
			return
		}
		http.Error(w, "failed to create appointment", http.StatusInternalServerError)
		return
	}

	evt, err := outbox.NewAppointmentEvent(outbox.TopicAppointmentCreated, id, outbox.AppointmentEvent{
		ClientName:       req.ClientName,
		Phone:            req.Phone,
		ProfessionalName: pro.Name,
		Date:             req.Date,
		StartClock:       schedule.FormatClock(startMinute),
		Services:         serviceNames,
		TotalValue:       totalValue,
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, evt); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusCreated, createBookingResponse{
		AppointmentID:    id,
		ProfessionalID:   pro.ID,
		ProfessionalName: pro.Name,
		Date:             req.Date,
		Start:            schedule.FormatClock(startMinute),
		End:              schedule.FormatClock(startMinute + duration),
		Services:         serviceNames,
		TotalValue:       totalValue,
		Status:           string(schedule.StatusScheduled),
	})
}

func (h *BookingHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req cancelBookingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	req.Phone = strings.TrimSpace(req.Phone)
	req.Reason = strings.TrimSpace(req.Reason)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	role := schedule.ParseRole(req.Actor)

	ctx := r.Context()
	cfg, err := h.settings.Get(ctx)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	loc := cfg.Location()

	tx, err := h.bookings.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.bookings.GetForUpdate(ctx, tx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	// Clients may only touch their own bookings; phone is the public
	// identity here.
	if !role.Override() && appt.Phone != req.Phone {
		http.Error(w, "appointment not found", http.StatusNotFound)
		return
	}

	if appt.Status == schedule.StatusCancelled && appt.CancelledAt != nil {
		writeJSON(w, http.StatusOK, cancelBookingResponse{
			AppointmentID: appt.ID,
			Status:        string(schedule.StatusCancelled),
			CancelledAt:   appt.CancelledAt.UTC().Format(time.RFC3339),
		})
		return
	}
	if !schedule.CanTransition(appt.Status, schedule.StatusCancelled) {
		http.Error(w, "appointment cannot be cancelled", http.StatusConflict)
		return
	}

	startAt, err := appt.StartAt(loc)
	if err != nil {
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}
	now := time.Now().In(loc)
	minLead := time.Duration(cfg.CancelMinLeadHours) * time.Hour
	if !schedule.CanCancel(now, startAt, minLead, role) {
		http.Error(w, "cancellation window has closed", http.StatusUnprocessableEntity)
		return
	}

	cancelledAt, err := h.bookings.Cancel(ctx, tx, appt, role, req.Reason, schedule.HoursUntil(now, startAt))
	if err != nil {
		http.Error(w, "failed to cancel appointment", http.StatusInternalServerError)
		return
	}

	evt, err := outbox.NewAppointmentEvent(outbox.TopicAppointmentCancelled, appt.ID, outbox.AppointmentEvent{
		ClientName:       appt.ClientName,
		Phone:            appt.Phone,
		ProfessionalName: appt.ProfessionalName,
		Date:             appt.Date,
		StartClock:       schedule.FormatClock(appt.StartMinute),
		TotalValue:       appt.TotalValue,
		CancelledBy:      string(role),
	})
	if err != nil {
		http.Error(w, "failed to build event payload", http.StatusInternalServerError)
		return
	}
	if err := h.outboxRepo.Insert(ctx, tx, evt); err != nil {
		http.Error(w, "failed to write outbox event", http.StatusInternalServerError)
		return
	}

	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	writeJSON(w, http.StatusOK, cancelBookingResponse{
		AppointmentID: appt.ID,
		Status:        string(schedule.StatusCancelled),
		CancelledAt:   cancelledAt.UTC().Format(time.RFC3339),
	})
}

// MyAppointments lists a client's upcoming bookings by phone, annotated
// with whether each can still be cancelled.
func (h *BookingHandler) MyAppointments(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	phone := strings.TrimSpace(r.URL.Query().Get("phone"))
	if phone == "" {
		http.Error(w, "phone is required", http.StatusBadRequest)
		return
	}

	ctx := r.Context()
	cfg, err := h.settings.Get(ctx)
	if err != nil {
		http.Error(w, "failed to load settings", http.StatusInternalServerError)
		return
	}
	loc := cfg.Location()
	now := time.Now().In(loc)
	nowMinute := now.Hour()*60 + now.Minute()

	appts, err := h.bookings.ListUpcomingByPhone(ctx, phone, now.Format("2006-01-02"), nowMinute)
	if err != nil {
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	minLead := time.Duration(cfg.CancelMinLeadHours) * time.Hour
	items := make([]appointmentItem, 0, len(appts))
	for _, appt := range appts {
		item := toAppointmentItem(appt)
		if startAt, err := appt.StartAt(loc); err == nil {
			canCancel := schedule.CanCancel(now, startAt, minLead, schedule.RoleClient)
			hours := schedule.HoursUntil(now, startAt)
			item.CanCancel = &canCancel
			item.HoursUntil = &hours
		}
		items = append(items, item)
	}
	writeJSON(w, http.StatusOK, items)
}

// List is the dashboard day view.
func (h *BookingHandler) List(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	dateStr := strings.TrimSpace(r.URL.Query().Get("date"))
	if dateStr == "" {
		cfg, err := h.settings.Get(r.Context())
		if err != nil {
			http.Error(w, "failed to load settings", http.StatusInternalServerError)
			return
		}
		dateStr = time.Now().In(cfg.Location()).Format("2006-01-02")
	}
	if _, err := time.Parse("2006-01-02", dateStr); err != nil {
		http.Error(w, "invalid date", http.StatusBadRequest)
		return
	}

	appts, err := h.bookings.ListByDate(r.Context(), dateStr)
	if err != nil {
		http.Error(w, "failed to list appointments", http.StatusInternalServerError)
		return
	}

	items := make([]appointmentItem, 0, len(appts))
	for _, appt := range appts {
		items = append(items, toAppointmentItem(appt))
	}
	writeJSON(w, http.StatusOK, items)
}

type updateStatusRequest struct {
	AppointmentID string `json:"appointment_id"`
	Status        string `json:"status"`
	Attended      *bool  `json:"attended"`
}

// UpdateStatus moves an appointment through its lifecycle. Completing an
// appointment defaults attended to true unless the request says otherwise.
func (h *BookingHandler) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost && r.Method != http.MethodPatch {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req updateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "invalid json body", http.StatusBadRequest)
		return
	}
	req.AppointmentID = strings.TrimSpace(req.AppointmentID)
	if req.AppointmentID == "" {
		http.Error(w, "appointment_id required", http.StatusBadRequest)
		return
	}
	target, err := schedule.ParseStatus(req.Status)
	if err != nil {
		http.Error(w, "invalid status", http.StatusBadRequest)
		return
	}
	if target == schedule.StatusCancelled {
		http.Error(w, "use the cancel endpoint", http.StatusUnprocessableEntity)
		return
	}

	ctx := r.Context()
	tx, err := h.bookings.Begin(ctx)
	if err != nil {
		http.Error(w, "db error", http.StatusInternalServerError)
		return
	}
	defer func() { _ = tx.Rollback(ctx) }()

	appt, err := h.bookings.GetForUpdate(ctx, tx, req.AppointmentID)
	if err != nil {
		if storage.IsNotFound(err) {
			http.Error(w, "appointment not found", http.StatusNotFound)
			return
		}
		http.Error(w, "failed to load appointment", http.StatusInternalServerError)
		return
	}

	if !schedule.CanTransition(appt.Status, target) {
		http.Error(w, "invalid status transition", http.StatusConflict)
		return
	}

	attended := req.Attended
	if target == schedule.StatusCompleted && attended == nil {
		t := true
		attended = &t
	}
	if err := h.bookings.UpdateStatus(ctx, tx, appt.ID, target, attended); err != nil {
		http.Error(w, "failed to update status", http.StatusInternalServerError)
		return
	}
	if err := tx.Commit(ctx); err != nil {
		http.Error(w, "failed to commit", http.StatusInternalServerError)
		return
	}

	appt.Status = target
	if attended != nil {
		appt.Attended = attended
	}
	writeJSON(w, http.StatusOK, toAppointmentItem(appt))
}

func (h *BookingHandler) hoursFor(ctx context.Context, weekday int) (model.BusinessHours, error) {
	hours, err := h.settings.GetBusinessHours(ctx)
	if err != nil {
		return model.BusinessHours{}, err
	}
	for _, hrs := range hours {
		if hrs.Weekday == weekday {
			return hrs, nil
		}
	}
	return model.BusinessHours{Weekday: weekday}, nil
}

// resolveServices turns the service_ids query parameter (repeated or
// comma-separated) into a total duration. An empty selection falls back
// to the default duration.
func (h *BookingHandler) resolveServices(ctx context.Context, values []string) (int, error) {
	var ids []string
	for _, raw := range values {
		for _, id := range strings.Split(raw, ",") {
			if id = strings.TrimSpace(id); id != "" {
				ids = append(ids, id)
			}
		}
	}
	if len(ids) == 0 {
		return schedule.DefaultDurationMinutes, nil
	}

	services, err := h.catalog.GetServicesByIDs(ctx, ids)
	if err != nil {
		return 0, errors.New("failed to load services")
	}
	if len(services) != len(ids) {
		return 0, errors.New("unknown or inactive service")
	}
	total := 0
	for _, s := range services {
		total += s.DurationMinutes
	}
	return schedule.ClampDuration(total), nil
}

func (h *BookingHandler) resolveProfessional(ctx context.Context, id, name, date string) (model.Professional, error) {
	if id != "" {
		pro, err := h.catalog.GetProfessional(ctx, id)
		if err != nil {
			return model.Professional{}, err
		}
		if !pro.Active {
			return model.Professional{}, storage.ErrInactiveProfessional
		}
		return pro, nil
	}
	if name != "" {
		return h.catalog.FindProfessionalByName(ctx, name)
	}

	candidates, err := h.bookings.RotationSnapshot(ctx, date)
	if err != nil {
		return model.Professional{}, err
	}
	picked, err := schedule.SelectProfessional(candidates)
	if err != nil {
		return model.Professional{}, err
	}
	return h.catalog.GetProfessional(ctx, picked)
}

func toAppointmentItem(appt model.Appointment) appointmentItem {
	item := appointmentItem{
		AppointmentID:    appt.ID,
		ProfessionalID:   appt.ProfessionalID,
		ProfessionalName: appt.ProfessionalName,
		ClientName:       appt.ClientName,
		Phone:            appt.Phone,
		Date:             appt.Date,
		Start:            schedule.FormatClock(appt.StartMinute),
		End:              schedule.FormatClock(appt.StartMinute + appt.TotalDurationMinutes),
		TotalValue:       appt.TotalValue,
		Notes:            appt.Notes,
		Status:           string(appt.Status),
		Attended:         appt.Attended,
		CreatedAt:        appt.CreatedAt.UTC().Format(time.RFC3339),
	}
	if appt.CancelledAt != nil {
		item.CancelledAt = appt.CancelledAt.UTC().Format(time.RFC3339)
	}
	return item
}

func writeConflict(w http.ResponseWriter, d schedule.Decision) {
	suggestions := make([]string, 0, len(d.SuggestedStarts))
	for _, s := range d.SuggestedStarts {
		suggestions = append(suggestions, schedule.FormatClock(s))
	}
	writeJSON(w, http.StatusConflict, conflictResponse{
		Error:         "time_conflict",
		ConflictStart: schedule.FormatClock(d.ConflictStartMinute),
		ConflictEnd:   schedule.FormatClock(d.ConflictEndMinute),
		Suggestions:   suggestions,
	})
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	body, err := json.Marshal(v)
	if err != nil {
		http.Error(w, "failed to build response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(body)
}
