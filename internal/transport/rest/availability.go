package rest

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/google/uuid"

	"github.com/heartmarshall/court-scheduler/internal/domain"
	"github.com/heartmarshall/court-scheduler/internal/service/availability"
)

type availabilityService interface {
	ListRange(ctx context.Context, view, startRaw, endRaw string) (domain.DateRange, []domain.AvailabilityWithUser, error)
	Mine(ctx context.Context) ([]domain.Availability, error)
	Create(ctx context.Context, input availability.CreateInput) (*domain.Availability, error)
	Update(ctx context.Context, id uuid.UUID, input availability.UpdateInput) (*domain.Availability, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

// AvailabilityHandler serves the schedule endpoints.
type AvailabilityHandler struct {
	svc availabilityService
	log *slog.Logger
}

// NewAvailabilityHandler creates an AvailabilityHandler.
func NewAvailabilityHandler(svc availabilityService, logger *slog.Logger) *AvailabilityHandler {
	return &AvailabilityHandler{svc: svc, log: logger.With("handler", "availability")}
}

type createAvailabilityRequest struct {
	UserID    string `json:"user_id"`
	Date      string `json:"date"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

type updateAvailabilityRequest struct {
	Date      *string `json:"date"`
	StartTime *string `json:"start_time"`
	EndTime   *string `json:"end_time"`
}

type rangeResponse struct {
	View      string                 `json:"view"`
	StartDate string                 `json:"start_date"`
	EndDate   string                 `json:"end_date"`
	Items     []availabilityResponse `json:"items"`
}

// List handles GET /availability.
func (h *AvailabilityHandler) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	view := q.Get("view")

	dr, rows, err := h.svc.ListRange(r.Context(), view, q.Get("start_date"), q.Get("end_date"))
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	if !domain.RangeMode(view).IsValid() {
		view = domain.RangeToday.String()
	}
	writeJSON(w, http.StatusOK, rangeResponse{
		View:      view,
		StartDate: dr.Start.String(),
		EndDate:   dr.End.String(),
		Items:     toAvailabilityList(rows),
	})
}

// Mine handles GET /availability/mine.
func (h *AvailabilityHandler) Mine(w http.ResponseWriter, r *http.Request) {
	rows, err := h.svc.Mine(r.Context())
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}

	items := make([]availabilityResponse, 0, len(rows))
	for i := range rows {
		items = append(items, toAvailabilityResponse(&rows[i], ""))
	}
	writeJSON(w, http.StatusOK, listResponse[availabilityResponse]{Items: items, Total: len(items)})
}

// Create handles POST /availability.
func (h *AvailabilityHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createAvailabilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	input := availability.CreateInput{Date: req.Date, StartTime: req.StartTime, EndTime: req.EndTime}
	if raw := strings.TrimSpace(req.UserID); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			handleError(w, r, h.log, domain.NewValidationError("user_id", domain.RuleFormat, "user_id must be a UUID"))
			return
		}
		input.UserID = &id
	}

	a, err := h.svc.Create(r.Context(), input)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusCreated, toAvailabilityResponse(a, ""))
}

// Update handles PUT /availability/{id}.
func (h *AvailabilityHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	var req updateAvailabilityRequest
	if err := decodeJSON(w, r, &req); err != nil {
		handleError(w, r, h.log, err)
		return
	}

	a, err := h.svc.Update(r.Context(), id, availability.UpdateInput{
		Date:      req.Date,
		StartTime: req.StartTime,
		EndTime:   req.EndTime,
	})
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	writeJSON(w, http.StatusOK, toAvailabilityResponse(a, ""))
}

// Delete handles DELETE /availability/{id}.
func (h *AvailabilityHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		handleError(w, r, h.log, err)
		return
	}
	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(w, r, h.log, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
