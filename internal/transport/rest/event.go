package rest

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/event"
)

type eventService interface {
	Create(ctx context.Context, input event.CreateInput) (*event.Listing, error)
	List(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[event.Listing], error)
	Get(ctx context.Context, id uuid.UUID) (*event.Listing, error)
	Update(ctx context.Context, input event.UpdateInput) (*event.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.DeleteResult, error)
	AttachCategory(ctx context.Context, id, categoryID uuid.UUID) (*event.Listing, error)
	DetachCategory(ctx context.Context, id, categoryID uuid.UUID) (*event.Listing, error)
	Subscribe(ctx context.Context, eventID uuid.UUID) (*domain.Participant, error)
	Unsubscribe(ctx context.Context, eventID uuid.UUID) (*domain.Participant, error)
}

// EventHandler serves /events.
type EventHandler struct {
	svc          eventService
	validate     *Validator
	defaultLimit int
	log          *slog.Logger
}

// NewEventHandler creates an EventHandler.
func NewEventHandler(svc eventService, validate *Validator, defaultLimit int, logger *slog.Logger) *EventHandler {
	return &EventHandler{
		svc:          svc,
		validate:     validate,
		defaultLimit: defaultLimit,
		log:          logger.With("handler", "event"),
	}
}

type createEventRequest struct {
	Title       string      `json:"title"       validate:"required,max=200"`
	Description string      `json:"description" validate:"max=2000"`
	Lat         *float64    `json:"lat"         validate:"required,gte=-90,lte=90"`
	Lon         *float64    `json:"lon"         validate:"required,gte=-180,lte=180"`
	StartAt     *time.Time  `json:"startAt"     validate:"required"`
	EndAt       *time.Time  `json:"endAt"       validate:"required"`
	CategoryIDs []uuid.UUID `json:"categoryIds" validate:"omitempty,dive,required"`
}

type updateEventRequest struct {
	Title       *string      `json:"title"       validate:"omitempty,max=200"`
	Description *string      `json:"description" validate:"omitempty,max=2000"`
	Lat         *float64     `json:"lat"         validate:"omitempty,gte=-90,lte=90"`
	Lon         *float64     `json:"lon"         validate:"omitempty,gte=-180,lte=180"`
	StartAt     *time.Time   `json:"startAt"`
	EndAt       *time.Time   `json:"endAt"`
	CategoryIDs *[]uuid.UUID `json:"categoryIds" validate:"omitempty,dive,required"`
}

// List handles GET /events.
func (h *EventHandler) List(w http.ResponseWriter, r *http.Request) {
	filter, err := parseDiscovery(r, h.defaultLimit)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	page, err := h.svc.List(r.Context(), filter)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toPageResponse(page, toEventResponse))
}

// Get handles GET /events/{id}.
func (h *EventHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	listing, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*listing))
}

// Create handles POST /events.
func (h *EventHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createEventRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	listing, err := h.svc.Create(r.Context(), event.CreateInput{
		Title:       req.Title,
		Description: req.Description,
		Lat:         *req.Lat,
		Lon:         *req.Lon,
		StartAt:     *req.StartAt,
		EndAt:       *req.EndAt,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toEventResponse(*listing))
}

// Update handles PATCH /events/{id}.
func (h *EventHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateEventRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	listing, err := h.svc.Update(r.Context(), event.UpdateInput{
		ID:          id,
		Title:       req.Title,
		Description: req.Description,
		Lat:         req.Lat,
		Lon:         req.Lon,
		StartAt:     req.StartAt,
		EndAt:       req.EndAt,
		CategoryIDs: req.CategoryIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*listing))
}

// Delete handles DELETE /events/{id}.
func (h *EventHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.svc.Delete(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toDeleteResponse(result))
}

// AttachCategory handles POST /events/{id}/categories/{categoryId}.
func (h *EventHandler) AttachCategory(w http.ResponseWriter, r *http.Request) {
	h.mutateCategory(w, r, h.svc.AttachCategory)
}

// DetachCategory handles DELETE /events/{id}/categories/{categoryId}.
func (h *EventHandler) DetachCategory(w http.ResponseWriter, r *http.Request) {
	h.mutateCategory(w, r, h.svc.DetachCategory)
}

func (h *EventHandler) mutateCategory(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id, categoryID uuid.UUID) (*event.Listing, error),
) {
	id, categoryID, err := pathIDs(r)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	listing, err := op(r.Context(), id, categoryID)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toEventResponse(*listing))
}

// Subscribe handles POST /events/{id}/subscription.
func (h *EventHandler) Subscribe(w http.ResponseWriter, r *http.Request) {
	h.participation(w, r, h.svc.Subscribe)
}

// Unsubscribe handles DELETE /events/{id}/subscription.
func (h *EventHandler) Unsubscribe(w http.ResponseWriter, r *http.Request) {
	h.participation(w, r, h.svc.Unsubscribe)
}

func (h *EventHandler) participation(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, eventID uuid.UUID) (*domain.Participant, error),
) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	p, err := op(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toParticipantResponse(*p))
}
