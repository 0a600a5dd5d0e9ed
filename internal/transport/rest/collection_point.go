package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/collectionpoint"
)

type collectionPointService interface {
	Create(ctx context.Context, input collectionpoint.CreateInput) (*collectionpoint.Listing, error)
	List(ctx context.Context, filter domain.DiscoveryFilter) (domain.Page[collectionpoint.Listing], error)
	Get(ctx context.Context, id uuid.UUID) (*collectionpoint.Listing, error)
	Update(ctx context.Context, input collectionpoint.UpdateInput) (*collectionpoint.Listing, error)
	Delete(ctx context.Context, id uuid.UUID) (domain.DeleteResult, error)
	AttachCategory(ctx context.Context, id, categoryID uuid.UUID) (*collectionpoint.Listing, error)
	DetachCategory(ctx context.Context, id, categoryID uuid.UUID) (*collectionpoint.Listing, error)
}

// CollectionPointHandler serves /collection-points.
type CollectionPointHandler struct {
	svc          collectionPointService
	validate     *Validator
	defaultLimit int
	log          *slog.Logger
}

// NewCollectionPointHandler creates a CollectionPointHandler. defaultLimit is
// the page size used when the query has no limit.
func NewCollectionPointHandler(svc collectionPointService, validate *Validator, defaultLimit int, logger *slog.Logger) *CollectionPointHandler {
	return &CollectionPointHandler{
		svc:          svc,
		validate:     validate,
		defaultLimit: defaultLimit,
		log:          logger.With("handler", "collection_point"),
	}
}

type createCollectionPointRequest struct {
	Name         string      `json:"name"         validate:"required,max=200"`
	Address      string      `json:"address"      validate:"required,max=300"`
	Lat          *float64    `json:"lat"          validate:"required,gte=-90,lte=90"`
	Lon          *float64    `json:"lon"          validate:"required,gte=-180,lte=180"`
	Contact      *string     `json:"contact"      validate:"omitempty,max=100"`
	OpeningHours *string     `json:"openingHours" validate:"omitempty,max=200"`
	CategoryIDs  []uuid.UUID `json:"categoryIds"  validate:"omitempty,dive,required"`
}

type updateCollectionPointRequest struct {
	Name         *string      `json:"name"         validate:"omitempty,max=200"`
	Address      *string      `json:"address"      validate:"omitempty,max=300"`
	Lat          *float64     `json:"lat"          validate:"omitempty,gte=-90,lte=90"`
	Lon          *float64     `json:"lon"          validate:"omitempty,gte=-180,lte=180"`
	Contact      *string      `json:"contact"      validate:"omitempty,max=100"`
	OpeningHours *string      `json:"openingHours" validate:"omitempty,max=200"`
	CategoryIDs  *[]uuid.UUID `json:"categoryIds"  validate:"omitempty,dive,required"`
}

// List handles GET /collection-points.
func (h *CollectionPointHandler) List(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toPageResponse(page, toCollectionPointResponse))
}

// Get handles GET /collection-points/{id}.
func (h *CollectionPointHandler) Get(w http.ResponseWriter, r *http.Request) {
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
	writeJSON(w, http.StatusOK, toCollectionPointResponse(*listing))
}

// Create handles POST /collection-points.
func (h *CollectionPointHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCollectionPointRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	listing, err := h.svc.Create(r.Context(), collectionpoint.CreateInput{
		Name:         req.Name,
		Address:      req.Address,
		Lat:          *req.Lat,
		Lon:          *req.Lon,
		Contact:      req.Contact,
		OpeningHours: req.OpeningHours,
		CategoryIDs:  req.CategoryIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCollectionPointResponse(*listing))
}

// Update handles PATCH /collection-points/{id}.
func (h *CollectionPointHandler) Update(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	var req updateCollectionPointRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	listing, err := h.svc.Update(r.Context(), collectionpoint.UpdateInput{
		ID:           id,
		Name:         req.Name,
		Address:      req.Address,
		Lat:          req.Lat,
		Lon:          req.Lon,
		Contact:      req.Contact,
		OpeningHours: req.OpeningHours,
		CategoryIDs:  req.CategoryIDs,
	})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCollectionPointResponse(*listing))
}

// Delete handles DELETE /collection-points/{id}.
func (h *CollectionPointHandler) Delete(w http.ResponseWriter, r *http.Request) {
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

// AttachCategory handles POST /collection-points/{id}/categories/{categoryId}.
func (h *CollectionPointHandler) AttachCategory(w http.ResponseWriter, r *http.Request) {
	h.mutateCategory(w, r, h.svc.AttachCategory)
}

// DetachCategory handles DELETE /collection-points/{id}/categories/{categoryId}.
func (h *CollectionPointHandler) DetachCategory(w http.ResponseWriter, r *http.Request) {
	h.mutateCategory(w, r, h.svc.DetachCategory)
}

func (h *CollectionPointHandler) mutateCategory(
	w http.ResponseWriter,
	r *http.Request,
	op func(ctx context.Context, id, categoryID uuid.UUID) (*collectionpoint.Listing, error),
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
	writeJSON(w, http.StatusOK, toCollectionPointResponse(*listing))
}

// pathIDs parses the {id} and {categoryId} URL parameters.
func pathIDs(r *http.Request) (uuid.UUID, uuid.UUID, error) {
	id, err := pathID(r, "id")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	categoryID, err := pathID(r, "categoryId")
	if err != nil {
		return uuid.Nil, uuid.Nil, err
	}
	return id, categoryID, nil
}
