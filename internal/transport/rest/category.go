package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/google/uuid"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
	"github.com/heartmarshall/ecoponto-backend/internal/service/category"
	"github.com/heartmarshall/ecoponto-backend/internal/service/classify"
)

type categoryService interface {
	List(ctx context.Context) ([]domain.CategoryWithUsage, error)
	Get(ctx context.Context, id uuid.UUID) (*domain.CategoryWithUsage, error)
	Create(ctx context.Context, input category.CreateInput) (*domain.Category, error)
	Delete(ctx context.Context, id uuid.UUID) error
}

type categoryMatcher interface {
	Match(ctx context.Context, label string, confidence float64) (*classify.Result, error)
}

// CategoryHandler serves the category catalogue.
type CategoryHandler struct {
	svc      categoryService
	matcher  categoryMatcher
	validate *Validator
	log      *slog.Logger
}

// NewCategoryHandler creates a CategoryHandler.
func NewCategoryHandler(svc categoryService, matcher categoryMatcher, validate *Validator, logger *slog.Logger) *CategoryHandler {
	return &CategoryHandler{
		svc:      svc,
		matcher:  matcher,
		validate: validate,
		log:      logger.With("handler", "category"),
	}
}

type createCategoryRequest struct {
	Name string `json:"name" validate:"required,max=100"`
}

type matchCategoryRequest struct {
	Label      string   `json:"label"      validate:"required,max=200"`
	Confidence *float64 `json:"confidence" validate:"required,gte=0,lte=1"`
}

// List handles GET /categories.
func (h *CategoryHandler) List(w http.ResponseWriter, r *http.Request) {
	categories, err := h.svc.List(r.Context())
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	out := make([]categoryWithUsageResponse, len(categories))
	for i, c := range categories {
		out[i] = toCategoryWithUsageResponse(c)
	}
	writeJSON(w, http.StatusOK, out)
}

// Get handles GET /categories/{id}.
func (h *CategoryHandler) Get(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Get(r.Context(), id)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toCategoryWithUsageResponse(*c))
}

// Create handles POST /categories.
func (h *CategoryHandler) Create(w http.ResponseWriter, r *http.Request) {
	var req createCategoryRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	c, err := h.svc.Create(r.Context(), category.CreateInput{Name: req.Name})
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusCreated, toCategoryResponse(*c))
}

// Delete handles DELETE /categories/{id}.
func (h *CategoryHandler) Delete(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}

	if err := h.svc.Delete(r.Context(), id); err != nil {
		handleError(h.log, w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// Match handles POST /categories/match.
func (h *CategoryHandler) Match(w http.ResponseWriter, r *http.Request) {
	var req matchCategoryRequest
	if err := decodeJSON(w, r, h.validate, &req); err != nil {
		handleError(h.log, w, r, err)
		return
	}

	result, err := h.matcher.Match(r.Context(), req.Label, *req.Confidence)
	if err != nil {
		handleError(h.log, w, r, err)
		return
	}
	writeJSON(w, http.StatusOK, toMatchResponse(result))
}
