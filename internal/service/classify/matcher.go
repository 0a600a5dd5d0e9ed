// Package classify resolves an opaque image-classifier guess to a stored
// category. The classifier itself is an external collaborator; this package
// only sees its label and confidence.
package classify

import (
	"context"
	"fmt"
	"log/slog"
	"unicode/utf8"

	"github.com/agnivade/levenshtein"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

type categoryLister interface {
	List(ctx context.Context) ([]domain.Category, error)
}

// Method tells how a label was resolved.
type Method string

const (
	MethodExact   Method = "exact"
	MethodSynonym Method = "synonym"
	MethodFuzzy   Method = "fuzzy"
)

// Result is a resolved classifier guess.
type Result struct {
	Category   domain.Category
	Method     Method
	Similarity float64
	Confidence float64
}

// Options configures the matcher thresholds.
type Options struct {
	// MinConfidence rejects classifier guesses below this confidence.
	MinConfidence float64
	// MinSimilarity is the lowest accepted fuzzy similarity in [0,1].
	MinSimilarity float64
}

// Service matches classifier labels to categories.
type Service struct {
	categories categoryLister
	synonyms   map[string]string
	opts       Options
	log        *slog.Logger
}

// NewService creates a matcher using the built-in synonym table.
func NewService(log *slog.Logger, categories categoryLister, opts Options) *Service {
	return &Service{
		categories: categories,
		synonyms:   normalizedSynonyms(defaultSynonyms),
		opts:       opts,
		log:        log.With("service", "classify"),
	}
}

// Match resolves label to a category.
//
// A guess below the confidence floor, or one that neither names a category,
// hits a synonym nor is similar enough to a category name, yields
// domain.ErrNotFound.
func (s *Service) Match(ctx context.Context, label string, confidence float64) (*Result, error) {
	if confidence < 0 || confidence > 1 {
		return nil, domain.NewValidationError("confidence", "must be between 0 and 1")
	}
	normalized := domain.NormalizeLabel(label)
	if normalized == "" {
		return nil, domain.NewValidationError("label", "required")
	}
	if confidence < s.opts.MinConfidence {
		return nil, fmt.Errorf("confidence %.2f below %.2f: %w", confidence, s.opts.MinConfidence, domain.ErrNotFound)
	}

	categories, err := s.categories.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list categories: %w", err)
	}

	byName := make(map[string]domain.Category, len(categories))
	for _, c := range categories {
		byName[domain.NormalizeLabel(c.Name)] = c
	}

	result := s.resolve(normalized, byName)
	if result == nil {
		s.log.DebugContext(ctx, "label not matched", slog.String("label", normalized))
		return nil, fmt.Errorf("label %q: %w", label, domain.ErrNotFound)
	}
	result.Confidence = confidence

	s.log.DebugContext(ctx, "label matched",
		slog.String("label", normalized),
		slog.String("category", result.Category.Name),
		slog.String("method", string(result.Method)),
		slog.Float64("similarity", result.Similarity),
	)

	return result, nil
}

func (s *Service) resolve(label string, byName map[string]domain.Category) *Result {
	if c, ok := byName[label]; ok {
		return &Result{Category: c, Method: MethodExact, Similarity: 1}
	}
	if target, ok := s.synonyms[label]; ok {
		if c, ok := byName[target]; ok {
			return &Result{Category: c, Method: MethodSynonym, Similarity: 1}
		}
	}

	var (
		best      *domain.Category
		bestScore float64
	)
	for name, c := range byName {
		score := similarity(label, name)
		// Ties go to the lexically smaller name so results do not depend on
		// map iteration order.
		if score > bestScore || (score == bestScore && best != nil && name < domain.NormalizeLabel(best.Name)) {
			best, bestScore = &c, score
		}
	}
	if best == nil || bestScore < s.opts.MinSimilarity {
		return nil
	}
	return &Result{Category: *best, Method: MethodFuzzy, Similarity: bestScore}
}

// similarity is 1 - editDistance/maxRuneLength, in [0,1].
func similarity(a, b string) float64 {
	if a == b {
		return 1
	}
	maxLen := max(utf8.RuneCountInString(a), utf8.RuneCountInString(b))
	if maxLen == 0 {
		return 0
	}
	return 1 - float64(levenshtein.ComputeDistance(a, b))/float64(maxLen)
}
