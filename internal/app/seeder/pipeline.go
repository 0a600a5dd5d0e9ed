// Package seeder loads the initial category catalogue.
package seeder

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/heartmarshall/ecoponto-backend/internal/domain"
)

// CategoryUpserter creates categories that do not exist yet.
type CategoryUpserter interface {
	Upsert(ctx context.Context, name string) (*domain.Category, bool, error)
}

// Result holds the outcome of a seeding run.
type Result struct {
	Inserted int
	Existing int
	Skipped  int
	Errors   int
	Duration time.Duration
}

// Pipeline upserts the configured categories.
type Pipeline struct {
	log  *slog.Logger
	repo CategoryUpserter
	cfg  Config
}

// NewPipeline creates a new Pipeline.
func NewPipeline(log *slog.Logger, repo CategoryUpserter, cfg Config) *Pipeline {
	return &Pipeline{
		log:  log.With("component", "seeder"),
		repo: repo,
		cfg:  cfg,
	}
}

// Run upserts every configured category. Names are trimmed; blank, overlong
// and duplicate names (compared after label normalisation) are skipped.
// A failing upsert is counted and the run continues with the next name.
func (p *Pipeline) Run(ctx context.Context) (Result, error) {
	start := time.Now()
	var res Result

	seen := make(map[string]struct{}, len(p.cfg.Categories))
	for _, raw := range p.cfg.Categories {
		if err := ctx.Err(); err != nil {
			return res, fmt.Errorf("seeder: %w", err)
		}

		name := strings.TrimSpace(raw)
		key := domain.NormalizeLabel(name)
		if key == "" || utf8.RuneCountInString(name) > domain.CategoryNameMaxLength {
			p.log.WarnContext(ctx, "skipping invalid category name", slog.String("name", raw))
			res.Skipped++
			continue
		}
		if _, dup := seen[key]; dup {
			res.Skipped++
			continue
		}
		seen[key] = struct{}{}

		if p.cfg.DryRun {
			p.log.InfoContext(ctx, "dry run: would upsert category", slog.String("name", name))
			continue
		}

		c, created, err := p.repo.Upsert(ctx, name)
		if err != nil {
			p.log.ErrorContext(ctx, "upsert category failed",
				slog.String("name", name),
				slog.String("error", err.Error()),
			)
			res.Errors++
			continue
		}
		if created {
			res.Inserted++
			p.log.InfoContext(ctx, "category created",
				slog.String("category_id", c.ID.String()),
				slog.String("name", c.Name),
			)
		} else {
			res.Existing++
		}
	}

	res.Duration = time.Since(start)
	p.log.InfoContext(ctx, "seeding finished",
		slog.Int("inserted", res.Inserted),
		slog.Int("existing", res.Existing),
		slog.Int("skipped", res.Skipped),
		slog.Int("errors", res.Errors),
		slog.Duration("duration", res.Duration),
	)
	return res, nil
}
