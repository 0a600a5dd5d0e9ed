// Command cleanup deletes cancelled participations of events that ended more
// than participation.retention_days ago. It is intended to be invoked by an
// external cron job, not as an in-process goroutine.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/participant"
	"github.com/heartmarshall/ecoponto-backend/internal/app"
	"github.com/heartmarshall/ecoponto-backend/internal/config"
)

func main() {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log, "cleanup")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	repo := participant.New(pool)

	cutoff := time.Now().AddDate(0, 0, -cfg.Participation.RetentionDays)

	deleted, err := repo.DeleteCancelledEndedBefore(ctx, cutoff)
	if err != nil {
		logger.Error("participation cleanup failed",
			slog.String("error", err.Error()),
			slog.Time("cutoff", cutoff),
		)
		os.Exit(1)
	}

	logger.Info("participation cleanup completed",
		slog.Int("deleted", deleted),
		slog.Time("cutoff", cutoff),
	)
}
