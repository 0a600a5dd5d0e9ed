// Command seeder upserts the category catalogue. Existing categories are left
// untouched, so it is safe to run on every deploy.
//
// Flags:
//
//	--config   path to a YAML file with a "categories" list (default: built-in list)
//	--dry-run  log what would be written without touching the database
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres"
	"github.com/heartmarshall/ecoponto-backend/internal/adapter/postgres/category"
	"github.com/heartmarshall/ecoponto-backend/internal/app"
	"github.com/heartmarshall/ecoponto-backend/internal/app/seeder"
	"github.com/heartmarshall/ecoponto-backend/internal/config"
)

// Compile-time interface assertion.
var _ seeder.CategoryUpserter = (*category.Repo)(nil)

func main() {
	configFlag := flag.String("config", "", "path to seeder YAML config file")
	dryRunFlag := flag.Bool("dry-run", false, "log without writing to DB")
	flag.Parse()

	_ = godotenv.Load(".env.local")

	appCfg, err := config.Load()
	if err != nil {
		log.Fatalf("load app config: %v", err)
	}

	logger := app.NewLogger(appCfg.Log, "seeder")

	seederCfg, err := seeder.LoadConfig(*configFlag)
	if err != nil {
		logger.Error("load seeder config", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if *dryRunFlag {
		seederCfg.DryRun = true
	}

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Minute)
	defer cancel()

	pool, err := postgres.NewPool(ctx, appCfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	res, err := seeder.NewPipeline(logger, category.New(pool), *seederCfg).Run(ctx)
	if err != nil {
		logger.Error("seeding failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
	if res.Errors > 0 {
		logger.Warn("seeding completed with errors", slog.Int("errors", res.Errors))
		os.Exit(1)
	}
}
