// Command migrate applies the embedded goose migrations.
//
//	migrate up            apply all pending migrations
//	migrate down          roll back the most recent migration
//	migrate status        list migrations and whether they are applied
//
// The database DSN comes from the regular application config.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib" // pgx database/sql driver for goose
	"github.com/joho/godotenv"
	"github.com/pressly/goose/v3"
	"github.com/spf13/cobra"

	"github.com/heartmarshall/ecoponto-backend/internal/config"
	"github.com/heartmarshall/ecoponto-backend/migrations"
)

func main() {
	_ = godotenv.Load(".env.local")

	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var timeout time.Duration

	root := &cobra.Command{
		Use:          "migrate",
		Short:        "Manage the database schema",
		SilenceUsage: true,
	}
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Minute, "overall time limit")

	run := func(fn func(ctx context.Context, p *goose.Provider, cmd *cobra.Command) error) func(*cobra.Command, []string) error {
		return func(cmd *cobra.Command, _ []string) error {
			ctx, cancel := context.WithTimeout(cmd.Context(), timeout)
			defer cancel()

			p, closeDB, err := newProvider()
			if err != nil {
				return err
			}
			defer closeDB()

			return fn(ctx, p, cmd)
		}
	}

	root.AddCommand(
		&cobra.Command{
			Use:   "up",
			Short: "Apply all pending migrations",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, p *goose.Provider, cmd *cobra.Command) error {
				results, err := p.Up(ctx)
				for _, r := range results {
					cmd.Printf("applied %s (%s)\n", r.Source.Path, r.Duration)
				}
				if err != nil {
					return fmt.Errorf("up: %w", err)
				}
				if len(results) == 0 {
					cmd.Println("no pending migrations")
				}
				return nil
			}),
		},
		&cobra.Command{
			Use:   "down",
			Short: "Roll back the most recent migration",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, p *goose.Provider, cmd *cobra.Command) error {
				r, err := p.Down(ctx)
				if err != nil {
					return fmt.Errorf("down: %w", err)
				}
				cmd.Printf("rolled back %s (%s)\n", r.Source.Path, r.Duration)
				return nil
			}),
		},
		&cobra.Command{
			Use:   "status",
			Short: "Show migration status",
			Args:  cobra.NoArgs,
			RunE: run(func(ctx context.Context, p *goose.Provider, cmd *cobra.Command) error {
				statuses, err := p.Status(ctx)
				if err != nil {
					return fmt.Errorf("status: %w", err)
				}
				for _, s := range statuses {
					applied := "pending"
					if s.State == goose.StateApplied {
						applied = s.AppliedAt.Format(time.RFC3339)
					}
					cmd.Printf("%-40s %s\n", s.Source.Path, applied)
				}
				return nil
			}),
		},
	)

	return root
}

func newProvider() (*goose.Provider, func(), error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}

	db, err := sql.Open("pgx", cfg.Database.DSN)
	if err != nil {
		return nil, nil, fmt.Errorf("open database: %w", err)
	}

	p, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		db.Close()
		return nil, nil, fmt.Errorf("goose provider: %w", err)
	}
	return p, func() { db.Close() }, nil
}
