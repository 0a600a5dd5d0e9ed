// Command api serves the HTTP API until SIGINT or SIGTERM, then drains
// in-flight requests and exits.
//
// Exit codes: 0 = clean shutdown, 1 = startup or serve error.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/ecoponto-backend/internal/app"
)

func main() {
	// Local overrides; absent in deployed environments.
	_ = godotenv.Load(".env.local")

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("api: %v", err)
	}
}
