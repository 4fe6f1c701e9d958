// Package main is the regionforge map server: region maps over HTTP,
// with every generated snapshot broadcast to websocket subscribers.
package main

import (
	"context"
	"errors"
	"flag"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-logr/stdr"
	"github.com/joho/godotenv"

	"github.com/samdwyer/regionforge/internal/mapserver"
	"github.com/samdwyer/regionforge/internal/regiondata"
	"github.com/samdwyer/regionforge/internal/telemetry"
)

func main() {
	addr := flag.String("addr", ":8433", "listen address")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Note: .env file not loaded: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdown, err := telemetry.Setup(ctx)
	if err != nil {
		log.Printf("Warning: telemetry setup failed: %v", err)
	} else {
		defer func() {
			if err := shutdown(context.Background()); err != nil {
				log.Printf("Error shutting down telemetry: %v", err)
			}
		}()
	}

	logger := stdr.New(log.New(os.Stderr, "", log.LstdFlags)).WithName("regiond")

	registry, err := regiondata.LoadRegionRegistry()
	if err != nil {
		log.Fatalf("Failed to load regions: %v", err)
	}
	logger.Info("regions loaded", "count", registry.Count())

	server := mapserver.New(registry, logger)
	if err := server.ListenAndServe(ctx, *addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		log.Fatalf("Server error: %v", err)
	}
}
