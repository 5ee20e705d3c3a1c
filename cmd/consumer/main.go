package main

import (
	"context"
	"errors"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/iliyamo/ice-cream-parlor/internal/config"
	"github.com/iliyamo/ice-cream-parlor/internal/queue"
)

// The consumer only needs the broker URL, so it does not go through
// config.Load and its required database settings.
func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("could not read .env: %v", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Printf("flavor-consumer: writing %s/%s", queue.LogDir, queue.LogFile)
	if err := queue.StartFlavorConsumer(ctx, config.BrokerURL()); err != nil && !errors.Is(err, context.Canceled) {
		log.Fatal(err)
	}
}
