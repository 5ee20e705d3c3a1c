package main // Entry point package

import (
	"context"   // shutdown deadline
	"errors"    // detect the normal server-closed error
	"log"       // Logging library
	"net/http"  // http.ErrServerClosed
	"os"        // signal target
	"os/signal" // graceful shutdown on SIGINT/SIGTERM
	"syscall"   // SIGTERM
	"time"      // shutdown timeout

	"github.com/joho/godotenv"                      // .env loader for local development
	"github.com/labstack/echo/v4"                   // Echo web framework
	echomw "github.com/labstack/echo/v4/middleware" // access log and panic recovery

	"github.com/iliyamo/ice-cream-parlor/internal/config"     // Internal config loader
	"github.com/iliyamo/ice-cream-parlor/internal/database"   // MySQL pool
	"github.com/iliyamo/ice-cream-parlor/internal/handler"    // HTTP handlers
	"github.com/iliyamo/ice-cream-parlor/internal/repository" // flavor data access
	"github.com/iliyamo/ice-cream-parlor/internal/router"     // Internal router setup
	"github.com/iliyamo/ice-cream-parlor/internal/service"    // event publisher
	"github.com/iliyamo/ice-cream-parlor/internal/upstream"   // /ping client
	"github.com/iliyamo/ice-cream-parlor/internal/view"       // HTML renderer
)

func main() {
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Printf("could not read .env: %v", err)
	}
	cfg := config.Load() // Load environment config

	db, err := database.Open(cfg) // builds the pool, does not dial
	if err != nil {
		log.Fatalf("database: %v", err) // only a malformed DSN ends up here
	}
	defer db.Close()
	if err := database.Ping(context.Background(), db); err != nil {
		// keep serving so /health can report the outage
		log.Printf("database unreachable at startup: %v", err)
	}

	renderer, err := view.New()
	if err != nil {
		log.Fatalf("templates: %v", err)
	}

	var events handler.EventPublisher = service.Discard{}
	if cfg.EventsEnabled {
		events = service.NewPublisher(cfg.RabbitMQURL)
	}

	flavors := repository.NewFlavorRepo(db)

	e := echo.New() // Create Echo instance
	e.HideBanner = true
	e.Logger.SetLevel(cfg.EchoLogLevel())
	e.Renderer = renderer
	e.Use(echomw.Recover())
	e.Use(echomw.Logger())

	router.RegisterRoutes(e, &handler.StatusHandler{
		DB:       flavors,
		Upstream: upstream.NewClient(cfg.PingURL, cfg.PingTimeout),
	})
	router.RegisterFlavors(e, handler.NewFlavorHandler(flavors, events))

	addr := ":" + cfg.Port // Address string with port
	log.Printf("listening on %s (env=%s, events=%t)", addr, cfg.Env, cfg.EventsEnabled)

	go func() {
		if err := e.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) { // Start HTTP server
			log.Fatal(err) // Log and exit if server fails
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
