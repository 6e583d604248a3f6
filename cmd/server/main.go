package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	log "github.com/sirupsen/logrus"

	"treasure-map-service/internal/adapters/backends"
	"treasure-map-service/internal/adapters/repositories"
	"treasure-map-service/internal/api"
	"treasure-map-service/internal/config"
	"treasure-map-service/internal/forms"
	"treasure-map-service/internal/platform/obs"
)

// main is the application composition root.
// It wires the map backend and the place store behind ports and starts the HTTP server.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Info("No .env file found (using environment variables)")
	}

	obs.SetupLogger(config.Get("LOG_LEVEL", "info"), config.Get("LOG_FORMAT", "text") == "json")

	port := config.Get("PORT", "8080")
	dbPath := config.Get("DB_PATH", "data/app.db")
	seedPath := config.Get("SEED_PATH", "data/seeds/places.json")
	settingsPath := config.Get("TREASURE_MAP_CONFIG", "treasuremap.yaml")

	settings, err := config.Load(settingsPath)
	if err != nil {
		log.WithError(err).Fatal("load settings")
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	metrics := obs.NewMetrics(reg)

	provider, err := backends.NewRegistry().Resolve(*settings.TreasureMap)
	metrics.ObserveBackendResolve(backends.BackendID(*settings.TreasureMap), err)
	if err != nil {
		log.WithError(err).Fatal("resolve map backend")
	}

	store, err := repositories.OpenStore(os.Getenv("DATABASE_URL"), dbPath)
	if err != nil {
		log.WithError(err).Fatal("open store")
	}
	defer store.Close()

	// Initialize schema and seed demo data on startup for local runs.
	if err := initAndSeed(store, seedPath); err != nil {
		log.WithError(err).Fatal("init and seed")
	}

	router := api.NewRouter(api.Deps{
		Provider:  provider,
		Places:    store.Places,
		Templates: forms.NewTemplates(os.Getenv("TEMPLATE_DIR")),
		Metrics:   metrics,
		Gatherer:  reg,
	})

	srv := &http.Server{
		Addr:              ":" + port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.WithFields(log.Fields{
			"addr":    srv.Addr,
			"backend": provider.Name(),
			"store":   store.Driver,
		}).Info("Server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("serve")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutdown")
	}
}

func initAndSeed(store *repositories.Store, seedPath string) error {
	if err := store.InitSchema(); err != nil {
		return err
	}

	if seedPath == "" {
		return nil
	}
	if _, err := os.Stat(seedPath); errors.Is(err, os.ErrNotExist) {
		log.WithField("path", seedPath).Info("seed file not found, skipping")
		return nil
	}

	return repositories.SeedFromJSON(context.Background(), store.Places, seedPath)
}
