package main

import (
	"context"
	"fmt"
	"os"

	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"treasure-map-service/internal/adapters/backends"
	"treasure-map-service/internal/adapters/repositories"
	"treasure-map-service/internal/config"
	"treasure-map-service/internal/domain"
	"treasure-map-service/internal/platform/obs"
	"treasure-map-service/internal/services"
)

// Flag defaults read the environment, so .env is loaded before init runs.
var _ = loadDotenv()

func loadDotenv() bool {
	return godotenv.Load() == nil
}

var (
	databaseURL  string
	dbPath       string
	seedPath     string
	settingsPath string
	verbose      bool
)

var rootCmd = &cobra.Command{
	Use:   "dbtool",
	Short: "Maintenance commands for the treasure map service",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		level := config.Get("LOG_LEVEL", "info")
		if verbose {
			level = "debug"
		}
		obs.SetupLogger(level, false)
	},
	SilenceUsage: true,
}

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create the places schema",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := repositories.OpenStore(databaseURL, dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		log.WithField("store", store.Driver).Info("Initializing database schema...")
		if err := store.InitSchema(); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}
		log.Info("Schema ready.")
		return nil
	},
}

var seedCmd = &cobra.Command{
	Use:   "seed",
	Short: "Create the schema and load places from a JSON file",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := repositories.OpenStore(databaseURL, dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		if err := store.InitSchema(); err != nil {
			return fmt.Errorf("schema initialization failed: %w", err)
		}

		log.WithField("path", seedPath).Info("Seeding database...")
		if err := repositories.SeedFromJSON(cmd.Context(), store.Places, seedPath); err != nil {
			return fmt.Errorf("seeding failed: %w", err)
		}
		log.Info("Seeding complete.")
		return nil
	},
}

var checkConfigCmd = &cobra.Command{
	Use:   "check-config",
	Short: "Resolve the configured map backend and print what the widget loads",
	RunE: func(cmd *cobra.Command, args []string) error {
		settings, err := config.Load(settingsPath)
		if err != nil {
			return err
		}

		provider, err := backends.NewRegistry().Resolve(*settings.TreasureMap)
		if err != nil {
			return err
		}

		d, err := services.DescribeBackend(provider)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "backend:  %s\n", d.Name)
		fmt.Fprintf(out, "api js:   %s\n", d.APIJS)
		fmt.Fprintf(out, "js:       %s\n", d.JS)
		fmt.Fprintf(out, "template: %s\n", d.WidgetTemplate)
		fmt.Fprintf(out, "size:     %dx%d (admin %dx%d)\n", d.Width, d.Height, d.AdminWidth, d.AdminHeight)
		fmt.Fprintf(out, "only map: %t\n", d.OnlyMap)
		return nil
	},
}

var normalizeCmd = &cobra.Command{
	Use:   "normalize",
	Short: "Rewrite every stored coordinate in canonical form",
	RunE: func(cmd *cobra.Command, args []string) error {
		store, err := repositories.OpenStore(databaseURL, dbPath)
		if err != nil {
			return err
		}
		defer store.Close()

		n, err := normalizePlaces(cmd.Context(), store)
		if err != nil {
			return err
		}
		log.WithField("places", n).Info("Normalization complete.")
		return nil
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&databaseURL, "database-url", os.Getenv("DATABASE_URL"), "PostgreSQL URL; SQLite is used when empty")
	rootCmd.PersistentFlags().StringVar(&dbPath, "db", config.Get("DB_PATH", "data/app.db"), "SQLite database path")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")

	seedCmd.Flags().StringVarP(&seedPath, "file", "f", config.Get("SEED_PATH", "data/seeds/places.json"), "Seed JSON path")
	checkConfigCmd.Flags().StringVarP(&settingsPath, "config", "c", config.Get("TREASURE_MAP_CONFIG", "treasuremap.yaml"), "Settings YAML path")

	rootCmd.AddCommand(initCmd, seedCmd, checkConfigCmd, normalizeCmd)
}

// normalizePlaces reads every place and saves it back, which rewrites the
// coordinate columns through the canonical formatter.
func normalizePlaces(ctx context.Context, store *repositories.Store) (int, error) {
	places, err := store.Places.ListPlaces(ctx)
	if err != nil {
		return 0, fmt.Errorf("normalize: %w", err)
	}

	for _, p := range places {
		if err := store.Places.SavePlace(ctx, p); err != nil {
			return 0, fmt.Errorf("normalize place_id=%d: %w", p.PlaceID, err)
		}
		log.WithFields(log.Fields{
			"place_id": p.PlaceID,
			"point":    p.Point.String(),
			"entrance": entranceText(p),
		}).Debug("place normalized")
	}

	return len(places), nil
}

func entranceText(p *domain.Place) string {
	if p.Entrance == nil {
		return ""
	}
	return p.Entrance.String()
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
