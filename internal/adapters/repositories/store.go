package repositories

import (
	"database/sql"
	"fmt"
	"strings"

	"treasure-map-service/internal/platform/db"
	"treasure-map-service/internal/ports"
)

// Store is an opened database with the matching place repository.
type Store struct {
	DB     *sql.DB
	Places ports.PlaceRepository
	Driver string

	initSchema func(*sql.DB) error
}

// OpenStore connects to PostgreSQL when databaseURL is set and to the
// SQLite file at dbPath otherwise.
func OpenStore(databaseURL, dbPath string) (*Store, error) {
	if strings.TrimSpace(databaseURL) != "" {
		conn, err := db.Open(databaseURL)
		if err != nil {
			return nil, fmt.Errorf("open store: %w", err)
		}
		return &Store{
			DB:         conn,
			Places:     NewSQLPlaceRepository(conn),
			Driver:     "postgres",
			initSchema: InitPostgresSchema,
		}, nil
	}

	conn, err := db.OpenSQLite(dbPath)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return &Store{
		DB:         conn,
		Places:     NewSqlitePlaceRepository(conn),
		Driver:     "sqlite",
		initSchema: InitSchema,
	}, nil
}

func (s *Store) InitSchema() error {
	return s.initSchema(s.DB)
}

func (s *Store) Close() error {
	return s.DB.Close()
}
