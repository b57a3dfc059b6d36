package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-contacts/internal/config"
	"github.com/MKhiriev/go-contacts/internal/logger"
	"github.com/MKhiriev/go-contacts/migrations"
	"github.com/jackc/pgx/v5/pgconn"
	_ "github.com/jackc/pgx/v5/stdlib"
)

// DB wraps the shared connection pool used by every repository.
type DB struct {
	*sql.DB
	logger *logger.Logger
}

func NewConnectPostgres(ctx context.Context, cfg config.DB, log *logger.Logger) (*DB, error) {
	// establish connection
	conn, err := sql.Open("pgx", cfg.DSN)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error occured during database connection")
		return nil, fmt.Errorf("error occured during database connection: %w", err)
	}

	// setup connections
	conn.SetMaxOpenConns(10)
	conn.SetMaxIdleConns(4)

	// ping database
	err = conn.PingContext(ctx)
	if err != nil {
		log.Err(err).Str("func", "NewConnectPostgres").Msg("error connecting database (ping)")
		_ = conn.Close()
		return nil, fmt.Errorf("error connecting database: %w", err)
	}
	log.Info().Str("func", "NewConnectPostgres").Msg("connected to database successfully")

	return &DB{DB: conn, logger: log}, nil
}

// Migrate applies the embedded schema migrations.
func (db *DB) Migrate() error {
	return migrations.Migrate(db.DB)
}

func postgresError(err error) string {
	var pgErr *pgconn.PgError
	// if postgres returns error
	if errors.As(err, &pgErr) {
		return pgErr.Code
	}

	return ""
}
