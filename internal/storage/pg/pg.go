// Package pg implements the storage contracts of the service layer on top
// of PostgreSQL using database/sql and lib/pq.
package pg

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "github.com/lib/pq"

	"github.com/syndx/forum-api/internal/config"
	"github.com/syndx/forum-api/internal/logger"
)

// Querier is satisfied by both *sql.DB and *sql.Tx, so query logic can run
// in and out of transactions without duplication.
type Querier interface {
	Exec(query string, args ...interface{}) (sql.Result, error)
	Query(query string, args ...interface{}) (*sql.Rows, error)
	QueryRow(query string, args ...interface{}) *sql.Row
}

type Storage struct {
	db    *sql.DB
	newId func(prefix string) string
}

// New connects to PostgreSQL using the service config and returns a ready
// Storage. The connection is verified with a ping before use.
func New(cfg *config.Config) (*Storage, error) {
	logger.Log.Info("connecting to db", "host", cfg.Private.Pg.Host, "dbname", cfg.Private.Pg.Dbname)
	db, err := Connect(cfg)
	if err != nil {
		return nil, err
	}
	logger.Log.Info("successfully connected to db")
	return NewFromDB(db), nil
}

// NewFromDB wraps an existing connection. Integration tests use this to
// point the storage at a throwaway container database.
func NewFromDB(db *sql.DB) *Storage {
	return &Storage{db: db, newId: generateId}
}

func Connect(cfg *config.Config) (*sql.DB, error) {
	connStr := fmt.Sprintf("host=%s port=%d user=%s password=%s dbname=%s sslmode=disable",
		cfg.Private.Pg.Host, cfg.Private.Pg.Port, cfg.Private.Pg.User, cfg.Private.Pg.Password, cfg.Private.Pg.Dbname)

	db, err := sql.Open("postgres", connStr)
	if err != nil {
		return nil, fmt.Errorf("failed to open database connection: %w", err)
	}

	db.SetMaxOpenConns(25)
	db.SetMaxIdleConns(10)
	db.SetConnMaxLifetime(5 * time.Minute)
	db.SetConnMaxIdleTime(1 * time.Minute)

	if err = db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	return db, nil
}

func (s *Storage) Cleanup() error {
	return s.db.Close()
}

// Ping backs the readiness probe.
func (s *Storage) Ping(ctx context.Context) error {
	return s.db.PingContext(ctx)
}

// generateId produces entity ids of the form "<prefix>-<uuid>", e.g.
// "thread-9b1deb4d-...". Ids fit the VARCHAR(50) columns of the schema.
func generateId(prefix string) string {
	return prefix + "-" + uuid.NewString()
}

// WithTx runs fn inside a transaction, committing on success and rolling
// back on error. The deferred Rollback is a no-op after Commit.
func WithTx(ctx context.Context, db *sql.DB, fn func(*sql.Tx) error) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	if err := fn(tx); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}
