// Package pgstore is the optional durable save-slot backend: a
// save_slots table (character_id, character_name, payload bytea,
// updated_at) behind pgx/v5, migrated with goose. Grounded on the
// teacher's own pgx+goose connection-pool/migration-runner idiom
// (formerly internal/db, removed once this module superseded it — see
// DESIGN.md). The core package has zero pgx imports; this package only
// moves already-serialized []byte payloads in and out.
package pgstore

import (
	"context"
	"database/sql"
	"embed"
	"fmt"
	"sync"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"

	"github.com/udisondev/la2go/internal/config"
)

//go:embed migrations/*.sql
var migrationsFS embed.FS

var gooseOnce sync.Once

// Store wraps a pgx connection pool with the save-slot operations.
type Store struct {
	pool *pgxpool.Pool
}

// Open connects to PostgreSQL and runs pending goose migrations.
func Open(ctx context.Context, cfg config.DatabaseConfig) (*Store, error) {
	dsn := cfg.DSN()

	if err := runMigrations(ctx, dsn); err != nil {
		return nil, err
	}

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		return nil, fmt.Errorf("pgstore: connect: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pgstore: ping: %w", err)
	}

	return &Store{pool: pool}, nil
}

func runMigrations(ctx context.Context, dsn string) error {
	sqlDB, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("pgstore: opening sql connection for migrations: %w", err)
	}
	defer sqlDB.Close()

	var dialectErr error
	gooseOnce.Do(func() {
		goose.SetBaseFS(migrationsFS)
		dialectErr = goose.SetDialect("postgres")
	})
	if dialectErr != nil {
		return fmt.Errorf("pgstore: setting goose dialect: %w", dialectErr)
	}
	if err := goose.UpContext(ctx, sqlDB, "migrations"); err != nil {
		return fmt.Errorf("pgstore: running migrations: %w", err)
	}
	return nil
}

// Close releases the connection pool.
func (s *Store) Close() { s.pool.Close() }

// SaveSlot is a single persisted character row.
type SaveSlot struct {
	CharacterID   string
	CharacterName string
	Payload       []byte
	UpdatedAt     time.Time
}

// Save upserts a save slot's payload.
func (s *Store) Save(ctx context.Context, characterID, characterName string, payload []byte) error {
	const q = `
		INSERT INTO save_slots (character_id, character_name, payload, updated_at)
		VALUES ($1, $2, $3, now())
		ON CONFLICT (character_id) DO UPDATE
		SET character_name = EXCLUDED.character_name,
		    payload = EXCLUDED.payload,
		    updated_at = now()`

	if _, err := s.pool.Exec(ctx, q, characterID, characterName, payload); err != nil {
		return fmt.Errorf("pgstore: save %s: %w", characterID, err)
	}
	return nil
}

// Load fetches a save slot's raw payload by character ID.
func (s *Store) Load(ctx context.Context, characterID string) (SaveSlot, error) {
	const q = `
		SELECT character_id, character_name, payload, updated_at
		FROM save_slots WHERE character_id = $1`

	var slot SaveSlot
	row := s.pool.QueryRow(ctx, q, characterID)
	if err := row.Scan(&slot.CharacterID, &slot.CharacterName, &slot.Payload, &slot.UpdatedAt); err != nil {
		return SaveSlot{}, fmt.Errorf("pgstore: load %s: %w", characterID, err)
	}
	return slot, nil
}

// ListSlots returns every save slot's metadata (without payload bodies)
// for a character-select screen.
func (s *Store) ListSlots(ctx context.Context) ([]SaveSlot, error) {
	const q = `SELECT character_id, character_name, updated_at FROM save_slots ORDER BY updated_at DESC`

	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return nil, fmt.Errorf("pgstore: list slots: %w", err)
	}
	defer rows.Close()

	var slots []SaveSlot
	for rows.Next() {
		var slot SaveSlot
		if err := rows.Scan(&slot.CharacterID, &slot.CharacterName, &slot.UpdatedAt); err != nil {
			return nil, fmt.Errorf("pgstore: scan slot row: %w", err)
		}
		slots = append(slots, slot)
	}
	return slots, rows.Err()
}
