package cache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	// Registers the "sqlite" driver.
	_ "modernc.org/sqlite"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const (
	sqliteSchema = `
		CREATE TABLE IF NOT EXISTS facts (
			url        TEXT PRIMARY KEY,
			data       TEXT NOT NULL,
			expires_at INTEGER NOT NULL
		)`

	sqliteGetFact = `SELECT data, expires_at FROM facts WHERE url = ?`

	sqliteSetFact = `
		INSERT INTO facts (url, data, expires_at) VALUES (?, ?, ?)
		ON CONFLICT(url) DO UPDATE SET data = excluded.data, expires_at = excluded.expires_at`

	sqliteDeleteExpired = `DELETE FROM facts WHERE expires_at <= ?`
)

// SQLite is a single-process fact cache in a local SQLite file. It backs
// the CLI and single-node deployments that run without Redis.
type SQLite struct {
	db  *sql.DB
	now func() time.Time
}

// OpenSQLite opens (or creates) the cache at path. ":memory:" keeps it in
// memory for the life of the process.
func OpenSQLite(path string) (*SQLite, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite cache: %w", err)
	}
	// One connection keeps ":memory:" databases shared and serializes writers.
	db.SetMaxOpenConns(1)

	if _, err := db.Exec(sqliteSchema); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating sqlite cache schema: %w", err)
	}
	return &SQLite{db: db, now: time.Now}, nil
}

// Close closes the database.
func (c *SQLite) Close() error {
	return c.db.Close()
}

// GetFact returns the cached fact for url unless it expired.
func (c *SQLite) GetFact(ctx context.Context, url string) (domain.ProductFact, bool, error) {
	var (
		data      string
		expiresAt int64
	)
	err := c.db.QueryRowContext(ctx, sqliteGetFact, url).Scan(&data, &expiresAt)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.ProductFact{}, false, nil
	}
	if err != nil {
		return domain.ProductFact{}, false, fmt.Errorf("reading cached fact: %w", err)
	}
	if c.now().UnixNano() >= expiresAt {
		return domain.ProductFact{}, false, nil
	}

	var f domain.ProductFact
	if err := json.Unmarshal([]byte(data), &f); err != nil {
		return domain.ProductFact{}, false, nil
	}
	return f, true, nil
}

// SetFact caches fact for url for ttl.
func (c *SQLite) SetFact(ctx context.Context, url string, fact domain.ProductFact, ttl time.Duration) error {
	bs, err := json.Marshal(fact)
	if err != nil {
		return fmt.Errorf("encoding fact: %w", err)
	}
	expires := c.now().Add(ttl).UnixNano()
	if _, err := c.db.ExecContext(ctx, sqliteSetFact, url, string(bs), expires); err != nil {
		return fmt.Errorf("caching fact: %w", err)
	}
	return nil
}

// Prune deletes expired entries and returns how many were removed.
func (c *SQLite) Prune(ctx context.Context) (int64, error) {
	res, err := c.db.ExecContext(ctx, sqliteDeleteExpired, c.now().UnixNano())
	if err != nil {
		return 0, fmt.Errorf("pruning sqlite cache: %w", err)
	}
	return res.RowsAffected()
}
