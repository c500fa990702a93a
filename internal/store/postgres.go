package store

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"

	domain "github.com/shrutirout/foxdeal/pkg/types"
)

const defaultPoolSize = 10

// PostgresStore implements Store using pgxpool (connection-pooled PostgreSQL).
type PostgresStore struct {
	pool *pgxpool.Pool
}

// NewPostgresStore creates a new PostgresStore with connection pooling.
func NewPostgresStore(ctx context.Context, connString string) (*PostgresStore, error) {
	cfg, err := pgxpool.ParseConfig(connString)
	if err != nil {
		return nil, fmt.Errorf("parsing connection string: %w", err)
	}

	if !strings.Contains(connString, "pool_max_conns") {
		cfg.MaxConns = defaultPoolSize
	}

	pool, err := pgxpool.NewWithConfig(ctx, cfg)
	if err != nil {
		return nil, fmt.Errorf("creating connection pool: %w", err)
	}

	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("pinging database: %w", err)
	}

	return &PostgresStore{pool: pool}, nil
}

// Close gracefully shuts down the connection pool.
func (s *PostgresStore) Close() {
	s.pool.Close()
}

// Ping verifies the database connection is alive.
func (s *PostgresStore) Ping(ctx context.Context) error {
	return s.pool.Ping(ctx)
}

// Migrate applies pending SQL schema migrations.
func (s *PostgresStore) Migrate(ctx context.Context) error {
	return RunMigrations(ctx, s.pool)
}

// RecordObservation upserts p by (owner_id, url) and fills in its ID and
// timestamps. A non-nil pt is appended for p in the same transaction, so
// a failed append leaves the stored product untouched.
func (s *PostgresStore) RecordObservation(
	ctx context.Context,
	p *domain.TrackedProduct,
	pt *domain.PriceHistoryPoint,
) error {
	tx, err := s.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("beginning observation: %w", err)
	}
	defer tx.Rollback(ctx) //nolint:errcheck // no-op once committed

	if err := upsertTrackedProduct(ctx, tx, p); err != nil {
		return err
	}
	if pt != nil {
		pt.TrackedProductID = p.ID
		if err := appendPriceHistory(ctx, tx, pt); err != nil {
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return fmt.Errorf("committing observation: %w", err)
	}
	return nil
}

// GetTrackedProduct returns the product with id owned by ownerID.
func (s *PostgresStore) GetTrackedProduct(ctx context.Context, id, ownerID string) (*domain.TrackedProduct, error) {
	p := &domain.TrackedProduct{}
	err := scanProduct(s.pool.QueryRow(ctx, queryGetTrackedProduct, id, ownerID), p)
	if errors.Is(err, pgx.ErrNoRows) || isMalformedID(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting tracked product: %w", err)
	}
	return p, nil
}

// GetTrackedProductByURL returns the owner's product tracked at url.
func (s *PostgresStore) GetTrackedProductByURL(ctx context.Context, ownerID, url string) (*domain.TrackedProduct, error) {
	p := &domain.TrackedProduct{}
	err := scanProduct(s.pool.QueryRow(ctx, queryGetTrackedProductByURL, ownerID, url), p)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("getting tracked product by url: %w", err)
	}
	return p, nil
}

// ListAllTrackedProducts returns every product, least recently refreshed first.
func (s *PostgresStore) ListAllTrackedProducts(ctx context.Context) ([]domain.TrackedProduct, error) {
	rows, err := s.pool.Query(ctx, queryListAllTrackedProducts)
	if err != nil {
		return nil, fmt.Errorf("listing all tracked products: %w", err)
	}
	return collectProducts(rows)
}

// QueryTrackedProducts runs a filtered query, returning one page and the
// total number of matches.
func (s *PostgresStore) QueryTrackedProducts(
	ctx context.Context,
	q *ProductQuery,
) ([]domain.TrackedProduct, int, error) {
	dataSQL, countSQL, args := q.ToSQL()

	var total int
	if err := s.pool.QueryRow(ctx, countSQL, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("counting tracked products: %w", err)
	}

	rows, err := s.pool.Query(ctx, dataSQL, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("querying tracked products: %w", err)
	}
	products, err := collectProducts(rows)
	if err != nil {
		return nil, 0, err
	}
	return products, total, nil
}

// DeleteTrackedProduct removes a product and, by cascade, its history.
func (s *PostgresStore) DeleteTrackedProduct(ctx context.Context, id, ownerID string) error {
	tag, err := s.pool.Exec(ctx, queryDeleteTrackedProduct, id, ownerID)
	if isMalformedID(err) {
		return ErrNotFound
	}
	if err != nil {
		return fmt.Errorf("deleting tracked product: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return ErrNotFound
	}
	return nil
}

// ListPriceHistory returns a product's history in ascending time order.
func (s *PostgresStore) ListPriceHistory(ctx context.Context, productID string) ([]domain.PriceHistoryPoint, error) {
	rows, err := s.pool.Query(ctx, queryListPriceHistory, productID)
	if err != nil {
		return nil, fmt.Errorf("listing price history: %w", err)
	}
	defer rows.Close()

	var points []domain.PriceHistoryPoint
	for rows.Next() {
		var pt domain.PriceHistoryPoint
		if err := rows.Scan(&pt.ID, &pt.TrackedProductID, &pt.Price, &pt.Currency, &pt.ObservedAt); err != nil {
			return nil, fmt.Errorf("scanning price history: %w", err)
		}
		points = append(points, pt)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating price history: %w", err)
	}
	return points, nil
}

// invalidTextRepresentation is the SQLSTATE Postgres returns for an id
// that is not a UUID.
const invalidTextRepresentation = "22P02"

func isMalformedID(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == invalidTextRepresentation
}

type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func upsertTrackedProduct(ctx context.Context, q rowQuerier, p *domain.TrackedProduct) error {
	args := pgx.NamedArgs{
		"owner_id":        p.OwnerID,
		"url":             p.URL,
		"name":            p.Name,
		"current_price":   p.CurrentPrice,
		"original_price":  decimal.NullDecimal{Decimal: derefDecimal(p.OriginalPrice), Valid: p.OriginalPrice != nil},
		"currency":        p.Currency,
		"image_url":       p.ImageURL,
		"seller_name":     p.SellerName,
		"rating":          p.Rating,
		"review_count":    p.ReviewCount,
		"platform_domain": p.PlatformDomain,
		"deal_score":      p.DealScore,
	}

	if err := q.QueryRow(ctx, queryUpsertTrackedProduct, args).Scan(
		&p.ID, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return fmt.Errorf("upserting tracked product: %w", err)
	}
	return nil
}

// appendPriceHistory inserts a history point. A zero ObservedAt is set by
// the database.
func appendPriceHistory(ctx context.Context, q rowQuerier, pt *domain.PriceHistoryPoint) error {
	var observedAt *time.Time
	if !pt.ObservedAt.IsZero() {
		observedAt = &pt.ObservedAt
	}
	if err := q.QueryRow(ctx, queryAppendPriceHistory,
		pt.TrackedProductID, pt.Price, pt.Currency, observedAt,
	).Scan(&pt.ID, &pt.ObservedAt); err != nil {
		return fmt.Errorf("appending price history: %w", err)
	}
	return nil
}

type scannable interface {
	Scan(dest ...any) error
}

func scanProduct(row scannable, p *domain.TrackedProduct) error {
	var original decimal.NullDecimal
	if err := row.Scan(
		&p.ID, &p.OwnerID, &p.URL, &p.Name, &p.CurrentPrice, &original,
		&p.Currency, &p.ImageURL, &p.SellerName, &p.Rating, &p.ReviewCount, &p.PlatformDomain,
		&p.DealScore, &p.CreatedAt, &p.UpdatedAt,
	); err != nil {
		return err
	}
	if original.Valid {
		d := original.Decimal
		p.OriginalPrice = &d
	}
	return nil
}

func collectProducts(rows pgx.Rows) ([]domain.TrackedProduct, error) {
	defer rows.Close()

	var products []domain.TrackedProduct
	for rows.Next() {
		var p domain.TrackedProduct
		if err := scanProduct(rows, &p); err != nil {
			return nil, fmt.Errorf("scanning tracked product: %w", err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating tracked products: %w", err)
	}
	return products, nil
}

func derefDecimal(d *decimal.Decimal) decimal.Decimal {
	if d == nil {
		return decimal.Zero
	}
	return *d
}
