// Package store is the operator-catalogue collaborator: it owns all
// Postgres connectivity, schema discovery and query construction, and hands
// the reconciliation core already-resolved CatalogueItem values and
// identifier sets. Failures never cross into the core as errors; they are
// reported as availability flags plus a reason string.
package store

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"catalogue-recon/internal/catalogue/model"
)

// Config is injected by the caller; the store never reads the environment.
type Config struct {
	URL             string
	MaxConnections  int32
	ConnectTimeout  time.Duration
	MaxConnLifetime time.Duration
}

// Store wraps a pgxpool connection pool over the operator catalogue.
type Store struct {
	pool *pgxpool.Pool
}

// Connect opens and pings a connection pool.
func Connect(ctx context.Context, cfg Config) (*Store, error) {
	poolCfg, err := pgxpool.ParseConfig(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("parse store url: %w", err)
	}
	if cfg.MaxConnections > 0 {
		poolCfg.MaxConns = cfg.MaxConnections
	}
	if cfg.MaxConnLifetime > 0 {
		poolCfg.MaxConnLifetime = cfg.MaxConnLifetime
	}
	if cfg.ConnectTimeout > 0 {
		poolCfg.ConnConfig.ConnectTimeout = cfg.ConnectTimeout
	}

	pool, err := pgxpool.NewWithConfig(ctx, poolCfg)
	if err != nil {
		return nil, fmt.Errorf("create store pool: %w", err)
	}
	if err := pool.Ping(ctx); err != nil {
		pool.Close()
		return nil, fmt.Errorf("ping store: %w", err)
	}
	return &Store{pool: pool}, nil
}

// Close releases the pool.
func (s *Store) Close() {
	s.pool.Close()
}

// FetchCatalogue loads the live operator catalogue resolved to
// CatalogueItem values: SKU rows joined to their style for the family name.
func (s *Store) FetchCatalogue(ctx context.Context, limit int) ([]model.CatalogueItem, error) {
	if limit <= 0 {
		limit = 50000
	}
	rows, err := s.pool.Query(ctx, `
		SELECT p.sku_code,
		       COALESCE(p.style_code, ''),
		       COALESCE(s.style_name, ''),
		       COALESCE(p.colour_name, ''),
		       COALESCE(p.single_price, 0)
		FROM products p
		LEFT JOIN styles s ON p.style_code = s.style_code
		WHERE p.sku_status = 'Live'
		LIMIT $1`, limit)
	if err != nil {
		return nil, fmt.Errorf("fetch catalogue: %w", err)
	}
	defer rows.Close()

	var items []model.CatalogueItem
	for rows.Next() {
		var it model.CatalogueItem
		var colour string
		if err := rows.Scan(&it.VariantCode, &it.PrimaryCode, &it.DisplayName, &colour, &it.Price); err != nil {
			return nil, fmt.Errorf("scan catalogue row: %w", err)
		}
		it.GroupName = it.DisplayName
		items = append(items, it)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read catalogue rows: %w", err)
	}
	return items, nil
}

// IdentifierSnapshot is the observed identifier set for load verification.
// Available=false means the store could not be queried; Err carries the
// reason for the report.
type IdentifierSnapshot struct {
	Values    map[string]struct{}
	Available bool
	Err       string
}

// Unavailable wraps a collaborator failure into a snapshot the core can
// classify as status "unknown".
func Unavailable(err error) IdentifierSnapshot {
	sn := IdentifierSnapshot{Values: map[string]struct{}{}}
	if err != nil {
		sn.Err = err.Error()
	}
	return sn
}

// FetchIdentifiers returns the set of live SKU-level identifiers, reading
// whichever column the schema discovery resolved as the variant code.
func (s *Store) FetchIdentifiers(ctx context.Context, col ResolvedColumn) IdentifierSnapshot {
	if col.Table == "" || col.Column == "" {
		return Unavailable(fmt.Errorf("no identifier column discovered"))
	}
	// identifiers only; table/column names come from information_schema,
	// not user input
	q := fmt.Sprintf(`SELECT %q FROM %q`, col.Column, col.Table)
	rows, err := s.pool.Query(ctx, q)
	if err != nil {
		return Unavailable(fmt.Errorf("fetch identifiers: %w", err))
	}
	defer rows.Close()

	values := make(map[string]struct{})
	for rows.Next() {
		var v *string
		if err := rows.Scan(&v); err != nil {
			return Unavailable(fmt.Errorf("scan identifier: %w", err))
		}
		if v != nil && *v != "" {
			values[*v] = struct{}{}
		}
	}
	if err := rows.Err(); err != nil {
		return Unavailable(fmt.Errorf("read identifiers: %w", err))
	}
	return IdentifierSnapshot{Values: values, Available: true}
}
