package store

import (
	"context"
	"fmt"
	"strings"

	"catalogue-recon/internal/catalogue/model"
)

// Schema is the discovered shape of the target store: tables, their
// columns, and capability flags the assessor consumes.
type Schema struct {
	Tables  []string
	Columns map[string][]string // table -> lowercased column names
	Caps    model.SchemaCaps
}

// ResolvedColumn names the table/column pair discovered to hold a given
// identifier kind.
type ResolvedColumn struct {
	Table  string
	Column string
}

// Candidate column spellings per identifier kind. Source systems disagree
// on naming, so discovery matches against all of them.
var (
	variantCodeCandidates  = []string{"sku_code", "short_code", "shortcode", "variant_code"}
	primaryCodeCandidates  = []string{"style_code", "product_code", "productcode", "primary_code"}
	globalCodeCandidates   = []string{"ean", "barcode", "gtin"}
	supplierCodeCandidates = []string{"supplier_id", "supplier"}
)

// DiscoverSchema introspects information_schema for public base tables and
// their columns, and probes the capability flags.
func (s *Store) DiscoverSchema(ctx context.Context) (*Schema, error) {
	rows, err := s.pool.Query(ctx, `
		SELECT table_name, column_name
		FROM information_schema.columns
		WHERE table_schema = 'public'
		ORDER BY table_name, ordinal_position`)
	if err != nil {
		return nil, fmt.Errorf("discover schema: %w", err)
	}
	defer rows.Close()

	sc := &Schema{Columns: make(map[string][]string)}
	for rows.Next() {
		var table, column string
		if err := rows.Scan(&table, &column); err != nil {
			return nil, fmt.Errorf("scan schema row: %w", err)
		}
		if _, seen := sc.Columns[table]; !seen {
			sc.Tables = append(sc.Tables, table)
		}
		sc.Columns[table] = append(sc.Columns[table], strings.ToLower(column))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("read schema rows: %w", err)
	}

	sc.Caps = model.SchemaCaps{
		Inspected:         true,
		HasSupplierColumn: sc.hasSupplierColumn(),
	}
	return sc, nil
}

// hasSupplierColumn checks whether any product-bearing table carries a
// supplier reference; without one, provenance is lost after a merge.
func (sc *Schema) hasSupplierColumn() bool {
	for table, cols := range sc.Columns {
		t := strings.ToLower(table)
		if !strings.Contains(t, "product") && !strings.Contains(t, "style") && t != "brands" {
			continue
		}
		for _, c := range cols {
			for _, want := range supplierCodeCandidates {
				if c == want {
					return true
				}
			}
		}
	}
	return false
}

// ResolveIdentifierColumn finds the first table/column pair holding the
// requested identifier kind: "variant_code", "primary_code" or
// "global_code". Preference order follows the candidate lists.
func (sc *Schema) ResolveIdentifierColumn(kind string) (ResolvedColumn, bool) {
	var candidates []string
	switch kind {
	case model.SchemeVariantCode:
		candidates = variantCodeCandidates
	case model.SchemePrimaryCode:
		candidates = primaryCodeCandidates
	case model.SchemeGlobalCode:
		candidates = globalCodeCandidates
	default:
		return ResolvedColumn{}, false
	}

	for _, want := range candidates {
		for _, table := range sc.Tables { // Tables keeps discovery order
			for _, c := range sc.Columns[table] {
				if c == want {
					return ResolvedColumn{Table: table, Column: c}, true
				}
			}
		}
	}
	return ResolvedColumn{}, false
}
