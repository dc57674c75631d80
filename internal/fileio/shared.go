package fileio

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// ReadAnyMaps picks a parser by file extension and returns rows as a slice
// of map[header]value. headerRow is 1-based (ignored for JSON input, which
// carries its own keys).
func ReadAnyMaps(r io.Reader, filename string, headerRow int) ([]map[string]string, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".xlsx":
		return readXLSX(r, headerRow)
	case ".xls":
		return readXLS(r, headerRow)
	case ".csv":
		return readCSV(r, headerRow)
	case ".json":
		return readJSON(r)
	default:
		return nil, fmt.Errorf("unsupported file: %s", filename)
	}
}

// pickHeader takes the header row and substitutes "Column N" for blanks.
// A sheet with no rows yields no header.
func pickHeader(rows [][]string, headerRow int) []string {
	if len(rows) == 0 {
		return nil
	}
	idx := headerRow - 1
	if idx < 0 {
		idx = 0
	}
	if idx >= len(rows) {
		idx = 0
	}
	h := rows[idx]
	out := make([]string, len(h))
	for i, v := range h {
		v = strings.TrimSpace(v)
		if v == "" {
			v = fmt.Sprintf("Column %d", i+1)
		}
		out[i] = v
	}
	return out
}

// rowsToMaps converts an array-of-arrays into records keyed by header,
// skipping fully empty rows.
func rowsToMaps(rows [][]string, headers []string, headerRow int) []map[string]string {
	start := headerRow // first row after the header
	var out []map[string]string
	for r := start; r < len(rows); r++ {
		rec := rows[r]
		m := map[string]string{}
		for c := 0; c < len(headers); c++ {
			var v string
			if c < len(rec) {
				v = rec[c]
			}
			m[headers[c]] = v
		}
		empty := true
		for _, v := range m {
			if strings.TrimSpace(v) != "" {
				empty = false
				break
			}
		}
		if !empty {
			out = append(out, m)
		}
	}
	return out
}

// normalizeCell trims a raw cell value, mapping non-breaking space
// variants to plain spaces first.
func normalizeCell(s string) string {
	s = strings.NewReplacer(" ", " ", " ", " ", " ", " ").Replace(s)
	return strings.TrimSpace(s)
}
