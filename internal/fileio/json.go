package fileio

import (
	"encoding/json"
	"fmt"
	"io"
	"strconv"
)

// readJSON reads a flat export shaped as a JSON array of objects, the way
// supplier feeds are commonly delivered. Scalar values are stringified so
// the rest of the pipeline sees the same map[header]value records as the
// tabular readers produce; nested values are dropped.
func readJSON(r io.Reader) ([]map[string]string, error) {
	var raw []map[string]any
	dec := json.NewDecoder(r)
	if err := dec.Decode(&raw); err != nil {
		return nil, fmt.Errorf("json export: %w", err)
	}

	out := make([]map[string]string, 0, len(raw))
	for _, rec := range raw {
		m := make(map[string]string, len(rec))
		for k, v := range rec {
			if s, ok := stringifyScalar(v); ok {
				m[k] = s
			}
		}
		if len(m) > 0 {
			out = append(out, m)
		}
	}
	return out, nil
}

func stringifyScalar(v any) (string, bool) {
	switch t := v.(type) {
	case nil:
		return "", true
	case string:
		return t, true
	case bool:
		return strconv.FormatBool(t), true
	case float64:
		// JSON numbers decode as float64; EANs must not come out in
		// scientific notation
		if t == float64(int64(t)) {
			return strconv.FormatInt(int64(t), 10), true
		}
		return strconv.FormatFloat(t, 'f', -1, 64), true
	default:
		return "", false
	}
}
