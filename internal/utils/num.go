package utils

import (
	"regexp"
	"strconv"
	"strings"
)

var rxKeepNums = regexp.MustCompile(`[^\d.\-]`)

// ParseFloat parses price-like values as exported by suppliers: "1,234.50",
// "£12.99", "1 234,50" with NBSP thousand separators, and so on. Returns
// false when no usable number remains.
func ParseFloat(s string) (float64, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, false
	}
	// drop regular and non-breaking spaces
	repl := strings.NewReplacer(" ", "", " ", "", " ", "", "\t", "")
	s = repl.Replace(s)
	// "1.234,50" / "1,234.50": whichever separator comes last is decimal
	if i, j := strings.LastIndexByte(s, ','), strings.LastIndexByte(s, '.'); i >= 0 {
		if i > j && strings.Count(s, ",") == 1 {
			s = strings.ReplaceAll(s, ".", "")
			s = strings.Replace(s, ",", ".", 1)
		} else {
			s = strings.ReplaceAll(s, ",", "")
		}
	}
	// strip currency symbols and other junk
	s = rxKeepNums.ReplaceAllString(s, "")
	if s == "" || s == "-" || s == "." {
		return 0, false
	}
	f, err := strconv.ParseFloat(s, 64)
	return f, err == nil
}
