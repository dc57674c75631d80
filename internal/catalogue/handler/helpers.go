package handler

import (
	"regexp"
	"strconv"
	"strings"

	"catalogue-recon/internal/catalogue/model"
	"catalogue-recon/internal/utils"
)

// Mapping names the flat-file columns holding each CatalogueItem field.
// Every entry may list alternatives separated by "|"; resolution is
// tolerant of spacing, casing and punctuation differences in headers.
type Mapping struct {
	PrimaryKey  string `json:"primaryKey"`
	VariantKey  string `json:"variantKey"`
	GlobalKey   string `json:"globalKey"`
	NameKey     string `json:"nameKey"`
	CategoryKey string `json:"categoryKey"`
	GroupKey    string `json:"groupKey"`
	PriceKey    string `json:"priceKey"`
	HeaderRow   int    `json:"headerRow"`
}

// Default column spellings seen across supplier exports.
func defaultMapping() Mapping {
	return Mapping{
		PrimaryKey:  "ProductCode|Product Code|StyleCode|Style Code",
		VariantKey:  "ShortCode|Short Code|SkuCode|SKU",
		GlobalKey:   "EAN|Barcode|GTIN",
		NameKey:     "ProductName|Product Name|Description",
		CategoryKey: "Category",
		GroupKey:    "Company|Brand",
		PriceKey:    "Price|SinglePrice|Single Price",
		HeaderRow:   1,
	}
}

func mappingFromForm(get func(string) string) Mapping {
	m := defaultMapping()
	if v := get("primary_col"); v != "" {
		m.PrimaryKey = v
	}
	if v := get("variant_col"); v != "" {
		m.VariantKey = v
	}
	if v := get("global_col"); v != "" {
		m.GlobalKey = v
	}
	if v := get("name_col"); v != "" {
		m.NameKey = v
	}
	if v := get("category_col"); v != "" {
		m.CategoryKey = v
	}
	if v := get("group_col"); v != "" {
		m.GroupKey = v
	}
	if v := get("price_col"); v != "" {
		m.PriceKey = v
	}
	m.HeaderRow = atoi(get("header_row"), 1)
	return m
}

// toItems maps raw file records to CatalogueItem values. Records resolving
// to no identifier and no name are dropped; everything else is kept, the
// normalizers tolerate missing fields downstream.
func toItems(recs []map[string]string, m Mapping) []model.CatalogueItem {
	items := make([]model.CatalogueItem, 0, len(recs))
	for _, rec := range recs {
		it := model.CatalogueItem{
			PrimaryCode: strings.TrimSpace(rec[resolveKey(rec, m.PrimaryKey)]),
			VariantCode: strings.TrimSpace(rec[resolveKey(rec, m.VariantKey)]),
			GlobalCode:  strings.TrimSpace(rec[resolveKey(rec, m.GlobalKey)]),
			DisplayName: strings.TrimSpace(rec[resolveKey(rec, m.NameKey)]),
			Category:    strings.TrimSpace(rec[resolveKey(rec, m.CategoryKey)]),
			GroupName:   strings.TrimSpace(rec[resolveKey(rec, m.GroupKey)]),
		}
		if price, ok := utils.ParseFloat(rec[resolveKey(rec, m.PriceKey)]); ok {
			it.Price = price
		}
		if it.PrimaryCode == "" && it.VariantCode == "" && it.GlobalCode == "" && it.DisplayName == "" {
			continue
		}
		items = append(items, it)
	}
	return items
}

var reHeaderJunk = regexp.MustCompile(`[^\p{L}\p{N}]+`)

// normHeaderKey canonicalizes a column header: lower-case, NBSP variants
// to spaces, punctuation stripped, whitespace collapsed.
func normHeaderKey(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	s = strings.NewReplacer(" ", " ", " ", " ").Replace(s)
	s = reHeaderJunk.ReplaceAllString(s, " ")
	return strings.Join(strings.Fields(s), " ")
}

// resolveKey finds the actual record key for a wanted column name.
// Alternatives are separated by "|"; matching goes exact, then normalized,
// then containment with the longest alternative winning.
func resolveKey(rec map[string]string, want string) string {
	want = strings.TrimSpace(want)
	if want == "" {
		return ""
	}
	alts := strings.Split(want, "|")
	for i := range alts {
		alts[i] = strings.TrimSpace(alts[i])
	}

	for _, a := range alts {
		if _, ok := rec[a]; ok {
			return a
		}
	}

	nAlts := make([]string, len(alts))
	for i, a := range alts {
		nAlts[i] = normHeaderKey(a)
	}

	bestKey := ""
	bestScore := 0
	for k := range rec {
		nk := normHeaderKey(k)
		for _, n := range nAlts {
			if nk == n {
				return k
			}
		}
		score := 0
		for _, n := range nAlts {
			if n != "" && (strings.Contains(nk, n) || strings.Contains(n, nk)) {
				if len(n) > score {
					score = len(n)
				}
			}
		}
		if score > bestScore {
			bestScore, bestKey = score, k
		}
	}
	return bestKey
}

func atoi(s string, def int) int {
	if s == "" {
		return def
	}
	i, err := strconv.Atoi(s)
	if err != nil {
		return def
	}
	return i
}

func toBool(s string, def bool) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "1", "true", "yes", "y", "on":
		return true
	case "0", "false", "no", "n", "off":
		return false
	default:
		return def
	}
}
