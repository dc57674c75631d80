package service

import (
	"catalogue-recon/internal/catalogue/model"
)

// KeyIndex projects one catalogue snapshot into named sets of canonical
// identifier values, plus first-seen item provenance for normalized names.
// Built once per snapshot, read-only afterwards.
type KeyIndex struct {
	sets  map[string]map[string]struct{}
	names map[string]model.CatalogueItem // normalized name -> first item seen
}

// BuildIndex derives the requested key schemes for every item. Empty keys
// are skipped, so malformed items simply contribute nothing.
func BuildIndex(items []model.CatalogueItem, schemes ...string) *KeyIndex {
	idx := &KeyIndex{
		sets:  make(map[string]map[string]struct{}, len(schemes)),
		names: make(map[string]model.CatalogueItem),
	}
	for _, sc := range schemes {
		idx.sets[sc] = make(map[string]struct{})
	}

	for _, it := range items {
		for _, sc := range schemes {
			key := deriveKey(it, sc)
			if key == "" {
				continue
			}
			idx.sets[sc][key] = struct{}{}
			if sc == model.SchemeNormalizedName {
				// first-seen wins for fuzzy provenance; membership above
				// is unaffected by duplicates
				if _, seen := idx.names[key]; !seen {
					idx.names[key] = it
				}
			}
		}
	}
	return idx
}

func deriveKey(it model.CatalogueItem, scheme string) string {
	switch scheme {
	case model.SchemeVariantCode:
		return NormalizeCode(it.VariantCode)
	case model.SchemePrimaryCode:
		return NormalizeCode(it.PrimaryCode)
	case model.SchemeGlobalCode:
		return NormalizeNumeric(it.GlobalCode)
	case model.SchemeNormalizedName:
		return NormalizeName(it.DisplayName)
	default:
		return ""
	}
}

// Set returns the canonical value set for a scheme; nil when the scheme was
// not requested at build time.
func (idx *KeyIndex) Set(scheme string) map[string]struct{} {
	return idx.sets[scheme]
}

// Item returns the first-seen item recorded for a normalized name.
func (idx *KeyIndex) Item(normName string) (model.CatalogueItem, bool) {
	it, ok := idx.names[normName]
	return it, ok
}

// Len reports the size of one key set.
func (idx *KeyIndex) Len(scheme string) int {
	return len(idx.sets[scheme])
}
