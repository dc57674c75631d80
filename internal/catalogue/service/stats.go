package service

import (
	"catalogue-recon/internal/catalogue/model"
)

// CollectStats summarizes the shape of one catalogue snapshot: totals,
// unique identifier counts per scheme, and item counts per category and
// per group/brand. Category keys are the raw values; mapping them to
// internal categories is the assessor's concern.
func CollectStats(items []model.CatalogueItem) model.CatalogueStats {
	st := model.CatalogueStats{
		TotalItems: len(items),
		Categories: make(map[string]int),
		Groups:     make(map[string]int),
	}

	primary := make(map[string]struct{})
	variant := make(map[string]struct{})
	global := make(map[string]struct{})

	for _, it := range items {
		if k := NormalizeCode(it.PrimaryCode); k != "" {
			primary[k] = struct{}{}
		}
		if k := NormalizeCode(it.VariantCode); k != "" {
			variant[k] = struct{}{}
		}
		if k := NormalizeNumeric(it.GlobalCode); k != "" {
			global[k] = struct{}{}
		}
		if it.Category != "" {
			st.Categories[it.Category]++
		}
		if it.GroupName != "" {
			st.Groups[it.GroupName]++
		}
	}

	st.UniquePrimary = len(primary)
	st.UniqueVariant = len(variant)
	st.UniqueGlobal = len(global)
	return st
}
