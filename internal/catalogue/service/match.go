package service

import (
	"sort"
	"strings"

	"catalogue-recon/internal/catalogue/model"
)

// Names shorter than this (after normalization) are excluded from the
// fuzzy pass: containment on very short strings is almost always noise.
const minFuzzyNameLen = 5

// DefaultSchemePairs is the exact-match plan for a supplier snapshot (A)
// against the operator catalogue (B). A supplier's global code frequently
// lands in the operator's SKU column, hence the cross-scheme pair.
var DefaultSchemePairs = []model.SchemePair{
	{SchemeA: model.SchemeGlobalCode, SchemeB: model.SchemeVariantCode, Method: model.MethodByGlobalCode},
	{SchemeA: model.SchemeVariantCode, SchemeB: model.SchemeVariantCode, Method: model.MethodByVariantCode},
	{SchemeA: model.SchemePrimaryCode, SchemeB: model.SchemePrimaryCode, Method: model.MethodByPrimaryCode},
}

// Match computes exact intersections for every requested scheme pair, then
// a fuzzy name pass, keyed by method name. Empty results are valid.
func Match(a, b *KeyIndex, pairs []model.SchemePair) map[string]model.MatchResult {
	out := make(map[string]model.MatchResult, len(pairs)+1)

	for _, p := range pairs {
		out[p.Method] = model.MatchResult{
			Method: p.Method,
			Values: intersect(a.Set(p.SchemeA), b.Set(p.SchemeB)),
		}
	}

	out[model.MethodByNameFuzzy] = model.MatchResult{
		Method: model.MethodByNameFuzzy,
		Pairs:  fuzzyNames(a, b),
	}
	return out
}

// intersect returns the sorted intersection of two canonical value sets.
// The empty string is never a legitimate key, but guard anyway.
func intersect(sa, sb map[string]struct{}) []string {
	if len(sa) == 0 || len(sb) == 0 {
		return nil
	}
	// iterate the smaller side
	if len(sb) < len(sa) {
		sa, sb = sb, sa
	}
	var out []string
	for v := range sa {
		if v == "" {
			continue
		}
		if _, ok := sb[v]; ok {
			out = append(out, v)
		}
	}
	sort.Strings(out)
	return out
}

// fuzzyNames tests every sufficiently long A-side normalized name against
// every B-side name; a pair matches on equality or containment. At most one
// pair is recorded per A-side name, the first in sorted B order (map
// iteration is not deterministic, so both sides are sorted). O(n*m) -
// callers bound name-set sizes for big catalogues.
func fuzzyNames(a, b *KeyIndex) []model.FuzzyPair {
	namesA := sortedKeys(a.Set(model.SchemeNormalizedName))
	namesB := sortedKeys(b.Set(model.SchemeNormalizedName))
	if len(namesA) == 0 || len(namesB) == 0 {
		return nil
	}

	var pairs []model.FuzzyPair
	for _, na := range namesA {
		if len(na) < minFuzzyNameLen {
			continue
		}
		for _, nb := range namesB {
			if na != nb && !strings.Contains(nb, na) && !strings.Contains(na, nb) {
				continue
			}
			itA, _ := a.Item(na)
			itB, _ := b.Item(nb)
			score := similarity(na, nb)
			pairs = append(pairs, model.FuzzyPair{
				NameA: itA.DisplayName,
				NameB: itB.DisplayName,
				CodeA: itA.PrimaryCode,
				CodeB: itB.PrimaryCode,
				Score: &score,
			})
			break // one partner per A-side name
		}
	}
	return pairs
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
