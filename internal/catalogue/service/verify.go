package service

import (
	"sort"

	"catalogue-recon/internal/catalogue/model"
)

// VerifyLoad classifies an expected identifier set against the set observed
// in a target store. It never fails: when the observed set could not be
// obtained (collaborator failure) the status is "unknown" and the caller
// surfaces the underlying error separately. Both sides are compared on
// NormalizeCode canonical forms; source systems disagree on casing and
// padding, so raw-string comparison is off the table.
func VerifyLoad(expected, observed map[string]struct{}, observedAvailable bool) model.VerificationResult {
	exp := normalizeSet(expected)

	if !observedAvailable {
		return model.VerificationResult{
			ExpectedCount: len(exp),
			Missing:       []string{},
			Extra:         []string{},
			Status:        model.StatusUnknown,
		}
	}

	obs := normalizeSet(observed)

	var missing, extra []string
	inter := 0
	for v := range exp {
		if _, ok := obs[v]; ok {
			inter++
		} else {
			missing = append(missing, v)
		}
	}
	for v := range obs {
		if _, ok := exp[v]; !ok {
			extra = append(extra, v)
		}
	}
	sort.Strings(missing)
	sort.Strings(extra)
	if missing == nil {
		missing = []string{}
	}
	if extra == nil {
		extra = []string{}
	}

	status := model.StatusPartial
	switch {
	case len(missing) == 0 && len(obs) == len(exp):
		status = model.StatusComplete
	case inter == 0:
		status = model.StatusAbsent
	}

	return model.VerificationResult{
		ExpectedCount:     len(exp),
		ObservedCount:     len(obs),
		IntersectionCount: inter,
		Missing:           missing,
		Extra:             extra,
		Status:            status,
	}
}

// CompareSnapshots quantifies drift between two successive snapshots of the
// same supplier: identifiers kept, removed and introduced. Output sorted.
func CompareSnapshots(prev, curr map[string]struct{}) model.SnapshotDrift {
	o := normalizeSet(prev)
	n := normalizeSet(curr)

	d := model.SnapshotDrift{
		InBoth:  []string{},
		OnlyOld: []string{},
		OnlyNew: []string{},
	}
	for v := range o {
		if _, ok := n[v]; ok {
			d.InBoth = append(d.InBoth, v)
		} else {
			d.OnlyOld = append(d.OnlyOld, v)
		}
	}
	for v := range n {
		if _, ok := o[v]; !ok {
			d.OnlyNew = append(d.OnlyNew, v)
		}
	}
	sort.Strings(d.InBoth)
	sort.Strings(d.OnlyOld)
	sort.Strings(d.OnlyNew)
	return d
}

func normalizeSet(in map[string]struct{}) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for v := range in {
		if c := NormalizeCode(v); c != "" {
			out[c] = struct{}{}
		}
	}
	return out
}
