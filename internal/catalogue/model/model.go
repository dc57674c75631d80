package model

// Key scheme names used by the index builder and matcher.
const (
	SchemeVariantCode    = "variant_code"
	SchemePrimaryCode    = "primary_code"
	SchemeGlobalCode     = "global_code"
	SchemeNormalizedName = "normalized_name"
)

// Match method names, in report order.
const (
	MethodByGlobalCode  = "by_global_code"
	MethodByVariantCode = "by_variant_code"
	MethodByPrimaryCode = "by_primary_code"
	MethodByNameFuzzy   = "by_name_fuzzy"
)

// CatalogueItem is a single item record from either catalogue.
// Every field except identity may be empty; VariantCode is unique within a
// snapshot when present, PrimaryCode groups multiple variants.
type CatalogueItem struct {
	PrimaryCode string  `json:"primaryCode"`          // style/family level
	VariantCode string  `json:"variantCode"`          // SKU level
	GlobalCode  string  `json:"globalCode,omitempty"` // EAN-like, often absent
	DisplayName string  `json:"displayName"`
	Category    string  `json:"category,omitempty"`
	GroupName   string  `json:"groupName,omitempty"` // brand / style family
	Price       float64 `json:"price,omitempty"`
}

// SchemePair names one exact-match comparison: scheme in A vs scheme in B,
// reported under Method.
type SchemePair struct {
	SchemeA string
	SchemeB string
	Method  string
}

// FuzzyPair is one advisory name match with provenance from both sides.
type FuzzyPair struct {
	NameA string   `json:"nameA"`
	NameB string   `json:"nameB"`
	CodeA string   `json:"codeA"`
	CodeB string   `json:"codeB"`
	Score *float64 `json:"score,omitempty"` // Damerau-Levenshtein similarity, advisory
}

// MatchResult holds the outcome for one match method: sorted exact values,
// or structured pairs for the fuzzy pass.
type MatchResult struct {
	Method string      `json:"method"`
	Values []string    `json:"values,omitempty"`
	Pairs  []FuzzyPair `json:"pairs,omitempty"`
}

// Count returns the number of matches regardless of method kind.
func (m MatchResult) Count() int {
	if len(m.Pairs) > 0 {
		return len(m.Pairs)
	}
	return len(m.Values)
}

// Verification status values.
const (
	StatusComplete = "complete"
	StatusPartial  = "partial"
	StatusAbsent   = "absent"
	StatusUnknown  = "unknown"
)

// VerificationResult classifies an expected-vs-observed identifier
// comparison. Missing/Extra are sorted for stable output.
type VerificationResult struct {
	ExpectedCount     int      `json:"expectedCount"`
	ObservedCount     int      `json:"observedCount"`
	IntersectionCount int      `json:"intersectionCount"`
	Missing           []string `json:"missing"`
	Extra             []string `json:"extra"`
	Status            string   `json:"status"`
	Reason            string   `json:"reason,omitempty"` // collaborator failure detail
}

// SnapshotDrift quantifies the difference between two successive snapshots
// of the same supplier catalogue.
type SnapshotDrift struct {
	InBoth  []string `json:"inBoth"`
	OnlyOld []string `json:"onlyOld"`
	OnlyNew []string `json:"onlyNew"`
}

type Severity string

const (
	SevCritical Severity = "CRITICAL"
	SevHigh     Severity = "HIGH"
	SevMedium   Severity = "MEDIUM"
	SevLow      Severity = "LOW"
	SevInfo     Severity = "INFO"
)

// Finding is one assessor result. Issue and Recommendation travel together
// so renderers cannot break the pairing.
type Finding struct {
	Severity       Severity `json:"severity"`
	Issue          string   `json:"issue"`
	Recommendation string   `json:"recommendation"`
}

// CatalogueStats describes the shape of one catalogue snapshot.
type CatalogueStats struct {
	TotalItems    int            `json:"totalItems"`
	UniquePrimary int            `json:"uniquePrimary"`
	UniqueVariant int            `json:"uniqueVariant"`
	UniqueGlobal  int            `json:"uniqueGlobal"`
	Categories    map[string]int `json:"categories"`
	Groups        map[string]int `json:"groups"`
}

// SchemaCaps is the capability result of target-schema inspection, supplied
// by the store collaborator. Inspected=false means the schema could not be
// examined and HasSupplierColumn carries no information.
type SchemaCaps struct {
	Inspected         bool `json:"inspected"`
	HasSupplierColumn bool `json:"hasSupplierColumn"`
}

// AnalysisReport is the full response of one reconciliation run. Sections
// degrade independently: a collaborator failure leaves its Reason set and
// the rest of the report intact.
type AnalysisReport struct {
	SupplierStats CatalogueStats         `json:"supplierStats"`
	OperatorStats *CatalogueStats        `json:"operatorStats,omitempty"`
	Matches       map[string]MatchResult `json:"matches,omitempty"`
	Verification  VerificationResult     `json:"verification"`
	Findings      []Finding              `json:"findings"`
	LiveSkipped   bool                   `json:"liveSkipped,omitempty"`
	LiveError     string                 `json:"liveError,omitempty"`
}
