package types

// Record shapes produced by the structural parser. Field names mirror the key
// text stored in the container so decoded JSON round-trips against the
// upstream tooling's output.

// ScoreBand is one row of the expected-score triplet table: a band name and
// its two multipliers.
type ScoreBand struct {
	Name               string `json:"name"`
	NegativeMultiplier int64  `json:"negative_multiplier"`
	PositiveMultiplier int64  `json:"positive_multiplier"`
}

// Coefficient is a single named value inside a coefficient block.
type Coefficient struct {
	Name  string `json:"name"`
	Value int64  `json:"value"`
}

// CoefficientBlock groups the fixed run of coefficients for one role profile.
type CoefficientBlock struct {
	Coefficients []Coefficient `json:"coefficients"`
}

// RoleLookup maps a block index to a role bitmask.
type RoleLookup struct {
	Index int64 `json:"index"`
	Role  int64 `json:"role"`
}

// Version is the fixed 4-field trailer record. Its keys must appear in
// exactly this order in the container.
type Version struct {
	Major   int64 `json:"version_major"`
	Minor   int64 `json:"version_minor"`
	Release int64 `json:"version_release"`
	Year    int64 `json:"version_year"`
}

// Season is the full record tree for one season object inside a ratings
// container.
type Season struct {
	ExpectedScoreData []ScoreBand        `json:"expected_score_data"`
	RoleData          []CoefficientBlock `json:"role_data"`
	RoleLookupData    []RoleLookup       `json:"role_lookup_data"`
	StartValue        int64              `json:"start_value"`
	Version           Version            `json:"version"`
}

// WeightPack is one version-delimited group of prefix-scanned weights.
type WeightPack struct {
	Version Version          `json:"version"`
	Groups  map[string]Group `json:"groups"`
}

// Group is a named set of integer weights within a pack.
type Group map[string]int64
