package params

import "math"

// Fallback defaults for the optional query filters. A malformed filter value
// never rejects a request; it falls back to these, one field at a time.
const (
	DefaultLimit    = 50
	DefaultMinVotes = 1000
)

var (
	limitProfile    = Profile{MaxDigits: maxDigits, Min: 1, Max: math.MaxInt32 - 1}
	minVotesProfile = Profile{MaxDigits: maxDigits, Min: 0, Max: math.MaxInt32 - 1}
)

// Defaults carries the per-deployment fallback values. Zero fields resolve
// to the package constants.
type Defaults struct {
	Limit    int
	MinVotes int
}

// FilterSpec records the independent validation outcome of each optional
// query filter. It is built once per request and never mutated.
type FilterSpec struct {
	Limit    Value
	MinVotes Value
}

// NewFilterSpec validates the raw limit and votes query values.
func NewFilterSpec(rawLimit, rawVotes string) FilterSpec {
	return FilterSpec{
		Limit:    Parse(rawLimit, limitProfile),
		MinVotes: Parse(rawVotes, minVotesProfile),
	}
}

// Resolve maps the spec to a concrete (limit, minVotes) pair. Each field
// independently takes its validated value when present and the default when
// absent or malformed, then is clamped to a safe range.
func (f FilterSpec) Resolve(d Defaults) (limit, minVotes int) {
	limit = d.Limit
	if limit < 1 {
		limit = DefaultLimit
	}
	minVotes = d.MinVotes
	if minVotes <= 0 {
		minVotes = DefaultMinVotes
	}

	if f.Limit.State == Valid {
		limit = f.Limit.Int
	}
	if f.MinVotes.State == Valid {
		minVotes = f.MinVotes.Int
	}
	return ClampLimit(limit), ClampMinVotes(minVotes)
}

// ClampLimit forces limit into [1, MaxInt32); out-of-range values revert to
// the default rather than erroring.
func ClampLimit(limit int) int {
	if limit < 1 || limit >= math.MaxInt32 {
		return DefaultLimit
	}
	return limit
}

// ClampMinVotes forces minVotes into [0, MaxInt32).
func ClampMinVotes(minVotes int) int {
	if minVotes < 0 || minVotes >= math.MaxInt32 {
		return DefaultMinVotes
	}
	return minVotes
}
