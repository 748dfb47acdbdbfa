// Package params classifies raw request parameters and resolves optional
// query filters to concrete, clamped query bounds. It is pure: nothing in
// this package touches the store.
package params

import (
	"math"
	"strconv"
)

// State classifies a raw parameter string.
type State int

const (
	Absent State = iota
	Valid
	Invalid
)

// Value is the outcome of validating a single raw parameter. Int is only
// meaningful when State is Valid.
type Value struct {
	State State
	Int   int
}

// Profile bounds a numeric parameter. MaxDigits rejects digit strings long
// enough to overflow int32 before any conversion is attempted.
type Profile struct {
	MaxDigits int
	Min       int
	Max       int
}

const maxDigits = 10

// IDProfile accepts any positive 32-bit entity id.
var IDProfile = Profile{MaxDigits: maxDigits, Min: 1, Max: math.MaxInt32 - 1}

// YearProfile accepts years from 1 up to the configured ceiling.
func YearProfile(maxYear int) Profile {
	return Profile{MaxDigits: maxDigits, Min: 1, Max: maxYear}
}

// Parse classifies raw against p. An empty string is Absent; anything that
// is not an unsigned digit string within the profile's length and numeric
// bounds is Invalid.
func Parse(raw string, p Profile) Value {
	if raw == "" {
		return Value{State: Absent}
	}
	if !digitsOnly(raw) || len(raw) > p.MaxDigits {
		return Value{State: Invalid}
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < p.Min || n > p.Max {
		return Value{State: Invalid}
	}
	return Value{State: Valid, Int: n}
}

func digitsOnly(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
