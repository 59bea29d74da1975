// Package wire holds loose-typed JSON value handling shared by the provider
// adapters. Upstream payloads do not agree on a JSON type for numbers: the
// same rating field may arrive as 8, "8", "8,0", "" or null.
package wire

import (
	"encoding/json"
	"math"
	"strconv"
	"strings"
)

// Number coerces a JSON number, numeric string, empty string, or null into
// an optional float. Anything that does not parse as a finite number becomes
// nil; a bad value never fails the surrounding record.
type Number struct {
	v *float64
}

func FromFloat(f float64) Number { return Number{v: &f} }

// Value returns the coerced number, or nil when absent/unusable.
func (n Number) Value() *float64 { return n.v }

func (n *Number) UnmarshalJSON(b []byte) error {
	n.v = nil
	s := strings.TrimSpace(string(b))
	if s == "" || s == "null" {
		return nil
	}
	if s[0] == '"' {
		var raw string
		if err := json.Unmarshal(b, &raw); err != nil {
			return nil
		}
		raw = strings.TrimSpace(strings.ReplaceAll(raw, ",", "."))
		if raw == "" {
			return nil
		}
		if f, err := strconv.ParseFloat(raw, 64); err == nil && !math.IsInf(f, 0) && !math.IsNaN(f) {
			n.v = &f
		}
		return nil
	}
	var f float64
	if err := json.Unmarshal(b, &f); err != nil {
		return nil
	}
	if math.IsInf(f, 0) || math.IsNaN(f) {
		return nil
	}
	n.v = &f
	return nil
}

func (n Number) MarshalJSON() ([]byte, error) {
	if n.v == nil {
		return []byte("null"), nil
	}
	return json.Marshal(*n.v)
}
