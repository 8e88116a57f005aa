package helpers

import (
	"encoding/json"
	"strconv"
	"strings"
)

// OptionalNumber decodes a JSON number, a numeric string, or anything else.
// Malformed and null input leaves it unset rather than failing the bind, so
// the engine's documented per-field default applies downstream.
type OptionalNumber struct {
	Value float64
	Set   bool
}

func (n *OptionalNumber) UnmarshalJSON(data []byte) error {
	var f float64
	if err := json.Unmarshal(data, &f); err == nil {
		n.Value, n.Set = f, true
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		if parsed, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil {
			n.Value, n.Set = parsed, true
		}
	}
	// Junk coerces to unset, never an error
	return nil
}

func (n OptionalNumber) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the decoded value, or nil when unset
func (n OptionalNumber) Ptr() *float64 {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// OptionalInt is OptionalNumber for integer fields; fractional input is
// truncated the way a loose numeric cast would.
type OptionalInt struct {
	Value int
	Set   bool
}

func (n *OptionalInt) UnmarshalJSON(data []byte) error {
	var inner OptionalNumber
	if err := inner.UnmarshalJSON(data); err != nil {
		return err
	}
	if inner.Set {
		n.Value, n.Set = int(inner.Value), true
	}
	return nil
}

func (n OptionalInt) MarshalJSON() ([]byte, error) {
	if !n.Set {
		return []byte("null"), nil
	}
	return json.Marshal(n.Value)
}

// Ptr returns the decoded value, or nil when unset
func (n OptionalInt) Ptr() *int {
	if !n.Set {
		return nil
	}
	v := n.Value
	return &v
}

// CategoryList accepts either an explicit JSON array of labels or a single
// comma-delimited string; entries are trimmed and empty ones dropped.
type CategoryList []string

func (c *CategoryList) UnmarshalJSON(data []byte) error {
	var arr []string
	if err := json.Unmarshal(data, &arr); err == nil {
		*c = splitAndTrim(arr)
		return nil
	}
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		*c = splitAndTrim(strings.Split(s, ","))
	}
	return nil
}

func splitAndTrim(raw []string) []string {
	out := make([]string, 0, len(raw))
	for _, v := range raw {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
