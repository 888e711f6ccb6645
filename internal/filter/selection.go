package filter

import (
	"sort"
	"strings"
)

// Selection maps a facet key to its selected values, in selection order.
// A facet with no entry is at its default.
type Selection map[string][]string

// Values returns the values selected for key.
func (s Selection) Values(key string) []string {
	return s[key]
}

// Value returns the single value selected for key, or "" when unset.
func (s Selection) Value(key string) string {
	if v := s[key]; len(v) > 0 {
		return v[0]
	}
	return ""
}

// Has reports whether v is selected for key.
func (s Selection) Has(key, v string) bool {
	for _, x := range s[key] {
		if x == v {
			return true
		}
	}
	return false
}

// Clone returns a deep copy of s.
func (s Selection) Clone() Selection {
	out := make(Selection, len(s))
	for k, v := range s {
		if len(v) == 0 {
			continue
		}
		out[k] = append([]string(nil), v...)
	}
	return out
}

// SameSet reports whether a and b hold the same values regardless of order.
func SameSet(a, b []string) bool {
	if len(a) != len(b) {
		return false
	}
	x := append([]string(nil), a...)
	y := append([]string(nil), b...)
	sort.Strings(x)
	sort.Strings(y)
	for i := range x {
		if x[i] != y[i] {
			return false
		}
	}
	return true
}

// ContainsFold reports whether substr occurs in s, ignoring case.
func ContainsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// AnyOf reports whether have contains at least one of want.
func AnyOf(have, want []string) bool {
	for _, w := range want {
		for _, h := range have {
			if h == w {
				return true
			}
		}
	}
	return false
}

// OneOf returns a validity predicate accepting exactly the given values.
func OneOf(values ...string) func(string) bool {
	set := make(map[string]struct{}, len(values))
	for _, v := range values {
		set[v] = struct{}{}
	}
	return func(v string) bool {
		_, ok := set[v]
		return ok
	}
}
