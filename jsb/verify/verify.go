// Package verify checks decoded field copies for consistency. Containers
// store some sections more than once; after a patch every copy of a field
// should agree, and a patched file should carry the values it was patched
// with.
package verify

import (
	"fmt"
	"sort"

	"github.com/jsbtools/jsbkit/pkg/types"
)

// FieldValue is one copy's reading of a field. OK is false when the copy
// does not contain the field at all.
type FieldValue struct {
	Value int64
	OK    bool
}

// Diff is one field whose copies did not agree, with every copy's value.
type Diff struct {
	Field  string
	Copies []FieldValue
}

func (d Diff) String() string {
	s := d.Field + ":"
	for i, c := range d.Copies {
		if c.OK {
			s += fmt.Sprintf(" copy%d=%d", i, c.Value)
		} else {
			s += fmt.Sprintf(" copy%d=absent", i)
		}
	}
	return s
}

// CompareCopies reports every field whose occurrences disagree across
// copies, in field order. Fields in ignore are skipped; a field missing
// from one copy but present in another counts as a disagreement. An empty
// result means the copies are consistent.
func CompareCopies(copies []map[string]int64, ignore map[string]struct{}) []Diff {
	var diffs []Diff
	for _, field := range fieldSet(copies) {
		if _, skip := ignore[field]; skip {
			continue
		}
		vals := readField(copies, field)
		if !agree(vals) {
			diffs = append(diffs, Diff{Field: field, Copies: vals})
		}
	}
	return diffs
}

// CheckExpected compares every copy of every field in want against the
// desired value. A field passes when at least one copy matches; copies
// that disagree among themselves while one matches produce a warning. A
// field no copy matches is a failure.
func CheckExpected(copies []map[string]int64, want map[string]int64) (warns []types.Warning, fails []Diff) {
	fields := make([]string, 0, len(want))
	for f := range want {
		fields = append(fields, f)
	}
	sort.Strings(fields)

	for _, field := range fields {
		vals := readField(copies, field)
		matched := false
		for _, v := range vals {
			if v.OK && v.Value == want[field] {
				matched = true
				break
			}
		}
		switch {
		case !matched:
			fails = append(fails, Diff{Field: field, Copies: vals})
		case !agree(vals):
			warns = append(warns, types.Warning{
				Kind:   types.WarnCopyDivergence,
				Field:  field,
				Detail: Diff{Field: field, Copies: vals}.String(),
			})
		}
	}
	return warns, fails
}

func fieldSet(copies []map[string]int64) []string {
	seen := map[string]struct{}{}
	for _, c := range copies {
		for f := range c {
			seen[f] = struct{}{}
		}
	}
	fields := make([]string, 0, len(seen))
	for f := range seen {
		fields = append(fields, f)
	}
	sort.Strings(fields)
	return fields
}

func readField(copies []map[string]int64, field string) []FieldValue {
	vals := make([]FieldValue, len(copies))
	for i, c := range copies {
		v, ok := c[field]
		vals[i] = FieldValue{Value: v, OK: ok}
	}
	return vals
}

func agree(vals []FieldValue) bool {
	for i := 1; i < len(vals); i++ {
		if vals[i] != vals[0] {
			return false
		}
	}
	return true
}
