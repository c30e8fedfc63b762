package sidecar

import (
	"fmt"
	"strings"
)

// Kind discriminates the variants a decoded metadata value can take.
type Kind int

const (
	KindScalar Kind = iota
	KindSequence
	KindMapping
)

// Value is one decoded metadata value: a scalar, an ordered sequence of
// values, or a nested mapping.
type Value struct {
	Kind     Kind
	Scalar   any
	Sequence []Value
	Mapping  Record
}

// Record is an ordered mapping decoded from one sidecar document. Slice order
// is the document's key order.
type Record []Entry

// Entry is a single key/value pair of a Record.
type Entry struct {
	Key   string
	Value Value
}

// IsZero reports whether the value is empty or zero-equivalent. Empty fields
// are never written to an image, so a blank sidecar entry cannot clobber
// existing metadata.
func (v Value) IsZero() bool {
	switch v.Kind {
	case KindSequence:
		return len(v.Sequence) == 0
	case KindMapping:
		return len(v.Mapping) == 0
	}
	switch s := v.Scalar.(type) {
	case nil:
		return true
	case string:
		return s == ""
	case bool:
		return !s
	case int:
		return s == 0
	case int64:
		return s == 0
	case float64:
		return s == 0
	}
	return false
}

// String renders the value the way it should appear in a tag assignment.
// Sequences are joined with ", "; nested mappings are flattened away before
// stringification and render as "" if reached directly.
func (v Value) String() string {
	switch v.Kind {
	case KindSequence:
		parts := make([]string, 0, len(v.Sequence))
		for _, item := range v.Sequence {
			parts = append(parts, item.String())
		}
		return strings.Join(parts, ", ")
	case KindMapping:
		return ""
	}
	if v.Scalar == nil {
		return ""
	}
	return fmt.Sprintf("%v", v.Scalar)
}
