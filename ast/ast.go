// Package ast defines the value tree produced by converting a YAYAML
// document.
//
// A converted document is always a *Mapping. Every value in the tree is one
// of four variants, distinguished by Kind:
//
//	*Number   numeric scalar
//	*String   string scalar
//	*Mapping  string-keyed mapping, insertion ordered
//	*Sequence ordered list created when a property name repeats
package ast

import (
	"bytes"
	"iter"
	"math"
	"slices"
	"strconv"
	"strings"
)

// Kind identifies the variant of a Value.
type Kind int

const (
	NumberKind Kind = iota + 1
	StringKind
	MappingKind
	SequenceKind
)

func (k Kind) String() string {
	switch k {
	case NumberKind:
		return "number"
	case StringKind:
		return "string"
	case MappingKind:
		return "mapping"
	case SequenceKind:
		return "sequence"
	}
	return "Kind(" + strconv.Itoa(int(k)) + ")"
}

// Value is a node of the converted tree. The set of implementations is
// closed: *Number, *String, *Mapping and *Sequence.
type Value interface {
	// Kind returns the variant of the value.
	Kind() Kind
	// String returns a compact, human readable representation of the value.
	String() string
	valueNode()
}

// Number is a numeric scalar.
type Number struct {
	Value   float64
	Literal string // source text, empty for numbers not read from text
}

func (n *Number) valueNode() {}
func (n *Number) Kind() Kind { return NumberKind }
func (n *Number) String() string {
	if n.Literal != "" {
		return n.Literal
	}
	return FormatNumber(n.Value)
}

// String is a string scalar.
type String struct {
	Value string
}

func (s *String) valueNode()     {}
func (s *String) Kind() Kind     { return StringKind }
func (s *String) String() string { return strconv.Quote(s.Value) }

// Sequence is an ordered list of values.
type Sequence struct {
	Elements []Value
}

func (s *Sequence) valueNode() {}
func (s *Sequence) Kind() Kind { return SequenceKind }
func (s *Sequence) String() string {
	elements := make([]string, 0, len(s.Elements))
	for _, el := range s.Elements {
		elements = append(elements, el.String())
	}
	return "[" + strings.Join(elements, ", ") + "]"
}

// Mapping is a string-keyed mapping that remembers the order in which keys
// were first set.
type Mapping struct {
	keys    []string
	entries map[string]Value
}

// NewMapping returns an empty mapping.
func NewMapping() *Mapping {
	return &Mapping{entries: make(map[string]Value)}
}

func (m *Mapping) valueNode() {}
func (m *Mapping) Kind() Kind { return MappingKind }
func (m *Mapping) String() string {
	var out bytes.Buffer
	out.WriteString("{")
	for i, k := range m.keys {
		if i > 0 {
			out.WriteString(", ")
		}
		out.WriteString(k)
		out.WriteString(": ")
		out.WriteString(m.entries[k].String())
	}
	out.WriteString("}")
	return out.String()
}

// Len returns the number of keys in m.
func (m *Mapping) Len() int {
	if m == nil {
		return 0
	}
	return len(m.keys)
}

// Keys returns the keys of m in insertion order.
func (m *Mapping) Keys() []string {
	if m == nil {
		return nil
	}
	return slices.Clone(m.keys)
}

// Get returns the value stored under key.
func (m *Mapping) Get(key string) (Value, bool) {
	if m == nil {
		return nil, false
	}
	v, ok := m.entries[key]
	return v, ok
}

// Set stores v under key. A new key is appended to the key order; an
// existing key keeps its position.
func (m *Mapping) Set(key string, v Value) {
	if m.entries == nil {
		m.entries = make(map[string]Value)
	}
	if _, ok := m.entries[key]; !ok {
		m.keys = append(m.keys, key)
	}
	m.entries[key] = v
}

// All iterates over the entries of m in insertion order.
func (m *Mapping) All() iter.Seq2[string, Value] {
	return func(yield func(string, Value) bool) {
		if m == nil {
			return
		}
		for _, k := range m.keys {
			if !yield(k, m.entries[k]) {
				return
			}
		}
	}
}

// FormatNumber renders f as a property name: integers without a fraction,
// exponent notation outside [1e-6, 1e21), and NaN/Infinity spelled out.
func FormatNumber(f float64) string {
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		return "0"
	}
	abs := math.Abs(f)
	if abs >= 1e21 || abs < 1e-6 {
		s := strconv.FormatFloat(f, 'e', -1, 64)
		mant, exp, _ := strings.Cut(s, "e")
		sign := exp[:1]
		digits := strings.TrimLeft(exp[1:], "0")
		return mant + "e" + sign + digits
	}
	return strconv.FormatFloat(f, 'f', -1, 64)
}

// Interface converts v into plain Go values: map[string]any, []any,
// float64 and string. A nil v yields nil.
func Interface(v Value) any {
	switch n := v.(type) {
	case *Number:
		return n.Value
	case *String:
		return n.Value
	case *Sequence:
		out := make([]any, 0, len(n.Elements))
		for _, el := range n.Elements {
			out = append(out, Interface(el))
		}
		return out
	case *Mapping:
		out := make(map[string]any, n.Len())
		for k, el := range n.All() {
			out[k] = Interface(el)
		}
		return out
	}
	return nil
}

// Equal reports whether a and b describe the same tree. Mapping key order
// and number literals are ignored, and NaN equals NaN.
func Equal(a, b Value) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	if a.Kind() != b.Kind() {
		return false
	}
	switch x := a.(type) {
	case *Number:
		y := b.(*Number)
		if math.IsNaN(x.Value) {
			return math.IsNaN(y.Value)
		}
		return x.Value == y.Value
	case *String:
		return x.Value == b.(*String).Value
	case *Sequence:
		y := b.(*Sequence)
		return slices.EqualFunc(x.Elements, y.Elements, Equal)
	case *Mapping:
		y := b.(*Mapping)
		if x.Len() != y.Len() {
			return false
		}
		for k, xv := range x.All() {
			yv, ok := y.Get(k)
			if !ok || !Equal(xv, yv) {
				return false
			}
		}
		return true
	}
	return false
}
