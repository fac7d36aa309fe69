package parser

import "github.com/KimNorgaard/go-yayaml/ast"

// slotState is the duplicate-key state of a single property.
type slotState int

const (
	unset  slotState = iota // the property has not been seen
	single                  // one value is stored as is
	many                    // two or more values are stored as a sequence
)

type slot struct {
	state slotState
	value ast.Value
}

// slotOf returns the state of key in m.
func slotOf(m *ast.Mapping, key string) slot {
	v, ok := m.Get(key)
	switch {
	case !ok:
		return slot{state: unset}
	case v.Kind() == ast.SequenceKind:
		return slot{state: many, value: v}
	default:
		return slot{state: single, value: v}
	}
}

// push returns the value to store after adding v to the slot. The first
// value is stored unwrapped, the second turns the slot into a two-element
// sequence and every later value is appended to it.
func (s slot) push(v ast.Value) ast.Value {
	switch s.state {
	case unset:
		return v
	case single:
		return &ast.Sequence{Elements: []ast.Value{s.value, v}}
	default:
		seq := s.value.(*ast.Sequence)
		seq.Elements = append(seq.Elements, v)
		return seq
	}
}
