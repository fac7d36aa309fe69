package ast

import (
	"math"

	"github.com/goccy/go-yaml"
)

// maxExactInt is the largest magnitude below which every integer is exactly
// representable as a float64.
const maxExactInt = 1 << 53

// MarshalYAML encodes integral numbers as YAML integers and all other
// numbers as floats, so that 8080 is not written as 8080.0.
func (n *Number) MarshalYAML() (any, error) {
	if n.Value == math.Trunc(n.Value) && math.Abs(n.Value) < maxExactInt {
		return int64(n.Value), nil
	}
	return n.Value, nil
}

func (s *String) MarshalYAML() (any, error) {
	return s.Value, nil
}

func (s *Sequence) MarshalYAML() (any, error) {
	out := make([]any, 0, len(s.Elements))
	for _, el := range s.Elements {
		out = append(out, el)
	}
	return out, nil
}

// MarshalYAML encodes m as a YAML mapping with keys in insertion order.
func (m *Mapping) MarshalYAML() (any, error) {
	out := make(yaml.MapSlice, 0, m.Len())
	for k, v := range m.All() {
		out = append(out, yaml.MapItem{Key: k, Value: v})
	}
	return out, nil
}
