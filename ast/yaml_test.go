package ast

import (
	"math"
	"testing"

	"github.com/goccy/go-yaml"
	"github.com/stretchr/testify/require"
)

func TestMarshalYAML(t *testing.T) {
	listen := NewMapping()
	listen.Set("address", &String{Value: "localhost"})
	listen.Set("port", &Number{Value: 8080, Literal: "8080"})

	root := NewMapping()
	root.Set("name", &String{Value: "server"})
	root.Set("listen", listen)
	root.Set("tag", &Sequence{Elements: []Value{
		&String{Value: "web"},
		&String{Value: "api"},
	}})
	root.Set("ratio", &Number{Value: 0.5})

	out, err := yaml.Marshal(root)
	require.NoError(t, err)

	expected := `name: server
listen:
  address: localhost
  port: 8080
tag:
- web
- api
ratio: 0.5
`
	require.Equal(t, expected, string(out))
}

func TestNumberMarshalYAML(t *testing.T) {
	tests := []struct {
		value    float64
		expected any
	}{
		{42, int64(42)},
		{-7, int64(-7)},
		{0.25, 0.25},
		{1e300, 1e300},
	}
	for _, tt := range tests {
		v, err := (&Number{Value: tt.value}).MarshalYAML()
		require.NoError(t, err)
		require.Equal(t, tt.expected, v)
	}

	v, err := (&Number{Value: math.NaN()}).MarshalYAML()
	require.NoError(t, err)
	require.True(t, math.IsNaN(v.(float64)))
}
