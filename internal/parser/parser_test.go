package parser

import (
	"encoding/json"
	"math"
	"testing"

	"github.com/KimNorgaard/go-yayaml/ast"
	"github.com/KimNorgaard/go-yayaml/errors"
	"github.com/KimNorgaard/go-yayaml/internal/lexer"
	"github.com/KimNorgaard/go-yayaml/token"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, input string) *ast.Mapping {
	t.Helper()
	m, err := New(lexer.New(input, 0)).Parse()
	require.NoError(t, err)
	return m
}

func toJSON(t *testing.T, m *ast.Mapping) string {
	t.Helper()
	b, err := json.Marshal(m)
	require.NoError(t, err)
	return string(b)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "Empty input",
			input:    "",
			expected: `{}`,
		},
		{
			name:     "Only comments and blanks",
			input:    "# nothing\n\n   \n\t# here",
			expected: `{}`,
		},
		{
			name:     "Scalar properties",
			input:    "name yay\nversion 1.5\nneg -3.5\nanswer 42\nmixed 42a\nzero 0",
			expected: `{"name":"yay","version":1.5,"neg":-3.5,"answer":42,"mixed":"42a","zero":0}`,
		},
		{
			name:     "Value keeps inner whitespace",
			input:    "title  Hello   world  \nkey\tvalue",
			expected: `{"title":"Hello   world","key":"value"}`,
		},
		{
			name:     "Duplicate keys become a sequence",
			input:    "a 1\nb x\na 2\na three",
			expected: `{"a":[1,2,"three"],"b":"x"}`,
		},
		{
			name:     "Nested map under named key",
			input:    "foo bar\n  baz 1\n  qux 2",
			expected: `{"foo":{"bar":{"baz":1,"qux":2}}}`,
		},
		{
			name:     "Pure nesting",
			input:    "foo\n  bar 1\n  baz 2",
			expected: `{"foo":{"bar":1,"baz":2}}`,
		},
		{
			name:     "Key without value or children is an empty map",
			input:    "foo",
			expected: `{"foo":{}}`,
		},
		{
			name:     "Repeated pure nesting",
			input:    "item\n  id 1\nitem\n  id 2\nitem",
			expected: `{"item":[{"id":1},{"id":2},{}]}`,
		},
		{
			name:     "Named maps accumulate",
			input:    "server a\n  port 1\nserver b\n  port 2",
			expected: `{"server":{"a":{"port":1},"b":{"port":2}}}`,
		},
		{
			name:     "Named map replaces same inner key",
			input:    "s a\n  x 1\ns a\n  y 2",
			expected: `{"s":{"a":{"y":2}}}`,
		},
		{
			name:     "Named map with numeric name",
			input:    "version 1.0\n  stable yes\nversion 1.50\n  stable no",
			expected: `{"version":{"1":{"stable":"yes"},"1.5":{"stable":"no"}}}`,
		},
		{
			name:     "Named map joins pure nesting map",
			input:    "foo\n  x 1\nfoo bar\n  y 2",
			expected: `{"foo":{"x":1,"bar":{"y":2}}}`,
		},
		{
			name:     "Pure nesting after named map becomes a sequence",
			input:    "foo bar\n  y 2\nfoo\n  x 1",
			expected: `{"foo":[{"bar":{"y":2}},{"x":1}]}`,
		},
		{
			name:     "Mixed scalar and map occurrences",
			input:    "a 1\na\n  b 2",
			expected: `{"a":[1,{"b":2}]}`,
		},
		{
			name:     "Double nesting",
			input:    "outer\n  middle\n    inner 1\n    inner 2\n  after 3\nlast",
			expected: `{"outer":{"middle":{"inner":[1,2]},"after":3},"last":{}}`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, toJSON(t, parse(t, tt.input)))
		})
	}
}

func TestParse_NumericQuirks(t *testing.T) {
	m := parse(t, "a -\nb .\nc --.\nd 1-2\ne .5\nf 1.\ng -.5\nh 1.2.3\ni 42a")

	nan := []string{"a", "b", "c"}
	for _, k := range nan {
		v, ok := m.Get(k)
		require.True(t, ok)
		n, isNum := v.(*ast.Number)
		require.True(t, isNum, "%s should be a number", k)
		require.True(t, math.IsNaN(n.Value), "%s should be NaN", k)
	}

	numbers := map[string]float64{"d": 1, "e": 0.5, "f": 1, "g": -0.5, "h": 1.2}
	for k, expected := range numbers {
		v, _ := m.Get(k)
		n, isNum := v.(*ast.Number)
		require.True(t, isNum, "%s should be a number", k)
		require.Equal(t, expected, n.Value, k)
	}

	v, _ := m.Get("i")
	require.Equal(t, &ast.String{Value: "42a"}, v)
}

func TestParse_ShapeConflict(t *testing.T) {
	t.Run("Sequence", func(t *testing.T) {
		_, err := New(lexer.New("a 1\na 2\na named  \n  x 1", 0)).Parse()
		require.ErrorIs(t, err, errors.ErrIncompatibleShape)

		var se *errors.ShapeError
		require.ErrorAs(t, err, &se)
		require.Equal(t, 3, se.Line)
		require.Equal(t, "a", se.Key)
		require.Equal(t, "a named", se.Text)
		require.Contains(t, err.Error(), "can't put named map properties into an array (a named)")
	})

	t.Run("Sequence of maps", func(t *testing.T) {
		_, err := New(lexer.New("a\na\na named\n  x 1", 0)).Parse()
		require.ErrorIs(t, err, errors.ErrIncompatibleShape)
	})

	t.Run("Scalar keeps its value", func(t *testing.T) {
		m, err := New(lexer.New("a 1\na named\n  x 1\nb x", 0)).Parse()
		require.NoError(t, err)
		require.Equal(t, `{"a":1,"b":"x"}`, toJSON(t, m))
	})

	t.Run("Scalar string keeps its value", func(t *testing.T) {
		m, err := New(lexer.New("mode fast\nmode custom\n  level 3", 0)).Parse()
		require.NoError(t, err)
		require.Equal(t, `{"mode":"fast"}`, toJSON(t, m))
	})

	t.Run("Nested", func(t *testing.T) {
		_, err := New(lexer.New("root\n  k v\n  k w\n  k x\n    deep 1", 0)).Parse()
		var se *errors.ShapeError
		require.ErrorAs(t, err, &se)
		require.Equal(t, 4, se.Line)
	})
}

func TestParse_Deterministic(t *testing.T) {
	input := "z 1\ny\n  b 2\n  a 3\nx named\n  k v\nz 2"
	first := toJSON(t, parse(t, input))
	for range 10 {
		require.Equal(t, first, toJSON(t, parse(t, input)))
	}
	require.Equal(t, `{"z":[1,2],"y":{"b":2,"a":3},"x":{"named":{"k":"v"}}}`, first)
}

func TestFold(t *testing.T) {
	forest := []*token.Token{
		{Text: "foo bar", Children: []*token.Token{
			{Text: "baz 1", Indent: 2},
		}},
		{Text: "empty", Children: []*token.Token{}},
	}
	m, err := Fold(forest, 0)
	require.NoError(t, err)
	require.Equal(t, `{"foo":{"bar":{"baz":1}},"empty":{}}`, toJSON(t, m))

	m, err = Fold(nil, 0)
	require.NoError(t, err)
	require.Equal(t, 0, m.Len())
}

func TestFold_MaxDepth(t *testing.T) {
	tokens, err := lexer.New("a\n b\n  c 1\nd\n e 2", 0).Tokenize()
	require.NoError(t, err)

	_, err = Fold(tokens, 3)
	require.NoError(t, err)

	_, err = Fold(tokens, 2)
	require.ErrorIs(t, err, errors.ErrMaxDepth)
	var se *errors.SyntaxError
	require.ErrorAs(t, err, &se)
	require.Equal(t, 3, se.Line)
}

func TestFold_DeepInput(t *testing.T) {
	const n = 100000
	root := &token.Token{Text: "level"}
	tok := root
	for range n - 1 {
		child := &token.Token{Text: "level"}
		tok.Children = []*token.Token{child}
		tok = child
	}
	tok.Text = "level leaf"

	m, err := Fold([]*token.Token{root}, 0)
	require.NoError(t, err)

	depth := 0
	var v ast.Value = m
	for {
		mm, ok := v.(*ast.Mapping)
		if !ok {
			break
		}
		v, _ = mm.Get("level")
		depth++
	}
	require.Equal(t, n, depth)
	require.Equal(t, &ast.String{Value: "leaf"}, v)
}

func TestSplitProperty(t *testing.T) {
	tests := []struct {
		text, name, value string
	}{
		{"key", "key", ""},
		{"key value", "key", "value"},
		{"key   spaced  out  ", "key", "spaced  out"},
		{"key\t\tvalue", "key", "value"},
		{"key ", "key", ""},
		{"", "", ""},
	}
	for _, tt := range tests {
		name, value := splitProperty(tt.text)
		require.Equal(t, tt.name, name, tt.text)
		require.Equal(t, tt.value, value, tt.text)
	}
}
