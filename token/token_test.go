package token

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestString(t *testing.T) {
	tok := &Token{
		Text:   "foo bar",
		Indent: 0,
		Line:   1,
		Children: []*Token{
			{Text: "baz 1", Indent: 2, Line: 2},
			{Text: "qux", Indent: 2, Line: 3, Children: []*Token{
				{Text: "deep  ", Indent: 4, Line: 4},
			}},
		},
	}

	expected := "\"foo bar\" @0\n" +
		"  \"baz 1\" @2\n" +
		"  \"qux\" @2\n" +
		"    \"deep  \" @4\n"
	require.Equal(t, expected, tok.String())
}

func TestForest(t *testing.T) {
	forest := []*Token{
		{Text: "a 1", Line: 1},
		{Text: "b 2", Line: 2},
	}
	require.Equal(t, "\"a 1\" @0\n\"b 2\" @0\n", Forest(forest))
	require.Empty(t, Forest(nil))
}

func TestHasChildren(t *testing.T) {
	require.False(t, (&Token{}).HasChildren())
	require.False(t, (&Token{Children: []*Token{}}).HasChildren())
	require.True(t, (&Token{Children: []*Token{{Text: "x"}}}).HasChildren())
}
