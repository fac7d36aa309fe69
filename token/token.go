// Package token defines the intermediate tree produced by the YAYAML
// tokenizer.
package token

import (
	"bytes"
	"strconv"
	"strings"
)

// Token represents one significant source line together with the lines
// nested beneath it.
type Token struct {
	Text     string   `json:"text"`               // line content without leading whitespace
	Indent   int      `json:"indent"`             // count of leading whitespace runes
	Line     int      `json:"line"`               // 1-based line number in the input
	Children []*Token `json:"children,omitempty"` // more deeply indented lines claimed by this token
}

// HasChildren reports whether any lines are nested beneath t.
func (t *Token) HasChildren() bool {
	return len(t.Children) > 0
}

// String returns an indented outline of t and its descendants, one token
// per line, with each level rendered as two spaces.
func (t *Token) String() string {
	var out bytes.Buffer
	t.writeTo(&out, 0)
	return out.String()
}

func (t *Token) writeTo(out *bytes.Buffer, depth int) {
	out.WriteString(strings.Repeat("  ", depth))
	out.WriteString(strconv.Quote(t.Text))
	out.WriteString(" @")
	out.WriteString(strconv.Itoa(t.Indent))
	out.WriteByte('\n')
	for _, c := range t.Children {
		c.writeTo(out, depth+1)
	}
}

// Forest renders a slice of root tokens the way Token.String renders one.
func Forest(tokens []*Token) string {
	var out bytes.Buffer
	for _, t := range tokens {
		t.writeTo(&out, 0)
	}
	return out.String()
}
