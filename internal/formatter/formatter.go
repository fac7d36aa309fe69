// Package formatter writes YAYAML trees as text.
package formatter

import (
	"io"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/KimNorgaard/go-yayaml/ast"
	"github.com/KimNorgaard/go-yayaml/errors"
	"github.com/KimNorgaard/go-yayaml/internal/lexer"
	"github.com/KimNorgaard/go-yayaml/internal/parser"
)

// DefaultIndent is the indentation of one nesting level.
const DefaultIndent = "  "

// plainDecimal matches number literals that are written back verbatim.
var plainDecimal = regexp.MustCompile(`^-?\d+(?:\.\d+)?$`)

// Formatter writes a YAYAML tree to an output stream.
type Formatter struct {
	w      io.Writer
	indent string
	depth  int
}

// New returns a new formatter that writes to w, indenting each nesting
// level with indent.
func New(w io.Writer, indent string) *Formatter {
	if indent == "" {
		indent = DefaultIndent
	}
	return &Formatter{w: w, indent: indent}
}

// Format writes the document rooted at v. The root must be a mapping; each
// of its entries becomes one or more lines.
func (f *Formatter) Format(v ast.Value) error {
	m, ok := v.(*ast.Mapping)
	if !ok {
		return &errors.EncodeError{Reason: "root must be a mapping, got " + kindOf(v)}
	}
	return f.writeMapping(m, "")
}

func (f *Formatter) writeMapping(m *ast.Mapping, path string) error {
	for k, v := range m.All() {
		if err := f.writeEntry(k, v, join(path, k)); err != nil {
			return err
		}
	}
	return nil
}

// writeEntry writes key and its value. Mappings put their entries on the
// following lines, one level deeper; sequences repeat the key once per
// element.
func (f *Formatter) writeEntry(key string, v ast.Value, path string) error {
	if reason := checkKey(key); reason != "" {
		return &errors.EncodeError{Path: path, Reason: reason}
	}

	switch n := v.(type) {
	case *ast.String:
		if reason := checkString(n.Value); reason != "" {
			return &errors.EncodeError{Path: path, Reason: reason}
		}
		return f.writeLine(key + " " + n.Value)
	case *ast.Number:
		text, reason := formatNumber(n)
		if reason != "" {
			return &errors.EncodeError{Path: path, Reason: reason}
		}
		return f.writeLine(key + " " + text)
	case *ast.Mapping:
		if err := f.writeLine(key); err != nil {
			return err
		}
		f.depth++
		err := f.writeMapping(n, path)
		f.depth--
		return err
	case *ast.Sequence:
		for _, el := range n.Elements {
			if el.Kind() == ast.SequenceKind {
				return &errors.EncodeError{Path: path, Reason: "sequence nested in a sequence"}
			}
			if err := f.writeEntry(key, el, path); err != nil {
				return err
			}
		}
		return nil
	}
	return &errors.EncodeError{Path: path, Reason: "unsupported value " + kindOf(v)}
}

func (f *Formatter) writeLine(s string) error {
	var b strings.Builder
	for range f.depth {
		b.WriteString(f.indent)
	}
	b.WriteString(s)
	b.WriteByte('\n')
	_, err := io.WriteString(f.w, b.String())
	return err
}

// checkKey returns why key cannot be written as a property name, or "".
func checkKey(key string) string {
	switch {
	case key == "":
		return "empty property name"
	case strings.IndexFunc(key, lexer.IsSpace) >= 0:
		return "property name contains whitespace"
	case key[0] == '#':
		return "property name starts with '#'"
	}
	return ""
}

// checkString returns why s would not read back as the same string, or "".
func checkString(s string) string {
	switch {
	case s == "":
		return "empty string"
	case strings.ContainsAny(s, "\r\n"):
		return "string contains a line break"
	case strings.TrimFunc(s, lexer.IsSpace) != s:
		return "string has leading or trailing whitespace"
	case parser.LooksNumeric(s):
		return "string would read back as a number"
	}
	return ""
}

// formatNumber returns the text for n, or the reason it has none.
func formatNumber(n *ast.Number) (string, string) {
	if math.IsNaN(n.Value) || math.IsInf(n.Value, 0) {
		return "", "number " + ast.FormatNumber(n.Value) + " has no literal form"
	}
	if plainDecimal.MatchString(n.Literal) {
		if f, err := strconv.ParseFloat(n.Literal, 64); err == nil && f == n.Value {
			return n.Literal, ""
		}
	}
	return strconv.FormatFloat(n.Value, 'f', -1, 64), ""
}

func kindOf(v ast.Value) string {
	if v == nil {
		return "nil"
	}
	return v.Kind().String()
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
