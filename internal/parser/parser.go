package parser

import (
	"strings"

	"github.com/KimNorgaard/go-yayaml/ast"
	"github.com/KimNorgaard/go-yayaml/errors"
	"github.com/KimNorgaard/go-yayaml/internal/lexer"
	"github.com/KimNorgaard/go-yayaml/token"
)

// Parser holds the state of the parser.
type Parser struct {
	l *lexer.Lexer
}

// New creates a new parser.
func New(l *lexer.Lexer) *Parser {
	return &Parser{l: l}
}

// Parse tokenizes the lexer's input and folds the resulting forest into a
// mapping.
func (p *Parser) Parse() (*ast.Mapping, error) {
	tokens, err := p.l.Tokenize()
	if err != nil {
		return nil, err
	}
	return Fold(tokens, 0)
}

// frame is one level of the fold: the sibling tokens being reduced and the
// mapping they are reduced into.
type frame struct {
	tokens []*token.Token
	next   int
	out    *ast.Mapping
}

// Fold reduces a token forest into a mapping. Each token contributes one
// property:
//
//	name value        scalar, coerced to a number when it looks like one
//	name value + kids named map: out[name][value] = fold(kids)
//	name (+ kids)     nested map: fold(kids), empty when there are none
//
// Scalars and nested maps that repeat a name are collected into a sequence.
// A positive maxDepth limits how deeply tokens may nest.
func Fold(tokens []*token.Token, maxDepth int) (*ast.Mapping, error) {
	stack := []*frame{{tokens: tokens, out: ast.NewMapping()}}
	for {
		f := stack[len(stack)-1]
		if f.next == len(f.tokens) {
			stack = stack[:len(stack)-1]
			if len(stack) == 0 {
				return f.out, nil
			}
			parent := stack[len(stack)-1]
			if err := apply(parent.out, parent.tokens[parent.next], f.out); err != nil {
				return nil, err
			}
			parent.next++
			continue
		}

		tok := f.tokens[f.next]
		if !tok.HasChildren() {
			if err := apply(f.out, tok, nil); err != nil {
				return nil, err
			}
			f.next++
			continue
		}

		// Shape conflicts are reported before the children are looked at.
		if name, value := splitProperty(tok.Text); value != "" {
			if _, err := namedMap(f.out, name, tok); err != nil {
				return nil, err
			}
		}
		if maxDepth > 0 && len(stack) >= maxDepth {
			return nil, &errors.SyntaxError{Line: tok.Children[0].Line, Err: errors.ErrMaxDepth}
		}
		stack = append(stack, &frame{tokens: tok.Children, out: ast.NewMapping()})
	}
}

// apply adds the property described by tok to out. children is the folded
// content of tok's children, nil when it has none.
func apply(out *ast.Mapping, tok *token.Token, children *ast.Mapping) error {
	name, value := splitProperty(tok.Text)
	switch {
	case value != "" && children != nil:
		m, err := namedMap(out, name, tok)
		if err != nil {
			return err
		}
		if m != nil {
			m.Set(mapKey(value), children)
		}
	case value != "":
		out.Set(name, slotOf(out, name).push(coerce(value)))
	default:
		if children == nil {
			children = ast.NewMapping()
		}
		out.Set(name, slotOf(out, name).push(children))
	}
	return nil
}

// namedMap returns the mapping stored under name, creating it if the name
// is new. A sequence cannot hold named map properties. A scalar keeps its
// value and the named entry is dropped: namedMap returns nil and no error.
func namedMap(out *ast.Mapping, name string, tok *token.Token) (*ast.Mapping, error) {
	v, ok := out.Get(name)
	if !ok {
		m := ast.NewMapping()
		out.Set(name, m)
		return m, nil
	}
	switch v := v.(type) {
	case *ast.Mapping:
		return v, nil
	case *ast.Sequence:
		return nil, &errors.ShapeError{
			Line: tok.Line,
			Key:  name,
			Text: strings.TrimFunc(tok.Text, lexer.IsSpace),
		}
	}
	return nil, nil
}

// splitProperty splits a line into its property name, everything up to the
// first whitespace, and its value, the trimmed remainder.
func splitProperty(text string) (name, value string) {
	i := strings.IndexFunc(text, lexer.IsSpace)
	if i < 0 {
		return text, ""
	}
	return text[:i], strings.TrimFunc(text[i:], lexer.IsSpace)
}
