package yayaml

import (
	"bytes"
	"fmt"
	"io"

	"github.com/KimNorgaard/go-yayaml/ast"
	"github.com/KimNorgaard/go-yayaml/internal/lexer"
	"github.com/KimNorgaard/go-yayaml/internal/mapper"
	"github.com/KimNorgaard/go-yayaml/internal/parser"
	"github.com/KimNorgaard/go-yayaml/token"
)

// Marshaler is the interface implemented by types that
// can marshal themselves into valid YAYAML.
type Marshaler interface {
	MarshalYAYAML() ([]byte, error)
}

// Unmarshaler is the interface implemented by types that
// can unmarshal a YAYAML description of themselves. The input
// is the named map property re-encoded as a document.
type Unmarshaler interface {
	UnmarshalYAYAML([]byte) error
}

// Tokenize splits input into lines and nests them by indentation. Blank
// lines and lines starting with '#' are skipped. The result is never nil.
func Tokenize(input string, opts ...Option) ([]*token.Token, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return lexer.New(input, o.maxDepth).Tokenize()
}

// Convert parses YAYAML text into a tree. The root is always a mapping;
// empty input yields an empty one.
func Convert(input string, opts ...Option) (*ast.Mapping, error) {
	o, err := newOptions(opts)
	if err != nil {
		return nil, err
	}
	return parser.New(lexer.New(input, o.maxDepth)).Parse()
}

// ConvertAny is Convert for callers holding an untyped value. src may be a
// string, a []byte, an io.Reader or a fmt.Stringer; anything else,
// including nil, fails with ErrInvalidInput.
func ConvertAny(src any, opts ...Option) (*ast.Mapping, error) {
	var input string
	switch s := src.(type) {
	case string:
		input = s
	case []byte:
		input = string(s)
	case io.Reader:
		data, err := io.ReadAll(s)
		if err != nil {
			return nil, err
		}
		input = string(data)
	case fmt.Stringer:
		input = s.String()
	default:
		return nil, ErrInvalidInput
	}
	return Convert(input, opts...)
}

// Unmarshal parses YAYAML data and stores the result in the value pointed
// to by v. If v is nil or not a pointer, Unmarshal returns an
// InvalidUnmarshalError.
//
// Unmarshal converts numbers into Go integers, unsigned integers and floats,
// rejecting values that do not fit. A number stored into a string receives
// its source text. Strings "true" and "false" may be stored into bools.
// Because a property becomes a sequence only when it repeats, a single
// value stored into a slice yields a slice of one element.
//
// Mappings are stored into maps with string keys or into structs. Struct
// fields are matched by their `yayaml:"name"` tag or field name, exact
// match first, then case-insensitively. Unknown properties are ignored.
//
// Interface values receive map[string]any, []any, float64 and string.
// Targets of type ast.Value or *ast.Mapping receive the tree itself.
//
// A target implementing Unmarshaler receives mappings as text; one
// implementing encoding.TextUnmarshaler receives scalars.
func Unmarshal(data []byte, v any, opts ...Option) error {
	root, err := Convert(string(data), opts...)
	if err != nil {
		return err
	}
	return mapper.Map(root, v)
}

// Marshal returns the YAYAML encoding of v. The root value must encode as a
// mapping: a struct, a map with string keys or an *ast.Mapping.
//
// Struct fields follow the same tag rules as Unmarshal; the "omitempty"
// option leaves out false, 0, nil pointers, nil interfaces and empty
// arrays, slices, maps and strings. Slices write their property once per
// element. Nil pointers, interfaces, maps and slices are left out of their
// parent.
//
// Values implementing Marshaler are written as the document they return,
// nested under their property. Values implementing encoding.TextMarshaler
// are written as strings. Pointer-receiver methods are used too.
//
// Values that would not read back as the same value fail with an
// EncodeError.
func Marshal(v any, opts ...Option) ([]byte, error) {
	var buf bytes.Buffer
	if err := NewEncoder(&buf, opts...).Encode(v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
