// Package marshaler converts Go values into YAYAML trees.
package marshaler

import (
	"encoding"
	"reflect"
	"slices"
	"strconv"

	"github.com/KimNorgaard/go-yayaml/ast"
	"github.com/KimNorgaard/go-yayaml/errors"
	"github.com/KimNorgaard/go-yayaml/internal/lexer"
	"github.com/KimNorgaard/go-yayaml/internal/mapper"
	"github.com/KimNorgaard/go-yayaml/internal/parser"
)

// Marshaler is implemented by types that write themselves as YAYAML text.
// The text must hold a document, which becomes a mapping node.
type Marshaler interface {
	MarshalYAYAML() ([]byte, error)
}

var (
	valueType         = reflect.TypeFor[ast.Value]()
	marshalerType     = reflect.TypeFor[Marshaler]()
	textMarshalerType = reflect.TypeFor[encoding.TextMarshaler]()
)

// Marshal converts a Go value into a tree node. A nil v yields an empty
// mapping.
func Marshal(v any) (ast.Value, error) {
	node, ok, err := marshal(reflect.ValueOf(v), "")
	if err != nil {
		return nil, err
	}
	if !ok {
		return ast.NewMapping(), nil
	}
	return node, nil
}

// marshal returns the node for v. ok is false when v is nil and must be
// left out of its parent.
func marshal(v reflect.Value, path string) (node ast.Value, ok bool, err error) { //nolint:gocyclo
	if !v.IsValid() {
		return nil, false, nil
	}

	if v.Type().Implements(valueType) {
		if v.Kind() == reflect.Interface || v.Kind() == reflect.Pointer {
			if v.IsNil() {
				return nil, false, nil
			}
		}
		return v.Interface().(ast.Value), true, nil
	}

	if mv, ok := methodValue(v, marshalerType); ok {
		if isNil(mv) {
			return nil, false, nil
		}
		b, err := mv.Interface().(Marshaler).MarshalYAYAML()
		if err != nil {
			return nil, false, &errors.MarshalerError{Type: v.Type(), Method: "MarshalYAYAML", Err: err}
		}
		m, err := parser.New(lexer.New(string(b), 0)).Parse()
		if err != nil {
			return nil, false, &errors.MarshalerError{Type: v.Type(), Method: "MarshalYAYAML", Err: err}
		}
		return m, true, nil
	}

	if mv, ok := methodValue(v, textMarshalerType); ok {
		if isNil(mv) {
			return nil, false, nil
		}
		b, err := mv.Interface().(encoding.TextMarshaler).MarshalText()
		if err != nil {
			return nil, false, &errors.MarshalerError{Type: v.Type(), Err: err}
		}
		return &ast.String{Value: string(b)}, true, nil
	}

	switch v.Kind() {
	case reflect.Pointer, reflect.Interface:
		if v.IsNil() {
			return nil, false, nil
		}
		return marshal(v.Elem(), path)
	case reflect.String:
		return &ast.String{Value: v.String()}, true, nil
	case reflect.Bool:
		return &ast.String{Value: strconv.FormatBool(v.Bool())}, true, nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		i := v.Int()
		return &ast.Number{Value: float64(i), Literal: strconv.FormatInt(i, 10)}, true, nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := v.Uint()
		return &ast.Number{Value: float64(u), Literal: strconv.FormatUint(u, 10)}, true, nil
	case reflect.Float32, reflect.Float64:
		return &ast.Number{Value: v.Float()}, true, nil
	case reflect.Slice:
		if v.IsNil() {
			return nil, false, nil
		}
		if v.Type().Elem().Kind() == reflect.Uint8 {
			return &ast.String{Value: string(v.Bytes())}, true, nil
		}
		return marshalSequence(v, path)
	case reflect.Array:
		return marshalSequence(v, path)
	case reflect.Map:
		if v.IsNil() {
			return nil, false, nil
		}
		return marshalMap(v, path)
	case reflect.Struct:
		return marshalStruct(v, path)
	}
	return nil, false, &errors.EncodeError{Path: path, Reason: "unsupported type " + v.Type().String()}
}

// methodValue returns the value on which to call the methods of iface: v
// itself, its address when addressable, or else a pointer to a copy, so that
// pointer-receiver methods are found too.
func methodValue(v reflect.Value, iface reflect.Type) (reflect.Value, bool) {
	if v.Type().Implements(iface) {
		return v, true
	}
	if v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface {
		return reflect.Value{}, false
	}
	if !reflect.PointerTo(v.Type()).Implements(iface) {
		return reflect.Value{}, false
	}
	if v.CanAddr() {
		return v.Addr(), true
	}
	pv := reflect.New(v.Type())
	pv.Elem().Set(v)
	return pv, true
}

func isNil(v reflect.Value) bool {
	return (v.Kind() == reflect.Pointer || v.Kind() == reflect.Interface) && v.IsNil()
}

func marshalSequence(v reflect.Value, path string) (ast.Value, bool, error) {
	seq := &ast.Sequence{Elements: make([]ast.Value, 0, v.Len())}
	for i := 0; i < v.Len(); i++ {
		el, ok, err := marshal(v.Index(i), path)
		if err != nil {
			return nil, false, err
		}
		if ok {
			seq.Elements = append(seq.Elements, el)
		}
	}
	return seq, true, nil
}

func marshalMap(v reflect.Value, path string) (ast.Value, bool, error) {
	if v.Type().Key().Kind() != reflect.String {
		return nil, false, &errors.EncodeError{Path: path, Reason: "map key type must be a string, got " + v.Type().Key().String()}
	}

	keys := v.MapKeys()
	slices.SortFunc(keys, func(a, b reflect.Value) int {
		switch {
		case a.String() < b.String():
			return -1
		case a.String() > b.String():
			return 1
		}
		return 0
	})

	m := ast.NewMapping()
	for _, k := range keys {
		el, ok, err := marshal(v.MapIndex(k), join(path, k.String()))
		if err != nil {
			return nil, false, err
		}
		if ok {
			m.Set(k.String(), el)
		}
	}
	return m, true, nil
}

func marshalStruct(v reflect.Value, path string) (ast.Value, bool, error) {
	m := ast.NewMapping()
	for _, f := range mapper.Fields(v.Type()).List {
		fv, err := v.FieldByIndexErr(f.Index)
		if err != nil {
			continue // Field of a nil embedded pointer.
		}
		if f.OmitEmpty && isEmptyValue(fv) {
			continue
		}
		el, ok, err := marshal(fv, join(path, f.Name))
		if err != nil {
			return nil, false, err
		}
		if ok {
			m.Set(f.Name, el)
		}
	}
	return m, true, nil
}

// isEmptyValue reports whether the value v is empty.
// It is equivalent to the `encoding/json` definition of empty:
// false, 0, a nil pointer, a nil interface value, and any empty array,
// slice, map, or string.
func isEmptyValue(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return v.Len() == 0
	case reflect.Bool:
		return !v.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return v.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return v.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return v.Float() == 0
	case reflect.Interface, reflect.Pointer:
		return v.IsNil()
	}
	return false
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
