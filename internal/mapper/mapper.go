// Package mapper stores converted YAYAML trees in Go values.
package mapper

import (
	"bytes"
	"encoding"
	"math"
	"reflect"
	"strconv"

	"github.com/KimNorgaard/go-yayaml/ast"
	"github.com/KimNorgaard/go-yayaml/errors"
	"github.com/KimNorgaard/go-yayaml/internal/formatter"
)

// Unmarshaler is implemented by types that read a named map property
// themselves. UnmarshalYAYAML receives the property's mapping written back
// as YAYAML text.
type Unmarshaler interface {
	UnmarshalYAYAML([]byte) error
}

var (
	valueType           = reflect.TypeFor[ast.Value]()
	unmarshalerType     = reflect.TypeFor[Unmarshaler]()
	textUnmarshalerType = reflect.TypeFor[encoding.TextUnmarshaler]()
)

// Map walks the tree rooted at v and populates the Go value pointed to by
// target.
func Map(v ast.Value, target any) error {
	rv := reflect.ValueOf(target)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &errors.InvalidUnmarshalError{Type: reflect.TypeOf(target)}
	}
	return mapValue(v, rv.Elem(), "")
}

// mapValue is the core function that maps a tree value to a reflect.Value.
// path is the dotted property path of v, used in error messages.
func mapValue(v ast.Value, rv reflect.Value, path string) error { //nolint:gocyclo
	for {
		// Targets of the tree's own types receive the nodes themselves.
		if rv.Type() == valueType || rv.Type() == reflect.TypeOf(v) {
			rv.Set(reflect.ValueOf(v))
			return nil
		}
		if rv.Kind() != reflect.Pointer {
			break
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}

	if handled, err := tryUnmarshaler(v, rv); handled {
		return err
	}
	if handled, err := tryTextUnmarshal(v, rv); handled {
		return err
	}

	switch rv.Kind() {
	case reflect.Interface:
		if rv.NumMethod() != 0 {
			return typeError(v, rv, path)
		}
		rv.Set(reflect.ValueOf(ast.Interface(v)))
		return nil
	case reflect.Slice:
		if s, ok := v.(*ast.String); ok && rv.Type().Elem().Kind() == reflect.Uint8 {
			rv.SetBytes([]byte(s.Value))
			return nil
		}
		if v.Kind() != ast.SequenceKind {
			// A property that appeared once was never promoted; treat it
			// as a sequence of one.
			v = &ast.Sequence{Elements: []ast.Value{v}}
		}
	}

	switch n := v.(type) {
	case *ast.Number:
		return mapNumber(n, rv, path)
	case *ast.String:
		return mapString(n, rv, path)
	case *ast.Sequence:
		return mapSequence(n, rv, path)
	case *ast.Mapping:
		switch rv.Kind() {
		case reflect.Map:
			return mapMap(n, rv, path)
		case reflect.Struct:
			return mapStruct(n, rv, path)
		}
	}
	return typeError(v, rv, path)
}

// tryUnmarshaler hands mappings to an Unmarshaler. It reports whether rv
// implements the interface for v.
func tryUnmarshaler(v ast.Value, rv reflect.Value) (bool, error) {
	m, ok := v.(*ast.Mapping)
	if !ok || !rv.CanAddr() || !reflect.PointerTo(rv.Type()).Implements(unmarshalerType) {
		return false, nil
	}
	var buf bytes.Buffer
	if err := formatter.New(&buf, formatter.DefaultIndent).Format(m); err != nil {
		return true, err
	}
	u := rv.Addr().Interface().(Unmarshaler)
	if err := u.UnmarshalYAYAML(buf.Bytes()); err != nil {
		return true, &errors.UnmarshalerError{Type: rv.Type(), Method: "UnmarshalYAYAML", Err: err}
	}
	return true, nil
}

// tryTextUnmarshal hands scalars to an encoding.TextUnmarshaler. It
// reports whether rv implements the interface for v.
func tryTextUnmarshal(v ast.Value, rv reflect.Value) (bool, error) {
	if !rv.CanAddr() || !reflect.PointerTo(rv.Type()).Implements(textUnmarshalerType) {
		return false, nil
	}
	var text string
	switch n := v.(type) {
	case *ast.String:
		text = n.Value
	case *ast.Number:
		text = n.String()
	default:
		return false, nil
	}
	u := rv.Addr().Interface().(encoding.TextUnmarshaler)
	if err := u.UnmarshalText([]byte(text)); err != nil {
		return true, &errors.UnmarshalerError{Type: rv.Type(), Err: err}
	}
	return true, nil
}

func mapNumber(n *ast.Number, rv reflect.Value, path string) error {
	f := n.Value
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		if f != math.Trunc(f) || f < math.MinInt64 || f >= math.MaxInt64 || rv.OverflowInt(int64(f)) {
			return typeError(n, rv, path)
		}
		rv.SetInt(int64(f))
		return nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		if f != math.Trunc(f) || f < 0 || f >= math.MaxUint64 || rv.OverflowUint(uint64(f)) {
			return typeError(n, rv, path)
		}
		rv.SetUint(uint64(f))
		return nil
	case reflect.Float32, reflect.Float64:
		if rv.OverflowFloat(f) {
			return typeError(n, rv, path)
		}
		rv.SetFloat(f)
		return nil
	case reflect.String:
		rv.SetString(n.String())
		return nil
	}
	return typeError(n, rv, path)
}

func mapString(s *ast.String, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.String:
		rv.SetString(s.Value)
		return nil
	case reflect.Bool:
		b, err := strconv.ParseBool(s.Value)
		if err != nil {
			return typeError(s, rv, path)
		}
		rv.SetBool(b)
		return nil
	}
	return typeError(s, rv, path)
}

func mapSequence(seq *ast.Sequence, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Slice:
		newSlice := reflect.MakeSlice(rv.Type(), len(seq.Elements), len(seq.Elements))
		for i, el := range seq.Elements {
			if err := mapValue(el, newSlice.Index(i), path); err != nil {
				return err
			}
		}
		rv.Set(newSlice)
		return nil
	case reflect.Array:
		if rv.Len() != len(seq.Elements) {
			return &errors.UnmarshalTypeError{
				Value: "sequence of length " + strconv.Itoa(len(seq.Elements)),
				Type:  rv.Type(),
				Path:  path,
			}
		}
		for i, el := range seq.Elements {
			if err := mapValue(el, rv.Index(i), path); err != nil {
				return err
			}
		}
		return nil
	}
	return typeError(seq, rv, path)
}

func mapMap(m *ast.Mapping, rv reflect.Value, path string) error {
	mapType := rv.Type()
	if mapType.Key().Kind() != reflect.String {
		return typeError(m, rv, path)
	}
	if rv.IsNil() {
		rv.Set(reflect.MakeMapWithSize(mapType, m.Len()))
	}
	elemType := mapType.Elem()
	for k, v := range m.All() {
		newVal := reflect.New(elemType).Elem()
		if err := mapValue(v, newVal, join(path, k)); err != nil {
			return err
		}
		rv.SetMapIndex(reflect.ValueOf(k).Convert(mapType.Key()), newVal)
	}
	return nil
}

func mapStruct(m *ast.Mapping, rv reflect.Value, path string) error {
	fields := Fields(rv.Type())
	for k, v := range m.All() {
		f := fields.Lookup(k)
		if f == nil {
			continue // Unknown properties are ignored.
		}
		fv := fieldByIndex(rv, f.Index)
		if !fv.CanSet() {
			continue
		}
		if err := mapValue(v, fv, join(path, k)); err != nil {
			return err
		}
	}
	return nil
}

// fieldByIndex is reflect.Value.FieldByIndex, allocating nil embedded
// struct pointers on the way.
func fieldByIndex(rv reflect.Value, index []int) reflect.Value {
	for i, x := range index {
		if i > 0 && rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				rv.Set(reflect.New(rv.Type().Elem()))
			}
			rv = rv.Elem()
		}
		rv = rv.Field(x)
	}
	return rv
}

func typeError(v ast.Value, rv reflect.Value, path string) error {
	desc := v.Kind().String()
	if n, ok := v.(*ast.Number); ok {
		desc += " " + n.String()
	}
	return &errors.UnmarshalTypeError{Value: desc, Type: rv.Type(), Path: path}
}

func join(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
