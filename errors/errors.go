// Package errors defines the errors reported while converting YAYAML.
package errors

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	// ErrInvalidInput is returned when the value handed to the converter is
	// not text.
	ErrInvalidInput = errors.New("yayaml: input must be a string")

	// ErrIncompatibleShape is returned when a named map property is merged
	// into a property that already holds a sequence.
	ErrIncompatibleShape = errors.New("yayaml: incompatible property shape")

	// ErrMaxDepth is returned when the input nests deeper than the
	// configured maximum.
	ErrMaxDepth = errors.New("yayaml: reached max nesting depth")
)

// ShapeError reports a named map property that cannot be stored because
// its property already holds a sequence.
type ShapeError struct {
	Line int    // 1-based source line, 0 when unknown
	Key  string // property name
	Text string // the offending line, trimmed
}

func (e *ShapeError) Error() string {
	if e.Line > 0 {
		return fmt.Sprintf("yayaml: line %d: can't put named map properties into an array (%s)", e.Line, e.Text)
	}
	return fmt.Sprintf("yayaml: can't put named map properties into an array (%s)", e.Text)
}

func (e *ShapeError) Unwrap() error { return ErrIncompatibleShape }

// SyntaxError reports a structural problem in the input.
type SyntaxError struct {
	Line int
	Err  error
}

func (e *SyntaxError) Error() string {
	return fmt.Sprintf("%s at line %d", e.Err.Error(), e.Line)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

// EncodeError reports a value that cannot be written as YAYAML.
type EncodeError struct {
	Path   string // dotted property path of the value, empty for the root
	Reason string
}

func (e *EncodeError) Error() string {
	if e.Path == "" {
		return "yayaml: cannot encode document: " + e.Reason
	}
	return fmt.Sprintf("yayaml: cannot encode %q: %s", e.Path, e.Reason)
}

// InvalidUnmarshalError describes an invalid argument passed to Unmarshal.
// The argument must be a non-nil pointer.
type InvalidUnmarshalError struct {
	Type reflect.Type
}

func (e *InvalidUnmarshalError) Error() string {
	if e.Type == nil {
		return "yayaml: Unmarshal(nil)"
	}
	if e.Type.Kind() != reflect.Pointer {
		return "yayaml: Unmarshal(non-pointer " + e.Type.String() + ")"
	}
	return "yayaml: Unmarshal(nil " + e.Type.String() + ")"
}

// UnmarshalTypeError describes a value that cannot be stored in a Go value
// of a specific type.
type UnmarshalTypeError struct {
	Value string       // description of the value: "number 1.5", "mapping", ...
	Type  reflect.Type // type of the Go value it could not be assigned to
	Path  string       // dotted property path, empty at the root
}

func (e *UnmarshalTypeError) Error() string {
	if e.Path == "" {
		return "yayaml: cannot unmarshal " + e.Value + " into Go value of type " + e.Type.String()
	}
	return fmt.Sprintf("yayaml: cannot unmarshal %s into Go value of type %s (property %q)", e.Value, e.Type, e.Path)
}

// UnmarshalerError wraps an error returned by a value's UnmarshalYAYAML or
// UnmarshalText method.
type UnmarshalerError struct {
	Type   reflect.Type
	Method string // method that failed, UnmarshalText when empty
	Err    error
}

func (e *UnmarshalerError) Error() string {
	return "yayaml: error calling " + methodName(e.Method, "UnmarshalText") + " for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *UnmarshalerError) Unwrap() error { return e.Err }

// MarshalerError wraps an error returned by a value's MarshalYAYAML or
// MarshalText method.
type MarshalerError struct {
	Type   reflect.Type
	Method string // method that failed, MarshalText when empty
	Err    error
}

func (e *MarshalerError) Error() string {
	return "yayaml: error calling " + methodName(e.Method, "MarshalText") + " for type " + e.Type.String() + ": " + e.Err.Error()
}

func (e *MarshalerError) Unwrap() error { return e.Err }

func methodName(name, def string) string {
	if name == "" {
		return def
	}
	return name
}
