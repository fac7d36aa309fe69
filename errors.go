package yayaml

import "github.com/KimNorgaard/go-yayaml/errors"

var (
	// ErrInvalidInput is returned when the source is not text.
	ErrInvalidInput = errors.ErrInvalidInput
	// ErrIncompatibleShape is wrapped by ShapeError.
	ErrIncompatibleShape = errors.ErrIncompatibleShape
	// ErrMaxDepth is wrapped by the SyntaxError returned when input nests
	// deeper than MaxDepth allows.
	ErrMaxDepth = errors.ErrMaxDepth
)

type (
	// ShapeError reports a named map property merged into a sequence.
	ShapeError = errors.ShapeError
	// SyntaxError reports a structural problem in the input.
	SyntaxError = errors.SyntaxError
	// EncodeError reports a value that cannot be written as YAYAML.
	EncodeError = errors.EncodeError
	// InvalidUnmarshalError describes an invalid argument passed to
	// Unmarshal or Decode.
	InvalidUnmarshalError = errors.InvalidUnmarshalError
	// UnmarshalTypeError describes a value that does not fit its Go
	// destination.
	UnmarshalTypeError = errors.UnmarshalTypeError
	// UnmarshalerError wraps an error from UnmarshalYAYAML or
	// UnmarshalText.
	UnmarshalerError = errors.UnmarshalerError
	// MarshalerError wraps an error from MarshalYAYAML or MarshalText.
	MarshalerError = errors.MarshalerError
)
