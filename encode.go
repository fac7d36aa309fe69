package yayaml

import (
	"bytes"
	"io"

	"github.com/KimNorgaard/go-yayaml/internal/formatter"
	"github.com/KimNorgaard/go-yayaml/internal/marshaler"
)

// Encoder writes YAYAML documents to an output stream.
type Encoder struct {
	w    io.Writer
	opts []Option
}

// NewEncoder returns a new encoder that writes to w.
func NewEncoder(w io.Writer, opts ...Option) *Encoder {
	return &Encoder{w: w, opts: opts}
}

// Encode writes the YAYAML encoding of v to the stream. Nothing is written
// when v cannot be encoded.
//
// See the documentation for Marshal for details about the conversion of Go
// values to YAYAML.
func (e *Encoder) Encode(v any) error {
	o, err := newOptions(e.opts)
	if err != nil {
		return err
	}

	node, err := marshaler.Marshal(v)
	if err != nil {
		return err
	}

	var buf bytes.Buffer
	if err := formatter.New(&buf, o.indent).Format(node); err != nil {
		return err
	}
	_, err = e.w.Write(buf.Bytes())
	return err
}
