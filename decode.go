package yayaml

import (
	"io"

	"github.com/KimNorgaard/go-yayaml/internal/mapper"
)

// Decoder reads and decodes YAYAML documents from an input stream.
type Decoder struct {
	r    io.Reader
	opts []Option
}

// NewDecoder returns a new decoder that reads from r.
//
// Functional options can be provided to configure the decoding process,
// such as setting a maximum nesting depth with the MaxDepth option.
func NewDecoder(r io.Reader, opts ...Option) *Decoder {
	return &Decoder{r: r, opts: opts}
}

// Decode reads the document from its input and stores it in the value
// pointed to by v. See the documentation for Unmarshal for details about
// the conversion of YAYAML into a Go value.
//
// A YAYAML document has no terminator, so Decode reads r to its end before
// parsing.
func (d *Decoder) Decode(v any) error {
	if d.r == nil {
		return ErrInvalidInput
	}
	data, err := io.ReadAll(d.r)
	if err != nil {
		return err
	}
	root, err := Convert(string(data), d.opts...)
	if err != nil {
		return err
	}
	return mapper.Map(root, v)
}
