package yayaml

import (
	"fmt"
	"strings"

	"github.com/KimNorgaard/go-yayaml/internal/formatter"
)

// Option configures conversion, decoding and encoding.
type Option func(*options) error

type options struct {
	maxDepth int    // 0 means unlimited
	indent   string // one nesting level of encoded output
}

func newOptions(opts []Option) (*options, error) {
	o := &options{indent: formatter.DefaultIndent}
	for _, opt := range opts {
		if err := opt(o); err != nil {
			return nil, err
		}
	}
	return o, nil
}

// MaxDepth limits how deeply the input may nest. Top-level properties are
// at depth 1. Input that nests deeper fails with an error wrapping
// ErrMaxDepth. By default nesting is unlimited.
//
// The depth n must be a positive integer.
func MaxDepth(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("yayaml: max depth must be a positive integer")
		}
		o.maxDepth = n
		return nil
	}
}

// Indent sets the number of spaces used for each nesting level when
// encoding. The default is 2.
//
// The indent n must be a positive integer.
func Indent(n int) Option {
	return func(o *options) error {
		if n <= 0 {
			return fmt.Errorf("yayaml: indent must be a positive integer")
		}
		o.indent = strings.Repeat(" ", n)
		return nil
	}
}

// IndentTabs indents each nesting level with one tab when encoding.
func IndentTabs() Option {
	return func(o *options) error {
		o.indent = "\t"
		return nil
	}
}
