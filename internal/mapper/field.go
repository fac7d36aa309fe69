package mapper

import (
	"reflect"
	"strings"
	"sync"
)

// Field is a struct field that takes part in encoding and decoding.
type Field struct {
	Name      string // property name, from the yayaml tag or the field name
	Index     []int
	OmitEmpty bool
	depth     int
}

// StructFields lists the fields of a struct type in declaration order.
type StructFields struct {
	List   []*Field
	byName map[string]*Field // exact names, then lower-cased names
}

// Lookup finds the field for a property name. It first attempts a
// case-sensitive match, then falls back to a case-insensitive one.
func (s *StructFields) Lookup(name string) *Field {
	if f, ok := s.byName[name]; ok {
		return f
	}
	return s.byName[strings.ToLower(name)]
}

// fieldCache caches the fields of struct types.
var fieldCache sync.Map // map[reflect.Type]*StructFields

// Fields returns the fields of the struct type t. Unexported fields and
// fields tagged `yayaml:"-"` are skipped; untagged embedded structs and
// pointers to structs are flattened, with shallower fields taking
// precedence. Unexported embedded pointers are skipped since decoding
// cannot allocate them.
func Fields(t reflect.Type) *StructFields {
	if f, ok := fieldCache.Load(t); ok {
		return f.(*StructFields)
	}

	sf := &StructFields{byName: make(map[string]*Field)}
	visiting := make(map[reflect.Type]bool)
	var walk func(t reflect.Type, idx []int)
	walk = func(t reflect.Type, idx []int) {
		if visiting[t] {
			return
		}
		visiting[t] = true
		defer delete(visiting, t)

		for i := 0; i < t.NumField(); i++ {
			f := t.Field(i)
			tag := f.Tag.Get("yayaml")
			if tag == "-" {
				continue
			}
			name, opts, _ := strings.Cut(tag, ",")
			index := append(append([]int(nil), idx...), i)

			if f.Anonymous && name == "" {
				ft := f.Type
				if ft.Kind() == reflect.Pointer {
					ft = ft.Elem()
					if ft.Kind() == reflect.Struct && !f.IsExported() {
						continue
					}
				}
				if ft.Kind() == reflect.Struct {
					walk(ft, index)
					continue
				}
			}
			if !f.IsExported() {
				continue
			}

			field := &Field{Name: f.Name, Index: index, depth: len(idx)}
			if name != "" {
				field.Name = name
			}
			for opts != "" {
				var opt string
				opt, opts, _ = strings.Cut(opts, ",")
				if opt == "omitempty" {
					field.OmitEmpty = true
				}
			}
			sf.add(field)
		}
	}
	walk(t, nil)

	sf.index()
	fieldCache.Store(t, sf)
	return sf
}

// add records f unless a shallower field already claimed its name.
func (s *StructFields) add(f *Field) {
	if prev, ok := s.byName[f.Name]; ok {
		if prev.depth <= f.depth {
			return
		}
		for i, l := range s.List {
			if l == prev {
				s.List = append(s.List[:i], s.List[i+1:]...)
				break
			}
		}
	}
	s.byName[f.Name] = f
	s.List = append(s.List, f)
}

// index adds lower-cased names for case-insensitive lookups without
// shadowing an exact name.
func (s *StructFields) index() {
	for _, f := range s.List {
		lower := strings.ToLower(f.Name)
		if _, ok := s.byName[lower]; !ok {
			s.byName[lower] = f
		}
	}
}
