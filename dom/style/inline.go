package style

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aymerick/douceur/parser"
)

// ErrEmptyPropertyName is returned for declarations without a property name.
var ErrEmptyPropertyName = errors.New("style declaration without property name")

// Declarations is the content of an inline style attribute, e.g.
//
//     <p style="text-align: center; color: red">
//
// Declarations keep the order of the source text. Two sets of declarations
// are equal only if they list the same properties in the same order.
type Declarations []KeyValue

// ParseDeclarations parses the text of an inline style attribute.
// Property names are lower-cased, values are kept as written,
// "!important" is kept as a suffix of the value.
func ParseDeclarations(text string) (Declarations, error) {
	// douceur drops the value of a last declaration not terminated by ';'
	src := strings.TrimSpace(text)
	if src != "" && !strings.HasSuffix(src, ";") {
		src += ";"
	}
	decls, err := parser.ParseDeclarations(src)
	if err != nil {
		tracer().Debugf("cannot parse inline style %q: %v", text, err)
		return nil, fmt.Errorf("inline style: %w", err)
	}
	r := make(Declarations, 0, len(decls))
	for _, d := range decls {
		key := strings.ToLower(strings.TrimSpace(d.Property))
		if key == "" {
			return nil, ErrEmptyPropertyName
		}
		value := strings.TrimSpace(d.Value)
		if d.Important {
			value += " !important"
		}
		r = append(r, KeyValue{Key: key, Value: Property(value)})
	}
	return r, nil
}

// Equal compares two sets of declarations element-wise.
func (decls Declarations) Equal(other Declarations) bool {
	if len(decls) != len(other) {
		return false
	}
	for i := range decls {
		if decls[i] != other[i] {
			return false
		}
	}
	return true
}

// Get returns the value of the last declaration for key.
func (decls Declarations) Get(key string) (Property, bool) {
	for i := len(decls) - 1; i >= 0; i-- {
		if decls[i].Key == key {
			return decls[i].Value, true
		}
	}
	return NullStyle, false
}

// String serializes the declarations into inline style syntax.
func (decls Declarations) String() string {
	var b strings.Builder
	for i, kv := range decls {
		if i > 0 {
			b.WriteString("; ")
		}
		b.WriteString(kv.String())
	}
	return b.String()
}

// Expanded returns the declarations with compound properties
// (currently margin and padding) split into their components.
// Compound properties which fail to split are dropped.
func (decls Declarations) Expanded() Declarations {
	r := make(Declarations, 0, len(decls))
	for _, kv := range decls {
		switch kv.Key {
		case "margin", "padding":
			parts, err := SplitCompoundProperty(kv.Key, kv.Value)
			if err != nil {
				tracer().Debugf("dropping style %s: %v", kv, err)
				continue
			}
			r = append(r, parts...)
		default:
			r = append(r, kv)
		}
	}
	return r
}
