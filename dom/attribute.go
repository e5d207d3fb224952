package dom

import (
	"strconv"

	"github.com/npillmayer/richtext/dom/style"
)

// AttrValue is the value of an attribute. It is one of
//
//     None          attribute without a value, e.g. <input disabled>
//     StringValue   plain text value
//     StyleValue    parsed inline style, used for the "style" attribute
//
type AttrValue interface {
	Equal(other AttrValue) bool
	String() string
	isAttrValue()
}

type noneValue struct{}

// None is the value of attributes which carry no value.
var None AttrValue = noneValue{}

func (noneValue) isAttrValue()    {}
func (noneValue) String() string { return "" }
func (noneValue) Equal(other AttrValue) bool {
	_, ok := valueOrNone(other).(noneValue)
	return ok
}

// StringValue is a plain attribute value.
type StringValue string

func (StringValue) isAttrValue()     {}
func (v StringValue) String() string { return string(v) }
func (v StringValue) Equal(other AttrValue) bool {
	o, ok := other.(StringValue)
	return ok && o == v
}

// StyleValue is an inline style attribute value.
type StyleValue style.Declarations

func (StyleValue) isAttrValue()     {}
func (v StyleValue) String() string { return style.Declarations(v).String() }
func (v StyleValue) Equal(other AttrValue) bool {
	o, ok := other.(StyleValue)
	return ok && style.Declarations(v).Equal(style.Declarations(o))
}

func valueOrNone(v AttrValue) AttrValue {
	if v == nil {
		return None
	}
	return v
}

// Attribute is a named value attached to an element. Attributes are values;
// a nil Value is treated as None.
type Attribute struct {
	Name  string
	Value AttrValue
}

// NewAttribute creates an attribute without a value.
func NewAttribute(name string) Attribute {
	return Attribute{Name: NormalizeName(name), Value: None}
}

// StringAttribute creates an attribute with a plain text value.
func StringAttribute(name, value string) Attribute {
	return Attribute{Name: NormalizeName(name), Value: StringValue(value)}
}

// StyleAttribute creates an attribute with an inline style value.
func StyleAttribute(name string, decls style.Declarations) Attribute {
	return Attribute{Name: NormalizeName(name), Value: StyleValue(decls)}
}

// Equal is true if names and values of both attributes are equal.
func (a Attribute) Equal(other Attribute) bool {
	return a.Name == other.Name && valueOrNone(a.Value).Equal(valueOrNone(other.Value))
}

// HasValue is false for attributes with value None.
func (a Attribute) HasValue() bool {
	_, isNone := valueOrNone(a.Value).(noneValue)
	return !isNone
}

func (a Attribute) String() string {
	if !a.HasValue() {
		return a.Name
	}
	return a.Name + "=" + strconv.Quote(a.Value.String())
}

func attributesEqual(a, b []Attribute) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}
