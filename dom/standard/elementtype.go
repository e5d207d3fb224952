package standard

import (
	"github.com/npillmayer/richtext/maybe"
	"golang.org/x/net/html/atom"
)

// ElementType is a standard HTML element known to the editor.
//
// Element nodes carry their tag name as a plain string, as documents may
// contain non-standard elements. The element type is derived from the name
// on demand with FromName.
type ElementType atom.Atom

// The catalog of standard element types.
const (
	A          = ElementType(atom.A)
	Address    = ElementType(atom.Address)
	B          = ElementType(atom.B)
	Br         = ElementType(atom.Br)
	Blockquote = ElementType(atom.Blockquote)
	Dd         = ElementType(atom.Dd)
	Del        = ElementType(atom.Del)
	Div        = ElementType(atom.Div)
	Dl         = ElementType(atom.Dl)
	Dt         = ElementType(atom.Dt)
	Em         = ElementType(atom.Em)
	Fieldset   = ElementType(atom.Fieldset)
	Form       = ElementType(atom.Form)
	H1         = ElementType(atom.H1)
	H2         = ElementType(atom.H2)
	H3         = ElementType(atom.H3)
	H4         = ElementType(atom.H4)
	H5         = ElementType(atom.H5)
	H6         = ElementType(atom.H6)
	Hr         = ElementType(atom.Hr)
	I          = ElementType(atom.I)
	Img        = ElementType(atom.Img)
	Li         = ElementType(atom.Li)
	Noscript   = ElementType(atom.Noscript)
	Ol         = ElementType(atom.Ol)
	P          = ElementType(atom.P)
	Pre        = ElementType(atom.Pre)
	S          = ElementType(atom.S)
	Span       = ElementType(atom.Span)
	Strike     = ElementType(atom.Strike)
	Strong     = ElementType(atom.Strong)
	Table      = ElementType(atom.Table)
	Tbody      = ElementType(atom.Tbody)
	Td         = ElementType(atom.Td)
	Tfoot      = ElementType(atom.Tfoot)
	Th         = ElementType(atom.Th)
	Thead      = ElementType(atom.Thead)
	Tr         = ElementType(atom.Tr)
	U          = ElementType(atom.U)
	Ul         = ElementType(atom.Ul)
	Video      = ElementType(atom.Video)
)

var catalog = [...]ElementType{
	A, Address, B, Br, Blockquote, Dd, Del, Div, Dl, Dt, Em, Fieldset, Form,
	H1, H2, H3, H4, H5, H6, Hr, I, Img, Li, Noscript, Ol, P, Pre, S, Span,
	Strike, Strong, Table, Tbody, Td, Tfoot, Th, Thead, Tr, U, Ul, Video,
}

var known = func() map[ElementType]bool {
	m := make(map[ElementType]bool, len(catalog))
	for _, t := range catalog {
		m[t] = true
	}
	return m
}()

var blockLevel = map[ElementType]bool{
	Address: true, Blockquote: true, Div: true, Dl: true, Fieldset: true,
	Form: true, H1: true, H2: true, H3: true, H4: true, H5: true, H6: true,
	Hr: true, Li: true, Noscript: true, Ol: true, P: true, Pre: true,
	Table: true, Tr: true, Td: true, Ul: true,
}

// All returns every standard element type, in catalog order.
func All() []ElementType {
	r := make([]ElementType, len(catalog))
	copy(r, catalog[:])
	return r
}

// FromName looks up the element type for a tag name. The name has to match
// exactly, i.e. it is expected to be lower case. Non-standard names
// result in Nothing.
func FromName(name string) maybe.Maybe[ElementType] {
	t := ElementType(atom.Lookup([]byte(name)))
	return maybe.Of(t, t != 0 && known[t])
}

// String returns the tag name of the element type.
func (t ElementType) String() string {
	return atom.Atom(t).String()
}

// IsBlockLevel is true for element types which, per HTML semantics, force a
// paragraph boundary around themselves.
func (t ElementType) IsBlockLevel() bool {
	return blockLevel[t]
}

// IsBlockLevelNodeName is true if name denotes a block-level standard element.
// Non-standard names are never block-level.
func IsBlockLevelNodeName(name string) bool {
	t, ok := FromName(name).Get()
	return ok && t.IsBlockLevel()
}

// BlockLevelTypes returns all block-level element types, in catalog order.
func BlockLevelTypes() []ElementType {
	var r []ElementType
	for _, t := range catalog {
		if t.IsBlockLevel() {
			r = append(r, t)
		}
	}
	return r
}

// EquivalentNames returns the tag names which are interchangeable with t
// when matching formatting, e.g. "b" and "strong". The own name is always
// the first entry.
func (t ElementType) EquivalentNames() []string {
	switch t {
	case H1:
		return []string{H1.String()}
	case Strong:
		return []string{Strong.String(), B.String()}
	case Em:
		return []string{Em.String(), I.String()}
	case B:
		return []string{B.String(), Strong.String()}
	case I:
		return []string{I.String(), Em.String()}
	case S:
		return []string{S.String(), Strike.String(), Del.String()}
	case Del:
		return []string{Del.String(), Strike.String(), S.String()}
	case Strike:
		return []string{Strike.String(), Del.String(), S.String()}
	}
	return []string{t.String()}
}

// IsEquivalent is true if name is one of t's equivalent names.
func (t ElementType) IsEquivalent(name string) bool {
	for _, n := range t.EquivalentNames() {
		if n == name {
			return true
		}
	}
	return false
}

// EquivalentNamesFor returns the equivalent names for a tag name. For
// non-standard names this is just the name itself.
func EquivalentNamesFor(name string) []string {
	if t, ok := FromName(name).Get(); ok {
		return t.EquivalentNames()
	}
	return []string{name}
}
