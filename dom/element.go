package dom

import (
	"strings"

	"github.com/npillmayer/richtext/dom/standard"
	"github.com/npillmayer/richtext/maybe"
	"github.com/npillmayer/richtext/tree"
)

// ElementNode is an element of a document tree: a tag name, an ordered list
// of attributes and an ordered list of children. An element owns its
// children; a child may have at most one parent.
//
// The name need not be a standard HTML element name.
type ElementNode struct {
	tn         tree.Node[Node]
	name       string
	attributes []Attribute
}

// NewElement creates an element node. The name is lower-cased. Children
// currently attached to another element are moved.
func NewElement(name string, attributes []Attribute, children ...Node) *ElementNode {
	el := &ElementNode{name: NormalizeName(name)}
	el.tn.Payload = el
	if len(attributes) > 0 {
		el.attributes = make([]Attribute, len(attributes))
		copy(el.attributes, attributes)
	}
	for _, ch := range children {
		el.AppendChild(ch)
	}
	return el
}

// Name returns the lower-case tag name.
func (el *ElementNode) Name() string { return el.name }

func (el *ElementNode) Kind() Kind                 { return ElementKind }
func (el *ElementNode) Parent() *ElementNode       { return parentElement(&el.tn) }
func (el *ElementNode) treeNode() *tree.Node[Node] { return &el.tn }

// IsNodeType is true if name, lower-cased, is the element's name.
func (el *ElementNode) IsNodeType(name string) bool {
	return el.name == NormalizeName(name)
}

// Equals is true for elements with equal names, equal attributes (pairwise,
// in order) and equal children (recursively, pairwise, in order).
func (el *ElementNode) Equals(other Node) bool {
	o, ok := other.(*ElementNode)
	if !ok || el == nil || o == nil {
		return false
	}
	if el == o {
		return true
	}
	if el.name != o.name || !attributesEqual(el.attributes, o.attributes) {
		return false
	}
	if el.tn.ChildCount() != o.tn.ChildCount() {
		return false
	}
	ochildren := o.tn.Children()
	for i, ch := range el.tn.Children() {
		if !ch.Payload.Equals(ochildren[i].Payload) {
			return false
		}
	}
	return true
}

func (el *ElementNode) String() string {
	var b strings.Builder
	b.WriteString("<")
	b.WriteString(el.name)
	for _, a := range el.attributes {
		b.WriteString(" ")
		b.WriteString(a.String())
	}
	b.WriteString(">")
	return b.String()
}

// --- Classification --------------------------------------------------------

// StandardType returns the standard element type for the element's name,
// if there is one.
func (el *ElementNode) StandardType() maybe.Maybe[standard.ElementType] {
	return standard.FromName(el.name)
}

// IsBlockLevel is true for block-level standard elements.
func (el *ElementNode) IsBlockLevel() bool {
	return standard.IsBlockLevelNodeName(el.name)
}

// IsEquivalent is true if an element named name is interchangeable with el
// for formatting purposes, e.g. <b> and <strong>.
func (el *ElementNode) IsEquivalent(name string) bool {
	name = NormalizeName(name)
	for _, n := range standard.EquivalentNamesFor(el.name) {
		if n == name {
			return true
		}
	}
	return false
}

// --- Attributes ------------------------------------------------------------

// Attributes returns a copy of the element's attributes.
func (el *ElementNode) Attributes() []Attribute {
	r := make([]Attribute, len(el.attributes))
	copy(r, el.attributes)
	return r
}

// Attribute returns the attribute with a given name.
func (el *ElementNode) Attribute(name string) (Attribute, bool) {
	name = NormalizeName(name)
	for _, a := range el.attributes {
		if a.Name == name {
			return a, true
		}
	}
	return Attribute{}, false
}

// SetAttribute replaces the attribute with the same name, keeping its
// position, or appends a.
func (el *ElementNode) SetAttribute(a Attribute) {
	a.Name = NormalizeName(a.Name)
	for i := range el.attributes {
		if el.attributes[i].Name == a.Name {
			tracer().Debugf("replacing attribute %s of %s", a.Name, el.name)
			el.attributes[i] = a
			return
		}
	}
	el.attributes = append(el.attributes, a)
}

// RemoveAttribute removes the attribute with a given name. It returns false
// if there was none.
func (el *ElementNode) RemoveAttribute(name string) bool {
	name = NormalizeName(name)
	for i := range el.attributes {
		if el.attributes[i].Name == name {
			el.attributes = append(el.attributes[:i], el.attributes[i+1:]...)
			return true
		}
	}
	return false
}

// --- Children --------------------------------------------------------------

// ChildCount returns the number of children.
func (el *ElementNode) ChildCount() int {
	return el.tn.ChildCount()
}

// Child returns the child at position i, or nil.
func (el *ElementNode) Child(i int) Node {
	if ch, ok := el.tn.Child(i); ok {
		return ch.Payload
	}
	return nil
}

// Children returns the children of el, in order.
func (el *ElementNode) Children() []Node {
	chs := el.tn.Children()
	r := make([]Node, len(chs))
	for i, ch := range chs {
		r[i] = ch.Payload
	}
	return r
}

// IndexOf returns the position of ch within el's children, or -1.
func (el *ElementNode) IndexOf(ch Node) int {
	if isNil(ch) {
		return -1
	}
	return el.tn.IndexOfChild(ch.treeNode())
}

// AppendChild appends ch to the children of el, detaching it from a previous
// parent. It returns el to allow for chaining.
func (el *ElementNode) AppendChild(ch Node) *ElementNode {
	if el.acceptsChild(ch) {
		el.tn.AddChild(ch.treeNode())
	}
	return el
}

// InsertChildAt inserts ch at position i, detaching it from a previous
// parent. Positions out of range are clamped.
func (el *ElementNode) InsertChildAt(i int, ch Node) *ElementNode {
	if el.acceptsChild(ch) {
		el.tn.InsertChildAt(i, ch.treeNode())
	}
	return el
}

// acceptsChild refuses to make el or one of its ancestors a child of el.
func (el *ElementNode) acceptsChild(ch Node) bool {
	if isNil(ch) {
		return false
	}
	if ch.treeNode().IsAncestorOf(&el.tn) {
		tracer().Errorf("cannot insert %s into %s: would create a cycle", ch, el)
		return false
	}
	return true
}

// RemoveChild detaches ch from el. It returns false if ch is not a child
// of el.
func (el *ElementNode) RemoveChild(ch Node) bool {
	i := el.IndexOf(ch)
	if i < 0 {
		return false
	}
	return el.tn.RemoveChildAt(i) != nil
}

// Text returns the concatenated text of all descendant text nodes.
func (el *ElementNode) Text() string {
	var b strings.Builder
	_ = Walk(el, func(n Node, _ int) error {
		if t, ok := n.(*TextNode); ok {
			b.WriteString(t.text)
		}
		return nil
	}, nil)
	return b.String()
}
