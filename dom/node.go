package dom

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"strconv"

	"github.com/npillmayer/richtext/tree"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// Kind discriminates the variants of Node.
type Kind uint8

// Node kinds.
const (
	TextKind Kind = iota + 1
	ElementKind
	CommentKind
)

func (k Kind) String() string {
	switch k {
	case TextKind:
		return "text"
	case ElementKind:
		return "element"
	case CommentKind:
		return "comment"
	}
	return fmt.Sprintf("Kind(%d)", uint8(k))
}

// Node is anything which may appear in a document tree. It is implemented by
// *TextNode, *ElementNode and *CommentNode only.
type Node interface {
	Kind() Kind
	// Parent returns the enclosing element or nil. The parent owns its
	// children, the back-reference is for navigation only.
	Parent() *ElementNode
	// Equals compares structurally: node kinds, names, texts and attributes
	// have to match, and children have to be equal pairwise, in order.
	Equals(other Node) bool
	// IsNodeType checks the node's name. Element names are compared
	// case-insensitively, text and comment nodes are named "#text" and
	// "#comment".
	IsNodeType(name string) bool
	String() string
	treeNode() *tree.Node[Node]
}

// Names of non-element nodes, as in the W3C DOM.
const (
	TextNodeName    = "#text"
	CommentNodeName = "#comment"
)

// Equal compares two nodes structurally. Two nil nodes are equal.
func Equal(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return isNil(a) && isNil(b)
	}
	return a.Equals(b)
}

// Same is true if a and b are the very same node instance. Structurally equal
// nodes constructed independently are not the same.
func Same(a, b Node) bool {
	if isNil(a) || isNil(b) {
		return false
	}
	return a.treeNode() == b.treeNode()
}

// Detach removes a node from its parent and returns it.
func Detach(n Node) Node {
	if !isNil(n) {
		n.treeNode().Isolate()
	}
	return n
}

// NormalizeName lower-cases tag and attribute names.
func NormalizeName(name string) string {
	return cases.Lower(language.Und).String(name)
}

func isNil(n Node) bool {
	switch x := n.(type) {
	case nil:
		return true
	case *TextNode:
		return x == nil
	case *ElementNode:
		return x == nil
	case *CommentNode:
		return x == nil
	}
	return false
}

func parentElement(tn *tree.Node[Node]) *ElementNode {
	p := tn.Parent()
	if p == nil {
		return nil
	}
	el, _ := p.Payload.(*ElementNode)
	return el
}

// --- Text ------------------------------------------------------------------

// TextNode is a leaf node carrying character data.
type TextNode struct {
	tn   tree.Node[Node]
	text string
}

// NewText creates a text node.
func NewText(text string) *TextNode {
	t := &TextNode{text: text}
	t.tn.Payload = t
	return t
}

// Text returns the character data.
func (t *TextNode) Text() string { return t.text }

// SetText replaces the character data.
func (t *TextNode) SetText(text string) { t.text = text }

func (t *TextNode) Kind() Kind                  { return TextKind }
func (t *TextNode) Parent() *ElementNode        { return parentElement(&t.tn) }
func (t *TextNode) IsNodeType(name string) bool { return name == TextNodeName }
func (t *TextNode) treeNode() *tree.Node[Node]  { return &t.tn }

func (t *TextNode) Equals(other Node) bool {
	o, ok := other.(*TextNode)
	return ok && t != nil && o != nil && t.text == o.text
}

func (t *TextNode) String() string {
	return strconv.Quote(t.text)
}

// --- Comment ---------------------------------------------------------------

// CommentNode is a leaf node holding the text of an HTML comment.
type CommentNode struct {
	tn   tree.Node[Node]
	text string
}

// NewComment creates a comment node.
func NewComment(text string) *CommentNode {
	c := &CommentNode{text: text}
	c.tn.Payload = c
	return c
}

// Text returns the comment's text.
func (c *CommentNode) Text() string { return c.text }

func (c *CommentNode) Kind() Kind                  { return CommentKind }
func (c *CommentNode) Parent() *ElementNode        { return parentElement(&c.tn) }
func (c *CommentNode) IsNodeType(name string) bool { return name == CommentNodeName }
func (c *CommentNode) treeNode() *tree.Node[Node]  { return &c.tn }

func (c *CommentNode) Equals(other Node) bool {
	o, ok := other.(*CommentNode)
	return ok && c != nil && o != nil && c.text == o.text
}

func (c *CommentNode) String() string {
	return "<!--" + c.text + "-->"
}
