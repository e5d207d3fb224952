package dom

import (
	"github.com/npillmayer/richtext/tree"
)

// SkipChildren may be returned from an enter function to skip the children
// of the current node.
var SkipChildren = tree.SkipChildren

// WalkFunc is called for nodes during Walk.
type WalkFunc func(n Node, depth int) error

// Walk traverses the tree under root depth-first, calling enter before and
// leave after the children of a node are visited. Either function may be
// nil. Walk stops at the first error and returns it.
func Walk(root Node, enter, leave WalkFunc) error {
	if isNil(root) {
		return tree.ErrEmptyTree
	}
	v := tree.Visitor[Node]{}
	if enter != nil {
		v.Enter = func(tn *tree.Node[Node], depth int) error {
			return enter(tn.Payload, depth)
		}
	}
	if leave != nil {
		v.Leave = func(tn *tree.Node[Node], depth int) error {
			return leave(tn.Payload, depth)
		}
	}
	return tree.Walk(root.treeNode(), v)
}

// Clone creates a deep copy of n. The copy is structurally equal to n, but
// has no parent and shares no nodes with n.
func Clone(n Node) Node {
	switch x := n.(type) {
	case *TextNode:
		if x != nil {
			return NewText(x.text)
		}
	case *CommentNode:
		if x != nil {
			return NewComment(x.text)
		}
	case *ElementNode:
		if x != nil {
			el := NewElement(x.name, x.attributes)
			for _, ch := range x.Children() {
				el.AppendChild(Clone(ch))
			}
			return el
		}
	}
	return nil
}

// Root returns the outermost ancestor of n, or n itself.
func Root(n Node) Node {
	if isNil(n) {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		n = p
	}
	return n
}
