package dom

// Predicate matches nodes of a document tree.
type Predicate func(Node) bool

// NodeIsText is a predicate to match text-nodes.
var NodeIsText Predicate = func(n Node) bool {
	return n.Kind() == TextKind
}

// NodeIsBlockLevel is a predicate to match block-level elements.
var NodeIsBlockLevel Predicate = func(n Node) bool {
	el, ok := n.(*ElementNode)
	return ok && el.IsBlockLevel()
}

// NodeIsEquivalentTo returns a predicate matching elements which are
// interchangeable with an element called name, e.g. both <b> and <strong>
// for name "b".
func NodeIsEquivalentTo(name string) Predicate {
	return func(n Node) bool {
		el, ok := n.(*ElementNode)
		return ok && el.IsEquivalent(name)
	}
}

// FindAll collects all nodes under root (including root) matching pred,
// in document order.
func FindAll(root Node, pred Predicate) []Node {
	var r []Node
	_ = Walk(root, func(n Node, _ int) error {
		if pred(n) {
			r = append(r, n)
		}
		return nil
	}, nil)
	return r
}

// EnclosingBlock returns the nearest block-level ancestor of n, or nil.
func EnclosingBlock(n Node) *ElementNode {
	if isNil(n) {
		return nil
	}
	for p := n.Parent(); p != nil; p = p.Parent() {
		if p.IsBlockLevel() {
			return p
		}
	}
	return nil
}
