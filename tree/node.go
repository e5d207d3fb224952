package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sync"
)

/*
We manage a tree of mutable nodes. Each nodes carries a payload of type parameter T.
Nodes maintain a slice of children and a back-pointer to their parent. A parent
owns its children; the back-pointer is for navigation only.

The children slice is mutex-protected, parent links are not. Clients mutating
a shared tree from more than one goroutine have to serialize the mutations.
*/

// Node is the base type our tree is built of.
type Node[T any] struct {
	parent   *Node[T]         // parent node of this node
	children childrenSlice[T] // mutex-protected slice of children nodes
	Payload  T                // nodes may carry a payload of arbitrary type
}

// NewNode creates a new tree node with a given payload.
func NewNode[T any](payload T) *Node[T] {
	return &Node[T]{Payload: payload}
}

func (node *Node[T]) String() string {
	return fmt.Sprintf("(Node #ch=%d %v)", node.ChildCount(), node.Payload)
}

// AddChild appends a child node. If ch is currently attached to another
// parent, it will be detached from there first. If ch is node itself or one
// of its ancestors, the tree is left unchanged.
// It returns the parent node to allow for chaining.
func (node *Node[T]) AddChild(ch *Node[T]) *Node[T] {
	if ch != nil && !ch.IsAncestorOf(node) {
		ch.Isolate()
		node.children.insertChildAt(-1, ch, node)
	}
	return node
}

// InsertChildAt inserts a new child node at position i,
// shifting children at later positions. Positions beyond the end of the
// children list append, negative positions insert at the front.
// If ch is currently attached to another parent, it will be detached first.
// If ch is node itself or one of its ancestors, the tree is left unchanged.
// It returns the parent node to allow for chaining.
func (node *Node[T]) InsertChildAt(i int, ch *Node[T]) *Node[T] {
	if ch != nil && !ch.IsAncestorOf(node) {
		ch.Isolate()
		if i < 0 {
			i = 0
		}
		node.children.insertChildAt(i, ch, node)
	}
	return node
}

// IsAncestorOf is true if node is n or lies on the parent chain of n.
func (node *Node[T]) IsAncestorOf(n *Node[T]) bool {
	if node == nil {
		return false
	}
	for ; n != nil; n = n.parent {
		if n == node {
			return true
		}
	}
	return false
}

// RemoveChildAt detaches the child at position i and returns it.
// Returns nil if there is no child at position i.
func (node *Node[T]) RemoveChildAt(i int) *Node[T] {
	return node.children.removeAt(i)
}

// Parent returns the parent node or nil (for the root of the tree).
func (node *Node[T]) Parent() *Node[T] {
	if node == nil {
		return nil
	}
	return node.parent
}

// Isolate removes a node from its parent.
// Isolate returns the isolated node.
func (node *Node[T]) Isolate() *Node[T] {
	if node != nil && node.parent != nil {
		node.parent.children.remove(node)
	}
	return node
}

// ChildCount returns the number of children-nodes for a node
// (concurrency-safe).
func (node *Node[T]) ChildCount() int {
	return node.children.length()
}

// Child is a concurrency-safe way to get a children-node of a node.
func (node *Node[T]) Child(n int) (*Node[T], bool) {
	ch := node.children.child(n)
	return ch, ch != nil
}

// Children returns a copy of the slice of children of a node.
func (node *Node[T]) Children() []*Node[T] {
	return node.children.asSlice()
}

// IndexOfChild returns the index of a child within the list of children
// of its parent, or -1.
func (node *Node[T]) IndexOfChild(ch *Node[T]) int {
	return node.children.indexOf(ch)
}

// --- Slices of concurrency-safe sets of children ----------------------

type childrenSlice[T any] struct {
	sync.RWMutex
	slice []*Node[T]
}

func (chs *childrenSlice[T]) length() int {
	chs.RLock()
	defer chs.RUnlock()
	return len(chs.slice)
}

// insertChildAt inserts child at position i; i < 0 or i ≥ len appends.
func (chs *childrenSlice[T]) insertChildAt(i int, child *Node[T], parent *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	if i < 0 || i >= len(chs.slice) {
		chs.slice = append(chs.slice, child)
	} else {
		chs.slice = append(chs.slice, nil)   // make room for one child
		copy(chs.slice[i+1:], chs.slice[i:]) // shift i+1..n
		chs.slice[i] = child
	}
	child.parent = parent
}

func (chs *childrenSlice[T]) remove(node *Node[T]) {
	chs.Lock()
	defer chs.Unlock()
	for i, ch := range chs.slice {
		if ch == node {
			chs.cut(i)
			break
		}
	}
}

func (chs *childrenSlice[T]) removeAt(i int) *Node[T] {
	chs.Lock()
	defer chs.Unlock()
	if i < 0 || i >= len(chs.slice) {
		return nil
	}
	return chs.cut(i)
}

// cut removes the child at i. Caller must hold the write lock.
func (chs *childrenSlice[T]) cut(i int) *Node[T] {
	ch := chs.slice[i]
	copy(chs.slice[i:], chs.slice[i+1:])
	chs.slice[len(chs.slice)-1] = nil
	chs.slice = chs.slice[:len(chs.slice)-1]
	ch.parent = nil
	return ch
}

func (chs *childrenSlice[T]) child(n int) *Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	if n < 0 || n >= len(chs.slice) {
		return nil
	}
	return chs.slice[n]
}

func (chs *childrenSlice[T]) indexOf(node *Node[T]) int {
	chs.RLock()
	defer chs.RUnlock()
	for i, ch := range chs.slice {
		if ch == node {
			return i
		}
	}
	return -1
}

func (chs *childrenSlice[T]) asSlice() []*Node[T] {
	chs.RLock()
	defer chs.RUnlock()
	children := make([]*Node[T], len(chs.slice))
	copy(children, chs.slice)
	return children
}
