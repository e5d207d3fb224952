package tree

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import "errors"

// ErrEmptyTree is returned if Walk is called with an empty tree.
var ErrEmptyTree = errors.New("cannot walk empty tree")

// SkipChildren may be returned by a Visitor's Enter function to signal that
// the children of the current node should not be visited. It is never
// returned by Walk.
var SkipChildren = errors.New("skip children of node")

// Visitor holds the callbacks for Walk. Either of them may be nil.
//
// Enter is called before the children of a node are visited, Leave after
// all of them have been visited. Leave is called for every node Enter has
// been called for, even if Enter returned SkipChildren.
type Visitor[T any] struct {
	Enter func(node *Node[T], depth int) error
	Leave func(node *Node[T], depth int) error
}

// Walk traverses the (sub-)tree starting at root in depth-first pre-order,
// calling the visitor's callbacks. Children are visited in order. The walk
// is synchronous; it stops at the first error returned by a callback
// (other than SkipChildren) and returns it.
//
// The children list of a node is copied before its children are visited,
// thus callbacks may detach nodes already visited.
func Walk[T any](root *Node[T], v Visitor[T]) error {
	if root == nil {
		return ErrEmptyTree
	}
	return walk(root, 0, v)
}

func walk[T any](node *Node[T], depth int, v Visitor[T]) error {
	descend := true
	if v.Enter != nil {
		if err := v.Enter(node, depth); err != nil {
			if err != SkipChildren {
				return err
			}
			descend = false
		}
	}
	if descend {
		for _, ch := range node.Children() {
			if err := walk(ch, depth+1, v); err != nil {
				return err
			}
		}
	}
	if v.Leave != nil {
		if err := v.Leave(node, depth); err != nil && err != SkipChildren {
			return err
		}
	}
	return nil
}
