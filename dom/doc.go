/*
Package dom implements the document tree of the rich-text editor.

Overview

A document is a tree of element nodes, text nodes and comment nodes. It is
a model of HTML content independent of any toolkit: a parser produces it,
editing operations change it, and a flattening step turns it into text with
placeholder characters for embedded content.

Element names are free-form; standard HTML semantics (block-level elements,
formatting equivalence, placeholders) are looked up from the catalog in
package standard on demand and are never stored with a node.

Equality

Nodes support two kinds of equality. Equal (and Node.Equals) compares
trees structurally: names, attributes and children, recursively and in
order. This is what diffing and undo need. Same compares identity: two
trees built independently may be equal, but are never the same.

Tree Implementation

Nodes are built by composition on top of the general purpose tree type of
package tree: every node includes a generic tree node, whose payload links
back to the document node. A parent owns its children; children hold a
back-pointer to their parent for navigation. Mutating a tree is not
synchronized, clients sharing a tree between goroutines have to make sure
there is a single writer.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package dom

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'richtext.dom'
func tracer() tracing.Trace {
	return tracing.Select("richtext.dom")
}
