/*
Package standard is a catalog of the standard HTML elements an editor has to
know about, together with their semantics:

- which elements are block-level, i.e. delimit paragraphs,

- which elements are interchangeable for formatting purposes
(<b> and <strong>, <i> and <em>, <s>, <strike> and <del>),

- which elements are represented by a single placeholder character in a
flattened text representation (<img>, <video>, <hr>, <br>).

All queries are total: a tag name not in the catalog is inline, equivalent
only to itself, and has no placeholder.

Element types are atoms of golang.org/x/net/html/atom, thus tag names
produced by the x/net/html parser may be classified without string
comparison.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package standard
