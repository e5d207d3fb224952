/*
Package flatten turns a document tree into a flat text, the representation
text views and layout engines of an editor work with.

Embedded content and line breaks are replaced by single placeholder
characters, paragraphs are separated by a separator character, and every
character carries the formatting context it is to be rendered with.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package flatten

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'richtext.flatten'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.flatten")
}
