/*
Package style holds style properties for rich-text documents.

Style properties come in two flavours: properties of a whole paragraph
(alignment, indentation, margins) and properties of a run of characters
(font weight, decoration, color). The editor's flattened text representation
needs to keep both apart, which is what type Context is for.

Inline style attributes are parsed with douceur
(https://github.com/aymerick/douceur). CSS cascading and computation of
styles is out of scope for this package.

___________________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/
package style

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer will return a tracer. We are tracing to 'richtext.style'
func tracer() tracing.Trace {
	return tracing.Select("richtext.style")
}
