package flatten

import (
	"github.com/npillmayer/richtext/dom/standard"
	"github.com/npillmayer/richtext/dom/style"
)

// Option configures Flatten.
type Option func(*options)

type options struct {
	separator     rune          // inserted between paragraphs
	impliedStyles bool          // let <b>, <em>, … contribute character styles
	context       style.Context // formatting context of the root
}

var defaultOptions = options{
	separator:     standard.LineFeed,
	impliedStyles: true,
}

// WithParagraphSeparator sets the character inserted between paragraphs.
// The default is '\n'.
func WithParagraphSeparator(r rune) Option {
	return func(o *options) {
		o.separator = r
	}
}

// WithImpliedStyles switches character styles implied by formatting
// elements on or off. Default is on.
func WithImpliedStyles(on bool) Option {
	return func(o *options) {
		o.impliedStyles = on
	}
}

// WithContext sets the formatting context the root of the tree is
// flattened in, e.g. when flattening a fragment pasted into a paragraph.
func WithContext(ctx style.Context) Option {
	return func(o *options) {
		o.context = ctx
	}
}
