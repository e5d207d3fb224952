package standard

import (
	"fmt"

	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/richtext/maybe"
)

// Characters used in the flattened text representation of a document.
const (
	ObjectReplacementChar rune = '\uFFFC' // stands in for embedded content
	LineSeparator         rune = '\u2028' // line break within a styled paragraph
	LineFeed              rune = '\n'
)

// PlaceholderKind classifies placeholders.
type PlaceholderKind uint8

// Kinds of placeholders. An attachment marker stands in for embedded
// content (images, video, rules), the break kinds for line breaks.
const (
	AttachmentMarker PlaceholderKind = iota + 1
	LineFeedBreak
	SeparatorBreak
)

func (k PlaceholderKind) String() string {
	switch k {
	case AttachmentMarker:
		return "attachment"
	case LineFeedBreak:
		return "line-feed"
	case SeparatorBreak:
		return "separator"
	}
	return fmt.Sprintf("PlaceholderKind(%d)", uint8(k))
}

// Placeholder is a single character standing in for the subtree of an
// element in a flattened text representation. It carries the formatting
// context it has been created with.
type Placeholder struct {
	Kind    PlaceholderKind
	Context style.Context
}

// Rune returns the character representing the placeholder.
func (p Placeholder) Rune() rune {
	switch p.Kind {
	case LineFeedBreak:
		return LineFeed
	case SeparatorBreak:
		return LineSeparator
	}
	return ObjectReplacementChar
}

func (p Placeholder) String() string {
	return string(p.Rune())
}

// IsBreak is true for line-break placeholders.
func (p Placeholder) IsBreak() bool {
	return p.Kind == LineFeedBreak || p.Kind == SeparatorBreak
}

// ImplicitRepresentation returns the placeholder for element types
// representing non-text content. For all other types it returns Nothing and
// callers are expected to descend into the element's children.
//
// A <br> occuring inside paragraph formatting becomes a line separator,
// otherwise a line feed. Users may type outside of any block-level element,
// and every line there has to become a paragraph of its own.
func (t ElementType) ImplicitRepresentation(ctx style.Context) maybe.Maybe[Placeholder] {
	switch t {
	case Img, Video, Hr:
		return maybe.Just(Placeholder{Kind: AttachmentMarker, Context: ctx})
	case Br:
		if ctx.HasParagraphStyle() {
			return maybe.Just(Placeholder{Kind: SeparatorBreak, Context: ctx})
		}
		return maybe.Just(Placeholder{Kind: LineFeedBreak, Context: ctx})
	}
	return maybe.Nothing[Placeholder]()
}

// ImplicitRepresentationFor is ImplicitRepresentation for a tag name.
// Non-standard names never have a placeholder.
func ImplicitRepresentationFor(name string, ctx style.Context) maybe.Maybe[Placeholder] {
	return maybe.AndThen(func(t ElementType) maybe.Maybe[Placeholder] {
		return t.ImplicitRepresentation(ctx)
	}, FromName(name))
}

// ImpliedStyle returns the character style a formatting element implies,
// e.g. font-weight: bold for <b> and <strong>. Equivalent elements imply the
// same style. For other element types the result is empty.
func (t ElementType) ImpliedStyle() style.Declarations {
	switch t {
	case B, Strong:
		return style.Declarations{{Key: "font-weight", Value: "bold"}}
	case I, Em:
		return style.Declarations{{Key: "font-style", Value: "italic"}}
	case U:
		return style.Declarations{{Key: "text-decoration", Value: "underline"}}
	case S, Strike, Del:
		return style.Declarations{{Key: "text-decoration", Value: "line-through"}}
	}
	return nil
}
