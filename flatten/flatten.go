package flatten

import (
	"strings"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/standard"
	"github.com/npillmayer/richtext/dom/style"
)

// Run is a range of characters of a flattened text sharing one formatting
// context. Start and End are rune offsets, End is exclusive.
type Run struct {
	Start, End int
	Context    style.Context
}

// Attachment records an element represented by an attachment marker.
type Attachment struct {
	Offset      int // rune offset of the marker
	Element     *dom.ElementNode
	Placeholder standard.Placeholder
}

// Text is the flattened representation of a document tree.
type Text struct {
	text        []rune
	Runs        []Run
	Attachments []Attachment
}

// String returns the characters of the text, including placeholders.
func (t *Text) String() string {
	return string(t.text)
}

// Len returns the number of runes in the text.
func (t *Text) Len() int {
	return len(t.text)
}

// ContextAt returns the formatting context at a rune offset.
func (t *Text) ContextAt(offset int) (style.Context, bool) {
	for _, r := range t.Runs {
		if offset >= r.Start && offset < r.End {
			return r.Context, true
		}
	}
	return style.Context{}, false
}

func (t *Text) append(s string, ctx style.Context) {
	if s == "" {
		return
	}
	start := len(t.text)
	t.text = append(t.text, []rune(s)...)
	if n := len(t.Runs); n > 0 && t.Runs[n-1].Context == ctx && t.Runs[n-1].End == start {
		t.Runs[n-1].End = len(t.text)
		return
	}
	t.Runs = append(t.Runs, Run{Start: start, End: len(t.text), Context: ctx})
}

func (t *Text) endsWithBreak() bool {
	if len(t.text) == 0 {
		return true
	}
	switch t.text[len(t.text)-1] {
	case standard.LineFeed, standard.LineSeparator:
		return true
	}
	return false
}

// --- Flattening ------------------------------------------------------------

type flattener struct {
	opts    options
	out     *Text
	stack   []style.Context
	pending bool // a paragraph separator is due before the next content
	pendCtx style.Context
}

// Flatten walks a document tree and produces its text representation.
//
// Text nodes contribute their text. Elements with an implicit
// representation (see standard.ElementType.ImplicitRepresentation)
// contribute a single placeholder character; their children are skipped.
// Block-level elements are separated from surrounding content by a
// paragraph separator. Comments are dropped.
//
// Every character is tagged with the formatting context in effect: block
// elements add paragraph properties, inline style attributes and (by
// default) formatting elements such as <b> add character properties.
func Flatten(root dom.Node, opts ...Option) *Text {
	f := &flattener{opts: defaultOptions, out: &Text{}}
	for _, opt := range opts {
		opt(&f.opts)
	}
	f.stack = []style.Context{f.opts.context}
	if err := dom.Walk(root, f.enter, f.leave); err != nil {
		tracer().Debugf("flatten: %v", err)
	}
	return f.out
}

func (f *flattener) top() style.Context {
	return f.stack[len(f.stack)-1]
}

func (f *flattener) emit(s string, ctx style.Context) {
	if f.pending {
		f.pending = false
		if !f.out.endsWithBreak() {
			f.out.append(string(f.opts.separator), f.pendCtx)
		}
	}
	f.out.append(s, ctx)
}

func (f *flattener) breakParagraph(ctx style.Context) {
	if f.out.Len() > 0 {
		f.pending = true
		f.pendCtx = ctx
	}
}

func (f *flattener) enter(n dom.Node, depth int) error {
	switch x := n.(type) {
	case *dom.TextNode:
		f.emit(x.Text(), f.top())
	case *dom.ElementNode:
		ctx := f.contextFor(x)
		if x.IsBlockLevel() {
			f.breakParagraph(f.top())
		}
		f.stack = append(f.stack, ctx)
		if p, ok := standard.ImplicitRepresentationFor(x.Name(), ctx).Get(); ok {
			f.placeholder(x, p)
			return dom.SkipChildren
		}
	}
	return nil
}

func (f *flattener) leave(n dom.Node, depth int) error {
	el, ok := n.(*dom.ElementNode)
	if !ok {
		return nil
	}
	ctx := f.top()
	f.stack = f.stack[:len(f.stack)-1]
	if el.IsBlockLevel() {
		f.breakParagraph(ctx)
	}
	return nil
}

func (f *flattener) placeholder(el *dom.ElementNode, p standard.Placeholder) {
	f.emit(p.String(), p.Context)
	if p.Kind == standard.AttachmentMarker {
		tracer().Debugf("flatten: attachment for %s at %d", el, f.out.Len()-1)
		f.out.Attachments = append(f.out.Attachments, Attachment{
			Offset:      f.out.Len() - 1,
			Element:     el,
			Placeholder: p,
		})
	}
}

// contextFor derives the formatting context of an element from the
// context of its parent.
func (f *flattener) contextFor(el *dom.ElementNode) style.Context {
	ctx := f.top()
	if el.IsBlockLevel() {
		ctx = ctx.WithParagraphProperty("display", "block")
	}
	if f.opts.impliedStyles {
		if t, ok := el.StandardType().Get(); ok {
			ctx = ctx.WithDeclarations(t.ImpliedStyle())
		}
	}
	if a, ok := el.Attribute("style"); ok {
		switch v := a.Value.(type) {
		case dom.StyleValue:
			ctx = ctx.WithDeclarations(style.Declarations(v))
		case dom.StringValue:
			if decls, err := style.ParseDeclarations(string(v)); err == nil {
				ctx = ctx.WithDeclarations(decls)
			}
		}
	}
	return ctx
}

// Plain returns the text of a document tree with placeholders removed, and
// paragraph separators and line breaks turned into '\n'.
func Plain(root dom.Node) string {
	t := Flatten(root)
	return strings.Map(func(r rune) rune {
		switch r {
		case standard.ObjectReplacementChar:
			return -1
		case standard.LineSeparator:
			return '\n'
		}
		return r
	}, t.String())
}
