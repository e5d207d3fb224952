/*
Package htmladapter connects document trees to golang.org/x/net/html.

Parsing HTML is not a concern of the document model. This adapter takes
parse trees produced by x/net/html and converts them into document trees,
and vice versa for rendering. It also provides CSS selector queries on
document trees, courtesy of cascadia.

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package htmladapter

import (
	"io"

	"github.com/andybalholm/cascadia"
	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/schuko/tracing"
	"github.com/pkg/errors"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"
)

// tracer traces with key 'richtext.htmladapter'.
func tracer() tracing.Trace {
	return tracing.Select("richtext.htmladapter")
}

// ErrNoElement is returned if an HTML parse tree does not contain an element.
var ErrNoElement = errors.New("HTML input contains no element")

// Parse parses a complete HTML document and returns its root element,
// usually <html>.
func Parse(r io.Reader) (*dom.ElementNode, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML document")
	}
	for c := doc.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			n := FromHTML(c)
			return n.(*dom.ElementNode), nil
		}
	}
	return nil, ErrNoElement
}

// ParseFragment parses an HTML fragment as if it were the content of a
// <body> element, and returns the top-level nodes of the fragment.
func ParseFragment(r io.Reader) ([]dom.Node, error) {
	body := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(r, body)
	if err != nil {
		return nil, errors.Wrap(err, "parsing HTML fragment")
	}
	r2 := make([]dom.Node, 0, len(nodes))
	for _, n := range nodes {
		if dn := FromHTML(n); dn != nil {
			r2 = append(r2, dn)
		}
	}
	return r2, nil
}

// FromHTML converts an x/net/html node and its subtree into a document node.
// Doctype and document nodes have no counterpart and yield nil; raw nodes
// are converted to text. An attribute "style" is parsed into a style value;
// if it cannot be parsed, it stays a string.
func FromHTML(n *html.Node) dom.Node {
	if n == nil {
		return nil
	}
	switch n.Type {
	case html.TextNode, html.RawNode:
		return dom.NewText(n.Data)
	case html.CommentNode:
		return dom.NewComment(n.Data)
	case html.ElementNode:
		el := dom.NewElement(n.Data, attributesFromHTML(n.Attr))
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if ch := FromHTML(c); ch != nil {
				el.AppendChild(ch)
			}
		}
		return el
	}
	tracer().Debugf("skipping HTML node of type %d", n.Type)
	return nil
}

func attributesFromHTML(attrs []html.Attribute) []dom.Attribute {
	r := make([]dom.Attribute, 0, len(attrs))
	for _, a := range attrs {
		name := a.Key
		if a.Namespace != "" {
			name = a.Namespace + ":" + a.Key
		}
		if a.Key == "style" && a.Namespace == "" {
			decls, err := style.ParseDeclarations(a.Val)
			if err == nil {
				r = append(r, dom.StyleAttribute(name, decls))
				continue
			}
			tracer().Infof("keeping unparsable style attribute as text: %v", err)
		}
		r = append(r, dom.StringAttribute(name, a.Val))
	}
	return r
}

// ToHTML converts a document node and its subtree into an x/net/html node.
func ToHTML(n dom.Node) *html.Node {
	hn, _ := toHTML(n, nil)
	return hn
}

// toHTML converts n. If elems is non-nil, it records the document element for
// every HTML element created.
func toHTML(n dom.Node, elems map[*html.Node]*dom.ElementNode) (*html.Node, error) {
	switch x := n.(type) {
	case *dom.TextNode:
		return &html.Node{Type: html.TextNode, Data: x.Text()}, nil
	case *dom.CommentNode:
		return &html.Node{Type: html.CommentNode, Data: x.Text()}, nil
	case *dom.ElementNode:
		hn := &html.Node{
			Type:     html.ElementNode,
			Data:     x.Name(),
			DataAtom: atom.Lookup([]byte(x.Name())),
		}
		for _, a := range x.Attributes() {
			val := ""
			if a.Value != nil {
				val = a.Value.String()
			}
			hn.Attr = append(hn.Attr, html.Attribute{Key: a.Name, Val: val})
		}
		for _, ch := range x.Children() {
			hch, err := toHTML(ch, elems)
			if err != nil {
				return nil, err
			}
			hn.AppendChild(hch)
		}
		if elems != nil {
			elems[hn] = x
		}
		return hn, nil
	}
	return nil, errors.Errorf("cannot convert node %v to HTML", n)
}

// Render writes the HTML serialization of a document node to w.
func Render(w io.Writer, n dom.Node) error {
	hn, err := toHTML(n, nil)
	if err != nil {
		return err
	}
	return errors.Wrap(html.Render(w, hn), "rendering HTML")
}

// Select returns all elements under root (including root) matching a CSS
// selector, in document order.
func Select(root *dom.ElementNode, selector string) ([]*dom.ElementNode, error) {
	sel, err := cascadia.Compile(selector)
	if err != nil {
		return nil, errors.Wrapf(err, "compiling selector %q", selector)
	}
	elems := make(map[*html.Node]*dom.ElementNode)
	hroot, err := toHTML(root, elems)
	if err != nil {
		return nil, err
	}
	matches := sel.MatchAll(hroot)
	r := make([]*dom.ElementNode, 0, len(matches))
	for _, m := range matches {
		r = append(r, elems[m])
	}
	tracer().Debugf("selector %q matched %d elements", selector, len(r))
	return r, nil
}
