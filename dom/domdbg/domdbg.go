/*
Package domdbg implements helpers to debug a document tree.

______________________________________________________________________

License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>


*/
package domdbg

import (
	"fmt"
	"io"
	"strings"
	"text/template"

	"github.com/npillmayer/richtext/dom"
	tp "github.com/xlab/treeprint"
	"golang.org/x/net/html"
)

// Print returns an indented tree representation of the document tree under
// root, one node per line:
//
//     .
//     └── <div>
//         └── <p style="text-align: center">
//             ├── "Hello "
//             └── <b>
//                 └── "world"
//
func Print(root dom.Node) string {
	if root == nil {
		return "<nil>"
	}
	t := tp.New()
	printChildren(root, t.AddBranch(root.String()))
	return t.String()
}

func printChildren(n dom.Node, t tp.Tree) {
	el, ok := n.(*dom.ElementNode)
	if !ok {
		return
	}
	for _, ch := range el.Children() {
		if ch.Kind() == dom.ElementKind {
			printChildren(ch, t.AddBranch(ch.String()))
		} else {
			t.AddNode(ch.String())
		}
	}
}

// Logger is satisfied by *testing.T and *testing.B.
type Logger interface {
	Logf(format string, args ...interface{})
}

// Log writes the tree representation of root to a test log.
func Log(t Logger, title string, root dom.Node) {
	t.Logf("%s =\n%s", title, Print(root))
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

type node struct {
	Name      string
	Label     string
	IsElement bool
	Attrs     []attr
}

// attr is an attribute escaped for an HTML-like DOT label.
type attr struct {
	Name, Value string
}

func newNode(n dom.Node, name string) node {
	nd := node{Name: name, Label: shortText(n)}
	if el, ok := n.(*dom.ElementNode); ok {
		nd.IsElement = true
		nd.Label = fmt.Sprintf("%q", el.Name())
		for _, a := range el.Attributes() {
			v := ""
			if a.Value != nil {
				v = a.Value.String()
			}
			nd.Attrs = append(nd.Attrs, attr{
				Name:  html.EscapeString(a.Name),
				Value: html.EscapeString(v),
			})
		}
	}
	return nd
}

type edge struct {
	N1, N2 node
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. Elements are drawn as ellipses labelled with their
// tag, text and comment nodes as boxes with a shortened text; attributes
// are listed in a record attached to their element.
func ToGraphViz(root dom.Node, w io.Writer) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	names := make(map[dom.Node]string, 256)
	if root != nil {
		if err = nodes(root, w, names, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

func nodes(n dom.Node, w io.Writer, names map[dom.Node]string, gparams *graphParamsType) error {
	name := fmt.Sprintf("node%05d", len(names)+1)
	names[n] = name
	if err := gparams.NodeTmpl.Execute(w, newNode(n, name)); err != nil {
		return err
	}
	el, ok := n.(*dom.ElementNode)
	if !ok {
		return nil
	}
	for _, ch := range el.Children() {
		if err := nodes(ch, w, names, gparams); err != nil {
			return err
		}
		e := edge{node{Name: name}, node{Name: names[ch]}}
		if err := gparams.EdgeTmpl.Execute(w, e); err != nil {
			return err
		}
	}
	return nil
}

func shortText(n dom.Node) string {
	var s string
	switch x := n.(type) {
	case *dom.TextNode:
		s = x.Text()
	case *dom.CommentNode:
		s = "<!--" + x.Text() + "-->"
	}
	if r := []rune(s); len(r) > 10 {
		s = string(r[:10]) + "..."
	}
	s = strings.Replace(s, "\n", `\n`, -1)
	s = strings.Replace(s, "\t", `\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return fmt.Sprintf("%q", s)
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .IsElement }}
{{ .Name }}	[ label={{ .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ with .Attrs }}{{ $.Name }}attrs [ style="filled" penwidth=1 fillcolor="ivory3" shape="Mrecord" fontsize=12
    label=<<table border="0" cellborder="0" cellpadding="2" cellspacing="0" bgcolor="ivory3">
      {{ range . }}<tr><td align="right">{{ .Name }}:</td><td>{{ .Value }}</td></tr>
      {{ end }}
    </table>> ] ;
{{ $.Name }} -> {{ $.Name }}attrs [dir=none weight=1 style="dashed"] ;
{{ end }}{{ else }}
{{ .Name }}	[ label={{ .Label }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .N1.Name }} -> {{ .N2.Name }} [weight=1] ;
`
