package htmladapter

import (
	"strings"
	"testing"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFragment(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.htmladapter")
	defer teardown()
	//
	nodes, err := ParseFragment(strings.NewReader(
		`<P Style="text-align: center">Hello <B>world</B><!--x--></P>text`))
	require.NoError(t, err)
	require.Len(t, nodes, 2)
	p, ok := nodes[0].(*dom.ElementNode)
	require.True(t, ok)
	assert.Equal(t, "p", p.Name())
	a, ok := p.Attribute("style")
	require.True(t, ok)
	decls, isStyle := a.Value.(dom.StyleValue)
	require.True(t, isStyle, "style attribute should be parsed")
	assert.Equal(t, style.Property("center"), style.Declarations(decls)[0].Value)
	assert.Equal(t, 3, p.ChildCount())
	assert.True(t, p.Child(1).IsNodeType("b"))
	assert.Equal(t, dom.CommentKind, p.Child(2).Kind())
	assert.Equal(t, "Hello world", p.Text())
	assert.Equal(t, dom.TextKind, nodes[1].Kind())
}

func TestParsedTreesAreStructurallyEqual(t *testing.T) {
	src := `<div><p>a<img src="x.png">b</p><ul><li>one</li></ul></div>`
	n1, err := ParseFragment(strings.NewReader(src))
	require.NoError(t, err)
	n2, err := ParseFragment(strings.NewReader(src))
	require.NoError(t, err)
	require.Len(t, n1, 1)
	assert.True(t, dom.Equal(n1[0], n2[0]))
	assert.False(t, dom.Same(n1[0], n2[0]))

	built := dom.NewElement("div", nil,
		dom.NewElement("p", nil,
			dom.NewText("a"),
			dom.NewElement("img", []dom.Attribute{dom.StringAttribute("src", "x.png")}),
			dom.NewText("b")),
		dom.NewElement("ul", nil, dom.NewElement("li", nil, dom.NewText("one"))),
	)
	assert.True(t, dom.Equal(built, n1[0]))
}

func TestParseDocument(t *testing.T) {
	root, err := Parse(strings.NewReader(`<!DOCTYPE html><title>T</title><p>x`))
	require.NoError(t, err)
	assert.Equal(t, "html", root.Name())
	assert.Equal(t, 2, root.ChildCount()) // head, body
}

func TestRender(t *testing.T) {
	el := dom.NewElement("p", []dom.Attribute{dom.StringAttribute("class", "c")},
		dom.NewText("a < b"), dom.NewElement("br", nil))
	var sb strings.Builder
	require.NoError(t, Render(&sb, el))
	assert.Equal(t, `<p class="c">a &lt; b<br/></p>`, sb.String())

	back := FromHTML(ToHTML(el))
	assert.True(t, dom.Equal(el, back))
}

func TestInlineStyleRoundTrip(t *testing.T) {
	nodes, err := ParseFragment(strings.NewReader(`<span style="color: red">x</span>`))
	require.NoError(t, err)
	require.Len(t, nodes, 1)
	var sb strings.Builder
	require.NoError(t, Render(&sb, nodes[0]))
	assert.Equal(t, `<span style="color: red">x</span>`, sb.String())
}

func TestSelect(t *testing.T) {
	nodes, err := ParseFragment(strings.NewReader(
		`<div><p class="x"><b>1</b></p><p><strong>2</strong></p><span class="x">3</span></div>`))
	require.NoError(t, err)
	root := nodes[0].(*dom.ElementNode)
	ps, err := Select(root, "p")
	require.NoError(t, err)
	assert.Len(t, ps, 2)
	xs, err := Select(root, ".x")
	require.NoError(t, err)
	require.Len(t, xs, 2)
	assert.Equal(t, "p", xs[0].Name())
	assert.Equal(t, "span", xs[1].Name())
	bold, err := Select(root, "b, strong")
	require.NoError(t, err)
	require.Len(t, bold, 2)
	assert.Equal(t, "2", bold[1].Text())
	assert.Same(t, root.Child(1).(*dom.ElementNode).Child(0), bold[1])
	_, err = Select(root, "p[")
	assert.Error(t, err)
}
