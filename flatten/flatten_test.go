package flatten

import (
	"strings"
	"testing"

	"github.com/npillmayer/richtext/dom"
	"github.com/npillmayer/richtext/dom/domdbg"
	"github.com/npillmayer/richtext/dom/htmladapter"
	"github.com/npillmayer/richtext/dom/standard"
	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) *dom.ElementNode {
	nodes, err := htmladapter.ParseFragment(strings.NewReader(src))
	require.NoError(t, err)
	root := dom.NewElement("body", nil, nodes...)
	domdbg.Log(t, "document", root)
	return root
}

func TestFlattenParagraphs(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.flatten")
	defer teardown()
	//
	root := parse(t, `<p>Hello <b>world</b></p><p>second</p>`)
	text := Flatten(root)
	assert.Equal(t, "Hello world\nsecond", text.String())
	assert.Equal(t, 18, text.Len())
}

func TestFlattenPlaceholders(t *testing.T) {
	root := parse(t, `<p>a<img src="x.png">b<video><source src="v.mp4">fallback</video></p>`)
	text := Flatten(root)
	assert.Equal(t, "a\uFFFCb\uFFFC", text.String(), "children of placeholders must be skipped")
	require.Len(t, text.Attachments, 2)
	assert.Equal(t, 1, text.Attachments[0].Offset)
	assert.Equal(t, "img", text.Attachments[0].Element.Name())
	assert.Equal(t, 3, text.Attachments[1].Offset)
	assert.Equal(t, standard.AttachmentMarker, text.Attachments[1].Placeholder.Kind)
}

func TestFlattenHorizontalRuleIsOwnParagraph(t *testing.T) {
	root := parse(t, `<p>above</p><hr><p>below</p>`)
	assert.Equal(t, "above\n\uFFFC\nbelow", Flatten(root).String())
}

func TestFlattenBreaks(t *testing.T) {
	// outside of any block-level element
	bare := dom.NewElement("span", nil, dom.NewText("a"), dom.NewElement("br", nil), dom.NewText("b"))
	assert.Equal(t, "a\nb", Flatten(bare).String())
	// inside a paragraph
	para := parse(t, `<p>a<br>b</p>`)
	assert.Equal(t, "a\u2028b", Flatten(para).String())
	assert.Equal(t, "a\nb", Plain(para))
}

func TestFlattenContexts(t *testing.T) {
	root := parse(t, `<p style="text-align: right">x<strong>y</strong><span style="color: red">z</span></p>`)
	text := Flatten(root)
	require.Equal(t, "xyz", text.String())
	require.Len(t, text.Runs, 3)

	ctx, ok := text.ContextAt(0)
	require.True(t, ok)
	align, _ := ctx.Property("text-align")
	assert.Equal(t, style.Property("right"), align)
	assert.True(t, ctx.HasParagraphStyle())

	ctx, _ = text.ContextAt(1)
	weight, ok := ctx.Property("font-weight")
	assert.True(t, ok)
	assert.Equal(t, style.Property("bold"), weight)

	ctx, _ = text.ContextAt(2)
	color, _ := ctx.Property("color")
	assert.Equal(t, style.Property("red"), color)
	_, ok = ctx.Property("font-weight")
	assert.False(t, ok, "bold must not leak to siblings")

	_, ok = text.ContextAt(3)
	assert.False(t, ok)
}

func TestFlattenEquivalentElementsShareStyle(t *testing.T) {
	b := Flatten(parse(t, `<b>x</b>`))
	strong := Flatten(parse(t, `<strong>x</strong>`))
	cb, _ := b.ContextAt(0)
	cs, _ := strong.ContextAt(0)
	assert.Equal(t, cb.Character.String(), cs.Character.String())
}

func TestFlattenOptions(t *testing.T) {
	root := parse(t, `<h1>T</h1><p><em>x</em><!-- gone --></p>`)
	text := Flatten(root, WithParagraphSeparator(' '), WithImpliedStyles(false))
	assert.Equal(t, "T x", text.String())
	ctx, _ := text.ContextAt(2)
	_, ok := ctx.Property("font-style")
	assert.False(t, ok)

	var outer style.Context
	outer = outer.WithParagraphProperty("text-indent", "1em")
	frag := dom.NewElement("span", nil, dom.NewText("a"), dom.NewElement("br", nil))
	assert.Equal(t, "a\u2028", Flatten(frag, WithContext(outer)).String())
}

func TestFlattenCustomElementsAreInline(t *testing.T) {
	root := parse(t, `<my-widget>a</my-widget><my-widget>b</my-widget>`)
	assert.Equal(t, "ab", Flatten(root).String())
	assert.Equal(t, "", Flatten(nil).String())
}
