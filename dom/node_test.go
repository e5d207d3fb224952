package dom

import (
	"testing"

	"github.com/npillmayer/richtext/dom/style"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func styleElement(text string) *ElementNode {
	attr := StringAttribute("some", "value")
	return NewElement("style", []Attribute{attr}, NewText(text))
}

func TestEqualityReturnsTrueWhenNodesAreEqual(t *testing.T) {
	style1 := styleElement("First Children Here")
	style2 := styleElement("First Children Here")
	if !style1.Equals(style2) {
		t.Errorf("expected %s and %s to be equal", style1, style2)
	}
	if Same(style1, style2) {
		t.Error("expected independently constructed nodes not to be the same")
	}
	if !Same(style1, style1) {
		t.Error("expected node to be the same as itself")
	}
}

func TestEqualityReturnsFalseWhenNodesDiffer(t *testing.T) {
	style1 := styleElement("First Children Here")
	style2 := styleElement("Second Child!")
	if style1.Equals(style2) || Equal(style1, style2) {
		t.Error("expected elements with different child text to differ")
	}
	if !style1.Equals(style1) {
		t.Error("expected element to equal itself")
	}
}

func TestEqualityAfterEditingText(t *testing.T) {
	style1 := styleElement("First Children Here")
	style2 := styleElement("First Children Here")
	require.True(t, Equal(style1, style2))
	style2.Child(0).(*TextNode).SetText("Second Child!")
	assert.False(t, Equal(style1, style2))
}

func TestEqualityDeepTrees(t *testing.T) {
	build := func(leaf string) *ElementNode {
		return NewElement("div", nil,
			NewElement("p", []Attribute{StyleAttribute("style", style.Declarations{{Key: "text-align", Value: "center"}})},
				NewText("Hello "),
				NewElement("b", nil, NewText("world")),
			),
			NewComment("note"),
			NewElement("p", nil, NewElement("span", nil, NewText(leaf))),
		)
	}
	a, b := build("deep"), build("deep")
	assert.True(t, Equal(a, b))
	assert.False(t, Same(a, b))
	assert.False(t, Equal(a, build("deeper")), "descendant text differs")
}

func TestEqualityIsOrderSensitive(t *testing.T) {
	a := NewElement("p", nil, NewText("x"), NewElement("br", nil))
	b := NewElement("p", nil, NewElement("br", nil), NewText("x"))
	assert.False(t, Equal(a, b))
	c := NewElement("img", []Attribute{StringAttribute("src", "a.png"), StringAttribute("alt", "")})
	d := NewElement("img", []Attribute{StringAttribute("alt", ""), StringAttribute("src", "a.png")})
	assert.False(t, Equal(c, d), "attribute order matters")
	e := NewElement("p", nil, NewText("x"))
	f := NewElement("p", nil, NewText("x"), NewText(""))
	assert.False(t, Equal(e, f), "child count matters")
}

func TestEqualityAcrossKinds(t *testing.T) {
	text := NewText("p")
	comment := NewComment("p")
	el := NewElement("p", nil)
	assert.False(t, text.Equals(comment))
	assert.False(t, comment.Equals(text))
	assert.False(t, el.Equals(text))
	assert.False(t, text.Equals(el))
	assert.True(t, Equal(nil, nil))
	assert.False(t, Equal(el, nil))
	var nilEl *ElementNode
	assert.False(t, Equal(el, nilEl))
	assert.False(t, Same(nil, nil))
}

func TestAttributeEquality(t *testing.T) {
	assert.True(t, StringAttribute("Some", "value").Equal(StringAttribute("some", "value")))
	assert.False(t, StringAttribute("some", "value").Equal(StringAttribute("some", "other")))
	assert.False(t, StringAttribute("some", "value").Equal(StringAttribute("other", "value")))
	assert.True(t, NewAttribute("disabled").Equal(Attribute{Name: "disabled"}), "nil value is None")
	assert.False(t, NewAttribute("alt").Equal(StringAttribute("alt", "")))
	decls := style.Declarations{{Key: "color", Value: "red"}}
	assert.True(t, StyleAttribute("style", decls).Equal(StyleAttribute("style", style.Declarations{{Key: "color", Value: "red"}})))
	assert.False(t, StyleAttribute("style", decls).Equal(StringAttribute("style", "color: red")))
	assert.Equal(t, `style="color: red"`, StyleAttribute("style", decls).String())
	assert.Equal(t, "disabled", NewAttribute("disabled").String())
}

func TestIsNodeType(t *testing.T) {
	el := NewElement("STRONG", nil)
	assert.Equal(t, "strong", el.Name())
	assert.True(t, el.IsNodeType("strong"))
	assert.True(t, el.IsNodeType("Strong"))
	assert.False(t, el.IsNodeType("b"))
	assert.True(t, el.IsEquivalent("b"))
	assert.True(t, NewText("x").IsNodeType(TextNodeName))
	assert.True(t, NewComment("x").IsNodeType(CommentNodeName))
	assert.False(t, NewText("x").IsNodeType("p"))
}

func TestClassification(t *testing.T) {
	p := NewElement("p", nil)
	assert.True(t, p.IsBlockLevel())
	custom := NewElement("my-widget", nil)
	assert.False(t, custom.IsBlockLevel())
	assert.True(t, custom.StandardType().IsNothing())
	_, ok := p.StandardType().Get()
	assert.True(t, ok)
}

func TestTreeEditing(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.dom")
	defer teardown()
	//
	text := NewText("hello")
	p := NewElement("p", nil, text)
	div := NewElement("div", nil, p)
	assert.Same(t, p, text.Parent())
	assert.Same(t, div, p.Parent())
	assert.Nil(t, div.Parent())
	assert.Equal(t, "hello", div.Text())
	assert.Same(t, div, Root(text))

	br := NewElement("br", nil)
	p.InsertChildAt(0, br)
	assert.Equal(t, 0, p.IndexOf(br))
	assert.Equal(t, 1, p.IndexOf(text))

	other := NewElement("p", nil)
	other.AppendChild(text) // moves text
	assert.Equal(t, -1, p.IndexOf(text))
	assert.Same(t, other, text.Parent())

	assert.True(t, p.RemoveChild(br))
	assert.False(t, p.RemoveChild(br))
	assert.Nil(t, br.Parent())
	assert.Equal(t, 0, p.ChildCount())
	assert.Nil(t, p.Child(0))

	Detach(p)
	assert.Nil(t, p.Parent())
	assert.Equal(t, 0, div.ChildCount())
}

func TestTreeEditingRefusesCycles(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "richtext.dom")
	defer teardown()
	//
	p := NewElement("p", nil, NewText("x"))
	div := NewElement("div", nil, p)
	p.AppendChild(div)
	p.InsertChildAt(0, div)
	div.AppendChild(div)
	assert.Same(t, div, p.Parent())
	assert.Nil(t, div.Parent())
	assert.Same(t, div, Root(p))
	assert.Equal(t, 1, div.ChildCount())
	assert.Equal(t, 1, p.ChildCount())
	assert.Equal(t, "x", div.Text())
	assert.True(t, div.Equals(Clone(div)))
}

func TestAttributeEditing(t *testing.T) {
	el := NewElement("a", []Attribute{StringAttribute("href", "#x"), StringAttribute("title", "t")})
	el.SetAttribute(StringAttribute("HREF", "#y"))
	attrs := el.Attributes()
	require.Len(t, attrs, 2)
	assert.Equal(t, "href", attrs[0].Name, "replacement keeps position")
	a, ok := el.Attribute("href")
	require.True(t, ok)
	assert.Equal(t, "#y", a.Value.String())
	el.SetAttribute(NewAttribute("download"))
	assert.Len(t, el.Attributes(), 3)
	assert.True(t, el.RemoveAttribute("title"))
	assert.False(t, el.RemoveAttribute("title"))
	_, ok = el.Attribute("title")
	assert.False(t, ok)
}

func TestClone(t *testing.T) {
	orig := NewElement("div", []Attribute{StringAttribute("class", "x")},
		NewElement("p", nil, NewText("a"), NewComment("c")))
	cp := Clone(orig)
	assert.True(t, Equal(orig, cp))
	assert.False(t, Same(orig, cp))
	cp.(*ElementNode).Child(0).(*ElementNode).Child(0).(*TextNode).SetText("b")
	assert.False(t, Equal(orig, cp))
	assert.Equal(t, "a", orig.Text())
	assert.Nil(t, Clone(nil))
}

func TestFindAll(t *testing.T) {
	doc := NewElement("div", nil,
		NewElement("p", nil, NewElement("strong", nil, NewText("x")), NewText("y")),
		NewElement("span", nil, NewElement("b", nil, NewText("z"))),
	)
	assert.Len(t, FindAll(doc, NodeIsText), 3)
	assert.Len(t, FindAll(doc, NodeIsBlockLevel), 2)
	bold := FindAll(doc, NodeIsEquivalentTo("b"))
	require.Len(t, bold, 2)
	assert.True(t, bold[0].IsNodeType("strong"))
	assert.True(t, bold[1].IsNodeType("b"))
	z := FindAll(doc, NodeIsText)[2]
	assert.Same(t, doc, EnclosingBlock(z))
	x := FindAll(doc, NodeIsText)[0]
	assert.Equal(t, "p", EnclosingBlock(x).Name())
}

func TestWalkSkipsChildren(t *testing.T) {
	doc := NewElement("div", nil,
		NewElement("img", nil, NewText("fallback")),
		NewText("after"),
	)
	var texts []string
	err := Walk(doc, func(n Node, _ int) error {
		if n.IsNodeType("img") {
			return SkipChildren
		}
		if txt, ok := n.(*TextNode); ok {
			texts = append(texts, txt.Text())
		}
		return nil
	}, nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"after"}, texts)
	assert.Error(t, Walk(nil, nil, nil))
}
