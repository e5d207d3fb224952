package style

// Context is the formatting context in effect at a position of a document,
// i.e. the styles a run of text or a placeholder is rendered with.
// Paragraph holds properties of the enclosing paragraph(s), Character holds
// properties of the run.
//
// The zero value is an empty context. Contexts are values; the With…
// methods return modified copies and never change the receiver.
type Context struct {
	Paragraph *PropertyGroup
	Character *PropertyMap
}

// HasParagraphStyle is true if the context carries at least one paragraph
// level property.
func (ctx Context) HasParagraphStyle() bool {
	return ctx.Paragraph.Size() > 0
}

// Property looks up a property in the paragraph group or in the character
// map, depending on the property's group.
func (ctx Context) Property(key string) (Property, bool) {
	if IsParagraphProperty(key) {
		return ctx.Paragraph.Get(key)
	}
	return ctx.Character.Property(key)
}

// WithParagraphProperty returns a copy of ctx with an additional paragraph
// level property.
func (ctx Context) WithParagraphProperty(key string, p Property) Context {
	pg := ctx.Paragraph.Clone()
	if pg == nil {
		pg = NewPropertyGroup(PGParagraph)
	}
	pg.Set(key, p)
	ctx.Paragraph = pg
	return ctx
}

// WithCharacterProperty returns a copy of ctx with an additional character
// level property.
func (ctx Context) WithCharacterProperty(key string, p Property) Context {
	pm := ctx.Character.Clone()
	if pm == nil {
		pm = NewPropertyMap()
	}
	pm.Add(key, p)
	ctx.Character = pm
	return ctx
}

// WithDeclarations returns a copy of ctx with all declarations applied,
// sorted into paragraph and character properties. Compound properties are
// expanded first.
func (ctx Context) WithDeclarations(decls Declarations) Context {
	for _, kv := range decls.Expanded() {
		if IsParagraphProperty(kv.Key) {
			ctx = ctx.WithParagraphProperty(kv.Key, kv.Value)
		} else {
			ctx = ctx.WithCharacterProperty(kv.Key, kv.Value)
		}
	}
	return ctx
}

func (ctx Context) String() string {
	return "{ " + ctx.Paragraph.String() + " " + ctx.Character.String() + " }"
}
