package style

/*
License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>

*/

import (
	"fmt"
	"sort"
	"strings"
)

// Property is a raw value for a CSS property. For example, with
//
//     font-weight: bold
//
// a property value of "bold" is set. The main purpose of wrapping
// the raw string value into type Property is to provide a set of
// convenient helpers.
type Property string

// NullStyle is an empty property value.
const NullStyle Property = ""

func (p Property) String() string {
	return string(p)
}

// IsInitial denotes if a property is of inheritence-type "initial"
func (p Property) IsInitial() bool {
	return p == "initial"
}

// IsInherit denotes if a property is of inheritence-type "inherit"
func (p Property) IsInherit() bool {
	return p == "inherit"
}

// IsEmpty checks wether a property is empty, i.e. the null-string.
func (p Property) IsEmpty() bool {
	return p == ""
}

// KeyValue is a container for a style property.
type KeyValue struct {
	Key   string
	Value Property
}

func (kv KeyValue) String() string {
	return kv.Key + ": " + kv.Value.String()
}

// --- Property Groups --------------------------------------------------

// PropertyGroup is a collection of propertes sharing a common topic.
// For an editor, the most important distinction is between properties
// applying to a whole paragraph and properties applying to runs of characters.
//
// The mapping of property into groups is documented with
// GroupNameFromPropertyKey[...].
type PropertyGroup struct {
	name      string
	propsDict map[string]Property
}

// NewPropertyGroup creates a new empty property group, given its name.
func NewPropertyGroup(groupname string) *PropertyGroup {
	pg := &PropertyGroup{}
	pg.name = groupname
	return pg
}

// Name returns the name of the property group. Once named (during
// construction, property groups may not be renamed.
func (pg *PropertyGroup) Name() string {
	return pg.name
}

// Stringer for property groups; used for debugging.
func (pg *PropertyGroup) String() string {
	if pg == nil {
		return "[]"
	}
	s := "[" + pg.name + "] ="
	for _, kv := range pg.Properties() {
		s += " " + kv.String() + ";"
	}
	return s
}

// Size returns the number of properties set within this group.
// nil is a legal (empty) property group.
func (pg *PropertyGroup) Size() int {
	if pg == nil {
		return 0
	}
	return len(pg.propsDict)
}

// Properties returns all properties of a group, sorted by key.
func (pg *PropertyGroup) Properties() []KeyValue {
	if pg == nil {
		return nil
	}
	r := make([]KeyValue, 0, len(pg.propsDict))
	for k, v := range pg.propsDict {
		r = append(r, KeyValue{k, v})
	}
	sort.Slice(r, func(i, j int) bool { return r[i].Key < r[j].Key })
	return r
}

// IsSet is a predicated wether a property is set within this group.
func (pg *PropertyGroup) IsSet(key string) bool {
	if pg == nil || pg.propsDict == nil {
		return false
	}
	v, ok := pg.propsDict[key]
	return ok && !v.IsEmpty()
}

// Get a property's value.
func (pg *PropertyGroup) Get(key string) (Property, bool) {
	if pg == nil || pg.propsDict == nil {
		return NullStyle, false
	}
	p, ok := pg.propsDict[key]
	return p, ok
}

// Set a property's value. Overwrites an existing value, if present.
//
// Style property values are always converted to lower case.
func (pg *PropertyGroup) Set(key string, p Property) {
	p = Property(strings.ToLower(string(p)))
	if pg.propsDict == nil {
		pg.propsDict = make(map[string]Property)
	}
	pg.propsDict[key] = p
}

// Add a property's value. Does not overwrite an existing value, i.e., does nothing
// if a value is already set.
func (pg *PropertyGroup) Add(key string, p Property) {
	if _, exists := pg.Get(key); !exists {
		pg.Set(key, p)
	}
}

// Clone returns a copy of the group which may be modified independently.
func (pg *PropertyGroup) Clone() *PropertyGroup {
	if pg == nil {
		return nil
	}
	npg := NewPropertyGroup(pg.name)
	for k, v := range pg.propsDict {
		npg.Set(k, v)
	}
	return npg
}

// Symbolic names for string literals, denoting PropertyGroups.
const (
	PGParagraph = "Paragraph" // properties of a whole paragraph / block
	PGFont      = "Font"
	PGText      = "Text" // decorations and spacing of character runs
	PGColor     = "Color"
	PGX         = "X"
)

// GroupNameFromPropertyKey returns the style property group name for a
// style property.
// Example:
//    GroupNameFromPropertyKey("text-align") => "Paragraph"
//
// Unknown style property keys will return a group name of "X".
func GroupNameFromPropertyKey(key string) string {
	if strings.HasPrefix(key, "margin") || strings.HasPrefix(key, "padding") ||
		strings.HasPrefix(key, "list-style") {
		return PGParagraph
	}
	groupname, found := groupNameFromPropertyKey[key]
	if !found {
		groupname = PGX
	}
	return groupname
}

// IsParagraphProperty is a predicate wether a property applies to a whole
// paragraph rather than to a run of characters.
func IsParagraphProperty(key string) bool {
	return GroupNameFromPropertyKey(key) == PGParagraph
}

var groupNameFromPropertyKey = map[string]string{
	"display":          PGParagraph, // Paragraph
	"text-align":       PGParagraph,
	"text-indent":      PGParagraph,
	"line-height":      PGParagraph,
	"direction":        PGParagraph,
	"white-space":      PGParagraph,
	"font-family":      PGFont, // Font
	"font-size":        PGFont,
	"font-style":       PGFont,
	"font-weight":      PGFont,
	"font-variant":     PGFont,
	"text-decoration":  PGText, // Text
	"vertical-align":   PGText,
	"letter-spacing":   PGText,
	"word-spacing":     PGText,
	"text-transform":   PGText,
	"color":            PGColor, // Color
	"background-color": PGColor,
}

// SplitCompoundProperty splits up a shortcut property into its individual
// components. Returns a slice of key-value pairs representing the
// individual (fine grained) style properties.
// Example:
//    SplitCompountProperty("padding", "3px")
// will return
//    "padding-top"    => "3px"
//    "padding-right"  => "3px"
//    "padding-bottom" => "3px"
//    "padding-left  " => "3px"
// For the logic behind this, refer to e.g.
// https://www.w3schools.com/css/css_padding.asp .
func SplitCompoundProperty(key string, value Property) ([]KeyValue, error) {
	fields := strings.Fields(value.String())
	switch key {
	case "margin":
		return feazeCompound4("margin", fields)
	case "padding":
		return feazeCompound4("padding", fields)
	}
	return nil, fmt.Errorf("not recognized as compound property: %s", key)
}

// CSS logic to distribute individual values from compound shortcuts is as
// follows: top, right, bottom, left; missing values are mirrored.
func feazeCompound4(pre string, fields []string) ([]KeyValue, error) {
	l := len(fields)
	if l == 0 || l > 4 {
		return nil, fmt.Errorf("expecting 1-4 values for %s", pre)
	}
	v := [4]string{fields[0], fields[0], fields[0], fields[0]}
	switch l {
	case 2:
		v[1], v[3] = fields[1], fields[1]
	case 3:
		v[1], v[2], v[3] = fields[1], fields[2], fields[1]
	case 4:
		copy(v[:], fields)
	}
	r := make([]KeyValue, 4)
	for i, dir := range fourDirs {
		r[i] = KeyValue{pre + "-" + dir, Property(v[i])}
	}
	return r, nil
}

var fourDirs = [4]string{"top", "right", "bottom", "left"}

// --- Property Map -----------------------------------------------------

// PropertyMap holds style properties. nil is a legal (empty) property map.
// A property map contains zero or more property groups.
type PropertyMap struct {
	m map[string]*PropertyGroup // into struct to make it opaque for clients
}

// NewPropertyMap returns a new empty property map.
func NewPropertyMap() *PropertyMap {
	return &PropertyMap{}
}

func (pmap *PropertyMap) String() string {
	s := "Property Map = {"
	if pmap != nil {
		names := make([]string, 0, len(pmap.m))
		for name := range pmap.m {
			names = append(names, name)
		}
		sort.Strings(names)
		for _, name := range names {
			s += " " + pmap.m[name].String()
		}
	}
	return s + " }"
}

// Size returns the number of property groups.
func (pmap *PropertyMap) Size() int {
	if pmap == nil {
		return 0
	}
	return len(pmap.m)
}

// Group returns the property group for a group name or nil.
func (pmap *PropertyMap) Group(groupname string) *PropertyGroup {
	if pmap == nil {
		return nil
	}
	return pmap.m[groupname]
}

// Property returns a style property value, together with an indicator
// wether it has been found in the properties map.
func (pmap *PropertyMap) Property(key string) (Property, bool) {
	return pmap.Group(GroupNameFromPropertyKey(key)).Get(key)
}

// Add adds a property to this property map, overwriting an existing value, e.g.,
//
//    pm.Add("font-weight", "bold")
//
func (pmap *PropertyMap) Add(key string, value Property) {
	if pmap == nil {
		return
	}
	if pmap.m == nil {
		pmap.m = make(map[string]*PropertyGroup)
	}
	groupname := GroupNameFromPropertyKey(key)
	group, found := pmap.m[groupname]
	if !found {
		group = NewPropertyGroup(groupname)
		pmap.m[groupname] = group
	}
	group.Set(key, value)
}

// Clone returns a deep copy of the property map.
func (pmap *PropertyMap) Clone() *PropertyMap {
	if pmap == nil {
		return nil
	}
	npm := NewPropertyMap()
	if pmap.m != nil {
		npm.m = make(map[string]*PropertyGroup, len(pmap.m))
		for name, group := range pmap.m {
			npm.m[name] = group.Clone()
		}
	}
	return npm
}
