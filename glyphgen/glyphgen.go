// Package glyphgen generates a C header of glyph macros from a table of
// code point overrides. Each glyph becomes a string literal holding its single
// byte code, e.g.
//
//	#define GLYPH_SPACE "\x20"
package glyphgen

import (
	"fmt"
	"slices"

	"github.com/clktmr/assetc/asset"
	"github.com/clktmr/assetc/header"
)

// MacroPrefix is prepended to every glyph name.
const MacroPrefix = "GLYPH_"

// MaxCodePoint is the largest code point that fits the single byte escape.
const MaxCodePoint = 0xff

// Table maps code points to glyph names.
type Table map[uint8]string

// NewTable builds a Table from overrides. Later overrides replace earlier
// ones with the same target. Targets outside 0..MaxCodePoint and empty names
// are rejected.
func NewTable(overrides []Override) (Table, error) {
	t := make(Table, len(overrides))
	for i, ov := range overrides {
		if ov.Target < 0 || ov.Target > MaxCodePoint {
			return nil, asset.Errorf(asset.KindSchema, "",
				"override %d: target %#x out of range 0x00..%#x", i, ov.Target, MaxCodePoint)
		}
		if ov.Name == "" {
			return nil, asset.Errorf(asset.KindSchema, "", "override %d: empty name", i)
		}
		t[uint8(ov.Target)] = ov.Name
	}
	return t, nil
}

// Glyph is a resolved table entry.
type Glyph struct {
	Code uint8
	Name string
}

// Glyphs returns the table's entries in ascending code point order.
func (t Table) Glyphs() []Glyph {
	glyphs := make([]Glyph, 0, len(t))
	for code, name := range t {
		glyphs = append(glyphs, Glyph{code, name})
	}
	slices.SortFunc(glyphs, func(a, b Glyph) int { return int(a.Code) - int(b.Code) })
	return glyphs
}

func (g Glyph) String() string {
	return fmt.Sprintf(`#define %s%s "\x%02x"`, MacroPrefix, g.Name, g.Code)
}

// Generate returns the header defining one macro per glyph in t.
func Generate(t Table) *header.Header {
	h := &header.Header{}
	var body []byte
	for _, g := range t.Glyphs() {
		body = append(body, g.String()...)
		body = append(body, '\n')
	}
	h.Add(body)
	return h
}
