// seehuhn.de/go/colorfont - build SVG-in-OpenType color fonts
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Package engine describes the font engine used to build color fonts.
//
// Building a color font takes two passes.  In the first pass a
// [FontBuilder] creates a base font containing the monochrome glyphs and
// the ligature substitutions, and writes it to an intermediate file.  In the
// second pass the intermediate file is opened as a [Font], the color
// documents and the name table are attached, and the result is saved.
//
// The packages [seehuhn.de/go/colorfont/basefont] and
// [seehuhn.de/go/colorfont/sfntfile] implement these interfaces.
package engine

import "seehuhn.de/go/sfnt/cmap"

// NotFound is returned by [GlyphFinder.GlyphID] if there is no glyph
// with the given name.
const NotFound = -1

// FontBuilder creates the base font.
type FontBuilder interface {
	// CreateGlyph allocates a new glyph.  If encoded is false, the glyph
	// is not listed in the character map and can only be reached via
	// substitutions.
	CreateGlyph(code rune, encoded bool, name string) (Glyph, error)

	// AddSubstitution registers a ligature substitution, which replaces
	// the glyphs with the given names by lig.  The substitution is stored
	// in the lookup with the given name.
	AddSubstitution(lig Glyph, lookup string, components []string) error

	// WriteIntermediate writes the base font to the file at path.
	WriteIntermediate(path string) error
}

// Glyph is a glyph slot of a [FontBuilder].
type Glyph interface {
	Name() string

	// ImportOutline replaces the outline of the glyph by the outline
	// described by the given SVG document.
	ImportOutline(svg []byte) error

	SetAdvanceWidth(width int)

	// NormalizeOutline cleans up the imported outline.
	NormalizeOutline()

	TranslateOutline(dx, dy float64)
}

// GlyphFinder maps glyph names to glyph IDs.
type GlyphFinder interface {
	// GlyphID returns the glyph ID for the given glyph name,
	// or [NotFound] if the font has no such glyph.
	GlyphID(name string) int
}

// Font is a font read back from a file.
type Font interface {
	GlyphFinder

	// GlyphName returns the name of the glyph with the given ID.
	GlyphName(gid int) string

	// CMapSubtables returns all subtables of the "cmap" table.
	CMapSubtables() (cmap.Table, error)

	// SetTable replaces or adds the table with the given tag.
	SetTable(tag string, data []byte)

	// Save writes the font to the file at path.
	Save(path string) error
}
