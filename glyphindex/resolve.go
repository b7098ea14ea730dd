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

package glyphindex

import (
	"seehuhn.de/go/colorfont"
	"seehuhn.de/go/colorfont/codepoint"
	"seehuhn.de/go/colorfont/engine"
)

// Resolution is the result of a glyph lookup.
type Resolution struct {
	// GlyphID is the glyph ID, or [engine.NotFound].
	GlyphID int

	// GlyphName is the name which was looked up in the font.
	GlyphName string

	// Ligature is true if the glyph was found by file name rather than
	// through the character map.
	Ligature bool
}

// Found reports whether a glyph was found.
func (r Resolution) Found() bool {
	return r.GlyphID != engine.NotFound
}

// Resolver finds the glyphs for artwork keys.
type Resolver struct {
	idx  *Index
	font engine.GlyphFinder
}

// NewResolver returns a resolver which uses idx for single characters
// and font for glyph names.
func NewResolver(idx *Index, font engine.GlyphFinder) *Resolver {
	return &Resolver{idx: idx, font: font}
}

// Resolve returns the glyph for key.
//
// Single characters are looked up in the character map first.  If the
// character is not mapped, or for ligature keys, the file name stem is used
// as the glyph name.
func (r *Resolver) Resolve(key codepoint.Key) Resolution {
	if !key.IsLigature() {
		if e, ok := r.idx.m[key.Code]; ok {
			gid := int(e.gid)
			if e.name != "" {
				gid = r.font.GlyphID(e.name)
			}
			colorfont.Logger().Debug("found regular glyph", "key", key, "glyph", e.name, "gid", gid)
			return Resolution{GlyphID: gid, GlyphName: e.name}
		}
	}

	gid := r.font.GlyphID(key.Name)
	if gid != engine.NotFound {
		colorfont.Logger().Debug("found ligature glyph", "glyph", key.Name, "gid", gid)
	}
	return Resolution{GlyphID: gid, GlyphName: key.Name, Ligature: true}
}
