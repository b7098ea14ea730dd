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

// Package glyphindex maps artwork keys to glyph IDs.
//
// An [Index] records, for every character in the Unicode subtables of a
// font's "cmap" table, the glyph used to show it.  The index is built once
// per font and is not modified afterwards, so it can be shared freely.
// A [Resolver] combines an index with name lookups in the font to find the
// glyph for a [codepoint.Key].
package glyphindex

import (
	"errors"
	"slices"
	"unicode"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/colorfont"
)

// ErrNoCodepoints is returned by [New] if the font has no Unicode mappings.
var ErrNoCodepoints = errors.New("no Unicode codepoints found in font")

// GlyphNamer gives access to the glyph names of a font.
type GlyphNamer interface {
	GlyphName(gid int) string
}

type entry struct {
	name string
	gid  glyph.ID
}

// Index maps characters to glyphs.
type Index struct {
	m map[rune]entry
}

// New builds the index for a font.
//
// All Unicode subtables are used, in increasing order of platform ID,
// encoding ID and language.  If several subtables map the same character,
// the last subtable wins.
func New(subtables cmap.Table, font GlyphNamer) (*Index, error) {
	keys := make([]cmap.Key, 0, len(subtables))
	for key := range subtables {
		if isUnicode(key) {
			keys = append(keys, key)
		}
	}
	slices.SortFunc(keys, compareKeys)

	log := colorfont.Logger()
	m := make(map[rune]entry)
	for _, key := range keys {
		sub, err := subtables.Get(key)
		if err != nil {
			log.Warn("cannot decode cmap subtable",
				"platform", key.PlatformID, "encoding", key.EncodingID, "error", err)
			continue
		}
		n := 0
		low, high := sub.CodeRange()
		if high > unicode.MaxRune {
			high = unicode.MaxRune
		}
		for r := low; r <= high && r >= 0; r++ {
			gid := sub.Lookup(r)
			if gid == 0 {
				continue
			}
			m[r] = entry{name: font.GlyphName(int(gid)), gid: gid}
			n++
		}
		log.Debug("read cmap subtable",
			"platform", key.PlatformID, "encoding", key.EncodingID, "mappings", n)
	}

	if len(m) == 0 {
		return nil, ErrNoCodepoints
	}
	return &Index{m: m}, nil
}

// Lookup returns the name of the glyph for r.
func (idx *Index) Lookup(r rune) (string, bool) {
	e, ok := idx.m[r]
	return e.name, ok
}

// Len returns the number of characters in the index.
func (idx *Index) Len() int {
	return len(idx.m)
}

// isUnicode reports whether a subtable maps Unicode characters.
func isUnicode(key cmap.Key) bool {
	switch key.PlatformID {
	case 0: // Unicode
		return true
	case 3: // Windows
		// Symbol, Unicode BMP, Unicode full repertoire
		return key.EncodingID == 0 || key.EncodingID == 1 || key.EncodingID == 10
	}
	return false
}

func compareKeys(a, b cmap.Key) int {
	if a.PlatformID != b.PlatformID {
		return int(a.PlatformID) - int(b.PlatformID)
	}
	if a.EncodingID != b.EncodingID {
		return int(a.EncodingID) - int(b.EncodingID)
	}
	return int(a.Language) - int(b.Language)
}
