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

package codepoint

import "fmt"

// GlyphName returns the conventional glyph name for a character:
// "uniXXXX" for characters in the Basic Multilingual Plane and
// "uXXXXX" for all others.
func GlyphName(r rune) string {
	if r <= 0xFFFF {
		return fmt.Sprintf("uni%04X", r)
	}
	return fmt.Sprintf("u%X", r)
}

// GlyphNames returns the glyph names for a sequence of characters.
func GlyphNames(seq []rune) []string {
	res := make([]string, len(seq))
	for i, r := range seq {
		res[i] = GlyphName(r)
	}
	return res
}
