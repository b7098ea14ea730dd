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

package basefont

import (
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
)

// cmapTable returns the "cmap" table of the font.  Characters in the Basic
// Multilingual Plane are listed in format 4 subtables, if there are any
// other characters, format 12 subtables are added.
func (f *Font) cmapTable() cmap.Table {
	bmp := cmap.Format4{}
	full := cmap.Format12{}
	for i, g := range f.glyphs {
		if !g.encoded {
			continue
		}
		if g.code <= 0xFFFF {
			bmp[uint16(g.code)] = glyph.ID(i)
		}
		full[uint32(g.code)] = glyph.ID(i)
	}

	bmpData := bmp.Encode(0)
	res := cmap.Table{
		{PlatformID: 0, EncodingID: 3}: bmpData,
		{PlatformID: 3, EncodingID: 1}: bmpData,
	}
	if len(full) > len(bmp) {
		fullData := full.Encode(0)
		res[cmap.Key{PlatformID: 0, EncodingID: 4}] = fullData
		res[cmap.Key{PlatformID: 3, EncodingID: 10}] = fullData
	}
	return res
}
