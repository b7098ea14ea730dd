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

// Package colorfont builds SVG-in-OpenType color fonts.
//
// A color font is assembled from two directories of SVG artwork.  The files
// in the glyph directory provide the monochrome outlines of a base font, the
// files in the color directory are attached to the glyphs of that font as
// entries of the OpenType "SVG " table.  File names select the glyph: a file
// "1f600.svg" belongs to the character U+1F600, a file "1f468-1f469-1f466.svg"
// to a ligature glyph which is reached through a GSUB ligature substitution.
//
// The work is split into the following packages:
//
//   - [seehuhn.de/go/colorfont/codepoint] maps file names to codepoints
//   - [seehuhn.de/go/colorfont/zwj] canonicalizes emoji ZWJ sequences
//   - [seehuhn.de/go/colorfont/glyphindex] maps codepoints to glyph IDs
//   - [seehuhn.de/go/colorfont/geometry] fits artwork into the em box
//   - [seehuhn.de/go/colorfont/svgtable] assembles the "SVG " table
//   - [seehuhn.de/go/colorfont/nametable] assembles the "name" table
//   - [seehuhn.de/go/colorfont/build] runs the whole pipeline
//
// By default nothing is logged.  Use [SetLogger] to see progress messages
// and warnings.
package colorfont
