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

// Package zwj rewrites character sequences into emoji ZWJ sequences.
//
// Artwork for an emoji ZWJ sequence is often named after the visible
// characters only, for example "1f468-1f469-1f466.svg" for the family
// emoji.  Text contains the ZERO WIDTH JOINER and, sometimes, the emoji
// variation selector between these characters, so the ligature which
// selects the glyph must list these as well.  This package uses a fixed
// table of known sequences to supply the missing characters.
package zwj

import "slices"

// Result describes a canonicalized character sequence.
type Result struct {
	// Canonical is the canonical form of the sequence.  If the sequence
	// was not found in the table, this is a copy of the input.
	Canonical []rune

	// WithoutSelector is the canonical form with all VS16 characters
	// removed.  This is nil if Canonical contains no VS16 characters.
	WithoutSelector []rune

	// Matched is true if the sequence was found in the table.
	Matched bool
}

// Canonicalize returns the canonical form of seq.
//
// The lookup ignores ZWJ and VS16 characters in seq, so that a sequence
// which is already canonical maps to itself.  Sequences which are not in
// the table are returned unchanged.
func Canonicalize(seq []rune) Result {
	canon, ok := table[string(strip(seq))]
	if !ok {
		return Result{Canonical: slices.Clone(seq)}
	}

	res := Result{
		Canonical: slices.Clone(canon),
		Matched:   true,
	}
	if slices.Contains(canon, VS16) {
		res.WithoutSelector = slices.DeleteFunc(slices.Clone(canon), func(r rune) bool {
			return r == VS16
		})
	}
	return res
}

// Alternatives returns the distinct, non-empty sequences which should be
// mapped to the ligature glyph.
func (r Result) Alternatives() [][]rune {
	var res [][]rune
	if len(r.Canonical) > 0 {
		res = append(res, r.Canonical)
	}
	if len(r.WithoutSelector) > 0 && !slices.Equal(r.WithoutSelector, r.Canonical) {
		res = append(res, r.WithoutSelector)
	}
	return res
}
