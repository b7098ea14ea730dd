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

package build

import (
	"fmt"
	"strings"

	"golang.org/x/text/unicode/runenames"
)

// Kind classifies the problems which do not stop a build.
type Kind int

// These are the possible values of [Warning.Kind].
const (
	// GlyphNotFound means that no glyph exists for an artwork file or a
	// ligature component.
	GlyphNotFound Kind = iota + 1

	// UnmatchedSequence means that a character sequence is not a known
	// emoji ZWJ sequence and was used unchanged.
	UnmatchedSequence

	// DuplicateGlyph means that two artwork files describe the same glyph
	// or the same ligature.
	DuplicateGlyph

	// SkippedEntry means that an entry could not be stored in the "SVG "
	// table.
	SkippedEntry
)

func (k Kind) String() string {
	switch k {
	case GlyphNotFound:
		return "glyph not found"
	case UnmatchedSequence:
		return "unmatched sequence"
	case DuplicateGlyph:
		return "duplicate glyph"
	case SkippedEntry:
		return "skipped entry"
	default:
		return fmt.Sprintf("Kind(%d)", int(k))
	}
}

// Warning describes a problem found during a build.
type Warning struct {
	Kind   Kind
	File   string
	Detail string
}

func (w Warning) String() string {
	return w.File + ": " + w.Kind.String() + ": " + w.Detail
}

// charNames returns the Unicode names of the characters in seq,
// for use in log messages.
func charNames(seq []rune) string {
	names := make([]string, len(seq))
	for i, r := range seq {
		name := runenames.Name(r)
		if name == "" {
			name = fmt.Sprintf("U+%04X", r)
		}
		names[i] = name
	}
	return strings.Join(names, " + ")
}
