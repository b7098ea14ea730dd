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

// Package codepoint derives character codes from artwork file names.
//
// A file "1f600.svg" stands for the single character U+1F600.  A file name
// containing hyphens, like "1f468-1f469-1f466.svg", stands for a sequence of
// characters which is rendered by a ligature glyph.  The file name, without
// directory and extension, is then also used as the name of that glyph.
package codepoint

import (
	"fmt"
	"path/filepath"
	"strconv"
	"strings"
	"unicode/utf8"
)

// Key identifies the glyph an artwork file belongs to.
type Key struct {
	// Code is the character code for single character keys.
	// For ligature keys, Code is -1.
	Code rune

	// Sequence lists the characters of a ligature key, in order.
	// This is nil for single character keys.
	Sequence []rune

	// Name is the file name without directory and extension.
	Name string
}

// IsLigature reports whether k describes a character sequence.
func (k Key) IsLigature() bool {
	return k.Sequence != nil
}

func (k Key) String() string {
	if k.IsLigature() {
		return k.Name
	}
	return fmt.Sprintf("U+%04X", k.Code)
}

// FromPath returns the key for the artwork file at path.
func FromPath(path string) (Key, error) {
	base := filepath.Base(path)
	stem := strings.TrimSuffix(base, filepath.Ext(base))

	if strings.Contains(stem, "-") {
		fields := strings.Split(stem, "-")
		seq := make([]rune, len(fields))
		for i, f := range fields {
			r, ok := parseHex(f)
			if !ok {
				return Key{}, &InvalidFilenameError{Path: path, Field: f}
			}
			seq[i] = r
		}
		return Key{Code: -1, Sequence: seq, Name: stem}, nil
	}

	r, ok := parseHex(stem)
	if !ok {
		return Key{}, &InvalidFilenameError{Path: path, Field: stem}
	}
	return Key{Code: r, Name: stem}, nil
}

func parseHex(s string) (rune, bool) {
	if s == "" || s[0] == '+' || s[0] == '-' {
		return 0, false
	}
	x, err := strconv.ParseUint(s, 16, 32)
	if err != nil || x > utf8.MaxRune {
		return 0, false
	}
	return rune(x), true
}

// InvalidFilenameError is returned by [FromPath] if a file name cannot be
// interpreted as a codepoint or a sequence of codepoints.
type InvalidFilenameError struct {
	Path  string
	Field string
}

func (err *InvalidFilenameError) Error() string {
	return fmt.Sprintf("invalid artwork file name %q: %q is not a hexadecimal codepoint",
		err.Path, err.Field)
}
