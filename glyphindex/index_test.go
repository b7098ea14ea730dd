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
	"errors"
	"testing"

	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"

	"seehuhn.de/go/colorfont/codepoint"
	"seehuhn.de/go/colorfont/engine"
)

// testFont is a minimal font with named glyphs.
type testFont []string

func (f testFont) GlyphName(gid int) string {
	if gid < 0 || gid >= len(f) {
		return ""
	}
	return f[gid]
}

func (f testFont) GlyphID(name string) int {
	for i, n := range f {
		if n == name {
			return i
		}
	}
	return engine.NotFound
}

var font = testFont{".notdef", "A", "B", "grin", "1f468-200d-1f469", "alt.A", "", "u1F602"}

func TestIndexSubtableOrder(t *testing.T) {
	subtables := cmap.Table{
		{PlatformID: 0, EncodingID: 3}:  cmap.Format4{'A': 1, 'B': 2}.Encode(0),
		{PlatformID: 3, EncodingID: 1}:  cmap.Format4{'A': 5}.Encode(0),
		{PlatformID: 3, EncodingID: 10}: cmap.Format12{0x1F600: 3}.Encode(0),
		{PlatformID: 1, EncodingID: 0}:  cmap.Format4{'B': 5}.Encode(0),
	}
	idx, err := New(subtables, font)
	if err != nil {
		t.Fatal(err)
	}

	cases := []struct {
		r    rune
		name string
		ok   bool
	}{
		{'A', "alt.A", true}, // (3,1) comes after (0,3)
		{'B', "B", true},     // Macintosh subtables are ignored
		{0x1F600, "grin", true},
		{'C', "", false},
	}
	for _, c := range cases {
		name, ok := idx.Lookup(c.r)
		if name != c.name || ok != c.ok {
			t.Errorf("%q: got (%q, %v), want (%q, %v)", c.r, name, ok, c.name, c.ok)
		}
	}
	if idx.Len() != 3 {
		t.Errorf("expected 3 entries, got %d", idx.Len())
	}
}

func TestIndexNoCodepoints(t *testing.T) {
	for _, subtables := range []cmap.Table{
		nil,
		{{PlatformID: 1, EncodingID: 0}: cmap.Format4{'A': 1}.Encode(0)},
		{{PlatformID: 3, EncodingID: 1}: cmap.Format4{}.Encode(0)},
	} {
		_, err := New(subtables, font)
		if !errors.Is(err, ErrNoCodepoints) {
			t.Errorf("expected ErrNoCodepoints, got %v", err)
		}
	}
}

func TestResolve(t *testing.T) {
	subtables := cmap.Table{
		{PlatformID: 3, EncodingID: 10}: cmap.Format12{
			'A':     1,
			0x1F600: 3,
			0x1F601: 6, // glyph without a name
		}.Encode(0),
	}
	idx, err := New(subtables, font)
	if err != nil {
		t.Fatal(err)
	}
	res := NewResolver(idx, font)

	mustKey := func(path string) codepoint.Key {
		key, err := codepoint.FromPath(path)
		if err != nil {
			t.Fatal(err)
		}
		return key
	}

	cases := []struct {
		path     string
		gid      int
		ligature bool
	}{
		{"0041.svg", 1, false},
		{"1f600.svg", font.GlyphID("grin"), false},
		{"1f601.svg", 6, false},
		{"1f468-200d-1f469.svg", 4, true},
		{"1f602.svg", engine.NotFound, true}, // "1f602" is not "u1F602"
		{"1f603.svg", engine.NotFound, true},
		{"1f469-1f469.svg", engine.NotFound, true},
	}
	for _, c := range cases {
		got := res.Resolve(mustKey(c.path))
		if got.GlyphID != c.gid || got.Ligature != c.ligature {
			t.Errorf("%s: got %+v, want gid %d, ligature %v", c.path, got, c.gid, c.ligature)
		}
		if got.Found() != (c.gid != engine.NotFound) {
			t.Errorf("%s: wrong Found() result", c.path)
		}
	}
}

func TestResolveSameAsName(t *testing.T) {
	subtables := cmap.Table{
		{PlatformID: 0, EncodingID: 4}: cmap.Format12{0x1F600: glyph.ID(font.GlyphID("grin"))}.Encode(0),
	}
	idx, err := New(subtables, font)
	if err != nil {
		t.Fatal(err)
	}
	key, err := codepoint.FromPath("1f600.svg")
	if err != nil {
		t.Fatal(err)
	}
	got := NewResolver(idx, font).Resolve(key)
	if got.GlyphID != font.GlyphID("grin") || got.GlyphName != "grin" {
		t.Errorf("got %+v", got)
	}
}
