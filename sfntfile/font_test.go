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

package sfntfile

import (
	"encoding/binary"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"golang.org/x/image/font/gofont/goregular"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/colorfont/engine"
)

func TestGlyphNames(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	if f.ScalerType != header.ScalerTypeTrueType {
		t.Errorf("scaler type 0x%08x", f.ScalerType)
	}
	if f.UnitsPerEm() != 2048 {
		t.Errorf("units per em = %d", f.UnitsPerEm())
	}

	subtables, err := f.CMapSubtables()
	if err != nil {
		t.Fatal(err)
	}
	best, err := subtables.GetBest()
	if err != nil {
		t.Fatal(err)
	}
	gid := int(best.Lookup('A'))
	if gid == 0 {
		t.Fatal("no glyph for A")
	}
	if name := f.GlyphName(gid); name != "A" {
		t.Errorf("glyph %d is called %q", gid, name)
	}
	if got := f.GlyphID("A"); got != gid {
		t.Errorf("GlyphID(A) = %d, want %d", got, gid)
	}
	if got := f.GlyphID("no such glyph"); got != engine.NotFound {
		t.Errorf("GlyphID of missing glyph = %d", got)
	}
	if f.GlyphName(-1) != "" || f.GlyphName(f.NumGlyphs()) != "" {
		t.Error("out of range glyph has a name")
	}
}

func TestSaveRoundTrip(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	svg := []byte("test data, not a multiple of four")
	f.SetTable("SVG ", svg)
	f.SetTable("kern", nil)

	path := filepath.Join(t.TempDir(), "out.ttf")
	if err := f.Save(path); err != nil {
		t.Fatal(err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if sum := fileChecksum(data); sum != 0xB1B0AFBA {
		t.Errorf("file checksum 0x%08x", sum)
	}

	g, err := Open(path)
	if err != nil {
		t.Fatal(err)
	}
	got, ok := g.Table("SVG ")
	if !ok {
		t.Fatal("SVG table missing")
	}
	if d := cmp.Diff(svg, got); d != "" {
		t.Errorf("SVG table changed (-want +got):\n%s", d)
	}
	if _, ok := g.Table("kern"); ok {
		t.Error("kern table not removed")
	}
	if g.NumGlyphs() != f.NumGlyphs() {
		t.Errorf("glyph count changed from %d to %d", f.NumGlyphs(), g.NumGlyphs())
	}

	entries, err := os.ReadDir(filepath.Dir(path))
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		t.Errorf("temporary files left behind: %d entries", len(entries))
	}
}

func TestParseErrors(t *testing.T) {
	for _, data := range [][]byte{
		[]byte("wOFF\x00\x01"),
		goregular.TTF[:100],
	} {
		_, err := Parse(data)
		var malformed *MalformedFileError
		if !errors.As(err, &malformed) {
			t.Errorf("expected MalformedFileError, got %v", err)
		}
	}
}

func TestMissingCMap(t *testing.T) {
	f, err := Parse(goregular.TTF)
	if err != nil {
		t.Fatal(err)
	}
	f.SetTable("cmap", nil)
	_, err = f.CMapSubtables()
	if !header.IsMissing(err) {
		t.Errorf("expected missing table error, got %v", err)
	}
}

// fileChecksum returns the sum of all big-endian uint32 words in data,
// with zero padding at the end.
func fileChecksum(data []byte) uint32 {
	var sum uint32
	for len(data) >= 4 {
		sum += binary.BigEndian.Uint32(data)
		data = data[4:]
	}
	if len(data) > 0 {
		var last [4]byte
		copy(last[:], data)
		sum += binary.BigEndian.Uint32(last[:])
	}
	return sum
}
