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

package nametable

import (
	"regexp"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

var buildTime = time.Date(2026, 10, 14, 23, 30, 0, 0, time.FixedZone("X", -3*3600))

func TestRecordsDefaults(t *testing.T) {
	cfg := &Config{
		Family:    "Foo",
		Subfamily: "Regular",
		Version:   "1.0",
	}
	recs := Records(cfg, buildTime)

	if got := Lookup(recs, FullName); got != "Foo Regular" {
		t.Errorf("full name = %q", got)
	}
	if got := Lookup(recs, PostScriptName); got != "Foo-Regular" {
		t.Errorf("PostScript name = %q", got)
	}
	// 23:30 at UTC-3 is the next day in UTC
	if got := Lookup(recs, Version); got != "1.0 20261015" {
		t.Errorf("version = %q", got)
	}
	if got := Lookup(recs, UniqueID); got != "Foo Regular 20261015" {
		t.Errorf("unique ID = %q", got)
	}
}

func TestRecordsPlatforms(t *testing.T) {
	cfg := &Config{
		Family:      "Emoji Sans",
		Subfamily:   "Regular",
		Version:     "2.1",
		UniqueID:    "emoji-sans",
		Copyright:   "(c) 2026",
		License:     "OFL",
		LicenseURL:  "https://openfontlicense.org",
		Description: "test font",
	}
	recs := Records(cfg, buildTime)

	count := make(map[ID]int)
	for _, rec := range recs {
		count[rec.NameID]++
	}
	for id, n := range count {
		if n != 3 {
			t.Errorf("%s: %d records", id, n)
		}
	}
	// family, subfamily, full name, PostScript name plus the six fields above
	if len(count) != 10 {
		t.Errorf("got %d fields, want 10", len(count))
	}

	first := recs[:3]
	want := []Record{
		{Value: "(c) 2026", NameID: Copyright, PlatformID: 0, EncodingID: 0, LanguageID: 0},
		{Value: "(c) 2026", NameID: Copyright, PlatformID: 1, EncodingID: 0, LanguageID: 0},
		{Value: "(c) 2026", NameID: Copyright, PlatformID: 3, EncodingID: 1, LanguageID: 0x409},
	}
	if d := cmp.Diff(want, first); d != "" {
		t.Errorf("unexpected records (-want +got):\n%s", d)
	}

	dated := regexp.MustCompile(` \d{8}$`)
	for _, rec := range recs {
		if rec.NameID == Version || rec.NameID == UniqueID {
			if !dated.MatchString(rec.Value) {
				t.Errorf("%s %q does not end in a date", rec.NameID, rec.Value)
			}
		}
	}
}

func TestPostScriptName(t *testing.T) {
	cases := []struct{ family, sub, want string }{
		{"Foo", "Regular", "Foo-Regular"},
		{"Emoji One (Color)", "Bold Italic", "EmojiOneColor-BoldItalic"},
		{"Foo", "", "Foo"},
		{"", "Regular", ""},
	}
	for _, c := range cases {
		if got := postScriptName(c.family, c.sub); got != c.want {
			t.Errorf("postScriptName(%q, %q) = %q, want %q", c.family, c.sub, got, c.want)
		}
	}
}

func TestEncode(t *testing.T) {
	cfg := &Config{
		Family:    "Zapf™ Émoji",
		Subfamily: "Regular",
		Trademark: "🙂",
	}
	recs := Records(cfg, buildTime)
	data, err := Encode(recs)
	if err != nil {
		t.Fatal(err)
	}

	decoded, err := Decode(data)
	if err != nil {
		t.Fatal(err)
	}
	if len(decoded) != len(recs) {
		t.Fatalf("got %d records, want %d", len(decoded), len(recs))
	}
	for i := 1; i < len(decoded); i++ {
		a, b := decoded[i-1], decoded[i]
		ka := [4]uint16{a.PlatformID, a.EncodingID, a.LanguageID, uint16(a.NameID)}
		kb := [4]uint16{b.PlatformID, b.EncodingID, b.LanguageID, uint16(b.NameID)}
		if !(ka[0] < kb[0] || ka[0] == kb[0] && (ka[1] < kb[1] ||
			ka[1] == kb[1] && (ka[2] < kb[2] || ka[2] == kb[2] && ka[3] < kb[3]))) {
			t.Errorf("records %d and %d out of order", i-1, i)
		}
	}

	for _, rec := range decoded {
		var want string
		switch {
		case rec.NameID == Family:
			want = "Zapf™ Émoji"
		case rec.NameID == Trademark && rec.PlatformID == PlatformMac:
			want = "\x1a"
		case rec.NameID == Trademark:
			want = "🙂"
		default:
			continue
		}
		if rec.Value != want {
			t.Errorf("platform %d, %s: got %q, want %q",
				rec.PlatformID, rec.NameID, rec.Value, want)
		}
	}
}

func TestEncodeSharesStrings(t *testing.T) {
	recs := []Record{
		{Value: "same", NameID: Family, PlatformID: 3, EncodingID: 1, LanguageID: 0x409},
		{Value: "same", NameID: FullName, PlatformID: 3, EncodingID: 1, LanguageID: 0x409},
		{Value: "same", NameID: Family, PlatformID: 0},
	}
	data, err := Encode(recs)
	if err != nil {
		t.Fatal(err)
	}
	if want := 6 + 3*12 + 8; len(data) != want {
		t.Errorf("table size %d, want %d", len(data), want)
	}
}

func TestEncodeBadPlatform(t *testing.T) {
	_, err := Encode([]Record{{Value: "x", PlatformID: 2}})
	if err == nil {
		t.Error("platform 2 accepted")
	}
}

func FuzzNames(f *testing.F) {
	seed, err := Encode(Records(&Config{
		Family:      "Test",
		Subfamily:   "Regular",
		Version:     "1.0",
		Copyright:   "Copyright (c) 2026 Jochen Voss <voss@seehuhn.de>",
		Description: "This is a test.",
	}, buildTime))
	if err != nil {
		f.Fatal(err)
	}
	f.Add(seed)

	f.Fuzz(func(t *testing.T, in []byte) {
		r1, err := Decode(in)
		if err != nil {
			return
		}
		buf, err := Encode(r1)
		if err != nil {
			return
		}
		r2, err := Decode(buf)
		if err != nil {
			t.Fatal(err)
		}
		if len(r1) != len(r2) {
			t.Errorf("record count changed from %d to %d", len(r1), len(r2))
		}
	})
}
