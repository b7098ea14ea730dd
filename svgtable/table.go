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

package svgtable

import (
	"bytes"
	"encoding/binary"
	"errors"
	"math"
	"slices"
)

// Entry is one document of the SVG table.
//
// The document covers the glyphs Start, ..., End.  Documents produced by
// this package always describe exactly one glyph, so that Start == End.
type Entry struct {
	Document []byte
	Start    int
	End      int

	// Source is the file the document was read from.
	// It is not stored in the font.
	Source string
}

// Table collects the SVG documents of a font.
type Table struct {
	entries []Entry
	byGlyph map[int]int
}

// Add adds a new entry to the table.  If the table already contains a
// document for the same glyph, the old document is replaced and Add
// returns true.
//
// Entries with a negative glyph id never replace each other.
func (t *Table) Add(e Entry) (replaced bool) {
	if t.byGlyph == nil {
		t.byGlyph = make(map[int]int)
	}
	if e.Start < 0 {
		t.entries = append(t.entries, e)
		return false
	}
	if idx, ok := t.byGlyph[e.Start]; ok {
		t.entries[idx] = e
		return true
	}
	t.byGlyph[e.Start] = len(t.entries)
	t.entries = append(t.entries, e)
	return false
}

// Len returns the number of entries in the table.
func (t *Table) Len() int {
	return len(t.entries)
}

// Sort orders the entries by glyph id.
func (t *Table) Sort() {
	slices.SortStableFunc(t.entries, func(a, b Entry) int {
		return a.Start - b.Start
	})
	for i, e := range t.entries {
		if e.Start >= 0 {
			t.byGlyph[e.Start] = i
		}
	}
}

// Entries returns the entries of the table, in the current order.
// The returned slice must not be modified.
func (t *Table) Entries() []Entry {
	return t.entries
}

// ErrUnsorted is returned by [Table.Encode] if the table is not sorted.
var ErrUnsorted = errors.New("SVG table entries are not sorted by glyph id")

// Encode returns the binary representation of the "SVG " table.
//
// Identical documents are stored only once.  Entries where the glyph ids
// cannot be represented in the font file (in particular, entries for
// glyphs which were not found) are left out and returned in skipped.
func (t *Table) Encode() (data []byte, skipped []Entry, err error) {
	var keep []Entry
	for _, e := range t.entries {
		if e.Start < 0 || e.End < e.Start || e.End > math.MaxUint16 {
			skipped = append(skipped, e)
			continue
		}
		if len(keep) > 0 && keep[len(keep)-1].End >= e.Start {
			return nil, nil, ErrUnsorted
		}
		keep = append(keep, e)
	}

	const headerSize = 10
	const recordSize = 12
	listSize := 2 + recordSize*len(keep)

	buf := make([]byte, headerSize+listSize)
	binary.BigEndian.PutUint16(buf[0:], 0)          // version
	binary.BigEndian.PutUint32(buf[2:], headerSize) // svgDocumentListOffset
	// reserved: 4 zero bytes

	list := buf[headerSize:]
	binary.BigEndian.PutUint16(list[0:], uint16(len(keep)))

	// document offsets are relative to the start of the document list
	offsets := make(map[string]uint32)
	var storage bytes.Buffer
	for i, e := range keep {
		offs, seen := offsets[string(e.Document)]
		if !seen {
			offs = uint32(listSize + storage.Len())
			offsets[string(e.Document)] = offs
			storage.Write(e.Document)
		}
		rec := list[2+i*recordSize:]
		binary.BigEndian.PutUint16(rec[0:], uint16(e.Start))
		binary.BigEndian.PutUint16(rec[2:], uint16(e.End))
		binary.BigEndian.PutUint32(rec[4:], offs)
		binary.BigEndian.PutUint32(rec[8:], uint32(len(e.Document)))
	}

	return append(buf, storage.Bytes()...), skipped, nil
}
