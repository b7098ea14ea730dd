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

// Package sfntfile reads, modifies and writes sfnt font files at the level
// of individual tables.
//
// Tables which are not modified are copied to the output unchanged.
package sfntfile

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cmap"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/header"

	"seehuhn.de/go/colorfont"
	"seehuhn.de/go/colorfont/engine"
)

// Font is an sfnt font file, held in memory as a set of tables.
type Font struct {
	ScalerType uint32

	tables     map[string][]byte
	glyphNames []string
	glyphIDs   map[string]int
	unitsPerEm int
}

var _ engine.Font = (*Font)(nil)

// Open reads the font file at path.
func Open(path string) (*Font, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	f, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return f, nil
}

// Parse decodes an sfnt font file.
func Parse(data []byte) (*Font, error) {
	r := bytes.NewReader(data)
	info, err := header.Read(r)
	if err != nil {
		return nil, &MalformedFileError{Reason: "reading table directory", Err: err}
	}

	tables := make(map[string][]byte, len(info.Toc))
	for name := range info.Toc {
		body, err := info.ReadTableBytes(r, name)
		if err != nil {
			return nil, &MalformedFileError{Reason: "reading " + name, Err: err}
		}
		tables[name] = body
	}
	// the signature would be invalid after any change
	delete(tables, "DSIG")

	font, err := sfnt.Read(bytes.NewReader(data))
	if err != nil {
		return nil, &MalformedFileError{Reason: "decoding font", Err: err}
	}
	numGlyphs := font.NumGlyphs()
	names := make([]string, numGlyphs)
	ids := make(map[string]int, numGlyphs)
	for gid := range numGlyphs {
		name := font.GlyphName(glyph.ID(gid))
		names[gid] = name
		if _, seen := ids[name]; name != "" && !seen {
			ids[name] = gid
		}
	}

	colorfont.Logger().Debug("font loaded",
		"tables", len(tables),
		"glyphs", numGlyphs)

	return &Font{
		ScalerType: info.ScalerType,
		tables:     tables,
		glyphNames: names,
		glyphIDs:   ids,
		unitsPerEm: int(font.UnitsPerEm),
	}, nil
}

// NumGlyphs returns the number of glyphs in the font.
func (f *Font) NumGlyphs() int {
	return len(f.glyphNames)
}

// UnitsPerEm returns the number of design units per em.
func (f *Font) UnitsPerEm() int {
	return f.unitsPerEm
}

// GlyphID returns the glyph ID of the glyph with the given name,
// or [engine.NotFound] if there is no such glyph.
func (f *Font) GlyphID(name string) int {
	gid, ok := f.glyphIDs[name]
	if !ok {
		return engine.NotFound
	}
	return gid
}

// GlyphName returns the name of a glyph.  If the glyph has no name or gid
// is out of range, the empty string is returned.
func (f *Font) GlyphName(gid int) string {
	if gid < 0 || gid >= len(f.glyphNames) {
		return ""
	}
	return f.glyphNames[gid]
}

// CMapSubtables returns the encoded subtables of the "cmap" table.
func (f *Font) CMapSubtables() (cmap.Table, error) {
	data, ok := f.tables["cmap"]
	if !ok {
		return nil, &header.ErrMissing{TableName: "cmap"}
	}
	return cmap.Decode(data)
}

// Table returns the contents of a table.
func (f *Font) Table(tag string) ([]byte, bool) {
	data, ok := f.tables[tag]
	return data, ok
}

// SetTable replaces the table with the given tag.
// If data is nil, the table is removed.
func (f *Font) SetTable(tag string, data []byte) {
	if data == nil {
		delete(f.tables, tag)
		return
	}
	f.tables[tag] = data
}

// Save writes the font to a file.
//
// The data is first written to a temporary file in the same directory
// which is then renamed, so that no partial output is left behind.
func (f *Font) Save(path string) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return err
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName)

	tables := make(map[string][]byte, len(f.tables))
	for name, data := range f.tables {
		tables[name] = data
	}
	if head, ok := tables["head"]; ok {
		tables["head"] = bytes.Clone(head)
	}
	_, err = header.Write(tmp, f.ScalerType, tables)
	if err != nil {
		tmp.Close()
		return err
	}
	err = tmp.Close()
	if err != nil {
		return err
	}
	return os.Rename(tmpName, path)
}
