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

// Package basefont creates the monochrome base font of a color font.
//
// The base font contains a glyph for every character and every ligature
// which has color artwork.  Color-capable renderers replace these glyphs
// by the SVG documents, all other renderers show the monochrome outlines.
package basefont

import (
	"bytes"
	"errors"
	"fmt"
	"math"
	"os"
	"slices"
	"time"

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/postscript/funit"
	"seehuhn.de/go/postscript/type1"
	"seehuhn.de/go/sfnt"
	"seehuhn.de/go/sfnt/cff"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/os2"

	"seehuhn.de/go/colorfont"
	"seehuhn.de/go/colorfont/engine"
	"seehuhn.de/go/colorfont/zwj"
)

// Config describes the base font.
// Zero values are replaced by defaults.
type Config struct {
	FamilyName string

	// EmSize is the number of design units per em (default 2048).
	EmSize int

	// Ascent and Descent give the extent of the em square above and below
	// the baseline.  Both are positive numbers.  The defaults are 80% and
	// 20% of the em size.
	Ascent  int
	Descent int

	// GlyphWidth is the advance width of new glyphs (default: the em size).
	GlyphWidth int

	// Feature and Lookup are the OpenType feature tag and the name of the
	// lookup used for ligature substitutions (both default to "liga").
	Feature string
	Lookup  string

	// Created is the creation time stored in the font.
	Created time.Time
}

// Font is a base font under construction.
type Font struct {
	cfg Config

	glyphs []*Glyph
	byName map[string]*Glyph
	byCode map[rune]*Glyph

	lookups map[string][]ligature
}

var _ engine.FontBuilder = (*Font)(nil)

type ligature struct {
	lig        *Glyph
	components []string
}

// New creates a font which contains only the required glyphs.
func New(cfg *Config) (*Font, error) {
	c := *cfg
	if c.FamilyName == "" {
		c.FamilyName = "Untitled"
	}
	if c.EmSize == 0 {
		c.EmSize = 2048
	}
	if c.EmSize < 16 || c.EmSize > 16384 {
		return nil, fmt.Errorf("invalid em size %d", c.EmSize)
	}
	if c.Ascent == 0 && c.Descent == 0 {
		c.Ascent = int(math.Round(0.8 * float64(c.EmSize)))
		c.Descent = c.EmSize - c.Ascent
	}
	if c.Ascent < 0 || c.Descent < 0 {
		return nil, errors.New("ascent and descent must be non-negative")
	}
	if c.GlyphWidth == 0 {
		c.GlyphWidth = c.EmSize
	}
	if c.Feature == "" {
		c.Feature = "liga"
	}
	if len(c.Feature) != 4 {
		return nil, fmt.Errorf("invalid feature tag %q", c.Feature)
	}
	if c.Lookup == "" {
		c.Lookup = "liga"
	}
	if c.Created.IsZero() {
		c.Created = time.Now()
	}

	f := &Font{
		cfg:     c,
		byName:  make(map[string]*Glyph),
		byCode:  make(map[rune]*Glyph),
		lookups: map[string][]ligature{c.Lookup: nil},
	}

	_, err := f.CreateGlyph(0, false, ".notdef")
	if err != nil {
		return nil, err
	}
	for _, g := range requiredGlyphs {
		_, err := f.CreateGlyph(g.code, true, g.name)
		if err != nil {
			return nil, err
		}
	}

	colorfont.Logger().Info("creating a new font",
		"family", c.FamilyName, "em", c.EmSize)

	return f, nil
}

var requiredGlyphs = []struct {
	code rune
	name string
}{
	{0x0000, "NULL"},
	{0x000D, "CR"},
	{0x0020, "space"},
	{zwj.ZWJ, "uni200D"},
	{zwj.VS16, "uniFE0F"},
}

// CreateGlyph adds a new, empty glyph to the font.
// If encoded is true, the glyph is mapped to the given character in the
// "cmap" table.
func (f *Font) CreateGlyph(code rune, encoded bool, name string) (engine.Glyph, error) {
	if name == "" {
		return nil, errors.New("glyph name must not be empty")
	}
	if _, exists := f.byName[name]; exists {
		return nil, &DuplicateGlyphError{Name: name}
	}
	if encoded {
		if other, exists := f.byCode[code]; exists {
			return nil, &DuplicateGlyphError{Name: name, Code: code, Other: other.name}
		}
	}
	if len(f.glyphs) >= 0xFFFF {
		return nil, errors.New("too many glyphs")
	}

	g := &Glyph{
		font:  f,
		name:  name,
		code:  code,
		width: f.cfg.GlyphWidth,
	}
	f.glyphs = append(f.glyphs, g)
	f.byName[name] = g
	if encoded {
		g.encoded = true
		f.byCode[code] = g
	}
	return g, nil
}

// HasGlyph reports whether the font contains a glyph with the given name.
func (f *Font) HasGlyph(name string) bool {
	_, ok := f.byName[name]
	return ok
}

// NumGlyphs returns the number of glyphs created so far.
func (f *Font) NumGlyphs() int {
	return len(f.glyphs)
}

// AddSubstitution registers a ligature: the sequence of glyphs with the
// given names is replaced by lig.  All glyphs must already exist.
func (f *Font) AddSubstitution(lig engine.Glyph, lookup string, components []string) error {
	g, ok := lig.(*Glyph)
	if !ok || g.font != f {
		return errors.New("ligature glyph belongs to a different font")
	}
	subst, ok := f.lookups[lookup]
	if !ok {
		return fmt.Errorf("unknown lookup %q", lookup)
	}
	if len(components) < 2 {
		return fmt.Errorf("ligature %q: need at least two components", g.name)
	}
	for _, name := range components {
		if !f.HasGlyph(name) {
			return &MissingGlyphError{Ligature: g.name, Component: name}
		}
	}
	for _, l := range subst {
		if slices.Equal(l.components, components) {
			return &DuplicateGlyphError{Name: g.name, Other: l.lig.name}
		}
	}
	f.lookups[lookup] = append(subst, ligature{
		lig:        g,
		components: slices.Clone(components),
	})
	return nil
}

// WriteIntermediate writes the font to path as an OpenType font with CFF
// outlines.
func (f *Font) WriteIntermediate(path string) error {
	info, err := f.sfntFont()
	if err != nil {
		return err
	}

	buf := &bytes.Buffer{}
	_, err = info.Write(buf)
	if err != nil {
		return fmt.Errorf("encoding base font: %w", err)
	}

	colorfont.Logger().Info("writing intermediate font file",
		"path", path, "glyphs", len(f.glyphs))
	return os.WriteFile(path, buf.Bytes(), 0o644)
}

func (f *Font) sfntFont() (*sfnt.Font, error) {
	gsub, err := f.gsubInfo()
	if err != nil {
		return nil, err
	}

	em := float64(f.cfg.EmSize)

	outlines := &cff.Outlines{
		Private: []*type1.PrivateDict{
			{
				BlueValues: []funit.Int16{
					-funit.Int16(f.cfg.Descent), -funit.Int16(f.cfg.Descent),
					funit.Int16(f.cfg.Ascent), funit.Int16(f.cfg.Ascent),
				},
				BlueScale: 0.039625,
				BlueShift: 7,
				BlueFuzz:  1,
			},
		},
		FDSelect: func(glyph.ID) int { return 0 },
	}
	for _, g := range f.glyphs {
		outlines.Glyphs = append(outlines.Glyphs, g.cffGlyph())
	}

	return &sfnt.Font{
		FamilyName:         f.cfg.FamilyName,
		Width:              os2.WidthNormal,
		Weight:             os2.WeightNormal,
		IsRegular:          true,
		CreationTime:       f.cfg.Created,
		UnitsPerEm:         uint16(f.cfg.EmSize),
		FontMatrix:         matrix.Matrix{1 / em, 0, 0, 1 / em, 0, 0},
		Ascent:             funit.Int16(f.cfg.Ascent),
		Descent:            -funit.Int16(f.cfg.Descent),
		LineGap:            0,
		CapHeight:          funit.Int16(math.Round(0.7 * em)),
		XHeight:            funit.Int16(math.Round(0.5 * em)),
		UnderlinePosition:  funit.Float64(-0.1 * em),
		UnderlineThickness: funit.Float64(0.05 * em),
		PermUse:            os2.PermInstall,
		Outlines:           outlines,
		CMapTable:          f.cmapTable(),
		Gsub:               gsub,
	}, nil
}

// DuplicateGlyphError is returned when a glyph name, a character or a
// ligature is used twice.
type DuplicateGlyphError struct {
	Name  string
	Code  rune
	Other string
}

func (err *DuplicateGlyphError) Error() string {
	if err.Other != "" {
		return fmt.Sprintf("glyph %q conflicts with existing glyph %q", err.Name, err.Other)
	}
	return fmt.Sprintf("duplicate glyph name %q", err.Name)
}

// MissingGlyphError is returned by [Font.AddSubstitution] if one of the
// components of a ligature does not exist.
type MissingGlyphError struct {
	Ligature  string
	Component string
}

func (err *MissingGlyphError) Error() string {
	return fmt.Sprintf("ligature %q: no glyph %q", err.Ligature, err.Component)
}
