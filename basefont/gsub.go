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

package basefont

import (
	"cmp"
	"slices"

	"golang.org/x/text/language"
	"seehuhn.de/go/sfnt/glyph"
	"seehuhn.de/go/sfnt/opentype/coverage"
	"seehuhn.de/go/sfnt/opentype/gtab"
)

// The ligature feature is registered for the default script and for the
// Latin script.
var gsubScripts = []language.Tag{
	language.MustParse("und-Zzzz-x-dflt"),
	language.MustParse("und-Latn-x-latn"),
}

// gsubInfo returns the "GSUB" information with all ligature substitutions,
// or nil if the font has no ligatures.
//
// The table has one feature and one lookup of type 4 (ligature
// substitution).
func (f *Font) gsubInfo() (*gtab.Info, error) {
	ligs := f.lookups[f.cfg.Lookup]
	if len(ligs) == 0 {
		return nil, nil
	}

	gid := make(map[string]glyph.ID, len(f.glyphs))
	for i, g := range f.glyphs {
		gid[g.name] = glyph.ID(i)
	}

	subtable, err := ligatureSubst(ligs, gid)
	if err != nil {
		return nil, err
	}

	scripts := make(gtab.ScriptListInfo, len(gsubScripts))
	for _, tag := range gsubScripts {
		scripts[tag] = &gtab.Features{
			Required: 0xFFFF,
			Optional: []gtab.FeatureIndex{0},
		}
	}

	return &gtab.Info{
		ScriptList: scripts,
		FeatureList: gtab.FeatureListInfo{
			{Tag: f.cfg.Feature, Lookups: []gtab.LookupIndex{0}},
		},
		LookupList: gtab.LookupList{
			{
				Meta:      &gtab.LookupMetaInfo{LookupType: 4},
				Subtables: []gtab.Subtable{subtable},
			},
		},
	}, nil
}

// ligatureSubst converts the ligatures into a ligature substitution
// subtable.
func ligatureSubst(ligs []ligature, gid map[string]glyph.ID) (*gtab.Gsub4_1, error) {
	sets := make(map[glyph.ID][]gtab.Ligature)
	for _, l := range ligs {
		comp := make([]glyph.ID, len(l.components))
		for i, name := range l.components {
			id, ok := gid[name]
			if !ok {
				return nil, &MissingGlyphError{Ligature: l.lig.name, Component: name}
			}
			comp[i] = id
		}
		sets[comp[0]] = append(sets[comp[0]], gtab.Ligature{
			In:  comp[1:],
			Out: gid[l.lig.name],
		})
	}

	first := make([]glyph.ID, 0, len(sets))
	for g := range sets {
		first = append(first, g)
	}
	slices.Sort(first)

	res := &gtab.Gsub4_1{
		Cov:  make(coverage.Table, len(first)),
		Repl: make([][]gtab.Ligature, len(first)),
	}
	for i, g := range first {
		set := sets[g]
		// Ligatures in a set are tried in order, so longer sequences go first.
		slices.SortStableFunc(set, func(a, b gtab.Ligature) int {
			return cmp.Compare(len(b.In), len(a.In))
		})
		res.Cov[g] = i
		res.Repl[i] = set
	}
	return res, nil
}
