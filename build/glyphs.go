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
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"seehuhn.de/go/colorfont/basefont"
	"seehuhn.de/go/colorfont/codepoint"
	"seehuhn.de/go/colorfont/engine"
	"seehuhn.de/go/colorfont/zwj"
)

// The feature and lookup used for ligature substitutions.
const (
	ligatureFeature = "liga"
	ligatureLookup  = "liga"
)

// artworkFiles returns the paths of all SVG files in dir, sorted by name,
// together with their keys.
func artworkFiles(dir string) ([]string, []codepoint.Key, error) {
	des, err := os.ReadDir(dir)
	if err != nil {
		return nil, nil, err
	}
	var paths []string
	for _, de := range des {
		if de.IsDir() || !strings.EqualFold(filepath.Ext(de.Name()), ".svg") {
			continue
		}
		paths = append(paths, filepath.Join(dir, de.Name()))
	}
	slices.Sort(paths)

	keys := make([]codepoint.Key, len(paths))
	for i, path := range paths {
		keys[i], err = codepoint.FromPath(path)
		if err != nil {
			return nil, nil, err
		}
	}
	return paths, keys, nil
}

type ligatureGlyph struct {
	path  string
	key   codepoint.Key
	glyph engine.Glyph
}

// addGlyphs creates a glyph for every SVG file in dir.  Once all glyphs
// exist, the substitutions for the ligature glyphs are registered.
func (b *buildContext) addGlyphs(ctx context.Context, font engine.FontBuilder, dir string) (int, error) {
	paths, keys, err := artworkFiles(dir)
	if err != nil {
		return 0, err
	}
	b.log.Info("importing glyph outlines", "dir", dir, "files", len(paths))

	n := 0
	var ligs []ligatureGlyph
	for i, path := range paths {
		if err := ctx.Err(); err != nil {
			return 0, err
		}
		key := keys[i]

		var g engine.Glyph
		if key.IsLigature() {
			g, err = font.CreateGlyph(-1, false, key.Name)
		} else {
			g, err = font.CreateGlyph(key.Code, true, codepoint.GlyphName(key.Code))
		}
		var dup *basefont.DuplicateGlyphError
		if errors.As(err, &dup) {
			b.warn(DuplicateGlyph, path, err.Error(), "key", key.String())
			continue
		} else if err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}

		data, err := os.ReadFile(path)
		if err != nil {
			return 0, err
		}
		if err := g.ImportOutline(data); err != nil {
			return 0, fmt.Errorf("%s: %w", path, err)
		}
		if dx, dy := b.cfg.GlyphOffsetX, b.cfg.GlyphOffsetY; dx != 0 || dy != 0 {
			g.TranslateOutline(dx, dy)
		}
		g.SetAdvanceWidth(b.cfg.GlyphWidth)
		g.NormalizeOutline()
		n++

		if key.IsLigature() {
			ligs = append(ligs, ligatureGlyph{path: path, key: key, glyph: g})
		} else {
			b.log.Debug("created glyph", "glyph", g.Name(), "char", charNames([]rune{key.Code}))
		}
	}

	for _, l := range ligs {
		if err := b.addLigature(font, l); err != nil {
			return 0, err
		}
	}
	return n, nil
}

func (b *buildContext) addLigature(font engine.FontBuilder, l ligatureGlyph) error {
	res := zwj.Canonicalize(l.key.Sequence)
	if !res.Matched {
		b.warn(UnmatchedSequence, l.path, "sequence is not in the ZWJ table, using it unchanged",
			"chars", charNames(l.key.Sequence))
	}

	for _, seq := range res.Alternatives() {
		components := codepoint.GlyphNames(seq)
		err := font.AddSubstitution(l.glyph, ligatureLookup, components)

		var missing *basefont.MissingGlyphError
		var dup *basefont.DuplicateGlyphError
		switch {
		case errors.As(err, &missing):
			b.warn(GlyphNotFound, l.path, err.Error(), "chars", charNames(seq))
		case errors.As(err, &dup):
			b.warn(DuplicateGlyph, l.path, err.Error())
		case err != nil:
			return fmt.Errorf("%s: %w", l.path, err)
		default:
			b.log.Debug("added ligature", "glyph", l.glyph.Name(), "components", strings.Join(components, " "))
		}
	}
	return nil
}
