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

// Package build runs the steps which turn directories of SVG artwork into a
// color font.
//
// A build first creates a base font, containing one glyph for every file in
// the monochrome glyph directory together with the ligature substitutions
// for character sequences.  The base font is written to a temporary file
// and read back, the color artwork is attached to the glyphs as an "SVG "
// table, a new "name" table is added, and the result is written to the
// output file.
//
// [Import] adds color artwork to an existing font instead.
package build

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"sync"
	"time"

	"seehuhn.de/go/colorfont"
	"seehuhn.de/go/colorfont/basefont"
	"seehuhn.de/go/colorfont/config"
	"seehuhn.de/go/colorfont/engine"
	"seehuhn.de/go/colorfont/nametable"
	"seehuhn.de/go/colorfont/sfntfile"
)

// Options control how a build is run.
type Options struct {
	// Workers is the number of color files rewritten concurrently.
	// If this is zero, the value from the configuration is used, and
	// if this is also zero, runtime.GOMAXPROCS(0).
	Workers int

	// Now is the build time.  The zero value stands for the current time.
	Now time.Time
}

// Result summarizes a successful build.
type Result struct {
	// NumGlyphs is the number of glyphs created from monochrome artwork.
	NumGlyphs int

	// NumEntries is the number of color documents in the "SVG " table.
	NumEntries int

	Warnings []Warning
}

// engines gives access to the font engine.
type engines struct {
	newBuilder func(*basefont.Config) (engine.FontBuilder, error)
	open       func(path string) (engine.Font, error)
}

var defaultEngines = engines{
	newBuilder: func(cfg *basefont.Config) (engine.FontBuilder, error) {
		return basefont.New(cfg)
	},
	open: func(path string) (engine.Font, error) {
		return sfntfile.Open(path)
	},
}

// buildContext holds the state of a single build.
type buildContext struct {
	cfg     *config.Config
	workers int
	now     time.Time
	eng     engines
	log     *slog.Logger

	mu       sync.Mutex
	warnings []Warning
}

func newContext(cfg *config.Config, opts Options, eng engines) *buildContext {
	workers := opts.Workers
	if workers <= 0 {
		workers = cfg.Workers
	}
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}
	return &buildContext{
		cfg:     cfg,
		workers: workers,
		now:     now,
		eng:     eng,
		log:     colorfont.Logger(),
	}
}

// warn records a warning and logs it.
func (b *buildContext) warn(kind Kind, file, detail string, args ...any) {
	b.mu.Lock()
	b.warnings = append(b.warnings, Warning{Kind: kind, File: file, Detail: detail})
	b.mu.Unlock()

	args = append([]any{"kind", kind.String(), "file", file}, args...)
	b.log.Warn(detail, args...)
}

// Run builds the color font described by cfg and writes it to
// cfg.OutputFile.  The configuration must be complete, see
// [config.Config.SetDefaults].
//
// If an error is returned, no output file is written.
func Run(ctx context.Context, cfg *config.Config, opts Options) (*Result, error) {
	return run(ctx, cfg, opts, defaultEngines)
}

func run(ctx context.Context, cfg *config.Config, opts Options, eng engines) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	b := newContext(cfg, opts, eng)

	builder, err := eng.newBuilder(&basefont.Config{
		FamilyName: cfg.Table.Name.Family,
		EmSize:     cfg.EmSize,
		Ascent:     cfg.Ascent,
		Descent:    cfg.Descent,
		GlyphWidth: cfg.GlyphWidth,
		Feature:    ligatureFeature,
		Lookup:     ligatureLookup,
		Created:    b.now,
	})
	if err != nil {
		return nil, err
	}

	numGlyphs := 0
	if cfg.GlyphSVGDir != "" {
		numGlyphs, err = b.addGlyphs(ctx, builder, cfg.GlyphSVGDir)
		if err != nil {
			return nil, err
		}
	}

	tmpDir, err := os.MkdirTemp("", "colorfont-")
	if err != nil {
		return nil, err
	}
	defer os.RemoveAll(tmpDir)

	tmpPath := filepath.Join(tmpDir, "base.otf")
	if err := builder.WriteIntermediate(tmpPath); err != nil {
		return nil, err
	}
	font, err := eng.open(tmpPath)
	if err != nil {
		return nil, fmt.Errorf("reading intermediate font: %w", err)
	}

	numEntries := 0
	if cfg.ColorSVGDir != "" {
		numEntries, err = b.addColor(ctx, font, cfg.ColorSVGDir, false)
		if err != nil {
			return nil, err
		}
	}
	if err := b.addNames(font); err != nil {
		return nil, err
	}

	if err := b.save(font); err != nil {
		return nil, err
	}
	return &Result{
		NumGlyphs:  numGlyphs,
		NumEntries: numEntries,
		Warnings:   b.warnings,
	}, nil
}

// ImportOptions control [Import].
type ImportOptions struct {
	Options

	// Rename replaces the "name" table of the font by one built from the
	// configuration.  Otherwise the existing names are kept.
	Rename bool

	// FontEmSize makes the color artwork use the em size of the input
	// font instead of the configured one.
	FontEmSize bool
}

// unitsPerEmer is implemented by fonts which know their em size.
type unitsPerEmer interface {
	UnitsPerEm() int
}

// tableGetter is implemented by fonts which give access to the raw table data.
type tableGetter interface {
	Table(tag string) ([]byte, bool)
}

// Import adds the color artwork from cfg.ColorSVGDir to the font at
// inputPath and writes the result to cfg.OutputFile.  Artwork files for
// characters which the font does not map are skipped.
func Import(ctx context.Context, inputPath string, cfg *config.Config, opts ImportOptions) (*Result, error) {
	return runImport(ctx, inputPath, cfg, opts, defaultEngines)
}

func runImport(ctx context.Context, inputPath string, cfg *config.Config, opts ImportOptions, eng engines) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if cfg.ColorSVGDir == "" {
		return nil, &config.InvalidError{Key: "color_svg_dir", Reason: "missing"}
	}
	b := newContext(cfg, opts.Options, eng)

	font, err := eng.open(inputPath)
	if err != nil {
		return nil, err
	}
	if u, ok := font.(unitsPerEmer); ok && opts.FontEmSize && u.UnitsPerEm() > 0 {
		fontCfg := *cfg
		fontCfg.EmSize = u.UnitsPerEm()
		b.cfg = &fontCfg
	}
	numEntries, err := b.addColor(ctx, font, cfg.ColorSVGDir, true)
	if err != nil {
		return nil, err
	}
	if opts.Rename {
		if err := b.addNames(font); err != nil {
			return nil, err
		}
	} else {
		b.keepNames(font)
	}

	if err := b.save(font); err != nil {
		return nil, err
	}
	return &Result{NumEntries: numEntries, Warnings: b.warnings}, nil
}

func (b *buildContext) addNames(font engine.Font) error {
	records := nametable.Records(&b.cfg.Table.Name, b.now)
	data, err := nametable.Encode(records)
	if err != nil {
		return fmt.Errorf("name table: %w", err)
	}
	font.SetTable("name", data)
	b.log.Debug("added name table",
		"family", nametable.Lookup(records, nametable.Family),
		"version", nametable.Lookup(records, nametable.Version))
	return nil
}

// keepNames logs the family name of a font whose "name" table is kept.
func (b *buildContext) keepNames(font engine.Font) {
	t, ok := font.(tableGetter)
	if !ok {
		return
	}
	data, ok := t.Table("name")
	if !ok {
		b.log.Info("font has no name table")
		return
	}
	records, err := nametable.Decode(data)
	if err != nil {
		b.log.Warn("cannot decode existing name table", "error", err)
		return
	}
	b.log.Info("keeping existing name table",
		"family", nametable.Lookup(records, nametable.Family),
		"version", nametable.Lookup(records, nametable.Version))
}

func (b *buildContext) save(font engine.Font) error {
	out := b.cfg.OutputFile
	if dir := filepath.Dir(out); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	b.log.Info("saving output file", "path", out)
	return font.Save(out)
}
