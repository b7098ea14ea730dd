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

// Package config holds the settings for building a color font.
//
// Settings are read from a YAML file.  Command-line flags which are set
// explicitly take precedence over the values from the file.  Example:
//
//	output_file: build/EmojiOne.ttf
//	glyph_svg_dir: assets/svg-bw
//	color_svg_dir: assets/svg
//	em_size: 2048
//	table:
//	  name:
//	    family: EmojiOne Color
//	    version: "1.3"
package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"gopkg.in/yaml.v3"

	"seehuhn.de/go/colorfont/nametable"
)

// Config describes one font build.
type Config struct {
	OutputFile string `yaml:"output_file"`

	// GlyphSVGDir holds the monochrome artwork used for the glyph outlines.
	GlyphSVGDir string `yaml:"glyph_svg_dir"`

	// ColorSVGDir holds the color artwork for the "SVG " table.
	ColorSVGDir string `yaml:"color_svg_dir"`

	// ColorSVGTransform is prepended to the transform which fits the
	// color artwork into the em square.
	ColorSVGTransform string `yaml:"color_svg_transform"`

	// GlyphOffsetX and GlyphOffsetY move the monochrome outlines, in
	// design units.
	GlyphOffsetX float64 `yaml:"glyph_offset_x"`
	GlyphOffsetY float64 `yaml:"glyph_offset_y"`

	EmSize     int `yaml:"em_size"`
	Ascent     int `yaml:"ascent"`
	Descent    int `yaml:"descent"`
	GlyphWidth int `yaml:"glyph_width"`

	// Workers limits the number of color files processed concurrently.
	Workers int `yaml:"workers"`

	Verbose bool `yaml:"verbose"`

	Table Tables `yaml:"table"`
}

// Tables holds the settings for individual font tables.
type Tables struct {
	Name nametable.Config `yaml:"name"`
}

const (
	defaultEmSize    = 2048
	defaultFamily    = "Untitled"
	defaultSubfamily = "Regular"
	defaultVersion   = "1.0"
)

// Load reads the configuration file at path.
// Default values are not filled in, see [Config.SetDefaults].
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	cfg, err := Decode(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

// Decode reads a configuration in YAML format.  Unknown keys are an error.
// An empty document gives an empty configuration.
func Decode(r io.Reader) (*Config, error) {
	cfg := &Config{}
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	err := dec.Decode(cfg)
	if err != nil && !errors.Is(err, io.EOF) {
		return nil, err
	}
	return cfg, nil
}

// SetDefaults fills in the values which were not given.
func (c *Config) SetDefaults() {
	if c.EmSize == 0 {
		c.EmSize = defaultEmSize
	}
	if c.Ascent == 0 && c.Descent == 0 {
		c.Descent = c.EmSize / 5
		c.Ascent = c.EmSize - c.Descent
	}
	if c.GlyphWidth == 0 {
		c.GlyphWidth = c.EmSize
	}
	if c.Workers == 0 {
		c.Workers = runtime.GOMAXPROCS(0)
	}

	name := &c.Table.Name
	if name.Family == "" {
		name.Family = defaultFamily
	}
	if name.Subfamily == "" {
		name.Subfamily = defaultSubfamily
	}
	if name.Version == "" {
		name.Version = defaultVersion
	}
	if name.UniqueID == "" {
		name.UniqueID = name.FullName
		if name.UniqueID == "" {
			name.UniqueID = name.Family + " " + name.Subfamily
		}
	}
}

// Validate checks that the configuration describes a possible build.
func (c *Config) Validate() error {
	if c.OutputFile == "" {
		return &InvalidError{Key: "output_file", Reason: "missing"}
	}
	if c.GlyphSVGDir == "" && c.ColorSVGDir == "" {
		return &InvalidError{Key: "glyph_svg_dir", Reason: "neither glyph_svg_dir nor color_svg_dir given"}
	}
	if c.EmSize < 16 || c.EmSize > 16384 {
		return &InvalidError{Key: "em_size", Reason: fmt.Sprintf("%d is outside 16..16384", c.EmSize)}
	}
	if c.Ascent < 0 || c.Descent < 0 {
		return &InvalidError{Key: "ascent", Reason: "ascent and descent must not be negative"}
	}
	if c.GlyphWidth < 0 || c.GlyphWidth > 0xFFFF {
		return &InvalidError{Key: "glyph_width", Reason: fmt.Sprintf("invalid width %d", c.GlyphWidth)}
	}
	if c.Workers < 0 {
		return &InvalidError{Key: "workers", Reason: "must not be negative"}
	}
	return nil
}

// InvalidError is returned by [Config.Validate] for a wrong or missing value.
type InvalidError struct {
	Key    string
	Reason string
}

func (err *InvalidError) Error() string {
	return "config: " + err.Key + ": " + err.Reason
}
