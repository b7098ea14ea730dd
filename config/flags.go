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

package config

import (
	"flag"
	"fmt"
)

// Flag names used by [AddFlags].
const (
	FlagOutput    = "o"
	FlagGlyphDir  = "glyph-dir"
	FlagColorDir  = "color-dir"
	FlagTransform = "transform"
	FlagEmSize    = "em"
	FlagWorkers   = "workers"
	FlagVerbose   = "v"
)

// AddFlags defines the command-line flags which can override values from
// the configuration file.
func AddFlags(fs *flag.FlagSet) {
	fs.String(FlagOutput, "", "write the font to `file`")
	fs.String(FlagGlyphDir, "", "read monochrome glyph artwork from `dir`")
	fs.String(FlagColorDir, "", "read color artwork from `dir`")
	fs.String(FlagTransform, "", "prepend `transform` to the color artwork transform")
	fs.Int(FlagEmSize, 0, "use `n` design units per em")
	fs.Int(FlagWorkers, 0, "process up to `n` color files concurrently")
	fs.Bool(FlagVerbose, false, "enable debug output")
}

// ApplyFlags copies the values of all flags from [AddFlags] which were set
// on the command line into c.
func (c *Config) ApplyFlags(fs *flag.FlagSet) error {
	var err error
	fs.Visit(func(f *flag.Flag) {
		getter, ok := f.Value.(flag.Getter)
		if !ok || err != nil {
			return
		}
		val := getter.Get()
		switch f.Name {
		case FlagOutput:
			c.OutputFile, ok = val.(string)
		case FlagGlyphDir:
			c.GlyphSVGDir, ok = val.(string)
		case FlagColorDir:
			c.ColorSVGDir, ok = val.(string)
		case FlagTransform:
			c.ColorSVGTransform, ok = val.(string)
		case FlagEmSize:
			c.EmSize, ok = val.(int)
		case FlagWorkers:
			c.Workers, ok = val.(int)
		case FlagVerbose:
			c.Verbose, ok = val.(bool)
		}
		if !ok {
			err = fmt.Errorf("flag -%s: unexpected type %T", f.Name, val)
		}
	})
	return err
}
