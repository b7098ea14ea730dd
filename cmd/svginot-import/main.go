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

// Svginot-import adds SVG color artwork to an existing OpenType font.
//
// Usage:
//
//	svginot-import [options] input.otf svgdir output.otf
//
// Files in svgdir are named after the character they show, for example
// "1f600.svg".  Files for characters which the font does not map are
// skipped.  The name table of the font is kept unless -rename is given.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"

	"seehuhn.de/go/colorfont/build"
	"seehuhn.de/go/colorfont/config"
	"seehuhn.de/go/colorfont/internal/clilog"
)

func main() {
	renameFile := flag.String("rename", "", "replace the font names by the `table.name` settings from this YAML file")
	transform := flag.String("transform", "", "prepend `transform` to the color artwork transform")
	emSize := flag.Int("em", 0, "fit the artwork into an em square of `n` design units (default: the em size of the font)")
	workers := flag.Int("workers", 0, "process up to `n` files concurrently")
	verbose := flag.Bool("v", false, "enable debug output")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] input.otf svgdir output.otf\n", os.Args[0])
		flag.PrintDefaults()
	}
	flag.Parse()
	if flag.NArg() != 3 {
		flag.Usage()
		os.Exit(2)
	}

	cfg := &config.Config{}
	if *renameFile != "" {
		var err error
		cfg, err = config.Load(*renameFile)
		if err != nil {
			fmt.Fprintln(os.Stderr, "svginot-import:", err)
			os.Exit(1)
		}
	}
	cfg.ColorSVGDir = flag.Arg(1)
	cfg.OutputFile = flag.Arg(2)
	cfg.ColorSVGTransform = *transform
	cfg.EmSize = *emSize
	cfg.Workers = *workers
	cfg.Verbose = cfg.Verbose || *verbose
	cfg.SetDefaults()

	log := clilog.Setup(cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	opts := build.ImportOptions{
		Rename:     *renameFile != "",
		FontEmSize: *emSize == 0,
	}
	res, err := build.Import(ctx, flag.Arg(0), cfg, opts)
	if err != nil {
		fmt.Fprintln(os.Stderr, "svginot-import:", err)
		os.Exit(1)
	}
	log.Info("font written",
		"path", cfg.OutputFile,
		"color", res.NumEntries,
		"warnings", len(res.Warnings))
}
