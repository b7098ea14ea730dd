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

// Scfbuild builds an SVG-in-OpenType color font.
//
// Usage:
//
//	scfbuild [options] [config.yaml]
//
// The settings are read from the given YAML file, and command-line options
// override the values from the file.  At least an output file and one of
// the artwork directories must be given.
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
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] [config.yaml]\n", os.Args[0])
		flag.PrintDefaults()
	}
	config.AddFlags(flag.CommandLine)
	flag.Parse()
	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(flag.Arg(0)); err != nil {
		fmt.Fprintln(os.Stderr, "scfbuild:", err)
		os.Exit(1)
	}
}

func run(configFile string) error {
	cfg := &config.Config{}
	if configFile != "" {
		var err error
		cfg, err = config.Load(configFile)
		if err != nil {
			return err
		}
	}
	if err := cfg.ApplyFlags(flag.CommandLine); err != nil {
		return err
	}
	cfg.SetDefaults()
	if err := cfg.Validate(); err != nil {
		return err
	}

	log := clilog.Setup(cfg.Verbose)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	res, err := build.Run(ctx, cfg, build.Options{})
	if err != nil {
		return err
	}
	log.Info("font written",
		"path", cfg.OutputFile,
		"glyphs", res.NumGlyphs,
		"color", res.NumEntries,
		"warnings", len(res.Warnings))
	return nil
}
