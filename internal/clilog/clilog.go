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

// Package clilog sets up logging for the command line tools.
package clilog

import (
	"io"
	"log/slog"
	"os"

	"golang.org/x/term"

	"seehuhn.de/go/colorfont"
)

// Setup installs a logger writing to stderr.  Interactive sessions get
// human readable output, otherwise one JSON object is written per line.
func Setup(verbose bool) *slog.Logger {
	l := New(os.Stderr, term.IsTerminal(int(os.Stderr.Fd())), verbose)
	colorfont.SetLogger(l)
	return l
}

// New returns a logger writing to w.
func New(w io.Writer, interactive, verbose bool) *slog.Logger {
	opts := &slog.HandlerOptions{Level: slog.LevelInfo}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	var h slog.Handler
	if interactive {
		h = slog.NewTextHandler(w, opts)
	} else {
		h = slog.NewJSONHandler(w, opts)
	}
	return slog.New(h)
}
