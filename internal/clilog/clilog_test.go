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

package clilog

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
)

func TestNew(t *testing.T) {
	buf := &bytes.Buffer{}
	l := New(buf, false, false)
	l.Debug("hidden")
	l.Warn("glyph not found", "file", "0041.svg")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	if len(lines) != 1 {
		t.Fatalf("got %d lines, want 1: %q", len(lines), buf.String())
	}
	var rec map[string]any
	if err := json.Unmarshal([]byte(lines[0]), &rec); err != nil {
		t.Fatal(err)
	}
	if rec["msg"] != "glyph not found" || rec["file"] != "0041.svg" || rec["level"] != "WARN" {
		t.Errorf("unexpected record %v", rec)
	}

	buf.Reset()
	l = New(buf, true, true)
	l.Debug("shown", "gid", 5)
	if got := buf.String(); !strings.Contains(got, "level=DEBUG") || !strings.Contains(got, "gid=5") {
		t.Errorf("unexpected text output %q", got)
	}
}
