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

package svgtable

import (
	"errors"
	"strings"
	"testing"

	"github.com/beevik/etree"

	"seehuhn.de/go/colorfont/geometry"
)

const testSVG = `<?xml version="1.0" standalone="no"?>
<svg xmlns="http://www.w3.org/2000/svg" width="500" height="1000" viewBox="0 0 500 1000">
  <rect x="0" y="0" width="500" height="1000" fill="#f00"/>
  <circle cx="250" cy="500" r="100"/>
</svg>
`

func TestRewrite(t *testing.T) {
	out, err := Rewrite([]byte(testSVG), 5, "", 2048)
	if err != nil {
		t.Fatal(err)
	}

	if !strings.HasPrefix(string(out), `<?xml version="1.0" encoding="UTF-8"?>`) {
		t.Errorf("missing XML declaration: %q", out)
	}
	if strings.Count(string(out), "<?xml") != 1 {
		t.Errorf("duplicate XML declaration: %q", out)
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(out); err != nil {
		t.Fatal(err)
	}
	root := doc.Root()
	if got := root.SelectAttrValue("id", ""); got != "glyph5" {
		t.Errorf("id = %q, want glyph5", got)
	}
	for _, key := range []string{"width", "height", "viewBox"} {
		if root.SelectAttr(key) != nil {
			t.Errorf("attribute %q not removed", key)
		}
	}
	if got := root.SelectAttrValue("xmlns", ""); got != Namespace {
		t.Errorf("xmlns = %q", got)
	}

	children := root.ChildElements()
	if len(children) != 1 || children[0].Tag != "g" {
		t.Fatalf("expected a single <g> child, got %d elements", len(children))
	}
	g := children[0]
	tf := g.SelectAttrValue("transform", "")
	if !strings.Contains(tf, "scale(2.048)") || !strings.Contains(tf, "translate(0,-1638.4)") {
		t.Errorf("unexpected transform %q", tf)
	}
	var tags []string
	for _, el := range g.ChildElements() {
		tags = append(tags, el.Tag)
	}
	if strings.Join(tags, ",") != "rect,circle" {
		t.Errorf("group content: %v", tags)
	}
}

func TestRewriteBase(t *testing.T) {
	out, err := Rewrite([]byte(`<svg viewBox="0 0 36 36"><path d="M0 0L1 1"/></svg>`), 12, "scale(0.5)", 1000)
	if err != nil {
		t.Fatal(err)
	}
	s := string(out)
	if !strings.Contains(s, `transform="scale(0.5) translate(0,-800) scale(27.777778)"`) {
		t.Errorf("unexpected output %q", s)
	}
	if !strings.Contains(s, `xmlns="`+Namespace+`"`) {
		t.Errorf("namespace not added: %q", s)
	}
}

func TestRewriteMissingDimensions(t *testing.T) {
	_, err := Rewrite([]byte(`<svg xmlns="http://www.w3.org/2000/svg"><g/></svg>`), 1, "", 2048)
	var missing *geometry.MissingDimensionsError
	if !errors.As(err, &missing) {
		t.Errorf("expected MissingDimensionsError, got %v", err)
	}
}

func TestRewriteNotSVG(t *testing.T) {
	_, err := Rewrite([]byte(`<html width="1" height="1"/>`), 1, "", 2048)
	if err == nil {
		t.Error("non-SVG document accepted")
	}
	_, err = Rewrite([]byte(`<svg width="1"`), 1, "", 2048)
	if err == nil {
		t.Error("malformed document accepted")
	}
}
