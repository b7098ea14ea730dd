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

package geometry

import (
	"errors"
	"math"
	"testing"

	"github.com/beevik/etree"
)

func TestFit(t *testing.T) {
	tf := Fit(Dimensions{Width: 500, Height: 1000}, 2048)
	if tf.Scale != 2.048 {
		t.Errorf("scale: got %g, want 2.048", tf.Scale)
	}
	if tf.TranslateX != 0 {
		t.Errorf("translate x: got %g, want 0", tf.TranslateX)
	}
	if math.Abs(tf.TranslateY-(-1638.4)) > 1e-9 {
		t.Errorf("translate y: got %g, want -1638.4", tf.TranslateY)
	}
}

func TestFitPreservesAspect(t *testing.T) {
	for _, d := range []Dimensions{{36, 36}, {72, 36}, {10, 1000}} {
		tf := Fit(d, 1000)
		if got := d.Height * tf.Scale; math.Abs(got-1000) > 1e-9 {
			t.Errorf("%v: scaled height %g", d, got)
		}
	}
}

func TestTransformFormat(t *testing.T) {
	tf := Fit(Dimensions{Width: 500, Height: 1000}, DefaultEmSize)

	cases := []struct {
		base, want string
	}{
		{"", "translate(0,-1638.4) scale(2.048)"},
		{"  ", "translate(0,-1638.4) scale(2.048)"},
		{"rotate(5)", "rotate(5) translate(0,-1638.4) scale(2.048)"},
	}
	for _, c := range cases {
		if got := tf.Format(c.base); got != c.want {
			t.Errorf("Format(%q) = %q, want %q", c.base, got, c.want)
		}
	}

	tf = Fit(Dimensions{Width: 36, Height: 36}, 1000)
	if got, want := tf.String(), "translate(0,-800) scale(27.777778)"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestReadDimensions(t *testing.T) {
	cases := []struct {
		svg  string
		want Dimensions
	}{
		{`<svg width="500" height="1000"/>`, Dimensions{500, 1000}},
		{`<svg width="64px" height="32px" viewBox="0 0 10 10"/>`, Dimensions{64, 32}},
		{`<svg viewBox="0 0 36 36"/>`, Dimensions{36, 36}},
		{`<svg viewBox="0,0,72.5,36"/>`, Dimensions{72.5, 36}},
		{`<svg width="100%" viewBox="-5 -5 20 10"/>`, Dimensions{20, 10}},
		{`<svg width="auto" height="auto" viewBox="0 0 8 8"/>`, Dimensions{8, 8}},
	}
	for _, c := range cases {
		doc := etree.NewDocument()
		if err := doc.ReadFromString(c.svg); err != nil {
			t.Fatal(err)
		}
		got, err := ReadDimensions(doc.Root())
		if err != nil {
			t.Errorf("%s: %v", c.svg, err)
			continue
		}
		if got != c.want {
			t.Errorf("%s: got %v, want %v", c.svg, got, c.want)
		}
	}
}

func TestReadDimensionsMissing(t *testing.T) {
	for _, svg := range []string{
		`<svg/>`,
		`<svg width="10"/>`,
		`<svg viewBox="0 0 10"/>`,
		`<svg viewBox="a b c d"/>`,
		`<svg viewBox="0 0 10 0"/>`,
		`<svg width="10" height="0"/>`,
	} {
		doc := etree.NewDocument()
		if err := doc.ReadFromString(svg); err != nil {
			t.Fatal(err)
		}
		_, err := ReadDimensions(doc.Root())
		var missing *MissingDimensionsError
		if !errors.As(err, &missing) {
			t.Errorf("%s: expected MissingDimensionsError, got %v", svg, err)
		}
	}

	_, err := ReadDimensions(nil)
	if err == nil {
		t.Error("nil root accepted")
	}
}
