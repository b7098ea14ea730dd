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

// Package geometry fits SVG artwork into the em square of a font.
//
// SVG uses a coordinate system with the origin at the top left and the
// y-axis pointing down.  The SVG table of an OpenType font uses the same
// orientation, but places the origin on the baseline of the glyph.  To show
// artwork of height h in a font with em size e, the artwork is scaled by
// e/h and then moved up by the part of the em square which lies above the
// baseline.
package geometry

import (
	"math"
	"strconv"
	"strings"
)

// DefaultEmSize is the em size used when nothing else is configured.
const DefaultEmSize = 2048

// descent is the part of the em square below the baseline.
const descent = 0.2

// Transform is a uniform scaling followed by a translation.
type Transform struct {
	Scale      float64
	TranslateX float64
	TranslateY float64
}

// Fit returns the transformation which maps artwork with the given
// dimensions into the em square.
//
// The artwork is scaled so that its height equals the em size.  The width
// is not taken into account, and the artwork is not centered horizontally.
func Fit(d Dimensions, emSize float64) Transform {
	return Transform{
		Scale:      emSize / d.Height,
		TranslateX: 0,
		TranslateY: -(emSize - emSize*descent),
	}
}

// String returns the transformation in SVG syntax.
func (t Transform) String() string {
	return "translate(" + formatNumber(t.TranslateX) + "," + formatNumber(t.TranslateY) +
		") scale(" + formatNumber(t.Scale) + ")"
}

// Format returns the transformation in SVG syntax, preceded by the
// transformation base.  If base is empty, this is the same as t.String().
func (t Transform) Format(base string) string {
	base = strings.TrimSpace(base)
	if base == "" {
		return t.String()
	}
	return base + " " + t.String()
}

// formatNumber formats x with at most six decimal places,
// omitting trailing zeros.
func formatNumber(x float64) string {
	x = math.Round(x*1e6) / 1e6
	if x == 0 {
		x = 0 // avoid "-0"
	}
	return strconv.FormatFloat(x, 'f', -1, 64)
}
