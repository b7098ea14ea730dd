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
	"fmt"
	"strconv"
	"strings"

	"github.com/beevik/etree"
)

// Dimensions is the intrinsic size of an SVG document.
type Dimensions struct {
	Width  float64
	Height float64
}

// ReadDimensions returns the size of the SVG document with the given root
// element.
//
// If the root element has both a width and a height attribute, these are
// used after removing units and other non-numeric characters.  Otherwise
// the size is taken from the third and fourth field of the viewBox
// attribute.
func ReadDimensions(root *etree.Element) (Dimensions, error) {
	if root == nil {
		return Dimensions{}, &MissingDimensionsError{Reason: "no root element"}
	}

	w := root.SelectAttr("width")
	h := root.SelectAttr("height")
	if w != nil && h != nil {
		width, errW := parseLength(w.Value)
		height, errH := parseLength(h.Value)
		if errW == nil && errH == nil {
			return checkDimensions(Dimensions{Width: width, Height: height})
		}
	}

	vb := root.SelectAttr("viewBox")
	if vb == nil {
		return Dimensions{}, &MissingDimensionsError{Reason: "no width/height and no viewBox"}
	}
	fields := strings.FieldsFunc(vb.Value, func(r rune) bool {
		return r == ',' || r == ' ' || r == '\t' || r == '\n' || r == '\r'
	})
	if len(fields) != 4 {
		return Dimensions{}, &MissingDimensionsError{
			Reason: fmt.Sprintf("malformed viewBox %q", vb.Value),
		}
	}
	width, errW := strconv.ParseFloat(fields[2], 64)
	height, errH := strconv.ParseFloat(fields[3], 64)
	if errW != nil || errH != nil {
		return Dimensions{}, &MissingDimensionsError{
			Reason: fmt.Sprintf("malformed viewBox %q", vb.Value),
		}
	}
	return checkDimensions(Dimensions{Width: width, Height: height})
}

func checkDimensions(d Dimensions) (Dimensions, error) {
	if !(d.Height > 0) || d.Width < 0 {
		return Dimensions{}, &MissingDimensionsError{
			Reason: fmt.Sprintf("invalid size %gx%g", d.Width, d.Height),
		}
	}
	return d, nil
}

// parseLength parses an SVG length like "1000px".  All characters other
// than digits and the decimal point are ignored.
func parseLength(s string) (float64, error) {
	clean := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' || r == '.' {
			return r
		}
		return -1
	}, s)
	return strconv.ParseFloat(clean, 64)
}

// MissingDimensionsError is returned by [ReadDimensions] if the size of an
// SVG document cannot be determined.
type MissingDimensionsError struct {
	Reason string
}

func (err *MissingDimensionsError) Error() string {
	return "cannot determine SVG dimensions: " + err.Reason
}
