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

// Package svgtable prepares SVG documents for inclusion in an OpenType font
// and assembles the "SVG " table.
package svgtable

import (
	"fmt"

	"github.com/beevik/etree"

	"seehuhn.de/go/colorfont/geometry"
)

// Namespace is the XML namespace of SVG documents.
const Namespace = "http://www.w3.org/2000/svg"

// Artwork is an SVG file read from disk.
type Artwork struct {
	Path string
	Data []byte
}

// Rewrite converts the SVG document data into a glyph description for the
// glyph with the given id.
//
// The root element gets the id "glyph<N>" which the SVG table uses to
// locate the glyph.  The width, height and viewBox attributes of the root
// element are removed, and the content is wrapped in a group which maps
// the artwork into the em square.  If base is not empty, the
// transformation in base is applied after the computed one.
func Rewrite(data []byte, glyphID int, base string, emSize float64) ([]byte, error) {
	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, fmt.Errorf("parsing SVG: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, &geometry.MissingDimensionsError{Reason: "empty document"}
	}
	if root.Tag != "svg" {
		return nil, fmt.Errorf("root element is <%s>, not <svg>", root.FullTag())
	}

	dims, err := geometry.ReadDimensions(root)
	if err != nil {
		return nil, err
	}
	tf := geometry.Fit(dims, emSize)

	root.CreateAttr("id", fmt.Sprintf("glyph%d", glyphID))
	root.RemoveAttr("width")
	root.RemoveAttr("height")
	root.RemoveAttr("viewBox")
	if root.Space == "" {
		root.CreateAttr("xmlns", Namespace)
	}

	g := etree.NewElement("g")
	if root.Space != "" {
		g.Space = root.Space
	}
	g.CreateAttr("transform", tf.Format(base))
	for _, child := range append([]etree.Token(nil), root.Child...) {
		g.AddChild(child)
	}
	root.AddChild(g)

	for i := len(doc.Child) - 1; i >= 0; i-- {
		if pi, ok := doc.Child[i].(*etree.ProcInst); ok && pi.Target == "xml" {
			doc.RemoveChildAt(i)
		}
	}
	doc.InsertChildAt(0, &etree.ProcInst{
		Target: "xml",
		Inst:   `version="1.0" encoding="UTF-8"`,
	})

	return doc.WriteToBytes()
}
