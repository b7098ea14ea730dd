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

package basefont

import (
	"bytes"
	"errors"
	"fmt"
	"math"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"golang.org/x/image/math/fixed"

	"seehuhn.de/go/sfnt/cff"
)

// Glyph is a glyph of a base font.
type Glyph struct {
	font    *Font
	name    string
	code    rune
	encoded bool
	width   int

	contours []contour
}

// Name returns the glyph name.
func (g *Glyph) Name() string {
	return g.name
}

// Width returns the advance width of the glyph.
func (g *Glyph) Width() int {
	return g.width
}

// SetAdvanceWidth sets the advance width of the glyph.
func (g *Glyph) SetAdvanceWidth(width int) {
	g.width = width
}

// ImportOutline replaces the outline of the glyph by the paths in the SVG
// document.
//
// The viewBox of the document is mapped to the em square, with the top
// edge of the viewBox at the ascent and the bottom edge at the descent.
// The SVG is parsed with fill and stroke information ignored, and
// transformations on elements are not applied.
func (g *Glyph) ImportOutline(svg []byte) error {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(svg), oksvg.IgnoreErrorMode)
	if err != nil {
		return fmt.Errorf("glyph %q: %w", g.name, err)
	}
	vb := icon.ViewBox
	if !(vb.H > 0) || !(vb.W > 0) {
		return fmt.Errorf("glyph %q: %w", g.name, errNoViewBox)
	}

	cfg := &g.font.cfg
	s := float64(cfg.Ascent+cfg.Descent) / vb.H
	b := &outlineBuilder{
		tf: func(p fixed.Point26_6) point {
			x := float64(p.X) / 64
			y := float64(p.Y) / 64
			return point{
				X: (x - vb.X) * s,
				Y: float64(cfg.Ascent) - (y-vb.Y)*s,
			}
		},
	}
	for i := range icon.SVGPaths {
		icon.SVGPaths[i].Path.AddTo(b)
		b.Stop(true)
	}
	g.contours = b.contours
	return nil
}

var errNoViewBox = errors.New("SVG has no usable viewBox")

// NormalizeOutline rounds all coordinates to integers and removes
// degenerate segments and contours.
func (g *Glyph) NormalizeOutline() {
	var res []contour
	for _, c := range g.contours {
		if c = c.normalize(); c != nil {
			res = append(res, c)
		}
	}
	g.contours = res
}

// TranslateOutline moves the outline of the glyph.
func (g *Glyph) TranslateOutline(dx, dy float64) {
	for _, c := range g.contours {
		for i := range c {
			for j := range c[i].pts {
				c[i].pts[j].X += dx
				c[i].pts[j].Y += dy
			}
		}
	}
}

func (g *Glyph) cffGlyph() *cff.Glyph {
	res := cff.NewGlyph(g.name, float64(g.width))
	for _, c := range g.contours {
		for _, seg := range c {
			p := seg.pts
			switch seg.op {
			case opMove:
				res.MoveTo(p[0].X, p[0].Y)
			case opLine:
				res.LineTo(p[0].X, p[0].Y)
			case opCurve:
				res.CurveTo(p[0].X, p[0].Y, p[1].X, p[1].Y, p[2].X, p[2].Y)
			}
		}
	}
	return res
}

type point struct {
	X, Y float64
}

type op uint8

const (
	opMove op = iota
	opLine
	opCurve
)

type segment struct {
	op  op
	pts [3]point
}

// end returns the current point after the segment.
func (s segment) end() point {
	if s.op == opCurve {
		return s.pts[2]
	}
	return s.pts[0]
}

// A contour starts with an opMove segment and is implicitly closed.
type contour []segment

func (c contour) normalize() contour {
	if len(c) == 0 {
		return nil
	}
	round := func(p point) point {
		return point{X: math.Round(p.X), Y: math.Round(p.Y)}
	}

	res := make(contour, 0, len(c))
	cur := round(c[0].pts[0])
	res = append(res, segment{op: opMove, pts: [3]point{cur}})
	for _, seg := range c[1:] {
		for j := range seg.pts {
			seg.pts[j] = round(seg.pts[j])
		}
		end := seg.end()
		if seg.op == opLine && end == cur {
			continue
		}
		if seg.op == opCurve && end == cur && seg.pts[0] == cur && seg.pts[1] == cur {
			continue
		}
		res = append(res, seg)
		cur = end
	}

	// the closing line is implicit
	if n := len(res); n > 1 && res[n-1].op == opLine && res[n-1].pts[0] == res[0].pts[0] {
		res = res[:n-1]
	}

	numPoints := 1
	for _, seg := range res[1:] {
		if seg.op == opCurve {
			numPoints += 3
		} else {
			numPoints++
		}
	}
	if numPoints < 3 {
		return nil
	}
	return res
}

// outlineBuilder collects contours from rasterx paths.
type outlineBuilder struct {
	tf       func(fixed.Point26_6) point
	contours []contour
	cur      contour
	last     point
}

var _ rasterx.Adder = (*outlineBuilder)(nil)

func (b *outlineBuilder) Start(a fixed.Point26_6) {
	b.Stop(true)
	b.last = b.tf(a)
	b.cur = contour{{op: opMove, pts: [3]point{b.last}}}
}

func (b *outlineBuilder) Line(p fixed.Point26_6) {
	b.ensureStarted()
	b.last = b.tf(p)
	b.cur = append(b.cur, segment{op: opLine, pts: [3]point{b.last}})
}

func (b *outlineBuilder) QuadBezier(p1, p2 fixed.Point26_6) {
	b.ensureStarted()
	q0 := b.last
	q1 := b.tf(p1)
	q2 := b.tf(p2)
	c1 := point{X: q0.X + 2*(q1.X-q0.X)/3, Y: q0.Y + 2*(q1.Y-q0.Y)/3}
	c2 := point{X: q2.X + 2*(q1.X-q2.X)/3, Y: q2.Y + 2*(q1.Y-q2.Y)/3}
	b.last = q2
	b.cur = append(b.cur, segment{op: opCurve, pts: [3]point{c1, c2, q2}})
}

func (b *outlineBuilder) CubeBezier(p1, p2, p3 fixed.Point26_6) {
	b.ensureStarted()
	b.last = b.tf(p3)
	b.cur = append(b.cur, segment{op: opCurve, pts: [3]point{b.tf(p1), b.tf(p2), b.last}})
}

func (b *outlineBuilder) Stop(closeLoop bool) {
	if len(b.cur) > 1 {
		b.contours = append(b.contours, b.cur)
	}
	b.cur = nil
}

func (b *outlineBuilder) ensureStarted() {
	if b.cur == nil {
		b.cur = contour{{op: opMove, pts: [3]point{b.last}}}
	}
}
