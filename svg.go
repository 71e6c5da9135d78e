// seehuhn.de/go/vpath - a 2D vector-path geometry kernel
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

package vpath

import (
	"math"
	"strconv"
	"strings"

	"seehuhn.de/go/geom/vec"
)

// formatFixed20 renders x as a fixed-point decimal with exactly 20
// fractional digits and no scientific notation. SVG path data forbids
// exponents, and 20 digits is enough headroom for any coordinate this
// package produces.
func formatFixed20(x float64) string {
	if math.IsNaN(x) || math.IsInf(x, 0) {
		x = 0
	}
	s := strconv.FormatFloat(x, 'f', 20, 64)
	if s == "-0."+strings.Repeat("0", 20) {
		s = s[1:]
	}
	return s
}

func fmtPt(p vec.Vec2) string {
	return formatFixed20(p.X) + "," + formatFixed20(p.Y)
}

// ToSVGPath renders sh as the contents of an SVG <path d="..."> attribute.
// Each subpath starts with an absolute M command; circular and elliptical
// arcs that sweep a full turn are split at their antipodal point first,
// since the SVG 'A' command cannot itself express a closed ellipse.
func (sh *Shape) ToSVGPath() string {
	var b strings.Builder
	for _, sp := range sh.Subpaths {
		writeSubpathSVG(&b, sp)
	}
	return b.String()
}

func writeSubpathSVG(b *strings.Builder, sp *Subpath) {
	if len(sp.Segments) == 0 {
		return
	}
	b.WriteString("M")
	b.WriteString(fmtPt(sp.Segments[0].Start()))
	for _, seg := range sp.Segments {
		writeSegmentSVG(b, seg)
	}
	if sp.Closed {
		b.WriteString("Z")
	}
}

func writeSegmentSVG(b *strings.Builder, seg Segment) {
	switch s := seg.(type) {
	case *Line:
		b.WriteString("L")
		b.WriteString(fmtPt(s.B))
	case *Quadratic:
		b.WriteString("Q")
		b.WriteString(fmtPt(s.P1))
		b.WriteString(" ")
		b.WriteString(fmtPt(s.P2))
	case *Cubic:
		b.WriteString("C")
		b.WriteString(fmtPt(s.P1))
		b.WriteString(" ")
		b.WriteString(fmtPt(s.P2))
		b.WriteString(" ")
		b.WriteString(fmtPt(s.P3))
	case *Arc:
		writeArcSVG(b, arcAsEllipse(s))
	case *EllipticalArc:
		writeArcSVG(b, s)
	}
}

// writeArcSVG emits one or more 'A' commands for e, splitting a full (or
// near-full) turn at its antipodal point since SVG's elliptical arc
// command cannot represent a closed ellipse as a single arc.
func writeArcSVG(b *strings.Builder, e *EllipticalArc) {
	full := e.angleDifference() >= 2*math.Pi-angleEqualityEpsilon
	if !full {
		writeArcCommand(b, e)
		return
	}
	l, r := e.Subdivided(0.5)
	writeArcCommand(b, l.(*EllipticalArc))
	writeArcCommand(b, r.(*EllipticalArc))
}

func writeArcCommand(b *strings.Builder, e *EllipticalArc) {
	largeArc := 0
	if e.angleDifference() > math.Pi {
		largeArc = 1
	}
	sweep := 1 // SVG sweep-flag: 1 means positive-angle (clockwise in SVG's y-down space)
	if e.Anticlockwise {
		sweep = 0
	}
	b.WriteString("A")
	b.WriteString(formatFixed20(e.RadiusX))
	b.WriteString(",")
	b.WriteString(formatFixed20(e.RadiusY))
	b.WriteString(" ")
	b.WriteString(formatFixed20(e.Rotation * 180 / math.Pi))
	b.WriteString(" ")
	b.WriteString(strconv.Itoa(largeArc))
	b.WriteString(",")
	b.WriteString(strconv.Itoa(sweep))
	b.WriteString(" ")
	b.WriteString(fmtPt(e.End()))
}
