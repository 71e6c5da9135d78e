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

import "seehuhn.de/go/pdf/graphics"

// LineStyles bundles the parameters controlling Subpath.Stroke, following
// the same PDF-graphics-state vocabulary (cap/join/miter limit/dash) the
// legacy rasterizer used.
type LineStyles struct {
	Width float64 // full stroke width; offset distance is Width/2

	Cap        graphics.LineCapStyle
	Join       graphics.LineJoinStyle
	MiterLimit float64 // must be >= 1; PDF/PostScript default is 10

	Dash      []float64 // alternating on/off lengths, user-space units; nil means solid
	DashPhase float64
}

// DefaultLineStyles returns the PDF/PostScript default stroke parameters
// for the given width.
func DefaultLineStyles(width float64) LineStyles {
	return LineStyles{
		Width:      width,
		Cap:        graphics.LineCapButt,
		Join:       graphics.LineJoinMiter,
		MiterLimit: 10.0,
	}
}

func (ls LineStyles) validate() error {
	if ls.Width < 0 {
		return newError(InvalidGeometry, "LineStyles", "negative line width")
	}
	if ls.MiterLimit < 1 {
		return newError(InvalidGeometry, "LineStyles", "miter limit below 1")
	}
	anyPositive := false
	for _, d := range ls.Dash {
		if d < 0 {
			return newError(InvalidGeometry, "LineStyles", "negative dash entry")
		}
		if d > 0 {
			anyPositive = true
		}
	}
	if len(ls.Dash) > 0 && !anyPositive {
		return newError(InvalidGeometry, "LineStyles", "dash pattern is all zeros")
	}
	return nil
}

// lineStylesKey is a comparable value, returned by key, suitable for
// keying a Subpath's stroke cache (Go struct equality over LineStyles fails because Dash is
// a slice, so Subpath compares this instead).
type lineStylesKey struct {
	width, miterLimit, dashPhase float64
	cap                          graphics.LineCapStyle
	join                         graphics.LineJoinStyle
	dash                         string
}

func (ls LineStyles) key() lineStylesKey {
	var dash []byte
	for _, d := range ls.Dash {
		dash = append(dash, []byte(formatFixed20(d))...)
		dash = append(dash, ',')
	}
	return lineStylesKey{
		width: ls.Width, miterLimit: ls.MiterLimit, dashPhase: ls.DashPhase,
		cap: ls.Cap, join: ls.Join, dash: string(dash),
	}
}
