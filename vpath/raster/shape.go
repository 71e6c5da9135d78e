// seehuhn.de/go/raster - a 2D rendering library
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

package raster

import (
	"seehuhn.de/go/geom/path"
	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/vpath"
)

// toPathData converts sh into the command stream the scanline fill
// pipeline consumes. Arcs and elliptical arcs have no command of their
// own here, so they are flattened to line segments; straight lines and
// the two Bezier degrees map directly onto the corresponding commands.
func toPathData(sh *vpath.Shape) *path.Data {
	p := &path.Data{}
	opts := vpath.DiscretizeOptions{DistanceEpsilon: 1e-3}
	for _, sp := range sh.Subpaths {
		if len(sp.Segments) == 0 {
			continue
		}
		p = p.MoveTo(sp.Segments[0].Start())
		for _, seg := range sp.Segments {
			switch s := seg.(type) {
			case *vpath.Line:
				p = p.LineTo(s.End())
			case *vpath.Quadratic:
				p = p.QuadTo(s.P1, s.End())
			case *vpath.Cubic:
				p = p.CubeTo(s.P1, s.P2, s.End())
			default:
				pts := vpath.ToPiecewiseLinear(seg, opts)
				for _, pt := range pts[1:] {
					p = p.LineTo(pt)
				}
			}
		}
		if sp.Closed {
			p = p.Close()
		}
	}
	return p
}

// RasterizeShape fills sh with the nonzero winding rule into a clip
// rectangle of size width x height and returns one coverage value in
// [0,1] per pixel, row-major from the bottom-left clip corner.
func RasterizeShape(sh *vpath.Shape, width, height int) []float32 {
	clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(width), URy: float64(height)}
	r := NewRasterizer(clip)
	out := make([]float32, width*height)
	r.FillNonZero(toPathData(sh), func(y, xMin int, coverage []float32) {
		if y < 0 || y >= height {
			return
		}
		for i, c := range coverage {
			x := xMin + i
			if x < 0 || x >= width {
				continue
			}
			out[y*width+x] = c
		}
	})
	return out
}
