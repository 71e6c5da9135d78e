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

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
)

// Bounds is an axis-aligned rectangle. It wraps rect.Rect and adds the
// distinguished empty value NothingBounds, which rect.Rect itself has no
// notion of.
type Bounds struct {
	r     rect.Rect
	empty bool
}

// NothingBounds is the empty bounds value: it contains no point, and
// unioning it with anything yields that thing unchanged.
var NothingBounds = Bounds{empty: true}

// NewBounds returns the bounds with the given corners, normalized so that
// Min <= Max on both axes.
func NewBounds(minX, minY, maxX, maxY float64) Bounds {
	if minX > maxX {
		minX, maxX = maxX, minX
	}
	if minY > maxY {
		minY, maxY = maxY, minY
	}
	return Bounds{r: rect.Rect{LLx: minX, LLy: minY, URx: maxX, URy: maxY}}
}

// PointBounds returns the degenerate bounds containing exactly p.
func PointBounds(p vec.Vec2) Bounds {
	return NewBounds(p.X, p.Y, p.X, p.Y)
}

// IsNothing reports whether b is the empty bounds.
func (b Bounds) IsNothing() bool { return b.empty }

func (b Bounds) MinX() float64 { return b.r.LLx }
func (b Bounds) MinY() float64 { return b.r.LLy }
func (b Bounds) MaxX() float64 { return b.r.URx }
func (b Bounds) MaxY() float64 { return b.r.URy }

func (b Bounds) Width() float64  { return b.r.URx - b.r.LLx }
func (b Bounds) Height() float64 { return b.r.URy - b.r.LLy }

// Rect exposes the underlying rect.Rect for non-empty bounds.
func (b Bounds) Rect() rect.Rect { return b.r }

// WithPoint returns the union of b and the single point p.
func (b Bounds) WithPoint(p vec.Vec2) Bounds {
	if b.empty {
		return PointBounds(p)
	}
	return NewBounds(
		math.Min(b.r.LLx, p.X), math.Min(b.r.LLy, p.Y),
		math.Max(b.r.URx, p.X), math.Max(b.r.URy, p.Y),
	)
}

// Union returns the smallest bounds containing both b and other.
func (b Bounds) Union(other Bounds) Bounds {
	if other.empty {
		return b
	}
	if b.empty {
		return other
	}
	return NewBounds(
		math.Min(b.r.LLx, other.r.LLx), math.Min(b.r.LLy, other.r.LLy),
		math.Max(b.r.URx, other.r.URx), math.Max(b.r.URy, other.r.URy),
	)
}

// ContainsPoint reports whether p lies within b (inclusive of the edges).
func (b Bounds) ContainsPoint(p vec.Vec2) bool {
	if b.empty {
		return false
	}
	return p.X >= b.r.LLx && p.X <= b.r.URx && p.Y >= b.r.LLy && p.Y <= b.r.URy
}

// Intersects reports whether b and other share at least one point.
func (b Bounds) Intersects(other Bounds) bool {
	if b.empty || other.empty {
		return false
	}
	return b.r.LLx <= other.r.URx && other.r.LLx <= b.r.URx &&
		b.r.LLy <= other.r.URy && other.r.LLy <= b.r.URy
}

// Transformed returns the bounds of the four corners of b after applying
// m. This is only exact for axis-aligned rectangles transformed by an
// arbitrary affine map if b itself came from a straight-edged shape;
// callers needing the exact bounds of a transformed curved segment must
// recompute from the transformed segment instead.
func (b Bounds) Transformed(m Matrix) Bounds {
	if b.empty {
		return b
	}
	corners := [4]vec.Vec2{
		{X: b.r.LLx, Y: b.r.LLy}, {X: b.r.URx, Y: b.r.LLy},
		{X: b.r.URx, Y: b.r.URy}, {X: b.r.LLx, Y: b.r.URy},
	}
	out := NothingBounds
	for _, c := range corners {
		out = out.WithPoint(Apply(m, c))
	}
	return out
}
