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

	"seehuhn.de/go/geom/vec"
)

// Shape is an ordered collection of Subpaths, filled under the nonzero
// winding rule. It is the top-level value vpath operations build, stroke,
// transform, and combine.
type Shape struct {
	Subpaths []*Subpath

	boundsCache *Bounds
}

// NewShape wraps subpaths into a Shape.
func NewShape(subpaths ...*Subpath) *Shape {
	return &Shape{Subpaths: subpaths}
}

// Bounds returns the union of every subpath's bounds.
func (sh *Shape) Bounds() Bounds {
	if sh.boundsCache != nil {
		return *sh.boundsCache
	}
	b := NothingBounds
	for _, sp := range sh.Subpaths {
		b = b.Union(sp.Bounds())
	}
	sh.boundsCache = &b
	return b
}

// Transformed returns a new Shape with every subpath transformed by m.
func (sh *Shape) Transformed(m Matrix) *Shape {
	out := make([]*Subpath, len(sh.Subpaths))
	for i, sp := range sh.Subpaths {
		out[i] = sp.Transformed(m)
	}
	return NewShape(out...)
}

// ContainsPoint reports whether p lies inside sh under the nonzero
// winding rule. Rays whose angle lands on a near-tangency with any
// segment are retried at a slightly different angle, since a tangent
// ray's winding contribution is ill-defined in floating point.
func (sh *Shape) ContainsPoint(p vec.Vec2) bool {
	if !sh.Bounds().ContainsPoint(p) {
		return false
	}
	for attempt := 0; attempt < 8; attempt++ {
		angle := float64(attempt) * 0.7532 // irrational-ish spacing avoids repeating axis-aligned ties
		dir := vec.Vec2{X: math.Cos(angle), Y: math.Sin(angle)}
		winding, ambiguous := sh.windingAlong(p, dir)
		if !ambiguous {
			return winding != 0
		}
	}
	return false
}

// windingAlong casts a ray from p in direction dir and accumulates the
// signed winding number of every crossing. ambiguous is true if any hit's
// distance is within a near-tangency tolerance of another, in which case
// the caller should retry along a different ray.
func (sh *Shape) windingAlong(p vec.Vec2, dir vec.Vec2) (winding int, ambiguous bool) {
	r := Ray{Origin: p, Dir: normalize(dir)}
	var dists []float64
	for _, sp := range sh.Subpaths {
		for _, h := range sp.IntersectRay(r) {
			if h.Distance < 1e-12 {
				continue // ray origin sits on the boundary; treat as outside
			}
			winding += h.Winding
			dists = append(dists, h.Distance)
		}
	}
	for i := range dists {
		for j := i + 1; j < len(dists); j++ {
			if math.Abs(dists[i]-dists[j]) < 1e-9 {
				return 0, true
			}
		}
	}
	return winding, false
}

// ShapeBuilder constructs a Shape one subpath at a time using an SVG/PDF
// path-construction vocabulary (moveTo/lineTo/curveTo/arc/close),
// fluently chained.
type ShapeBuilder struct {
	shape   *Shape
	segs    []Segment
	cur     vec.Vec2
	started bool
	err     error
}

// NewShapeBuilder starts a new, empty builder.
func NewShapeBuilder() *ShapeBuilder {
	return &ShapeBuilder{shape: &Shape{}}
}

func (b *ShapeBuilder) fail(err error) *ShapeBuilder {
	if b.err == nil {
		b.err = err
	}
	return b
}

// MoveTo starts a new subpath at p, first flushing any open one.
func (b *ShapeBuilder) MoveTo(p vec.Vec2) *ShapeBuilder {
	b.flush(false)
	b.cur = p
	b.started = true
	return b
}

// LineTo appends a straight segment to p.
func (b *ShapeBuilder) LineTo(p vec.Vec2) *ShapeBuilder {
	if !b.started {
		return b.MoveTo(p)
	}
	seg, err := NewLine(b.cur, p)
	if err != nil {
		return b.fail(err)
	}
	b.segs = append(b.segs, seg)
	b.cur = p
	return b
}

// QuadraticCurveTo appends a quadratic Bezier segment.
func (b *ShapeBuilder) QuadraticCurveTo(control, p vec.Vec2) *ShapeBuilder {
	if !b.started {
		b.MoveTo(b.cur)
	}
	seg, err := NewQuadratic(b.cur, control, p)
	if err != nil {
		return b.fail(err)
	}
	b.segs = append(b.segs, seg)
	b.cur = p
	return b
}

// CubicCurveTo appends a cubic Bezier segment.
func (b *ShapeBuilder) CubicCurveTo(c1, c2, p vec.Vec2) *ShapeBuilder {
	if !b.started {
		b.MoveTo(b.cur)
	}
	seg, err := NewCubic(b.cur, c1, c2, p)
	if err != nil {
		return b.fail(err)
	}
	b.segs = append(b.segs, seg)
	b.cur = p
	return b
}

// ArcTo appends a circular arc segment.
func (b *ShapeBuilder) ArcTo(center vec.Vec2, radius, startAngle, endAngle float64, anticlockwise bool) *ShapeBuilder {
	seg, err := NewArc(center, radius, startAngle, endAngle, anticlockwise)
	if err != nil {
		return b.fail(err)
	}
	if !b.started {
		b.cur = seg.Start()
		b.started = true
	} else if distance(b.cur, seg.Start()) > endpointContinuityEps {
		l, _ := NewLine(b.cur, seg.Start())
		b.segs = append(b.segs, l)
	}
	b.segs = append(b.segs, seg)
	b.cur = seg.End()
	return b
}

// EllipticalArcTo appends an elliptical arc segment.
func (b *ShapeBuilder) EllipticalArcTo(center vec.Vec2, rx, ry, rotation, startAngle, endAngle float64, anticlockwise bool) *ShapeBuilder {
	seg, err := NewEllipticalArc(center, rx, ry, rotation, startAngle, endAngle, anticlockwise)
	if err != nil {
		return b.fail(err)
	}
	if !b.started {
		b.cur = seg.Start()
		b.started = true
	} else if distance(b.cur, seg.Start()) > endpointContinuityEps {
		l, _ := NewLine(b.cur, seg.Start())
		b.segs = append(b.segs, l)
	}
	b.segs = append(b.segs, seg)
	b.cur = seg.End()
	return b
}

// Rect appends a closed rectangular subpath with corners (x,y) and
// (x+w,y+h), wound counterclockwise for positive w,h.
func (b *ShapeBuilder) Rect(x, y, w, h float64) *ShapeBuilder {
	return b.MoveTo(vec.Vec2{X: x, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y}).
		LineTo(vec.Vec2{X: x + w, Y: y + h}).
		LineTo(vec.Vec2{X: x, Y: y + h}).
		Close()
}

// Close closes the current subpath, connecting back to its start point if
// needed, and flushes it into the shape.
func (b *ShapeBuilder) Close() *ShapeBuilder {
	b.flush(true)
	return b
}

func (b *ShapeBuilder) flush(closed bool) {
	if !b.started || len(b.segs) == 0 {
		b.segs = nil
		b.started = false
		return
	}
	start := b.segs[0].Start()
	if closed && distance(b.cur, start) > endpointContinuityEps {
		l, err := NewLine(b.cur, start)
		if err == nil {
			b.segs = append(b.segs, l)
		}
	}
	var nondeg []Segment
	for _, s := range b.segs {
		nondeg = append(nondeg, s.NondegenerateSegments()...)
	}
	if len(nondeg) > 0 {
		sp, err := NewSubpath(nondeg, closed)
		if err != nil {
			b.fail(err)
		} else {
			b.shape.Subpaths = append(b.shape.Subpaths, sp)
		}
	}
	b.segs = nil
	b.started = false
	if closed {
		b.cur = start
	}
}

// Shape finalizes the builder and returns the constructed Shape (flushing
// any still-open subpath as unclosed), or an error from any failed append
// call.
func (b *ShapeBuilder) Shape() (*Shape, error) {
	b.flush(false)
	if b.err != nil {
		return nil, b.err
	}
	return b.shape, nil
}
