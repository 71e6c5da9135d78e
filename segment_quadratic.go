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

// Quadratic is a degree-2 Bezier curve.
type Quadratic struct {
	observer
	P0, P1, P2 vec.Vec2 // start, control, end

	boundsCache *Bounds
}

var _ Segment = (*Quadratic)(nil)

// NewQuadratic constructs a Quadratic Bezier segment.
func NewQuadratic(start, control, end vec.Vec2) (*Quadratic, error) {
	if !isFinite(start) || !isFinite(control) || !isFinite(end) {
		return nil, newError(InvalidGeometry, "NewQuadratic", "non-finite control point")
	}
	return &Quadratic{P0: start, P1: control, P2: end}, nil
}

func (q *Quadratic) Kind() SegmentKind { return KindQuadratic }
func (q *Quadratic) Start() vec.Vec2   { return q.P0 }
func (q *Quadratic) End() vec.Vec2     { return q.P2 }

func (q *Quadratic) Position(t float64) vec.Vec2 {
	omt := 1 - t
	return q.P0.Mul(omt * omt).Add(q.P1.Mul(2 * omt * t)).Add(q.P2.Mul(t * t))
}

func (q *Quadratic) Tangent(t float64) vec.Vec2 {
	return q.P1.Sub(q.P0).Mul(2 * (1 - t)).Add(q.P2.Sub(q.P1).Mul(2 * t))
}

func (q *Quadratic) StartTangent() vec.Vec2 { return normalize(q.Tangent(0)) }
func (q *Quadratic) EndTangent() vec.Vec2   { return normalize(q.Tangent(1)) }

// Curvature uses the closed form h*(degree-1)/(degree*a^2) near the
// endpoints (a = |p1-p0| or |p2-p1|, h = signed perpendicular distance of
// the far control point from the tangent at the near endpoint); interior
// points are evaluated by subdividing once and evaluating curvature at
// the endpoint of the sub-curve.
func (q *Quadratic) Curvature(t float64) float64 {
	if t <= 0 {
		return q.endpointCurvature(q.P0, q.P1, q.P2)
	}
	if t >= 1 {
		return -q.endpointCurvature(q.P2, q.P1, q.P0)
	}
	_, right := q.Subdivided(t)
	rq := right.(*Quadratic)
	return rq.endpointCurvature(rq.P0, rq.P1, rq.P2)
}

func (q *Quadratic) endpointCurvature(p0, p1, p2 vec.Vec2) float64 {
	a := p1.Sub(p0).Length()
	if a == 0 {
		return 0
	}
	tan := normalize(p1.Sub(p0))
	n := perp(tan)
	h := dot(p2.Sub(p0), n)
	return h * 1 / (2 * a * a)
}

func (q *Quadratic) Bounds() Bounds {
	if q.boundsCache != nil {
		return *q.boundsCache
	}
	b := NothingBounds.WithPoint(q.P0).WithPoint(q.P2)
	for _, t := range q.InteriorExtremaTs() {
		b = b.WithPoint(q.Position(t))
	}
	q.boundsCache = &b
	return b
}

func (q *Quadratic) Subdivided(t float64) (Segment, Segment) {
	if t <= 0 {
		return q, &Quadratic{P0: q.P2, P1: q.P2, P2: q.P2}
	}
	if t >= 1 {
		return q, &Quadratic{P0: q.P2, P1: q.P2, P2: q.P2}
	}
	p01 := blend(q.P0, q.P1, t)
	p12 := blend(q.P1, q.P2, t)
	p := blend(p01, p12, t)
	left, _ := NewQuadratic(q.P0, p01, p)
	right, _ := NewQuadratic(p, p12, q.P2)
	return left, right
}

// extremaT solves the linear derivative root for one coordinate axis:
// extremaT(v0,v1,v2) = -(v1-v0) / (v2 - 2*v1 + v0), or NaN if the
// denominator is zero.
func extremaT(v0, v1, v2 float64) float64 {
	denom := v2 - 2*v1 + v0
	if denom == 0 {
		return math.NaN()
	}
	return -(v1 - v0) / denom
}

func (q *Quadratic) InteriorExtremaTs() []float64 {
	var ts []float64
	tx := extremaT(q.P0.X, q.P1.X, q.P2.X)
	ty := extremaT(q.P0.Y, q.P1.Y, q.P2.Y)
	if !math.IsNaN(tx) {
		ts = append(ts, tx)
	}
	if !math.IsNaN(ty) {
		ts = append(ts, ty)
	}
	return dedupeSortedTs(ts)
}

func (q *Quadratic) Transformed(m Matrix) Segment {
	out, _ := NewQuadratic(Apply(m, q.P0), Apply(m, q.P1), Apply(m, q.P2))
	return out
}

func (q *Quadratic) Reversed() Segment {
	out, _ := NewQuadratic(q.P2, q.P1, q.P0)
	return out
}

// SignedAreaFragment uses the standard closed form for a quadratic
// Bezier's area contribution, derived by integrating the Bernstein form.
func (q *Quadratic) SignedAreaFragment() float64 {
	x0, y0 := q.P0.X, q.P0.Y
	x1, y1 := q.P1.X, q.P1.Y
	x2, y2 := q.P2.X, q.P2.Y
	return ((x0*(2*y1+y2-3*y0) + x1*2*(y2-y0) + x2*(3*y2-2*y1-y0)) - (y0*(2*x1+x2-3*x0) + y1*2*(x2-x0) + y2*(3*x2-2*x1-x0))) / 12
}

// NondegenerateSegments handles the fully-collinear case (emitting one or
// two line segments through the extremum) and the degenerate-point case.
func (q *Quadratic) NondegenerateSegments() []Segment {
	if q.P0 == q.P1 && q.P1 == q.P2 {
		return nil
	}
	area2 := cross(q.P1.Sub(q.P0), q.P2.Sub(q.P0))
	if math.Abs(area2) > 1e-12 {
		return []Segment{q}
	}
	// collinear: split at the extremum (if any control lies outside [P0,P2])
	tx := extremaT(q.P0.X, q.P1.X, q.P2.X)
	ty := extremaT(q.P0.Y, q.P1.Y, q.P2.Y)
	t := math.NaN()
	if !math.IsNaN(tx) {
		t = tx
	} else if !math.IsNaN(ty) {
		t = ty
	}
	if math.IsNaN(t) || t <= 0 || t >= 1 {
		if q.P0 == q.P2 {
			return nil
		}
		l, _ := NewLine(q.P0, q.P2)
		return []Segment{l}
	}
	mid := q.Position(t)
	var segs []Segment
	if l, err := NewLine(q.P0, mid); err == nil && l.A != l.B {
		segs = append(segs, l)
	}
	if l, err := NewLine(mid, q.P2); err == nil && l.A != l.B {
		segs = append(segs, l)
	}
	return segs
}
