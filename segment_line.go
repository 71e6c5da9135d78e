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

import "seehuhn.de/go/geom/vec"

// Line is a straight segment from A to B.
type Line struct {
	observer
	A, B vec.Vec2

	boundsCache *Bounds
}

var _ Segment = (*Line)(nil)

// NewLine constructs a Line. Both endpoints must be finite.
func NewLine(a, b vec.Vec2) (*Line, error) {
	if !isFinite(a) || !isFinite(b) {
		return nil, newError(InvalidGeometry, "NewLine", "non-finite endpoint")
	}
	return &Line{A: a, B: b}, nil
}

func (l *Line) Kind() SegmentKind { return KindLine }
func (l *Line) Start() vec.Vec2   { return l.A }
func (l *Line) End() vec.Vec2     { return l.B }

func (l *Line) Position(t float64) vec.Vec2 { return blend(l.A, l.B, t) }
func (l *Line) Tangent(float64) vec.Vec2    { return l.B.Sub(l.A) }

func (l *Line) StartTangent() vec.Vec2 { return normalize(l.Tangent(0)) }
func (l *Line) EndTangent() vec.Vec2   { return normalize(l.Tangent(1)) }
func (l *Line) Curvature(float64) float64 { return 0 }

func (l *Line) Bounds() Bounds {
	if l.boundsCache != nil {
		return *l.boundsCache
	}
	b := NothingBounds.WithPoint(l.A).WithPoint(l.B)
	l.boundsCache = &b
	return b
}

func (l *Line) Subdivided(t float64) (Segment, Segment) {
	if t <= 0 {
		return l, &Line{A: l.B, B: l.B}
	}
	if t >= 1 {
		return l, &Line{A: l.B, B: l.B}
	}
	m := l.Position(t)
	left, _ := NewLine(l.A, m)
	right, _ := NewLine(m, l.B)
	return left, right
}

func (l *Line) NondegenerateSegments() []Segment {
	if l.A == l.B {
		return nil
	}
	return []Segment{l}
}

func (l *Line) InteriorExtremaTs() []float64 { return nil }

func (l *Line) Transformed(m Matrix) Segment {
	out, _ := NewLine(Apply(m, l.A), Apply(m, l.B))
	return out
}

func (l *Line) Reversed() Segment {
	out, _ := NewLine(l.B, l.A)
	return out
}

// SignedAreaFragment for a line from A to B is the trapezoid contribution
// (Ax*By - Bx*Ay)/2.
func (l *Line) SignedAreaFragment() float64 {
	return (l.A.X*l.B.Y - l.B.X*l.A.Y) / 2
}

// SetEndpoints mutates the line in place and invalidates caches.
func (l *Line) SetEndpoints(a, b vec.Vec2) error {
	if !isFinite(a) || !isFinite(b) {
		return newError(InvalidGeometry, "SetEndpoints", "non-finite endpoint")
	}
	l.A, l.B = a, b
	l.boundsCache = nil
	l.publish()
	return nil
}

// RayIntersection holds the result of intersecting a Ray against a
// Segment: parametric distance along the ray, the hit point, the outward
// surface normal (oriented against the ray), and a winding sign.
type RayIntersection struct {
	Distance float64
	Point    vec.Vec2
	Normal   vec.Vec2
	Winding  int // +1 or -1
}

// Ray is an origin point and a unit direction vector.
type Ray struct {
	Origin vec.Vec2
	Dir    vec.Vec2 // must be unit length
}

// IntersectRay solves the 2x2 linear system for the line-ray intersection
// and returns at most one hit.
func (l *Line) IntersectRay(r Ray) []RayIntersection {
	d := l.B.Sub(l.A)
	// Solve origin + s*dir = A + t*d for s>=0, t in [0,1].
	denom := cross(r.Dir, d)
	if denom == 0 {
		return nil
	}
	diff := l.A.Sub(r.Origin)
	s := cross(diff, d) / denom
	t := cross(diff, r.Dir) / denom
	if s < 0 || t < 0 || t > 1 {
		return nil
	}
	point := r.Origin.Add(r.Dir.Mul(s))
	n := perp(normalize(d))
	if dot(n, r.Dir) > 0 {
		n = n.Mul(-1)
	}
	winding := 1
	if cross(r.Dir, d) < 0 {
		winding = -1
	}
	return []RayIntersection{{Distance: s, Point: point, Normal: n, Winding: winding}}
}
