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

// Cubic is a degree-3 Bezier curve.
type Cubic struct {
	observer
	P0, P1, P2, P3 vec.Vec2 // start, control1, control2, end

	boundsCache *Bounds
	cuspCache   *cuspAnalysis
}

var _ Segment = (*Cubic)(nil)

// NewCubic constructs a Cubic Bezier segment.
func NewCubic(start, c1, c2, end vec.Vec2) (*Cubic, error) {
	if !isFinite(start) || !isFinite(c1) || !isFinite(c2) || !isFinite(end) {
		return nil, newError(InvalidGeometry, "NewCubic", "non-finite control point")
	}
	return &Cubic{P0: start, P1: c1, P2: c2, P3: end}, nil
}

func (c *Cubic) Kind() SegmentKind { return KindCubic }
func (c *Cubic) Start() vec.Vec2   { return c.P0 }
func (c *Cubic) End() vec.Vec2     { return c.P3 }

func (c *Cubic) Position(t float64) vec.Vec2 {
	omt := 1 - t
	b0 := omt * omt * omt
	b1 := 3 * omt * omt * t
	b2 := 3 * omt * t * t
	b3 := t * t * t
	return c.P0.Mul(b0).Add(c.P1.Mul(b1)).Add(c.P2.Mul(b2)).Add(c.P3.Mul(b3))
}

func (c *Cubic) Tangent(t float64) vec.Vec2 {
	omt := 1 - t
	d0 := c.P1.Sub(c.P0).Mul(3 * omt * omt)
	d1 := c.P2.Sub(c.P1).Mul(6 * omt * t)
	d2 := c.P3.Sub(c.P2).Mul(3 * t * t)
	return d0.Add(d1).Add(d2)
}

func (c *Cubic) StartTangent() vec.Vec2 { return normalize(c.Tangent(0)) }
func (c *Cubic) EndTangent() vec.Vec2   { return normalize(c.Tangent(1)) }

func (c *Cubic) Curvature(t float64) float64 {
	d1 := c.Tangent(t)
	speed := d1.Length()
	if speed == 0 {
		return 0
	}
	d2 := cubicAccel(c, t)
	return cross(d1, d2) / (speed * speed * speed)
}

// cubicAccel returns the second derivative (acceleration) of the cubic at
// t, using the standard a,b power-basis vectors defined below.
func cubicAccel(c *Cubic, t float64) vec.Vec2 {
	a := cubicA(c)
	b := cubicB(c)
	return a.Mul(6 * t).Add(b.Mul(2))
}

func cubicA(c *Cubic) vec.Vec2 {
	return c.P0.Mul(-1).Add(c.P1.Mul(3)).Sub(c.P2.Mul(3)).Add(c.P3)
}
func cubicB(c *Cubic) vec.Vec2 {
	return c.P0.Mul(3).Sub(c.P1.Mul(6)).Add(c.P2.Mul(3))
}
func cubicC(c *Cubic) vec.Vec2 {
	return c.P0.Mul(-3).Add(c.P1.Mul(3))
}

// cuspAnalysis is the lazily computed cusp/inflection decomposition.
type cuspAnalysis struct {
	tCusp       float64
	det         float64
	inflection1 float64 // NaN if none
	inflection2 float64
	hasCusp     bool
	quadDecomp  []Segment // nil unless hasCusp
}

func (c *Cubic) analyze() *cuspAnalysis {
	if c.cuspCache != nil {
		return c.cuspCache
	}
	a := cubicA(c)
	b := cubicB(c)
	cc := cubicC(c)
	aPerp := perp(a)
	denom := dot(aPerp, b)
	an := &cuspAnalysis{inflection1: math.NaN(), inflection2: math.NaN()}
	if denom != 0 {
		an.tCusp = -0.5 * dot(aPerp, cc) / denom
		an.det = an.tCusp*an.tCusp - (dot(perp(b), cc)/denom)/3
		if an.det >= 0 {
			sq := math.Sqrt(an.det)
			an.inflection1 = an.tCusp - sq
			an.inflection2 = an.tCusp + sq
		}
		if an.tCusp >= 0 && an.tCusp <= 1 {
			tan := c.Tangent(an.tCusp)
			if tan.Length() < cuspTangentEpsilon {
				an.hasCusp = true
			}
		}
	} else {
		an.tCusp = math.NaN()
	}
	if an.hasCusp {
		an.quadDecomp = c.computeCuspSegments(an.tCusp)
	}
	c.cuspCache = an
	return an
}

// computeCuspSegments decomposes the cubic into one or two quadratics
// sharing a midpoint at the cusp, subdividing at the numeric cusp
// parameter rather than at a function reference.
func (c *Cubic) computeCuspSegments(tCusp float64) []Segment {
	if tCusp <= 1e-9 || tCusp >= 1-1e-9 {
		q, _ := approximateCubicAsQuadratic(c)
		return []Segment{q}
	}
	leftCubic, rightCubic := c.Subdivided(tCusp)
	lq, _ := approximateCubicAsQuadratic(leftCubic.(*Cubic))
	rq, _ := approximateCubicAsQuadratic(rightCubic.(*Cubic))
	return []Segment{lq, rq}
}

// approximateCubicAsQuadratic applies the degree-reduction rule: if the
// two implied quadratic control points
// (3*c1-start)/2 and (3*c2-end)/2 agree within epsilon, replace with a
// quadratic whose control point is their average.
func approximateCubicAsQuadratic(c *Cubic) (*Quadratic, bool) {
	ctrlFromStart := c.P1.Mul(3).Sub(c.P0).Mul(0.5)
	ctrlFromEnd := c.P2.Mul(3).Sub(c.P3).Mul(0.5)
	exact := distance(ctrlFromStart, ctrlFromEnd) <= 1e-6
	avg := blend(ctrlFromStart, ctrlFromEnd, 0.5)
	q, _ := NewQuadratic(c.P0, avg, c.P3)
	return q, exact
}

// TCusp returns the parametric cusp candidate (may be outside [0,1] or
// NaN if the cubic has no cusp candidate).
func (c *Cubic) TCusp() float64 { return c.analyze().tCusp }

// InflectionTs returns the two inflection-point t-values (NaN entries
// when there is no real inflection).
func (c *Cubic) InflectionTs() (float64, float64) {
	a := c.analyze()
	return a.inflection1, a.inflection2
}

// HasCusp reports whether a true cusp (tangent length below
// cuspTangentEpsilon) lies inside [0,1].
func (c *Cubic) HasCusp() bool { return c.analyze().hasCusp }

func (c *Cubic) Bounds() Bounds {
	if c.boundsCache != nil {
		return *c.boundsCache
	}
	b := NothingBounds.WithPoint(c.P0).WithPoint(c.P3)
	for _, t := range c.InteriorExtremaTs() {
		b = b.WithPoint(c.Position(t))
	}
	c.boundsCache = &b
	return b
}

func (c *Cubic) Subdivided(t float64) (Segment, Segment) {
	if t <= 0 {
		return c, &Cubic{P0: c.P3, P1: c.P3, P2: c.P3, P3: c.P3}
	}
	if t >= 1 {
		return c, &Cubic{P0: c.P3, P1: c.P3, P2: c.P3, P3: c.P3}
	}
	p01 := blend(c.P0, c.P1, t)
	p12 := blend(c.P1, c.P2, t)
	p23 := blend(c.P2, c.P3, t)
	p012 := blend(p01, p12, t)
	p123 := blend(p12, p23, t)
	p := blend(p012, p123, t)
	left, _ := NewCubic(c.P0, p01, p012, p)
	right, _ := NewCubic(p, p123, p23, c.P3)
	return left, right
}

func cubicExtremaTs(v0, v1, v2, v3 float64) []float64 {
	// derivative is quadratic in t: 3*(1-t)^2*(v1-v0) + 6*(1-t)*t*(v2-v1) + 3*t^2*(v3-v2)
	a := 3 * (-v0 + 3*v1 - 3*v2 + v3)
	b := 6 * (v0 - 2*v1 + v2)
	cc := 3 * (v1 - v0)
	var ts []float64
	if math.Abs(a) < 1e-15 {
		if math.Abs(b) > 1e-15 {
			ts = append(ts, -cc/b)
		}
		return ts
	}
	disc := b*b - 4*a*cc
	if disc < 0 {
		return ts
	}
	sq := math.Sqrt(disc)
	ts = append(ts, (-b+sq)/(2*a), (-b-sq)/(2*a))
	return ts
}

func (c *Cubic) InteriorExtremaTs() []float64 {
	var ts []float64
	ts = append(ts, cubicExtremaTs(c.P0.X, c.P1.X, c.P2.X, c.P3.X)...)
	ts = append(ts, cubicExtremaTs(c.P0.Y, c.P1.Y, c.P2.Y, c.P3.Y)...)
	return dedupeSortedTs(ts)
}

func (c *Cubic) Transformed(m Matrix) Segment {
	out, _ := NewCubic(Apply(m, c.P0), Apply(m, c.P1), Apply(m, c.P2), Apply(m, c.P3))
	return out
}

func (c *Cubic) Reversed() Segment {
	out, _ := NewCubic(c.P3, c.P2, c.P1, c.P0)
	return out
}

// SignedAreaFragment integrates -y/2 dx + x/2 dy over the Bernstein form;
// the closed-form coefficients below come from expanding that integral in
// the control points.
func (c *Cubic) SignedAreaFragment() float64 {
	pts := [4]vec.Vec2{c.P0, c.P1, c.P2, c.P3}
	// Standard cubic-Bezier signed-area weights (derived from the
	// Bernstein basis integral), antisymmetric in x/y.
	weights := [4][4]float64{
		{0, 6, 3, 1},
		{-6, 0, 3, 3},
		{-3, -3, 0, 6},
		{-1, -3, -6, 0},
	}
	var sum float64
	for i := 0; i < 4; i++ {
		for j := 0; j < 4; j++ {
			sum += weights[i][j] * (pts[i].X*pts[j].Y)
		}
	}
	return sum / 20
}

func (c *Cubic) NondegenerateSegments() []Segment {
	if c.P0 == c.P1 && c.P1 == c.P2 && c.P2 == c.P3 {
		return nil
	}
	if q, exact := approximateCubicAsQuadratic(c); exact {
		return q.NondegenerateSegments()
	}
	return []Segment{c}
}

// SelfIntersection subdivides the cubic at its interior extrema into
// monotone pieces and runs the bounds-subdivision intersector on every
// unordered pair, returning the unique interior intersection (if any),
// excluding near-endpoint matches within a small fixed epsilon.
func (c *Cubic) SelfIntersection() (Intersection, bool) {
	extrema := c.InteriorExtremaTs()
	bounds := append([]float64{0}, extrema...)
	bounds = append(bounds, 1)
	var pieces []Segment
	var starts []float64
	cur := Segment(c)
	prevT := 0.0
	for _, t := range bounds[1:] {
		if t <= prevT {
			continue
		}
		local := (t - prevT) / (1 - prevT)
		left, right := cur.Subdivided(local)
		pieces = append(pieces, left)
		starts = append(starts, prevT)
		cur = right
		prevT = t
	}
	for i := 0; i < len(pieces); i++ {
		for j := i + 1; j < len(pieces); j++ {
			if j == i+1 {
				continue // adjacent pieces share an endpoint, not a self-intersection
			}
			hits := IntersectSegments(pieces[i], pieces[j])
			for _, h := range hits {
				if h.TA < 1e-7 && starts[i] < 1e-9 {
					continue
				}
				if h.TA > 1-1e-7 && j == len(pieces)-1 {
					continue
				}
				return h, true
			}
		}
	}
	return Intersection{}, false
}
