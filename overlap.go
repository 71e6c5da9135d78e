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

// Overlap describes a shared sub-range between two segments: as t ranges
// over [TA0,TA1] on a, b traces the same point set over the corresponding
// (possibly reversed) range [TB0,TB1]. SameDirection reports whether
// increasing TA corresponds to increasing TB.
type Overlap struct {
	TA0, TA1      float64
	TB0, TB1      float64
	SameDirection bool
}

// DetectOverlap reports the (possibly empty) set of parameter ranges over
// which a and b trace the same point set. Only same-kind pairs (after
// treating Arc as a degenerate EllipticalArc) are checked; curves of
// different fundamental type (e.g. a Line against a Quadratic) never
// overlap on a positive-length range in this detector, matching spec
// §4.3's scope.
func DetectOverlap(a, b Segment) []Overlap {
	switch x := a.(type) {
	case *Line:
		if y, ok := b.(*Line); ok {
			return lineOverlap(x, y)
		}
	case *Quadratic:
		if y, ok := b.(*Quadratic); ok {
			return quadraticOverlap(x, y)
		}
	case *Cubic:
		if y, ok := b.(*Cubic); ok {
			return cubicOverlap(x, y)
		}
	case *Arc:
		switch y := b.(type) {
		case *Arc:
			return arcAngularOverlap(arcAsEllipse(x), arcAsEllipse(y))
		case *EllipticalArc:
			return arcAngularOverlap(arcAsEllipse(x), y)
		}
	case *EllipticalArc:
		switch y := b.(type) {
		case *Arc:
			return arcAngularOverlap(x, arcAsEllipse(y))
		case *EllipticalArc:
			return arcAngularOverlap(x, y)
		}
	}
	return nil
}

func arcAsEllipse(a *Arc) *EllipticalArc {
	return &EllipticalArc{Center: a.Center, RadiusX: a.Radius, RadiusY: a.Radius, Rotation: 0, StartAngle: a.StartAngle, EndAngle: a.EndAngle, Anticlockwise: a.Anticlockwise}
}

// lineOverlap reports the collinear overlap (if any) of two lines, via
// projection onto the shared direction.
func lineOverlap(a, b *Line) []Overlap {
	d := a.B.Sub(a.A)
	dl := d.Length()
	if dl < 1e-12 {
		return nil
	}
	u := d.Mul(1 / dl)
	// b must be collinear with a: both endpoints project to zero
	// perpendicular offset from a's line.
	perpU := perp(u)
	if math.Abs(dot(b.A.Sub(a.A), perpU)) > overlapVerifyEpsilon || math.Abs(dot(b.B.Sub(a.A), perpU)) > overlapVerifyEpsilon {
		return nil
	}
	sA0, sA1 := 0.0, dl
	sB0 := dot(b.A.Sub(a.A), u)
	sB1 := dot(b.B.Sub(a.A), u)
	lo := math.Max(sA0, math.Min(sB0, sB1))
	hi := math.Min(sA1, math.Max(sB0, sB1))
	if hi-lo < 1e-9 {
		return nil
	}
	ta0, ta1 := lo/dl, hi/dl
	bl := b.B.Sub(b.A).Length()
	if bl < 1e-12 {
		return nil
	}
	sameDir := sB1 >= sB0
	var tb0, tb1 float64
	if sameDir {
		tb0, tb1 = (lo-sB0)/(sB1-sB0), (hi-sB0)/(sB1-sB0)
	} else {
		tb0, tb1 = (sB0-hi)/(sB0-sB1), (sB0-lo)/(sB0-sB1)
	}
	return []Overlap{{TA0: ta0, TA1: ta1, TB0: tb0, TB1: tb1, SameDirection: sameDir}}
}

// quadraticOverlap tests whether b is an affine reparametrization of a
// (same underlying parabola, t_b = m*t_a+k), using the power-basis
// leading-coefficient ratio to recover m and a one-dimensional solve for
// k, then verifying the whole match by sampling.
func quadraticOverlap(a, b *Quadratic) []Overlap {
	c0A, c1A, c2A := quadraticPowerBasis(a)
	c0B, c1B, c2B := quadraticPowerBasis(b)
	if c2B.Length() < 1e-12 || c2A.Length() < 1e-12 {
		return nil // degenerate (collinear) quadratics: not handled here
	}
	if dot(c2A, c2B) <= 0 {
		return nil
	}
	ratio := c2A.Length() / c2B.Length()
	m := math.Sqrt(ratio)
	for _, candidateM := range [2]float64{m, -m} {
		lhs := c1A.Mul(1 / candidateM).Sub(c1B)
		var k float64
		if math.Abs(c2B.X) > math.Abs(c2B.Y) {
			k = lhs.X / (2 * c2B.X)
		} else {
			k = lhs.Y / (2 * c2B.Y)
		}
		c0check := c0B.Add(c1B.Mul(k)).Add(c2B.Mul(k * k))
		if distance(c0check, c0A) > overlapVerifyEpsilon {
			continue
		}
		if ov, ok := verifyAndClip(a, b, candidateM, k); ok {
			return []Overlap{ov}
		}
	}
	return nil
}

func quadraticPowerBasis(q *Quadratic) (c0, c1, c2 vec.Vec2) {
	c0 = q.P0
	c1 = q.P1.Sub(q.P0).Mul(2)
	c2 = q.P0.Sub(q.P1.Mul(2)).Add(q.P2)
	return
}

// cubicOverlap mirrors quadraticOverlap using the cubic's leading
// (degree-3) power-basis coefficient to recover m, then solves for k via
// Newton's method on the remaining equations before verifying by
// sampling.
func cubicOverlap(a, b *Cubic) []Overlap {
	a3A, a3B := cubicA(a), cubicA(b)
	if a3A.Length() < 1e-12 || a3B.Length() < 1e-12 {
		return nil
	}
	ratioCubed := a3A.Length() / a3B.Length()
	mAbs := math.Cbrt(ratioCubed)
	sign := 1.0
	if dot(a3A, a3B) < 0 {
		sign = -1
	}
	m := mAbs * sign

	k, ok := solveCubicOverlapK(a, b, m)
	if !ok {
		return nil
	}
	if ov, ok := verifyAndClip(a, b, m, k); ok {
		return []Overlap{ov}
	}
	return nil
}

// solveCubicOverlapK finds k such that b's power-basis curve, evaluated at
// m*0+k, lands on a.Start(); it refines by 1D Newton on the x-coordinate
// (or y, whichever has the steeper local derivative) starting from k=0.
func solveCubicOverlapK(a, b *Cubic, m float64) (float64, bool) {
	target := a.P0
	k := 0.0
	for i := 0; i < 30; i++ {
		p := cubicPowerEval(b, k)
		tan := cubicPowerDeriv(b, k)
		var f, df float64
		if math.Abs(tan.X) >= math.Abs(tan.Y) {
			f, df = p.X-target.X, tan.X
		} else {
			f, df = p.Y-target.Y, tan.Y
		}
		if math.Abs(df) < 1e-14 {
			break
		}
		step := f / df
		k -= step
		if math.Abs(step) < 1e-13 {
			break
		}
	}
	if distance(cubicPowerEval(b, k), target) > overlapVerifyEpsilon {
		return 0, false
	}
	return k, true
}

func cubicPowerEval(c *Cubic, s float64) vec.Vec2 {
	a, b, cc := cubicA(c), cubicB(c), cubicC(c)
	return c.P0.Add(cc.Mul(s)).Add(b.Mul(s * s)).Add(a.Mul(s * s * s))
}

func cubicPowerDeriv(c *Cubic, s float64) vec.Vec2 {
	a, b, cc := cubicA(c), cubicB(c), cubicC(c)
	return cc.Add(b.Mul(2 * s)).Add(a.Mul(3 * s * s))
}

// verifyAndClip samples both curves under the candidate reparametrization
// s_b = m*s_a+k and, if they agree to within overlapVerifyEpsilon
// throughout the shared domain, returns the clipped overlap range.
func verifyAndClip(a, b Segment, m, k float64) (Overlap, bool) {
	// s_a in [0,1] maps to s_b=m*s_a+k; the overlap is where both s_a in
	// [0,1] and s_b in [0,1].
	var sa0, sa1 float64
	if m >= 0 {
		sa0 = math.Max(0, -k/m)
		sa1 = math.Min(1, (1-k)/m)
	} else {
		sa0 = math.Max(0, (1-k)/m)
		sa1 = math.Min(1, -k/m)
	}
	if sa1-sa0 < 1e-9 {
		return Overlap{}, false
	}
	const samples = 7
	for i := 0; i <= samples; i++ {
		t := sa0 + (sa1-sa0)*float64(i)/samples
		s := m*t + k
		if distance(a.Position(t), b.Position(s)) > overlapVerifyEpsilon {
			return Overlap{}, false
		}
	}
	sb0, sb1 := m*sa0+k, m*sa1+k
	return Overlap{TA0: sa0, TA1: sa1, TB0: sb0, TB1: sb1, SameDirection: m >= 0}, true
}

// arcAngularOverlap reports the angular overlap(s) between two elliptical
// arcs sharing the same center, radii, and rotation (mod pi, matching the
// RadiusX>=RadiusY canonicalization). Because angles are circular, two
// arcs that each sweep more than half a turn can overlap in up to two
// disjoint angular bands.
func arcAngularOverlap(a, b *EllipticalArc) []Overlap {
	if distance(a.Center, b.Center) > overlapVerifyEpsilon {
		return nil
	}
	if math.Abs(a.RadiusX-b.RadiusX) > overlapVerifyEpsilon || math.Abs(a.RadiusY-b.RadiusY) > overlapVerifyEpsilon {
		return nil
	}
	if math.Abs(a.RadiusX-a.RadiusY) > 1e-9 {
		// non-circular ellipse: rotation must match mod pi
		dr := math.Mod(a.Rotation-b.Rotation, math.Pi)
		if dr > math.Pi/2 {
			dr -= math.Pi
		} else if dr < -math.Pi/2 {
			dr += math.Pi
		}
		if math.Abs(dr) > overlapVerifyEpsilon {
			return nil
		}
	}

	aLo, aHi := a.StartAngle, a.actualEndAngle()
	if aLo > aHi {
		aLo, aHi = aHi, aLo
	}
	bLo, bHi := b.StartAngle, b.actualEndAngle()
	if bLo > bHi {
		bLo, bHi = bHi, bLo
	}

	var overlaps []Overlap
	for _, shift := range [3]float64{-2 * math.Pi, 0, 2 * math.Pi} {
		lo := math.Max(aLo, bLo+shift)
		hi := math.Min(aHi, bHi+shift)
		if hi-lo < angleEqualityEpsilon {
			continue
		}
		ta0 := angleToT(a, lo)
		ta1 := angleToT(a, hi)
		tb0 := angleToT(b, lo-shift)
		tb1 := angleToT(b, hi-shift)
		sameDir := (ta1 >= ta0) == (tb1 >= tb0)
		overlaps = append(overlaps, Overlap{TA0: math.Min(ta0, ta1), TA1: math.Max(ta0, ta1), TB0: math.Min(tb0, tb1), TB1: math.Max(tb0, tb1), SameDirection: sameDir})
		if len(overlaps) == 2 {
			break
		}
	}
	return overlaps
}

func angleToT(e *EllipticalArc, angle float64) float64 {
	span := e.actualEndAngle() - e.StartAngle
	if span == 0 {
		return 0
	}
	return (angle - e.StartAngle) / span
}
