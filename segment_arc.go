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

// Arc is a circular arc. A negative Radius is canonicalized on
// construction by adding pi to both angles and flipping its sign, so
// Radius is always >= 0 afterwards.
type Arc struct {
	observer
	Center               vec.Vec2
	Radius               float64
	StartAngle, EndAngle float64 // radians
	Anticlockwise        bool

	boundsCache *Bounds
}

var _ Segment = (*Arc)(nil)

// NewArc constructs an Arc. |endAngle-startAngle| must not exceed 2*pi in
// the swept direction.
func NewArc(center vec.Vec2, radius, startAngle, endAngle float64, anticlockwise bool) (*Arc, error) {
	if !isFinite(center) || math.IsNaN(radius) || math.IsInf(radius, 0) {
		return nil, newError(InvalidGeometry, "NewArc", "non-finite center or radius")
	}
	if radius < 0 {
		startAngle += math.Pi
		endAngle += math.Pi
		radius = -radius
	}
	a := &Arc{Center: center, Radius: radius, StartAngle: startAngle, EndAngle: endAngle, Anticlockwise: anticlockwise}
	if math.Abs(a.sweep()) > 2*math.Pi+1e-9 {
		return nil, newError(InvalidGeometry, "NewArc", "sweep exceeds 2*pi")
	}
	return a, nil
}

// sweep returns the signed angular distance traveled from StartAngle to
// actualEndAngle, i.e. EndAngle adjusted so that it is reached
// monotonically in the declared direction.
func (a *Arc) sweep() float64 {
	d := a.EndAngle - a.StartAngle
	if a.Anticlockwise {
		for d > 0 {
			d -= 2 * math.Pi
		}
	} else {
		for d < 0 {
			d += 2 * math.Pi
		}
	}
	return d
}

// actualEndAngle is StartAngle shifted by the signed swept angle, so that
// the parameter direction is monotone.
func (a *Arc) actualEndAngle() float64 { return a.StartAngle + a.sweep() }

// angleDifference is the total swept magnitude, always in [0, 2*pi].
func (a *Arc) angleDifference() float64 { return math.Abs(a.sweep()) }

func (a *Arc) angleAt(t float64) float64 {
	return a.StartAngle + (a.actualEndAngle()-a.StartAngle)*t
}

func (a *Arc) Kind() SegmentKind { return KindArc }
func (a *Arc) Start() vec.Vec2   { return a.Center.Add(polar(a.Radius, a.StartAngle)) }
func (a *Arc) End() vec.Vec2     { return a.Center.Add(polar(a.Radius, a.actualEndAngle())) }

func (a *Arc) Position(t float64) vec.Vec2 {
	return a.Center.Add(polar(a.Radius, a.angleAt(t)))
}

func (a *Arc) Tangent(t float64) vec.Vec2 {
	theta := a.angleAt(t)
	radial := vec.Vec2{X: math.Cos(theta), Y: math.Sin(theta)}
	tan := perp(radial)
	scale := a.actualEndAngle() - a.StartAngle
	if scale < 0 {
		tan = tan.Mul(-1)
	}
	return tan.Mul(math.Abs(scale) * a.Radius)
}

func (a *Arc) StartTangent() vec.Vec2 { return normalize(a.Tangent(0)) }
func (a *Arc) EndTangent() vec.Vec2   { return normalize(a.Tangent(1)) }

func (a *Arc) Curvature(float64) float64 {
	if a.Radius == 0 {
		return 0
	}
	if a.Anticlockwise {
		return -1 / a.Radius
	}
	return 1 / a.Radius
}

// ContainsAngle reports whether angle lies within the swept arc. It
// normalizes (angle - referenceAngle) into [0, 2*pi) and compares against
// angleDifference; the reference angle is StartAngle for clockwise arcs
// and EndAngle for anticlockwise ones, matching the parametrization
// direction.
func (a *Arc) ContainsAngle(angle float64) bool {
	ref := a.StartAngle
	if a.Anticlockwise {
		ref = a.EndAngle
	}
	d := math.Mod(angle-ref, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= a.angleDifference()+angleEqualityEpsilon
}

func (a *Arc) Bounds() Bounds {
	if a.boundsCache != nil {
		return *a.boundsCache
	}
	b := NothingBounds.WithPoint(a.Start()).WithPoint(a.End())
	for _, cardinal := range [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if a.ContainsAngle(cardinal) {
			b = b.WithPoint(a.Center.Add(polar(a.Radius, cardinal)))
		}
	}
	a.boundsCache = &b
	return b
}

func (a *Arc) Subdivided(t float64) (Segment, Segment) {
	if t <= 0 || t >= 1 {
		degenerate, _ := NewArc(a.Center, a.Radius, a.actualEndAngle(), a.actualEndAngle(), a.Anticlockwise)
		return a, degenerate
	}
	mid := a.angleAt(t)
	left, _ := NewArc(a.Center, a.Radius, a.StartAngle, mid, a.Anticlockwise)
	right, _ := NewArc(a.Center, a.Radius, mid, a.actualEndAngle(), a.Anticlockwise)
	return left, right
}

func (a *Arc) NondegenerateSegments() []Segment {
	if a.Radius == 0 || a.angleDifference() < 1e-12 {
		return nil
	}
	return []Segment{a}
}

func (a *Arc) InteriorExtremaTs() []float64 {
	var ts []float64
	sweep := a.actualEndAngle() - a.StartAngle
	if sweep == 0 {
		return nil
	}
	for _, cardinal := range [4]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2} {
		if !a.ContainsAngle(cardinal) {
			continue
		}
		rel := math.Mod(cardinal-a.StartAngle, 2*math.Pi)
		if sweep < 0 {
			for rel > 0 {
				rel -= 2 * math.Pi
			}
		} else {
			for rel < 0 {
				rel += 2 * math.Pi
			}
		}
		t := rel / sweep
		if t > 1e-9 && t < 1-1e-9 {
			ts = append(ts, t)
		}
	}
	return dedupeSortedTs(ts)
}

func (a *Arc) Transformed(m Matrix) Segment {
	if IsUniformScale(m, 1e-9) {
		scale := ScaleVector(m).X
		center := Apply(m, a.Center)
		rot := angleOf(ApplyLinear(m, vec.Vec2{X: 1, Y: 0}))
		startAngle := a.StartAngle + rot
		endAngle := a.EndAngle + rot
		anticlockwise := a.Anticlockwise
		if IsReflecting(m) {
			anticlockwise = !anticlockwise
		}
		out, err := NewArc(center, a.Radius*scale, startAngle, endAngle, anticlockwise)
		if err == nil {
			return out
		}
	}
	// Non-uniform scale: becomes an EllipticalArc.
	e := ellipticalArcFromUnitTransform(unitCircleTransform(a.Center, a.Radius, a.Radius, 0), a.StartAngle, a.EndAngle, a.Anticlockwise)
	return e.Transformed(m)
}

func (a *Arc) Reversed() Segment {
	out, _ := NewArc(a.Center, a.Radius, a.actualEndAngle(), a.StartAngle, !a.Anticlockwise)
	return out
}

// SignedAreaFragment integrates -y/2 dx + x/2 dy over the arc, which for
// a circular arc centered at C reduces to the circular-sector area plus
// the two radii's triangle contribution; the closed form below is
// r^2/2*(theta1-theta0) + (Cx*(y1-y0) - Cy*(x1-x0))/2.
func (a *Arc) SignedAreaFragment() float64 {
	t0, t1 := a.StartAngle, a.actualEndAngle()
	p0, p1 := a.Start(), a.End()
	sector := a.Radius * a.Radius / 2 * (t1 - t0)
	corner := (a.Center.X*(p1.Y-p0.Y) - a.Center.Y*(p1.X-p0.X)) / 2
	return sector + corner
}

// SetGeometry mutates the arc in place and invalidates caches.
func (a *Arc) SetGeometry(center vec.Vec2, radius, startAngle, endAngle float64, anticlockwise bool) error {
	n, err := NewArc(center, radius, startAngle, endAngle, anticlockwise)
	if err != nil {
		return err
	}
	a.Center, a.Radius, a.StartAngle, a.EndAngle, a.Anticlockwise = n.Center, n.Radius, n.StartAngle, n.EndAngle, n.Anticlockwise
	a.boundsCache = nil
	a.publish()
	return nil
}

// IntersectRay solves the classical quadratic line-circle system and
// reports hits whose polar angle is contained in the arc's sweep.
func (a *Arc) IntersectRay(r Ray) []RayIntersection {
	oc := r.Origin.Sub(a.Center)
	b := dot(oc, r.Dir)
	c := dot(oc, oc) - a.Radius*a.Radius
	disc := b*b - c
	if disc < 0 {
		return nil
	}
	sq := math.Sqrt(disc)
	var hits []RayIntersection
	for _, s := range [2]float64{-b - sq, -b + sq} {
		if s < 0 {
			continue
		}
		pt := r.Origin.Add(r.Dir.Mul(s))
		angle := angleOf(pt.Sub(a.Center))
		if !a.ContainsAngle(angle) {
			continue
		}
		n := normalize(pt.Sub(a.Center))
		if dot(n, r.Dir) > 0 {
			n = n.Mul(-1)
		}
		winding := 1
		inside := dot(oc, oc) < a.Radius*a.Radius
		if a.Anticlockwise != inside {
			winding = -1
		}
		hits = append(hits, RayIntersection{Distance: s, Point: pt, Normal: n, Winding: winding})
	}
	return hits
}
