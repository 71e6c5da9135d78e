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

// EllipticalArc is an arc of an ellipse. Canonicalized on construction so
// that RadiusX >= RadiusY >= 0, by swapping the radii and adjusting
// Rotation/angles by pi/2 when necessary.
type EllipticalArc struct {
	observer
	Center               vec.Vec2
	RadiusX, RadiusY     float64
	Rotation             float64
	StartAngle, EndAngle float64
	Anticlockwise        bool

	unitTransformCache *Matrix
	boundsCache        *Bounds
}

var _ Segment = (*EllipticalArc)(nil)

// unitCircleTransform returns the affine map translate(center) . rotate(rotation) . scale(rx, ry).
func unitCircleTransform(center vec.Vec2, rx, ry, rotation float64) Matrix {
	return Compose(Translation(center.X, center.Y), Compose(Rotation(rotation), ScaleXY(rx, ry)))
}

// NewEllipticalArc constructs an EllipticalArc, canonicalizing so that
// RadiusX >= RadiusY >= 0.
func NewEllipticalArc(center vec.Vec2, rx, ry, rotation, startAngle, endAngle float64, anticlockwise bool) (*EllipticalArc, error) {
	if !isFinite(center) || math.IsNaN(rx) || math.IsNaN(ry) {
		return nil, newError(InvalidGeometry, "NewEllipticalArc", "non-finite center or radius")
	}
	if rx < 0 || ry < 0 {
		return nil, newError(InvalidGeometry, "NewEllipticalArc", "negative radius")
	}
	if rx < ry {
		rx, ry = ry, rx
		rotation += math.Pi / 2
		startAngle -= math.Pi / 2
		endAngle -= math.Pi / 2
	}
	if rx < ry {
		return nil, newError(UnsupportedConfiguration, "NewEllipticalArc", "radiusX < radiusY after canonicalization")
	}
	e := &EllipticalArc{Center: center, RadiusX: rx, RadiusY: ry, Rotation: rotation, StartAngle: startAngle, EndAngle: endAngle, Anticlockwise: anticlockwise}
	if math.Abs(e.sweep()) > 2*math.Pi+1e-9 {
		return nil, newError(InvalidGeometry, "NewEllipticalArc", "sweep exceeds 2*pi")
	}
	return e, nil
}

// ellipticalArcFromUnitTransform builds an EllipticalArc from an arbitrary
// unit-circle-to-ellipse transform, decomposing it back into
// center/rx/ry/rotation. Used when an Arc becomes elliptical under a
// non-uniform-scale Transformed call.
func ellipticalArcFromUnitTransform(ut Matrix, startAngle, endAngle float64, anticlockwise bool) *EllipticalArc {
	center := vec.Vec2{X: ut[4], Y: ut[5]}
	rx := math.Hypot(ut[0], ut[1])
	rotation := angleOf(vec.Vec2{X: ut[0], Y: ut[1]})
	ry := ut[0]*ut[3] - ut[1]*ut[2]
	if rx != 0 {
		ry /= rx
	}
	e, err := NewEllipticalArc(center, rx, math.Abs(ry), rotation, startAngle, endAngle, anticlockwise)
	if err != nil {
		// fall back to a degenerate point arc rather than propagating,
		// matching the best-effort geometry policy.
		e = &EllipticalArc{Center: center, StartAngle: startAngle, EndAngle: startAngle, Anticlockwise: anticlockwise}
	}
	return e
}

func (e *EllipticalArc) sweep() float64 {
	d := e.EndAngle - e.StartAngle
	if e.Anticlockwise {
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

func (e *EllipticalArc) actualEndAngle() float64   { return e.StartAngle + e.sweep() }
func (e *EllipticalArc) angleDifference() float64 { return math.Abs(e.sweep()) }

func (e *EllipticalArc) angleAt(t float64) float64 {
	return e.StartAngle + (e.actualEndAngle()-e.StartAngle)*t
}

// unitTransform is the lazily cached affine map from the unit circle to
// this ellipse.
func (e *EllipticalArc) unitTransform() Matrix {
	if e.unitTransformCache != nil {
		return *e.unitTransformCache
	}
	ut := unitCircleTransform(e.Center, e.RadiusX, e.RadiusY, e.Rotation)
	e.unitTransformCache = &ut
	return ut
}

func (e *EllipticalArc) Kind() SegmentKind { return KindEllipticalArc }

func (e *EllipticalArc) pointAtAngle(theta float64) vec.Vec2 {
	return Apply(e.unitTransform(), vec.Vec2{X: math.Cos(theta), Y: math.Sin(theta)})
}

func (e *EllipticalArc) Start() vec.Vec2 { return e.pointAtAngle(e.StartAngle) }
func (e *EllipticalArc) End() vec.Vec2   { return e.pointAtAngle(e.actualEndAngle()) }

func (e *EllipticalArc) Position(t float64) vec.Vec2 { return e.pointAtAngle(e.angleAt(t)) }

// Tangent applies the linear part of unitTransform (the Jacobian of the
// ellipse parametrization) to the unit circle's tangent, scaled by the
// parametric speed. This is the pushforward of the unit-circle tangent,
// which is what makes the bounds extrema formulas below consistent.
func (e *EllipticalArc) Tangent(t float64) vec.Vec2 {
	theta := e.angleAt(t)
	unitTan := vec.Vec2{X: -math.Sin(theta), Y: math.Cos(theta)}
	tan := ApplyLinear(e.unitTransform(), unitTan)
	speed := e.actualEndAngle() - e.StartAngle
	return tan.Mul(speed)
}

func (e *EllipticalArc) StartTangent() vec.Vec2 { return normalize(e.Tangent(0)) }
func (e *EllipticalArc) EndTangent() vec.Vec2   { return normalize(e.Tangent(1)) }

func (e *EllipticalArc) Curvature(t float64) float64 {
	theta := e.angleAt(t)
	sinT, cosT := math.Sin(theta), math.Cos(theta)
	denom := math.Pow(e.RadiusX*e.RadiusX*sinT*sinT+e.RadiusY*e.RadiusY*cosT*cosT, 1.5)
	if denom == 0 {
		return 0
	}
	k := (e.RadiusX * e.RadiusY) / denom
	if e.Anticlockwise {
		return -k
	}
	return k
}

// ContainsAngle mirrors Arc.ContainsAngle, operating on the unit-circle
// angle (i.e. before applying Rotation/radii).
func (e *EllipticalArc) ContainsAngle(angle float64) bool {
	ref := e.StartAngle
	if e.Anticlockwise {
		ref = e.EndAngle
	}
	d := math.Mod(angle-ref, 2*math.Pi)
	if d < 0 {
		d += 2 * math.Pi
	}
	return d <= e.angleDifference()+angleEqualityEpsilon
}

// extremaAngles returns up to four candidate unit-circle angles where the
// transformed ellipse point is extremal in x or y, from
// atan(-(ry/rx)*tan(rot)) and atan((ry/rx)/tan(rot)), each plus pi.
func (e *EllipticalArc) extremaAngles() []float64 {
	ratio := e.RadiusY / e.RadiusX
	var candidates []float64
	if e.RadiusX > 0 {
		a1 := math.Atan(-ratio * math.Tan(e.Rotation))
		a2 := math.Atan(ratio / math.Tan(e.Rotation))
		candidates = append(candidates, a1, a1+math.Pi, a2, a2+math.Pi)
	}
	return candidates
}

func (e *EllipticalArc) Bounds() Bounds {
	if e.boundsCache != nil {
		return *e.boundsCache
	}
	b := NothingBounds.WithPoint(e.Start()).WithPoint(e.End())
	for _, theta := range e.extremaAngles() {
		if e.ContainsAngle(theta) {
			b = b.WithPoint(e.pointAtAngle(theta))
		}
	}
	e.boundsCache = &b
	return b
}

func (e *EllipticalArc) Subdivided(t float64) (Segment, Segment) {
	if t <= 0 || t >= 1 {
		degenerate, _ := NewEllipticalArc(e.Center, e.RadiusX, e.RadiusY, e.Rotation, e.actualEndAngle(), e.actualEndAngle(), e.Anticlockwise)
		return e, degenerate
	}
	mid := e.angleAt(t)
	left, _ := NewEllipticalArc(e.Center, e.RadiusX, e.RadiusY, e.Rotation, e.StartAngle, mid, e.Anticlockwise)
	right, _ := NewEllipticalArc(e.Center, e.RadiusX, e.RadiusY, e.Rotation, mid, e.actualEndAngle(), e.Anticlockwise)
	return left, right
}

// NondegenerateSegments reduces to an Arc when RadiusX==RadiusY.
func (e *EllipticalArc) NondegenerateSegments() []Segment {
	if e.RadiusX == 0 || e.angleDifference() < 1e-12 {
		return nil
	}
	if math.Abs(e.RadiusX-e.RadiusY) < 1e-12 {
		a, err := NewArc(e.Center, e.RadiusX, e.StartAngle+e.Rotation, e.EndAngle+e.Rotation, e.Anticlockwise)
		if err == nil {
			return []Segment{a}
		}
	}
	return []Segment{e}
}

func (e *EllipticalArc) InteriorExtremaTs() []float64 {
	var ts []float64
	sweep := e.actualEndAngle() - e.StartAngle
	if sweep == 0 {
		return nil
	}
	candidates := append([]float64{0, math.Pi / 2, math.Pi, 3 * math.Pi / 2}, e.extremaAngles()...)
	for _, theta := range candidates {
		if !e.ContainsAngle(theta) {
			continue
		}
		rel := math.Mod(theta-e.StartAngle, 2*math.Pi)
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

func (e *EllipticalArc) Transformed(m Matrix) Segment {
	newUT := Compose(m, e.unitTransform())
	startAngle, endAngle := e.StartAngle, e.EndAngle
	anticlockwise := e.Anticlockwise
	if IsReflecting(m) {
		startAngle, endAngle = -startAngle, -endAngle
		anticlockwise = !anticlockwise
	}
	return ellipticalArcFromUnitTransform(newUT, startAngle, endAngle, anticlockwise)
}

func (e *EllipticalArc) Reversed() Segment {
	out, _ := NewEllipticalArc(e.Center, e.RadiusX, e.RadiusY, e.Rotation, e.actualEndAngle(), e.StartAngle, !e.Anticlockwise)
	return out
}

// SignedAreaFragment uses the closed form for an affine image of a
// circular-sector-plus-chord-triangle fragment: the unit-circle sector's
// signed area scales by det(unitTransform's linear part) = rx*ry, plus
// the corner term relative to the ellipse's own center.
func (e *EllipticalArc) SignedAreaFragment() float64 {
	t0, t1 := e.StartAngle, e.actualEndAngle()
	p0, p1 := e.Start(), e.End()
	sector := e.RadiusX * e.RadiusY / 2 * (t1 - t0)
	corner := (e.Center.X*(p1.Y-p0.Y) - e.Center.Y*(p1.X-p0.X)) / 2
	return sector + corner
}

// SetGeometry mutates the elliptical arc in place and invalidates caches.
func (e *EllipticalArc) SetGeometry(center vec.Vec2, rx, ry, rotation, startAngle, endAngle float64, anticlockwise bool) error {
	n, err := NewEllipticalArc(center, rx, ry, rotation, startAngle, endAngle, anticlockwise)
	if err != nil {
		return err
	}
	*e = EllipticalArc{Center: n.Center, RadiusX: n.RadiusX, RadiusY: n.RadiusY, Rotation: n.Rotation, StartAngle: n.StartAngle, EndAngle: n.EndAngle, Anticlockwise: n.Anticlockwise}
	e.publish()
	return nil
}

// IntersectRay transforms the ray into unit-circle space, reduces to a
// unit-circle arc intersection, and transforms hits back.
func (e *EllipticalArc) IntersectRay(r Ray) []RayIntersection {
	ut := e.unitTransform()
	inv := Invert(ut)
	localOrigin := Apply(inv, r.Origin)
	localDirRaw := ApplyLinear(inv, r.Dir)
	localLen := localDirRaw.Length()
	if localLen == 0 {
		return nil
	}
	localDir := localDirRaw.Mul(1 / localLen)

	unitArc := &Arc{Center: vec.Vec2{}, Radius: 1, StartAngle: e.StartAngle, EndAngle: e.EndAngle, Anticlockwise: e.Anticlockwise}
	localHits := unitArc.IntersectRay(Ray{Origin: localOrigin, Dir: localDir})

	invT := transposeLinear(inv)
	var hits []RayIntersection
	for _, h := range localHits {
		pt := Apply(ut, h.Point)
		n := normalize(ApplyLinear(invT, h.Normal))
		if dot(n, r.Dir) > 0 {
			n = n.Mul(-1)
		}
		dist := distance(pt, r.Origin)
		hits = append(hits, RayIntersection{Distance: dist, Point: pt, Normal: n, Winding: h.Winding})
	}
	return hits
}

// transposeLinear returns the transpose of m's linear 2x2 part, keeping
// translation zero (used to transform normals correctly under
// non-conformal maps).
func transposeLinear(m Matrix) Matrix {
	return Matrix{m[0], m[2], m[1], m[3], 0, 0}
}
