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
	"sort"

	"seehuhn.de/go/geom/vec"
)

// SegmentKind tags which of the five Segment variants a value holds.
type SegmentKind int

const (
	KindLine SegmentKind = iota
	KindArc
	KindEllipticalArc
	KindQuadratic
	KindCubic
)

func (k SegmentKind) String() string {
	switch k {
	case KindLine:
		return "Line"
	case KindArc:
		return "Arc"
	case KindEllipticalArc:
		return "EllipticalArc"
	case KindQuadratic:
		return "Quadratic"
	case KindCubic:
		return "Cubic"
	default:
		return "Unknown"
	}
}

// Segment is the sum type over the five supported curve primitives. Every
// implementation satisfies: Position(0)==Start, Position(1)==End, Bounds
// is the exact bounding box (not of the control polygon), and
// Subdivided(t) for t in (0,1) yields two segments whose
// concatenation equals the original.
//
// Dispatch is by type switch on the concrete *Line / *Arc /
// *EllipticalArc / *Quadratic / *Cubic pointer types at the handful of
// call sites (intersection, overlap, stroking, CAG) that need
// variant-specific fast paths; everywhere else the interface methods
// below are used directly.
type Segment interface {
	Kind() SegmentKind
	Start() vec.Vec2
	End() vec.Vec2

	// Position evaluates the curve at parameter t in [0,1].
	Position(t float64) vec.Vec2
	// Tangent returns the parametric derivative at t (not normalized).
	Tangent(t float64) vec.Vec2
	// StartTangent and EndTangent return unit tangent vectors.
	StartTangent() vec.Vec2
	EndTangent() vec.Vec2
	// Curvature returns the signed curvature at t (positive for visual
	// clockwise turning).
	Curvature(t float64) float64

	// Bounds returns the exact, lazily cached bounding box.
	Bounds() Bounds

	// Subdivided splits the segment at t. For t <= 0 or t >= 1 it returns
	// the segment unchanged, paired with a zero-length segment at its end
	// point.
	Subdivided(t float64) (Segment, Segment)

	// NondegenerateSegments returns an ordered sequence of segments
	// equivalent to this one with zero-length or cusp-collapsed
	// degeneracies removed.
	NondegenerateSegments() []Segment

	// InteriorExtremaTs returns sorted, deduplicated t-values in (0,1)
	// where dx/dt=0 or dy/dt=0.
	InteriorExtremaTs() []float64

	// Transformed returns the segment obtained by applying m. A
	// non-uniformly scaled Arc becomes an EllipticalArc; a reflecting
	// transform flips Arc/EllipticalArc orientation.
	Transformed(m Matrix) Segment

	// Reversed returns the segment traversed in the opposite direction.
	Reversed() Segment

	// SignedAreaFragment returns integral(-y/2 dx + x/2 dy) over [0,1].
	SignedAreaFragment() float64

	// onInvalidate registers a callback fired whenever this segment's
	// defining parameters change through one of its setters. Subpath uses
	// this to bust its own bounds/stroke caches.
	onInvalidate(fn func())
}

// observer is embedded in every concrete segment type to provide the
// single-publisher/multi-subscriber "invalidated" notification channel.
// A plain slice is enough: in practice a segment has at most one owning
// Subpath.
type observer struct {
	subs []func()
}

func (o *observer) onInvalidate(fn func()) {
	o.subs = append(o.subs, fn)
}

func (o *observer) publish() {
	for _, fn := range o.subs {
		fn()
	}
}

// dedupeSortedTs sorts ts and removes near-duplicates (values within 1e-9
// of the previously kept one), keeping values strictly inside (0,1).
func dedupeSortedTs(ts []float64) []float64 {
	filtered := ts[:0]
	for _, t := range ts {
		if t > 1e-12 && t < 1-1e-12 {
			filtered = append(filtered, t)
		}
	}
	sort.Float64s(filtered)
	out := filtered[:0]
	for i, t := range filtered {
		if i == 0 || t-out[len(out)-1] > 1e-9 {
			out = append(out, t)
		}
	}
	return append([]float64(nil), out...)
}

// DiscretizeOptions configures toPiecewiseLinear / nonlinearTransformed
// style discretization of a segment into line segments, a plain struct
// in place of a dynamic options object.
type DiscretizeOptions struct {
	MinLevels       uint              // forced subdivision depth
	MaxLevels       uint              // subdivision cap; 0 means default (12)
	DistanceEpsilon float64           // stop subdividing when |chord-midpoint| < eps; 0 means unset
	CurveEpsilon    float64           // stop subdividing when tangent angle delta < eps; 0 means unset
	PointMap        func(vec.Vec2) vec.Vec2
}

func (o DiscretizeOptions) maxLevels() uint {
	if o.MaxLevels == 0 {
		return 12
	}
	return o.MaxLevels
}

// ToPiecewiseLinear discretizes s into a polyline honoring opts, falling
// back to brute-force midpoint subdivision bounded by opts.MaxLevels.
func ToPiecewiseLinear(s Segment, opts DiscretizeOptions) []vec.Vec2 {
	pts := []vec.Vec2{s.Position(0)}
	var walk func(t0, t1 float64, p0, p1 vec.Vec2, level uint)
	walk = func(t0, t1 float64, p0, p1 vec.Vec2, level uint) {
		tm := (t0 + t1) / 2
		pm := s.Position(tm)
		forced := level < opts.MinLevels
		if !forced && level >= opts.maxLevels() {
			pts = append(pts, p1)
			return
		}
		flat := true
		if forced {
			flat = false
		}
		if flat && opts.DistanceEpsilon > 0 {
			chordMid := blend(p0, p1, 0.5)
			if distance(chordMid, pm) >= opts.DistanceEpsilon {
				flat = false
			}
		}
		if flat && opts.CurveEpsilon > 0 {
			t0Tan := normalize(s.Tangent(t0))
			t1Tan := normalize(s.Tangent(t1))
			if angleBetween(t0Tan, t1Tan) >= opts.CurveEpsilon {
				flat = false
			}
		}
		if flat && opts.DistanceEpsilon == 0 && opts.CurveEpsilon == 0 && !forced {
			pts = append(pts, p1)
			return
		}
		if flat {
			pts = append(pts, p1)
			return
		}
		walk(t0, tm, p0, pm, level+1)
		walk(tm, t1, pm, p1, level+1)
	}
	walk(0, 1, pts[0], s.Position(1), 0)
	if opts.PointMap != nil {
		for i, p := range pts {
			pts[i] = opts.PointMap(p)
		}
	}
	return pts
}

func angleBetween(a, b vec.Vec2) float64 {
	d := dot(a, b)
	if d > 1 {
		d = 1
	} else if d < -1 {
		d = -1
	}
	return math.Acos(d)
}
