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

// Subpath is a continuous chain of segments: Segments[i].End() must equal
// Segments[i+1].Start() within endpointContinuityEps. Closed subpaths
// additionally require Segments[len-1].End() == Segments[0].Start().
type Subpath struct {
	Segments []Segment
	Closed   bool

	boundsCache *Bounds
	strokeCache map[lineStylesKey]*Shape
}

// NewSubpath wraps segs into a Subpath, wiring each segment's invalidation
// callback so mutating a segment in place busts the subpath's caches.
func NewSubpath(segs []Segment, closed bool) (*Subpath, error) {
	sp := &Subpath{Segments: segs, Closed: closed}
	if err := sp.checkContinuity(); err != nil {
		return nil, err
	}
	for _, s := range segs {
		s.onInvalidate(sp.invalidate)
	}
	return sp, nil
}

func (sp *Subpath) checkContinuity() error {
	for i := 1; i < len(sp.Segments); i++ {
		if distance(sp.Segments[i-1].End(), sp.Segments[i].Start()) > endpointContinuityEps {
			return newError(InvalidGeometry, "NewSubpath", "segment %d does not continue from segment %d", i, i-1)
		}
	}
	if sp.Closed && len(sp.Segments) > 0 {
		if distance(sp.Segments[len(sp.Segments)-1].End(), sp.Segments[0].Start()) > endpointContinuityEps {
			return newError(InvalidGeometry, "NewSubpath", "closed subpath does not return to its start")
		}
	}
	return nil
}

func (sp *Subpath) invalidate() {
	sp.boundsCache = nil
	sp.strokeCache = nil
}

// Start returns the first segment's start point, or the zero vector for
// an empty subpath.
func (sp *Subpath) Start() vec.Vec2 {
	if len(sp.Segments) == 0 {
		return vec.Vec2{}
	}
	return sp.Segments[0].Start()
}

// End returns the last segment's end point (equal to Start() for closed
// subpaths), or the zero vector for an empty subpath.
func (sp *Subpath) End() vec.Vec2 {
	if len(sp.Segments) == 0 {
		return vec.Vec2{}
	}
	return sp.Segments[len(sp.Segments)-1].End()
}

// Bounds returns the union of every segment's bounds.
func (sp *Subpath) Bounds() Bounds {
	if sp.boundsCache != nil {
		return *sp.boundsCache
	}
	b := NothingBounds
	for _, s := range sp.Segments {
		b = b.Union(s.Bounds())
	}
	sp.boundsCache = &b
	return b
}

// SignedArea sums every segment's SignedAreaFragment, giving the enclosed
// area (positive for counterclockwise, by the standard screen-space
// convention with y increasing downward inverting the usual sign).
func (sp *Subpath) SignedArea() float64 {
	var area float64
	for _, s := range sp.Segments {
		area += s.SignedAreaFragment()
	}
	return area
}

// Transformed returns a new Subpath with every segment transformed by m.
func (sp *Subpath) Transformed(m Matrix) *Subpath {
	segs := make([]Segment, len(sp.Segments))
	for i, s := range sp.Segments {
		segs[i] = s.Transformed(m)
	}
	out, _ := NewSubpath(segs, sp.Closed)
	return out
}

// Reversed returns a new Subpath tracing the same point set in the
// opposite direction.
func (sp *Subpath) Reversed() *Subpath {
	segs := make([]Segment, len(sp.Segments))
	for i, s := range sp.Segments {
		segs[len(sp.Segments)-1-i] = s.Reversed()
	}
	out, _ := NewSubpath(segs, sp.Closed)
	return out
}

// ToPiecewiseLinear flattens every segment of sp into a single polyline,
// sharing endpoints between consecutive segments.
func (sp *Subpath) ToPiecewiseLinear(opts DiscretizeOptions) []vec.Vec2 {
	if len(sp.Segments) == 0 {
		return nil
	}
	pts := []vec.Vec2{sp.Segments[0].Start()}
	for _, s := range sp.Segments {
		segPts := ToPiecewiseLinear(s, opts)
		pts = append(pts, segPts[1:]...)
	}
	return pts
}

// IntersectRay casts r against every segment in sp and returns all hits,
// unsorted.
func (sp *Subpath) IntersectRay(r Ray) []RayIntersection {
	var hits []RayIntersection
	for _, s := range sp.Segments {
		hits = append(hits, intersectRaySegment(s, r)...)
	}
	return hits
}

// rayIntersector is implemented by Line, Arc and EllipticalArc but is not part
// of the public Segment interface, since ray-casting is an internal
// winding-number query mechanism rather than a curve primitive.
type rayIntersector interface {
	IntersectRay(r Ray) []RayIntersection
}

func intersectRaySegment(s Segment, r Ray) []RayIntersection {
	if ri, ok := s.(rayIntersector); ok {
		return ri.IntersectRay(r)
	}
	// Quadratic and Cubic have no closed-form ray intersection here; fall back to splitting
	// it into monotone pieces approximated by their chords, which is
	// exact enough for winding-number queries since only the crossing
	// count/side matters, not the precise hit point.
	var hits []RayIntersection
	for _, piece := range monotonePieces(s) {
		l, err := NewLine(piece.seg.Start(), piece.seg.End())
		if err != nil {
			continue
		}
		hits = append(hits, l.IntersectRay(r)...)
	}
	return hits
}
