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
	"seehuhn.de/go/pdf/graphics"
)

// Stroke returns the outline of sp at the given line styles as a filled
// Shape. Dashing splits sp into independent "on" pieces first; each open
// piece becomes one closed ring tracing the offset forward along the path
// and back along the other side, with joins at interior corners and caps
// at open ends. A solid undashed closed subpath becomes two rings, one
// offset to each side of the loop.
// A concave corner's two offset segments are connected with a plain
// straight segment rather than an explicit intersection point; the
// resulting self-overlap is resolved correctly by the nonzero winding
// rule used everywhere else in this package, the same "let nonzero-fill
// cancel it" approach the CAG engine applies to bridge edges.
func (sp *Subpath) Stroke(ls LineStyles) (*Shape, error) {
	if err := ls.validate(); err != nil {
		return nil, err
	}
	if key := ls.key(); sp.strokeCache != nil {
		if cached, ok := sp.strokeCache[key]; ok {
			return cached, nil
		}
	}

	pieces := []*Subpath{sp}
	if len(ls.Dash) > 0 {
		pieces = dashSplit(sp, ls.Dash, ls.DashPhase)
	}

	halfWidth := ls.Width / 2
	shape := &Shape{}
	for _, piece := range pieces {
		rings, err := strokeContour(piece, halfWidth, ls)
		if err != nil {
			sink.Logf("stroke: dropping degenerate contour: %v", err)
			continue
		}
		shape.Subpaths = append(shape.Subpaths, rings...)
	}

	if sp.strokeCache == nil {
		sp.strokeCache = make(map[lineStylesKey]*Shape)
	}
	sp.strokeCache[ls.key()] = shape
	return shape, nil
}

// strokeContour builds the offset ring(s) for one contour. An open
// contour produces a single ring combining the forward offset, an end
// cap, the backward offset, and a start cap. A closed contour produces
// two independent rings (outer and inner), since the forward and
// backward passes each already close on themselves at the wraparound
// vertex.
func strokeContour(piece *Subpath, d float64, ls LineStyles) ([]*Subpath, error) {
	segs := piece.Segments
	if len(segs) == 0 {
		return nil, nil
	}
	if d <= 0 {
		return nil, newError(InvalidGeometry, "Stroke", "non-positive half width")
	}

	var forward []Segment
	appendOffsetPass(&forward, segs, d, ls, piece.Closed)

	revSegs := make([]Segment, len(segs))
	for i, s := range segs {
		revSegs[len(segs)-1-i] = s.Reversed()
	}
	var backward []Segment
	appendOffsetPass(&backward, revSegs, d, ls, piece.Closed)

	if piece.Closed {
		var rings []*Subpath
		if r, err := closeRing(forward); err == nil && r != nil {
			rings = append(rings, r)
		}
		if r, err := closeRing(backward); err == nil && r != nil {
			rings = append(rings, r)
		}
		return rings, nil
	}

	last := segs[len(segs)-1]
	forward = append(forward, buildCap(last.End(), last.EndTangent(), d, ls.Cap)...)
	lastRev := revSegs[len(revSegs)-1]
	backward = append(backward, buildCap(lastRev.End(), lastRev.EndTangent(), d, ls.Cap)...)

	combined := append(forward, backward...)
	r, err := closeRing(combined)
	if err != nil {
		return nil, err
	}
	if r == nil {
		return nil, nil
	}
	return []*Subpath{r}, nil
}

func closeRing(segs []Segment) (*Subpath, error) {
	var nondeg []Segment
	for _, s := range segs {
		nondeg = append(nondeg, s.NondegenerateSegments()...)
	}
	if len(nondeg) == 0 {
		return nil, nil
	}
	return NewSubpath(nondeg, true)
}

// appendOffsetPass walks segs in order, offsetting each by +d and
// inserting a join after every interior vertex (and, for a closed input,
// after the wraparound vertex too).
func appendOffsetPass(out *[]Segment, segs []Segment, d float64, ls LineStyles, closed bool) {
	for i, s := range segs {
		offs := offsetSegment(s, d)
		if len(*out) > 0 && len(offs) > 0 {
			gap := (*out)[len(*out)-1].End()
			if distance(gap, offs[0].Start()) > endpointContinuityEps {
				if l, err := NewLine(gap, offs[0].Start()); err == nil {
					*out = append(*out, l)
				}
			}
		}
		*out = append(*out, offs...)
		if len(offs) == 0 {
			continue
		}
		var nextIdx int
		hasNext := false
		if i+1 < len(segs) {
			nextIdx, hasNext = i+1, true
		} else if closed {
			nextIdx, hasNext = 0, true
		}
		if !hasNext {
			continue
		}
		nextOffs := offsetSegment(segs[nextIdx], d)
		if len(nextOffs) == 0 {
			continue
		}
		corner := s.End()
		from := offs[len(offs)-1].End()
		to := nextOffs[0].Start()
		*out = append(*out, buildJoin(corner, from, to, s.EndTangent(), segs[nextIdx].StartTangent(), d, ls)...)
	}
}

// offsetSegment approximates the offset curve of s at signed distance d
// along its local outward normal perp(tangent). Lines offset to lines and
// circular arcs offset to concentric arcs exactly; all other curve kinds
// are approximated by subdividing to a fixed depth and connecting the
// offset of each sample point with straight chords (a first-order
// offset), per the design notes.
func offsetSegment(s Segment, d float64) []Segment {
	switch v := s.(type) {
	case *Line:
		n := perp(normalize(v.Tangent(0)))
		a := v.A.Add(n.Mul(d))
		b := v.B.Add(n.Mul(d))
		if a == b {
			return nil
		}
		l, err := NewLine(a, b)
		if err != nil {
			return nil
		}
		return []Segment{l}
	case *Arc:
		n := perp(normalize(v.Tangent(0)))
		radial := normalize(v.Start().Sub(v.Center))
		sign := 1.0
		if dot(n, radial) < 0 {
			sign = -1
		}
		newR := v.Radius + sign*d
		if newR <= 1e-9 {
			return nil
		}
		out, err := NewArc(v.Center, newR, v.StartAngle, v.EndAngle, v.Anticlockwise)
		if err != nil {
			return nil
		}
		return []Segment{out}
	default:
		return subdivisionOffset(s, d, quadraticOffsetDepth)
	}
}

func offsetPoint(s Segment, t, d float64) vec.Vec2 {
	n := perp(normalize(s.Tangent(t)))
	return s.Position(t).Add(n.Mul(d))
}

func subdivisionOffset(s Segment, d float64, depth int) []Segment {
	n := 1 << uint(depth)
	pts := make([]vec.Vec2, n+1)
	for i := 0; i <= n; i++ {
		pts[i] = offsetPoint(s, float64(i)/float64(n), d)
	}
	var out []Segment
	for i := 0; i < n; i++ {
		if pts[i] == pts[i+1] {
			continue
		}
		l, err := NewLine(pts[i], pts[i+1])
		if err != nil {
			continue
		}
		out = append(out, l)
	}
	return out
}

// buildJoin connects two offset endpoints meeting at corner. A convex
// corner (sinTheta>0, matching the outward side of a left-to-right
// parametrization) gets the configured join style; a concave corner gets
// a plain straight connector.
func buildJoin(corner, from, to, t1, t2 vec.Vec2, d float64, ls LineStyles) []Segment {
	if distance(from, to) < 1e-12 {
		return nil
	}
	sinTheta := cross(t1, t2)
	cosTheta := dot(t1, t2)
	if math.Abs(sinTheta) < 1e-9 || sinTheta <= 0 {
		l, err := NewLine(from, to)
		if err != nil {
			return nil
		}
		return []Segment{l}
	}

	switch ls.Join {
	case graphics.LineJoinRound:
		a1 := angleOf(from.Sub(corner))
		a2 := angleOf(to.Sub(corner))
		delta := math.Mod(a2-a1+math.Pi, 2*math.Pi) - math.Pi
		arc, err := NewArc(corner, d, a1, a1+delta, delta < 0)
		if err != nil {
			l, _ := NewLine(from, to)
			return []Segment{l}
		}
		return []Segment{arc}

	case graphics.LineJoinMiter:
		sinHalf := math.Sqrt(math.Max(0, (1+cosTheta)/2))
		if sinHalf > 1e-9 && 1/sinHalf <= ls.MiterLimit {
			bisector := normalize(perp(t1).Add(perp(t2)))
			miterDist := d / sinHalf
			miterPt := corner.Add(bisector.Mul(miterDist))
			l1, err1 := NewLine(from, miterPt)
			l2, err2 := NewLine(miterPt, to)
			if err1 == nil && err2 == nil {
				return []Segment{l1, l2}
			}
		}
		fallthrough

	default: // graphics.LineJoinBevel
		l, err := NewLine(from, to)
		if err != nil {
			return nil
		}
		return []Segment{l}
	}
}

// buildCap connects the two offset ends of an open subpath's tip at P,
// whose outward direction is T (the unit tangent pointing away from the
// path), per the configured cap style.
func buildCap(P, T vec.Vec2, d float64, cap graphics.LineCapStyle) []Segment {
	n := perp(T)
	from := P.Add(n.Mul(d))
	to := P.Sub(n.Mul(d))

	switch cap {
	case graphics.LineCapSquare:
		ext := T.Mul(d)
		p1, p2 := from.Add(ext), to.Add(ext)
		l1, e1 := NewLine(from, p1)
		l2, e2 := NewLine(p1, p2)
		l3, e3 := NewLine(p2, to)
		if e1 != nil || e2 != nil || e3 != nil {
			break
		}
		return []Segment{l1, l2, l3}

	case graphics.LineCapRound:
		a1 := angleOf(from.Sub(P))
		arc, err := NewArc(P, d, a1, a1-math.Pi, true)
		if err == nil {
			return []Segment{arc}
		}
	}

	// graphics.LineCapButt, and any fallback above.
	l, err := NewLine(from, to)
	if err != nil {
		return nil
	}
	return []Segment{l}
}

// dashSplit walks sp's full length (approximated by flattening, since
// only Line and Arc admit a closed-form arc length) and returns the "on"
// pieces of the dash pattern as independent open Subpaths. A closed input
// is cut open at its start point rather than merging a dash that would
// wrap across the seam, a simplification noted alongside this function.
func dashSplit(sp *Subpath, pattern []float64, phase float64) []*Subpath {
	total := 0.0
	for _, p := range pattern {
		total += p
	}
	if total <= 0 {
		return []*Subpath{sp}
	}

	pos := math.Mod(-phase, total)
	if pos < 0 {
		pos += total
	}
	idx := 0
	acc := 0.0
	for acc+pattern[idx] <= pos {
		acc += pattern[idx]
		idx = (idx + 1) % len(pattern)
	}
	remaining := pattern[idx] - (pos - acc)
	on := idx%2 == 0

	var pieces []*Subpath
	var curSegs []Segment
	flushPiece := func() {
		if len(curSegs) == 0 {
			return
		}
		var nondeg []Segment
		for _, s := range curSegs {
			nondeg = append(nondeg, s.NondegenerateSegments()...)
		}
		if len(nondeg) > 0 {
			if piece, err := NewSubpath(nondeg, false); err == nil {
				pieces = append(pieces, piece)
			}
		}
		curSegs = nil
	}

	for _, seg := range sp.Segments {
		segLen := approxArcLength(seg)
		consumed := 0.0
		cur := seg
		for consumed < segLen-1e-12 {
			step := math.Min(remaining, segLen-consumed)
			tLo := consumed / segLen
			tHi := (consumed + step) / segLen
			localT := (tHi - tLo) / (1 - tLo)
			var piece Segment
			piece, cur = cur.Subdivided(clamp01(localT))
			if on {
				curSegs = append(curSegs, piece)
			} else {
				flushPiece()
			}
			consumed += step
			remaining -= step
			if remaining <= 1e-12 {
				idx = (idx + 1) % len(pattern)
				remaining = pattern[idx]
				on = !on
			}
		}
	}
	flushPiece()
	return pieces
}

func clamp01(t float64) float64 {
	if t < 0 {
		return 0
	}
	if t > 1 {
		return 1
	}
	return t
}

// approxArcLength estimates a segment's length via closed forms for Line
// and Arc, and via polyline flattening otherwise.
func approxArcLength(s Segment) float64 {
	switch v := s.(type) {
	case *Line:
		return distance(v.A, v.B)
	case *Arc:
		return v.Radius * v.angleDifference()
	default:
		pts := ToPiecewiseLinear(s, DiscretizeOptions{MinLevels: 4, MaxLevels: 10, DistanceEpsilon: 1e-5})
		var total float64
		for i := 1; i < len(pts); i++ {
			total += distance(pts[i-1], pts[i])
		}
		return total
	}
}
