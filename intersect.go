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

// Intersection is one intersection point between two segments, reported
// in both segments' parameter spaces.
type Intersection struct {
	TA, TB float64
	Point  vec.Vec2
}

// monotonePieces splits s at its interior extrema, returning each piece
// together with the [lo,hi] parameter subrange (in the original s's
// parameter space) it covers.
func monotonePieces(s Segment) []candidatePiece {
	ts := s.InteriorExtremaTs()
	bounds := append([]float64{0}, ts...)
	bounds = append(bounds, 1)
	var out []candidatePiece
	cur := s
	prev := 0.0
	for _, t := range bounds[1:] {
		if t <= prev {
			continue
		}
		local := (t - prev) / (1 - prev)
		left, right := cur.Subdivided(local)
		out = append(out, candidatePiece{seg: left, lo: prev, hi: t})
		cur = right
		prev = t
	}
	return out
}

type candidatePiece struct {
	seg    Segment
	lo, hi float64
}

// IntersectSegments finds all transversal intersection points between a
// and b using bounds-subdivision: both curves are first split into
// monotone pieces at their interior extrema, then every piece pair is
// recursively bisected while their bounding boxes overlap, down to a
// fixed round cap, and surviving leaf pairs are clustered into single
// intersections. Overlapping (non-transversal, infinitely-many-point)
// intersections are the overlap detector's job (see overlap.go) and are
// not reported here.
func IntersectSegments(a, b Segment) []Intersection {
	piecesA := monotonePieces(a)
	piecesB := monotonePieces(b)

	var hits []Intersection
	for _, pa := range piecesA {
		for _, pb := range piecesB {
			if !pa.seg.Bounds().Intersects(pb.seg.Bounds()) {
				continue
			}
			hits = append(hits, bisect(pa, pb)...)
		}
	}
	return clusterIntersections(hits)
}

func bisect(pa, pb candidatePiece) []Intersection {
	type node struct {
		segA, segB Segment
		loA, hiA   float64
		loB, hiB   float64
	}
	queue := []node{{pa.seg, pb.seg, pa.lo, pa.hi, pb.lo, pb.hi}}
	var leaves []node
	round := 0
	for ; len(queue) > 0 && round < subdivisionBisectCap; round++ {
		var next []node
		for _, n := range queue {
			ba, bb := n.segA.Bounds(), n.segB.Bounds()
			if !ba.Intersects(bb) {
				continue
			}
			widthA := n.hiA - n.loA
			widthB := n.hiB - n.loB
			smallA := ba.Width() < intersectionClusterEps*1e4 && ba.Height() < intersectionClusterEps*1e4
			smallB := bb.Width() < intersectionClusterEps*1e4 && bb.Height() < intersectionClusterEps*1e4
			if smallA && smallB {
				leaves = append(leaves, n)
				continue
			}
			if widthA >= widthB {
				la, ra := n.segA.Subdivided(0.5)
				mid := (n.loA + n.hiA) / 2
				next = append(next,
					node{la, n.segB, n.loA, mid, n.loB, n.hiB},
					node{ra, n.segB, mid, n.hiA, n.loB, n.hiB},
				)
			} else {
				lb, rb := n.segB.Subdivided(0.5)
				mid := (n.loB + n.hiB) / 2
				next = append(next,
					node{n.segA, lb, n.loA, n.hiA, n.loB, mid},
					node{n.segA, rb, n.loA, n.hiA, mid, n.hiB},
				)
			}
		}
		queue = next
	}
	if round == subdivisionBisectCap && len(queue) > 0 {
		sink.Logf("intersect: bisection cap reached with %d unresolved candidate(s)", len(queue))
	}
	var out []Intersection
	for _, n := range leaves {
		ta := (n.loA + n.hiA) / 2
		tb := (n.loB + n.hiB) / 2
		ca := boundsCenter(n.segA.Bounds())
		cb := boundsCenter(n.segB.Bounds())
		out = append(out, Intersection{TA: ta, TB: tb, Point: blend(ca, cb, 0.5)})
	}
	return out
}

func boundsCenter(b Bounds) vec.Vec2 {
	return vec.Vec2{X: (b.MinX() + b.MaxX()) / 2, Y: (b.MinY() + b.MaxY()) / 2}
}

// clusterIntersections merges leaves whose squared parameter distance
// (dTA^2 + dTB^2) is below intersectionClusterEps.
func clusterIntersections(hits []Intersection) []Intersection {
	var out []Intersection
	for _, h := range hits {
		merged := false
		for i := range out {
			if (h.TA-out[i].TA)*(h.TA-out[i].TA)+(h.TB-out[i].TB)*(h.TB-out[i].TB) < intersectionClusterEps {
				merged = true
				break
			}
		}
		if !merged {
			out = append(out, h)
		}
	}
	return out
}
