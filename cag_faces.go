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

// faceWalkCap bounds the dissolve-and-continue search so a malformed
// graph (e.g. from degenerate input) logs and gives up instead of
// looping forever.
const faceWalkCap = 10000

// nextFace returns the half-edge following h around the single minimal
// face immediately to h's right: at h's destination vertex, the outgoing
// half-edge cyclically just after h.twin in increasing-angle order.
func nextFace(h *halfEdge) *halfEdge {
	v := h.to
	idx := indexOfHalfEdge(v.out, h.twin)
	return v.out[(idx+1)%len(v.out)]
}

func indexOfHalfEdge(list []*halfEdge, h *halfEdge) int {
	for i, x := range list {
		if x == h {
			return i
		}
	}
	return 0
}

// member classifies a point as belonging to the boolean-combined region
// of two operand shapes under a given predicate.
type member func(pa, pb bool) bool

// faceIsTrue reports whether the minimal face immediately to h's left
// belongs to the result, sampled at a point nudged off h's midpoint
// along its left normal.
func faceIsTrue(h *halfEdge, a, b *Shape, pred member) bool {
	mid := h.seg.Position(0.5)
	tangent := normalize(h.seg.Tangent(0.5))
	eps := 1e-7
	p := mid.Add(perp(tangent).Mul(eps))
	return pred(a.ContainsPoint(p), b.ContainsPoint(p))
}

// keep reports whether h's edge lies on the boundary of the result,
// i.e. the predicate differs between its two sides.
func keep(h *halfEdge, a, b *Shape, pred member) bool {
	return faceIsTrue(h, a, b, pred) != faceIsTrue(h.twin, a, b, pred)
}

// extractBoundary walks every kept half-edge of g into closed loops,
// dissolving edges whose two sides agree (both outside the result, since
// the walk follows the face to the right of each half-edge whose left
// side is in the result), and returns each loop as one Subpath of the
// output Shape.
func extractBoundary(g *planarGraph, a, b *Shape, pred member) *Shape {
	canonical := func(h *halfEdge) *halfEdge {
		if faceIsTrue(h, a, b, pred) {
			return h
		}
		return h.twin
	}

	used := make(map[*halfEdge]bool)
	var subpaths []*Subpath
	for _, e := range g.edges {
		h0 := e.he[0]
		if !keep(h0, a, b, pred) {
			continue
		}
		start := canonical(h0)
		if used[start] {
			continue
		}

		var segs []Segment
		cur := start
		closed := false
		for i := 0; i < faceWalkCap; i++ {
			used[cur] = true
			segs = append(segs, cur.seg)

			nxt := nextFace(cur)
			steps := 0
			for !keep(nxt, a, b, pred) && steps < faceWalkCap {
				nxt = nextFace(nxt.twin)
				steps++
			}
			if steps >= faceWalkCap {
				sink.Logf("cag: boundary walk could not find a continuation, dropping partial loop")
				break
			}
			cur = canonical(nxt)
			if cur == start {
				closed = true
				break
			}
		}
		if !closed {
			sink.Logf("cag: boundary walk did not close within %d steps, dropping partial loop", faceWalkCap)
			continue
		}
		sp, err := NewSubpath(segs, true)
		if err != nil {
			sink.Logf("cag: dropping malformed boundary loop: %v", err)
			continue
		}
		subpaths = append(subpaths, sp)
	}
	return NewShape(subpaths...)
}
