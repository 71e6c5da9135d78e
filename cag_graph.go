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

// vertex is a point in the planar subdivision shared by every half-edge
// that starts there.
type vertex struct {
	pos vec.Vec2
	out []*halfEdge // sorted by departure angle once the graph is built
}

// halfEdge is one oriented side of an edge: seg runs from.pos to to.pos.
// Crossing an edge from one face to its neighbor means following twin.
type halfEdge struct {
	from, to *vertex
	seg      Segment
	twin     *halfEdge
}

// edge owns the two opposing half-edges carved from one elementary,
// already-split curve piece.
type edge struct {
	he [2]*halfEdge
}

// planarGraph is the DCEL-style structure the CAG pipeline builds from
// the segments of one or two input Shapes, after splitting every segment
// at its intersections and overlaps with every other segment.
type planarGraph struct {
	vertices []*vertex
	edges    []*edge
}

func (g *planarGraph) vertexFor(p vec.Vec2) *vertex {
	for _, v := range g.vertices {
		if nearly(v.pos, p, vertexMergeEpsilon) {
			return v
		}
	}
	v := &vertex{pos: p}
	g.vertices = append(g.vertices, v)
	return v
}

// addPiece inserts one elementary curve piece as an edge, unless a
// geometrically coincident edge (same endpoints, same midpoint) is
// already present — which happens when two operands' boundaries run
// along the same curve, detected upstream by the overlap detector and
// split to the same parameter breakpoints.
func (g *planarGraph) addPiece(seg Segment) {
	a := g.vertexFor(seg.Start())
	b := g.vertexFor(seg.End())
	if a == b {
		return // collapsed to a single point after vertex merging
	}
	mid := seg.Position(0.5)
	for _, e := range g.edges {
		h := e.he[0]
		sameEndpoints := (h.from == a && h.to == b) || (h.from == b && h.to == a)
		if sameEndpoints && distance(h.seg.Position(0.5), mid) < vertexMergeEpsilon*10 {
			return
		}
	}
	he0 := &halfEdge{from: a, to: b, seg: seg}
	he1 := &halfEdge{from: b, to: a, seg: seg.Reversed()}
	he0.twin, he1.twin = he1, he0
	a.out = append(a.out, he0)
	b.out = append(b.out, he1)
	g.edges = append(g.edges, &edge{he: [2]*halfEdge{he0, he1}})
}

// sortCyclic orders every vertex's outgoing half-edges by departure
// angle, the precondition for the next-half-edge-after-twin face walk in
// cag_faces.go. Half-edges that leave along the same tangent direction
// (within angleEqualityEpsilon, e.g. a line and an arc tangent to it, or
// two arcs curving apart from a shared point) are broken by the sign of
// their curvature at the departure point. A curve bending anticlockwise
// (positive curvature) swings toward increasing angle immediately past
// the shared tangent, so it belongs just after a straight continuation
// in angle order; one bending clockwise belongs just before it. Any
// edges still tied after that are coincident segments occupying the
// same position in the cycle, which the face walk treats as a
// degenerate (zero-area) loop.
func (g *planarGraph) sortCyclic() {
	for _, v := range g.vertices {
		sort.SliceStable(v.out, func(i, j int) bool {
			ai := angleOf(v.out[i].seg.Tangent(0))
			aj := angleOf(v.out[j].seg.Tangent(0))
			if math.Abs(ai-aj) > angleEqualityEpsilon {
				return ai < aj
			}
			ci := v.out[i].seg.Curvature(0)
			cj := v.out[j].seg.Curvature(0)
			return ci < cj
		})
	}
}

// splitAt divides seg at each parameter in ts (deduplicated, with values
// outside the open interval dropped), returning the ordered chain of
// pieces.
func splitAt(seg Segment, ts []float64) []Segment {
	cleaned := dedupeSortedTs(append([]float64(nil), ts...))
	if len(cleaned) == 0 {
		return []Segment{seg}
	}
	out := make([]Segment, 0, len(cleaned)+1)
	cur := seg
	prev := 0.0
	for _, t := range cleaned {
		local := (t - prev) / (1 - prev)
		left, right := cur.Subdivided(local)
		out = append(out, left)
		cur = right
		prev = t
	}
	out = append(out, cur)
	return out
}

// buildGraph gathers every segment from shapes, finds every pairwise
// split point (transversal intersections plus overlap boundaries, both
// within and across shapes) and assembles the resulting elementary
// pieces into a planar graph.
func buildGraph(shapes ...*Shape) *planarGraph {
	var segs []Segment
	for _, sh := range shapes {
		for _, sp := range sh.Subpaths {
			segs = append(segs, sp.Segments...)
		}
	}
	splits := make([][]float64, len(segs))
	for i := 0; i < len(segs); i++ {
		for j := i + 1; j < len(segs); j++ {
			for _, hit := range IntersectSegments(segs[i], segs[j]) {
				splits[i] = append(splits[i], hit.TA)
				splits[j] = append(splits[j], hit.TB)
			}
			for _, ov := range DetectOverlap(segs[i], segs[j]) {
				splits[i] = append(splits[i], ov.TA0, ov.TA1)
				splits[j] = append(splits[j], ov.TB0, ov.TB1)
			}
		}
	}

	g := &planarGraph{}
	for i, s := range segs {
		for _, piece := range splitAt(s, splits[i]) {
			g.addPiece(piece)
		}
	}
	g.sortCyclic()
	return g
}
