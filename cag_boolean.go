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

// Package-level constructive area geometry (CAG): boolean combination of
// two Shapes under the nonzero winding rule. The planar subdivision built
// from both shapes' segments (split at every mutual intersection and
// overlap) is walked edge by edge; an edge survives into the result
// exactly where the operation's predicate, applied to shapeA.ContainsPoint
// and shapeB.ContainsPoint, differs between its two sides, which is
// precisely the boundary of the requested boolean combination.
package vpath

// ShapeUnion returns the boundary of the set of points contained in a or
// b (or both).
func ShapeUnion(a, b *Shape) *Shape {
	return combine(a, b, func(pa, pb bool) bool { return pa || pb })
}

// ShapeIntersection returns the boundary of the set of points contained
// in both a and b.
func ShapeIntersection(a, b *Shape) *Shape {
	return combine(a, b, func(pa, pb bool) bool { return pa && pb })
}

// ShapeDifference returns the boundary of the points contained in a but
// not in b.
func ShapeDifference(a, b *Shape) *Shape {
	return combine(a, b, func(pa, pb bool) bool { return pa && !pb })
}

// ShapeXor returns the boundary of the points contained in exactly one
// of a, b.
func ShapeXor(a, b *Shape) *Shape {
	return combine(a, b, func(pa, pb bool) bool { return pa != pb })
}

func combine(a, b *Shape, pred member) *Shape {
	g := buildGraph(a, b)
	return extractBoundary(g, a, b, pred)
}
