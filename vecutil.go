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

// dot returns the dot product of a and b.
func dot(a, b vec.Vec2) float64 { return a.X*b.X + a.Y*b.Y }

// cross returns the z-component of the 3D cross product of a and b,
// treated as vectors in the plane.
func cross(a, b vec.Vec2) float64 { return a.X*b.Y - a.Y*b.X }

// perp rotates v by 90 degrees counterclockwise.
func perp(v vec.Vec2) vec.Vec2 { return vec.Vec2{X: -v.Y, Y: v.X} }

// normalize returns v scaled to unit length. The zero vector is returned
// unchanged.
func normalize(v vec.Vec2) vec.Vec2 {
	l := v.Length()
	if l == 0 {
		return v
	}
	return v.Mul(1 / l)
}

// angleOf returns atan2(v.Y, v.X).
func angleOf(v vec.Vec2) float64 { return math.Atan2(v.Y, v.X) }

// polar returns the unit-circle point at angle theta, scaled by r.
func polar(r, theta float64) vec.Vec2 {
	return vec.Vec2{X: r * math.Cos(theta), Y: r * math.Sin(theta)}
}

// blend linearly interpolates between a and b: t=0 -> a, t=1 -> b.
func blend(a, b vec.Vec2, t float64) vec.Vec2 {
	return vec.Vec2{X: a.X + (b.X-a.X)*t, Y: a.Y + (b.Y-a.Y)*t}
}

// isFinite reports whether both coordinates of v are finite.
func isFinite(v vec.Vec2) bool {
	return !math.IsNaN(v.X) && !math.IsInf(v.X, 0) && !math.IsNaN(v.Y) && !math.IsInf(v.Y, 0)
}

// nearly reports whether a and b differ by no more than eps in each
// coordinate (used for the 1e-9 endpoint-continuity and similar checks).
func nearly(a, b vec.Vec2, eps float64) bool {
	return math.Abs(a.X-b.X) <= eps && math.Abs(a.Y-b.Y) <= eps
}

// distance returns the Euclidean distance between a and b.
func distance(a, b vec.Vec2) float64 {
	return a.Sub(b).Length()
}
