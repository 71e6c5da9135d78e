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

	"seehuhn.de/go/geom/matrix"
	"seehuhn.de/go/geom/vec"
)

// Matrix is a 2x3 affine transform, identical in layout to
// seehuhn.de/go/geom/matrix.Matrix: [a, b, c, d, e, f] maps
// (x, y) -> (a*x + c*y + e, b*x + d*y + f).
type Matrix = matrix.Matrix

// Identity is the identity transform.
var Identity = matrix.Identity

// Apply transforms a point by m (translation included).
func Apply(m Matrix, p vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*p.X + m[2]*p.Y + m[4],
		Y: m[1]*p.X + m[3]*p.Y + m[5],
	}
}

// ApplyLinear transforms a vector by the linear part of m only (no
// translation); used for tangents, normals and radii.
func ApplyLinear(m Matrix, v vec.Vec2) vec.Vec2 {
	return vec.Vec2{
		X: m[0]*v.X + m[2]*v.Y,
		Y: m[1]*v.X + m[3]*v.Y,
	}
}

// Determinant returns the determinant of the linear part of m. Its sign
// indicates whether m reflects the plane (negative) or preserves
// orientation (positive).
func Determinant(m Matrix) float64 {
	return m[0]*m[3] - m[1]*m[2]
}

// IsReflecting reports whether m reverses orientation.
func IsReflecting(m Matrix) bool {
	return Determinant(m) < 0
}

// ScaleVector returns the (possibly anisotropic) scale factors m applies
// along its transformed x and y axes, i.e. the lengths of the images of
// the unit vectors (1,0) and (0,1) under the linear part of m.
func ScaleVector(m Matrix) vec.Vec2 {
	return vec.Vec2{
		X: math.Hypot(m[0], m[1]),
		Y: math.Hypot(m[2], m[3]),
	}
}

// IsUniformScale reports whether m scales both axes by the same factor
// (within eps), which is the condition under which a circular Arc stays
// circular (rather than becoming an EllipticalArc) after transformation.
func IsUniformScale(m Matrix, eps float64) bool {
	sv := ScaleVector(m)
	if sv.X < eps {
		return sv.Y < eps
	}
	return math.Abs(sv.X-sv.Y) <= eps*sv.X
}

// Invert returns the inverse of m. m must be non-singular.
func Invert(m Matrix) Matrix {
	det := Determinant(m)
	ia := m[3] / det
	ib := -m[1] / det
	ic := -m[2] / det
	id := m[0] / det
	ie := -(ia*m[4] + ic*m[5])
	iff := -(ib*m[4] + id*m[5])
	return Matrix{ia, ib, ic, id, ie, iff}
}

// Compose returns the transform that applies inner first, then outer:
// Compose(outer, inner).Apply(p) == outer.Apply(inner.Apply(p)).
func Compose(outer, inner Matrix) Matrix {
	return Matrix{
		outer[0]*inner[0] + outer[2]*inner[1],
		outer[1]*inner[0] + outer[3]*inner[1],
		outer[0]*inner[2] + outer[2]*inner[3],
		outer[1]*inner[2] + outer[3]*inner[3],
		outer[0]*inner[4] + outer[2]*inner[5] + outer[4],
		outer[1]*inner[4] + outer[3]*inner[5] + outer[5],
	}
}

// Translation returns a pure translation transform.
func Translation(dx, dy float64) Matrix {
	return matrix.Identity.Translate(dx, dy)
}

// Rotation returns a pure rotation transform by theta radians,
// counterclockwise.
func Rotation(theta float64) Matrix {
	return matrix.RotateDeg(theta * 180 / math.Pi)
}

// ScaleXY returns a pure (possibly anisotropic) scale transform.
func ScaleXY(sx, sy float64) Matrix {
	return matrix.Scale(sx, sy)
}
