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

import "fmt"

// Kind classifies a vpath error.
type Kind int

const (
	// InvalidGeometry reports a non-finite coordinate, a negative line
	// width, a negative miter limit, a negative dash entry, or a zero
	// vector where a non-zero one was required.
	InvalidGeometry Kind = iota + 1
	// OutOfRange reports a parametric query outside [0,1] or an angle
	// outside what Arc.ContainsAngle accepts.
	OutOfRange
	// TopologyFailure reports that the CAG planar subdivision reached an
	// inconsistent state (an unclosed face loop, a vertex with only one
	// half-edge, an under-determined predicate).
	TopologyFailure
	// UnsupportedConfiguration is reserved for the EllipticalArc
	// radiusX<radiusY-after-canonicalization branch, which the design
	// explicitly leaves unimplemented.
	UnsupportedConfiguration
)

func (k Kind) String() string {
	switch k {
	case InvalidGeometry:
		return "InvalidGeometry"
	case OutOfRange:
		return "OutOfRange"
	case TopologyFailure:
		return "TopologyFailure"
	case UnsupportedConfiguration:
		return "UnsupportedConfiguration"
	default:
		return "Unknown"
	}
}

// Error is the error value returned by fallible vpath operations. Deep
// numeric code (the intersector, the CAG pipeline) does not construct
// Error and return it up the call stack; it logs through a diag.Sink and
// falls back to an empty result instead.
type Error struct {
	Kind Kind
	Op   string // operation that failed, e.g. "Subdivided", "Arc"
	Msg  string
}

func (e *Error) Error() string {
	return fmt.Sprintf("vpath: %s: %s: %s", e.Op, e.Kind, e.Msg)
}

func newError(kind Kind, op, format string, args ...any) *Error {
	return &Error{Kind: kind, Op: op, Msg: fmt.Sprintf(format, args...)}
}
