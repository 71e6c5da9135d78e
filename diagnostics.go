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

import "seehuhn.de/go/vpath/diag"

// sink is where the intersector and the CAG pipeline report best-effort
// diagnostics instead of failing hard, per the propagation policy
// described alongside Error.
var sink diag.Sink = diag.Discard{}

// SetDiagSink replaces the package-wide diagnostic sink. Passing nil
// restores the default no-op sink.
func SetDiagSink(s diag.Sink) {
	if s == nil {
		s = diag.Discard{}
	}
	sink = s
}
