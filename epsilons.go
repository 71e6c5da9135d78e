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

// Named epsilons, centralized per the design notes so tuning stays in one
// place.
const (
	cuspTangentEpsilon     = 1e-7  // cubic cusp: |tangent(tCusp)| below this counts as a true cusp
	vertexMergeEpsilon     = 1e-8  // CAG: endpoints closer than this merge into one vertex
	endpointContinuityEps  = 1e-9  // Subpath invariant: segment[i].end ~= segment[i+1].start
	angleEqualityEpsilon   = 1e-10 // angle comparisons (containsAngle ties, cyclic-order ties)
	intersectionClusterEps = 1e-13 // bounds-subdivision intersector: cluster threshold (on squared param distance)
	overlapVerifyEpsilon   = 1e-6  // overlap detector: max allowed sampled coordinate difference
	subdivisionBisectCap   = 50    // bounds-subdivision intersector: bisection round cap
	quadraticOffsetDepth   = 5     // quadratic Bezier offset: fixed subdivision depth (2^5 = 32 sub-curves)
)
