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

package main

import (
	"fmt"
	"strings"
	"testing"
)

func lineJSON(x0, y0, x1, y1 float64) string {
	return fmt.Sprintf(`{"type":"Line","startX":%g,"startY":%g,"endX":%g,"endY":%g}`, x0, y0, x1, y1)
}

func rectJSON(x, y, w, h float64) string {
	return `{"type":"Shape","subpaths":[{"type":"Subpath","closed":true,"segments":[` +
		lineJSON(x, y, x+w, y) + "," +
		lineJSON(x+w, y, x+w, y+h) + "," +
		lineJSON(x+w, y+h, x, y+h) + "," +
		lineJSON(x, y+h, x, y) +
		`],"points":[]}]}`
}

func TestSceneUnionOfOverlappingRects(t *testing.T) {
	sc := scene{
		Op: "union",
		A:  []byte(rectJSON(0, 0, 10, 10)),
		B:  []byte(rectJSON(5, 5, 10, 10)),
	}
	sh, err := sc.evaluate()
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(sh.Subpaths) == 0 {
		t.Fatal("expected a non-empty union result")
	}
}

func TestSceneStroke(t *testing.T) {
	sc := scene{
		Op:        "stroke",
		A:         []byte(`{"type":"Shape","subpaths":[{"type":"Subpath","closed":false,"segments":[` + lineJSON(0, 0, 100, 0) + `],"points":[]}]}`),
		LineWidth: 10,
		Cap:       "butt",
		Join:      "miter",
	}
	sh, err := sc.evaluate()
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	if len(sh.Subpaths) != 1 || !sh.Subpaths[0].Closed {
		t.Fatalf("expected one closed stroked subpath, got %+v", sh.Subpaths)
	}
}

func TestSceneRejectsUnknownOp(t *testing.T) {
	sc := scene{Op: "bogus", A: []byte(rectJSON(0, 0, 1, 1))}
	if _, err := sc.evaluate(); err == nil {
		t.Fatal("expected error for unknown op")
	}
}

func TestRenderSVGContainsPathData(t *testing.T) {
	sc := scene{Op: "union", A: []byte(rectJSON(0, 0, 10, 10)), B: []byte(rectJSON(5, 5, 10, 10))}
	sh, err := sc.evaluate()
	if err != nil {
		t.Fatalf("evaluate: %v", err)
	}
	out := renderSVG(sh, 20, 20)
	if !strings.Contains(out, "<svg") || !strings.Contains(out, "<path d=") {
		t.Fatalf("unexpected SVG output: %s", out)
	}
}
