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

package canvas

import (
	"image/color"
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vpath"
)

// recordingSink just logs the calls WriteTo makes, without implementing
// EllipseWriter, so an EllipticalArc segment must hit the documented
// fallback path.
type recordingSink struct {
	calls []string
}

func (s *recordingSink) MoveTo(x, y float64)                           { s.calls = append(s.calls, "moveTo") }
func (s *recordingSink) LineTo(x, y float64)                           { s.calls = append(s.calls, "lineTo") }
func (s *recordingSink) QuadraticCurveTo(cx, cy, x, y float64)         { s.calls = append(s.calls, "quad") }
func (s *recordingSink) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	s.calls = append(s.calls, "bezier")
}
func (s *recordingSink) Arc(cx, cy, r, start, end float64, ccw bool) { s.calls = append(s.calls, "arc") }
func (s *recordingSink) ClosePath()                                  { s.calls = append(s.calls, "close") }

func TestWriteToDispatchesEverySegmentKind(t *testing.T) {
	b := vpath.NewShapeBuilder()
	b.MoveTo(pt(0, 0)).LineTo(pt(1, 0)).
		QuadraticCurveTo(pt(1, 1), pt(2, 1)).
		CubicCurveTo(pt(2, 2), pt(3, 2), pt(3, 3)).
		ArcTo(pt(5, 5), 2, 0, 1, false).
		EllipticalArcTo(pt(5, 5), 2, 1, 0, 0, 1, false).
		Close()
	sh, err := b.Shape()
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}

	sink := &recordingSink{}
	WriteTo(sink, sh)

	want := map[string]bool{"moveTo": false, "lineTo": false, "quad": false, "bezier": false, "arc": false, "close": false}
	for _, c := range sink.calls {
		if _, ok := want[c]; ok {
			want[c] = true
		}
	}
	for c, seen := range want {
		if !seen {
			t.Errorf("expected a %s call, saw calls %v", c, sink.calls)
		}
	}
}

func TestRecorderFillsRectangleInterior(t *testing.T) {
	b := vpath.NewShapeBuilder()
	b.Rect(2, 2, 10, 10)
	sh, err := b.Shape()
	if err != nil {
		t.Fatalf("Shape: %v", err)
	}

	rec := NewRecorder(16, 16, color.Black)
	WriteTo(rec, sh)
	img := rec.Rasterize()

	_, _, _, a := img.At(7, 7).RGBA()
	if a == 0 {
		t.Fatal("expected interior point to be filled")
	}
	_, _, _, a = img.At(0, 0).RGBA()
	if a != 0 {
		t.Fatal("expected exterior point to be unfilled")
	}
}

func pt(x, y float64) vec.Vec2 { return vec.Vec2{X: x, Y: y} }
