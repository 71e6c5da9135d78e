package vpath

import (
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/pdf/graphics"
)

func TestStrokeOfHorizontalLineContainsExpectedPoints(t *testing.T) {
	l, err := NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	sp, err := NewSubpath([]Segment{l}, false)
	if err != nil {
		t.Fatalf("NewSubpath: %v", err)
	}
	ls := LineStyles{Width: 10, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10}
	shape, err := sp.Stroke(ls)
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	if len(shape.Subpaths) == 0 {
		t.Fatal("stroke produced no subpaths")
	}
	for _, p := range []vec.Vec2{{X: 50, Y: 0}, {X: 50, Y: 4}, {X: 50, Y: -4}, {X: 1, Y: 0}} {
		if !shape.ContainsPoint(p) {
			t.Errorf("stroke does not contain expected interior point %v", p)
		}
	}
	for _, p := range []vec.Vec2{{X: 50, Y: 10}, {X: 50, Y: -10}} {
		if shape.ContainsPoint(p) {
			t.Errorf("stroke unexpectedly contains point far from the line: %v", p)
		}
	}
}

func TestStrokeRejectsInvalidLineStyles(t *testing.T) {
	l, _ := NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0})
	sp, _ := NewSubpath([]Segment{l}, false)
	if _, err := sp.Stroke(LineStyles{Width: -1}); err == nil {
		t.Error("expected error for negative width")
	}
	if _, err := sp.Stroke(LineStyles{Width: 1, MiterLimit: 0.5}); err == nil {
		t.Error("expected error for miter limit below 1")
	}
	if _, err := sp.Stroke(LineStyles{Width: 1, MiterLimit: 1, Dash: []float64{0, 0}}); err == nil {
		t.Error("expected error for all-zero dash pattern")
	}
}

func TestDashedLineEnclosesTenDisjointSegments(t *testing.T) {
	l, err := NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 100, Y: 0})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	sp, err := NewSubpath([]Segment{l}, false)
	if err != nil {
		t.Fatalf("NewSubpath: %v", err)
	}
	ls := LineStyles{
		Width: 10, Cap: graphics.LineCapButt, Join: graphics.LineJoinMiter, MiterLimit: 10,
		Dash: []float64{5, 5},
	}
	shape, err := sp.Stroke(ls)
	if err != nil {
		t.Fatalf("Stroke: %v", err)
	}
	if len(shape.Subpaths) != 10 {
		t.Errorf("len(Subpaths) = %d, want 10 dash-on pieces", len(shape.Subpaths))
	}
	var area float64
	for _, s := range shape.Subpaths {
		area += subpathSignedArea(s)
	}
	if area < 0 {
		area = -area
	}
	if got, want := area, 500.0; got < want-0.1 || got > want+0.1 {
		t.Errorf("total dash area = %v, want %v +/- 0.1", got, want)
	}
}

func subpathSignedArea(sp *Subpath) float64 {
	var a float64
	for _, s := range sp.Segments {
		a += s.SignedAreaFragment()
	}
	return a
}
