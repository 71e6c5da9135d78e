package vpath

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

// rectShape builds an axis-aligned rectangle [x0,x1]x[y0,y1] as a closed,
// counterclockwise Shape.
func rectShape(t *testing.T, x0, y0, x1, y1 float64) *Shape {
	t.Helper()
	corners := []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	segs := make([]Segment, 4)
	for i := range corners {
		l, err := NewLine(corners[i], corners[(i+1)%4])
		if err != nil {
			t.Fatalf("NewLine: %v", err)
		}
		segs[i] = l
	}
	sp, err := NewSubpath(segs, true)
	if err != nil {
		t.Fatalf("NewSubpath: %v", err)
	}
	return NewShape(sp)
}

func TestShapeUnionOfOverlappingRectanglesMatchesContainsPoint(t *testing.T) {
	a := rectShape(t, 0, 0, 10, 10)
	b := rectShape(t, 5, 5, 15, 15)
	u := ShapeUnion(a, b)

	samples := []vec.Vec2{
		{X: 1, Y: 1}, {X: 7, Y: 7}, {X: 12, Y: 12},
		{X: 1, Y: 12}, {X: 12, Y: 1}, {X: 20, Y: 20},
	}
	for _, p := range samples {
		want := a.ContainsPoint(p) || b.ContainsPoint(p)
		got := u.ContainsPoint(p)
		if got != want {
			t.Errorf("ShapeUnion.ContainsPoint(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestShapeIntersectionOfOverlappingRectangles(t *testing.T) {
	a := rectShape(t, 0, 0, 10, 10)
	b := rectShape(t, 5, 5, 15, 15)
	i := ShapeIntersection(a, b)

	samples := []vec.Vec2{{X: 7, Y: 7}, {X: 1, Y: 1}, {X: 12, Y: 12}, {X: 9, Y: 9}}
	for _, p := range samples {
		want := a.ContainsPoint(p) && b.ContainsPoint(p)
		got := i.ContainsPoint(p)
		if got != want {
			t.Errorf("ShapeIntersection.ContainsPoint(%v) = %v, want %v", p, got, want)
		}
	}
}

func TestShapeDifferenceAndXor(t *testing.T) {
	a := rectShape(t, 0, 0, 10, 10)
	b := rectShape(t, 5, 5, 15, 15)
	d := ShapeDifference(a, b)
	x := ShapeXor(a, b)

	samples := []vec.Vec2{{X: 1, Y: 1}, {X: 7, Y: 7}, {X: 12, Y: 12}, {X: 20, Y: 20}}
	for _, p := range samples {
		wantD := a.ContainsPoint(p) && !b.ContainsPoint(p)
		if got := d.ContainsPoint(p); got != wantD {
			t.Errorf("ShapeDifference.ContainsPoint(%v) = %v, want %v", p, got, wantD)
		}
		wantX := a.ContainsPoint(p) != b.ContainsPoint(p)
		if got := x.ContainsPoint(p); got != wantX {
			t.Errorf("ShapeXor.ContainsPoint(%v) = %v, want %v", p, got, wantX)
		}
	}
}

func TestShapeUnionOfDisjointRectanglesKeepsBothLoops(t *testing.T) {
	a := rectShape(t, 0, 0, 5, 5)
	b := rectShape(t, 10, 10, 15, 15)
	u := ShapeUnion(a, b)
	if len(u.Subpaths) != 2 {
		t.Fatalf("len(Subpaths) = %d, want 2 for disjoint rectangles", len(u.Subpaths))
	}
	if !u.ContainsPoint(vec.Vec2{X: 2, Y: 2}) || !u.ContainsPoint(vec.Vec2{X: 12, Y: 12}) {
		t.Errorf("union of disjoint rectangles lost a region")
	}
	if u.ContainsPoint(vec.Vec2{X: 7, Y: 7}) {
		t.Errorf("union of disjoint rectangles claims a point between them")
	}
}

func TestShapeUnionOfCoincidentOverlapCollapsesToCover(t *testing.T) {
	// Seed scenario: a stroke body rectangle plus a cap rectangle that
	// share a full edge; their union must equal the covering rectangle.
	body := rectShape(t, 0, 0, 10, 2)
	cap := rectShape(t, 8, 0, 12, 2)
	u := ShapeUnion(body, cap)
	cover := rectShape(t, 0, 0, 12, 2)

	for x := -1.0; x <= 13; x++ {
		for y := -1.0; y <= 3; y++ {
			p := vec.Vec2{X: x, Y: y}
			if got, want := u.ContainsPoint(p), cover.ContainsPoint(p); got != want {
				t.Errorf("at %v: union=%v cover=%v", p, got, want)
			}
		}
	}
}

func TestShapeUnionResolvesSelfIntersectingCubic(t *testing.T) {
	c, err := NewCubic(
		vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 30, Y: 10},
		vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 20, Y: 0},
	)
	if err != nil {
		t.Fatalf("NewCubic: %v", err)
	}
	closing, err := NewLine(c.End(), c.Start())
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	sp, err := NewSubpath([]Segment{c, closing}, true)
	if err != nil {
		t.Fatalf("NewSubpath: %v", err)
	}
	loop := NewShape(sp)
	square := rectShape(t, 0, 0, 5, 5)

	u := ShapeUnion(loop, square)
	samples := []vec.Vec2{
		{X: 2, Y: 2}, {X: 1, Y: 1}, {X: 15, Y: 5}, {X: 25, Y: 5}, {X: 0.5, Y: 0.5},
	}
	for _, p := range samples {
		want := loop.ContainsPoint(p) || square.ContainsPoint(p)
		got := u.ContainsPoint(p)
		if got != want {
			t.Errorf("self-intersecting union at %v: got %v want %v", p, got, want)
		}
	}
}

func TestAngleOfHelperMatchesAtan2(t *testing.T) {
	v := vec.Vec2{X: 1, Y: 1}
	if got, want := angleOf(v), math.Atan2(1, 1); math.Abs(got-want) > 1e-12 {
		t.Errorf("angleOf(%v) = %v, want %v", v, got, want)
	}
}
