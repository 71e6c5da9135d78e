package vpath

import (
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func approxVec(a, b vec.Vec2, eps float64) bool {
	return distance(a, b) <= eps
}

func TestLineEndpoints(t *testing.T) {
	l, err := NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if !approxVec(l.Position(0), l.Start(), 1e-12) {
		t.Errorf("Position(0) != Start()")
	}
	if !approxVec(l.Position(1), l.End(), 1e-12) {
		t.Errorf("Position(1) != End()")
	}
	mid := l.Position(0.5)
	if !approxVec(mid, vec.Vec2{X: 5, Y: 0}, 1e-9) {
		t.Errorf("midpoint = %v, want (5,0)", mid)
	}
}

func TestLineDegenerateHasNoNondegenerateSegments(t *testing.T) {
	l, err := NewLine(vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 1, Y: 1})
	if err != nil {
		t.Fatalf("NewLine: %v", err)
	}
	if segs := l.NondegenerateSegments(); len(segs) != 0 {
		t.Fatalf("zero-length line: NondegenerateSegments() = %v, want none", segs)
	}
}

func TestArcHalfCircleSubdivisionAgreesAtSamples(t *testing.T) {
	a, err := NewArc(vec.Vec2{X: 0, Y: 0}, 5, 0, math.Pi, false)
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	left, right := a.Subdivided(0.5)
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		want := a.Position(tt)
		var got vec.Vec2
		if tt <= 0.5 {
			got = left.Position(tt / 0.5)
		} else {
			got = right.Position((tt - 0.5) / 0.5)
		}
		if !approxVec(got, want, 1e-9) {
			t.Errorf("subdivision mismatch at t=%v: got %v want %v", tt, got, want)
		}
	}
}

func TestArcBoundsContainsSamples(t *testing.T) {
	a, err := NewArc(vec.Vec2{X: 2, Y: 3}, 4, 0, 2*math.Pi, false)
	if err != nil {
		t.Fatalf("NewArc: %v", err)
	}
	b := a.Bounds()
	for i := 0; i <= 50; i++ {
		p := a.Position(float64(i) / 50)
		if !b.ContainsPoint(p) {
			t.Errorf("bounds do not contain sample %v: bounds %+v", p, b)
		}
	}
}

func TestQuadraticTransformCommutesWithPosition(t *testing.T) {
	q, err := NewQuadratic(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 2, Y: 0})
	if err != nil {
		t.Fatalf("NewQuadratic: %v", err)
	}
	m := Compose(Translation(3, -1), Rotation(0.3))
	tq := q.Transformed(m)
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		got := tq.Position(tt)
		want := Apply(m, q.Position(tt))
		if !approxVec(got, want, 1e-9) {
			t.Errorf("transform does not commute with position at t=%v: got %v want %v", tt, got, want)
		}
	}
}

func TestCubicReversedEndpointsSwap(t *testing.T) {
	c, err := NewCubic(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: -1}, vec.Vec2{X: 3, Y: 0})
	if err != nil {
		t.Fatalf("NewCubic: %v", err)
	}
	r := c.Reversed()
	if !approxVec(r.Start(), c.End(), 1e-12) || !approxVec(r.End(), c.Start(), 1e-12) {
		t.Errorf("Reversed endpoints do not swap")
	}
	for i := 0; i <= 10; i++ {
		tt := float64(i) / 10
		if !approxVec(r.Position(tt), c.Position(1-tt), 1e-9) {
			t.Errorf("Reversed position mismatch at t=%v", tt)
		}
	}
}

func TestCubicSelfIntersectingNondegenerateSegmentsChain(t *testing.T) {
	c, err := NewCubic(
		vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 30, Y: 10},
		vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 20, Y: 0},
	)
	if err != nil {
		t.Fatalf("NewCubic: %v", err)
	}
	pieces := c.NondegenerateSegments()
	if len(pieces) == 0 {
		t.Fatal("expected at least one nondegenerate piece")
	}
	if !approxVec(pieces[0].Start(), c.Start(), 1e-9) {
		t.Errorf("first piece does not start where the cubic starts")
	}
	if !approxVec(pieces[len(pieces)-1].End(), c.End(), 1e-9) {
		t.Errorf("last piece does not end where the cubic ends")
	}
	for i := 1; i < len(pieces); i++ {
		if !approxVec(pieces[i-1].End(), pieces[i].Start(), 1e-9) {
			t.Errorf("piece %d does not continue from piece %d", i, i-1)
		}
	}
}

func TestEllipticalArcRadiusXLessThanRadiusYCanonicalized(t *testing.T) {
	e, err := NewEllipticalArc(vec.Vec2{X: 0, Y: 0}, 1, 5, 0, 0, math.Pi, false)
	if err != nil {
		t.Fatalf("NewEllipticalArc: %v", err)
	}
	if e.RadiusX != 5 || e.RadiusY != 1 {
		t.Fatalf("radii = (%v, %v), want (5, 1) after canonicalization", e.RadiusX, e.RadiusY)
	}
	if e.RadiusX < e.RadiusY {
		t.Errorf("RadiusX = %v < RadiusY = %v", e.RadiusX, e.RadiusY)
	}
	if !approxVec(e.Start(), vec.Vec2{X: 1, Y: 0}, 1e-9) {
		t.Errorf("Start() = %v, want (1, 0), the start of the uncanonicalized ellipse", e.Start())
	}
}
