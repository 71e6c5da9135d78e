package vpath

import (
	"encoding/json"
	"math"
	"testing"

	"seehuhn.de/go/geom/vec"
)

func TestSegmentJSONRoundTrip(t *testing.T) {
	line, _ := NewLine(vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 3, Y: 4})
	arc, _ := NewArc(vec.Vec2{X: 0, Y: 0}, 5, 0, math.Pi/2, false)
	ell, _ := NewEllipticalArc(vec.Vec2{X: 1, Y: 1}, 6, 3, 0.2, 0, math.Pi, true)
	quad, _ := NewQuadratic(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 2}, vec.Vec2{X: 2, Y: 0})
	cubic, _ := NewCubic(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 1}, vec.Vec2{X: 2, Y: -1}, vec.Vec2{X: 3, Y: 0})

	for _, seg := range []Segment{line, arc, ell, quad, cubic} {
		data, err := json.Marshal(seg)
		if err != nil {
			t.Fatalf("Marshal %T: %v", seg, err)
		}
		got, err := UnmarshalSegmentJSON(data)
		if err != nil {
			t.Fatalf("Unmarshal %T: %v", seg, err)
		}
		if got.Kind() != seg.Kind() {
			t.Errorf("kind mismatch: got %v want %v", got.Kind(), seg.Kind())
		}
		if !approxVec(got.Start(), seg.Start(), 1e-9) || !approxVec(got.End(), seg.End(), 1e-9) {
			t.Errorf("%T round trip endpoints differ: got start=%v end=%v, want start=%v end=%v",
				seg, got.Start(), got.End(), seg.Start(), seg.End())
		}
	}
}

func TestShapeJSONRoundTrip(t *testing.T) {
	l1, _ := NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 10, Y: 0})
	l2, _ := NewLine(vec.Vec2{X: 10, Y: 0}, vec.Vec2{X: 10, Y: 10})
	l3, _ := NewLine(vec.Vec2{X: 10, Y: 10}, vec.Vec2{X: 0, Y: 10})
	l4, _ := NewLine(vec.Vec2{X: 0, Y: 10}, vec.Vec2{X: 0, Y: 0})
	sp, err := NewSubpath([]Segment{l1, l2, l3, l4}, true)
	if err != nil {
		t.Fatalf("NewSubpath: %v", err)
	}
	sh := NewShape(sp)

	data, err := json.Marshal(sh)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}

	var got Shape
	if err := json.Unmarshal(data, &got); err != nil {
		t.Fatalf("Unmarshal: %v", err)
	}
	if len(got.Subpaths) != 1 || len(got.Subpaths[0].Segments) != 4 {
		t.Fatalf("round trip shape shape mismatch: %+v", got)
	}
	if !got.Subpaths[0].Closed {
		t.Errorf("round trip lost Closed=true")
	}
	p := vec.Vec2{X: 5, Y: 5}
	if !sh.ContainsPoint(p) || !got.ContainsPoint(p) {
		t.Errorf("round trip changed containment at %v", p)
	}
}

func TestSubpathPointsFieldCoversAllVertices(t *testing.T) {
	l1, _ := NewLine(vec.Vec2{X: 0, Y: 0}, vec.Vec2{X: 1, Y: 0})
	l2, _ := NewLine(vec.Vec2{X: 1, Y: 0}, vec.Vec2{X: 1, Y: 1})
	sp, err := NewSubpath([]Segment{l1, l2}, false)
	if err != nil {
		t.Fatalf("NewSubpath: %v", err)
	}
	data, err := json.Marshal(sp)
	if err != nil {
		t.Fatalf("Marshal: %v", err)
	}
	var raw subpathJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("Unmarshal raw: %v", err)
	}
	if len(raw.Points) != 3 {
		t.Fatalf("len(Points) = %d, want 3 (start of each of 2 segments + end of last)", len(raw.Points))
	}
}
