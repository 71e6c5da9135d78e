package raster

import (
	"testing"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vpath"
)

func rectShape(t *testing.T, x0, y0, x1, y1 float64) *vpath.Shape {
	t.Helper()
	corners := []vec.Vec2{{X: x0, Y: y0}, {X: x1, Y: y0}, {X: x1, Y: y1}, {X: x0, Y: y1}}
	segs := make([]vpath.Segment, 4)
	for i := range corners {
		l, err := vpath.NewLine(corners[i], corners[(i+1)%4])
		if err != nil {
			t.Fatalf("NewLine: %v", err)
		}
		segs[i] = l
	}
	sp, err := vpath.NewSubpath(segs, true)
	if err != nil {
		t.Fatalf("NewSubpath: %v", err)
	}
	return vpath.NewShape(sp)
}

func TestRasterizeShapeFillsRectangleInterior(t *testing.T) {
	sh := rectShape(t, 10, 10, 20, 20)
	cov := RasterizeShape(sh, 32, 32)

	if c := cov[15*32+15]; c < 0.99 {
		t.Errorf("interior pixel coverage = %v, want ~1", c)
	}
	if c := cov[5*32+5]; c > 0.01 {
		t.Errorf("exterior pixel coverage = %v, want ~0", c)
	}
}

func TestRasterizeTwoOverlappingRectanglesMatchesUnion(t *testing.T) {
	a := rectShape(t, 0, 0, 10, 10)
	b := rectShape(t, 5, 5, 15, 15)
	u := vpath.ShapeUnion(a, b)

	covA := RasterizeShape(a, 20, 20)
	covB := RasterizeShape(b, 20, 20)
	covU := RasterizeShape(u, 20, 20)

	var diff float64
	for i := range covU {
		want := covA[i]
		if covB[i] > want {
			want = covB[i]
		}
		d := covU[i] - want
		if d < 0 {
			d = -d
		}
		diff += float64(d)
	}
	avg := diff / float64(len(covU))
	if avg > 1.0/255 {
		t.Errorf("average coverage diff = %v, want <= 1/255", avg)
	}
}
