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

// Package canvas implements the consumer side of the canvas-context
// writer interface that vpath's core accepts (spec.md §6): it drives a
// drawing-context sink with moveTo/lineTo/quadraticCurveTo/
// bezierCurveTo/arc/ellipse/closePath calls derived from a *vpath.Shape,
// and it ships one concrete Sink implementation (Recorder) backed by an
// *image.RGBA so the interface has a real exerciser in tests, the way
// seehuhn.de/go/raster's own Rasterizer is a concrete consumer of
// path.Data.
package canvas

import (
	"image"
	"image/color"
	"math"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vpath"
)

// Sink is the drawing-context interface vpath.WriteTo drives. Ellipse is
// optional: a nil Ellipse method (or a Sink that doesn't implement
// EllipseWriter) falls back to emitting a circular Arc call on a
// temporarily transformed copy of the context, per spec.md §6.
type Sink interface {
	MoveTo(x, y float64)
	LineTo(x, y float64)
	QuadraticCurveTo(cx, cy, x, y float64)
	BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64)
	Arc(cx, cy, r, start, end float64, ccw bool)
	ClosePath()
}

// EllipseWriter is the optional extension to Sink for contexts that can
// draw an elliptical arc natively, mirroring a canvas 2D context's own
// optional ellipse(...) method.
type EllipseWriter interface {
	Ellipse(cx, cy, rx, ry, rotation, start, end float64, ccw bool)
}

// transformed wraps a Sink, applying m to every coordinate before
// forwarding. It never implements EllipseWriter itself, so WriteTo's
// ellipse fallback always reaches the plain Arc call.
type transformed struct {
	sink Sink
	m    vpath.Matrix
}

func (t transformed) point(x, y float64) (float64, float64) {
	p := vpath.Apply(t.m, vec.Vec2{X: x, Y: y})
	return p.X, p.Y
}

func (t transformed) MoveTo(x, y float64) {
	px, py := t.point(x, y)
	t.sink.MoveTo(px, py)
}

func (t transformed) LineTo(x, y float64) {
	px, py := t.point(x, y)
	t.sink.LineTo(px, py)
}

func (t transformed) QuadraticCurveTo(cx, cy, x, y float64) {
	cpx, cpy := t.point(cx, cy)
	px, py := t.point(x, y)
	t.sink.QuadraticCurveTo(cpx, cpy, px, py)
}

func (t transformed) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	p1x, p1y := t.point(c1x, c1y)
	p2x, p2y := t.point(c2x, c2y)
	px, py := t.point(x, y)
	t.sink.BezierCurveTo(p1x, p1y, p2x, p2y, px, py)
}

func (t transformed) Arc(cx, cy, r, start, end float64, ccw bool) {
	pcx, pcy := t.point(cx, cy)
	t.sink.Arc(pcx, pcy, r, start, end, ccw)
}

func (t transformed) ClosePath() { t.sink.ClosePath() }

// WriteTo replays sh's segments onto sink using the canvas-context
// vocabulary. Arc segments call sink.Arc directly; EllipticalArc calls
// sink.Ellipse when sink implements EllipseWriter, and otherwise draws a
// unit circle arc on a context pre-transformed by the ellipse's own
// unit-circle-to-ellipse matrix, exactly as spec.md §6 describes the
// fallback.
func WriteTo(sink Sink, sh *vpath.Shape) {
	for _, sp := range sh.Subpaths {
		writeSubpath(sink, sp)
	}
}

func writeSubpath(sink Sink, sp *vpath.Subpath) {
	if len(sp.Segments) == 0 {
		return
	}
	start := sp.Segments[0].Start()
	sink.MoveTo(start.X, start.Y)
	for _, seg := range sp.Segments {
		writeSegment(sink, seg)
	}
	if sp.Closed {
		sink.ClosePath()
	}
}

func writeSegment(sink Sink, seg vpath.Segment) {
	switch s := seg.(type) {
	case *vpath.Line:
		e := s.End()
		sink.LineTo(e.X, e.Y)
	case *vpath.Quadratic:
		sink.QuadraticCurveTo(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y)
	case *vpath.Cubic:
		sink.BezierCurveTo(s.P1.X, s.P1.Y, s.P2.X, s.P2.Y, s.P3.X, s.P3.Y)
	case *vpath.Arc:
		sink.Arc(s.Center.X, s.Center.Y, s.Radius, s.StartAngle, s.EndAngle, s.Anticlockwise)
	case *vpath.EllipticalArc:
		writeEllipticalArc(sink, s)
	}
}

func writeEllipticalArc(sink Sink, e *vpath.EllipticalArc) {
	if w, ok := sink.(EllipseWriter); ok {
		w.Ellipse(e.Center.X, e.Center.Y, e.RadiusX, e.RadiusY, e.Rotation, e.StartAngle, e.EndAngle, e.Anticlockwise)
		return
	}
	// Rebuild the unit-circle-to-ellipse transform from the exported
	// fields directly: translate(center) . rotate(rotation) . scale(rx, ry).
	m := vpath.Compose(
		vpath.Compose(vpath.Translation(e.Center.X, e.Center.Y), vpath.Rotation(e.Rotation)),
		vpath.ScaleXY(e.RadiusX, e.RadiusY),
	)
	tctx := transformed{sink: sink, m: m}
	tctx.Arc(0, 0, 1, e.StartAngle, e.EndAngle, e.Anticlockwise)
}

// Recorder is a Sink backed by an *image.RGBA: it rasterizes the path it's
// driven with by flattening every curve call to line segments and
// scan-filling the resulting polygon with the nonzero winding rule, the
// same discretize-then-fill strategy vpath/raster uses for its own
// cross-check tests, exercised here instead through the external
// canvas-writer interface rather than vpath's internal Shape type.
type Recorder struct {
	Img   *image.RGBA
	Color color.Color

	cur      vec.Vec2
	start    vec.Vec2
	polygons [][]vec.Vec2
	current  []vec.Vec2
}

// NewRecorder creates a Recorder that fills onto a fresh w x h canvas.
func NewRecorder(w, h int, fill color.Color) *Recorder {
	return &Recorder{
		Img:   image.NewRGBA(image.Rect(0, 0, w, h)),
		Color: fill,
	}
}

func (r *Recorder) MoveTo(x, y float64) {
	r.flush()
	r.cur = vec.Vec2{X: x, Y: y}
	r.start = r.cur
	r.current = []vec.Vec2{r.cur}
}

func (r *Recorder) LineTo(x, y float64) {
	r.cur = vec.Vec2{X: x, Y: y}
	r.current = append(r.current, r.cur)
}

func (r *Recorder) QuadraticCurveTo(cx, cy, x, y float64) {
	r.flattenQuadratic(r.cur, vec.Vec2{X: cx, Y: cy}, vec.Vec2{X: x, Y: y})
}

func (r *Recorder) BezierCurveTo(c1x, c1y, c2x, c2y, x, y float64) {
	r.flattenCubic(r.cur, vec.Vec2{X: c1x, Y: c1y}, vec.Vec2{X: c2x, Y: c2y}, vec.Vec2{X: x, Y: y})
}

func (r *Recorder) Arc(cx, cy, radius, start, end float64, ccw bool) {
	r.flattenArc(vec.Vec2{X: cx, Y: cy}, radius, radius, 0, start, end, ccw)
}

func (r *Recorder) Ellipse(cx, cy, rx, ry, rotation, start, end float64, ccw bool) {
	r.flattenArc(vec.Vec2{X: cx, Y: cy}, rx, ry, rotation, start, end, ccw)
}

func (r *Recorder) ClosePath() {
	r.current = append(r.current, r.start)
	r.cur = r.start
}

const flattenSteps = 48

func (r *Recorder) flattenQuadratic(p0, p1, p2 vec.Vec2) {
	for i := 1; i <= flattenSteps; i++ {
		t := float64(i) / flattenSteps
		u := 1 - t
		x := u*u*p0.X + 2*u*t*p1.X + t*t*p2.X
		y := u*u*p0.Y + 2*u*t*p1.Y + t*t*p2.Y
		r.LineTo(x, y)
	}
}

func (r *Recorder) flattenCubic(p0, p1, p2, p3 vec.Vec2) {
	for i := 1; i <= flattenSteps; i++ {
		t := float64(i) / flattenSteps
		u := 1 - t
		x := u*u*u*p0.X + 3*u*u*t*p1.X + 3*u*t*t*p2.X + t*t*t*p3.X
		y := u*u*u*p0.Y + 3*u*u*t*p1.Y + 3*u*t*t*p2.Y + t*t*t*p3.Y
		r.LineTo(x, y)
	}
}

func (r *Recorder) flattenArc(center vec.Vec2, rx, ry, rotation, start, end float64, ccw bool) {
	delta := end - start
	if ccw && delta > 0 {
		delta -= 2 * math.Pi
	} else if !ccw && delta < 0 {
		delta += 2 * math.Pi
	}
	cosRot, sinRot := math.Cos(rotation), math.Sin(rotation)
	for i := 0; i <= flattenSteps; i++ {
		theta := start + delta*float64(i)/flattenSteps
		ex, ey := rx*math.Cos(theta), ry*math.Sin(theta)
		x := center.X + ex*cosRot - ey*sinRot
		y := center.Y + ex*sinRot + ey*cosRot
		r.LineTo(x, y)
	}
}

func (r *Recorder) flush() {
	if len(r.current) >= 2 {
		r.polygons = append(r.polygons, r.current)
	}
	r.current = nil
}

// Rasterize fills every recorded (sub)polygon under the nonzero winding
// rule and returns the resulting image. Call after driving the Recorder
// with vpath/canvas.WriteTo.
func (r *Recorder) Rasterize() *image.RGBA {
	r.flush()
	bounds := r.Img.Bounds()
	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		fy := float64(y) + 0.5
		crossings := make([]struct {
			x    float64
			wind int
		}, 0, 8)
		for _, poly := range r.polygons {
			n := len(poly)
			for i := 0; i < n; i++ {
				a := poly[i]
				b := poly[(i+1)%n]
				if a.Y == b.Y {
					continue
				}
				if (a.Y <= fy && b.Y > fy) || (b.Y <= fy && a.Y > fy) {
					tt := (fy - a.Y) / (b.Y - a.Y)
					x := a.X + tt*(b.X-a.X)
					wind := 1
					if b.Y < a.Y {
						wind = -1
					}
					crossings = append(crossings, struct {
						x    float64
						wind int
					}{x, wind})
				}
			}
		}
		sortByX(crossings)
		wind := 0
		for i := 0; i < len(crossings); i++ {
			prevInside := wind != 0
			wind += crossings[i].wind
			if prevInside {
				x0 := int(math.Round(crossings[i-1].x))
				x1 := int(math.Round(crossings[i].x))
				for x := x0; x < x1; x++ {
					if x >= bounds.Min.X && x < bounds.Max.X {
						r.Img.Set(x, y, r.Color)
					}
				}
			}
		}
	}
	return r.Img
}

func sortByX(xs []struct {
	x    float64
	wind int
}) {
	for i := 1; i < len(xs); i++ {
		for j := i; j > 0 && xs[j-1].x > xs[j].x; j-- {
			xs[j-1], xs[j] = xs[j], xs[j-1]
		}
	}
}
