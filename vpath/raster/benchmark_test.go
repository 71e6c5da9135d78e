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

package raster

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"testing"

	"golang.org/x/image/vector"

	"seehuhn.de/go/geom/rect"
	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vpath"
)

// makeOShape builds an "O" as a vpath.Shape: an outer circle wound
// counter-clockwise and an inner circle wound clockwise, each a single
// native Arc segment rather than a flattened cubic-Bézier approximation.
// FillEvenOdd (and FillNonZero, since the two circles wind in opposite
// directions) then resolve the hole the same way the even-odd rule resolves
// any two nested, oppositely-wound loops.
func makeOShape(cx, cy, outerR, innerR float64) *vpath.Shape {
	b := vpath.NewShapeBuilder()
	b.ArcTo(vec.Vec2{X: cx, Y: cy}, outerR, 0, 2*math.Pi, false).Close()
	b.ArcTo(vec.Vec2{X: cx, Y: cy}, innerR, 0, 2*math.Pi, true).Close()
	sh, err := b.Shape()
	if err != nil {
		panic(err)
	}
	return sh
}

// addCircleToVector adds a circle to a vector.Rasterizer using cubic Bézier
// curves, for the golang.org/x/image/vector cross-check benchmark.
func addCircleToVector(r *vector.Rasterizer, cx, cy, radius float32, clockwise bool) {
	const k = float32(0.5522847498)
	kr := k * radius

	if clockwise {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx-kr, cy-radius, cx-radius, cy-kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy+kr, cx-kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx+kr, cy+radius, cx+radius, cy+kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy-kr, cx+kr, cy-radius, cx, cy-radius)
	} else {
		r.MoveTo(cx, cy-radius)
		r.CubeTo(cx+kr, cy-radius, cx+radius, cy-kr, cx+radius, cy)
		r.CubeTo(cx+radius, cy+kr, cx+kr, cy+radius, cx, cy+radius)
		r.CubeTo(cx-kr, cy+radius, cx-radius, cy+kr, cx-radius, cy)
		r.CubeTo(cx-radius, cy-kr, cx-kr, cy-radius, cx, cy-radius)
	}
	r.ClosePath()
}

// BenchmarkRasterizerMethodA benchmarks Rasterizer.FillEvenOdd via fillSmallPath
// (2D buffers) against an "O" built from vpath's own Arc segments.
func BenchmarkRasterizerMethodA(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30
			sh := makeOShape(center, center, outerR, innerR)

			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			r.smallPathThreshold = 1 << 30 // force method A
			data := toPathData(sh)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.FillEvenOdd(data, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkRasterizerMethodB benchmarks Rasterizer.FillEvenOdd via fillLargePath
// (active edge list) against the same Arc-built "O".
func BenchmarkRasterizerMethodB(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			center := float64(size) / 2
			outerR := float64(size) * 0.45
			innerR := float64(size) * 0.30
			sh := makeOShape(center, center, outerR, innerR)

			clip := rect.Rect{LLx: 0, LLy: 0, URx: float64(size), URy: float64(size)}
			r := NewRasterizer(clip)
			r.smallPathThreshold = 0 // force method B
			data := toPathData(sh)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.FillEvenOdd(data, func(y, xMin int, coverage []float32) {
					row := dst.Pix[y*dst.Stride+xMin:]
					for i, c := range coverage {
						row[i] = uint8(c * 255)
					}
				})
			}
		})
	}
}

// BenchmarkVectorO times golang.org/x/image/vector, an independent
// rasterizer, on the same "O" shape for comparison with the two benchmarks
// above. It only measures speed; no coverage values are compared.
func BenchmarkVectorO(b *testing.B) {
	sizes := []int{20, 200, 2000}

	for _, size := range sizes {
		b.Run(fmt.Sprintf("%dx%d", size, size), func(b *testing.B) {
			r := vector.NewRasterizer(size, size)

			dst := image.NewAlpha(image.Rect(0, 0, size, size))
			src := image.NewUniform(color.Alpha{255})

			center := float32(size) / 2
			outerR := float32(size) * 0.45
			innerR := float32(size) * 0.30

			b.ResetTimer()
			b.ReportAllocs()

			for b.Loop() {
				r.Reset(size, size)

				addCircleToVector(r, center, center, outerR, false)
				addCircleToVector(r, center, center, innerR, true)

				r.Draw(dst, dst.Bounds(), src, image.Point{})
			}
		})
	}
}
