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

// Package svgtoken implements the consumer side of the external SVG
// path-string parser interface described in spec.md §6: the generated
// PEG parser itself is out of scope (spec.md §1), but the core must
// consume whatever token stream it emits. A Token here is exactly the
// {cmd, args} shape spec.md names; Build folds a stream of Tokens into a
// *vpath.Shape via the same ShapeBuilder the fluent API uses, so the
// external parser and the in-process builder stay semantically
// identical.
//
// Tokenize is not the PEG parser: it is a minimal literal reader for
// absolute-command path data (M, L, Q, C, Z only — no arcs, no relative
// commands, no shorthand curve forms), provided only so tests can build
// Shapes from path-data strings without hand-writing builder calls.
package svgtoken

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"seehuhn.de/go/geom/vec"
	"seehuhn.de/go/vpath"
)

// Cmd names one of the commands the core understands from a parsed SVG
// path, matching spec.md §6's token-stream contract exactly.
type Cmd string

const (
	CmdMoveTo           Cmd = "moveTo"
	CmdLineTo           Cmd = "lineTo"
	CmdQuadraticCurveTo Cmd = "quadraticCurveTo"
	CmdCubicCurveTo     Cmd = "cubicCurveTo"
	CmdArc              Cmd = "arc"
	CmdEllipticalArc    Cmd = "ellipticalArc"
	CmdClose            Cmd = "close"
)

// Token is one instruction emitted by the external SVG path parser.
type Token struct {
	Cmd  Cmd
	Args []float64
}

// Build folds tokens into a Shape by replaying each one against a
// vpath.ShapeBuilder, exactly as the fluent builder API would be driven
// directly. Argument counts follow the builder calls each Cmd maps to:
//
//	moveTo:             x, y
//	lineTo:             x, y
//	quadraticCurveTo:   cx, cy, x, y
//	cubicCurveTo:       c1x, c1y, c2x, c2y, x, y
//	arc:                cx, cy, radius, startAngle, endAngle, anticlockwise(0|1)
//	ellipticalArc:      cx, cy, rx, ry, rotation, startAngle, endAngle, anticlockwise(0|1)
//	close:              (no args)
func Build(tokens []Token) (*vpath.Shape, error) {
	b := vpath.NewShapeBuilder()
	for i, tok := range tokens {
		if err := apply(b, tok); err != nil {
			return nil, fmt.Errorf("svgtoken: token %d (%s): %w", i, tok.Cmd, err)
		}
	}
	return b.Shape()
}

func apply(b *vpath.ShapeBuilder, tok Token) error {
	need := func(n int) error {
		if len(tok.Args) != n {
			return fmt.Errorf("expected %d args, got %d", n, len(tok.Args))
		}
		return nil
	}
	a := tok.Args
	switch tok.Cmd {
	case CmdMoveTo:
		if err := need(2); err != nil {
			return err
		}
		b.MoveTo(vec.Vec2{X: a[0], Y: a[1]})
	case CmdLineTo:
		if err := need(2); err != nil {
			return err
		}
		b.LineTo(vec.Vec2{X: a[0], Y: a[1]})
	case CmdQuadraticCurveTo:
		if err := need(4); err != nil {
			return err
		}
		b.QuadraticCurveTo(vec.Vec2{X: a[0], Y: a[1]}, vec.Vec2{X: a[2], Y: a[3]})
	case CmdCubicCurveTo:
		if err := need(6); err != nil {
			return err
		}
		b.CubicCurveTo(vec.Vec2{X: a[0], Y: a[1]}, vec.Vec2{X: a[2], Y: a[3]}, vec.Vec2{X: a[4], Y: a[5]})
	case CmdArc:
		if err := need(6); err != nil {
			return err
		}
		b.ArcTo(vec.Vec2{X: a[0], Y: a[1]}, a[2], a[3], a[4], a[5] != 0)
	case CmdEllipticalArc:
		if err := need(8); err != nil {
			return err
		}
		b.EllipticalArcTo(vec.Vec2{X: a[0], Y: a[1]}, a[2], a[3], a[4], a[5], a[6], a[7] != 0)
	case CmdClose:
		if err := need(0); err != nil {
			return err
		}
		b.Close()
	default:
		return fmt.Errorf("unknown command %q", tok.Cmd)
	}
	return nil
}

// Tokenize reads absolute SVG path data containing only M, L, Q, C and Z
// commands and returns the Token stream Build expects. It is a literal
// reader, not the PEG parser spec.md places out of scope: no relative
// commands, no implicit repeated coordinate pairs, no shorthand curves.
// SVG's 'A' command is endpoint-parameterized (rx, ry, x-axis-rotation,
// large-arc-flag, sweep-flag, x, y); converting that to the center
// parameterization CmdArc/CmdEllipticalArc need is genuine arc math
// belonging to the PEG parser this package deliberately doesn't
// reimplement, so 'A' is rejected here rather than approximated.
func Tokenize(d string) ([]Token, error) {
	var toks []Token
	i := 0
	n := len(d)
	skipSep := func() {
		for i < n && (d[i] == ' ' || d[i] == ',' || d[i] == '\t' || d[i] == '\n' || d[i] == '\r') {
			i++
		}
	}
	readNumber := func() (float64, error) {
		skipSep()
		start := i
		if i < n && (d[i] == '+' || d[i] == '-') {
			i++
		}
		for i < n && (unicode.IsDigit(rune(d[i])) || d[i] == '.') {
			i++
		}
		if i < n && (d[i] == 'e' || d[i] == 'E') {
			i++
			if i < n && (d[i] == '+' || d[i] == '-') {
				i++
			}
			for i < n && unicode.IsDigit(rune(d[i])) {
				i++
			}
		}
		if start == i {
			return 0, fmt.Errorf("expected number at offset %d", start)
		}
		return strconv.ParseFloat(d[start:i], 64)
	}
	readNumbers := func(count int) ([]float64, error) {
		out := make([]float64, count)
		for k := range out {
			v, err := readNumber()
			if err != nil {
				return nil, err
			}
			out[k] = v
		}
		return out, nil
	}

	for {
		skipSep()
		if i >= n {
			break
		}
		cmd := d[i]
		i++
		switch cmd {
		case 'M':
			args, err := readNumbers(2)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Cmd: CmdMoveTo, Args: args})
		case 'L':
			args, err := readNumbers(2)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Cmd: CmdLineTo, Args: args})
		case 'Q':
			args, err := readNumbers(4)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Cmd: CmdQuadraticCurveTo, Args: args})
		case 'C':
			args, err := readNumbers(6)
			if err != nil {
				return nil, err
			}
			toks = append(toks, Token{Cmd: CmdCubicCurveTo, Args: args})
		case 'Z', 'z':
			toks = append(toks, Token{Cmd: CmdClose})
		default:
			return nil, fmt.Errorf("svgtoken: unsupported command %q at offset %d", cmd, i-1)
		}
	}
	return toks, nil
}

var _ = strings.TrimSpace // retained for future whitespace-normalizing callers
