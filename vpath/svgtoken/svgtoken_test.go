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

package svgtoken

import (
	"testing"
)

func TestTokenizeAndBuildTriangle(t *testing.T) {
	toks, err := Tokenize("M10,10 L90,10 L50,90 Z")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if len(toks) != 4 {
		t.Fatalf("expected 4 tokens, got %d", len(toks))
	}
	sh, err := Build(toks)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(sh.Subpaths) != 1 {
		t.Fatalf("expected 1 subpath, got %d", len(sh.Subpaths))
	}
	sp := sh.Subpaths[0]
	if !sp.Closed {
		t.Fatal("expected closed subpath")
	}
	if len(sp.Segments) != 3 {
		t.Fatalf("expected 3 line segments, got %d", len(sp.Segments))
	}
}

func TestTokenizeCubic(t *testing.T) {
	toks, err := Tokenize("M0,0 C10,0 10,10 0,10")
	if err != nil {
		t.Fatalf("Tokenize: %v", err)
	}
	if toks[1].Cmd != CmdCubicCurveTo || len(toks[1].Args) != 6 {
		t.Fatalf("unexpected cubic token: %+v", toks[1])
	}
}

func TestTokenizeRejectsArcCommand(t *testing.T) {
	if _, err := Tokenize("M0,0 A5,5 0 0,1 10,0"); err == nil {
		t.Fatal("expected Tokenize to reject the 'A' command")
	}
}

func TestBuildRejectsWrongArgCount(t *testing.T) {
	_, err := Build([]Token{{Cmd: CmdLineTo, Args: []float64{1}}})
	if err == nil {
		t.Fatal("expected error for wrong arg count")
	}
}
