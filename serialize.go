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

package vpath

import (
	"encoding/json"

	"seehuhn.de/go/geom/vec"
)

// jsonPoint is the {x,y} form used in Subpath's "points" convenience
// field.
type jsonPoint struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// segmentJSON is the union of every field any segment variant's tagged
// JSON form may carry; the per-type MarshalJSON methods and
// UnmarshalSegmentJSON only populate/read the subset that matches Type.
type segmentJSON struct {
	Type string `json:"type"`

	StartX, StartY float64 `json:"startX,omitempty"`
	EndX, EndY     float64 `json:"endX,omitempty"`

	ControlX, ControlY float64 `json:"controlX,omitempty"`

	Control1X, Control1Y float64 `json:"control1X,omitempty"`
	Control2X, Control2Y float64 `json:"control2X,omitempty"`

	CenterX, CenterY float64 `json:"centerX,omitempty"`
	Radius           float64 `json:"radius,omitempty"`
	RadiusX          float64 `json:"radiusX,omitempty"`
	RadiusY          float64 `json:"radiusY,omitempty"`
	Rotation         float64 `json:"rotation,omitempty"`
	StartAngle       float64 `json:"startAngle,omitempty"`
	EndAngle         float64 `json:"endAngle,omitempty"`
	Anticlockwise    bool    `json:"anticlockwise,omitempty"`
}

// MarshalJSON implements the tagged-union wire form for every segment
// variant.
func (l *Line) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{Type: "Line", StartX: l.A.X, StartY: l.A.Y, EndX: l.B.X, EndY: l.B.Y})
}

func (a *Arc) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{
		Type: "Arc", CenterX: a.Center.X, CenterY: a.Center.Y, Radius: a.Radius,
		StartAngle: a.StartAngle, EndAngle: a.EndAngle, Anticlockwise: a.Anticlockwise,
	})
}

func (e *EllipticalArc) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{
		Type: "EllipticalArc", CenterX: e.Center.X, CenterY: e.Center.Y,
		RadiusX: e.RadiusX, RadiusY: e.RadiusY, Rotation: e.Rotation,
		StartAngle: e.StartAngle, EndAngle: e.EndAngle, Anticlockwise: e.Anticlockwise,
	})
}

func (q *Quadratic) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{
		Type: "Quadratic", StartX: q.P0.X, StartY: q.P0.Y,
		ControlX: q.P1.X, ControlY: q.P1.Y, EndX: q.P2.X, EndY: q.P2.Y,
	})
}

func (c *Cubic) MarshalJSON() ([]byte, error) {
	return json.Marshal(segmentJSON{
		Type: "Cubic", StartX: c.P0.X, StartY: c.P0.Y,
		Control1X: c.P1.X, Control1Y: c.P1.Y,
		Control2X: c.P2.X, Control2Y: c.P2.Y,
		EndX: c.P3.X, EndY: c.P3.Y,
	})
}

// UnmarshalSegmentJSON decodes one tagged segment object into the
// concrete Segment it names.
func UnmarshalSegmentJSON(data []byte) (Segment, error) {
	var raw segmentJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, err
	}
	switch raw.Type {
	case "Line":
		return NewLine(vec.Vec2{X: raw.StartX, Y: raw.StartY}, vec.Vec2{X: raw.EndX, Y: raw.EndY})
	case "Arc":
		return NewArc(vec.Vec2{X: raw.CenterX, Y: raw.CenterY}, raw.Radius, raw.StartAngle, raw.EndAngle, raw.Anticlockwise)
	case "EllipticalArc":
		return NewEllipticalArc(vec.Vec2{X: raw.CenterX, Y: raw.CenterY}, raw.RadiusX, raw.RadiusY, raw.Rotation, raw.StartAngle, raw.EndAngle, raw.Anticlockwise)
	case "Quadratic":
		return NewQuadratic(vec.Vec2{X: raw.StartX, Y: raw.StartY}, vec.Vec2{X: raw.ControlX, Y: raw.ControlY}, vec.Vec2{X: raw.EndX, Y: raw.EndY})
	case "Cubic":
		return NewCubic(
			vec.Vec2{X: raw.StartX, Y: raw.StartY},
			vec.Vec2{X: raw.Control1X, Y: raw.Control1Y},
			vec.Vec2{X: raw.Control2X, Y: raw.Control2Y},
			vec.Vec2{X: raw.EndX, Y: raw.EndY},
		)
	default:
		return nil, newError(InvalidGeometry, "UnmarshalSegmentJSON", "unknown segment type %q", raw.Type)
	}
}

type subpathJSON struct {
	Type     string            `json:"type"`
	Segments []json.RawMessage `json:"segments"`
	Points   []jsonPoint       `json:"points"`
	Closed   bool              `json:"closed"`
}

// MarshalJSON implements Subpath's tagged wire form. Points lists the
// start of each segment plus the end of the last, a convenience
// redundant with Segments that lets a renderer walk the outline
// without decoding every segment.
func (sp *Subpath) MarshalJSON() ([]byte, error) {
	out := subpathJSON{Type: "Subpath", Closed: sp.Closed}
	for _, s := range sp.Segments {
		raw, err := json.Marshal(s)
		if err != nil {
			return nil, err
		}
		out.Segments = append(out.Segments, raw)
		p := s.Start()
		out.Points = append(out.Points, jsonPoint{X: p.X, Y: p.Y})
	}
	if len(sp.Segments) > 0 {
		e := sp.Segments[len(sp.Segments)-1].End()
		out.Points = append(out.Points, jsonPoint{X: e.X, Y: e.Y})
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a tagged Subpath object.
func (sp *Subpath) UnmarshalJSON(data []byte) error {
	var raw subpathJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "Subpath" {
		return newError(InvalidGeometry, "Subpath.UnmarshalJSON", "unexpected type %q", raw.Type)
	}
	segs := make([]Segment, len(raw.Segments))
	for i, rm := range raw.Segments {
		s, err := UnmarshalSegmentJSON(rm)
		if err != nil {
			return err
		}
		segs[i] = s
	}
	built, err := NewSubpath(segs, raw.Closed)
	if err != nil {
		return err
	}
	*sp = *built
	return nil
}

type shapeJSON struct {
	Type     string            `json:"type"`
	Subpaths []json.RawMessage `json:"subpaths"`
}

// MarshalJSON implements Shape's tagged wire form.
func (sh *Shape) MarshalJSON() ([]byte, error) {
	out := shapeJSON{Type: "Shape"}
	for _, sp := range sh.Subpaths {
		raw, err := json.Marshal(sp)
		if err != nil {
			return nil, err
		}
		out.Subpaths = append(out.Subpaths, raw)
	}
	return json.Marshal(out)
}

// UnmarshalJSON decodes a tagged Shape object.
func (sh *Shape) UnmarshalJSON(data []byte) error {
	var raw shapeJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	if raw.Type != "Shape" {
		return newError(InvalidGeometry, "Shape.UnmarshalJSON", "unexpected type %q", raw.Type)
	}
	subs := make([]*Subpath, len(raw.Subpaths))
	for i, rm := range raw.Subpaths {
		sp := &Subpath{}
		if err := json.Unmarshal(rm, sp); err != nil {
			return err
		}
		subs[i] = sp
	}
	sh.Subpaths = subs
	sh.boundsCache = nil
	return nil
}
