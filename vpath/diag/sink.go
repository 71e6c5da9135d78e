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

// Package diag provides the diagnostic sink used by the intersector and
// the CAG pipeline to report recoverable anomalies (degenerate candidates,
// faces dropped for lacking a closed loop) without turning them into
// errors. Shape arithmetic is best-effort: "no intersections found" is
// always a legal outcome, so these notifications are advisory only.
package diag

import "log"

// Sink receives diagnostic messages. The zero value of Discard is a valid
// no-op sink.
type Sink interface {
	Logf(format string, args ...any)
}

// Discard is a Sink that drops every message.
type Discard struct{}

func (Discard) Logf(format string, args ...any) {}

// Standard is a Sink that writes through the standard library logger.
type Standard struct {
	*log.Logger
}

func (s Standard) Logf(format string, args ...any) {
	if s.Logger == nil {
		log.Printf(format, args...)
		return
	}
	s.Logger.Printf(format, args...)
}
