// This file is part of GopherCube.
//
// GopherCube is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// GopherCube is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with GopherCube.  If not, see <https://www.gnu.org/licenses/>.

// Package notifications is the narrow channel from the emulation core back
// to whatever is hosting it. The host may be the command line program or a
// full debugger window; the core does not care which.
package notifications

// Notice describes events the host may want to present to the user or react
// to in its own interface.
type Notice string

// List of defined notifications.
const (
	// a symbol map has been loaded into the symbol database
	NotifyMapLoaded Notice = "NotifyMapLoaded"

	// an executable has been loaded by a boot strategy that supports
	// automatic breakpoints. the debugger should install them now
	NotifyAutoBreakpoints Notice = "NotifyAutoBreakpoints"
)

// Notify is implemented by the host environment.
type Notify interface {
	// Notify posts a notice to the host. returned errors are logged, never
	// acted on
	Notify(notice Notice) error

	// FatalAlert presents an error to the user that ends the current
	// operation. it must not block indefinitely
	FatalAlert(msg string)
}

// Stub is a Notify implementation that swallows every notice. Useful as a
// default and in tests.
type Stub struct{}

// Notify implements the Notify interface.
func (Stub) Notify(notice Notice) error {
	return nil
}

// FatalAlert implements the Notify interface.
func (Stub) FatalAlert(msg string) {
}
