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

package gekko

// State is the Gekko register file, or at least the subset of it that is
// touched outside of the execution loop. Boot code writes documented fields
// and never reads them back.
type State struct {
	GPR [32]uint32
	SPR [1024]uint32
	MSR uint32
	PC  uint32

	// called whenever a batch of BAT register writes has completed. the
	// execution loop uses this to rebuild its fast translation tables
	batUpdated func()
}

// NewState is the preferred method of initialisation for the State type.
func NewState() *State {
	return &State{}
}

// SetBATUpdateHandler registers the function to be called by
// NotifyBATChange(). A nil handler is allowed.
func (s *State) SetBATUpdateHandler(f func()) {
	s.batUpdated = f
}

// NotifyBATChange tells the execution loop that one or more BAT registers
// have changed. Boot code must call this after every group of BAT writes.
func (s *State) NotifyBATChange() {
	if s.batUpdated != nil {
		s.batUpdated()
	}
}
