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

// Package hardware ties the emulated subsystems together into a single
// console.
package hardware

import (
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/hardware/vi"
)

// Console is the emulated machine. All subsystems hang off this type.
type Console struct {
	CPU *gekko.State
	Mem *memory.Memory
	DVD *dvd.Drive
	VI  *vi.VideoInterface
}

// NewConsole creates a new console and everything associated with the
// hardware.
func NewConsole() *Console {
	return &Console{
		CPU: gekko.NewState(),
		Mem: memory.NewMemory(),
		DVD: dvd.NewDrive(),
		VI:  vi.NewVideoInterface(),
	}
}
