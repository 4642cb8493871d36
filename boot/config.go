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

package boot

import (
	"path/filepath"
	"strings"

	"github.com/gophercube/gophercube/hardware/dvd"
)

// Type selects the boot strategy.
type Type int

// List of boot types.
const (
	// a disc image (GCM/ISO)
	TypeDisc Type = iota

	// raw executables
	TypeDOL
	TypeELF

	// a title installed on the emulated NAND
	TypeNAND

	// the firmware image itself, without a game
	TypeIPL

	// playback of a recorded command stream. the player drives the
	// hardware directly so there is nothing for boot to do
	TypeFifoLog
)

func (t Type) String() string {
	switch t {
	case TypeDisc:
		return "disc image"
	case TypeDOL:
		return "DOL executable"
	case TypeELF:
		return "ELF executable"
	case TypeNAND:
		return "installed title"
	case TypeIPL:
		return "firmware"
	case TypeFifoLog:
		return "fifo log"
	}
	return "unknown"
}

// TypeFromFilename guesses the boot type from the file extension.
func TypeFromFilename(filename string) Type {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".gcm", ".iso":
		return TypeDisc
	case ".dol":
		return TypeDOL
	case ".elf":
		return TypeELF
	case ".wad":
		return TypeNAND
	case ".dff":
		return TypeFifoLog
	}
	return Type(-1)
}

// Config is everything a boot attempt needs to know. It is built once by
// the session lifecycle, before the single BootUp() call, and treated as
// read-only from then on. The one exception is the Wii flag, which a disc
// boot corrects to match the mounted volume.
type Config struct {
	Type     Type
	Filename string

	// the game id used for map file and patch naming when the boot type
	// carries no better source for one
	GameID string

	Region dvd.Region

	// console mode flags
	Wii   bool
	PAL60 bool

	// prefer high level firmware bring-up over a firmware dump
	HLEBS2 bool

	// a debugging session changes what boot is allowed to patch
	Debugging bool

	// host directory to present as a virtual disc. takes precedence over
	// DefaultDisc
	DiscRoot string

	// disc image to mount for boot types that are not themselves discs
	DefaultDisc string

	// location of the firmware dump
	IPLPath string
}
