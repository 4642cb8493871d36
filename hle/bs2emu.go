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

package hle

import (
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/dol"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/logger"
)

// sentinel error patterns for the hle package.
const (
	NoDiscToBootstrap = "hle: no disc to bootstrap from"
)

// IOS58 is the system software version assumed when there is no title
// metadata to read a version from. It is the version the Homebrew Channel
// runs under.
const IOS58 uint64 = 0x000000010000003a

// volume header offset of the main executable location.
const bootExecutableOffset = 0x420

// SetupGCMemory writes the low memory values the real bootstrap program
// leaves behind on a GameCube. Guest code reads these without ever checking
// who put them there.
func SetupGCMemory(console *hardware.Console, ntsc bool) {
	mem := console.Mem

	// boot magic: booted from bootrom
	mem.Write32(0x80000020, 0x0d15ea5e)

	// version and physical memory size
	mem.Write32(0x80000024, 0x00000001)
	mem.Write32(0x80000028, 0x01800000)

	// console type. devkit id; the retail id is 0x00000003
	mem.Write32(0x8000002c, 0x10000006)

	// fake the video mode initialisation done by the firmware
	if ntsc {
		mem.Write32(0x800000cc, 0)
	} else {
		mem.Write32(0x800000cc, 1)
	}

	// ARAM size
	mem.Write32(0x800000d0, 0x01000000)

	// bus and cpu clock speed
	mem.Write32(0x800000f8, 0x09a7ec80)
	mem.Write32(0x800000fc, 0x1cf7c580)

	logger.Log("hle", "gamecube low memory initialised")
}

// SetupWiiMemory writes the low memory values the system menu leaves behind
// on a Wii, with iosTitleID naming the system software version guest code
// will believe is running.
func SetupWiiMemory(console *hardware.Console, iosTitleID uint64) {
	mem := console.Mem

	// boot magic and memory sizes, as on the GameCube
	mem.Write32(0x80000020, 0x0d15ea5e)
	mem.Write32(0x80000028, 0x01800000)

	// console type. retail Wii
	mem.Write32(0x8000002c, 0x00000023)

	// bus and cpu clock speed
	mem.Write32(0x800000f8, 0x0e7be2c0)
	mem.Write32(0x800000fc, 0x2b73a840)

	// MEM1 and MEM2 sizes, physical and simulated
	mem.Write32(0x80003100, 0x01800000)
	mem.Write32(0x80003104, 0x01800000)
	mem.Write32(0x80003118, 0x04000000)
	mem.Write32(0x8000311c, 0x04000000)
	mem.Write32(0x80003120, 0x93400000)

	// MEM2 arena and the region reserved for the system software
	mem.Write32(0x80003124, 0x90000800)
	mem.Write32(0x80003128, 0x933e0000)
	mem.Write32(0x80003130, 0x933e0000)
	mem.Write32(0x80003134, 0x93400000)

	// hollywood chip revision
	mem.Write32(0x80003138, 0x00000011)

	// running system software: version in the high halfword, revision in
	// the low
	mem.Write32(0x80003140, uint32(iosTitleID&0xffff)<<16|0x00000f00)
	mem.Write32(0x80003188, uint32(iosTitleID>>32))
	mem.Write32(0x8000318c, uint32(iosTitleID))

	logger.Logf("hle", "wii low memory initialised (ios title %016x)", iosTitleID)
}

// EmulatedBS2 stands in for the apploader stage of the firmware: it
// initialises low memory and pulls the main executable off the mounted
// disc, leaving the program counter at its entry point.
//
// An error means high level bring-up is not possible, usually because no
// disc is mounted or the disc has no main executable where the volume
// header says one should be.
func EmulatedBS2(console *hardware.Console, wii bool) error {
	if !console.DVD.IsDiscInside() {
		return curated.Errorf(NoDiscToBootstrap)
	}
	vol := console.DVD.Volume()

	if wii {
		SetupWiiMemory(console, IOS58)
	} else {
		SetupGCMemory(console, vol.Region().IsNTSC())
	}

	// location of the main executable. stored in 4 byte units on the wii
	off, err := vol.ReadWord(bootExecutableOffset, wii)
	if err != nil {
		return curated.Errorf("hle: %v", err)
	}
	offset := uint64(off)
	if wii {
		offset <<= 2
	}
	if offset == 0 {
		return curated.Errorf("hle: volume has no main executable")
	}

	ex, err := dol.NewExecutableFromVolume(vol, offset, wii)
	if err != nil {
		return curated.Errorf("hle: %v", err)
	}

	ex.Load(console.Mem)
	console.CPU.PC = ex.EntryPoint()

	logger.Logf("hle", "bootstrapped %s from disc (entry %#08x)", vol.GameID(), console.CPU.PC)
	return nil
}
