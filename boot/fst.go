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
	"github.com/gophercube/gophercube/logger"
)

// the fixed low memory convention guest code relies on to find the disc
// header and the file system table. none of these addresses can change.
const (
	discHeaderAddress = 0x80000000
	discHeaderLength  = 0x20
	gameIDCopyAddress = 0x80003180

	// volume header fields describing the FST
	fstOffsetField  = 0x0424
	fstSizeField    = 0x0428
	fstMaxSizeField = 0x042c

	// the arena is carved downwards from the top of MEM1, below the
	// exception vector mirror
	arenaCeiling = 0x817fffff

	// low memory slots holding the arena boundary and FST location
	arenaHighSlot  = 0x80000034
	fstAddressSlot = 0x80000038
	fstMaxSizeSlot = 0x8000003c
)

// dvdRead copies length bytes from the mounted volume into guest memory.
func (s *Session) dvdRead(offset uint64, address uint32, length uint32, decrypt bool) error {
	buffer := make([]byte, length)
	if err := s.Console.DVD.Volume().Read(offset, buffer, decrypt); err != nil {
		return err
	}
	s.Console.Mem.CopyToGuest(address, buffer)
	return nil
}

// LoadFST copies the disc's file system table into the arena at the top of
// MEM1 and fills in the low memory slots guest code reads to find it. A
// no-op when no disc is mounted.
//
// The wii flag selects the 4 byte addressing unit used by Wii volume
// headers; GameCube headers count in bytes.
func (s *Session) LoadFST(wii bool) {
	if !s.Console.DVD.IsDiscInside() {
		return
	}
	vol := s.Console.DVD.Volume()
	mem := s.Console.Mem

	// copy of the disc header, and a second copy of the game id
	if err := s.dvdRead(0, discHeaderAddress, discHeaderLength, false); err != nil {
		logger.Logf("boot", "fst: %v", err)
		return
	}
	mem.Write32(gameIDCopyAddress, mem.Read32(discHeaderAddress))

	shift := uint32(0)
	if wii {
		shift = 2
	}

	fstOffset, err1 := vol.ReadWord(fstOffsetField, wii)
	fstSize, err2 := vol.ReadWord(fstSizeField, wii)
	maxFstSize, err3 := vol.ReadWord(fstMaxSizeField, wii)
	if err1 != nil || err2 != nil || err3 != nil {
		logger.Log("boot", "fst: volume header unreadable")
		return
	}

	// greatest 32 byte aligned address that leaves room for the table
	arenaHigh := (arenaCeiling - (maxFstSize << shift)) &^ 0x1f
	mem.Write32(arenaHighSlot, arenaHigh)

	if err := s.dvdRead(uint64(fstOffset)<<shift, arenaHigh, fstSize<<shift, wii); err != nil {
		logger.Logf("boot", "fst: %v", err)
		return
	}
	mem.Write32(fstAddressSlot, arenaHigh)
	mem.Write32(fstMaxSizeSlot, maxFstSize<<shift)

	logger.Logf("boot", "fst at %#08x (%#x bytes)", arenaHigh, fstSize<<shift)
}
