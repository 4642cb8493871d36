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

package memory_test

import (
	"testing"

	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/test"
)

func TestByteOrder(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write32(0x80000000, 0x475a4c45)
	test.Equate(t, mem.Read8(0x80000000), uint8('G'))
	test.Equate(t, mem.Read8(0x80000001), uint8('Z'))
	test.Equate(t, mem.Read8(0x80000002), uint8('L'))
	test.Equate(t, mem.Read8(0x80000003), uint8('E'))
	test.EquateHex(t, mem.Read32(0x80000000), 0x475a4c45)
}

func TestMirrors(t *testing.T) {
	mem := memory.NewMemory()

	// cached and uncached mirrors resolve to the same physical memory, as
	// does the plain physical address
	mem.Write32(0x80003100, 0xdeadbeef)
	test.EquateHex(t, mem.Read32(0xc0003100), 0xdeadbeef)
	test.EquateHex(t, mem.Read32(0x00003100), 0xdeadbeef)

	// MEM2 mirrors
	mem.Write32(0x90000020, 0x0000003a)
	test.EquateHex(t, mem.Read32(0xd0000020), 0x0000003a)
}

func TestCopyToGuest(t *testing.T) {
	mem := memory.NewMemory()

	mem.CopyToGuest(0x81200000, []byte{0x01, 0x02, 0x03, 0x04})
	test.EquateHex(t, mem.Read32(0x81200000), 0x01020304)

	// unmapped copies are dropped
	mem.CopyToGuest(0x18000000, []byte{0xff})
	test.Equate(t, mem.Read8(0x18000000), uint8(0))
}

func TestZero(t *testing.T) {
	mem := memory.NewMemory()

	mem.Write32(0x80000100, 0xffffffff)
	mem.Zero(0x80000100, 2)
	test.EquateHex(t, mem.Read32(0x80000100), 0x0000ffff)
}
