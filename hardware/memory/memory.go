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

package memory

import (
	"encoding/binary"

	"github.com/gophercube/gophercube/logger"
)

// Sizes and physical base addresses of the two main memory banks. MEM2 is
// only present on the Wii but is always allocated; the few megabytes are not
// worth a second code path.
const (
	Mem1Size uint32 = 0x01800000
	Mem2Size uint32 = 0x04000000
	Mem2Base uint32 = 0x10000000
)

// mask that reduces an effective address in any of the cached/uncached
// mirrors (0x80000000, 0xc0000000, and the Wii 0x90000000/0xd0000000
// windows) to a physical address
const physMask = 0x1fffffff

// Memory is the emulated main memory. Addresses are accepted as either
// effective addresses in one of the standard mirrors or as plain physical
// addresses; both reduce to the same banks.
type Memory struct {
	mem1 []byte
	mem2 []byte
}

// NewMemory is the preferred method of initialisation for the Memory type.
func NewMemory() *Memory {
	return &Memory{
		mem1: make([]byte, Mem1Size),
		mem2: make([]byte, Mem2Size),
	}
}

// bank returns the backing slice and offset for the address, or nil if the
// address is not backed by main memory.
func (m *Memory) bank(address uint32) ([]byte, uint32) {
	p := address & physMask
	if p < Mem1Size {
		return m.mem1, p
	}
	if p >= Mem2Base && p < Mem2Base+Mem2Size {
		return m.mem2, p - Mem2Base
	}
	return nil, 0
}

// Read8 returns the byte at the address. Unmapped reads return zero.
func (m *Memory) Read8(address uint32) uint8 {
	b, o := m.bank(address)
	if b == nil {
		logger.Logf("memory", "read from unmapped address %#08x", address)
		return 0
	}
	return b[o]
}

// Read32 returns the big-endian word at the address.
func (m *Memory) Read32(address uint32) uint32 {
	b, o := m.bank(address)
	if b == nil || o+4 > uint32(len(b)) {
		logger.Logf("memory", "read from unmapped address %#08x", address)
		return 0
	}
	return binary.BigEndian.Uint32(b[o:])
}

// Write8 writes the byte to the address. Unmapped writes are dropped.
func (m *Memory) Write8(address uint32, value uint8) {
	b, o := m.bank(address)
	if b == nil {
		logger.Logf("memory", "write to unmapped address %#08x", address)
		return
	}
	b[o] = value
}

// Write32 writes the word to the address in big-endian byte order.
func (m *Memory) Write32(address uint32, value uint32) {
	b, o := m.bank(address)
	if b == nil || o+4 > uint32(len(b)) {
		logger.Logf("memory", "write to unmapped address %#08x", address)
		return
	}
	binary.BigEndian.PutUint32(b[o:], value)
}

// CopyToGuest copies host data into guest memory starting at the address.
// The copy is truncated if it runs off the end of the bank.
func (m *Memory) CopyToGuest(address uint32, data []byte) {
	b, o := m.bank(address)
	if b == nil {
		logger.Logf("memory", "copy to unmapped address %#08x", address)
		return
	}
	n := copy(b[o:], data)
	if n < len(data) {
		logger.Logf("memory", "copy to %#08x truncated (%d of %d bytes)", address, n, len(data))
	}
}

// Zero fills length bytes of guest memory starting at the address.
func (m *Memory) Zero(address uint32, length uint32) {
	b, o := m.bank(address)
	if b == nil {
		return
	}
	end := o + length
	if end > uint32(len(b)) {
		end = uint32(len(b))
	}
	for i := o; i < end; i++ {
		b[i] = 0
	}
}
