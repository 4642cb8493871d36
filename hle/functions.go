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
	"fmt"

	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/symbols"
)

// instruction patterns marking function boundaries.
const (
	opMflr     uint32 = 0x7c0802a6
	opBlr      uint32 = 0x4e800020
	opStwuR1   uint32 = 0x94210000
	opStwuMask uint32 = 0xffff8000
)

// cap on the size recorded for a function without a visible return.
const maxFunctionSize = 0x4000

// FindFunctions scans guest code between start and end for function
// prologues and adds a placeholder symbol for each one found. Returns the
// number of functions added.
//
// The scan recognises the common compiler prologue: a stwu of the stack
// pointer with a negative offset followed by mflr. Leaf functions without a
// frame are missed, which is acceptable for the purpose of seeding the
// signature scan.
func FindFunctions(mem *memory.Memory, db *symbols.Database, start uint32, end uint32) int {
	n := 0
	for addr := start; addr+8 <= end; addr += 4 {
		// stwu r1, -N(r1). the offset is negative so bit 15 of the
		// instruction is set
		if mem.Read32(addr)&opStwuMask != opStwuR1|0x8000 {
			continue
		}
		if mem.Read32(addr+4) != opMflr {
			continue
		}

		size := functionSize(mem, addr, end)
		db.Add(symbols.Symbol{
			Address: addr,
			Size:    size,
			Name:    fmt.Sprintf("zz_%08x_", addr),
		})
		n++

		// resume scanning after this function
		addr += size - 4
	}

	if n > 0 {
		logger.Logf("hle", "%d function(s) found by code scan", n)
	}
	return n
}

// functionSize returns the number of bytes up to and including the first
// blr instruction.
func functionSize(mem *memory.Memory, addr uint32, end uint32) uint32 {
	for o := uint32(0); o < maxFunctionSize && addr+o+4 <= end; o += 4 {
		if mem.Read32(addr+o) == opBlr {
			return o + 4
		}
	}
	return maxFunctionSize
}
