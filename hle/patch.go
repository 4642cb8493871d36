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
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/symbols"
)

// primary opcode 1 is unused by the CPU. the execution loop treats it as a
// trap into the host, with the hook index in the low bits.
const trapOpcode uint32 = 1 << 26

// the system library functions replaced with host implementations. order
// matters: the position in this list is the hook index baked into the trap
// opcode.
var hookedFunctions = []string{
	"OSReport",
	"OSPanic",
	"PanicAlert",
	"__write_console",
	"printf",
	"puts",
	"HBReload",
}

func hookIndex(name string) (uint32, bool) {
	for i, n := range hookedFunctions {
		if n == name {
			return uint32(i), true
		}
	}
	return 0, false
}

// PatchFunctions writes a trap opcode over the entry point of every symbol
// in the database naming a hooked function. Safe to call repeatedly; a
// function already carrying its trap is simply rewritten.
func PatchFunctions(mem *memory.Memory, db *symbols.Database) {
	n := 0
	db.Each(func(sym symbols.Symbol) {
		if idx, ok := hookIndex(sym.Name); ok {
			mem.Write32(sym.Address, trapOpcode|idx)
			n++
		}
	})
	if n > 0 {
		logger.Logf("hle", "%d function(s) patched", n)
	}
}

// PatchFixedFunctions installs the hooks that live at fixed addresses
// regardless of what was booted. Idempotent and always safe.
func PatchFixedFunctions(mem *memory.Memory) {
	// the homebrew loader stub convention: a reload hook at 0x80001800
	// marked by the string signature that loaders look for
	idx, _ := hookIndex("HBReload")
	mem.Write32(0x80001800, trapOpcode|idx)
	mem.CopyToGuest(0x80001804, []byte("STUBHAXX"))
}

// IsHooked returns true if the word at the address carries a trap opcode.
func IsHooked(mem *memory.Memory, address uint32) bool {
	return mem.Read32(address)&0xfc000000 == trapOpcode
}
