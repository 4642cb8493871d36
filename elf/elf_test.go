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

package elf_test

import (
	"encoding/binary"
	"testing"

	"github.com/gophercube/gophercube/elf"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/test"
)

// buildELF returns a single PT_LOAD executable with the given load address
// and entry point.
func buildELF(vaddr uint32, entry uint32, content []byte) []byte {
	const (
		ehsize = 0x34
		phsize = 0x20
	)

	data := make([]byte, ehsize+phsize+len(content))

	// identity
	copy(data[0:], []byte{0x7f, 'E', 'L', 'F', 1, 2, 1})

	// type, machine, version, entry
	binary.BigEndian.PutUint16(data[0x10:], 2)
	binary.BigEndian.PutUint16(data[0x12:], 20)
	binary.BigEndian.PutUint32(data[0x14:], 1)
	binary.BigEndian.PutUint32(data[0x18:], entry)

	// program header table
	binary.BigEndian.PutUint32(data[0x1c:], ehsize)
	binary.BigEndian.PutUint16(data[0x2a:], phsize)
	binary.BigEndian.PutUint16(data[0x2c:], 1)

	// the one PT_LOAD segment
	o := uint32(ehsize)
	binary.BigEndian.PutUint32(data[o:], 1)
	binary.BigEndian.PutUint32(data[o+0x04:], ehsize+phsize)
	binary.BigEndian.PutUint32(data[o+0x08:], vaddr)
	binary.BigEndian.PutUint32(data[o+0x10:], uint32(len(content)))
	binary.BigEndian.PutUint32(data[o+0x14:], uint32(len(content))+8)

	copy(data[ehsize+phsize:], content)
	return data
}

func TestValidExecutable(t *testing.T) {
	data := buildELF(0x80003100, 0x80003100, []byte{0x7c, 0x08, 0x02, 0xa6})

	ex, err := elf.NewExecutable(data)
	test.ExpectedSuccess(t, err)
	test.EquateHex(t, ex.EntryPoint(), 0x80003100)
}

func TestInvalidExecutable(t *testing.T) {
	// not ELF at all
	_, err := elf.NewExecutable([]byte("MZ"))
	test.ExpectedFailure(t, err)

	// wrong machine
	data := buildELF(0x80003100, 0x80003100, []byte{0x60, 0x00, 0x00, 0x00})
	binary.BigEndian.PutUint16(data[0x12:], 3)
	_, err = elf.NewExecutable(data)
	test.ExpectedFailure(t, err)
}

func TestLoadZeroesBSS(t *testing.T) {
	content := []byte{0x7c, 0x08, 0x02, 0xa6}
	data := buildELF(0x80003100, 0x80003100, content)

	ex, err := elf.NewExecutable(data)
	test.ExpectedSuccess(t, err)

	mem := memory.NewMemory()

	// dirty the bytes beyond the file image. Load() must zero them
	mem.Write32(0x80003104, 0xffffffff)
	mem.Write32(0x80003108, 0xffffffff)

	ex.Load(mem)
	test.EquateHex(t, mem.Read32(0x80003100), 0x7c0802a6)
	test.EquateHex(t, mem.Read32(0x80003104), 0)
	test.EquateHex(t, mem.Read32(0x80003108), 0)
}
