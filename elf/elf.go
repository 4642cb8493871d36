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

// Package elf loads 32-bit big-endian PowerPC ELF executables into guest
// memory. Homebrew toolchains produce ELF rather than DOL containers.
//
// Only loadable program segments are considered. Relocations, dynamic
// linking and section level detail are not supported, which matches what
// the console itself could run.
package elf

import (
	"encoding/binary"
	"os"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hardware/memory"
)

// sentinel error patterns for the elf package.
const (
	InvalidContainer = "elf: not a loadable PowerPC ELF"
)

const (
	elfClass32    = 1
	elfDataMSB    = 2
	elfTypeExec   = 2
	elfMachinePPC = 20

	ptLoad = 1
)

type segment struct {
	offset   uint32
	vaddr    uint32
	fileSize uint32
	memSize  uint32
}

// Executable is a parsed ELF executable.
type Executable struct {
	segments []segment
	entry    uint32
	image    []byte
}

// NewExecutable parses the ELF executable in data. The data slice is
// retained by the returned Executable.
func NewExecutable(data []byte) (*Executable, error) {
	if len(data) < 0x34 {
		return nil, curated.Errorf(InvalidContainer)
	}

	if data[0] != 0x7f || data[1] != 'E' || data[2] != 'L' || data[3] != 'F' {
		return nil, curated.Errorf(InvalidContainer)
	}
	if data[4] != elfClass32 || data[5] != elfDataMSB {
		return nil, curated.Errorf(InvalidContainer)
	}
	if binary.BigEndian.Uint16(data[0x10:]) != elfTypeExec {
		return nil, curated.Errorf(InvalidContainer)
	}
	if binary.BigEndian.Uint16(data[0x12:]) != elfMachinePPC {
		return nil, curated.Errorf(InvalidContainer)
	}

	ex := &Executable{
		entry: binary.BigEndian.Uint32(data[0x18:]),
		image: data,
	}

	phoff := binary.BigEndian.Uint32(data[0x1c:])
	phentsize := uint32(binary.BigEndian.Uint16(data[0x2a:]))
	phnum := uint32(binary.BigEndian.Uint16(data[0x2c:]))

	for i := uint32(0); i < phnum; i++ {
		o := phoff + i*phentsize
		if uint64(o)+0x20 > uint64(len(data)) {
			return nil, curated.Errorf(InvalidContainer)
		}
		if binary.BigEndian.Uint32(data[o:]) != ptLoad {
			continue
		}
		seg := segment{
			offset:   binary.BigEndian.Uint32(data[o+0x04:]),
			vaddr:    binary.BigEndian.Uint32(data[o+0x08:]),
			fileSize: binary.BigEndian.Uint32(data[o+0x10:]),
			memSize:  binary.BigEndian.Uint32(data[o+0x14:]),
		}
		if uint64(seg.offset)+uint64(seg.fileSize) > uint64(len(data)) {
			return nil, curated.Errorf(InvalidContainer)
		}
		ex.segments = append(ex.segments, seg)
	}

	if len(ex.segments) == 0 {
		return nil, curated.Errorf(InvalidContainer)
	}

	return ex, nil
}

// NewExecutableFromFile reads and parses the ELF executable at the given
// path.
func NewExecutableFromFile(path string) (*Executable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf("elf: %v", err)
	}
	return NewExecutable(data)
}

// EntryPoint returns the address execution should start from.
func (ex *Executable) EntryPoint() uint32 {
	return ex.entry
}

// Platform reports which console the executable is meant for, using the
// same MEM2 heuristic as the dol package.
func (ex *Executable) Platform() dvd.Platform {
	inMem2 := func(addr uint32) bool {
		return addr&0x1fffffff >= 0x10000000
	}

	for _, seg := range ex.segments {
		if seg.memSize > 0 && inMem2(seg.vaddr) {
			return dvd.PlatformWii
		}
	}
	if inMem2(ex.entry) {
		return dvd.PlatformWii
	}
	return dvd.PlatformGameCube
}

// Load copies the executable's loadable segments into guest memory. Any
// part of a segment without file content is zeroed.
func (ex *Executable) Load(mem *memory.Memory) {
	for _, seg := range ex.segments {
		if seg.memSize > seg.fileSize {
			mem.Zero(seg.vaddr+seg.fileSize, seg.memSize-seg.fileSize)
		}
		if seg.fileSize > 0 {
			mem.CopyToGuest(seg.vaddr, ex.image[seg.offset:seg.offset+seg.fileSize])
		}
	}
}
