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

// Package dol loads DOL containers, the raw executable format used by the
// console's system software. A DOL is a fixed 256 byte header describing up
// to seven text and eleven data sections, a BSS range and an entry point.
package dol

import (
	"encoding/binary"
	"os"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hardware/memory"
)

// sentinel error patterns for the dol package.
const (
	InvalidContainer = "dol: not a valid DOL container"
)

const (
	numTextSections = 7
	numDataSections = 11
	headerSize      = 0x100
)

type section struct {
	offset  uint32
	address uint32
	size    uint32
}

// Executable is a parsed DOL container.
type Executable struct {
	text [numTextSections]section
	data [numDataSections]section

	bssAddress uint32
	bssSize    uint32
	entry      uint32

	// the whole container, including the header
	image []byte
}

// NewExecutable parses the DOL container in data. The data slice is retained
// by the returned Executable.
func NewExecutable(data []byte) (*Executable, error) {
	if len(data) < headerSize {
		return nil, curated.Errorf(InvalidContainer)
	}

	ex := &Executable{image: data}

	for i := 0; i < numTextSections; i++ {
		ex.text[i].offset = binary.BigEndian.Uint32(data[0x00+i*4:])
		ex.text[i].address = binary.BigEndian.Uint32(data[0x48+i*4:])
		ex.text[i].size = binary.BigEndian.Uint32(data[0x90+i*4:])
	}
	for i := 0; i < numDataSections; i++ {
		ex.data[i].offset = binary.BigEndian.Uint32(data[0x1c+i*4:])
		ex.data[i].address = binary.BigEndian.Uint32(data[0x64+i*4:])
		ex.data[i].size = binary.BigEndian.Uint32(data[0xac+i*4:])
	}
	ex.bssAddress = binary.BigEndian.Uint32(data[0xd8:])
	ex.bssSize = binary.BigEndian.Uint32(data[0xdc:])
	ex.entry = binary.BigEndian.Uint32(data[0xe0:])

	// sanity check the sections against the container size. a section that
	// points outside the container means this is not a DOL at all
	for _, s := range append(ex.text[:], ex.data[:]...) {
		if s.size == 0 {
			continue
		}
		if uint64(s.offset)+uint64(s.size) > uint64(len(data)) {
			return nil, curated.Errorf(InvalidContainer)
		}
		if s.address&0x80000000 == 0 {
			return nil, curated.Errorf(InvalidContainer)
		}
	}

	if ex.entry&0x80000000 == 0 {
		return nil, curated.Errorf(InvalidContainer)
	}

	return ex, nil
}

// NewExecutableFromFile reads and parses the DOL container at the given
// path.
func NewExecutableFromFile(path string) (*Executable, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf("dol: %v", err)
	}
	return NewExecutable(data)
}

// NewExecutableFromVolume reads and parses a DOL container embedded in a
// disc volume at the given offset. The container size is not recorded on
// disc so it is recovered from the section table in the header.
func NewExecutableFromVolume(vol dvd.Volume, offset uint64, decrypt bool) (*Executable, error) {
	hdr := make([]byte, headerSize)
	if err := vol.Read(offset, hdr, decrypt); err != nil {
		return nil, curated.Errorf("dol: %v", err)
	}

	// the container extends to the end of the furthest section
	extent := uint32(headerSize)
	for i := 0; i < numTextSections+numDataSections; i++ {
		var o, s uint32
		if i < numTextSections {
			o = binary.BigEndian.Uint32(hdr[0x00+i*4:])
			s = binary.BigEndian.Uint32(hdr[0x90+i*4:])
		} else {
			j := i - numTextSections
			o = binary.BigEndian.Uint32(hdr[0x1c+j*4:])
			s = binary.BigEndian.Uint32(hdr[0xac+j*4:])
		}
		if s > 0 && o+s > extent {
			extent = o + s
		}
	}

	data := make([]byte, extent)
	if err := vol.Read(offset, data, decrypt); err != nil {
		return nil, curated.Errorf("dol: %v", err)
	}
	return NewExecutable(data)
}

// EntryPoint returns the address execution should start from.
func (ex *Executable) EntryPoint() uint32 {
	return ex.entry
}

// Platform reports which console the executable is meant for. MEM2
// addresses only exist on the Wii so any section or entry point in that
// range marks the container as a Wii executable.
func (ex *Executable) Platform() dvd.Platform {
	inMem2 := func(addr uint32) bool {
		return addr&0x1fffffff >= 0x10000000
	}

	for _, s := range append(ex.text[:], ex.data[:]...) {
		if s.size > 0 && inMem2(s.address) {
			return dvd.PlatformWii
		}
	}
	if inMem2(ex.entry) || inMem2(ex.bssAddress) {
		return dvd.PlatformWii
	}
	return dvd.PlatformGameCube
}

// Load copies the executable's sections into guest memory and zeroes the
// BSS range.
func (ex *Executable) Load(mem *memory.Memory) {
	if ex.bssSize > 0 {
		mem.Zero(ex.bssAddress, ex.bssSize)
	}
	for _, s := range append(ex.text[:], ex.data[:]...) {
		if s.size > 0 {
			mem.CopyToGuest(s.address, ex.image[s.offset:s.offset+s.size])
		}
	}
}
