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

package dvd

import (
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/logger"
)

// Volume is the view of a mounted disc that the rest of the emulation works
// with. Concrete implementations are backed by an image file or by a
// directory masquerading as a disc.
type Volume interface {
	// Read length bytes at the offset into p. The decrypt flag asks for the
	// partition-decrypted view of a Wii disc; it has no effect on plain
	// volumes
	Read(offset uint64, p []byte, decrypt bool) error

	// ReadWord reads a big-endian 32-bit value at the offset
	ReadWord(offset uint64, decrypt bool) (uint32, error)

	GameID() string
	Platform() Platform
	Region() Region
}

// sentinel error patterns for the dvd package.
const (
	NoDisc = "dvd: no disc in drive"
)

// Drive is the emulated optical drive. It holds at most one mounted volume.
type Drive struct {
	volume Volume
}

// NewDrive is the preferred method of initialisation for the Drive type.
func NewDrive() *Drive {
	return &Drive{}
}

// MountImage mounts the disc image at the given path as the active volume.
func (d *Drive) MountImage(path string) error {
	vol, err := newImageVolume(path)
	if err != nil {
		return curated.Errorf("dvd: %v", err)
	}
	d.volume = vol
	logger.Logf("dvd", "mounted %s (%s, %s)", path, vol.Platform(), vol.Region())
	return nil
}

// MountDirectory mounts a host directory as a virtual disc. The platform
// must be supplied because there is no volume header to detect it from.
func (d *Drive) MountDirectory(root string, platform Platform) error {
	vol, err := newDirectoryVolume(root, platform)
	if err != nil {
		return curated.Errorf("dvd: %v", err)
	}
	d.volume = vol
	logger.Logf("dvd", "mounted directory %s as virtual disc", root)
	return nil
}

// Mount makes the supplied volume the active volume.
func (d *Drive) Mount(v Volume) {
	d.volume = v
}

// IsDiscInside returns true if a volume is mounted.
func (d *Drive) IsDiscInside() bool {
	return d.volume != nil
}

// Volume returns the active volume, or nil if no disc is mounted.
func (d *Drive) Volume() Volume {
	return d.volume
}
