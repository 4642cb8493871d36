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
	"encoding/binary"
	"fmt"
	"os"

	"github.com/gophercube/gophercube/logger"
)

// magic words in the volume header identifying the disc platform.
const (
	wiiDiscMagic      uint32 = 0x5d1c9ea3 // header offset 0x18
	gamecubeDiscMagic uint32 = 0xc2339f3d // header offset 0x1c
)

// imageVolume is a Volume backed by a plain disc image file.
type imageVolume struct {
	file     *os.File
	gameID   string
	platform Platform
	region   Region
}

func newImageVolume(path string) (*imageVolume, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}

	hdr := make([]byte, 0x20)
	if _, err := f.ReadAt(hdr, 0); err != nil {
		f.Close()
		return nil, fmt.Errorf("unusable disc image: %v", err)
	}

	vol := &imageVolume{
		file:   f,
		gameID: string(hdr[0:6]),
	}

	switch {
	case binary.BigEndian.Uint32(hdr[0x18:]) == wiiDiscMagic:
		vol.platform = PlatformWii
	case binary.BigEndian.Uint32(hdr[0x1c:]) == gamecubeDiscMagic:
		vol.platform = PlatformGameCube
	default:
		vol.platform = PlatformUnknown
		logger.Logf("dvd", "no disc magic word in %s", path)
	}

	vol.region = RegionFromGameID(vol.gameID)

	return vol, nil
}

// Read implements the Volume interface.
func (vol *imageVolume) Read(offset uint64, p []byte, decrypt bool) error {
	// plain images carry no partition encryption so the decrypt flag is
	// moot. partitioned Wii dumps are handled before they reach this type
	_, err := vol.file.ReadAt(p, int64(offset))
	if err != nil {
		return err
	}
	return nil
}

// ReadWord implements the Volume interface.
func (vol *imageVolume) ReadWord(offset uint64, decrypt bool) (uint32, error) {
	var b [4]byte
	if err := vol.Read(offset, b[:], decrypt); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// GameID implements the Volume interface.
func (vol *imageVolume) GameID() string {
	return vol.gameID
}

// Platform implements the Volume interface.
func (vol *imageVolume) Platform() Platform {
	return vol.platform
}

// Region implements the Volume interface.
func (vol *imageVolume) Region() Region {
	return vol.region
}

// directoryVolume serves a host directory as a virtual disc. The volume
// header is synthesised; file content is read on demand by the filesystem
// layers above us.
type directoryVolume struct {
	root     string
	header   [0x20]byte
	platform Platform
}

func newDirectoryVolume(root string, platform Platform) (*directoryVolume, error) {
	fi, err := os.Stat(root)
	if err != nil {
		return nil, err
	}
	if !fi.IsDir() {
		return nil, fmt.Errorf("%s is not a directory", root)
	}

	vol := &directoryVolume{
		root:     root,
		platform: platform,
	}

	// a synthetic game id. real ids are six characters: system, two game
	// characters, country code, two maker characters
	copy(vol.header[:], "GDIR00")

	return vol, nil
}

// Read implements the Volume interface.
func (vol *directoryVolume) Read(offset uint64, p []byte, decrypt bool) error {
	for i := range p {
		if offset+uint64(i) < uint64(len(vol.header)) {
			p[i] = vol.header[offset+uint64(i)]
		} else {
			p[i] = 0
		}
	}
	return nil
}

// ReadWord implements the Volume interface.
func (vol *directoryVolume) ReadWord(offset uint64, decrypt bool) (uint32, error) {
	var b [4]byte
	if err := vol.Read(offset, b[:], decrypt); err != nil {
		return 0, err
	}
	return binary.BigEndian.Uint32(b[:]), nil
}

// GameID implements the Volume interface.
func (vol *directoryVolume) GameID() string {
	return string(vol.header[0:6])
}

// Platform implements the Volume interface.
func (vol *directoryVolume) Platform() Platform {
	return vol.platform
}

// Region implements the Volume interface.
func (vol *directoryVolume) Region() Region {
	return RegionUnknown
}
