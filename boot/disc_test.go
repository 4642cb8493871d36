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

package boot_test

import (
	"encoding/binary"
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/boot"
	"github.com/gophercube/gophercube/test"
)

// writeDiscImage writes a minimal GameCube disc image: a volume header
// naming a main executable and an FST, a single-section DOL, and the FST
// body.
func writeDiscImage(t *testing.T) string {
	t.Helper()

	image := make([]byte, 0x2000)
	copy(image, "GALE01")
	binary.BigEndian.PutUint32(image[0x1c:], 0xc2339f3d) // gamecube disc magic
	binary.BigEndian.PutUint32(image[0x420:], 0x1000)    // main executable
	binary.BigEndian.PutUint32(image[0x424:], 0x1800)    // fst offset
	binary.BigEndian.PutUint32(image[0x428:], 0x20)      // fst size
	binary.BigEndian.PutUint32(image[0x42c:], 0x20)      // fst max size

	// the DOL container, offsets relative to its own header
	binary.BigEndian.PutUint32(image[0x1000+0x00:], 0x100)      // text0 offset
	binary.BigEndian.PutUint32(image[0x1000+0x48:], 0x80003400) // text0 address
	binary.BigEndian.PutUint32(image[0x1000+0x90:], 0x20)       // text0 size
	binary.BigEndian.PutUint32(image[0x1000+0xe0:], 0x80003400) // entry
	for i := 0; i < 0x20; i++ {
		image[0x1100+i] = byte(0x40 + i)
		image[0x1800+i] = byte(0x80 + i)
	}

	path := filepath.Join(t.TempDir(), "game.gcm")
	if err := os.WriteFile(path, image, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBootDiscHLE(t *testing.T) {
	usePortableResources(t)

	s := newTestSession(t)
	cfg := boot.Config{
		Type:     boot.TypeDisc,
		Filename: writeDiscImage(t),
		HLEBS2:   true,
	}

	err := s.BootUp(cfg)
	test.ExpectedSuccess(t, err)

	// the main executable is in memory and entered
	test.EquateHex(t, s.Console.CPU.PC, 0x80003400)
	test.Equate(t, s.Console.Mem.Read8(0x80003400), 0x40)

	mem := s.Console.Mem

	// low memory as the firmware leaves it
	test.EquateHex(t, mem.Read32(0x80000020), 0x0d15ea5e)
	test.EquateHex(t, mem.Read32(0x80000028), 0x01800000)
	test.EquateHex(t, mem.Read32(0x800000cc), 0) // GALE01 is NTSC

	// header and game id copies
	test.EquateHex(t, mem.Read32(0x80000000), binary.BigEndian.Uint32([]byte("GALE")))
	test.EquateHex(t, mem.Read32(0x80003180), mem.Read32(0x80000000))

	// the FST parked at the top of MEM1
	arenaHigh := mem.Read32(0x80000034)
	test.EquateHex(t, arenaHigh, 0x817fffc0)
	test.EquateHex(t, mem.Read32(0x80000038), arenaHigh)
	test.EquateHex(t, mem.Read32(0x8000003c), 0x20)
	test.Equate(t, mem.Read8(arenaHigh), 0x80)
}

func TestBootDiscMissingImage(t *testing.T) {
	s := newTestSession(t)

	cfg := boot.Config{
		Type:     boot.TypeDisc,
		Filename: filepath.Join(t.TempDir(), "no-such-disc.gcm"),
	}
	test.ExpectedFailure(t, s.BootUp(cfg))
}
