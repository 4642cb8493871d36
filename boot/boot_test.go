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
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/nand"
	"github.com/gophercube/gophercube/notifications"
	"github.com/gophercube/gophercube/symbols"
	"github.com/gophercube/gophercube/test"
)

// newTestSession builds a session with map directories under the test's
// temporary directory, so nothing in the user's home is read or written.
func newTestSession(t *testing.T) *boot.Session {
	t.Helper()
	return &boot.Session{
		Console:    hardware.NewConsole(),
		Symbols:    symbols.NewDatabase(),
		Notify:     notifications.Stub{},
		NAND:       nand.NewManager(nil),
		UserMapDir: t.TempDir(),
		SysMapDir:  t.TempDir(),
	}
}

// recordingNotify remembers every notice and fatal alert it receives.
type recordingNotify struct {
	notices []notifications.Notice
	fatal   []string
}

func (n *recordingNotify) Notify(notice notifications.Notice) error {
	n.notices = append(n.notices, notice)
	return nil
}

func (n *recordingNotify) FatalAlert(msg string) {
	n.fatal = append(n.fatal, msg)
}

func TestBootUnknownType(t *testing.T) {
	s := newTestSession(t)
	notify := &recordingNotify{}
	s.Notify = notify

	err := s.BootUp(boot.Config{Type: boot.Type(99)})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, boot.UnknownBootType))
	test.Equate(t, len(notify.fatal), 1)

	// a rejected boot must leave the machine alone
	test.EquateHex(t, s.Console.CPU.PC, 0)
	test.EquateHex(t, s.Console.Mem.Read32(0x80000000), 0)
}

func TestBootFifoLog(t *testing.T) {
	s := newTestSession(t)

	err := s.BootUp(boot.Config{Type: boot.TypeFifoLog, Filename: "capture.dff"})
	test.ExpectedSuccess(t, err)

	// even the empty strategy gets the fixed patches
	test.EquateHex(t, s.Console.Mem.Read32(0x80001804), 0x53545542) // "STUB"
}

// writeDOL writes a minimal single-section DOL to the test's temporary
// directory and returns its path.
func writeDOL(t *testing.T, entry uint32) string {
	t.Helper()

	image := make([]byte, 0x120)
	binary.BigEndian.PutUint32(image[0x00:], 0x100) // text0 offset
	binary.BigEndian.PutUint32(image[0x48:], entry) // text0 address
	binary.BigEndian.PutUint32(image[0x90:], 0x20)  // text0 size
	binary.BigEndian.PutUint32(image[0xe0:], entry)
	for i := 0x100; i < 0x120; i++ {
		image[i] = byte(i)
	}

	path := filepath.Join(t.TempDir(), "homebrew.dol")
	if err := os.WriteFile(path, image, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBootDOLDirectEntry(t *testing.T) {
	s := newTestSession(t)

	// no disc is mounted so the high level bring-up cannot run and the
	// executable is entered directly
	cfg := boot.Config{
		Type:     boot.TypeDOL,
		Filename: writeDOL(t, 0x80003100),
	}
	err := s.BootUp(cfg)
	test.ExpectedSuccess(t, err)

	cpu := s.Console.CPU
	test.EquateHex(t, cpu.PC, 0x80003100)
	test.EquateHex(t, cpu.MSR&(gekko.MsrFP|gekko.MsrIR|gekko.MsrDR|gekko.MsrEE),
		gekko.MsrFP|gekko.MsrIR|gekko.MsrDR|gekko.MsrEE)
	test.EquateHex(t, cpu.SPR[gekko.SprIBAT0U], 0x80001fff)
	test.EquateHex(t, cpu.SPR[gekko.SprDBAT1U], 0xc0001fff)
	test.EquateHex(t, cpu.SPR[gekko.SprDBAT1L], 0x0000002a)

	// GameCube mode leaves the extra BAT pairs disabled
	test.EquateHex(t, cpu.SPR[gekko.SprHID4]&gekko.Hid4SBE, 0)

	// the section arrived in memory
	test.Equate(t, s.Console.Mem.Read8(0x80003100), 0x00)
	test.Equate(t, s.Console.Mem.Read8(0x80003101), 0x01)
}

func TestBootDOLWithCompanionDisc(t *testing.T) {
	s := newTestSession(t)

	// with a companion disc mounted the high level bring-up runs the
	// disc's own main executable. the named DOL stays on the shelf
	cfg := boot.Config{
		Type:        boot.TypeDOL,
		Filename:    writeDOL(t, 0x80003100),
		DefaultDisc: writeDiscImage(t),
	}
	err := s.BootUp(cfg)
	test.ExpectedSuccess(t, err)

	test.EquateHex(t, s.Console.CPU.PC, 0x80003400)
	test.Equate(t, s.Console.Mem.Read8(0x80003400), 0x40)
	test.EquateHex(t, s.Console.Mem.Read32(0x80003100), 0)

	// the hand bring-up did not run either
	test.EquateHex(t, s.Console.CPU.MSR, 0)
}

// writeELF writes a minimal big-endian PowerPC ELF with a single PT_LOAD
// segment and returns its path.
func writeELF(t *testing.T, entry uint32, content []byte) string {
	t.Helper()

	const (
		ehsize = 0x34
		phsize = 0x20
	)

	data := make([]byte, ehsize+phsize+len(content))
	copy(data[0:], []byte{0x7f, 'E', 'L', 'F', 1, 2, 1})
	binary.BigEndian.PutUint16(data[0x10:], 2)  // ET_EXEC
	binary.BigEndian.PutUint16(data[0x12:], 20) // EM_PPC
	binary.BigEndian.PutUint32(data[0x14:], 1)
	binary.BigEndian.PutUint32(data[0x18:], entry)
	binary.BigEndian.PutUint32(data[0x1c:], ehsize)
	binary.BigEndian.PutUint16(data[0x2a:], phsize)
	binary.BigEndian.PutUint16(data[0x2c:], 1)

	o := uint32(ehsize)
	binary.BigEndian.PutUint32(data[o:], 1) // PT_LOAD
	binary.BigEndian.PutUint32(data[o+0x04:], ehsize+phsize)
	binary.BigEndian.PutUint32(data[o+0x08:], entry)
	binary.BigEndian.PutUint32(data[o+0x10:], uint32(len(content)))
	binary.BigEndian.PutUint32(data[o+0x14:], uint32(len(content)))
	copy(data[ehsize+phsize:], content)

	path := filepath.Join(t.TempDir(), "demo.elf")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}
	return path
}

func TestBootELF(t *testing.T) {
	s := newTestSession(t)
	notify := &recordingNotify{}
	s.Notify = notify

	cfg := boot.Config{
		Type:     boot.TypeELF,
		Filename: writeELF(t, 0x80003100, []byte{0x7c, 0x08, 0x02, 0xa6}),
	}
	err := s.BootUp(cfg)
	test.ExpectedSuccess(t, err)

	test.EquateHex(t, s.Console.CPU.PC, 0x80003100)
	test.EquateHex(t, s.Console.Mem.Read32(0x80003100), 0x7c0802a6)

	// low memory brought up without firmware
	test.EquateHex(t, s.Console.Mem.Read32(0x80000020), 0x0d15ea5e)

	// the host is told about symbols and breakpoints
	test.Equate(t, len(notify.notices), 2)
	test.Equate(t, notify.notices[0], notifications.NotifyMapLoaded)
	test.Equate(t, notify.notices[1], notifications.NotifyAutoBreakpoints)
}

func TestBootDOLInvalid(t *testing.T) {
	s := newTestSession(t)
	notify := &recordingNotify{}
	s.Notify = notify

	path := filepath.Join(t.TempDir(), "garbage.dol")
	if err := os.WriteFile(path, []byte("not a dol"), 0o644); err != nil {
		t.Fatal(err)
	}

	err := s.BootUp(boot.Config{Type: boot.TypeDOL, Filename: path})
	test.ExpectedFailure(t, err)
	test.Equate(t, len(notify.fatal), 1)
}
