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

package boot

import (
	"fmt"

	"github.com/gophercube/gophercube/dol"
	"github.com/gophercube/gophercube/elf"
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/notifications"
)

// bootDOL boots a raw DOL executable. If high level bring-up is not
// possible (usually because no disc is mounted) boot sets up the CPU for
// direct entry instead.
func bootDOL(s *Session, cfg Config) error {
	ex, err := dol.NewExecutableFromFile(cfg.Filename)
	if err != nil {
		s.Notify.FatalAlert(fmt.Sprintf("not a valid DOL file: %s", cfg.Filename))
		return err
	}

	dolWii := ex.Platform() == dvd.PlatformWii
	if dolWii != cfg.Wii {
		logger.Logf("boot", "%s executable booted in %s mode", ex.Platform(), consoleMode(cfg.Wii))
	}

	s.mountCompanion(cfg, ex.Platform())

	// the high level bring-up needs a disc to work from and enters the
	// disc's own main executable. only without one is the named DOL
	// entered directly
	if err := hle.EmulatedBS2(s.Console, dolWii); err != nil {
		logger.Logf("boot", "%v. entering executable directly", err)
		directEntry(s, ex, dolWii)
	}

	if s.LoadMapFromFilename(cfg) {
		hle.PatchFunctions(s.Console.Mem, s.Symbols)
	}

	return nil
}

// directEntry prepares the CPU for jumping straight into an executable,
// without any firmware having run: address translation and floating point
// enabled in the MSR, the standard BAT mapping of physical memory, and the
// program counter at the entry point.
func directEntry(s *Session, ex *dol.Executable, wii bool) {
	cpu := s.Console.CPU

	cpu.MSR |= gekko.MsrFP | gekko.MsrIR | gekko.MsrDR | gekko.MsrEE

	// MEM1 mapped 1:1 at 0x80000000 (cached) and 0xc0000000 (uncached).
	// the second pair of mappings alias MEM2 into the 0x90000000 and
	// 0xd0000000 windows
	cpu.SPR[gekko.SprIBAT0U] = 0x80001fff
	cpu.SPR[gekko.SprIBAT0L] = 0x00000002
	cpu.SPR[gekko.SprIBAT4U] = 0x90001fff
	cpu.SPR[gekko.SprIBAT4L] = 0x10000002
	cpu.SPR[gekko.SprDBAT0U] = 0x80001fff
	cpu.SPR[gekko.SprDBAT0L] = 0x00000002
	cpu.SPR[gekko.SprDBAT1U] = 0xc0001fff
	cpu.SPR[gekko.SprDBAT1L] = 0x0000002a
	cpu.SPR[gekko.SprDBAT4U] = 0x90001fff
	cpu.SPR[gekko.SprDBAT4L] = 0x10000002
	cpu.SPR[gekko.SprDBAT5U] = 0xd0001fff
	cpu.SPR[gekko.SprDBAT5L] = 0x1000002a
	if wii {
		// the extra BAT pairs only take effect with SBE set
		cpu.SPR[gekko.SprHID4] |= gekko.Hid4SBE
	}
	cpu.NotifyBATChange()

	if wii {
		// no title metadata to read a system software version from, so
		// assume the version homebrew runs under
		hle.SetupWiiMemory(s.Console, hle.IOS58)
	}

	ex.Load(s.Console.Mem)
	cpu.PC = ex.EntryPoint()
}

// bootELF boots a raw ELF executable. Unlike the DOL path there is no
// direct entry branch; memory is always brought up high level before the
// executable is loaded.
func bootELF(s *Session, cfg Config) error {
	s.mountCompanion(cfg, platformForMode(cfg.Wii))

	if cfg.Wii {
		hle.SetupWiiMemory(s.Console, hle.IOS58)
	} else {
		hle.SetupGCMemory(s.Console, cfg.Region.IsNTSC())
	}

	s.LoadFST(cfg.Wii)

	ex, err := elf.NewExecutableFromFile(cfg.Filename)
	if err != nil {
		s.Notify.FatalAlert(fmt.Sprintf("not a valid ELF file: %s", cfg.Filename))
		return err
	}
	ex.Load(s.Console.Mem)
	s.Console.CPU.PC = ex.EntryPoint()

	// an ELF usually travels with its own symbols. give the debugger a
	// chance to pick them up and to set its automatic breakpoints
	if err := s.Notify.Notify(notifications.NotifyMapLoaded); err != nil {
		logger.Logf("boot", "notify: %v", err)
	}
	if err := s.Notify.Notify(notifications.NotifyAutoBreakpoints); err != nil {
		logger.Logf("boot", "notify: %v", err)
	}

	return nil
}

func platformForMode(wii bool) dvd.Platform {
	if wii {
		return dvd.PlatformWii
	}
	return dvd.PlatformGameCube
}
