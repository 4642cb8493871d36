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
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/patches"
)

// guest address range scanned for library functions after a high level
// disc boot. from the end of the reserved low memory area to the top of
// the MEM1 application space.
const (
	codeScanStart = 0x80004000
	codeScanEnd   = 0x811fffff
)

// bootDisc mounts a disc image and brings the console up the way the
// firmware would have, either by running a firmware dump or by high level
// emulation of it.
func bootDisc(s *Session, cfg Config) error {
	if err := s.Console.DVD.MountImage(cfg.Filename); err != nil {
		return err
	}
	if !s.Console.DVD.IsDiscInside() {
		return curated.Errorf(NoDiscInDrive)
	}
	vol := s.Console.DVD.Volume()

	// the mounted volume knows better than the configuration which
	// console it is for
	discWii := vol.Platform() == dvd.PlatformWii
	if discWii != cfg.Wii {
		logger.Logf("boot", "%s disc booted in %s mode. correcting", vol.Platform(), consoleMode(cfg.Wii))
		cfg.Wii = discWii
	}

	if cfg.GameID == "" {
		cfg.GameID = vol.GameID()
	}

	// firmware or high level bring-up. a missing firmware dump is
	// recoverable here: the high level path serves as the fallback
	usedHLE := cfg.HLEBS2
	if cfg.HLEBS2 {
		bootstrapHLE(s, cfg.Wii)
	} else if err := s.LoadIPL(cfg); err != nil {
		logger.Logf("boot", "firmware unavailable (%v). using high level bring-up", err)
		bootstrapHLE(s, cfg.Wii)
		usedHLE = true
	}

	if p, err := patches.Load(cfg.GameID); err != nil {
		logger.Logf("boot", "%v", err)
	} else {
		patches.Apply(s.Console.Mem, p)
	}

	// with no firmware symbols to anchor on, recognise library functions
	// by signature. skipped in debugging sessions, which want the guest
	// code untouched
	if usedHLE && !cfg.Debugging {
		hle.FindFunctions(s.Console.Mem, s.Symbols, codeScanStart, codeScanEnd)
		if db, err := hle.LoadSignatureDB(s.SignatureDBPath); err == nil {
			db.Apply(s.Symbols, s.Console.Mem)
			hle.PatchFunctions(s.Console.Mem, s.Symbols)
		} else {
			logger.Logf("boot", "%v", err)
		}
	}

	if s.LoadMapFromFilename(cfg) {
		hle.PatchFunctions(s.Console.Mem, s.Symbols)
	}

	return nil
}

// bootstrapHLE runs the high level bring-up and the FST install the real
// bootstrap would have performed. Bring-up problems at this point are
// reported but do not fail a disc boot.
func bootstrapHLE(s *Session, wii bool) {
	if err := hle.EmulatedBS2(s.Console, wii); err != nil {
		logger.Logf("boot", "%v", err)
	}
	s.LoadFST(wii)
}

func consoleMode(wii bool) string {
	if wii {
		return dvd.PlatformWii.String()
	}
	return dvd.PlatformGameCube.String()
}
