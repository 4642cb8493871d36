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

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/nand"
	"github.com/gophercube/gophercube/notifications"
	"github.com/gophercube/gophercube/resources"
	"github.com/gophercube/gophercube/symbols"
)

// sentinel error patterns for the boot package.
const (
	UnknownBootType = "boot: unknown boot type"
	NoDiscInDrive   = "boot: no disc in drive after mount"
	InvalidTitle    = "boot: not a valid installed title"
)

// Session gathers the services one boot attempt reads and mutates. A
// session lives as long as the emulation; BootUp() is called exactly once
// on it.
type Session struct {
	Console *hardware.Console
	Symbols *symbols.Database
	Notify  notifications.Notify
	NAND    *nand.Manager

	// map files are searched for in UserMapDir then SysMapDir. UserMapDir
	// is also where a freshly generated map would be written
	UserMapDir string
	SysMapDir  string

	// the signature database applied after a high level disc boot
	SignatureDBPath string
}

// NewSession is the preferred method of initialisation for the Session
// type. The notification target and NAND resolver can be replaced before
// the call to BootUp().
func NewSession(console *hardware.Console) (*Session, error) {
	userMaps, err := resources.JoinPath("maps")
	if err != nil {
		return nil, curated.Errorf("boot: %v", err)
	}

	return &Session{
		Console:         console,
		Symbols:         symbols.NewDatabase(),
		Notify:          notifications.Stub{},
		NAND:            nand.NewManager(nil),
		UserMapDir:      userMaps,
		SysMapDir:       resources.SysPath("maps"),
		SignatureDBPath: resources.SysPath("totaldb.yaml"),
	}, nil
}

// the boot strategies, one per boot type. exactly one of these runs per
// boot attempt.
var strategies = map[Type]func(s *Session, cfg Config) error{
	TypeDisc:    bootDisc,
	TypeDOL:     bootDOL,
	TypeELF:     bootELF,
	TypeNAND:    bootNANDTitle,
	TypeIPL:     bootIPL,
	TypeFifoLog: bootFifoLog,
}

// BootUp runs the boot strategy selected by the configuration, leaving the
// console ready for the execution loop. It must be called exactly once per
// session, before the execution loop starts.
//
// A nil return means the console is ready. Side effects of a failed boot
// (a mounted volume, partially written memory) are not rolled back.
func (s *Session) BootUp(cfg Config) error {
	logger.Logf("boot", "booting %s (%s)", cfg.Filename, cfg.Type)

	s.Symbols.Clear()

	// PAL consoles use NTSC frame timing in 60Hz modes
	s.Console.VI.Preset(cfg.Region.IsNTSC() || (cfg.Wii && cfg.PAL60))

	strategy, ok := strategies[cfg.Type]
	if !ok {
		s.Notify.FatalAlert(fmt.Sprintf("tried to boot an unknown file type (%d)", cfg.Type))
		return curated.Errorf(UnknownBootType)
	}

	if err := strategy(s, cfg); err != nil {
		return err
	}

	// always safe and idempotent, so applied after every successful boot
	hle.PatchFixedFunctions(s.Console.Mem)

	return nil
}

// mountCompanion mounts the virtual disc directory or the default disc
// image, if the configuration names either. Failure to mount a companion
// disc is logged but never fails the boot.
func (s *Session) mountCompanion(cfg Config, platform dvd.Platform) {
	if cfg.DiscRoot != "" {
		logger.Logf("boot", "mounting %s as virtual disc", cfg.DiscRoot)
		if err := s.Console.DVD.MountDirectory(cfg.DiscRoot, platform); err != nil {
			logger.Logf("boot", "virtual disc: %v", err)
		}
		return
	}
	if cfg.DefaultDisc != "" {
		logger.Logf("boot", "mounting default disc %s", cfg.DefaultDisc)
		if err := s.Console.DVD.MountImage(cfg.DefaultDisc); err != nil {
			logger.Logf("boot", "default disc: %v", err)
		}
	}
}

// bootFifoLog is deliberately empty. The fifo player drives the hardware
// itself; boot only has to not get in the way.
func bootFifoLog(s *Session, cfg Config) error {
	return nil
}
