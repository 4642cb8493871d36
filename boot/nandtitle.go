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
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/patches"
)

// bootNANDTitle boots a title installed on the emulated NAND. The loader
// resolved by the NAND manager does the actual launch; this strategy wraps
// it with the patching and symbol loading every boot path gets.
func bootNANDTitle(s *Session, cfg Config) error {
	loader := s.NAND.GetLoader(cfg.Filename)
	if !loader.IsValid() {
		s.Notify.FatalAlert(fmt.Sprintf("not a valid installed title: %s", cfg.Filename))
		return curated.Errorf(InvalidTitle)
	}

	if err := loader.Boot(s.Console); err != nil {
		return curated.Errorf("boot: %v", err)
	}

	if cfg.GameID == "" {
		// the low word of the title id is the four character title code
		code := uint32(loader.TMD().TitleID)
		cfg.GameID = string([]byte{
			byte(code >> 24), byte(code >> 16), byte(code >> 8), byte(code),
		})
	}

	if p, err := patches.Load(cfg.GameID); err != nil {
		logger.Logf("boot", "%v", err)
	} else {
		patches.Apply(s.Console.Mem, p)
	}

	if s.LoadMapFromFilename(cfg) {
		hle.PatchFunctions(s.Console.Mem, s.Symbols)
	}

	// channels commonly read a data partition from the disc drive
	s.mountCompanion(cfg, dvd.PlatformWii)

	return nil
}
