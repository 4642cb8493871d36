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
	"os"
	"path/filepath"
	"strings"

	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/notifications"
)

// mapFileExtension is the extension of debug symbol map files.
const mapFileExtension = ".map"

// FindMapFile derives the title id for the boot target and looks for an
// existing symbol map named after it.
//
// The writable path is where a newly generated map should be saved and can
// always be computed. The existing path is only meaningful when found is
// true; the user map directory is searched before the system one and the
// first match wins.
func (s *Session) FindMapFile(cfg Config) (existing string, writable string, titleID string, found bool) {
	switch cfg.Type {
	case TypeNAND:
		loader := s.NAND.GetLoader(cfg.Filename)
		if loader.IsValid() {
			id := loader.TMD().TitleID
			titleID = fmt.Sprintf("%08X_%08X", uint32(id>>32), uint32(id))
		}

	case TypeDOL, TypeELF:
		// the file name without directories, in either path separator
		// convention, and without the four character extension
		name := cfg.Filename
		if i := strings.LastIndexAny(name, "/\\"); i >= 0 {
			name = name[i+1:]
		}
		if len(name) > 4 {
			name = name[:len(name)-4]
		}
		titleID = name

	default:
		titleID = cfg.GameID
	}

	writable = filepath.Join(s.UserMapDir, titleID+mapFileExtension)

	for _, dir := range []string{s.UserMapDir, s.SysMapDir} {
		path := filepath.Join(dir, titleID+mapFileExtension)
		if _, err := os.Stat(path); err == nil {
			return path, writable, titleID, true
		}
	}

	return "", writable, titleID, false
}

// LoadMapFromFilename loads the symbol map for the boot target into the
// symbol database, if one exists. Returns true only if a map was found and
// loaded.
func (s *Session) LoadMapFromFilename(cfg Config) bool {
	existing, _, _, found := s.FindMapFile(cfg)
	if !found {
		return false
	}

	if err := s.Symbols.LoadMap(existing); err != nil {
		logger.Logf("boot", "%v", err)
		return false
	}

	if err := s.Notify.Notify(notifications.NotifyMapLoaded); err != nil {
		logger.Logf("boot", "notify: %v", err)
	}

	return true
}
