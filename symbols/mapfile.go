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

package symbols

import (
	"bufio"
	"os"
	"strconv"
	"strings"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/logger"
)

// sentinel error patterns for the symbols package.
const (
	MapFileError = "symbols: map file: %v"
)

// LoadMap merges the symbols in the map file at the given path into the
// database. Lines that cannot be interpreted are skipped; only a file that
// cannot be read at all is an error.
//
// The lines of interest look like the linker map output used throughout the
// console's toolchain:
//
//	80003100 000000ac 80003100 0 __start
//
// Address, size, virtual address, alignment, name. Shorter address/name
// pairs are also accepted.
func (db *Database) LoadMap(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return curated.Errorf(MapFileError, err)
	}
	defer f.Close()

	n := 0
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		p := strings.Fields(scanner.Text())

		// section headers and separator lines
		if len(p) < 2 || strings.HasPrefix(p[0], ".") || p[0] == "---" {
			continue
		}

		address, err := strconv.ParseUint(p[0], 16, 32)
		if err != nil {
			continue
		}

		sym := Symbol{Address: uint32(address)}

		if len(p) >= 5 {
			if size, err := strconv.ParseUint(p[1], 16, 32); err == nil {
				sym.Size = uint32(size)
			}
			sym.Name = p[4]
		} else {
			sym.Name = p[len(p)-1]
		}

		if sym.Name == "" {
			continue
		}

		db.Add(sym)
		n++
	}
	if err := scanner.Err(); err != nil {
		return curated.Errorf(MapFileError, err)
	}

	logger.Logf("symbols", "%d symbols loaded from %s", n, path)
	return nil
}
