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

package hle

import (
	"hash/crc32"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/symbols"
)

// sentinel error patterns for the signature database.
const (
	SignatureDBError = "hle: signature database: %v"
)

// SignatureEntry describes one recognisable library function: the checksum
// of its first Length bytes and the name it should be given.
type SignatureEntry struct {
	Name     string `yaml:"name"`
	Length   uint32 `yaml:"length"`
	Checksum uint32 `yaml:"checksum"`
}

// SignatureDB is a set of function signatures loaded from a YAML file.
type SignatureDB struct {
	entries []SignatureEntry
}

// LoadSignatureDB reads the signature database at the given path.
func LoadSignatureDB(path string) (*SignatureDB, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, curated.Errorf(SignatureDBError, err)
	}

	db := &SignatureDB{}
	if err := yaml.Unmarshal(data, &db.entries); err != nil {
		return nil, curated.Errorf(SignatureDBError, err)
	}

	logger.Logf("hle", "%d signatures loaded from %s", len(db.entries), path)
	return db, nil
}

// Apply renames every placeholder symbol in the symbol database whose code
// matches a signature. Returns the number of functions recognised.
//
// Only symbols created by the code scan (the zz_ prefix) are considered;
// names from a symbol map are authoritative and never overwritten.
func (db *SignatureDB) Apply(symDB *symbols.Database, mem *memory.Memory) int {
	n := 0

	type match struct {
		address uint32
		name    string
	}
	var matches []match

	symDB.Each(func(sym symbols.Symbol) {
		if !strings.HasPrefix(sym.Name, "zz_") {
			return
		}
		for _, e := range db.entries {
			if e.Length == 0 || e.Length > sym.Size {
				continue
			}
			if checksumCode(mem, sym.Address, e.Length) == e.Checksum {
				matches = append(matches, match{address: sym.Address, name: e.Name})
				break
			}
		}
	})

	for _, m := range matches {
		if symDB.Rename(m.address, m.name) {
			n++
		}
	}

	if n > 0 {
		logger.Logf("hle", "%d function(s) recognised by signature", n)
	}
	return n
}

func checksumCode(mem *memory.Memory, address uint32, length uint32) uint32 {
	code := make([]byte, length)
	for i := uint32(0); i < length; i++ {
		code[i] = mem.Read8(address + i)
	}
	return crc32.ChecksumIEEE(code)
}
