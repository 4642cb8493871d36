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

package symbols_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/symbols"
	"github.com/gophercube/gophercube/test"
)

func TestAddLookupSearch(t *testing.T) {
	db := symbols.NewDatabase()

	db.Add(symbols.Symbol{Address: 0x80003100, Size: 0xac, Name: "__start"})
	db.Add(symbols.Symbol{Address: 0x800031ac, Name: "main"})
	test.Equate(t, db.Len(), 2)

	s, ok := db.Lookup(0x80003100)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s.Name, "__start")

	s, ok = db.Search("main")
	test.ExpectedSuccess(t, ok)
	test.EquateHex(t, s.Address, 0x800031ac)

	_, ok = db.Search("OSReport")
	test.ExpectedFailure(t, ok)

	db.Clear()
	test.Equate(t, db.Len(), 0)
}

func TestRename(t *testing.T) {
	db := symbols.NewDatabase()
	db.Add(symbols.Symbol{Address: 0x80004000, Name: "zz_80004000"})

	test.ExpectedSuccess(t, db.Rename(0x80004000, "OSInit"))
	s, _ := db.Lookup(0x80004000)
	test.Equate(t, s.Name, "OSInit")

	test.ExpectedFailure(t, db.Rename(0x80005000, "nothing_here"))
}

func TestLoadMap(t *testing.T) {
	m := `.text section layout
  Starting        Virtual
  address  Size   address
  -----------------------
80003100 000000ac 80003100 0 __start
800031ac 00000030 800031ac 4 main
not-an-address line
80005000 OSReport
`

	path := filepath.Join(t.TempDir(), "GZLE01.map")
	if err := os.WriteFile(path, []byte(m), 0600); err != nil {
		t.Fatal(err)
	}

	db := symbols.NewDatabase()
	test.ExpectedSuccess(t, db.LoadMap(path))
	test.Equate(t, db.Len(), 3)

	s, ok := db.Lookup(0x80003100)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s.Name, "__start")
	test.EquateHex(t, s.Size, 0xac)

	s, ok = db.Lookup(0x80005000)
	test.ExpectedSuccess(t, ok)
	test.Equate(t, s.Name, "OSReport")
}

func TestLoadMapMissingFile(t *testing.T) {
	db := symbols.NewDatabase()
	err := db.LoadMap(filepath.Join(t.TempDir(), "no-such.map"))
	test.ExpectedFailure(t, err)
	test.Equate(t, db.Len(), 0)
}
