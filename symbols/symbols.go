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
	"sort"
)

// Symbol is a single named address in the guest program.
type Symbol struct {
	Address uint32
	Size    uint32
	Name    string
}

// Database keeps track of the symbols of the running guest program. There is
// one database per emulation session; boot clears and repopulates it.
type Database struct {
	entries map[uint32]*Symbol

	// index of keys in entries, kept sorted by address
	idx []uint32
}

// NewDatabase is the preferred method of initialisation for the Database
// type.
func NewDatabase() *Database {
	db := &Database{}
	db.Clear()
	return db
}

// Clear removes every symbol from the database.
func (db *Database) Clear() {
	db.entries = make(map[uint32]*Symbol)
	db.idx = db.idx[:0]
}

// Add inserts a symbol. An existing symbol at the same address is replaced.
func (db *Database) Add(sym Symbol) {
	if _, ok := db.entries[sym.Address]; !ok {
		db.idx = append(db.idx, sym.Address)
		sort.Slice(db.idx, func(i, j int) bool { return db.idx[i] < db.idx[j] })
	}
	s := sym
	db.entries[sym.Address] = &s
}

// Rename changes the name of the symbol at the address. Returns false if no
// symbol exists there.
func (db *Database) Rename(address uint32, name string) bool {
	s, ok := db.entries[address]
	if !ok {
		return false
	}
	s.Name = name
	return true
}

// Lookup returns the symbol at the exact address.
func (db *Database) Lookup(address uint32) (Symbol, bool) {
	s, ok := db.entries[address]
	if !ok {
		return Symbol{}, false
	}
	return *s, true
}

// Search returns the first symbol with the given name, in address order.
func (db *Database) Search(name string) (Symbol, bool) {
	for _, a := range db.idx {
		if db.entries[a].Name == name {
			return *db.entries[a], true
		}
	}
	return Symbol{}, false
}

// Each calls f for every symbol in address order.
func (db *Database) Each(f func(Symbol)) {
	for _, a := range db.idx {
		f(*db.entries[a])
	}
}

// Len returns the number of symbols in the database.
func (db *Database) Len() int {
	return len(db.entries)
}
