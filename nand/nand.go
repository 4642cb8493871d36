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

// Package nand is the service boundary to titles installed on the emulated
// Wii NAND. Content container parsing and the system software that actually
// launches a title live behind the Loader interface; the boot process only
// resolves a loader by path, reads its title metadata and asks it to boot.
package nand

import (
	"github.com/gophercube/gophercube/hardware"
)

// TitleMetadata is the subset of a title's TMD needed during boot.
type TitleMetadata struct {
	// the 64-bit title id. the high word is the title type, the low word
	// the four character title code
	TitleID uint64

	// the title id of the system software version the title wants
	IOSTitleID uint64
}

// Loader gives access to one installed title.
type Loader interface {
	// IsValid is false when the path did not resolve to a complete,
	// correctly signed title
	IsValid() bool

	// TMD returns the title metadata. only meaningful when IsValid
	TMD() TitleMetadata

	// Boot launches the title on the console. only meaningful when IsValid
	Boot(console *hardware.Console) error
}

// Manager resolves paths to title loaders.
type Manager struct {
	resolve func(path string) Loader
}

// NewManager is the preferred method of initialisation for the Manager
// type. The resolve function maps a path to a Loader; a nil function means
// every path resolves to an invalid loader.
func NewManager(resolve func(path string) Loader) *Manager {
	return &Manager{resolve: resolve}
}

// GetLoader returns the loader for the title at the given path. The
// returned loader may be invalid; it is never nil.
func (m *Manager) GetLoader(path string) Loader {
	if m.resolve != nil {
		if l := m.resolve(path); l != nil {
			return l
		}
	}
	return invalidLoader{}
}

type invalidLoader struct{}

func (invalidLoader) IsValid() bool {
	return false
}

func (invalidLoader) TMD() TitleMetadata {
	return TitleMetadata{}
}

func (invalidLoader) Boot(console *hardware.Console) error {
	return nil
}
