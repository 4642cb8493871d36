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

// Package patches applies per-title memory patches after a title has been
// booted. Patch definitions are YAML files named after the game id, in the
// patches directory of the user resources:
//
//	- name: skip broken cutscene
//	  address: 0x8012f5b0
//	  value: 0x60000000
//
// A title without a patch file is the normal case and loads nothing.
package patches

import (
	"os"

	"gopkg.in/yaml.v3"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware/memory"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/resources"
)

// sentinel error patterns for the patches package.
const (
	PatchFileError = "patches: %v"
)

// Patch is a single word write into guest memory.
type Patch struct {
	Name    string `yaml:"name"`
	Address uint32 `yaml:"address"`
	Value   uint32 `yaml:"value"`
}

// Load reads the patch definitions for the given game id. A missing patch
// file is not an error; it returns an empty list.
func Load(gameID string) ([]Patch, error) {
	if gameID == "" {
		return nil, nil
	}

	path, err := resources.JoinPath("patches", gameID+".yaml")
	if err != nil {
		return nil, curated.Errorf(PatchFileError, err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, curated.Errorf(PatchFileError, err)
	}

	var p []Patch
	if err := yaml.Unmarshal(data, &p); err != nil {
		return nil, curated.Errorf(PatchFileError, err)
	}

	logger.Logf("patches", "%d patch(es) loaded for %s", len(p), gameID)
	return p, nil
}

// Apply writes every patch in the list into guest memory.
func Apply(mem *memory.Memory, p []Patch) {
	for _, patch := range p {
		mem.Write32(patch.Address, patch.Value)
		if patch.Name != "" {
			logger.Logf("patches", "applied: %s", patch.Name)
		}
	}
}
