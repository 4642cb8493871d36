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

package boot_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/gophercube/gophercube/boot"
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/nand"
	"github.com/gophercube/gophercube/test"
)

// bootingLoader is a valid loader that marks the console when booted.
type bootingLoader struct {
	tmd nand.TitleMetadata
}

func (l bootingLoader) IsValid() bool {
	return true
}

func (l bootingLoader) TMD() nand.TitleMetadata {
	return l.tmd
}

func (l bootingLoader) Boot(console *hardware.Console) error {
	console.CPU.PC = 0x81330000
	return nil
}

// usePortableResources redirects user resources to a directory under the
// test's temporary directory for the duration of the test.
func usePortableResources(t *testing.T) {
	t.Helper()

	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}

	tmp := t.TempDir()
	if err := os.Mkdir(filepath.Join(tmp, "gophercube"), 0o700); err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(tmp); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		_ = os.Chdir(wd)
	})
}

func TestBootNANDTitle(t *testing.T) {
	usePortableResources(t)

	s := newTestSession(t)
	s.NAND = nand.NewManager(func(path string) nand.Loader {
		return bootingLoader{tmd: nand.TitleMetadata{TitleID: 0x0001000248414241}}
	})

	err := s.BootUp(boot.Config{Type: boot.TypeNAND, Filename: "channel.wad", Wii: true})
	test.ExpectedSuccess(t, err)
	test.EquateHex(t, s.Console.CPU.PC, 0x81330000)
}

func TestBootNANDTitleInvalid(t *testing.T) {
	s := newTestSession(t)
	notify := &recordingNotify{}
	s.Notify = notify

	err := s.BootUp(boot.Config{Type: boot.TypeNAND, Filename: "channel.wad", Wii: true})
	test.ExpectedFailure(t, err)
	test.ExpectedSuccess(t, curated.Is(err, boot.InvalidTitle))
	test.Equate(t, len(notify.fatal), 1)
	test.EquateHex(t, s.Console.CPU.PC, 0)
}
