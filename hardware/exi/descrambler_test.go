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

package exi_test

import (
	"bytes"
	"math/rand"
	"testing"

	"github.com/gophercube/gophercube/hardware/exi"
	"github.com/gophercube/gophercube/test"
)

func TestDescrambleIsAnInvolution(t *testing.T) {
	src := make([]byte, 0x1000)
	rnd := rand.New(rand.NewSource(1))
	rnd.Read(src)

	data := make([]byte, len(src))
	copy(data, src)

	exi.Descramble(data)
	if bytes.Equal(data, src) {
		t.Errorf("descramble did not change the data")
	}

	exi.Descramble(data)
	if !bytes.Equal(data, src) {
		t.Errorf("descrambling twice did not restore the data")
	}
}

func TestDescrambleKeystreamIsPositionDependent(t *testing.T) {
	// the cipher is a positional XOR stream. the stream byte for any
	// position must not depend on the data
	a := make([]byte, 256)
	b := make([]byte, 256)
	for i := range b {
		b[i] = byte(i)
	}

	exi.Descramble(a)
	exi.Descramble(b)

	for i := range a {
		test.Equate(t, a[i]^byte(i), b[i])
	}
}

func TestDescrambleEmpty(t *testing.T) {
	// zero length input must not panic
	exi.Descramble(nil)
	exi.Descramble([]byte{})
}
