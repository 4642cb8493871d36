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

package logger

import (
	"strings"
	"testing"

	"github.com/gophercube/gophercube/test"
)

func TestCentralLogger(t *testing.T) {
	Clear()

	s := &strings.Builder{}

	Log("test", "this is a test")
	Write(s)
	test.Equate(t, s.String(), "test: this is a test\n")

	Logf("test", "this is test #%d", 2)
	s.Reset()
	Write(s)
	test.Equate(t, s.String(), "test: this is a test\ntest: this is test #2\n")

	Clear()
	s.Reset()
	Write(s)
	test.Equate(t, s.String(), "")
}

func TestRepeatedEntries(t *testing.T) {
	Clear()

	s := &strings.Builder{}

	Log("test", "a repeated entry")
	Log("test", "a repeated entry")
	Log("test", "a repeated entry")
	Write(s)
	test.Equate(t, s.String(), "test: a repeated entry (repeat x3)\n")
}

func TestTail(t *testing.T) {
	Clear()

	s := &strings.Builder{}

	Log("test", "entry one")
	Log("test", "entry two")
	Log("test", "entry three")

	Tail(s, 2)
	test.Equate(t, s.String(), "test: entry two\ntest: entry three\n")

	// a tail longer than the log is capped to the number of entries
	s.Reset()
	Tail(s, 100)
	test.Equate(t, s.String(), "test: entry one\ntest: entry two\ntest: entry three\n")
}
