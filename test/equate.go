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

package test

import (
	"testing"
)

// Equate is used to test equality between one value and another. Both values
// must be of the same comparable type:
//
//	var pc uint32
//	pc = someFunction()
//	test.Equate(t, pc, uint32(0x81200150))
func Equate[T comparable](t *testing.T, value, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equation of type %T failed (%v - wanted %v)", value, value, expectedValue)
	}
}

// EquateHex is like Equate but reports any difference in hexadecimal, which
// reads better for addresses and register values.
func EquateHex[T ~uint8 | ~uint16 | ~uint32 | ~uint64](t *testing.T, value, expectedValue T) {
	t.Helper()
	if value != expectedValue {
		t.Errorf("equation of type %T failed (%#08x - wanted %#08x)", value, uint64(value), uint64(expectedValue))
	}
}
