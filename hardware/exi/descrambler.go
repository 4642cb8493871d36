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

// Package exi holds the parts of the expansion interface that matter to
// boot: the scramble cipher protecting the bootstrap portion of the IPL
// ROM.
package exi

// Descramble applies the IPL scramble cipher to the data in place. The
// cipher is a XOR stream generated by three small linear feedback registers
// so applying it twice restores the original bytes.
//
// The register taps and seeds reproduce the cipher in the drive hardware
// exactly. Do not touch them: every byte of the decoded bootstrap depends
// on this transform being bit for bit correct.
func Descramble(data []byte) {
	var acc uint8
	var nacc uint8

	t := uint16(0x2953)
	u := uint16(0xd9c2)
	v := uint16(0x3ff1)

	x := uint8(1)

	for it := 0; it < len(data); {
		t0 := t & 1
		t1 := (t >> 1) & 1
		u0 := u & 1
		u1 := (u >> 1) & 1
		v0 := v & 1

		x ^= uint8(t1 ^ v0)
		x ^= uint8(u0 | u1)
		x ^= uint8((t0 ^ u1 ^ v0) & (t0 ^ u0))

		if t0 == u0 {
			v >>= 1
			if v0 != 0 {
				v ^= 0xb3d0
			}
		}

		if t0 == 0 {
			u >>= 1
			if u0 != 0 {
				u ^= 0xfb10
			}
		}

		t >>= 1
		if t0 != 0 {
			t ^= 0xa740
		}

		nacc++
		acc = 2*acc + x
		if nacc == 8 {
			data[it] ^= acc
			it++
			nacc = 0
		}
	}
}
