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

// Package hle substitutes direct state installation for faithful execution
// of the console's firmware. It covers three jobs performed at boot:
//
// The high level bootstrap (EmulatedBS2 and friends) reproduces the memory
// and CPU state the real bootstrap program leaves behind, without executing
// a single instruction of it. Boot strategies fall back to it when no
// firmware dump is available.
//
// Function patching redirects well known system library functions to host
// implementations. Patched call sites carry a trap opcode recognised by the
// execution loop.
//
// The signature scan recognises library functions in freshly loaded guest
// code so that they can be named in the symbol database and patched even
// when no symbol map exists.
package hle
