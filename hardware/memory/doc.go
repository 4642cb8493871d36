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

// Package memory is the emulated main memory of the console: 24MB of MEM1
// plus, for the Wii, 64MB of MEM2. Values are stored in the guest byte
// order, which is big-endian.
//
// Hardware registers and the locked cache are not part of this package.
// Accesses outside the two main banks are logged and otherwise ignored.
package memory
