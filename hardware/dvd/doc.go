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

// Package dvd is the emulated optical drive. The Drive type holds the
// currently mounted Volume, which may be backed by a disc image file or by
// a host directory standing in for a disc.
//
// Full filesystem and partition parsing of disc volumes is handled by the
// layers above this package. The Volume interface exposes only what the
// boot process and the drive hardware need: raw reads, the game id and the
// platform/region detected from the volume header.
package dvd
