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

// Package boot takes the emulated console from power-on to the moment the
// CPU can start executing guest code. The Session type gathers the services
// a boot attempt touches and the BootUp() function runs exactly one boot
// strategy, selected by the Type field of the Config.
//
// Boot runs synchronously on a single goroutine and is a precondition for,
// never concurrent with, the execution loop. Every service the session
// points at is owned exclusively by the booting goroutine for the duration
// of the call; the host must not touch emulated memory, the CPU state or
// the symbol database until BootUp() returns.
//
// Boot failure is not transactional. A strategy that fails after mounting a
// volume leaves the volume mounted.
package boot
