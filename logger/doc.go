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

// Package logger is the central log for the emulation. Log entries are
// created with the Log() and Logf() functions and are identified by a short
// lowercase tag naming the system that created them (for example, "boot" or
// "dvd").
//
// Entries accumulate in memory and can be written out with the Write() and
// Tail() functions. The SetEcho() function additionally echoes new entries
// to an io.Writer as they arrive, which is how the command line program
// surfaces warnings as they happen.
//
// Logging is for diagnostic information only. It is never used for error
// signalling, which is done through the error type and the curated package.
package logger
