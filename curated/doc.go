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

// Package curated is a helper package for the plain Go language error type.
// Curated errors implement the error interface and are created with the
// Errorf() function, which works like the Errorf() function in the fmt
// package except that formatting is deferred.
//
// The pattern string given to Errorf() doubles as the identity of the error.
// The Is() function checks whether an error was created with a specific
// pattern and the Has() function checks whether the pattern occurs anywhere
// in the error chain. Sentinel patterns should be stored as suitably named
// const strings.
//
// The Error() function normalises the message chain so that duplicate
// adjacent parts are removed. This means errors can be wrapped freely at
// every return point without the final message stuttering. Parts of the
// chain are separated by the sub-string ": ".
package curated
