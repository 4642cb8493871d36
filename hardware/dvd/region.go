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

package dvd

// Region is the broadcast/market locale of a disc or firmware image.
type Region int

// List of defined regions.
const (
	RegionUnknown Region = iota
	RegionNTSCJ
	RegionNTSCU
	RegionPAL
)

func (r Region) String() string {
	switch r {
	case RegionNTSCJ:
		return "NTSC-J"
	case RegionNTSCU:
		return "NTSC-U"
	case RegionPAL:
		return "PAL"
	}
	return "unknown"
}

// IsNTSC returns true for the regions that use NTSC video timing.
func (r Region) IsNTSC() bool {
	return r == RegionNTSCJ || r == RegionNTSCU
}

// RegionFromGameID derives the region from the fourth character of a game
// id, the country code.
func RegionFromGameID(id string) Region {
	if len(id) < 4 {
		return RegionUnknown
	}
	switch id[3] {
	case 'J', 'K', 'T', 'W':
		return RegionNTSCJ
	case 'E', 'N', 'Z':
		return RegionNTSCU
	case 'P', 'D', 'F', 'H', 'I', 'R', 'S', 'U', 'X', 'Y':
		return RegionPAL
	}
	return RegionUnknown
}

// Platform identifies which console a disc or executable is meant for.
type Platform int

// List of defined platforms.
const (
	PlatformUnknown Platform = iota
	PlatformGameCube
	PlatformWii
)

func (p Platform) String() string {
	switch p {
	case PlatformGameCube:
		return "GameCube"
	case PlatformWii:
		return "Wii"
	}
	return "unknown"
}
