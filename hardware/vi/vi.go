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

// Package vi is the video interface. Only the timing preset applied during
// boot is implemented here; register level emulation belongs to the video
// subsystem.
package vi

import "github.com/gophercube/gophercube/logger"

// Timing describes the field rate and line count of a video standard.
type Timing struct {
	FieldRate int
	Lines     int
}

// The two supported video standards.
var (
	TimingNTSC = Timing{FieldRate: 60, Lines: 525}
	TimingPAL  = Timing{FieldRate: 50, Lines: 625}
)

// VideoInterface holds the video timing state set up during boot.
type VideoInterface struct {
	timing Timing
}

// NewVideoInterface is the preferred method of initialisation for the
// VideoInterface type.
func NewVideoInterface() *VideoInterface {
	return &VideoInterface{timing: TimingNTSC}
}

// Preset selects NTSC or PAL timing. The ntsc argument is true for NTSC
// regions and also for PAL60 modes, which use NTSC frame timing on PAL
// consoles.
func (v *VideoInterface) Preset(ntsc bool) {
	if ntsc {
		v.timing = TimingNTSC
	} else {
		v.timing = TimingPAL
	}
	logger.Logf("vi", "timing preset %dhz/%d lines", v.timing.FieldRate, v.timing.Lines)
}

// Timing returns the current video timing.
func (v *VideoInterface) Timing() Timing {
	return v.timing
}
