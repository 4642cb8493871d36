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

package gekko

// Special purpose register numbers, as used by mtspr/mfspr. Only the
// registers touched during boot are named here.
const (
	SprHID0 = 1008
	SprHID4 = 1011

	SprIBAT0U = 528
	SprIBAT0L = 529
	SprIBAT1U = 530
	SprIBAT1L = 531
	SprIBAT2U = 532
	SprIBAT2L = 533
	SprIBAT3U = 534
	SprIBAT3L = 535
	SprDBAT0U = 536
	SprDBAT0L = 537
	SprDBAT1U = 538
	SprDBAT1L = 539
	SprDBAT2U = 540
	SprDBAT2L = 541
	SprDBAT3U = 542
	SprDBAT3L = 543

	// the four extra BAT pairs are a 750CL extension. they are only
	// addressable when HID4.SBE is set
	SprIBAT4U = 560
	SprIBAT4L = 561
	SprIBAT5U = 562
	SprIBAT5L = 563
	SprIBAT6U = 564
	SprIBAT6L = 565
	SprIBAT7U = 566
	SprIBAT7L = 567
	SprDBAT4U = 568
	SprDBAT4L = 569
	SprDBAT5U = 570
	SprDBAT5L = 571
	SprDBAT6U = 572
	SprDBAT6L = 573
	SprDBAT7U = 574
	SprDBAT7L = 575
)

// Machine state register bits.
const (
	MsrEE uint32 = 0x8000 // external interrupts enabled
	MsrFP uint32 = 0x2000 // floating point available
	MsrIR uint32 = 0x0020 // instruction address translation
	MsrDR uint32 = 0x0010 // data address translation
)

// HID4 bits.
const (
	// secondary BAT enable. exposes BAT pairs four to seven
	Hid4SBE uint32 = 1 << 25
)
