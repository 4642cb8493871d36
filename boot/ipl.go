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

package boot

import (
	"hash/crc32"
	"os"

	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/hardware/exi"
	"github.com/gophercube/gophercube/hardware/gekko"
	"github.com/gophercube/gophercube/hle"
	"github.com/gophercube/gophercube/logger"
)

// sentinel error patterns for the firmware loader.
const (
	IPLReadError = "ipl: %v"
	IPLShortDump = "ipl: incomplete dump (%d bytes)"
)

// layout of the firmware dump. the scrambled portion holds the second
// stage bootstrap (BS2); the 0x700 bytes at its start are the first stage
// (BS1).
const (
	iplScrambleOffset = 0x100
	iplScrambleLength = 0x1afe00
	iplBS1Length      = 0x700
	iplBS2Offset      = 0x820

	// physical addresses the bootstrap is copied to. execution really
	// starts in the ROM mapping at 0xfff00000; copying into main memory
	// and entering past the hardware init is the emulation's shortcut
	iplBS1Address = 0x01200000
	iplBS2Address = 0x01300000
	iplEntryPoint = 0x81200150
)

// iplRevision maps the CRC-32 of a full firmware dump to its region and
// revision name.
type iplRevision struct {
	region dvd.Region
	name   string
}

// checksums of every known firmware dump. three revisions per region, plus
// a Brazilian variant of USA v1.2 and a second japanese revision.
var iplRevisions = map[uint32]iplRevision{
	0x6d740ae7: {region: dvd.RegionNTSCU, name: "USA v1.0"},
	0xd5e6feea: {region: dvd.RegionNTSCU, name: "USA v1.1"},
	0x86573808: {region: dvd.RegionNTSCU, name: "USA v1.2"},
	0x667d0b64: {region: dvd.RegionNTSCU, name: "BRA v1.0"},
	0x6dac1f2a: {region: dvd.RegionNTSCJ, name: "JAP v1.0"},
	0xd235e3f9: {region: dvd.RegionNTSCJ, name: "JAP v1.1"},
	0x4f319f43: {region: dvd.RegionPAL, name: "PAL v1.0"},
	0xdd8cab7c: {region: dvd.RegionPAL, name: "PAL v1.1"},
	0xad1b7f16: {region: dvd.RegionPAL, name: "PAL v1.2"},
}

// ClassifyIPL reports the region and revision name of a firmware dump with
// the given CRC-32 checksum. An unrecognised checksum yields RegionUnknown.
func ClassifyIPL(checksum uint32) (dvd.Region, string) {
	if rev, ok := iplRevisions[checksum]; ok {
		return rev.region, rev.name
	}
	return dvd.RegionUnknown, ""
}

// LoadIPL reads the firmware dump named by the configuration, installs its
// bootstrap portion in guest memory and hand-sets the CPU state the first
// stage bootloader would have left behind.
//
// An unrecognised checksum and a region mismatch are warnings. The only
// error is a failed or incomplete read, in which case nothing has been
// written to memory or the CPU.
func (s *Session) LoadIPL(cfg Config) error {
	data, err := os.ReadFile(cfg.IPLPath)
	if err != nil {
		return curated.Errorf(IPLReadError, err)
	}

	// the install below reaches this far into the dump
	if len(data) < iplBS2Offset+iplScrambleLength {
		return curated.Errorf(IPLShortDump, len(data))
	}

	checksum := crc32.ChecksumIEEE(data)
	region, revision := ClassifyIPL(checksum)
	if region == dvd.RegionUnknown {
		logger.Logf("ipl", "firmware with unknown checksum %08x", checksum)
	} else {
		logger.Logf("ipl", "firmware is %s", revision)
		if cfg.Region != dvd.RegionUnknown && cfg.Region != region {
			logger.Logf("ipl", "%s firmware used for a %s boot. the disc might not be recognised", region, cfg.Region)
		}
	}

	// every byte from here on depends on the descramble being bit-exact
	exi.Descramble(data[iplScrambleOffset : iplScrambleOffset+iplScrambleLength])

	mem := s.Console.Mem
	mem.CopyToGuest(iplBS1Address, data[iplScrambleOffset:iplScrambleOffset+iplBS1Length])
	mem.CopyToGuest(iplBS2Address, data[iplBS2Offset:iplBS2Offset+iplScrambleLength])

	// the register file as BS1 leaves it, regardless of region. these
	// literals are a compatibility contract with guest software and with
	// existing save states
	cpu := s.Console.CPU
	cpu.GPR[3] = 0xfff0001f
	cpu.GPR[4] = 0x00002030
	cpu.GPR[5] = 0x0000009c
	cpu.MSR = 0x00002030
	cpu.SPR[gekko.SprHID0] = 0x0011c464
	cpu.SPR[gekko.SprIBAT0U] = 0x80001fff
	cpu.SPR[gekko.SprIBAT0L] = 0x00000002
	cpu.SPR[gekko.SprIBAT3U] = 0xfff0001f
	cpu.SPR[gekko.SprIBAT3L] = 0xfff00001
	cpu.SPR[gekko.SprDBAT0U] = 0x80001fff
	cpu.SPR[gekko.SprDBAT0L] = 0x00000002
	cpu.SPR[gekko.SprDBAT1U] = 0xc0001fff
	cpu.SPR[gekko.SprDBAT1L] = 0x0000002a
	cpu.SPR[gekko.SprDBAT3U] = 0xfff0001f
	cpu.SPR[gekko.SprDBAT3L] = 0xfff00001
	cpu.NotifyBATChange()
	cpu.PC = iplEntryPoint

	return nil
}

// bootIPL boots the firmware itself. This mode exists to run the real
// firmware so a load failure is fatal here, with no high level fallback.
func bootIPL(s *Session, cfg Config) error {
	if err := s.LoadIPL(cfg); err != nil {
		return err
	}

	if s.LoadMapFromFilename(cfg) {
		hle.PatchFunctions(s.Console.Mem, s.Symbols)
	}

	return nil
}
