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

package cmd

import (
	"hash/crc32"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophercube/gophercube/boot"
	"github.com/gophercube/gophercube/hardware/dvd"
)

var iplCmd = &cobra.Command{
	Use:   "ipl <dump>",
	Short: "Identify a firmware dump",
	Long: `Identify a firmware dump by its checksum, reporting the region
and revision it was dumped from.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return err
		}

		checksum := crc32.ChecksumIEEE(data)
		cmd.Printf("size     %d bytes\n", len(data))
		cmd.Printf("checksum %08x\n", checksum)

		region, revision := boot.ClassifyIPL(checksum)
		if region == dvd.RegionUnknown {
			cmd.Println("revision unknown")
			return nil
		}
		cmd.Printf("revision %s (%s)\n", revision, region)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(iplCmd)
}
