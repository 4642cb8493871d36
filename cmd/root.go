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

// Package cmd is the command line interface of the program.
package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/gophercube/gophercube/version"
)

var rootCmd = &cobra.Command{
	Use:   "gophercube",
	Short: "GameCube and Wii boot process emulation",
	Long: `GopherCube emulates the boot process of the GameCube and Wii:
firmware loading, disc mounting and the hand-off to the main executable of
a game or homebrew program.`,
	SilenceUsage: true,
	Version:      versionString(),
}

func versionString() string {
	ver, rev, release := version.Version()
	if release {
		return ver
	}
	return fmt.Sprintf("%s (%s)", ver, rev)
}

// Execute runs the command named on the command line. Called once, by main.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
