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
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/gophercube/gophercube/boot"
	"github.com/gophercube/gophercube/curated"
	"github.com/gophercube/gophercube/hardware"
	"github.com/gophercube/gophercube/hardware/dvd"
	"github.com/gophercube/gophercube/logger"
	"github.com/gophercube/gophercube/notifications"
)

var bootOpts struct {
	wii       bool
	pal60     bool
	hlebios   bool
	debugging bool
	region    string
	discRoot  string
	disc      string
	iplPath   string
	echoLog   bool
}

var bootCmd = &cobra.Command{
	Use:   "boot [file]",
	Short: "Boot a disc image, executable or installed title",
	Long: `Boot a disc image (.gcm/.iso), a raw executable (.dol/.elf), an
installed title (.wad) or, with no file argument, the firmware named by
the --ipl flag. The boot type is guessed from the file extension.

The console state after the hand-off to the booted program is printed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if bootOpts.echoLog {
			logger.SetEcho(os.Stderr)
		}

		cfg := boot.Config{
			Wii:         bootOpts.wii,
			PAL60:       bootOpts.pal60,
			HLEBS2:      bootOpts.hlebios,
			Debugging:   bootOpts.debugging,
			DiscRoot:    bootOpts.discRoot,
			DefaultDisc: bootOpts.disc,
			IPLPath:     bootOpts.iplPath,
		}

		region, err := parseRegion(bootOpts.region)
		if err != nil {
			return err
		}
		cfg.Region = region

		if len(args) == 0 {
			if bootOpts.iplPath == "" {
				return curated.Errorf("nothing to boot. name a file or use --ipl")
			}
			cfg.Type = boot.TypeIPL
			cfg.Filename = bootOpts.iplPath
		} else {
			cfg.Filename = args[0]
			cfg.Type = boot.TypeFromFilename(args[0])
		}

		console := hardware.NewConsole()
		session, err := boot.NewSession(console)
		if err != nil {
			return err
		}
		session.Notify = terminalNotify{}

		if err := session.BootUp(cfg); err != nil {
			// the log usually explains the failure. without --log it has
			// not been seen yet
			if !bootOpts.echoLog {
				logger.Write(os.Stderr)
			}
			return err
		}

		printConsoleState(cmd, console, session)
		return nil
	},
}

func parseRegion(s string) (dvd.Region, error) {
	switch strings.ToLower(s) {
	case "", "auto":
		return dvd.RegionUnknown, nil
	case "ntsc-u", "ntsc":
		return dvd.RegionNTSCU, nil
	case "ntsc-j":
		return dvd.RegionNTSCJ, nil
	case "pal":
		return dvd.RegionPAL, nil
	}
	return dvd.RegionUnknown, curated.Errorf("unknown region %q", s)
}

func printConsoleState(cmd *cobra.Command, console *hardware.Console, session *boot.Session) {
	cmd.Printf("entry point %#08x\n", console.CPU.PC)
	cmd.Printf("msr %#08x\n", console.CPU.MSR)
	if disc := console.DVD.Volume(); disc != nil {
		cmd.Printf("disc %s (%s, %s)\n", disc.GameID(), disc.Platform(), disc.Region())
	}
	cmd.Printf("%d symbol(s) loaded\n", session.Symbols.Len())
}

// terminalNotify sends core notifications to the terminal.
type terminalNotify struct{}

func (terminalNotify) Notify(notice notifications.Notice) error {
	logger.Logf("notify", "%s", notice)
	return nil
}

func (terminalNotify) FatalAlert(msg string) {
	fmt.Fprintf(os.Stderr, "fatal: %s\n", msg)
}

func init() {
	rootCmd.AddCommand(bootCmd)

	bootCmd.Flags().BoolVar(&bootOpts.wii, "wii", false, "boot in Wii mode")
	bootCmd.Flags().BoolVar(&bootOpts.pal60, "pal60", false, "use 60Hz timing on a PAL Wii")
	bootCmd.Flags().BoolVar(&bootOpts.hlebios, "hlebios", true, "high level firmware emulation")
	bootCmd.Flags().BoolVar(&bootOpts.debugging, "debug", false, "debugging session. guest code is left unpatched")
	bootCmd.Flags().StringVar(&bootOpts.region, "region", "auto", "console region (auto, ntsc-u, ntsc-j, pal)")
	bootCmd.Flags().StringVar(&bootOpts.discRoot, "dvdroot", "", "directory to present as a virtual disc")
	bootCmd.Flags().StringVar(&bootOpts.disc, "disc", "", "disc image to mount alongside an executable boot")
	bootCmd.Flags().StringVar(&bootOpts.iplPath, "ipl", "", "path to a firmware dump")
	bootCmd.Flags().BoolVar(&bootOpts.echoLog, "log", false, "echo the emulation log to stderr")
}
