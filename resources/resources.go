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

package resources

import (
	"os"
	"path/filepath"
)

// the directory used to store user resources (maps, patches, etc.) in the
// user's home directory. a directory of the same name without the leading
// dot, in the current working directory, takes precedence. this is the
// "portable" installation mode.
const resourceDir = "gophercube"

// JoinPath returns the supplied path elements prepended with the user
// resource base path. Directories up to but not including the last path
// element are created if necessary. The file itself is never touched.
func JoinPath(path ...string) (string, error) {
	b, err := basePath()
	if err != nil {
		return "", err
	}

	p := filepath.Join(b, filepath.Join(path...))

	if _, err := os.Stat(p); err == nil {
		return p, nil
	}

	if err := os.MkdirAll(filepath.Dir(p), 0700); err != nil {
		return "", err
	}

	return p, nil
}

func basePath() (string, error) {
	// portable path takes precedence
	if fi, err := os.Stat(resourceDir); err == nil && fi.IsDir() {
		return resourceDir, nil
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, "."+resourceDir), nil
}

// SysPath returns the supplied path elements prepended with the system
// resource path. System resources ship with the program (the signature
// database, reference symbol maps) and are looked for next to the program
// binary unless the GOPHERCUBE_SYS environment variable says otherwise.
func SysPath(path ...string) string {
	b := os.Getenv("GOPHERCUBE_SYS")
	if b == "" {
		if exe, err := os.Executable(); err == nil {
			b = filepath.Join(filepath.Dir(exe), "sys")
		} else {
			b = "sys"
		}
	}
	return filepath.Join(b, filepath.Join(path...))
}
