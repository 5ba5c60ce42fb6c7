// This file is part of Butterfly.
//
// Butterfly is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Butterfly is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Butterfly.  If not, see <https://www.gnu.org/licenses/>.

package paths

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"
)

// the base path for all resources. use getBasePath() rather than this value
const baseResourcePath = ".butterfly"

// ResourcePath returns the path to the resource in the resource directory.
// Either argument can be empty.
func ResourcePath(subPth string, file string) string {
	return filepath.Join(getBasePath(), subPth, file)
}

func getBasePath() string {
	if _, err := os.Stat(baseResourcePath); err == nil {
		return baseResourcePath
	}

	home, err := os.UserConfigDir()
	if err != nil {
		return baseResourcePath
	}

	return filepath.Join(home, strings.TrimPrefix(baseResourcePath, "."))
}

// UniqueFilename creates a filename that (assuming a functioning clock) should
// not collide with any existing file. Note that the function does not test
// for this.
//
// Format of returned string is:
//
//	prepend_YYYYMMDD_HHMMSS.ext
//
// If ext is empty the returned string has no extension.
func UniqueFilename(prepend string, ext string) string {
	n := time.Now()
	fn := fmt.Sprintf("%s_%04d%02d%02d_%02d%02d%02d", prepend, n.Year(), n.Month(), n.Day(), n.Hour(), n.Minute(), n.Second())

	ext = strings.TrimPrefix(strings.TrimSpace(ext), ".")
	if ext != "" {
		fn = fmt.Sprintf("%s.%s", fn, ext)
	}

	return fn
}
