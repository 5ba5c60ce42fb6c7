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

//go:build !windows

package console

import (
	"os"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/pkg/term/termios"
	"golang.org/x/sys/unix"
)

type hostMode struct {
	canAttr    unix.Termios
	cbreakAttr unix.Termios
}

// enter cbreak mode. input is not echoed and is not line buffered but
// signals are still generated
func (m *hostMode) enter(f *os.File) error {
	if err := termios.Tcgetattr(f.Fd(), &m.canAttr); err != nil {
		return curated.Errorf("console: %v", err)
	}
	m.cbreakAttr = m.canAttr
	termios.Cfmakecbreak(&m.cbreakAttr)
	if err := termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &m.cbreakAttr); err != nil {
		return curated.Errorf("console: %v", err)
	}
	return nil
}

func (m *hostMode) restore(f *os.File) error {
	if err := termios.Tcsetattr(f.Fd(), termios.TCIFLUSH, &m.canAttr); err != nil {
		return curated.Errorf("console: %v", err)
	}
	return nil
}
