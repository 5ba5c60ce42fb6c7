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

//go:build windows

package console

import (
	"os"

	"github.com/drewwalton19216801/butterfly/curated"
	"golang.org/x/term"
)

type hostMode struct {
	state *term.State
}

func (m *hostMode) enter(f *os.File) error {
	s, err := term.MakeRaw(int(f.Fd()))
	if err != nil {
		return curated.Errorf("console: %v", err)
	}
	m.state = s
	return nil
}

func (m *hostMode) restore(f *os.File) error {
	if m.state == nil {
		return nil
	}
	if err := term.Restore(int(f.Fd()), m.state); err != nil {
		return curated.Errorf("console: %v", err)
	}
	m.state = nil
	return nil
}
