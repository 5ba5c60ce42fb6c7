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

package console

import (
	"io"
	"os"
	"sync/atomic"

	"github.com/drewwalton19216801/butterfly/logger"
	"golang.org/x/term"
)

// Host connects a Console to an input file, usually os.Stdin. If the file is
// a terminal then it is put into a mode in which bytes are delivered as soon
// as they are typed.
type Host struct {
	con   *Console
	input *os.File

	// whether the input file is a terminal and the terminal mode was changed
	modeChanged bool
	mode        hostMode

	// input read after Stop() is discarded
	stopped atomic.Bool

	done chan bool
}

// NewHost is the preferred method of initialisation for the Host type.
func NewHost(con *Console, input *os.File) *Host {
	return &Host{
		con:   con,
		input: input,
		done:  make(chan bool),
	}
}

// Start reading from the input file. Every byte read is fed to the console.
func (h *Host) Start() error {
	if term.IsTerminal(int(h.input.Fd())) {
		if err := h.mode.enter(h.input); err != nil {
			return err
		}
		h.modeChanged = true
	}

	go func() {
		defer close(h.done)
		b := make([]byte, 1)
		for {
			n, err := h.input.Read(b)
			if n > 0 && !h.stopped.Load() {
				h.con.Feed(b[0])
			}
			if err != nil {
				if err != io.EOF {
					logger.Logf(logger.Allow, "console", "host: %v", err)
				}
				return
			}
		}
	}()

	return nil
}

// Done returns a channel that is closed when the input file is exhausted.
func (h *Host) Done() <-chan bool {
	return h.done
}

// Stop restores the terminal to the mode it was in when Start() was called
// and stops feeding the console.
//
// A read from a terminal cannot be interrupted so the reading goroutine
// outlives Stop(). It ends when the input file is closed or exhausted, or
// when the program exits.
func (h *Host) Stop() error {
	h.stopped.Store(true)
	if !h.modeChanged {
		return nil
	}
	h.modeChanged = false
	return h.mode.restore(h.input)
}
