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
	"fmt"
	"io"
	"sync"

	"github.com/drewwalton19216801/butterfly/logger"
)

// Status register bits.
const (
	InputReady  uint8 = 0x01
	OutputReady uint8 = 0x02
)

// the maximum number of bytes waiting to be read by the CPU. bytes fed to a
// full queue are dropped
const queueLength = 256

// Console is a bus.Device with two registers.
type Console struct {
	origin uint16
	out    io.Writer

	// input is written to from the host goroutine and read by the emulation
	crit  sync.Mutex
	input []uint8

	dropped int
}

// NewConsole is the preferred method of initialisation for the Console type.
// Output bytes are written to out, which can be nil.
func NewConsole(origin uint16, out io.Writer) *Console {
	if out == nil {
		out = io.Discard
	}
	return &Console{
		origin: origin,
		out:    out,
		input:  make([]uint8, 0, queueLength),
	}
}

func (con *Console) String() string {
	con.crit.Lock()
	defer con.crit.Unlock()
	return fmt.Sprintf("console: %d waiting, %d dropped", len(con.input), con.dropped)
}

// Feed queues input bytes to be read by the CPU.
func (con *Console) Feed(data ...uint8) {
	con.crit.Lock()
	defer con.crit.Unlock()
	for _, d := range data {
		if len(con.input) >= queueLength {
			con.dropped++
			continue
		}
		con.input = append(con.input, d)
	}
}

func (con *Console) status() uint8 {
	con.crit.Lock()
	defer con.crit.Unlock()
	if len(con.input) > 0 {
		return OutputReady | InputReady
	}
	return OutputReady
}

// Read implements the bus.Device interface. Reading the data register
// consumes the input byte.
func (con *Console) Read(address uint16) (uint8, error) {
	if address == con.origin {
		return con.status(), nil
	}

	con.crit.Lock()
	defer con.crit.Unlock()
	if len(con.input) == 0 {
		return 0x00, nil
	}
	d := con.input[0]
	con.input = con.input[1:]
	return d, nil
}

// Write implements the bus.Device interface. Writes to the status register
// are ignored.
func (con *Console) Write(address uint16, data uint8) error {
	if address == con.origin {
		return nil
	}
	if _, err := con.out.Write([]byte{data}); err != nil {
		logger.Logf(logger.Allow, "console", "output: %v", err)
	}
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (con *Console) Peek(address uint16) (uint8, error) {
	if address == con.origin {
		return con.status(), nil
	}

	con.crit.Lock()
	defer con.crit.Unlock()
	if len(con.input) == 0 {
		return 0x00, nil
	}
	return con.input[0], nil
}

// Poke implements the bus.DebuggerBus interface. Poking the data register
// queues an input byte.
func (con *Console) Poke(address uint16, value uint8) error {
	if address != con.origin {
		con.Feed(value)
	}
	return nil
}

// Reset implements the bus.Device interface. Pending input is discarded.
func (con *Console) Reset() {
	con.crit.Lock()
	defer con.crit.Unlock()
	con.input = con.input[:0]
	con.dropped = 0
}

// IsMemory implements the bus.Device interface.
func (con *Console) IsMemory() bool {
	return false
}

// StartAddress implements the bus.Device interface.
func (con *Console) StartAddress() uint16 {
	return con.origin
}

// EndAddress implements the bus.Device interface.
func (con *Console) EndAddress() uint16 {
	return con.origin + 1
}

// Size implements the bus.Device interface.
func (con *Console) Size() int {
	return 2
}

// Label implements the bus.Device interface.
func (con *Console) Label() string {
	return "Console"
}
