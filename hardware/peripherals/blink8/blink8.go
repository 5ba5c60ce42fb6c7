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

// Package blink8 implements an eight LED output device. The LEDs are
// displayed as a line of text written to an io.Writer.
//
// The device must be enabled by writing 0xff to its last address. Once
// enabled, every write to the first address shows the LED states, least
// significant bit first.
package blink8

import (
	"fmt"
	"io"
	"strings"

	"github.com/drewwalton19216801/butterfly/curated"
)

// Default address range of the device.
const (
	Origin uint16 = 0x8000
	Memtop uint16 = 0x8002
)

// the value that must be written to the last address to enable the device
const enableValue = 0xff

// Blink8 implements the bus.Device interface.
type Blink8 struct {
	out     io.Writer
	enabled bool
}

// NewBlink8 is the preferred method of initialisation for the Blink8 type.
// LED lines are written to out.
func NewBlink8(out io.Writer) *Blink8 {
	if out == nil {
		out = io.Discard
	}
	return &Blink8{out: out}
}

func (blk *Blink8) String() string {
	if blk.enabled {
		return "Blink8: enabled"
	}
	return "Blink8: disabled"
}

// Enabled returns true if the device has been enabled since the last reset.
func (blk *Blink8) Enabled() bool {
	return blk.enabled
}

// LEDs returns the string representation of the LED states in data.
func LEDs(data uint8) string {
	s := strings.Builder{}
	for i := 0; i < 8; i++ {
		if data&(1<<i) != 0 {
			s.WriteRune('1')
		} else {
			s.WriteRune('0')
		}
	}
	return s.String()
}

// Read implements the bus.Device interface. The device is write only and
// always returns 0xff.
func (blk *Blink8) Read(_ uint16) (uint8, error) {
	return 0xff, nil
}

// Write implements the bus.Device interface.
func (blk *Blink8) Write(address uint16, data uint8) error {
	if address == Memtop && data == enableValue {
		blk.enabled = true
	}
	if address == Origin && blk.enabled {
		if _, err := fmt.Fprintf(blk.out, "%s %s\n", blk.Label(), LEDs(data)); err != nil {
			return curated.Errorf("blink8: %v", err)
		}
	}
	return nil
}

// Reset implements the bus.Device interface.
func (blk *Blink8) Reset() {
	blk.enabled = false
}

// IsMemory implements the bus.Device interface.
func (blk *Blink8) IsMemory() bool {
	return false
}

// StartAddress implements the bus.Device interface.
func (blk *Blink8) StartAddress() uint16 {
	return Origin
}

// EndAddress implements the bus.Device interface.
func (blk *Blink8) EndAddress() uint16 {
	return Memtop
}

// Size implements the bus.Device interface.
func (blk *Blink8) Size() int {
	return int(Memtop-Origin) + 1
}

// Label implements the bus.Device interface.
func (blk *Blink8) Label() string {
	return "Blink8"
}
