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

package memory

import (
	"fmt"
	"strings"

	"github.com/drewwalton19216801/butterfly/hardware/preferences"
)

// RAM is a read/write memory device.
type RAM struct {
	prefs *preferences.Preferences

	origin uint16
	memtop uint16
	memory []uint8
}

// NewRAM is the preferred method of initialisation for the RAM type. The
// preferences argument can be nil.
func NewRAM(prefs *preferences.Preferences, origin uint16, memtop uint16) *RAM {
	ram := &RAM{
		prefs:  prefs,
		origin: origin,
		memtop: memtop,
	}
	ram.memory = make([]uint8, int(memtop-origin)+1)
	ram.Reset()
	return ram
}

func (ram RAM) String() string {
	s := strings.Builder{}
	s.WriteString("       -0 -1 -2 -3 -4 -5 -6 -7 -8 -9 -A -B -C -D -E -F\n")
	for y := 0; y < len(ram.memory); y += 16 {
		s.WriteString(fmt.Sprintf("%04X |", int(ram.origin)+y))
		for x := 0; x < 16 && y+x < len(ram.memory); x++ {
			s.WriteString(fmt.Sprintf(" %02x", ram.memory[y+x]))
		}
		s.WriteString("\n")
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Label implements the bus.Device interface.
func (ram RAM) Label() string {
	return "RAM"
}

// Reset implements the bus.Device interface. RAM is zeroed unless the
// RandomState preference is set.
func (ram *RAM) Reset() {
	if ram.prefs != nil && ram.prefs.RandomState.Get().(bool) {
		for i := range ram.memory {
			ram.memory[i] = uint8(ram.prefs.RandSrc.IntN(0x100))
		}
		return
	}
	clear(ram.memory)
}

// IsMemory implements the bus.Device interface.
func (ram RAM) IsMemory() bool {
	return true
}

// StartAddress implements the bus.Device interface.
func (ram RAM) StartAddress() uint16 {
	return ram.origin
}

// EndAddress implements the bus.Device interface.
func (ram RAM) EndAddress() uint16 {
	return ram.memtop
}

// Size implements the bus.Device interface.
func (ram RAM) Size() int {
	return len(ram.memory)
}

// Read implements the bus.Device interface.
func (ram RAM) Read(address uint16) (uint8, error) {
	return ram.memory[address-ram.origin], nil
}

// Write implements the bus.Device interface.
func (ram *RAM) Write(address uint16, data uint8) error {
	ram.memory[address-ram.origin] = data
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (ram RAM) Peek(address uint16) (uint8, error) {
	return ram.Read(address)
}

// Poke implements the bus.DebuggerBus interface.
func (ram *RAM) Poke(address uint16, value uint8) error {
	return ram.Write(address, value)
}
