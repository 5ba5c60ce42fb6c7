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
	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/logger"
)

// Error patterns.
const (
	ROMTooLarge = "rom: image of %d bytes does not fit at %#04x"
	ROMEmpty    = "rom: image is empty"
)

// ROM is a read only memory device.
type ROM struct {
	origin uint16
	memtop uint16
	data   []uint8
}

// NewROM is the preferred method of initialisation for the ROM type. The ROM
// occupies as many addresses as there are bytes in data, starting at origin.
// The data is copied.
func NewROM(origin uint16, data []uint8) (*ROM, error) {
	if len(data) == 0 {
		return nil, curated.Errorf(ROMEmpty)
	}
	if int(origin)+len(data) > 0x10000 {
		return nil, curated.Errorf(ROMTooLarge, len(data), origin)
	}

	rom := &ROM{
		origin: origin,
		memtop: uint16(int(origin) + len(data) - 1),
		data:   make([]uint8, len(data)),
	}
	copy(rom.data, data)

	return rom, nil
}

// Label implements the bus.Device interface.
func (rom ROM) Label() string {
	return "ROM"
}

// Reset implements the bus.Device interface. ROM contents survive a reset.
func (rom *ROM) Reset() {
}

// IsMemory implements the bus.Device interface.
func (rom ROM) IsMemory() bool {
	return true
}

// StartAddress implements the bus.Device interface.
func (rom ROM) StartAddress() uint16 {
	return rom.origin
}

// EndAddress implements the bus.Device interface.
func (rom ROM) EndAddress() uint16 {
	return rom.memtop
}

// Size implements the bus.Device interface.
func (rom ROM) Size() int {
	return len(rom.data)
}

// Read implements the bus.Device interface.
func (rom ROM) Read(address uint16) (uint8, error) {
	return rom.data[address-rom.origin], nil
}

// Write implements the bus.Device interface. The write is ignored.
func (rom *ROM) Write(address uint16, data uint8) error {
	logger.Logf(logger.Allow, "rom", "illegal ROM write (%#02x to %#04x)", data, address)
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (rom ROM) Peek(address uint16) (uint8, error) {
	return rom.Read(address)
}

// Poke implements the bus.DebuggerBus interface.
func (rom *ROM) Poke(address uint16, value uint8) error {
	rom.data[address-rom.origin] = value
	return nil
}
