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

package bus

import (
	"fmt"
	"strings"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/logger"
)

// Error patterns.
const (
	InvalidDevice = "bus: invalid device %s (%#04x to %#04x)"
)

// Bus routes memory accesses to the attached devices.
type Bus struct {
	devices []Device

	unmappedWrites int
}

// NewBus is the preferred method of initialisation for the Bus type. The
// devices are attached in the order they are given.
func NewBus(devices ...Device) (*Bus, error) {
	b := &Bus{}
	for _, d := range devices {
		if err := b.Attach(d); err != nil {
			return nil, err
		}
	}
	return b, nil
}

func (b *Bus) String() string {
	s := strings.Builder{}
	for _, d := range b.devices {
		kind := "I/O"
		if d.IsMemory() {
			kind = "memory"
		}
		s.WriteString(fmt.Sprintf("%#04x-%#04x %s (%s)\n", d.StartAddress(), d.EndAddress(), d.Label(), kind))
	}
	return strings.TrimSuffix(s.String(), "\n")
}

// Attach device to the end of the device list. Attach should only be called
// while the machine is being assembled.
func (b *Bus) Attach(d Device) error {
	if d.StartAddress() > d.EndAddress() || int(d.EndAddress()-d.StartAddress())+1 != d.Size() {
		return curated.Errorf(InvalidDevice, d.Label(), d.StartAddress(), d.EndAddress())
	}
	b.devices = append(b.devices, d)
	return nil
}

// Devices returns a copy of the list of attached devices.
func (b *Bus) Devices() []Device {
	d := make([]Device, len(b.devices))
	copy(d, b.devices)
	return d
}

// Find returns the device that owns the address.
func (b *Bus) Find(address uint16) (Device, bool) {
	for _, d := range b.devices {
		if address >= d.StartAddress() && address <= d.EndAddress() {
			return d, true
		}
	}
	return nil, false
}

// Read implements the cpubus.Memory interface. Reading from an unmapped
// address returns zero.
func (b *Bus) Read(address uint16) (uint8, error) {
	d, ok := b.Find(address)
	if !ok {
		return 0x00, nil
	}
	return d.Read(address)
}

// Write implements the cpubus.Memory interface. Writing to an unmapped
// address is ignored.
func (b *Bus) Write(address uint16, data uint8) error {
	d, ok := b.Find(address)
	if !ok {
		b.unmappedWrites++
		logger.Logf(logger.Allow, "bus", "unmapped write (%#02x to %#04x)", data, address)
		return nil
	}
	return d.Write(address, data)
}

// Peek reads the address without triggering any side effects in the device.
// Devices that do not implement DebuggerBus are read normally.
func (b *Bus) Peek(address uint16) (uint8, error) {
	d, ok := b.Find(address)
	if !ok {
		return 0x00, nil
	}
	if db, ok := d.(DebuggerBus); ok {
		return db.Peek(address)
	}
	return d.Read(address)
}

// Poke writes to the address without triggering any side effects in the
// device. Poking ROM changes the contents of the ROM.
func (b *Bus) Poke(address uint16, data uint8) error {
	d, ok := b.Find(address)
	if !ok {
		return nil
	}
	if db, ok := d.(DebuggerBus); ok {
		return db.Poke(address, data)
	}
	return d.Write(address, data)
}

// IsMemory returns true if the address is owned by a memory device.
func (b *Bus) IsMemory(address uint16) bool {
	d, ok := b.Find(address)
	return ok && d.IsMemory()
}

// IsIO returns true if the address is owned by an I/O device.
func (b *Bus) IsIO(address uint16) bool {
	d, ok := b.Find(address)
	return ok && !d.IsMemory()
}

// Reset all attached devices.
func (b *Bus) Reset() {
	b.unmappedWrites = 0
	for _, d := range b.devices {
		d.Reset()
	}
}

// UnmappedWrites returns the number of writes to addresses that no device
// owns since the last reset.
func (b *Bus) UnmappedWrites() int {
	return b.unmappedWrites
}
