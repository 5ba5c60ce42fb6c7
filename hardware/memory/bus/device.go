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

// Device is implemented by anything that can be attached to the bus: plain
// memory such as RAM and ROM, and memory mapped peripherals.
//
// The address argument to Read() and Write() is the full 16 bit address. It
// is guaranteed to be within StartAddress() and EndAddress() when called by
// the Bus.
type Device interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error

	// Reset the device to its power-on state
	Reset()

	// IsMemory returns true if the device is memory. false indicates that
	// the device is I/O
	IsMemory() bool

	StartAddress() uint16
	EndAddress() uint16

	// the number of addresses owned by the device
	Size() int

	Label() string
}

// DebuggerBus defines the meta-operations for devices. Think of these
// functions as "debugging" functions, that is operations outside of the
// normal operation of the machine. Devices that have side effects on reading
// or writing should implement this interface.
type DebuggerBus interface {
	Peek(address uint16) (uint8, error)
	Poke(address uint16, value uint8) error
}
