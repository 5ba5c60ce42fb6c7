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

// Package cpubus defines the interface the CPU uses to access memory.
package cpubus

// Memory defines the operations for the memory system when accessed from the
// CPU. The Bus type in the bus package implements this interface and routes
// each access to the device that owns the address, meaning that the CPU need
// not care which device it is reading from or writing to.
type Memory interface {
	Read(address uint16) (uint8, error)
	Write(address uint16, data uint8) error
}

// The addresses of the interrupt vectors. Each vector is a little-endian word.
const (
	NMI   uint16 = 0xfffa
	Reset uint16 = 0xfffc
	IRQ   uint16 = 0xfffe
)

// StackPage is the page of memory used by the stack.
const StackPage uint16 = 0x0100
