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

// Package memory implements the plain memory devices that can be attached to
// the bus: RAM and ROM.
//
//	CPU ---- cpu bus ---- BUS ---- RAM
//	                       |
//	                       |---- peripherals (I/O)
//	                       |
//	                        -<-- ROM
//
// The arrow pointing away from the ROM indicates that the CPU can only read
// from it. Writes to ROM are logged and ignored.
//
// Both memory types implement the bus.DebuggerBus interface. Poking a ROM
// address changes the contents of the ROM.
//
// LoadROM() reads a ROM image from disk.
package memory
