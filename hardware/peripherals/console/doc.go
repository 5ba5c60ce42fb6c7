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

// Package console implements a simple serial console device. The device
// occupies two addresses:
//
//	+0	status register (read only)
//		bit 0: input byte ready
//		bit 1: output ready (always set)
//	+1	data register
//		read: the next input byte (zero if there is none)
//		write: output the byte
//
// Input bytes are queued with the Feed() function. The Host type connects the
// device to the terminal the program is running in.
package console
