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

// Package bus implements the address bus shared by the CPU and the devices
// attached to it.
//
// Devices own a contiguous, inclusive range of addresses. The Bus is an
// ordered list of devices. Reads and writes are forwarded to the first
// device, in attachment order, whose range contains the address. There is no
// collision detection; where ranges overlap the device attached first wins.
//
// Reading from an address that no device owns returns zero. Writing to such
// an address does nothing other than make a note of the event in the log and
// increase the count returned by UnmappedWrites().
//
// Devices are attached before the bus is given to the CPU. After that the
// list of devices does not change.
package bus
