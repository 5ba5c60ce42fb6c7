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

// Package hardware is the base package for the emulation. It and its
// sub-packages contain everything required for a headless emulation.
//
// The Machine type is the root of the emulation and contains references to
// the CPU and the Bus. Devices are attached to the bus when the machine is
// created. Devices that need to know about the passing of time implement the
// Ticker interface and are added with AddTicker().
//
// From here, the emulation can either be started to run continuously (with
// optional callback to check for continuation); or it can be stepped cycle
// by cycle or instruction by instruction.
package hardware
