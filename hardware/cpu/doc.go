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

// Package cpu emulates the NMOS 6502 microprocessor. Like all 8-bit
// processors of the era, the 6502 executes instructions according to the
// single byte value read from an address pointed to by the program counter.
// This single byte is the opcode and is looked up in the instruction table.
// The instruction definition for that opcode is then used to move execution
// of the program forward.
//
// The CPU type requires an implementation of the cpubus.Memory interface. In
// practice this is an instance of the Bus type found in the bus package.
//
// The CPU is driven by calling Tick() once per clock cycle. A tick at an
// instruction boundary fetches, decodes and executes the next instruction in
// its entirety. The remaining cycles of the instruction are consumed by
// subsequent ticks, during which the CPU does nothing.
//
//	mc := cpu.NewCPU(prefs, mem)
//	mc.Reset()
//
//	for {
//		if err := mc.Tick(); err != nil {
//			break
//		}
//	}
//
// ExecuteInstruction() can be called directly when cycle level stepping is not
// required. In that case no clock ticks are consumed.
//
// The LastResult field can be probed for information about the last
// instruction executed. See the execution package for more information.
//
// Interrupts are requested with the IRQ() and NMI() functions and are
// serviced at the next instruction boundary. The Interrupt() function
// services an interrupt immediately.
//
// Undocumented opcodes are executed when the IllegalOpcodes preference is
// true. Otherwise they are skipped, taking the nominal number of cycles. The
// KIL opcode halts the CPU until the next reset.
package cpu
