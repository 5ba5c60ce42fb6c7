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

// Package registers implements the three types of register found in the 6502.
// General purpose 8 bit registers (used for the accumulator, the index
// registers and the stack pointer), the 16 bit program counter and the status
// register.
//
// The 8 bit Register type implements the arithmetic and logical operations
// of the CPU. The operations return the carry and overflow states that result
// from them but do not touch the status register. Updating the status
// register is left to the CPU. For example:
//
//	a.Load(10)
//	carry, overflow := a.Subtract(11, true)
//	sr.Set(registers.Zero, a.IsZero())
//
// In this case, the Zero flag will be cleared and the Carry flag will be
// cleared because of the borrow.
//
// All registers wrap modulo their bit width.
package registers
