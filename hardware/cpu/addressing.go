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

package cpu

import (
	"github.com/drewwalton19216801/butterfly/hardware/cpu/execution"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
)

// resolve reads the operand of the current instruction and calculates the
// effective address according to the addressing mode. On entry the PC points
// to the first byte after the opcode. On exit it points to the next
// instruction.
//
// side-effects:
//   - updates address, base, relative and pageCross fields
//   - updates LastResult.InstructionData and LastResult.CPUBug
func (mc *CPU) resolve(defn *instructions.Definition) error {
	switch defn.AddressingMode {
	case instructions.Implied:
		// the accumulator is the operand, if there is one

	case instructions.Immediate:
		mc.address = mc.PC.Address()
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)

	case instructions.Relative:
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)

		// sign extend
		mc.relative = uint16(int16(int8(v)))

	case instructions.ZeroPage:
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)
		mc.address = uint16(v)

	case instructions.ZeroPageIndexedX:
		return mc.zeroPageIndexed(mc.X.Value())

	case instructions.ZeroPageIndexedY:
		return mc.zeroPageIndexed(mc.Y.Value())

	case instructions.Absolute:
		v, err := mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = v
		mc.address = v

	case instructions.AbsoluteIndexedX:
		return mc.absoluteIndexed(mc.X.Value())

	case instructions.AbsoluteIndexedY:
		return mc.absoluteIndexed(mc.Y.Value())

	case instructions.Indirect:
		ptr, err := mc.read16BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = ptr

		lo, err := mc.read8Bit(ptr)
		if err != nil {
			return err
		}

		// the high byte of the pointer is not incremented. if the pointer is
		// at the end of a page then the high byte of the target address is
		// read from the start of the same page
		hiPtr := (ptr & 0xff00) | uint16(uint8(ptr)+1)
		if ptr&0x00ff == 0x00ff {
			mc.LastResult.CPUBug = execution.JmpIndirectAddressingBug
		}

		hi, err := mc.read8Bit(hiPtr)
		if err != nil {
			return err
		}

		mc.address = (uint16(hi) << 8) | uint16(lo)

	case instructions.IndexedIndirect:
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)

		// the pointer never leaves the zero page
		ptr := v + mc.X.Value()
		mc.address, err = mc.read16BitZeroPage(ptr)
		if err != nil {
			return err
		}

	case instructions.IndirectIndexed:
		v, err := mc.read8BitPC()
		if err != nil {
			return err
		}
		mc.LastResult.InstructionData = uint16(v)

		mc.base, err = mc.read16BitZeroPage(v)
		if err != nil {
			return err
		}

		mc.address = mc.base + mc.Y.Address()
		mc.pageCross = mc.base&0xff00 != mc.address&0xff00
	}

	return nil
}

func (mc *CPU) zeroPageIndexed(index uint8) error {
	v, err := mc.read8BitPC()
	if err != nil {
		return err
	}
	mc.LastResult.InstructionData = uint16(v)

	// the effective address wraps around the zero page
	mc.base = uint16(v)
	mc.address = uint16(v + index)
	if mc.address < mc.base {
		mc.LastResult.CPUBug = execution.ZeroPageIndexBug
	}

	return nil
}

func (mc *CPU) absoluteIndexed(index uint8) error {
	v, err := mc.read16BitPC()
	if err != nil {
		return err
	}
	mc.LastResult.InstructionData = v

	mc.base = v
	mc.address = v + uint16(index)
	mc.pageCross = mc.base&0xff00 != mc.address&0xff00

	return nil
}

// read16BitZeroPage reads a pointer from the zero page. The high byte wraps
// around to the start of the zero page.
func (mc *CPU) read16BitZeroPage(address uint8) (uint16, error) {
	lo, err := mc.read8Bit(uint16(address))
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8Bit(uint16(address + 1))
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}
