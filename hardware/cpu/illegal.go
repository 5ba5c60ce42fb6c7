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
	"github.com/drewwalton19216801/butterfly/hardware/cpu/registers"
	"github.com/drewwalton19216801/butterfly/logger"
)

// the constant ORed with the accumulator by XAA. the value differs between
// individual chips
const xaaMagic = 0xee

// SLO is ASL followed by ORA with the result
func (mc *CPU) slo(defn *instructions.Definition) (int, error) {
	v, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.ASL())
	})
	if err != nil {
		return 0, err
	}
	mc.A.ORA(v)
	mc.Status.SetZN(mc.A.Value())
	return 0, nil
}

// RLA is ROL followed by AND with the result
func (mc *CPU) rla(defn *instructions.Definition) (int, error) {
	v, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.ROL(mc.Status.IsSet(registers.Carry)))
	})
	if err != nil {
		return 0, err
	}
	mc.A.AND(v)
	mc.Status.SetZN(mc.A.Value())
	return 0, nil
}

// SRE is LSR followed by EOR with the result
func (mc *CPU) sre(defn *instructions.Definition) (int, error) {
	v, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.LSR())
	})
	if err != nil {
		return 0, err
	}
	mc.A.EOR(v)
	mc.Status.SetZN(mc.A.Value())
	return 0, nil
}

// RRA is ROR followed by ADC with the result. the carry out of the rotation
// is the carry in to the addition
func (mc *CPU) rra(defn *instructions.Definition) (int, error) {
	v, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.ROR(mc.Status.IsSet(registers.Carry)))
	})
	if err != nil {
		return 0, err
	}
	mc.addA(v)
	return 0, nil
}

// DCP is DEC followed by CMP with the result
func (mc *CPU) dcp(defn *instructions.Definition) (int, error) {
	v, err := mc.modify(defn, func(r *registers.Register) {
		r.Add(0xff, false)
	})
	if err != nil {
		return 0, err
	}
	result, carry := mc.A.Compare(v)
	mc.Status.Set(registers.Carry, carry)
	mc.Status.SetZN(result)
	return 0, nil
}

// ISC is INC followed by SBC with the result
func (mc *CPU) isc(defn *instructions.Definition) (int, error) {
	v, err := mc.modify(defn, func(r *registers.Register) {
		r.Add(1, false)
	})
	if err != nil {
		return 0, err
	}
	mc.subtractA(v)
	return 0, nil
}

// SAX stores A AND X. the flags are not affected
func (mc *CPU) sax(_ *instructions.Definition) (int, error) {
	return mc.store(mc.A.Value() & mc.X.Value())
}

// LAX loads both A and X
func (mc *CPU) lax(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.A.Load(v)
	mc.X.Load(v)
	mc.Status.SetZN(v)
	return 0, nil
}

// ANC is AND immediate with bit 7 of the result copied to the carry flag
func (mc *CPU) anc(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.A.AND(v)
	mc.Status.SetZN(mc.A.Value())
	mc.Status.Set(registers.Carry, mc.A.IsNegative())
	return 0, nil
}

// ALR is AND immediate followed by LSR of the accumulator
func (mc *CPU) alr(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.A.AND(v)
	mc.Status.Set(registers.Carry, mc.A.LSR())
	mc.Status.SetZN(mc.A.Value())
	return 0, nil
}

// ARR is AND immediate followed by ROR of the accumulator. the carry and
// overflow flags are taken from bits 6 and 5 of the result. in decimal mode
// the result is adjusted in a similar way to ADC
func (mc *CPU) arr(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}

	carry := mc.Status.IsSet(registers.Carry)
	t := mc.A.Value() & v
	mc.A.Load(t)
	mc.A.ROR(carry)
	r := mc.A.Value()

	if !mc.Status.IsSet(registers.DecimalMode) {
		mc.Status.SetZN(r)
		mc.Status.Set(registers.Carry, r&0x40 == 0x40)
		mc.Status.Set(registers.Overflow, ((r>>6)^(r>>5))&0x01 == 0x01)
		return 0, nil
	}

	mc.Status.Set(registers.Negative, carry)
	mc.Status.Set(registers.Zero, r == 0)
	mc.Status.Set(registers.Overflow, (r^t)&0x40 == 0x40)

	if (t&0x0f)+(t&0x01) > 0x05 {
		r = (r & 0xf0) | ((r + 0x06) & 0x0f)
	}
	if uint16(t&0xf0)+uint16(t&0x10) > 0x50 {
		r += 0x60
		mc.Status.Set(registers.Carry, true)
	} else {
		mc.Status.Set(registers.Carry, false)
	}
	mc.A.Load(r)

	return 0, nil
}

// XAA is unstable. the accumulator is ORed with a chip dependent constant
// before being ANDed with X and the operand
func (mc *CPU) xaa(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.A.Load((mc.A.Value() | xaaMagic) & mc.X.Value() & v)
	mc.Status.SetZN(mc.A.Value())
	mc.LastResult.CPUBug = execution.UnstableOpcode
	return 0, nil
}

// AXS sets X to (A AND X) minus the operand. the subtraction is without
// borrow and sets the flags like CMP
func (mc *CPU) axs(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.X.Load(mc.A.Value() & mc.X.Value())
	result, carry := mc.X.Compare(v)
	mc.X.Load(result)
	mc.Status.Set(registers.Carry, carry)
	mc.Status.SetZN(result)
	return 0, nil
}

// storeHigh implements the unstable store instructions. the value is ANDed
// with the high byte of the base address plus one. when indexing crosses a
// page the high byte of the effective address is replaced by the stored value
func (mc *CPU) storeHigh(v uint8) (int, error) {
	v &= uint8(mc.base>>8) + 1

	address := mc.address
	if mc.pageCross {
		address = (uint16(v) << 8) | (address & 0x00ff)
	}

	mc.LastResult.CPUBug = execution.UnstableOpcode
	return 0, mc.write8Bit(address, v)
}

// AHX stores A AND X AND (H+1)
func (mc *CPU) ahx(_ *instructions.Definition) (int, error) {
	return mc.storeHigh(mc.A.Value() & mc.X.Value())
}

// SHX stores X AND (H+1)
func (mc *CPU) shx(_ *instructions.Definition) (int, error) {
	return mc.storeHigh(mc.X.Value())
}

// SHY stores Y AND (H+1)
func (mc *CPU) shy(_ *instructions.Definition) (int, error) {
	return mc.storeHigh(mc.Y.Value())
}

// TAS sets SP to A AND X and then stores SP AND (H+1)
func (mc *CPU) tas(_ *instructions.Definition) (int, error) {
	mc.SP.Load(mc.A.Value() & mc.X.Value())
	return mc.storeHigh(mc.SP.Value())
}

// LAS sets A, X and SP to the operand AND SP
func (mc *CPU) las(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	v &= mc.SP.Value()
	mc.A.Load(v)
	mc.X.Load(v)
	mc.SP.Load(v)
	mc.Status.SetZN(v)
	return 0, nil
}

// KIL halts the CPU. only a reset will restart it
func (mc *CPU) kil(defn *instructions.Definition) (int, error) {
	mc.Killed = true
	logger.Logf(logger.Allow, "cpu", "KIL instruction (%#02x) at %#04x", defn.OpCode, mc.LastResult.Address)
	return 0, mc.halted()
}
