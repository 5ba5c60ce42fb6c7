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
	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/registers"
	"github.com/drewwalton19216801/butterfly/hardware/memory/cpubus"
)

// operator implementations return the number of additional cycles taken by
// the instruction, over and above those in the instruction definition and any
// page fault caused by the addressing mode.
type operator func(mc *CPU, defn *instructions.Definition) (int, error)

// operators is indexed by the Operator field of the instruction definition.
var operators = [instructions.NumOperators]operator{
	instructions.ADC: (*CPU).adc,
	instructions.AND: (*CPU).and,
	instructions.ASL: (*CPU).asl,
	instructions.BCC: (*CPU).bcc,
	instructions.BCS: (*CPU).bcs,
	instructions.BEQ: (*CPU).beq,
	instructions.BIT: (*CPU).bit,
	instructions.BMI: (*CPU).bmi,
	instructions.BNE: (*CPU).bne,
	instructions.BPL: (*CPU).bpl,
	instructions.BRK: (*CPU).brk,
	instructions.BVC: (*CPU).bvc,
	instructions.BVS: (*CPU).bvs,
	instructions.CLC: (*CPU).clc,
	instructions.CLD: (*CPU).cld,
	instructions.CLI: (*CPU).cli,
	instructions.CLV: (*CPU).clv,
	instructions.CMP: (*CPU).cmp,
	instructions.CPX: (*CPU).cpx,
	instructions.CPY: (*CPU).cpy,
	instructions.DEC: (*CPU).dec,
	instructions.DEX: (*CPU).dex,
	instructions.DEY: (*CPU).dey,
	instructions.EOR: (*CPU).eor,
	instructions.INC: (*CPU).inc,
	instructions.INX: (*CPU).inx,
	instructions.INY: (*CPU).iny,
	instructions.JMP: (*CPU).jmp,
	instructions.JSR: (*CPU).jsr,
	instructions.LDA: (*CPU).lda,
	instructions.LDX: (*CPU).ldx,
	instructions.LDY: (*CPU).ldy,
	instructions.LSR: (*CPU).lsr,
	instructions.NOP: (*CPU).nop,
	instructions.ORA: (*CPU).ora,
	instructions.PHA: (*CPU).pha,
	instructions.PHP: (*CPU).php,
	instructions.PLA: (*CPU).pla,
	instructions.PLP: (*CPU).plp,
	instructions.ROL: (*CPU).rol,
	instructions.ROR: (*CPU).ror,
	instructions.RTI: (*CPU).rti,
	instructions.RTS: (*CPU).rts,
	instructions.SBC: (*CPU).sbc,
	instructions.SEC: (*CPU).sec,
	instructions.SED: (*CPU).sed,
	instructions.SEI: (*CPU).sei,
	instructions.STA: (*CPU).sta,
	instructions.STX: (*CPU).stx,
	instructions.STY: (*CPU).sty,
	instructions.TAX: (*CPU).tax,
	instructions.TAY: (*CPU).tay,
	instructions.TSX: (*CPU).tsx,
	instructions.TXA: (*CPU).txa,
	instructions.TXS: (*CPU).txs,
	instructions.TYA: (*CPU).tya,

	// undocumented
	instructions.AHX: (*CPU).ahx,
	instructions.ALR: (*CPU).alr,
	instructions.ANC: (*CPU).anc,
	instructions.ARR: (*CPU).arr,
	instructions.AXS: (*CPU).axs,
	instructions.DCP: (*CPU).dcp,
	instructions.ISC: (*CPU).isc,
	instructions.KIL: (*CPU).kil,
	instructions.LAS: (*CPU).las,
	instructions.LAX: (*CPU).lax,
	instructions.RLA: (*CPU).rla,
	instructions.RRA: (*CPU).rra,
	instructions.SAX: (*CPU).sax,
	instructions.SHX: (*CPU).shx,
	instructions.SHY: (*CPU).shy,
	instructions.SLO: (*CPU).slo,
	instructions.SRE: (*CPU).sre,
	instructions.TAS: (*CPU).tas,
	instructions.XAA: (*CPU).xaa,
}

// fetch returns the operand of the current instruction. For the implied
// addressing mode the operand is the accumulator. An immediate operand has
// already been read by resolve() and is not read again.
func (mc *CPU) fetch(defn *instructions.Definition) (uint8, error) {
	switch defn.AddressingMode {
	case instructions.Implied:
		return mc.A.Value(), nil
	case instructions.Immediate:
		return uint8(mc.LastResult.InstructionData), nil
	}
	return mc.read8Bit(mc.address)
}

// modify implements the read-modify-write cycle. For the implied addressing
// mode the accumulator is modified in place. Returns the new value.
func (mc *CPU) modify(defn *instructions.Definition, f func(r *registers.Register)) (uint8, error) {
	if defn.AddressingMode == instructions.Implied {
		f(&mc.A)
		return mc.A.Value(), nil
	}

	v, err := mc.read8Bit(mc.address)
	if err != nil {
		return 0, err
	}

	mc.acc8.Load(v)
	f(&mc.acc8)

	return mc.acc8.Value(), mc.write8Bit(mc.address, mc.acc8.Value())
}

// load the operand into register r and set the zero and negative flags
func (mc *CPU) load(defn *instructions.Definition, r *registers.Register) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	r.Load(v)
	mc.Status.SetZN(v)
	return 0, nil
}

func (mc *CPU) store(v uint8) (int, error) {
	return 0, mc.write8Bit(mc.address, v)
}

// transfer the value of one register to another and set the zero and
// negative flags
func (mc *CPU) transfer(from registers.Register, to *registers.Register) (int, error) {
	to.Load(from.Value())
	mc.Status.SetZN(to.Value())
	return 0, nil
}

func (mc *CPU) compare(defn *instructions.Definition, r registers.Register) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	result, carry := r.Compare(v)
	mc.Status.Set(registers.Carry, carry)
	mc.Status.SetZN(result)
	return 0, nil
}

// branch to the relative address if cond is true. a taken branch costs one
// additional cycle and a further cycle if the destination is on a different
// page to the next instruction
func (mc *CPU) branch(cond bool) (int, error) {
	if !cond {
		return 0, nil
	}

	mc.LastResult.BranchSuccess = true
	if mc.PC.Relative(mc.relative) {
		mc.LastResult.PageFault = true
		return 2, nil
	}

	return 1, nil
}

func (mc *CPU) flag(f registers.Flags, set bool) (int, error) {
	mc.Status.Set(f, set)
	return 0, nil
}

func (mc *CPU) increment(r *registers.Register, v uint8) (int, error) {
	r.Add(v, false)
	mc.Status.SetZN(r.Value())
	return 0, nil
}

// add with carry. used by ADC and RRA
func (mc *CPU) addA(v uint8) {
	carry := mc.Status.IsSet(registers.Carry)

	if mc.Status.IsSet(registers.DecimalMode) {
		c, z, o, n := mc.A.AddDecimal(v, carry)
		mc.Status.Set(registers.Carry, c)
		mc.Status.Set(registers.Zero, z)
		mc.Status.Set(registers.Overflow, o)
		mc.Status.Set(registers.Negative, n)
		return
	}

	c, o := mc.A.Add(v, carry)
	mc.Status.Set(registers.Carry, c)
	mc.Status.Set(registers.Overflow, o)
	mc.Status.SetZN(mc.A.Value())
}

// subtract with carry. used by SBC and ISC. in decimal mode the flags are
// those of the equivalent binary subtraction
func (mc *CPU) subtractA(v uint8) {
	carry := mc.Status.IsSet(registers.Carry)

	bin := mc.A
	c, o := bin.Subtract(v, carry)
	mc.Status.Set(registers.Carry, c)
	mc.Status.Set(registers.Overflow, o)
	mc.Status.SetZN(bin.Value())

	if mc.Status.IsSet(registers.DecimalMode) {
		mc.A.SubtractDecimal(v, carry)
	} else {
		mc.A = bin
	}
}

func (mc *CPU) adc(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.addA(v)
	return 0, nil
}

func (mc *CPU) sbc(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.subtractA(v)
	return 0, nil
}

func (mc *CPU) and(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.A.AND(v)
	mc.Status.SetZN(mc.A.Value())
	return 0, nil
}

func (mc *CPU) ora(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.A.ORA(v)
	mc.Status.SetZN(mc.A.Value())
	return 0, nil
}

func (mc *CPU) eor(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.A.EOR(v)
	mc.Status.SetZN(mc.A.Value())
	return 0, nil
}

func (mc *CPU) asl(defn *instructions.Definition) (int, error) {
	_, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.ASL())
		mc.Status.SetZN(r.Value())
	})
	return 0, err
}

func (mc *CPU) lsr(defn *instructions.Definition) (int, error) {
	_, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.LSR())
		mc.Status.SetZN(r.Value())
	})
	return 0, err
}

func (mc *CPU) rol(defn *instructions.Definition) (int, error) {
	_, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.ROL(mc.Status.IsSet(registers.Carry)))
		mc.Status.SetZN(r.Value())
	})
	return 0, err
}

func (mc *CPU) ror(defn *instructions.Definition) (int, error) {
	_, err := mc.modify(defn, func(r *registers.Register) {
		mc.Status.Set(registers.Carry, r.ROR(mc.Status.IsSet(registers.Carry)))
		mc.Status.SetZN(r.Value())
	})
	return 0, err
}

func (mc *CPU) inc(defn *instructions.Definition) (int, error) {
	_, err := mc.modify(defn, func(r *registers.Register) {
		r.Add(1, false)
		mc.Status.SetZN(r.Value())
	})
	return 0, err
}

func (mc *CPU) dec(defn *instructions.Definition) (int, error) {
	_, err := mc.modify(defn, func(r *registers.Register) {
		r.Add(0xff, false)
		mc.Status.SetZN(r.Value())
	})
	return 0, err
}

func (mc *CPU) bit(defn *instructions.Definition) (int, error) {
	v, err := mc.fetch(defn)
	if err != nil {
		return 0, err
	}
	mc.Status.Set(registers.Zero, mc.A.Value()&v == 0)
	mc.Status.Set(registers.Negative, v&0x80 == 0x80)
	mc.Status.Set(registers.Overflow, v&0x40 == 0x40)
	return 0, nil
}

func (mc *CPU) bcc(_ *instructions.Definition) (int, error) {
	return mc.branch(!mc.Status.IsSet(registers.Carry))
}

func (mc *CPU) bcs(_ *instructions.Definition) (int, error) {
	return mc.branch(mc.Status.IsSet(registers.Carry))
}

func (mc *CPU) beq(_ *instructions.Definition) (int, error) {
	return mc.branch(mc.Status.IsSet(registers.Zero))
}

func (mc *CPU) bne(_ *instructions.Definition) (int, error) {
	return mc.branch(!mc.Status.IsSet(registers.Zero))
}

func (mc *CPU) bmi(_ *instructions.Definition) (int, error) {
	return mc.branch(mc.Status.IsSet(registers.Negative))
}

func (mc *CPU) bpl(_ *instructions.Definition) (int, error) {
	return mc.branch(!mc.Status.IsSet(registers.Negative))
}

func (mc *CPU) bvc(_ *instructions.Definition) (int, error) {
	return mc.branch(!mc.Status.IsSet(registers.Overflow))
}

func (mc *CPU) bvs(_ *instructions.Definition) (int, error) {
	return mc.branch(mc.Status.IsSet(registers.Overflow))
}

// BRK is a two byte instruction. the byte after the opcode is skipped and the
// address of the following instruction is pushed
func (mc *CPU) brk(_ *instructions.Definition) (int, error) {
	if err := mc.push16(mc.PC.Address()); err != nil {
		return 0, err
	}
	if err := mc.push(mc.Status.Value() | uint8(registers.Break)); err != nil {
		return 0, err
	}
	mc.Status.Set(registers.InterruptDisable, true)

	v, err := mc.read16Bit(cpubus.IRQ)
	if err != nil {
		return 0, err
	}
	mc.PC.Load(v)

	return 0, nil
}

func (mc *CPU) clc(_ *instructions.Definition) (int, error) {
	return mc.flag(registers.Carry, false)
}

func (mc *CPU) cld(_ *instructions.Definition) (int, error) {
	return mc.flag(registers.DecimalMode, false)
}

func (mc *CPU) cli(_ *instructions.Definition) (int, error) {
	return mc.flag(registers.InterruptDisable, false)
}

func (mc *CPU) clv(_ *instructions.Definition) (int, error) {
	return mc.flag(registers.Overflow, false)
}

func (mc *CPU) sec(_ *instructions.Definition) (int, error) {
	return mc.flag(registers.Carry, true)
}

func (mc *CPU) sed(_ *instructions.Definition) (int, error) {
	return mc.flag(registers.DecimalMode, true)
}

func (mc *CPU) sei(_ *instructions.Definition) (int, error) {
	return mc.flag(registers.InterruptDisable, true)
}

func (mc *CPU) cmp(defn *instructions.Definition) (int, error) {
	return mc.compare(defn, mc.A)
}

func (mc *CPU) cpx(defn *instructions.Definition) (int, error) {
	return mc.compare(defn, mc.X)
}

func (mc *CPU) cpy(defn *instructions.Definition) (int, error) {
	return mc.compare(defn, mc.Y)
}

func (mc *CPU) dex(_ *instructions.Definition) (int, error) {
	return mc.increment(&mc.X, 0xff)
}

func (mc *CPU) dey(_ *instructions.Definition) (int, error) {
	return mc.increment(&mc.Y, 0xff)
}

func (mc *CPU) inx(_ *instructions.Definition) (int, error) {
	return mc.increment(&mc.X, 1)
}

func (mc *CPU) iny(_ *instructions.Definition) (int, error) {
	return mc.increment(&mc.Y, 1)
}

func (mc *CPU) jmp(_ *instructions.Definition) (int, error) {
	mc.PC.Load(mc.address)
	return 0, nil
}

// JSR pushes the address of the last byte of the instruction. RTS adds one to
// the pulled address
func (mc *CPU) jsr(_ *instructions.Definition) (int, error) {
	if err := mc.push16(mc.PC.Address() - 1); err != nil {
		return 0, err
	}
	mc.PC.Load(mc.address)
	return 0, nil
}

func (mc *CPU) rts(_ *instructions.Definition) (int, error) {
	v, err := mc.pull16()
	if err != nil {
		return 0, err
	}
	mc.PC.Load(v + 1)
	return 0, nil
}

// the break flag does not exist in the status register. it is only ever seen
// in the copy pushed to the stack
func (mc *CPU) pullStatus() error {
	v, err := mc.pull()
	if err != nil {
		return err
	}
	mc.Status.Load(v &^ uint8(registers.Break))
	return nil
}

func (mc *CPU) rti(_ *instructions.Definition) (int, error) {
	if err := mc.pullStatus(); err != nil {
		return 0, err
	}
	v, err := mc.pull16()
	if err != nil {
		return 0, err
	}
	mc.PC.Load(v)
	return 0, nil
}

func (mc *CPU) lda(defn *instructions.Definition) (int, error) {
	return mc.load(defn, &mc.A)
}

func (mc *CPU) ldx(defn *instructions.Definition) (int, error) {
	return mc.load(defn, &mc.X)
}

func (mc *CPU) ldy(defn *instructions.Definition) (int, error) {
	return mc.load(defn, &mc.Y)
}

func (mc *CPU) sta(_ *instructions.Definition) (int, error) {
	return mc.store(mc.A.Value())
}

func (mc *CPU) stx(_ *instructions.Definition) (int, error) {
	return mc.store(mc.X.Value())
}

func (mc *CPU) sty(_ *instructions.Definition) (int, error) {
	return mc.store(mc.Y.Value())
}

// NOP includes the undocumented forms with an operand. the operand is read
// but discarded
func (mc *CPU) nop(defn *instructions.Definition) (int, error) {
	_, err := mc.fetch(defn)
	return 0, err
}

func (mc *CPU) pha(_ *instructions.Definition) (int, error) {
	return 0, mc.push(mc.A.Value())
}

// the pushed status always has the break and unused bits set
func (mc *CPU) php(_ *instructions.Definition) (int, error) {
	return 0, mc.push(mc.Status.Value() | uint8(registers.Break|registers.Unused))
}

func (mc *CPU) pla(_ *instructions.Definition) (int, error) {
	v, err := mc.pull()
	if err != nil {
		return 0, err
	}
	mc.A.Load(v)
	mc.Status.SetZN(v)
	return 0, nil
}

func (mc *CPU) plp(_ *instructions.Definition) (int, error) {
	return 0, mc.pullStatus()
}

func (mc *CPU) tax(_ *instructions.Definition) (int, error) {
	return mc.transfer(mc.A, &mc.X)
}

func (mc *CPU) tay(_ *instructions.Definition) (int, error) {
	return mc.transfer(mc.A, &mc.Y)
}

func (mc *CPU) tsx(_ *instructions.Definition) (int, error) {
	return mc.transfer(mc.SP, &mc.X)
}

func (mc *CPU) txa(_ *instructions.Definition) (int, error) {
	return mc.transfer(mc.X, &mc.A)
}

func (mc *CPU) tya(_ *instructions.Definition) (int, error) {
	return mc.transfer(mc.Y, &mc.A)
}

// TXS is the only transfer that does not affect the status register
func (mc *CPU) txs(_ *instructions.Definition) (int, error) {
	mc.SP.Load(mc.X.Value())
	return 0, nil
}
