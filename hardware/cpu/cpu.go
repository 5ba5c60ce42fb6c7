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
	"fmt"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/execution"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/registers"
	"github.com/drewwalton19216801/butterfly/hardware/memory/cpubus"
	"github.com/drewwalton19216801/butterfly/hardware/preferences"
	"github.com/drewwalton19216801/butterfly/logger"
)

// Sentinal error patterns.
const (
	Halted                  = "cpu: halted by KIL instruction (%#02x at %#04x)"
	InvalidRegister         = "cpu: unknown register (%s)"
	InvalidRegisterValue    = "cpu: value %#x too large for register %s"
	InterruptMidInstruction = "cpu: cannot service %s mid-instruction"
)

// the value of the stack pointer after a reset
const resetSP = 0xfd

// CPU implements the NMOS 6502. Register logic is implemented by the types
// in the registers sub-package.
type CPU struct {
	prefs *preferences.Preferences
	mem   cpubus.Memory

	PC     registers.ProgramCounter
	A      registers.Register
	X      registers.Register
	Y      registers.Register
	SP     registers.Register
	Status registers.StatusRegister

	// some operations only need an accumulator
	acc8 registers.Register

	// last result. the address field is guaranteed to be valid except when
	// the CPU has just been reset
	LastResult execution.Result

	// the cpu has encountered a KIL instruction. requires a Reset()
	Killed bool

	// number of illegal opcodes skipped because the IllegalOpcodes preference
	// is false
	SkippedOpcodes int

	// number of clock ticks since the last reset
	TotalCycles uint64

	// number of cycles remaining for the current instruction. Tick() begins a
	// new instruction when this is zero
	pending int

	// interrupt lines. the IRQ line is level triggered. an NMI is latched
	// when requested and cleared when serviced
	irq bool
	nmi bool

	// the working registers of the instruction being executed. address is
	// the effective address and base is the address before indexing.
	// relative is the sign extended branch offset. pageCross is true if
	// indexing moved the effective address to a different page
	address   uint16
	base      uint16
	relative  uint16
	pageCross bool
}

// NewCPU is the preferred method of initialisation for the CPU structure. The
// prefs argument can be nil, in which case all opcodes are executed.
//
// The CPU must be Reset() before use.
func NewCPU(prefs *preferences.Preferences, mem cpubus.Memory) *CPU {
	return &CPU{
		prefs:  prefs,
		mem:    mem,
		PC:     registers.NewProgramCounter(0),
		A:      registers.NewRegister(0, "A"),
		X:      registers.NewRegister(0, "X"),
		Y:      registers.NewRegister(0, "Y"),
		SP:     registers.NewRegister(resetSP, "SP"),
		Status: registers.NewStatusRegister(),
		acc8:   registers.NewRegister(0, "accumulator"),
	}
}

// Plumb a new memory implementation into the CPU.
func (mc *CPU) Plumb(mem cpubus.Memory) {
	mc.mem = mem
}

func (mc *CPU) String() string {
	return fmt.Sprintf("%s=%s %s=%s %s=%s %s=%s %s=%s %s=%s",
		mc.PC.Label(), mc.PC, mc.A.Label(), mc.A,
		mc.X.Label(), mc.X, mc.Y.Label(), mc.Y,
		mc.SP.Label(), mc.SP, mc.Status.Label(), mc.Status)
}

// Reset reinitialises all registers and loads the PC with the address stored
// in the reset vector. Any outstanding cycles of the current instruction are
// forgotten and a halted CPU will run again.
func (mc *CPU) Reset() error {
	mc.LastResult.Reset()
	mc.Killed = false
	mc.pending = 0
	mc.TotalCycles = 0
	mc.nmi = false

	mc.A.Load(0)
	mc.X.Load(0)
	mc.Y.Load(0)
	mc.SP.Load(resetSP)
	mc.Status.Reset()

	return mc.LoadPCIndirect(cpubus.Reset)
}

// HasReset checks whether the CPU has been reset and not executed an
// instruction since.
func (mc *CPU) HasReset() bool {
	return mc.LastResult.Address == 0 && mc.LastResult.Defn == nil && mc.LastResult.Interrupt == ""
}

// Pending returns the number of cycles remaining for the current instruction.
func (mc *CPU) Pending() int {
	return mc.pending
}

// LoadPCIndirect loads the contents of indirectAddress into the PC.
func (mc *CPU) LoadPCIndirect(indirectAddress uint16) error {
	if mc.pending > 0 {
		return curated.Errorf("cpu: load PC indirect invalid mid-instruction")
	}

	v, err := mc.read16Bit(indirectAddress)
	if err != nil {
		return err
	}
	mc.PC.Load(v)

	return nil
}

// read8Bit returns 8bit value from the specified address.
func (mc *CPU) read8Bit(address uint16) (uint8, error) {
	return mc.mem.Read(address)
}

// write8Bit writes 8 bits to the specified address.
func (mc *CPU) write8Bit(address uint16, value uint8) error {
	return mc.mem.Write(address, value)
}

// read16Bit returns 16bit value from the specified address. The value is
// stored in little-endian order.
func (mc *CPU) read16Bit(address uint16) (uint16, error) {
	lo, err := mc.mem.Read(address)
	if err != nil {
		return 0, err
	}

	hi, err := mc.mem.Read(address + 1)
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// read8BitPC reads 8 bits from the memory location pointed to by PC.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read8BitPC() (uint8, error) {
	v, err := mc.read8Bit(mc.PC.Address())
	if err != nil {
		return 0, err
	}

	mc.PC.Add(1)
	mc.LastResult.ByteCount++

	return v, nil
}

// read16BitPC reads 16 bits from the memory location pointed to by PC.
//
// side-effects:
//   - updates program counter
//   - updates LastResult.ByteCount
func (mc *CPU) read16BitPC() (uint16, error) {
	lo, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	hi, err := mc.read8BitPC()
	if err != nil {
		return 0, err
	}

	return (uint16(hi) << 8) | uint16(lo), nil
}

// the stack is always in page one. the stack pointer wraps within the page
func (mc *CPU) push(value uint8) error {
	err := mc.write8Bit(cpubus.StackPage|mc.SP.Address(), value)
	if err != nil {
		return err
	}
	mc.SP.Load(mc.SP.Value() - 1)
	return nil
}

func (mc *CPU) pull() (uint8, error) {
	mc.SP.Load(mc.SP.Value() + 1)
	return mc.read8Bit(cpubus.StackPage | mc.SP.Address())
}

// the high byte is pushed first
func (mc *CPU) push16(value uint16) error {
	if err := mc.push(uint8(value >> 8)); err != nil {
		return err
	}
	return mc.push(uint8(value))
}

func (mc *CPU) pull16() (uint16, error) {
	lo, err := mc.pull()
	if err != nil {
		return 0, err
	}
	hi, err := mc.pull()
	if err != nil {
		return 0, err
	}
	return (uint16(hi) << 8) | uint16(lo), nil
}

// halted returns the error for a CPU that has executed a KIL instruction.
// LastResult still refers to the KIL instruction.
func (mc *CPU) halted() error {
	var opcode uint8
	if mc.LastResult.Defn != nil {
		opcode = mc.LastResult.Defn.OpCode
	}
	return curated.Errorf(Halted, opcode, mc.LastResult.Address)
}

// illegalOpcodes returns true if undocumented opcodes should be executed.
func (mc *CPU) illegalOpcodes() bool {
	return mc.prefs == nil || mc.prefs.IllegalOpcodes.Get().(bool)
}

// Tick advances the CPU by one clock cycle. If no cycles remain for the
// current instruction then any pending interrupt is serviced or, if there is
// no interrupt, the next instruction is executed. Otherwise the tick consumes
// one of the remaining cycles.
//
// A halted CPU returns the Halted error on every tick.
func (mc *CPU) Tick() error {
	if mc.Killed {
		return mc.halted()
	}

	if mc.pending > 0 {
		mc.pending--
		mc.TotalCycles++
		return nil
	}

	var err error

	switch {
	case mc.nmi:
		mc.nmi = false
		err = mc.service(NMI)
	case mc.irq && !mc.Status.IsSet(registers.InterruptDisable):
		err = mc.service(IRQ)
	default:
		err = mc.ExecuteInstruction()
	}

	// the first cycle of the instruction is consumed by this tick
	mc.TotalCycles++
	if mc.LastResult.Cycles > 0 {
		mc.pending = mc.LastResult.Cycles - 1
	}

	return err
}

// ExecuteInstruction fetches, decodes and executes the instruction at the
// current PC. The number of cycles taken by the instruction is recorded in
// LastResult.
//
// The function does not consume clock ticks. When the CPU is being driven by
// Tick() this function should not be called directly.
func (mc *CPU) ExecuteInstruction() error {
	if mc.Killed {
		return mc.halted()
	}

	mc.LastResult.Reset()
	mc.LastResult.Address = mc.PC.Address()
	mc.address = 0
	mc.base = 0
	mc.relative = 0
	mc.pageCross = false

	opcode, err := mc.read8BitPC()
	if err != nil {
		return err
	}

	defn := instructions.Lookup(opcode)
	mc.LastResult.Defn = defn

	err = mc.resolve(defn)
	if err != nil {
		return err
	}

	extra := 0

	if defn.Illegal && !mc.illegalOpcodes() {
		// the opcode is treated as a no-op of nominal length
		mc.LastResult.Skipped = true
		mc.SkippedOpcodes++
		logger.Logf(logger.Allow, "cpu", "illegal opcode %#02x (%s) skipped at %#04x", opcode, defn.Operator, mc.LastResult.Address)
	} else {
		if mc.pageCross && defn.PageSensitive {
			mc.LastResult.PageFault = true
			extra++
		}

		n, err := operators[defn.Operator](mc, defn)
		extra += n

		// the result is finalised even if the operator failed so that the
		// caller can inspect it
		mc.LastResult.Cycles = defn.Cycles + extra
		mc.LastResult.Final = true

		if err != nil {
			return err
		}
	}

	mc.LastResult.Cycles = defn.Cycles + extra
	mc.LastResult.Final = true

	return nil
}
