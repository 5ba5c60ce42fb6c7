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
	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/execution"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/registers"
	"github.com/drewwalton19216801/butterfly/hardware/memory/cpubus"
)

// InterruptType identifies the interrupts recognised by the CPU.
type InterruptType int

// List of valid interrupt types.
const (
	IRQ InterruptType = iota
	NMI
	RESET
)

func (it InterruptType) String() string {
	switch it {
	case IRQ:
		return "IRQ"
	case NMI:
		return "NMI"
	case RESET:
		return "RESET"
	}
	return "unknown interrupt"
}

// Vector returns the address of the interrupt vector.
func (it InterruptType) Vector() uint16 {
	switch it {
	case NMI:
		return cpubus.NMI
	case RESET:
		return cpubus.Reset
	}
	return cpubus.IRQ
}

// IRQ sets the state of the IRQ line. The line is level triggered. An IRQ is
// serviced by Tick() at every instruction boundary while the line is asserted
// and the InterruptDisable flag is clear.
func (mc *CPU) IRQ(asserted bool) {
	mc.irq = asserted
}

// NMI requests a non-maskable interrupt. The request is serviced by Tick() at
// the next instruction boundary, before any IRQ.
func (mc *CPU) NMI() {
	mc.nmi = true
}

// Interrupt services the interrupt immediately, without waiting for the next
// instruction boundary. The interrupt cycles are consumed by subsequent calls
// to Tick().
//
// An IRQ is ignored if the InterruptDisable flag is set. It is an error to call
// this function while an instruction is in progress. A halted CPU will only
// accept a RESET.
func (mc *CPU) Interrupt(it InterruptType) error {
	if mc.pending > 0 {
		return curated.Errorf(InterruptMidInstruction, it)
	}

	if mc.Killed && it != RESET {
		return mc.halted()
	}

	if it == IRQ && mc.Status.IsSet(registers.InterruptDisable) {
		return nil
	}

	if err := mc.service(it); err != nil {
		return err
	}

	mc.pending = mc.LastResult.Cycles

	return nil
}

// service the interrupt. the PC and status register are pushed to the stack
// and the PC loaded from the vector. a RESET reinitialises the registers
// instead of using the stack
func (mc *CPU) service(it InterruptType) error {
	if it == RESET {
		if err := mc.Reset(); err != nil {
			return err
		}
	} else {
		mc.LastResult.Reset()

		if err := mc.push16(mc.PC.Address()); err != nil {
			return err
		}

		// the break flag is clear in the pushed status. this is how an
		// interrupt handler can tell a hardware interrupt from a BRK
		v := (mc.Status.Value() &^ uint8(registers.Break)) | uint8(registers.Unused)
		if err := mc.push(v); err != nil {
			return err
		}

		mc.Status.Set(registers.InterruptDisable, true)

		if err := mc.LoadPCIndirect(it.Vector()); err != nil {
			return err
		}
	}

	mc.LastResult.Address = mc.PC.Address()
	mc.LastResult.Interrupt = it.String()
	mc.LastResult.Cycles = execution.InterruptCycles
	mc.LastResult.Final = true

	return nil
}
