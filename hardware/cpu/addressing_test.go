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

package cpu_test

import (
	"testing"

	"github.com/drewwalton19216801/butterfly/hardware/cpu/execution"
	"github.com/drewwalton19216801/butterfly/test"
)

func TestImmediate(t *testing.T) {
	mc, mem := newCPU(t, false)

	// LDA #$42; ADC #$01; NOP #$ff; ANC #$80. every operand byte is read
	// exactly once
	mem.putInstructions(origin, 0xa9, 0x42, 0x69, 0x01, 0x80, 0xff, 0x0b, 0x80)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x42)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x43)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x43)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x00)

	for _, a := range []uint16{origin + 1, origin + 3, origin + 5, origin + 7} {
		test.ExpectEquality(t, mem.reads[a], 1, a)
	}
}

func TestZeroPage(t *testing.T) {
	mc, mem := newCPU(t, false)

	mem.internal[0x0010] = 0x01
	mem.internal[0x007f] = 0x02

	// LDA $10; LDX #$7f; LDA $00,X; LDY $91,X
	mem.putInstructions(origin, 0xa5, 0x10, 0xa2, 0x7f, 0xb5, 0x00, 0xb4, 0x91)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x01)
	test.ExpectEquality(t, mc.LastResult.Cycles, 3)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x02)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)

	// the effective address wraps around the zero page
	step(t, mc)
	test.ExpectEquality(t, mc.Y.Value(), 0x01)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.ZeroPageIndexBug)

	// LDY #$01; LDX $7e,Y
	mem.putInstructions(mc.PC.Address(), 0xa0, 0x01, 0xb6, 0x7e)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.X.Value(), 0x02)
	test.ExpectEquality(t, mc.LastResult.String(), "0xc00a LDX $7e,Y")
}

func TestAbsoluteIndexed(t *testing.T) {
	mc, mem := newCPU(t, false)

	mem.internal[0x00ff] = 0x11
	mem.internal[0x0100] = 0x22
	mem.internal[0x0110] = 0x33

	// LDX #$0f; LDA $00f0,X
	mem.putInstructions(origin, 0xa2, 0x0f, 0xbd, 0xf0, 0x00)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x11)
	test.ExpectEquality(t, mc.LastResult.Cycles, 4)
	test.ExpectSuccess(t, !mc.LastResult.PageFault)

	// LDX #$01; LDA $00ff,X
	mem.putInstructions(mc.PC.Address(), 0xa2, 0x01, 0xbd, 0xff, 0x00)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x22)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectSuccess(t, mc.LastResult.PageFault)

	// LDX #$20; LDA $00f0,X. the effective address 0x0110 is on a different
	// page to the base address
	mem.putInstructions(mc.PC.Address(), 0xa2, 0x20, 0xbd, 0xf0, 0x00)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0x33)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)

	// LDY #$01; STA $00ff,Y. stores are not page sensitive
	mem.putInstructions(mc.PC.Address(), 0xa0, 0x01, 0x99, 0xff, 0x00)
	step(t, mc)
	step(t, mc)
	mem.assert(t, 0x0100, 0x33)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectSuccess(t, !mc.LastResult.PageFault)
}

func TestIndirect(t *testing.T) {
	mc, mem := newCPU(t, false)

	mem.internal[0x3000] = 0x80
	mem.internal[0x30ff] = 0x40
	mem.internal[0x3100] = 0x50

	// JMP ($30ff)
	mem.putInstructions(origin, 0x6c, 0xff, 0x30)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x8040)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.JmpIndirectAddressingBug)
	test.ExpectEquality(t, mc.LastResult.String(), "0xc000 JMP ($30ff)")

	// JMP ($3000)
	mem.internal[0x3001] = 0x90
	mem.putInstructions(0x8040, 0x6c, 0x00, 0x30)
	step(t, mc)
	test.ExpectEquality(t, mc.PC.Address(), 0x9080)
	test.ExpectEquality(t, mc.LastResult.CPUBug, execution.NoBug)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
}

func TestIndexedIndirect(t *testing.T) {
	mc, mem := newCPU(t, false)

	mem.putWord(0x0024, 0x2074)
	mem.internal[0x2074] = 0xaa

	// the pointer wraps around the zero page
	mem.internal[0x00ff] = 0x00
	mem.internal[0x0000] = 0x21
	mem.internal[0x2100] = 0xbb

	// LDX #$04; LDA ($20,X); LDX #$0f; LDA ($f0,X)
	mem.putInstructions(origin, 0xa2, 0x04, 0xa1, 0x20, 0xa2, 0x0f, 0xa1, 0xf0)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xaa)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xbb)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
}

func TestIndirectIndexed(t *testing.T) {
	mc, mem := newCPU(t, false)

	mem.putWord(0x0086, 0x4028)
	mem.internal[0x4038] = 0xcc
	mem.internal[0x4100] = 0xdd

	// LDY #$10; LDA ($86),Y
	mem.putInstructions(origin, 0xa0, 0x10, 0xb1, 0x86)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xcc)
	test.ExpectEquality(t, mc.LastResult.Cycles, 5)
	test.ExpectSuccess(t, !mc.LastResult.PageFault)

	// LDY #$d8; LDA ($86),Y
	mem.putInstructions(mc.PC.Address(), 0xa0, 0xd8, 0xb1, 0x86)
	step(t, mc)
	step(t, mc)
	test.ExpectEquality(t, mc.A.Value(), 0xdd)
	test.ExpectEquality(t, mc.LastResult.Cycles, 6)
	test.ExpectSuccess(t, mc.LastResult.PageFault)
	test.ExpectEquality(t, mc.LastResult.Notes(), "[6] page-fault")
}
