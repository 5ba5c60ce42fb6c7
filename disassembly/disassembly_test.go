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

package disassembly_test

import (
	"strings"
	"testing"

	"github.com/drewwalton19216801/butterfly/disassembly"
	"github.com/drewwalton19216801/butterfly/hardware/memory"
	"github.com/drewwalton19216801/butterfly/test"
)

// a 16K ROM at 0xc000 with a short program reached from the reset vector.
// the NMI and IRQ vectors both point to the RTS instruction
func program(t *testing.T) *memory.ROM {
	t.Helper()

	data := make([]uint8, 0x4000)
	copy(data, []uint8{
		0xa9, 0x01, // LDA #$01
		0xf0, 0x03, // BEQ $c007
		0x20, 0x0a, 0xc0, // JSR $c00a
		0x4c, 0x00, 0xc0, // JMP $c000
		0x60, // RTS
	})
	copy(data[0x3ffa:], []uint8{0x0a, 0xc0, 0x00, 0xc0, 0x0a, 0xc0})

	rom, err := memory.NewROM(0xc000, data)
	test.DemandSuccess(t, err)
	return rom
}

func TestBless(t *testing.T) {
	dsm, err := disassembly.FromMemory(program(t))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, dsm.Origin(), 0xc000)
	test.ExpectEquality(t, dsm.Memtop(), 0xffff)
	test.ExpectEquality(t, dsm.Blessed(), 5)

	for _, a := range []uint16{0xc000, 0xc002, 0xc004, 0xc007, 0xc00a} {
		test.ExpectEquality(t, dsm.Get(a).Level, disassembly.EntryLevelBlessed, a)
	}

	// middle of an instruction and the data following the RTS
	for _, a := range []uint16{0xc001, 0xc005, 0xc00b} {
		test.ExpectEquality(t, dsm.Get(a).Level, disassembly.EntryLevelDecoded, a)
	}

	test.ExpectEquality(t, dsm.Get(0xc000).Label, "RESET")
	test.ExpectEquality(t, dsm.Get(0xc00a).Label, "NMI")
	test.ExpectEquality(t, dsm.Get(0xc004).String(), "0xc004 JSR $c00a")
	test.ExpectEquality(t, dsm.Get(0xc004).Bytecode(), "20 0a c0")

	test.ExpectEquality(t, dsm.Get(0xbfff) == nil, true)
}

func TestWrite(t *testing.T) {
	dsm, err := disassembly.FromMemory(program(t))
	test.DemandSuccess(t, err)

	s := &strings.Builder{}
	test.DemandSuccess(t, dsm.Write(s, disassembly.WriteAttr{}))

	lines := strings.Split(s.String(), "\n")
	expected := []string{
		"RESET:",
		"0xc000 LDA #$01",
		"0xc002 BEQ $c007",
		"0xc004 JSR $c00a",
		"0xc007 JMP $c000",
		"NMI:",
		"0xc00a RTS",
		"0xc00b .byte $00,$00,$00,$00,$00,$00,$00,$00",
	}
	test.DemandEquality(t, len(lines) > len(expected), true)
	for i := range expected {
		test.ExpectEquality(t, lines[i], expected[i])
	}

	// the vectors are data. the final element is empty because of the
	// trailing newline
	test.ExpectEquality(t, lines[len(lines)-2], "0xfffb .byte $c0,$00,$c0,$0a,$c0")
}

func TestEntryPoints(t *testing.T) {
	// the vectors are outside of the ROM so flow must be started explicitly.
	// the JMP at the end of the ROM is incomplete and is never blessed
	rom, err := memory.NewROM(0x1000, []uint8{0xea, 0x4c, 0x00})
	test.DemandSuccess(t, err)

	dsm, err := disassembly.FromMemory(rom)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Blessed(), 0)

	dsm, err = disassembly.FromMemory(rom, 0x1000)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, dsm.Blessed(), 1)
	test.ExpectEquality(t, dsm.Get(0x1001).Result.Final, false)

	s := &strings.Builder{}
	test.DemandSuccess(t, dsm.Write(s, disassembly.WriteAttr{ByteCode: true}))
	test.ExpectEquality(t, s.String(), "ea        0x1000 NOP\n          0x1001 .byte $4c,$00\n")
}
