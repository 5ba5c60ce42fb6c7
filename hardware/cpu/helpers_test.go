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
	"path/filepath"
	"testing"

	"github.com/drewwalton19216801/butterfly/hardware/cpu"
	"github.com/drewwalton19216801/butterfly/hardware/memory/cpubus"
	"github.com/drewwalton19216801/butterfly/hardware/preferences"
	"github.com/drewwalton19216801/butterfly/test"
)

// the default origin of test programs
const origin = 0xc000

type mockMem struct {
	// the CPU has a 16bit address bus so the maximum amount of memory is 64k
	internal []uint8

	// number of times each address has been read
	reads map[uint16]int
}

func newMockMem() *mockMem {
	return &mockMem{
		internal: make([]uint8, 0x10000),
		reads:    make(map[uint16]int),
	}
}

func (mem *mockMem) Read(address uint16) (uint8, error) {
	mem.reads[address]++
	return mem.internal[address], nil
}

func (mem *mockMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

func (mem *mockMem) putInstructions(address uint16, bytes ...uint8) uint16 {
	for i, b := range bytes {
		mem.internal[address+uint16(i)] = b
	}
	return address + uint16(len(bytes))
}

func (mem *mockMem) putWord(address uint16, v uint16) {
	mem.internal[address] = uint8(v)
	mem.internal[address+1] = uint8(v >> 8)
}

func (mem *mockMem) assert(t *testing.T, address uint16, value uint8) {
	t.Helper()
	test.ExpectEquality(t, mem.internal[address], value, "memory", address)
}

// newCPU returns a CPU that has been reset to the origin. the IRQ and NMI
// vectors point to 0xd000 and 0xe000 respectively
func newCPU(t *testing.T, strict bool) (*cpu.CPU, *mockMem) {
	t.Helper()

	mem := newMockMem()
	mem.putWord(cpubus.Reset, origin)
	mem.putWord(cpubus.IRQ, 0xd000)
	mem.putWord(cpubus.NMI, 0xe000)

	var prefs *preferences.Preferences
	if strict {
		var err error
		prefs, err = preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
		test.DemandSuccess(t, err)
		test.DemandSuccess(t, prefs.IllegalOpcodes.Set(false))
	}

	mc := cpu.NewCPU(prefs, mem)
	test.DemandSuccess(t, mc.Reset())

	return mc, mem
}

// step executes a single instruction and checks the validity of the result
func step(t *testing.T, mc *cpu.CPU) {
	t.Helper()
	test.DemandSuccess(t, mc.ExecuteInstruction())
	test.DemandSuccess(t, mc.LastResult.IsValid())
}

// tick the CPU until the instruction or interrupt started by the first tick
// has completed. returns the number of ticks
func tickInstruction(t *testing.T, mc *cpu.CPU) int {
	t.Helper()
	test.DemandSuccess(t, mc.Tick())
	n := 1
	for mc.Pending() > 0 {
		test.DemandSuccess(t, mc.Tick())
		n++
	}
	return n
}
