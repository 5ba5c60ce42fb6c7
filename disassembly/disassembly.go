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

package disassembly

import (
	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
	"github.com/drewwalton19216801/butterfly/hardware/memory/cpubus"
	"github.com/drewwalton19216801/butterfly/logger"
)

// Error patterns.
const (
	DisasmError = "disassembly: %v"
)

// Memory is the memory being disassembled. The memory.ROM type satisfies
// this interface.
type Memory interface {
	Peek(address uint16) (uint8, error)
	StartAddress() uint16
	EndAddress() uint16
}

// the interrupt vectors and their names, in address order
var vectors = []struct {
	address uint16
	label   string
}{
	{address: cpubus.NMI, label: "NMI"},
	{address: cpubus.Reset, label: "RESET"},
	{address: cpubus.IRQ, label: "IRQ"},
}

// Disassembly represents the disassembly of a single area of memory.
type Disassembly struct {
	origin uint16
	memtop uint16

	// one entry per address in memory, indexed by address-origin
	entries []*Entry
}

// FromMemory disassembles the memory. The interrupt vectors, when they are
// inside the memory area, are used as entry points for the bless pass along
// with any additional entry points.
func FromMemory(mem Memory, entryPoints ...uint16) (*Disassembly, error) {
	dsm := &Disassembly{
		origin: mem.StartAddress(),
		memtop: mem.EndAddress(),
	}

	if err := dsm.decode(mem); err != nil {
		return nil, curated.Errorf(DisasmError, err)
	}

	for _, v := range vectors {
		if !dsm.contains(v.address) || !dsm.contains(v.address+1) {
			continue
		}
		lo, err := mem.Peek(v.address)
		if err != nil {
			return nil, curated.Errorf(DisasmError, err)
		}
		hi, err := mem.Peek(v.address + 1)
		if err != nil {
			return nil, curated.Errorf(DisasmError, err)
		}
		address := uint16(hi)<<8 | uint16(lo)
		if e := dsm.Get(address); e != nil && e.Label == "" {
			e.Label = v.label
		}
		dsm.bless(address)
	}

	for _, address := range entryPoints {
		dsm.bless(address)
	}

	logger.Logf(logger.Allow, "disassembly", "%d of %d addresses blessed", dsm.Blessed(), len(dsm.entries))

	return dsm, nil
}

func (dsm *Disassembly) contains(address uint16) bool {
	return address >= dsm.origin && address <= dsm.memtop
}

// decode every address as though it was the start of an instruction
func (dsm *Disassembly) decode(mem Memory) error {
	dsm.entries = make([]*Entry, int(dsm.memtop)-int(dsm.origin)+1)

	for i := range dsm.entries {
		address := dsm.origin + uint16(i)

		opcode, err := mem.Peek(address)
		if err != nil {
			return err
		}

		e := &Entry{
			Level:    EntryLevelDecoded,
			bytecode: []uint8{opcode},
		}
		e.Result.Address = address
		e.Result.Defn = instructions.Lookup(opcode)
		e.Result.ByteCount = 1

		for n := 1; n < e.Result.Defn.Bytes; n++ {
			if int(address)+n > int(dsm.memtop) {
				break
			}
			v, err := mem.Peek(address + uint16(n))
			if err != nil {
				return err
			}
			e.bytecode = append(e.bytecode, v)
			e.Result.InstructionData |= uint16(v) << (8 * (n - 1))
			e.Result.ByteCount++
		}

		e.Result.Cycles = e.Result.Defn.Cycles
		e.Result.Final = e.Result.ByteCount == e.Result.Defn.Bytes

		dsm.entries[i] = e
	}

	return nil
}

// Get returns the entry at the address. Returns nil if the address is outside
// of the disassembled memory.
func (dsm *Disassembly) Get(address uint16) *Entry {
	if !dsm.contains(address) {
		return nil
	}
	return dsm.entries[address-dsm.origin]
}

// Blessed returns the number of blessed entries.
func (dsm *Disassembly) Blessed() int {
	var n int
	for _, e := range dsm.entries {
		if e.Level == EntryLevelBlessed {
			n++
		}
	}
	return n
}

// Origin returns the first address of the disassembled memory.
func (dsm *Disassembly) Origin() uint16 {
	return dsm.origin
}

// Memtop returns the last address of the disassembled memory.
func (dsm *Disassembly) Memtop() uint16 {
	return dsm.memtop
}
