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
	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
)

// bless follows the flow of the program from the address, blessing every
// entry it reaches. flow stops at an instruction that does not fall through to
// the next address or that has a destination that cannot be determined without
// running the program.
func (dsm *Disassembly) bless(address uint16) {
	pending := []uint16{address}

	for len(pending) > 0 {
		address := pending[len(pending)-1]
		pending = pending[:len(pending)-1]

		for {
			e := dsm.Get(address)
			if e == nil || e.Level == EntryLevelBlessed || !e.Result.Final {
				break
			}
			e.Level = EntryLevelBlessed

			defn := e.Result.Defn
			next := address + uint16(defn.Bytes)

			if defn.IsBranch() {
				offset := e.Result.InstructionData & 0xff
				if offset&0x80 == 0x80 {
					offset |= 0xff00
				}
				pending = append(pending, next+offset)
				address = next
				continue
			}

			switch defn.Operator {
			case instructions.JSR:
				pending = append(pending, e.Result.InstructionData)
			case instructions.JMP:
				if defn.AddressingMode == instructions.Absolute {
					pending = append(pending, e.Result.InstructionData)
				}
				next = address
			case instructions.RTS, instructions.RTI, instructions.BRK, instructions.KIL:
				next = address
			}

			if next == address {
				break
			}

			// wrapping around the top of memory ends the flow
			if next < address {
				break
			}

			address = next
		}
	}
}
