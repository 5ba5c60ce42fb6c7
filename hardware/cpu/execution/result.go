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

package execution

import (
	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
)

// Result records the state/result of the last instruction executed by the CPU.
type Result struct {
	// the address at which the instruction began
	Address uint16

	// the instruction definition for the opcode
	Defn *instructions.Definition

	// the number of bytes read during instruction decode. should equal
	// Defn.Bytes once the instruction has been finalised
	ByteCount int

	// the operand of the instruction. a single byte for two byte
	// instructions and a word for three byte instructions. for branches it is
	// the raw offset
	InstructionData uint16

	// the actual number of cycles taken by the instruction. usually the same
	// as Defn.Cycles but page faults and branches can add cycles
	Cycles int

	// whether an extra cycle was required because the effective address
	// crossed a page boundary
	PageFault bool

	// whether a branch instruction branched
	BranchSuccess bool

	// whether a buggy code path was triggered
	CPUBug Bug

	// the instruction was illegal and was not executed because the CPU is in
	// strict mode
	Skipped bool

	// the name of the interrupt serviced in place of an instruction. Defn is
	// nil in this case
	Interrupt string

	// whether this data has been finalised
	Final bool
}

// Reset nullifies all members of the Result instance.
func (r *Result) Reset() {
	*r = Result{}
}
