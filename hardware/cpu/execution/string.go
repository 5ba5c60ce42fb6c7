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
	"fmt"
	"strings"

	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
)

// Operand returns the operand of the instruction formatted in the usual
// assembler notation for the addressing mode.
func (r Result) Operand() string {
	if r.Defn == nil {
		return ""
	}

	var data string
	switch r.Defn.Bytes {
	case 2:
		data = fmt.Sprintf("$%02x", r.InstructionData&0xff)
	case 3:
		data = fmt.Sprintf("$%04x", r.InstructionData)
	}

	switch r.Defn.AddressingMode {
	case instructions.Implied:
		// accumulator forms of shift and rotate instructions
		switch r.Defn.Operator {
		case instructions.ASL, instructions.LSR, instructions.ROL, instructions.ROR:
			return "A"
		}
		return ""
	case instructions.Immediate:
		return fmt.Sprintf("#%s", data)
	case instructions.Relative:
		// show the branch destination rather than the offset
		offset := r.InstructionData & 0xff
		if offset&0x80 == 0x80 {
			offset |= 0xff00
		}
		return fmt.Sprintf("$%04x", r.Address+2+offset)
	case instructions.Indirect:
		return fmt.Sprintf("(%s)", data)
	case instructions.IndexedIndirect:
		return fmt.Sprintf("(%s,X)", data)
	case instructions.IndirectIndexed:
		return fmt.Sprintf("(%s),Y", data)
	case instructions.AbsoluteIndexedX, instructions.ZeroPageIndexedX:
		return fmt.Sprintf("%s,X", data)
	case instructions.AbsoluteIndexedY, instructions.ZeroPageIndexedY:
		return fmt.Sprintf("%s,Y", data)
	}

	return data
}

// String returns a one line disassembly of the instruction. For example:
//
//	0xc000 LDA #$01
func (r Result) String() string {
	if r.Interrupt != "" {
		return fmt.Sprintf("0x%04x <%s>", r.Address, r.Interrupt)
	}
	if r.Defn == nil {
		return "???"
	}

	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("0x%04x %s", r.Address, r.Defn.Operator))
	if op := r.Operand(); op != "" {
		s.WriteString(" ")
		s.WriteString(op)
	}

	return s.String()
}

// Notes returns additional information about the execution of the
// instruction: the number of cycles and any notable events.
func (r Result) Notes() string {
	s := strings.Builder{}
	s.WriteString(fmt.Sprintf("[%d]", r.Cycles))
	if r.PageFault {
		s.WriteString(" page-fault")
	}
	if r.BranchSuccess {
		s.WriteString(" branched")
	}
	if r.Skipped {
		s.WriteString(" skipped")
	}
	if r.CPUBug != NoBug {
		s.WriteString(fmt.Sprintf(" * %s *", r.CPUBug))
	}
	return s.String()
}
