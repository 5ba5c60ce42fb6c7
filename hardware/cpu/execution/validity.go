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
	"github.com/drewwalton19216801/butterfly/curated"
)

// InterruptCycles is the number of cycles taken to service an interrupt.
const InterruptCycles = 7

// IsValid checks whether the instance of Result contains information
// consistent with the instruction definition.
func (r Result) IsValid() error {
	if !r.Final {
		return curated.Errorf("cpu: execution not finalised")
	}

	if r.Interrupt != "" {
		if r.Cycles != InterruptCycles {
			return curated.Errorf("cpu: number of cycles wrong for %s (%d instead of %d)", r.Interrupt, r.Cycles, InterruptCycles)
		}
		return nil
	}

	if r.Defn == nil {
		return curated.Errorf("cpu: no instruction definition")
	}

	// is PageFault valid given content of Defn
	if !r.Defn.PageSensitive && r.PageFault && !r.Defn.IsBranch() {
		return curated.Errorf("cpu: unexpected page fault")
	}

	if r.ByteCount != r.Defn.Bytes {
		return curated.Errorf("cpu: unexpected number of bytes read during decode (%d instead of %d)", r.ByteCount, r.Defn.Bytes)
	}

	// if a bug has been triggered, don't perform the number of cycles check
	if r.CPUBug != NoBug {
		return nil
	}

	switch {
	case r.Skipped:
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: number of cycles wrong for skipped opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
		}
	case r.Defn.IsBranch():
		extra := 0
		if r.BranchSuccess {
			extra++
			if r.PageFault {
				extra++
			}
		}
		if r.Cycles != r.Defn.Cycles+extra {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles+extra)
		}
	case r.Defn.PageSensitive && r.PageFault:
		if r.Cycles != r.Defn.Cycles+1 {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles+1)
		}
	default:
		if r.Cycles != r.Defn.Cycles {
			return curated.Errorf("cpu: number of cycles wrong for opcode %#02x [%s] (%d instead of %d)",
				r.Defn.OpCode, r.Defn.Operator, r.Cycles, r.Defn.Cycles)
		}
	}

	return nil
}
