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
	"fmt"
	"strings"

	"github.com/drewwalton19216801/butterfly/hardware/cpu/execution"
)

// EntryLevel describes the level of the Entry.
type EntryLevel int

// List of valid EntryLevel in increasing reliability.
//
// Decoded entries have been decoded as though every byte is the start of an
// instruction. Blessed entries have been reached by following the flow of
// instructions from an entry point.
const (
	EntryLevelDecoded EntryLevel = iota
	EntryLevelBlessed
)

func (l EntryLevel) String() string {
	switch l {
	case EntryLevelDecoded:
		return "decoded"
	case EntryLevelBlessed:
		return "blessed"
	}
	return "unknown level"
}

// Entry is a disassembled instruction.
type Entry struct {
	// the level of reliability of the information in the Entry
	Level EntryLevel

	// the decoded instruction. Result.Final is false if the instruction
	// would run past the end of the memory being disassembled
	Result execution.Result

	// name of the vector pointing to this entry. empty if no vector points
	// here
	Label string

	// the raw bytes of the instruction
	bytecode []uint8
}

// Bytecode returns the bytes of the instruction as hex pairs.
func (e *Entry) Bytecode() string {
	s := make([]string, len(e.bytecode))
	for i, b := range e.bytecode {
		s[i] = fmt.Sprintf("%02x", b)
	}
	return strings.Join(s, " ")
}

func (e *Entry) String() string {
	return e.Result.String()
}
