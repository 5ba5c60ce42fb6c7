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

// Package singlestep runs 6502 single-step tests in the JSON format used by
// the SingleStepTests project.
//
// https://github.com/SingleStepTests/65x02
//
// Each test describes the state of the CPU and memory before and after a
// single instruction, along with the bus activity of every cycle. The CPU
// executes an instruction in its entirety so only the number of cycles is
// compared, not the bus activity.
//
// The testdata/6502/smoke.json file is a hand written smoke check of a handful
// of instructions, including the JMP indirect bug, a page crossing index and
// BRK. It is not a substitute for the SingleStepTests data. Add files from
// the 6502/v1 directory of the project to the testdata/6502 directory to test
// every opcode.
package singlestep
