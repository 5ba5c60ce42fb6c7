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

package execution_test

import (
	"testing"

	"github.com/drewwalton19216801/butterfly/hardware/cpu/execution"
	"github.com/drewwalton19216801/butterfly/hardware/cpu/instructions"
	"github.com/drewwalton19216801/butterfly/test"
)

func TestString(t *testing.T) {
	r := execution.Result{
		Address:         0xc000,
		Defn:            instructions.Lookup(0xa9),
		ByteCount:       2,
		InstructionData: 0x01,
		Cycles:          2,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0xc000 LDA #$01")
	test.ExpectEquality(t, r.Notes(), "[2]")
	test.ExpectSuccess(t, r.IsValid())

	r.Defn = instructions.Lookup(0xbd)
	r.ByteCount = 3
	r.InstructionData = 0x20ff
	r.Cycles = 5
	r.PageFault = true
	test.ExpectEquality(t, r.String(), "0xc000 LDA $20ff,X")
	test.ExpectEquality(t, r.Notes(), "[5] page-fault")
	test.ExpectSuccess(t, r.IsValid())

	r.Defn = instructions.Lookup(0x0a)
	r.ByteCount = 1
	r.Cycles = 2
	r.PageFault = false
	test.ExpectEquality(t, r.String(), "0xc000 ASL A")

	r.Defn = instructions.Lookup(0xa1)
	r.ByteCount = 2
	r.InstructionData = 0x80
	r.Cycles = 6
	test.ExpectEquality(t, r.String(), "0xc000 LDA ($80,X)")
	test.ExpectSuccess(t, r.IsValid())

	r.Defn = instructions.Lookup(0x91)
	test.ExpectEquality(t, r.String(), "0xc000 STA ($80),Y")
}

func TestBranchString(t *testing.T) {
	r := execution.Result{
		Address:         0xc010,
		Defn:            instructions.Lookup(0xd0),
		ByteCount:       2,
		InstructionData: 0xfc,
		Cycles:          3,
		BranchSuccess:   true,
		Final:           true,
	}
	test.ExpectEquality(t, r.String(), "0xc010 BNE $c00e")
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 2
	test.ExpectFailure(t, r.IsValid())

	r.BranchSuccess = false
	test.ExpectSuccess(t, r.IsValid())
}

func TestValidity(t *testing.T) {
	var r execution.Result
	test.ExpectFailure(t, r.IsValid())

	r = execution.Result{
		Defn:      instructions.Lookup(0x8d),
		ByteCount: 3,
		Cycles:    4,
		PageFault: true,
		Final:     true,
	}
	test.ExpectFailure(t, r.IsValid())

	r.PageFault = false
	test.ExpectSuccess(t, r.IsValid())

	r.ByteCount = 2
	test.ExpectFailure(t, r.IsValid())

	r.Reset()
	test.ExpectFailure(t, r.Final)
}

func TestInterruptResult(t *testing.T) {
	r := execution.Result{
		Address:   0xc123,
		Interrupt: "NMI",
		Cycles:    execution.InterruptCycles,
		Final:     true,
	}
	test.ExpectEquality(t, r.String(), "0xc123 <NMI>")
	test.ExpectSuccess(t, r.IsValid())

	r.Cycles = 2
	test.ExpectFailure(t, r.IsValid())
}
