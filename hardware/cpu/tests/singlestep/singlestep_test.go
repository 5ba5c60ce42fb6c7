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

package singlestep

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/drewwalton19216801/butterfly/hardware/cpu"
	"github.com/drewwalton19216801/butterfly/test"
)

type testMem struct {
	internal []uint8
}

func newTestMem() *testMem {
	return &testMem{
		// the CPU has a 16bit address bus so the maximum amount of memory is 64k
		internal: make([]uint8, 0x10000),
	}
}

func (mem *testMem) Read(address uint16) (uint8, error) {
	return mem.internal[address], nil
}

func (mem *testMem) Write(address uint16, data uint8) error {
	mem.internal[address] = data
	return nil
}

type RAMEntry struct {
	Address uint16
	Value   uint8
}

func (r *RAMEntry) UnmarshalJSON(data []byte) error {
	var raw [2]uint64
	err := json.Unmarshal(data, &raw)
	if err != nil {
		return err
	}
	r.Address = uint16(raw[0])
	r.Value = uint8(raw[1])
	return nil
}

// the bus activity is not compared but the entries are decoded so that
// malformed test files are detected
type BusCycle struct {
	Address uint16
	Data    uint8
	Event   string
}

func (b *BusCycle) UnmarshalJSON(data []byte) error {
	var raw [3]any
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	addr, _ := raw[0].(float64)
	dat, _ := raw[1].(float64)
	ev, _ := raw[2].(string)

	b.Address = uint16(addr)
	b.Data = uint8(dat)
	b.Event = ev

	switch b.Event {
	case "read", "write":
	default:
		return fmt.Errorf("unexpected memory event: %q", b.Event)
	}

	return nil
}

type State struct {
	PC  uint64     `json:"pc"`
	S   uint64     `json:"s"`
	A   uint64     `json:"a"`
	X   uint64     `json:"x"`
	Y   uint64     `json:"y"`
	P   uint64     `json:"p"`
	RAM []RAMEntry `json:"ram"`
}

type Tests struct {
	Name    string     `json:"name"`
	Initial State      `json:"initial"`
	Final   State      `json:"final"`
	Cycles  []BusCycle `json:"cycles"`
}

func (d *Tests) UnmarshalJSON(data []byte) error {
	// alias type prevents recursion
	type norecurse Tests

	var tmp norecurse
	if err := json.Unmarshal(data, &tmp); err != nil {
		return fmt.Errorf("error unmarshalling test %q: %w", tmp.Name, err)
	}
	*d = Tests(tmp)
	return nil
}

var testsPath = filepath.Join("testdata", "6502")

// TestSingleStepSmoke runs every file in the testdata directory. The files
// included with the package are a smoke check of the test runner and a few
// instructions; the per-opcode files of the SingleStepTests project can be
// added to the directory for full coverage.
func TestSingleStepSmoke(t *testing.T) {
	d, err := os.ReadDir(testsPath)
	if err != nil {
		t.Fatal(err)
	}

	for _, e := range d {
		if e.Type().IsRegular() && strings.HasSuffix(e.Name(), ".json") {
			testSingleStep(t, filepath.Join(testsPath, e.Name()))
		}
	}
}

// the break and unused bits are not stored by the status register
const ignoredFlags = 0x30

func testSingleStep(t *testing.T, testFile string) {
	t.Logf("testing %s", testFile)

	f, err := os.Open(testFile)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	var tests []Tests
	if err := json.NewDecoder(f).Decode(&tests); err != nil {
		t.Fatalf("%s: %v", testFile, err)
	}

	mem := newTestMem()
	mc := cpu.NewCPU(nil, mem)
	test.DemandSuccess(t, mc.Reset())

	for i, s := range tests {
		mc.PC.Load(uint16(s.Initial.PC))
		mc.A.Load(uint8(s.Initial.A))
		mc.X.Load(uint8(s.Initial.X))
		mc.Y.Load(uint8(s.Initial.Y))
		mc.SP.Load(uint8(s.Initial.S))
		mc.Status.Load(uint8(s.Initial.P))
		for _, r := range s.Initial.RAM {
			mem.internal[r.Address] = r.Value
		}

		err := mc.ExecuteInstruction()
		if err != nil {
			t.Fatalf("%s: %s: %v", testFile, s.Name, err)
		}

		var fail bool

		fail = !test.ExpectEquality(t, mc.PC.Address(), uint16(s.Final.PC), testFile, s.Name, "PC") || fail
		fail = !test.ExpectEquality(t, mc.A.Value(), uint8(s.Final.A), testFile, s.Name, "A") || fail
		fail = !test.ExpectEquality(t, mc.X.Value(), uint8(s.Final.X), testFile, s.Name, "X") || fail
		fail = !test.ExpectEquality(t, mc.Y.Value(), uint8(s.Final.Y), testFile, s.Name, "Y") || fail
		fail = !test.ExpectEquality(t, mc.SP.Value(), uint8(s.Final.S), testFile, s.Name, "SP") || fail
		fail = !test.ExpectEquality(t, mc.Status.Value()|ignoredFlags, uint8(s.Final.P)|ignoredFlags, testFile, s.Name, "Status") || fail
		fail = !test.ExpectEquality(t, mc.LastResult.Cycles, len(s.Cycles), testFile, s.Name, "cycles") || fail
		for _, r := range s.Final.RAM {
			fail = !test.ExpectEquality(t, mem.internal[r.Address], r.Value, testFile, s.Name, fmt.Sprintf("RAM %04x", r.Address)) || fail
		}

		if fail {
			t.Logf("last instruction: %s", mc.LastResult.String())
			t.Fatalf("%s: failed on test %d", testFile, i)
		}
	}
}
