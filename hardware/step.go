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

package hardware

import (
	"fmt"
)

// Step the emulation one clock cycle. The CPU is ticked first and then every
// Ticker in the order they were added.
//
// An error from the CPU is returned after the tickers have been stepped. The
// cycle in which the CPU halts still counts as a cycle for other devices.
func (m *Machine) Step() error {
	// the CPU is at an instruction boundary and this cycle will start a new
	// instruction or interrupt
	boundary := m.CPU.Pending() == 0 && !m.CPU.Killed

	cpuErr := m.CPU.Tick()

	for _, t := range m.tickers {
		if err := t.Tick(); err != nil {
			return err
		}
	}

	if boundary && m.tracing() && m.CPU.LastResult.Final {
		if _, err := fmt.Fprintf(m.trace, "%-20s %s\n", m.CPU.LastResult.String(), m.CPU.String()); err != nil {
			return err
		}
	}

	return cpuErr
}

// StepInstruction runs the emulation until the CPU reaches the end of the
// current instruction. If the CPU is at an instruction boundary then the next
// instruction is run in its entirety.
func (m *Machine) StepInstruction() error {
	if err := m.Step(); err != nil {
		return err
	}
	for m.CPU.Pending() > 0 {
		if err := m.Step(); err != nil {
			return err
		}
	}
	return nil
}
