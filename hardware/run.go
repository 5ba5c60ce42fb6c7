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

// It can be expensive to do a full continue check every time. The
// PerformanceBrake is a standard value that can be used to filter out
// expensive code paths within a continueCheck() implementation. For example:
//
//	performanceFilter++
//	if performanceFilter >= hardware.PerformanceBrake {
//		performanceFilter = 0
//		if end_condition == true {
//			return false, nil
//		}
//	}
//	return true, nil
const PerformanceBrake = 100

// Run the emulation for the number of clock ticks. If ticks is zero or less
// then the emulation runs until continueCheck() returns false or an error
// occurs.
//
// The continueCheck() function is called at every instruction boundary. It
// can be nil.
//
// A CPU halted by a KIL instruction ends the run with the cpu.Halted error.
func (m *Machine) Run(ticks int, continueCheck func() (bool, error)) error {
	if continueCheck == nil {
		continueCheck = func() (bool, error) { return true, nil }
	}

	for n := 0; ticks <= 0 || n < ticks; n++ {
		if err := m.Step(); err != nil {
			return err
		}

		if m.CPU.Pending() == 0 {
			cont, err := continueCheck()
			if err != nil {
				return err
			}
			if !cont {
				return nil
			}
		}
	}

	return nil
}
