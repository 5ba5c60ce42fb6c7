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

package cpu

// exposes the stack operations to the cpu_test package

func (mc *CPU) Push16(v uint16) error {
	return mc.push16(v)
}

func (mc *CPU) Pull16() (uint16, error) {
	return mc.pull16()
}

// HasOperator returns true if the operator has an implementation
func HasOperator(i int) bool {
	return operators[i] != nil
}
