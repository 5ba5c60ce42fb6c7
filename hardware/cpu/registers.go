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

import (
	"strings"

	"github.com/drewwalton19216801/butterfly/curated"
)

// RegisterNames lists the names accepted by Register() and SetRegister().
var RegisterNames = []string{"A", "X", "Y", "SP", "PC", "P"}

// Register returns the value of the named register. Valid names are listed in
// RegisterNames and are not case sensitive. An unknown name results in an
// InvalidRegister error.
func (mc *CPU) Register(name string) (uint16, error) {
	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "A":
		return mc.A.Address(), nil
	case "X":
		return mc.X.Address(), nil
	case "Y":
		return mc.Y.Address(), nil
	case "SP":
		return mc.SP.Address(), nil
	case "PC":
		return mc.PC.Address(), nil
	case "P":
		return uint16(mc.Status.Value()), nil
	}
	return 0, curated.Errorf(InvalidRegister, name)
}

// SetRegister changes the value of the named register. Only the PC accepts a
// value larger than 0xff.
func (mc *CPU) SetRegister(name string, value uint16) error {
	n := strings.ToUpper(strings.TrimSpace(name))

	switch n {
	case "PC":
		mc.PC.Load(value)
		return nil
	case "A", "X", "Y", "SP", "P":
		if value > 0xff {
			return curated.Errorf(InvalidRegisterValue, value, n)
		}
	default:
		return curated.Errorf(InvalidRegister, name)
	}

	v := uint8(value)

	switch n {
	case "A":
		mc.A.Load(v)
	case "X":
		mc.X.Load(v)
	case "Y":
		mc.Y.Load(v)
	case "SP":
		mc.SP.Load(v)
	case "P":
		mc.Status.Load(v)
	}

	return nil
}
