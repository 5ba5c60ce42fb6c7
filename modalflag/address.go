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

package modalflag

import (
	"fmt"
	"strconv"
	"strings"
)

// Address implements the flag.Value interface for 16 bit addresses. Values
// can be decimal or hexadecimal with a 0x or $ prefix.
type Address struct {
	Value uint16

	// whether the flag was given on the command line
	IsSet bool
}

func (a *Address) String() string {
	if a == nil || !a.IsSet {
		return ""
	}
	return fmt.Sprintf("%#04x", a.Value)
}

// Set implements the flag.Value interface.
func (a *Address) Set(s string) error {
	if strings.HasPrefix(s, "$") {
		s = "0x" + s[1:]
	}
	v, err := strconv.ParseUint(s, 0, 16)
	if err != nil {
		return fmt.Errorf("not a valid address: %s", s)
	}
	a.Value = uint16(v)
	a.IsSet = true
	return nil
}

// Get returns a pointer to the address or nil if the flag was not set.
func (a *Address) Get() *uint16 {
	if !a.IsSet {
		return nil
	}
	v := a.Value
	return &v
}
