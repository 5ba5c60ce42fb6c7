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

package registers

import (
	"strings"
)

// Flags is a set of status register bits.
type Flags uint8

// List of status register bits.
const (
	Carry            Flags = 0x01
	Zero             Flags = 0x02
	InterruptDisable Flags = 0x04
	DecimalMode      Flags = 0x08
	Break            Flags = 0x10
	Unused           Flags = 0x20
	Overflow         Flags = 0x40
	Negative         Flags = 0x80
)

// StatusRegister is the special purpose register that stores the flags of the CPU.
type StatusRegister struct {
	flags Flags
}

// NewStatusRegister is the preferred method of initialisation for the status
// register. The initial state is the state after a reset.
func NewStatusRegister() StatusRegister {
	return StatusRegister{flags: Unused | InterruptDisable}
}

// Label returns the canonical name for the status register.
func (sr StatusRegister) Label() string {
	return "P"
}

// the order and symbols of the flags in the String() output
var flagSymbols = []struct {
	flag Flags
	set  rune
}{
	{Negative, 'N'},
	{Overflow, 'V'},
	{Unused, '-'},
	{Break, 'B'},
	{DecimalMode, 'D'},
	{InterruptDisable, 'I'},
	{Zero, 'Z'},
	{Carry, 'C'},
}

// String returns the flags with upper case letters for set bits and lower
// case letters for clear bits. For example, "nv-bdIzC".
func (sr StatusRegister) String() string {
	s := strings.Builder{}
	for _, f := range flagSymbols {
		switch {
		case f.flag == Unused:
			s.WriteRune(f.set)
		case sr.flags&f.flag == f.flag:
			s.WriteRune(f.set)
		default:
			s.WriteRune(f.set + ('a' - 'A'))
		}
	}
	return s.String()
}

// Reset status flags to the state after a reset.
func (sr *StatusRegister) Reset() {
	sr.flags = Unused | InterruptDisable
}

// IsSet returns true if all the bits in f are set.
func (sr StatusRegister) IsSet(f Flags) bool {
	return sr.flags&f == f
}

// Set or clear the bits in f.
func (sr *StatusRegister) Set(f Flags, set bool) {
	if set {
		sr.flags |= f
	} else {
		sr.flags &^= f
	}
	sr.flags |= Unused
}

// SetZN sets the Zero and Negative flags according to value.
func (sr *StatusRegister) SetZN(value uint8) {
	sr.Set(Zero, value == 0)
	sr.Set(Negative, value&0x80 == 0x80)
}

// Value returns the status register as an 8 bit value. The Unused bit is
// always set.
func (sr StatusRegister) Value() uint8 {
	return uint8(sr.flags | Unused)
}

// Load an 8 bit value (taken from the stack for example) into the status
// register. The Unused bit will remain set.
func (sr *StatusRegister) Load(v uint8) {
	sr.flags = Flags(v) | Unused
}
