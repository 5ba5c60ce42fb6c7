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

func addDecimal(a, b uint8, carry bool) (r uint8, rcarry bool) {
	r = a + b
	if carry {
		r++
	}
	return r, r > 9
}

// AddDecimal adds value to register as though both are binary coded decimal
// numbers. Returns new carry, zero, overflow and sign state.
//
// The flags follow the NMOS 6502: Z is computed before any decimal adjust.
// N and V are computed after the low nibble is adjusted but before the high
// nibble is adjusted.
func (r *Register) AddDecimal(val uint8, carry bool) (bool, bool, bool, bool) {
	var zero, overflow, sign bool

	runits, ucarry := addDecimal(r.value&0x0f, val&0x0f, carry)
	rtens, tcarry := addDecimal(r.value>>4, val>>4, ucarry)

	zero = uint8(r.value+val+boolToUint8(carry)) == 0

	if ucarry {
		runits -= 10
	}

	overflow = ((r.value^(rtens<<4))&0x80 != 0) && ((r.value^val)&0x80 == 0)
	sign = rtens&0x08 == 0x08

	if tcarry {
		rtens -= 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return tcarry, zero, overflow, sign
}

func subtractDecimal(a, b uint8, borrow bool) (r uint8, rborrow bool) {
	r = a - b
	if borrow {
		r--
	}
	return r, b > a || borrow && b == a
}

// SubtractDecimal subtracts value from register as though both are binary
// coded decimal numbers. Returns the new carry state. On the NMOS 6502 the
// other flags are the result of the equivalent binary subtraction.
func (r *Register) SubtractDecimal(val uint8, carry bool) bool {
	// carry is the inverse of borrow
	runits, ucarry := subtractDecimal(r.value&0x0f, val&0x0f, !carry)
	rtens, tcarry := subtractDecimal(r.value>>4, val>>4, ucarry)

	if ucarry {
		runits += 10
	}
	if tcarry {
		rtens += 10
	}

	r.value = (rtens << 4) | (runits & 0x0f)

	return !tcarry
}

func boolToUint8(b bool) uint8 {
	if b {
		return 1
	}
	return 0
}
