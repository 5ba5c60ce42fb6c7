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

// Package curated is a helper package for the plain Go language error type.
//
// Curated errors are created with the Errorf() function, which takes a
// pattern and placeholder values in the manner of fmt.Errorf(). The pattern
// identifies the error. Packages export their patterns as constants so that
// callers can test for them:
//
//	const Halted = "cpu: halted by KIL instruction (%#02x at %#04x)"
//
//	err := curated.Errorf(cpu.Halted, opcode, address)
//	if curated.Is(err, cpu.Halted) {
//		...
//	}
//
// The Has() function checks if a pattern occurs anywhere in the error chain:
//
//	f := curated.Errorf("machine: %v", err)
//	curated.Has(f, cpu.Halted) // true
//	curated.Is(f, cpu.Halted)  // false
//
// Error() normalises the message so that duplicate adjacent parts are
// removed. For example, "cpu: cpu: KIL" is printed as "cpu: KIL".
package curated
