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

// Package script allows control of the emulation from a Lua script. The
// following functions are available to scripts:
//
//	peek(address)           value at address without side effects
//	poke(address, value)    set value at address without side effects
//	read(address)           read address through the bus
//	write(address, value)   write value to address through the bus
//	step()                  run one instruction
//	tick([n])               run n clock ticks (default 1)
//	run(n)                  run n clock ticks, stopping early if the CPU halts
//	reg(name)               value of the named register
//	setreg(name, value)     set the named register
//	irq(asserted)           set or clear the IRQ line
//	nmi()                   request a non-maskable interrupt
//	reset()                 reset the machine
//	cycles()                number of cycles since the last reset
//	halted()                true if the CPU has been halted by a KIL
//	last()                  disassembly of the last instruction executed
//
// The step(), tick() and run() functions return false if the CPU is halted.
// Other emulation errors end the script.
//
// Register names are those accepted by the CPU Register() function: A, X, Y,
// SP, PC and P.
//
// The print() function writes to the output given to NewScript() rather than
// to stdout.
package script
