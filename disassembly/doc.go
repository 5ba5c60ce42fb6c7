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

// Package disassembly produces a static disassembly of a ROM image.
//
// Disassembly happens in two passes. The decode pass treats every address as
// though it was the start of an instruction. The bless pass then follows the
// flow of the program from the interrupt vectors (and any other entry points
// supplied by the caller), marking the entries that are reachable.
//
// The FromMemory() function performs both passes. The result can be written
// with the Write() function, where blessed entries are shown as instructions
// and everything else as data.
package disassembly
