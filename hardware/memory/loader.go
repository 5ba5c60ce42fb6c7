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

package memory

import (
	"os"

	"github.com/drewwalton19216801/butterfly/curated"
)

// Error patterns.
const (
	LoadError = "rom: %v"
)

// DefaultOrigin returns the load address that places the final byte of an
// image of the given size at 0xffff, so that the interrupt vectors are part
// of the image.
func DefaultOrigin(size int) uint16 {
	if size <= 0 || size > 0x10000 {
		return 0
	}
	return uint16(0x10000 - size)
}

// LoadROM reads the named file and creates a ROM device from its contents.
// If origin is nil then the ROM is placed so that it ends at 0xffff.
func LoadROM(filename string, origin *uint16) (*ROM, error) {
	data, err := os.ReadFile(filename)
	if err != nil {
		return nil, curated.Errorf(LoadError, err)
	}

	o := DefaultOrigin(len(data))
	if origin != nil {
		o = *origin
	}

	return NewROM(o, data)
}
