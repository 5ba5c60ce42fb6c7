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

package bus_test

import (
	"strings"
	"testing"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/hardware/memory"
	"github.com/drewwalton19216801/butterfly/hardware/memory/bus"
	"github.com/drewwalton19216801/butterfly/logger"
	"github.com/drewwalton19216801/butterfly/test"
)

// ioDevice is a single register I/O device that counts accesses
type ioDevice struct {
	address uint16
	value   uint8
	reads   int
	writes  int
}

func (d *ioDevice) Read(_ uint16) (uint8, error) {
	d.reads++
	return d.value, nil
}

func (d *ioDevice) Write(_ uint16, data uint8) error {
	d.writes++
	d.value = data
	return nil
}

func (d *ioDevice) Reset() {
	d.value = 0
}

func (d *ioDevice) IsMemory() bool       { return false }
func (d *ioDevice) StartAddress() uint16 { return d.address }
func (d *ioDevice) EndAddress() uint16   { return d.address }
func (d *ioDevice) Size() int            { return 1 }
func (d *ioDevice) Label() string        { return "io" }

func TestRouting(t *testing.T) {
	ram := memory.NewRAM(nil, 0x0000, 0x0fff)
	io := &ioDevice{address: 0x8000}
	rom, err := memory.NewROM(0xf000, []uint8{0x01, 0x02, 0x03})
	test.DemandSuccess(t, err)

	b, err := bus.NewBus(ram, io, rom)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, b.Write(0x0010, 0xaa))
	v, err := b.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0xaa)

	test.ExpectSuccess(t, b.Write(0x8000, 0x55))
	v, err = b.Read(0x8000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x55)
	test.ExpectEquality(t, io.reads, 1)
	test.ExpectEquality(t, io.writes, 1)

	v, err = b.Read(0xf002)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x03)

	test.ExpectSuccess(t, b.IsMemory(0x0fff))
	test.ExpectSuccess(t, !b.IsIO(0x0fff))
	test.ExpectSuccess(t, b.IsIO(0x8000))
	test.ExpectSuccess(t, !b.IsMemory(0x8000))
	test.ExpectSuccess(t, b.IsMemory(0xf000))

	// unmapped addresses are neither memory nor I/O
	test.ExpectSuccess(t, !b.IsMemory(0x1000))
	test.ExpectSuccess(t, !b.IsIO(0x1000))

	test.ExpectEquality(t, b.String(), strings.Join([]string{
		"0x0000-0x0fff RAM (memory)",
		"0x8000-0x8000 io (I/O)",
		"0xf000-0xf002 ROM (memory)",
	}, "\n"))
}

func TestFirstMatch(t *testing.T) {
	io := &ioDevice{address: 0x0010, value: 0x99}
	ram := memory.NewRAM(nil, 0x0000, 0x00ff)

	b, err := bus.NewBus(io, ram)
	test.DemandSuccess(t, err)

	// the I/O device was attached first and hides the RAM at the same address
	v, err := b.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x99)
	test.ExpectSuccess(t, b.IsIO(0x0010))

	test.ExpectSuccess(t, b.Write(0x0010, 0x11))
	v, err = ram.Read(0x0010)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)

	d, ok := b.Find(0x0011)
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, d.Label(), "RAM")
	test.ExpectEquality(t, len(b.Devices()), 2)
}

func TestUnmapped(t *testing.T) {
	logger.Clear()

	b, err := bus.NewBus(memory.NewRAM(nil, 0x0000, 0x00ff))
	test.DemandSuccess(t, err)

	v, err := b.Read(0x4000)
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, v, 0x00)

	// writes are ignored but counted and logged
	test.ExpectSuccess(t, b.Write(0x4000, 0x12))
	test.ExpectSuccess(t, b.Write(0x4001, 0x34))
	test.ExpectEquality(t, b.UnmappedWrites(), 2)

	e := logger.Entries()
	test.DemandEquality(t, len(e), 2)
	test.ExpectEquality(t, e[0].Tag, "bus")
	test.ExpectEquality(t, e[0].Detail, "unmapped write (0x12 to 0x4000)")

	b.Reset()
	test.ExpectEquality(t, b.UnmappedWrites(), 0)
}

func TestPeekPoke(t *testing.T) {
	rom, err := memory.NewROM(0xff00, make([]uint8, 0x100))
	test.DemandSuccess(t, err)
	io := &ioDevice{address: 0x8000, value: 0x77}

	b, err := bus.NewBus(rom, io)
	test.DemandSuccess(t, err)

	// writing to ROM has no effect but poking does
	test.ExpectSuccess(t, b.Write(0xfffc, 0x12))
	v, _ := b.Peek(0xfffc)
	test.ExpectEquality(t, v, 0x00)
	test.ExpectSuccess(t, b.Poke(0xfffc, 0x12))
	v, _ = b.Read(0xfffc)
	test.ExpectEquality(t, v, 0x12)

	// devices without debugger support are accessed normally
	v, _ = b.Peek(0x8000)
	test.ExpectEquality(t, v, 0x77)
	test.ExpectEquality(t, io.reads, 1)
}

type badDevice struct {
	ioDevice
}

func (d *badDevice) Size() int { return 2 }

func TestInvalidDevice(t *testing.T) {
	_, err := bus.NewBus(&badDevice{})
	test.ExpectSuccess(t, curated.Is(err, bus.InvalidDevice))
}
