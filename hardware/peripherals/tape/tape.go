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

// Package tape implements a cassette input device. The tape is loaded from a
// WAV or MP3 file. Bit 7 of the device register reflects the sign of the
// audio sample under the play head. The play head advances as the CPU is
// clocked.
//
// Writing to the register controls the tape motor: bit 0 set starts the tape
// and bit 0 clear stops it. Bit 1 set rewinds the tape.
package tape

import (
	"fmt"
	"math"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/logger"
)

// Register bits.
const (
	Signal uint8 = 0x80
	Motor  uint8 = 0x01
	Rewind uint8 = 0x02
)

// Tape implements the bus.Device interface.
type Tape struct {
	address uint16

	samples    []float32
	sampleRate float64

	// index of the sample under the play head
	idx int

	playing bool

	// the play head advances every regulator CPU cycles
	regulator   int
	regulatorCt int
}

// NewTape is the preferred method of initialisation for the Tape type. The
// clock argument is the speed of the CPU in Hz.
func NewTape(address uint16, clock int, filename string) (*Tape, error) {
	p, err := loadPCM(filename)
	if err != nil {
		return nil, err
	}
	return newTape(address, clock, p)
}

func newTape(address uint16, clock int, p pcmData) (*Tape, error) {
	if len(p.data) == 0 || p.sampleRate <= 0 {
		return nil, curated.Errorf("tape: no audio data")
	}

	tap := &Tape{
		address:    address,
		samples:    p.data,
		sampleRate: p.sampleRate,
		regulator:  int(math.Round(float64(clock) / p.sampleRate)),
	}
	if tap.regulator < 1 {
		tap.regulator = 1
	}

	logger.Logf(logger.Allow, "tape", "sample rate: %0.2fHz", tap.sampleRate)
	logger.Logf(logger.Allow, "tape", "total time: %.02fs", tap.MaxTime())
	logger.Logf(logger.Allow, "tape", "tape regulator: %d", tap.regulator)

	tap.Reset()

	return tap, nil
}

func (tap *Tape) String() string {
	return fmt.Sprintf("tape: %.02fs/%.02fs", tap.Time(), tap.MaxTime())
}

// Counter returns the index of the sample under the play head.
func (tap *Tape) Counter() int {
	return tap.idx
}

// Time returns the position of the play head in seconds.
func (tap *Tape) Time() float64 {
	return float64(tap.idx) / tap.sampleRate
}

// MaxTime returns the length of the tape in seconds.
func (tap *Tape) MaxTime() float64 {
	return float64(len(tap.samples)) / tap.sampleRate
}

// Playing returns true if the tape motor is running.
func (tap *Tape) Playing() bool {
	return tap.playing
}

func (tap *Tape) rewind() {
	tap.idx = 0
	tap.regulatorCt = 0
	logger.Log(logger.Allow, "tape", "tape rewound")
}

// Tick implements the hardware.Ticker interface. It should be called once
// per CPU cycle.
func (tap *Tape) Tick() error {
	if !tap.playing {
		return nil
	}

	tap.regulatorCt++
	if tap.regulatorCt < tap.regulator {
		return nil
	}
	tap.regulatorCt = 0

	// the motor stops at the end of the tape
	if tap.idx >= len(tap.samples)-1 {
		tap.playing = false
		return nil
	}
	tap.idx++

	return nil
}

// Read implements the bus.Device interface.
func (tap *Tape) Read(_ uint16) (uint8, error) {
	var v uint8
	if tap.samples[tap.idx] > 0.0 {
		v |= Signal
	}
	if tap.playing {
		v |= Motor
	}
	return v, nil
}

// Write implements the bus.Device interface.
func (tap *Tape) Write(_ uint16, data uint8) error {
	if data&Rewind == Rewind {
		tap.rewind()
	}
	tap.playing = data&Motor == Motor
	return nil
}

// Reset implements the bus.Device interface. The tape is rewound and the
// motor started.
func (tap *Tape) Reset() {
	tap.rewind()
	tap.playing = true
}

// IsMemory implements the bus.Device interface.
func (tap *Tape) IsMemory() bool {
	return false
}

// StartAddress implements the bus.Device interface.
func (tap *Tape) StartAddress() uint16 {
	return tap.address
}

// EndAddress implements the bus.Device interface.
func (tap *Tape) EndAddress() uint16 {
	return tap.address
}

// Size implements the bus.Device interface.
func (tap *Tape) Size() int {
	return 1
}

// Label implements the bus.Device interface.
func (tap *Tape) Label() string {
	return "Tape"
}
