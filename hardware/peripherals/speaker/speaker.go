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

// Package speaker implements a one bit speaker. Any access to the device
// toggles the speaker cone between its two positions. The position is sampled
// as the CPU is clocked and the result can be saved as a WAV file.
package speaker

import (
	"fmt"
	"os"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/logger"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

// SampleRate of the recorded audio in Hz.
const SampleRate = 44100

// bit depth of the recorded audio and the sample values for each cone
// position
const (
	bitDepth = 16
	high     = 0x3fff
	low      = -0x3fff
)

// Speaker implements the bus.Device interface.
type Speaker struct {
	address uint16

	level bool

	// fractional count of CPU cycles since the last sample. a sample is taken
	// when the count reaches clock/SampleRate
	regulator   float64
	regulatorCt float64

	toggles int
	samples []int
}

// NewSpeaker is the preferred method of initialisation for the Speaker type.
// The clock argument is the speed of the CPU in Hz.
func NewSpeaker(address uint16, clock int) (*Speaker, error) {
	if clock < SampleRate {
		return nil, curated.Errorf("speaker: clock of %dHz is slower than the sample rate", clock)
	}
	spk := &Speaker{
		address:   address,
		regulator: float64(clock) / SampleRate,
	}
	return spk, nil
}

func (spk *Speaker) String() string {
	return fmt.Sprintf("speaker: %d toggles, %.02fs recorded", spk.toggles, spk.Duration())
}

// Duration returns the length of the recording in seconds.
func (spk *Speaker) Duration() float64 {
	return float64(len(spk.samples)) / SampleRate
}

// Samples returns the recorded samples.
func (spk *Speaker) Samples() []int {
	return spk.samples
}

// Level returns the current cone position.
func (spk *Speaker) Level() bool {
	return spk.level
}

func (spk *Speaker) toggle() {
	spk.level = !spk.level
	spk.toggles++
}

// Tick implements the hardware.Ticker interface. It should be called once
// per CPU cycle.
func (spk *Speaker) Tick() error {
	spk.regulatorCt++
	if spk.regulatorCt < spk.regulator {
		return nil
	}
	spk.regulatorCt -= spk.regulator

	if spk.level {
		spk.samples = append(spk.samples, high)
	} else {
		spk.samples = append(spk.samples, low)
	}
	return nil
}

// Save the recording to the named file in WAV format.
func (spk *Speaker) Save(filename string) (rerr error) {
	f, err := os.Create(filename)
	if err != nil {
		return curated.Errorf("speaker: %v", err)
	}
	defer func() {
		err := f.Close()
		if err != nil && rerr == nil {
			rerr = curated.Errorf("speaker: %v", err)
		}
	}()

	enc := wav.NewEncoder(f, SampleRate, bitDepth, 1, 1)
	buf := &audio.IntBuffer{
		Format: &audio.Format{
			NumChannels: 1,
			SampleRate:  SampleRate,
		},
		Data:           spk.samples,
		SourceBitDepth: bitDepth,
	}
	if err := enc.Write(buf); err != nil {
		return curated.Errorf("speaker: %v", err)
	}
	if err := enc.Close(); err != nil {
		return curated.Errorf("speaker: %v", err)
	}

	logger.Logf(logger.Allow, "speaker", "wrote %.02fs of audio to %s", spk.Duration(), filename)

	return nil
}

// Read implements the bus.Device interface. Reading toggles the speaker.
func (spk *Speaker) Read(_ uint16) (uint8, error) {
	spk.toggle()
	return 0x00, nil
}

// Write implements the bus.Device interface. Writing toggles the speaker.
func (spk *Speaker) Write(_ uint16, _ uint8) error {
	spk.toggle()
	return nil
}

// Peek implements the bus.DebuggerBus interface.
func (spk *Speaker) Peek(_ uint16) (uint8, error) {
	return 0x00, nil
}

// Poke implements the bus.DebuggerBus interface.
func (spk *Speaker) Poke(_ uint16, _ uint8) error {
	return nil
}

// Reset implements the bus.Device interface. The recording is kept.
func (spk *Speaker) Reset() {
	spk.level = false
	spk.regulatorCt = 0
}

// IsMemory implements the bus.Device interface.
func (spk *Speaker) IsMemory() bool {
	return false
}

// StartAddress implements the bus.Device interface.
func (spk *Speaker) StartAddress() uint16 {
	return spk.address
}

// EndAddress implements the bus.Device interface.
func (spk *Speaker) EndAddress() uint16 {
	return spk.address
}

// Size implements the bus.Device interface.
func (spk *Speaker) Size() int {
	return 1
}

// Label implements the bus.Device interface.
func (spk *Speaker) Label() string {
	return "Speaker"
}
