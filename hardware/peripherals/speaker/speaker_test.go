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

package speaker_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drewwalton19216801/butterfly/hardware/peripherals/speaker"
	"github.com/drewwalton19216801/butterfly/test"
	"github.com/go-audio/wav"
)

// a clock of ten CPU cycles per sample
const clock = speaker.SampleRate * 10

func TestToggle(t *testing.T) {
	spk, err := speaker.NewSpeaker(0x8020, clock)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, !spk.Level())

	_, _ = spk.Read(0x8020)
	test.ExpectSuccess(t, spk.Level())
	test.ExpectSuccess(t, spk.Write(0x8020, 0x00))
	test.ExpectSuccess(t, !spk.Level())

	// debugger access does not toggle the speaker
	_, _ = spk.Peek(0x8020)
	test.ExpectSuccess(t, spk.Poke(0x8020, 0x00))
	test.ExpectSuccess(t, !spk.Level())

	_, err = speaker.NewSpeaker(0x8020, 1000)
	test.ExpectFailure(t, err)
}

func TestSampling(t *testing.T) {
	spk, err := speaker.NewSpeaker(0x8020, clock)
	test.DemandSuccess(t, err)

	for i := 0; i < 50; i++ {
		test.ExpectSuccess(t, spk.Tick())
	}
	_, _ = spk.Read(0x8020)
	for i := 0; i < 50; i++ {
		test.ExpectSuccess(t, spk.Tick())
	}

	s := spk.Samples()
	test.DemandEquality(t, len(s), 10)
	for i := 0; i < 5; i++ {
		test.ExpectSuccess(t, s[i] < 0, i)
		test.ExpectSuccess(t, s[i+5] > 0, i+5)
	}

	fn := filepath.Join(t.TempDir(), "speaker.wav")
	test.DemandSuccess(t, spk.Save(fn))

	f, err := os.Open(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	dec := wav.NewDecoder(f)
	test.DemandSuccess(t, dec.IsValidFile())
	buf, err := dec.FullPCMBuffer()
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, int(dec.SampleRate), speaker.SampleRate)
	test.ExpectEquality(t, int(dec.NumChans), 1)
	test.DemandEquality(t, len(buf.Data), 10)
	test.ExpectEquality(t, buf.Data[0], s[0])
	test.ExpectEquality(t, buf.Data[9], s[9])
}
