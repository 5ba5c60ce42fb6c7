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

package tape_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/hardware/peripherals/tape"
	"github.com/drewwalton19216801/butterfly/test"
	"github.com/go-audio/audio"
	"github.com/go-audio/wav"
)

const sampleRate = 1000

// writeWAV creates a stereo WAV file. the right channel is the inverse of
// the left channel
func writeWAV(t *testing.T, left []int) string {
	t.Helper()

	fn := filepath.Join(t.TempDir(), "tape.wav")
	f, err := os.Create(fn)
	test.DemandSuccess(t, err)
	defer f.Close()

	data := make([]int, 0, len(left)*2)
	for _, v := range left {
		data = append(data, v, -v)
	}

	enc := wav.NewEncoder(f, sampleRate, 16, 2, 1)
	test.DemandSuccess(t, enc.Write(&audio.IntBuffer{
		Format:         &audio.Format{NumChannels: 2, SampleRate: sampleRate},
		Data:           data,
		SourceBitDepth: 16,
	}))
	test.DemandSuccess(t, enc.Close())

	return fn
}

func tick(t *testing.T, tap *tape.Tape, n int) {
	t.Helper()
	for i := 0; i < n; i++ {
		test.DemandSuccess(t, tap.Tick())
	}
}

func TestPlayback(t *testing.T) {
	fn := writeWAV(t, []int{1000, -1000, -1000, 1000})

	// ten CPU cycles per sample
	tap, err := tape.NewTape(0x8030, sampleRate*10, fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, tap.Playing())
	test.ExpectApproximate(t, tap.MaxTime(), 0.004, 0.001)

	v, _ := tap.Read(0x8030)
	test.ExpectEquality(t, v, tape.Signal|tape.Motor)

	tick(t, tap, 9)
	test.ExpectEquality(t, tap.Counter(), 0)
	tick(t, tap, 1)
	test.ExpectEquality(t, tap.Counter(), 1)
	v, _ = tap.Read(0x8030)
	test.ExpectEquality(t, v, tape.Motor)

	tick(t, tap, 20)
	test.ExpectEquality(t, tap.Counter(), 3)
	v, _ = tap.Read(0x8030)
	test.ExpectEquality(t, v, tape.Signal|tape.Motor)

	// the motor stops at the end of the tape
	tick(t, tap, 10)
	test.ExpectEquality(t, tap.Counter(), 3)
	test.ExpectSuccess(t, !tap.Playing())
}

func TestMotor(t *testing.T) {
	fn := writeWAV(t, []int{1000, -1000, 1000, -1000})

	tap, err := tape.NewTape(0x8030, sampleRate, fn)
	test.DemandSuccess(t, err)

	test.ExpectSuccess(t, tap.Write(0x8030, 0x00))
	tick(t, tap, 5)
	test.ExpectEquality(t, tap.Counter(), 0)
	v, _ := tap.Read(0x8030)
	test.ExpectEquality(t, v, tape.Signal)

	test.ExpectSuccess(t, tap.Write(0x8030, tape.Motor))
	tick(t, tap, 2)
	test.ExpectEquality(t, tap.Counter(), 2)

	test.ExpectSuccess(t, tap.Write(0x8030, tape.Motor|tape.Rewind))
	test.ExpectEquality(t, tap.Counter(), 0)
	test.ExpectSuccess(t, tap.Playing())

	tick(t, tap, 1)
	tap.Reset()
	test.ExpectEquality(t, tap.Counter(), 0)
	test.ExpectSuccess(t, tap.Playing())
}

func TestLoadErrors(t *testing.T) {
	dir := t.TempDir()

	_, err := tape.NewTape(0x8030, sampleRate, filepath.Join(dir, "missing.wav"))
	test.ExpectFailure(t, err)

	fn := filepath.Join(dir, "tape.txt")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not audio"), 0o644))
	_, err = tape.NewTape(0x8030, sampleRate, fn)
	test.ExpectSuccess(t, curated.Is(err, tape.UnsupportedFormat))

	fn = filepath.Join(dir, "bad.wav")
	test.DemandSuccess(t, os.WriteFile(fn, []byte("not audio"), 0o644))
	_, err = tape.NewTape(0x8030, sampleRate, fn)
	test.ExpectSuccess(t, curated.Is(err, tape.DecodeError))

	fn = filepath.Join(dir, "empty.mp3")
	test.DemandSuccess(t, os.WriteFile(fn, []byte{}, 0o644))
	_, err = tape.NewTape(0x8030, sampleRate, fn)
	test.ExpectFailure(t, err)
}
