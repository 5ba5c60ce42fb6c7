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

package tape

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/logger"
	"github.com/go-audio/wav"
	"github.com/hajimehoshi/go-mp3"
)

// Error patterns.
const (
	UnsupportedFormat = "tape: unsupported file format (%s)"
	DecodeError       = "tape: %s: %v"
)

type pcmData struct {
	sampleRate float64

	// mono data. the left channel in the case of stereo source files
	data []float32
}

func loadPCM(filename string) (pcmData, error) {
	p := pcmData{}

	f, err := os.Open(filename)
	if err != nil {
		return p, curated.Errorf("tape: %v", err)
	}
	defer f.Close()

	switch ext := strings.ToLower(filepath.Ext(filename)); ext {
	case ".wav":
		return decodeWAV(f)
	case ".mp3":
		return decodeMP3(f)
	default:
		return p, curated.Errorf(UnsupportedFormat, ext)
	}
}

func decodeWAV(r io.ReadSeeker) (pcmData, error) {
	p := pcmData{}

	dec := wav.NewDecoder(r)
	if !dec.IsValidFile() {
		return p, curated.Errorf(DecodeError, "wav", "not a valid wav file")
	}

	buf, err := dec.FullPCMBuffer()
	if err != nil {
		return p, curated.Errorf(DecodeError, "wav", err)
	}
	floatBuf := buf.AsFloat32Buffer()

	numChans := int(dec.NumChans)
	p.data = make([]float32, 0, len(floatBuf.Data)/numChans)
	for i := 0; i < len(floatBuf.Data); i += numChans {
		p.data = append(p.data, floatBuf.Data[i])
	}
	p.sampleRate = float64(dec.SampleRate)

	logger.Logf(logger.Allow, "tape", "wav: %d channels (using one)", numChans)

	return p, nil
}

func decodeMP3(r io.Reader) (pcmData, error) {
	p := pcmData{}

	dec, err := mp3.NewDecoder(r)
	if err != nil {
		return p, curated.Errorf(DecodeError, "mp3", err)
	}

	// the decoded stream is always 16 bit little endian stereo. four bytes
	// per sample and we only want the left channel
	chunk := make([]byte, 4096)
	for {
		n, err := dec.Read(chunk)
		for i := 0; i+1 < n; i += 4 {
			p.data = append(p.data, float32(int16(uint16(chunk[i])|uint16(chunk[i+1])<<8)))
		}
		if err == io.EOF {
			break
		}
		if err != nil {
			return p, curated.Errorf(DecodeError, "mp3", err)
		}
	}
	p.sampleRate = float64(dec.SampleRate())

	return p, nil
}
