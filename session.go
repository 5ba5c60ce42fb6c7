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

package main

import (
	"io"
	"os"
	"path/filepath"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/hardware"
	"github.com/drewwalton19216801/butterfly/hardware/memory"
	"github.com/drewwalton19216801/butterfly/hardware/memory/bus"
	"github.com/drewwalton19216801/butterfly/hardware/peripherals/blink8"
	"github.com/drewwalton19216801/butterfly/hardware/peripherals/console"
	"github.com/drewwalton19216801/butterfly/hardware/peripherals/speaker"
	"github.com/drewwalton19216801/butterfly/hardware/peripherals/tape"
	"github.com/drewwalton19216801/butterfly/hardware/preferences"
	"github.com/drewwalton19216801/butterfly/logger"
	"github.com/drewwalton19216801/butterfly/paths"
)

// memory map of the machine. blink8 is fixed at 0x8000-0x8002
const (
	ramOrigin     = 0x0000
	ramMemtop     = 0x7fff
	consoleOrigin = 0x8010
	speakerOrigin = 0x8020
	tapeOrigin    = 0x8030

	// a blank ROM of this size is used when no ROM file is given
	blankROMOrigin = 0xc000
	blankROMSize   = 0x4000
)

// session is a machine along with the peripherals that need attention when
// the emulation ends.
type session struct {
	m *hardware.Machine

	spk     *speaker.Speaker
	spkFile string

	host       *console.Host
	memvizFile string
}

// newSession creates the machine described by the flags. if romFile is empty
// a blank ROM is used
func newSession(flags *machineFlags, prf *preferences.Preferences, romFile string, out io.Writer) (*session, error) {
	ses := &session{
		spkFile:    outputFile(*flags.speaker, "speaker", "wav"),
		memvizFile: outputFile(*flags.memviz, "memviz", "dot"),
	}

	var rom *memory.ROM
	var err error
	if romFile == "" {
		rom, err = memory.NewROM(blankROMOrigin, make([]uint8, blankROMSize))
	} else {
		rom, err = memory.LoadROM(romFile, flags.origin.Get())
	}
	if err != nil {
		return nil, err
	}

	devices := []bus.Device{
		memory.NewRAM(prf, ramOrigin, ramMemtop),
		blink8.NewBlink8(out),
	}

	var con *console.Console
	if *flags.console {
		con = console.NewConsole(consoleOrigin, out)
		devices = append(devices, con)
	}

	if ses.spkFile != "" {
		ses.spk, err = speaker.NewSpeaker(speakerOrigin, hardware.DefaultClock)
		if err != nil {
			return nil, err
		}
		devices = append(devices, ses.spk)
	}

	if *flags.tape != "" {
		tap, err := tape.NewTape(tapeOrigin, hardware.DefaultClock, *flags.tape)
		if err != nil {
			return nil, err
		}
		devices = append(devices, tap)
	}

	devices = append(devices, rom)

	ses.m, err = hardware.NewMachine(prf, devices...)
	if err != nil {
		return nil, err
	}
	ses.m.SetTrace(out)

	logger.Logf(logger.Allow, "butterfly", "memory map:\n%s", ses.m.Bus)

	if con != nil {
		ses.host = console.NewHost(con, os.Stdin)
		if err := ses.host.Start(); err != nil {
			return nil, err
		}
	}

	return ses, nil
}

// outputFile returns the filename to use for an output file. if pth is an
// existing directory then a unique filename in that directory is returned
func outputFile(pth string, prepend string, ext string) string {
	if pth == "" {
		return ""
	}
	if fi, err := os.Stat(pth); err == nil && fi.IsDir() {
		return filepath.Join(pth, paths.UniqueFilename(prepend, ext))
	}
	return pth
}

// end the session. the terminal is restored and any output files written
func (ses *session) end() error {
	var errs []error

	if ses.host != nil {
		if err := ses.host.Stop(); err != nil {
			errs = append(errs, err)
		}
	}

	if ses.spk != nil {
		if err := ses.spk.Save(ses.spkFile); err != nil {
			errs = append(errs, err)
		}
	}

	if ses.memvizFile != "" {
		if err := ses.writeGraph(); err != nil {
			errs = append(errs, err)
		}
	}

	if len(errs) > 0 {
		return errs[0]
	}
	return nil
}

func (ses *session) writeGraph() (rerr error) {
	f, err := os.Create(ses.memvizFile)
	if err != nil {
		return curated.Errorf("memviz: %v", err)
	}
	defer func() {
		if err := f.Close(); err != nil && rerr == nil {
			rerr = curated.Errorf("memviz: %v", err)
		}
	}()
	ses.m.Graph(f)
	return nil
}
