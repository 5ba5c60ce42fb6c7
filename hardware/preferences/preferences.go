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

package preferences

import (
	"math/rand/v2"
	"time"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/paths"
	"github.com/drewwalton19216801/butterfly/prefs"
)

// Preferences defines and collates all the preference values used by the
// hardware packages.
type Preferences struct {
	dsk *prefs.Disk

	// execute undocumented opcodes. when false the CPU treats every illegal
	// opcode, including KIL, as a no-op of the nominal length
	IllegalOpcodes prefs.Bool

	// initialise RAM to unknown state after reset
	RandomState prefs.Bool

	// write a line for every instruction to the trace writer
	Trace prefs.Bool

	// random values generated in the hardware package should use the following
	// number source
	RandSrc *rand.Rand

	// the number used to seed RandSrc
	RandSeed uint64
}

func (p *Preferences) String() string {
	return p.dsk.String()
}

// NewPreferences is the preferred method of initialisation for the
// Preferences type. Values are loaded from the default preferences file in the
// resource directory.
func NewPreferences() (*Preferences, error) {
	return NewPreferencesFromFile(paths.ResourcePath("", prefs.DefaultPrefsFile))
}

// NewPreferencesFromFile is like NewPreferences() but with an explicit
// preferences file.
func NewPreferencesFromFile(pth string) (*Preferences, error) {
	p := &Preferences{}

	// initialise random number generator
	p.Reseed(0)

	var err error

	p.dsk, err = prefs.NewDisk(pth)
	if err != nil {
		return nil, err
	}

	err = p.IllegalOpcodes.Set(true)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Add("hardware.illegalopcodes", &p.IllegalOpcodes)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.randstate", &p.RandomState)
	if err != nil {
		return nil, err
	}
	err = p.dsk.Add("hardware.trace", &p.Trace)
	if err != nil {
		return nil, err
	}

	err = p.dsk.Load(false)
	if err != nil {
		// ignore missing prefs file errors
		if !curated.Is(err, prefs.NoPrefsFile) {
			return nil, err
		}
	}

	return p, nil
}

// Reseed initialises the random number generator. Use a seed value of 0 to
// initialise with the current time.
func (p *Preferences) Reseed(seed uint64) {
	if seed == 0 {
		p.RandSeed = uint64(time.Now().UnixNano())
	} else {
		p.RandSeed = seed
	}
	p.RandSrc = rand.New(rand.NewPCG(p.RandSeed, p.RandSeed>>1))
}

// Reset all hardware preferences to the default values.
func (p *Preferences) Reset() error {
	if err := p.dsk.Reset(); err != nil {
		return err
	}
	return p.IllegalOpcodes.Set(true)
}

// Load current hardware preference from disk.
func (p *Preferences) Load() error {
	return p.dsk.Load(false)
}

// Save current hardware preferences to disk.
func (p *Preferences) Save() error {
	return p.dsk.Save()
}
