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

package preferences_test

import (
	"path/filepath"
	"testing"

	"github.com/drewwalton19216801/butterfly/hardware/preferences"
	"github.com/drewwalton19216801/butterfly/prefs"
	"github.com/drewwalton19216801/butterfly/test"
)

func TestDefaults(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	test.ExpectEquality(t, p.IllegalOpcodes.Get().(bool), true)
	test.ExpectEquality(t, p.RandomState.Get().(bool), false)
	test.ExpectEquality(t, p.Trace.Get().(bool), false)
}

func TestSaveLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "preferences")

	p, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectSuccess(t, p.IllegalOpcodes.Set(false))
	test.ExpectSuccess(t, p.Trace.Set(true))
	test.DemandSuccess(t, p.Save())

	q, err := preferences.NewPreferencesFromFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, q.IllegalOpcodes.Get().(bool), false)
	test.ExpectEquality(t, q.Trace.Get().(bool), true)

	test.ExpectSuccess(t, q.Reset())
	test.ExpectEquality(t, q.IllegalOpcodes.Get().(bool), true)
	test.ExpectEquality(t, q.Trace.Get().(bool), false)
}

func TestCommandLine(t *testing.T) {
	prefs.PushCommandLineStack("hardware.randstate::true")
	defer prefs.PopCommandLineStack()

	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, p.RandomState.Get().(bool), true)
}

func TestReseed(t *testing.T) {
	p, err := preferences.NewPreferencesFromFile(filepath.Join(t.TempDir(), "preferences"))
	test.DemandSuccess(t, err)

	p.Reseed(100)
	a := p.RandSrc.IntN(1000)
	p.Reseed(100)
	test.ExpectEquality(t, p.RandSrc.IntN(1000), a)
	test.ExpectEquality(t, p.RandSeed, uint64(100))
}
