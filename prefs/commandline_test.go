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

package prefs_test

import (
	"testing"

	"github.com/drewwalton19216801/butterfly/prefs"
	"github.com/drewwalton19216801/butterfly/test"
)

func TestCommandLineParsing(t *testing.T) {
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")

	// surrounding space is removed
	prefs.PushCommandLineStack("  hardware.trace::  true ")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.trace::true")

	// unused values are returned sorted by key
	prefs.PushCommandLineStack("hardware.trace::true; hardware.illegalopcodes::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.illegalopcodes::false; hardware.trace::true")

	// malformed pairs are dropped
	prefs.PushCommandLineStack("hardware.trace;hardware.illegalopcodes::false;a::b::c")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.illegalopcodes::false")
}

func TestCommandLineGet(t *testing.T) {
	prefs.PushCommandLineStack("hardware.randstate::true; hardware.trace::false")

	ok, v := prefs.GetCommandLinePref("hardware.randstate")
	test.ExpectSuccess(t, ok)
	test.ExpectEquality(t, v, "true")

	// a value can only be taken once
	ok, _ = prefs.GetCommandLinePref("hardware.randstate")
	test.ExpectFailure(t, ok)

	ok, _ = prefs.GetCommandLinePref("hardware.illegalopcodes")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.trace::false")
}

func TestCommandLineGroups(t *testing.T) {
	prefs.PushCommandLineStack("hardware.trace::true")
	prefs.PushCommandLineStack("hardware.illegalopcodes::false")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 2)

	// only the most recent group is visible
	ok, _ := prefs.GetCommandLinePref("hardware.trace")
	test.ExpectFailure(t, ok)

	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.illegalopcodes::false")
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "hardware.trace::true")
	test.ExpectEquality(t, prefs.SizeCommandLineStack(), 0)
}
