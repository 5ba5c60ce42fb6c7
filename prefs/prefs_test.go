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
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/prefs"
	"github.com/drewwalton19216801/butterfly/test"
)

func cmpFile(t *testing.T, fn string, expected string) {
	t.Helper()
	data, err := os.ReadFile(fn)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, string(data), prefs.WarningBoilerPlate+"\n"+expected)
}

func TestBool(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w, x prefs.Bool
	test.ExpectSuccess(t, dsk.Add("test", &v))
	test.ExpectSuccess(t, dsk.Add("testB", &w))
	test.ExpectSuccess(t, dsk.Add("testC", &x))
	test.ExpectFailure(t, dsk.Add("test", &x))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, w.Set("foo"))
	test.ExpectSuccess(t, x.Set("TRUE"))
	test.ExpectFailure(t, x.Set(10))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "test :: true\ntestB :: false\ntestC :: true\n")
}

func TestInt(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v, w prefs.Int
	test.ExpectSuccess(t, dsk.Add("number", &v))
	test.ExpectSuccess(t, dsk.Add("numberB", &w))
	test.ExpectSuccess(t, v.Set(10))
	test.ExpectSuccess(t, w.Set("99"))

	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "number :: 10\nnumberB :: 99\n")

	test.ExpectFailure(t, v.Set("---"))
	test.ExpectFailure(t, v.Set(1.0))
	test.ExpectEquality(t, v.Get().(int), 10)
}

func TestString(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.String
	test.ExpectSuccess(t, dsk.Add("foo", &v))
	test.ExpectSuccess(t, v.Set("bar"))
	test.DemandSuccess(t, dsk.Save())
	cmpFile(t, fn, "foo :: bar\n")
}

// saving from one Disk instance does not clobber the values written by
// another instance using the same file
func TestPreserveEntries(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dskA, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var a prefs.Bool
	test.ExpectSuccess(t, dskA.Add("a", &a))
	test.ExpectSuccess(t, a.Set(true))
	test.DemandSuccess(t, dskA.Save())

	dskB, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)
	var b prefs.String
	test.ExpectSuccess(t, dskB.Add("b", &b))
	test.ExpectSuccess(t, b.Set("hello"))
	test.DemandSuccess(t, dskB.Save())

	cmpFile(t, fn, "a :: true\nb :: hello\n")
}

func TestLoad(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	var n prefs.Int
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.ExpectSuccess(t, dsk.Add("n", &n))

	// file doesn't exist yet
	err = dsk.Load(false)
	test.ExpectSuccess(t, curated.Is(err, prefs.NoPrefsFile))

	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, n.Set(42))
	test.DemandSuccess(t, dsk.Save())

	test.ExpectSuccess(t, dsk.Reset())
	test.ExpectEquality(t, v.Get().(bool), false)
	test.ExpectEquality(t, n.Get().(int), 0)

	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, v.Get().(bool), true)
	test.ExpectEquality(t, n.Get().(int), 42)

	// command line values take priority
	prefs.PushCommandLineStack("n::7")
	test.DemandSuccess(t, dsk.Load(false))
	test.ExpectEquality(t, n.Get().(int), 7)
	test.ExpectEquality(t, prefs.PopCommandLineStack(), "")
}

func TestSaveOnFail(t *testing.T) {
	fn := filepath.Join(t.TempDir(), "sub", "prefs")

	dsk, err := prefs.NewDisk(fn)
	test.DemandSuccess(t, err)

	var v prefs.Bool
	test.ExpectSuccess(t, dsk.Add("v", &v))
	test.DemandSuccess(t, dsk.Load(true))
	cmpFile(t, fn, "v :: false\n")
}

func TestHooks(t *testing.T) {
	var v prefs.Bool
	var post bool

	v.SetHookPost(func(value prefs.Value) error {
		post = value.(bool)
		return nil
	})
	test.ExpectSuccess(t, v.Set(true))
	test.ExpectSuccess(t, post)

	v.SetHookPre(func(value prefs.Value) error {
		return errors.New("refused")
	})
	test.ExpectFailure(t, v.Set(false))
	test.ExpectEquality(t, v.Get().(bool), true)
}
