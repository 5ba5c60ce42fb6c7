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

package console_test

import (
	"os"
	"strings"
	"testing"
	"time"

	"github.com/drewwalton19216801/butterfly/hardware/peripherals/console"
	"github.com/drewwalton19216801/butterfly/test"
)

func TestConsole(t *testing.T) {
	out := &strings.Builder{}
	con := console.NewConsole(0x8010, out)
	test.ExpectEquality(t, con.StartAddress(), 0x8010)
	test.ExpectEquality(t, con.EndAddress(), 0x8011)
	test.ExpectSuccess(t, !con.IsMemory())

	// nothing to read but output is always ready
	v, _ := con.Read(0x8010)
	test.ExpectEquality(t, v, console.OutputReady)
	v, _ = con.Read(0x8011)
	test.ExpectEquality(t, v, 0x00)

	con.Feed('h', 'i')
	v, _ = con.Read(0x8010)
	test.ExpectEquality(t, v, console.OutputReady|console.InputReady)

	// peeking does not consume input
	v, _ = con.Peek(0x8011)
	test.ExpectEquality(t, v, 'h')
	v, _ = con.Read(0x8011)
	test.ExpectEquality(t, v, 'h')
	v, _ = con.Read(0x8011)
	test.ExpectEquality(t, v, 'i')
	v, _ = con.Read(0x8010)
	test.ExpectEquality(t, v, console.OutputReady)

	for _, c := range []byte("ok\n") {
		test.ExpectSuccess(t, con.Write(0x8011, c))
	}
	test.ExpectSuccess(t, con.Write(0x8010, 'x'))
	test.ExpectEquality(t, out.String(), "ok\n")

	con.Feed('z')
	con.Reset()
	v, _ = con.Read(0x8010)
	test.ExpectEquality(t, v, console.OutputReady)
}

func TestOverflow(t *testing.T) {
	con := console.NewConsole(0x8010, nil)
	for i := 0; i < 300; i++ {
		con.Feed(uint8(i))
	}
	test.ExpectEquality(t, con.String(), "console: 256 waiting, 44 dropped")
}

func TestHost(t *testing.T) {
	r, w, err := os.Pipe()
	test.DemandSuccess(t, err)
	defer r.Close()

	con := console.NewConsole(0x8010, nil)
	h := console.NewHost(con, r)
	test.DemandSuccess(t, h.Start())

	_, err = w.Write([]byte("abc"))
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, w.Close())

	select {
	case <-h.Done():
	case <-time.After(time.Second):
		t.Fatalf("host did not finish reading")
	}

	var s strings.Builder
	for {
		st, _ := con.Read(0x8010)
		if st&console.InputReady == 0 {
			break
		}
		v, _ := con.Read(0x8011)
		s.WriteByte(v)
	}
	test.ExpectEquality(t, s.String(), "abc")

	// a pipe is not a terminal so there is nothing to restore
	test.ExpectSuccess(t, h.Stop())
}
