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

package test_test

import (
	"errors"
	"io"
	"testing"

	"github.com/drewwalton19216801/butterfly/test"
)

func TestExpectFailure(t *testing.T) {
	test.ExpectFailure(t, false)
	test.ExpectFailure(t, errors.New("test"))
}

func TestExpectSuccess(t *testing.T) {
	test.ExpectSuccess(t, true)
	var err error
	test.ExpectSuccess(t, err)
	test.ExpectSuccess(t, nil)
}

func TestExpectEquality(t *testing.T) {
	test.ExpectEquality(t, 10, 5+5)
	test.ExpectEquality(t, uint16(0xfffc), 0xfffc)
	test.ExpectInequality(t, 11, 5+5)
	test.ExpectApproximate(t, 10, 11, 0.1)
	test.ExpectImplements[io.Writer](t, &test.CompareWriter{})
}

func TestRingWriter(t *testing.T) {
	r, err := test.NewRingWriter(10)
	test.DemandSuccess(t, err)
	test.ExpectEquality(t, r.String(), "")

	r.Write([]byte("abcde"))
	test.ExpectEquality(t, r.String(), "abcde")

	r.Write([]byte("fghij"))
	test.ExpectEquality(t, r.String(), "abcdefghij")

	// beyond the size of the buffer
	r.Write([]byte("kl"))
	test.ExpectEquality(t, r.String(), "cdefghijkl")

	// longer than the buffer with content already present
	r.Write([]byte("1234567890ABC"))
	test.ExpectEquality(t, r.String(), "4567890ABC")

	r.Reset()
	test.ExpectEquality(t, r.String(), "")
}

func TestCappedWriter(t *testing.T) {
	c, err := test.NewCappedWriter(4)
	test.DemandSuccess(t, err)
	c.Write([]byte("ab"))
	n, err := c.Write([]byte("cdef"))
	test.ExpectSuccess(t, err)
	test.ExpectEquality(t, n, 4)
	test.ExpectEquality(t, c.String(), "abcd")

	c.Reset()
	c.Write([]byte("xyz"))
	test.ExpectEquality(t, c.String(), "xyz")

	_, err = test.NewCappedWriter(0)
	test.ExpectFailure(t, err)
}
