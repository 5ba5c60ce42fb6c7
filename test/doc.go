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

// Package test contains helper functions to remove common boilerplate from
// package tests.
//
// The Expect functions report failures with t.Errorf() and allow the test to
// continue. The Demand functions report with t.Fatalf() and stop the test.
//
// ExpectSuccess() and ExpectFailure() test for success and failure under
// generic conditions: a bool is successful when true and an error when nil.
// Note that a plain nil value is considered a success, because of how errors
// are usually returned.
//
// CompareWriter, RingWriter and CappedWriter implement io.Writer and are
// used to capture output for later comparison.
package test
