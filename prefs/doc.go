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

// Package prefs facilitates the storage of preferential values in the
// butterfly system. It is intended to be used by other packages to store
// their own preferences. The hardware/preferences package is an example.
//
// The Bool, Int and String types hold preference values. They can be used as
// live values and are safe to read from more than one goroutine.
//
// The Disk type associates preference values with keys and saves them to,
// and loads them from, a file on disk. The file is a simple list of
//
//	key :: value
//
// lines, sorted by key, below a warning that the file should not be edited
// by hand. Keys in the file that are not registered with a Disk instance are
// preserved when the file is saved.
//
// Values can also be set from the command line with PushCommandLineStack().
// A value found on the command line stack overrides the value loaded from
// disk for as long as the stack entry exists.
package prefs
