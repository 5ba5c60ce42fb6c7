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

// Package modalflag is a wrapper for the flag package in the Go standard
// library. It adds program modes, each of which can have its own set of
// flags.
//
// Arguments are given with NewArgs() and then parsed with Parse(). Flags are
// added before parsing in the same way as with the flag package:
//
//	md := modalflag.Modes{Output: os.Stdout}
//	md.NewArgs(os.Args[1:])
//	verbose := md.AddBool("verbose", false, "print additional log messages")
//	_, _ = md.Parse()
//
// Non-flag arguments are retrieved with RemainingArgs() or GetArg().
//
// A mode is a special argument that puts the program into a different mode
// of operation, in the way the go command has build, test, etc. Sub-modes are
// added with AddSubModes(). The first sub-mode in the list is the default.
// Comparisons are case insensitive and the selected mode is always upper
// case.
//
//	md.AddSubModes("run", "script", "version")
//	_, _ = md.Parse()
//	switch md.Mode() {
//	case "RUN":
//		md.NewMode()
//		ticks := md.AddInt("ticks", 0, "number of clock ticks")
//		_, _ = md.Parse()
//		run(*ticks, md.RemainingArgs())
//	}
//
// Modes can be nested as deeply as required. The Path() function returns
// every mode selected so far, for example "RUN/TRACE".
package modalflag
