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

// Package paths contains functions to prepare paths to butterfly resources.
//
// The ResourcePath() function prepends the supplied resource with the
// appropriate config directory. For example, the following will return the
// path to the preferences file.
//
//	p := paths.ResourcePath("", "preferences")
//
// The policy of ResourcePath() is simple: if the base resource path, ".butterfly",
// is present in the program's current directory then that is the base path
// that will be used. If it is not present then the user's config directory is
// used. The package uses os.UserConfigDir() from the standard library for this.
//
// On a modern Linux system, the path returned in the example above will be:
//
//	/home/user/.config/butterfly/preferences
//
// ResourcePath() does not create any directories.
package paths
