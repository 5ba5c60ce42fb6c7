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

package prefs

import (
	"fmt"
	"sort"
	"strings"
)

// each entry in the stack is a group of key/value pairs taken from a single
// command line
var commandLineStack []map[string]string

// PushCommandLineStack parses a preferences string and adds it as a new
// group. The format of the string is:
//
//	key::value; key::value
//
// Malformed key/value pairs are ignored.
func PushCommandLineStack(prefs string) {
	group := make(map[string]string)

	for _, p := range strings.Split(prefs, ";") {
		kv := strings.Split(p, "::")
		if len(kv) == 2 {
			group[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
		}
	}

	commandLineStack = append(commandLineStack, group)
}

// PopCommandLineStack forgets the most recent group added by
// PushCommandLineStack(). Returns the preferences in that group that were
// never used, in the same format used by PushCommandLineStack().
func PopCommandLineStack() string {
	if len(commandLineStack) == 0 {
		return ""
	}

	popped := commandLineStack[len(commandLineStack)-1]
	commandLineStack = commandLineStack[:len(commandLineStack)-1]

	keys := make([]string, 0, len(popped))
	for key := range popped {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	s := make([]string, 0, len(keys))
	for _, key := range keys {
		s = append(s, fmt.Sprintf("%s::%s", key, popped[key]))
	}

	return strings.Join(s, "; ")
}

// SizeCommandLineStack returns the number of groups in the stack.
func SizeCommandLineStack() int {
	return len(commandLineStack)
}

// GetCommandLinePref returns the value for the key from the most recent
// group. The value is deleted when it is returned.
func GetCommandLinePref(key string) (bool, string) {
	if len(commandLineStack) == 0 {
		return false, ""
	}

	group := commandLineStack[len(commandLineStack)-1]
	if v, ok := group[key]; ok {
		delete(group, key)
		return true, v
	}

	return false, ""
}
