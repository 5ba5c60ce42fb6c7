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
	"bufio"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/drewwalton19216801/butterfly/curated"
)

// DefaultPrefsFile is the default filename of the preferences file.
const DefaultPrefsFile = "preferences"

// WarningBoilerPlate is the first line of every preferences file.
const WarningBoilerPlate = "*** do not edit this file by hand ***"

// the separator between key and value in the preferences file
const separator = " :: "

// Error patterns.
const (
	NoPrefsFile  = "prefs: no preferences file (%s)"
	DuplicateKey = "prefs: key %s already added"
	InvalidPrefs = "prefs: invalid preferences file (%s)"
	PrefsFileIO  = "prefs: %v"
	InvalidEntry = "prefs: invalid entry for %s: %v"
)

// Disk represents preference values as stored on disk.
type Disk struct {
	path    string
	entries map[string]pref
}

// NewDisk is the preferred method of initialisation for the Disk type.
func NewDisk(path string) (*Disk, error) {
	return &Disk{
		path:    path,
		entries: make(map[string]pref),
	}, nil
}

func (dsk *Disk) String() string {
	keys := dsk.keys()
	s := strings.Builder{}
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, dsk.entries[k]))
	}
	return s.String()
}

func (dsk *Disk) keys() []string {
	keys := make([]string, 0, len(dsk.entries))
	for k := range dsk.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Add preference value to the disk, associating it with the key. If the
// command line stack has a value for the key then the value is set
// immediately.
func (dsk *Disk) Add(key string, p pref) error {
	if _, ok := dsk.entries[key]; ok {
		return curated.Errorf(DuplicateKey, key)
	}
	dsk.entries[key] = p

	if ok, v := GetCommandLinePref(key); ok {
		if err := p.Set(v); err != nil {
			return curated.Errorf(InvalidEntry, key, err)
		}
	}

	return nil
}

// Reset all preference values to their default.
func (dsk *Disk) Reset() error {
	for _, k := range dsk.keys() {
		if err := dsk.entries[k].Reset(); err != nil {
			return curated.Errorf(InvalidEntry, k, err)
		}
	}
	return nil
}

// read the preferences file and return the key/value pairs. a missing file
// results in a NoPrefsFile error.
func (dsk *Disk) read() (map[string]string, error) {
	f, err := os.Open(dsk.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, curated.Errorf(NoPrefsFile, dsk.path)
		}
		return nil, curated.Errorf(PrefsFileIO, err)
	}
	defer f.Close()

	values := make(map[string]string)

	scanner := bufio.NewScanner(f)

	// the first line must be the warning
	if !scanner.Scan() || scanner.Text() != WarningBoilerPlate {
		return nil, curated.Errorf(InvalidPrefs, dsk.path)
	}

	for scanner.Scan() {
		kv := strings.SplitN(scanner.Text(), separator, 2)
		if len(kv) != 2 {
			continue
		}
		values[strings.TrimSpace(kv[0])] = strings.TrimSpace(kv[1])
	}

	if err := scanner.Err(); err != nil {
		return nil, curated.Errorf(PrefsFileIO, err)
	}

	return values, nil
}

// Save current preference values to disk. Entries in the existing file that
// have not been added to this Disk instance are preserved.
func (dsk *Disk) Save() error {
	values, err := dsk.read()
	if err != nil {
		if !curated.Is(err, NoPrefsFile) {
			return err
		}
		values = make(map[string]string)
	}

	for k, p := range dsk.entries {
		values[k] = p.String()
	}

	keys := make([]string, 0, len(values))
	for k := range values {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	s := strings.Builder{}
	s.WriteString(WarningBoilerPlate)
	s.WriteString("\n")
	for _, k := range keys {
		s.WriteString(fmt.Sprintf("%s%s%s\n", k, separator, values[k]))
	}

	if err := os.MkdirAll(filepath.Dir(dsk.path), 0o700); err != nil {
		return curated.Errorf(PrefsFileIO, err)
	}

	if err := os.WriteFile(dsk.path, []byte(s.String()), 0o600); err != nil {
		return curated.Errorf(PrefsFileIO, err)
	}

	return nil
}

// Load preference values from disk. If saveOnFail is true and the
// preferences file does not exist, then the current values are saved to a
// new file and no error is returned.
//
// Values on the command line stack take priority over the values on disk.
func (dsk *Disk) Load(saveOnFail bool) error {
	values, readErr := dsk.read()
	if readErr != nil {
		if !curated.Is(readErr, NoPrefsFile) {
			return readErr
		}
		if saveOnFail {
			if err := dsk.Save(); err != nil {
				return err
			}
			readErr = nil
		}
	}

	// command line values are applied even when there is no file
	for k, p := range dsk.entries {
		if ok, v := GetCommandLinePref(k); ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(InvalidEntry, k, err)
			}
			continue
		}
		if v, ok := values[k]; ok {
			if err := p.Set(v); err != nil {
				return curated.Errorf(InvalidEntry, k, err)
			}
		}
	}

	return readErr
}
