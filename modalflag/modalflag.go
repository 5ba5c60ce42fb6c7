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

package modalflag

import (
	"flag"
	"io"
	"strings"
	"time"
)

const modeSeparator = "/"

// Modes wraps a flag.FlagSet with support for program modes. The Output field
// should be set before calling Parse() or help messages will not be seen.
type Modes struct {
	// help messages are written to Output
	Output io.Writer

	// a new flagset is created by NewArgs() and NewMode(). it should never
	// be parsed directly
	flags  *flag.FlagSet
	parsed bool

	args    []string
	argsIdx int

	// sub-modes that will be recognised by the next call to Parse(). the
	// first entry is the default
	subModes []string

	// every mode selected so far. the path is never reset
	path []string

	additionalHelp string
}

func (md *Modes) String() string {
	return md.Path()
}

// Mode returns the most recently selected mode.
func (md *Modes) Mode() string {
	if len(md.path) == 0 {
		return ""
	}
	return md.path[len(md.path)-1]
}

// Path returns every mode selected so far, separated by a slash.
func (md *Modes) Path() string {
	return strings.Join(md.path, modeSeparator)
}

// NewArgs prepares the Modes for a new list of arguments. Usually this will
// be os.Args[1:].
func (md *Modes) NewArgs(args []string) {
	md.args = args
	md.argsIdx = 0
	md.NewMode()
}

// NewMode starts a new layer of flags and sub-modes. Arguments consumed by
// the previous call to Parse() are not seen again.
func (md *Modes) NewMode() {
	md.subModes = md.subModes[:0]
	md.flags = flag.NewFlagSet("", flag.ContinueOnError)
	md.parsed = false
}

// AdditionalHelp is printed after the flag and sub-mode information when
// help is requested.
func (md *Modes) AdditionalHelp(help string) {
	md.additionalHelp = help
}

// Parsed returns true if Parse() has been called since the last call to
// NewArgs() or NewMode(), whether or not it was successful.
func (md *Modes) Parsed() bool {
	return md.parsed
}

// ParseResult is returned by the Parse() function.
type ParseResult int

// List of valid ParseResult values.
const (
	// processing of the command line can continue. if sub-modes were added
	// then the selected mode can be retrieved with Mode()
	ParseContinue ParseResult = iota

	// help was requested and has been written to Output
	ParseHelp

	// the arguments could not be parsed. the error is returned alongside
	ParseError
)

// Parse the current layer of arguments. Usage:
//
//	switch p, err := md.Parse(); p {
//	case modalflag.ParseHelp:
//		return nil
//	case modalflag.ParseError:
//		return err
//	}
//
// Help messages are written to the Output field automatically.
func (md *Modes) Parse() (ParseResult, error) {
	md.parsed = true

	u := &usage{}
	md.flags.SetOutput(u)

	err := md.flags.Parse(md.args[md.argsIdx:])
	if err == flag.ErrHelp {
		u.write(md.Output, md.Path(), md.subModes, md.additionalHelp)
		return ParseHelp, nil
	}

	if len(md.subModes) == 0 {
		if err != nil {
			return ParseError, err
		}
		return ParseContinue, nil
	}

	// unrecognised flags select the default mode. the flags will be parsed
	// again by the default mode
	mode := md.subModes[0]
	if err == nil {
		arg := strings.ToUpper(md.flags.Arg(0))
		for _, m := range md.subModes {
			if m == arg {
				mode = m
				md.argsIdx++
				break // for loop
			}
		}
	}
	md.path = append(md.path, mode)

	return ParseContinue, nil
}

// RemainingArgs returns the arguments that are neither flags nor a sub-mode.
func (md *Modes) RemainingArgs() []string {
	return md.flags.Args()
}

// GetArg returns the numbered argument that is neither a flag nor a sub-mode.
func (md *Modes) GetArg(i int) string {
	return md.flags.Arg(i)
}

// AddSubModes for the next call to Parse(). The first sub-mode is the
// default. Sub-modes are not case sensitive.
func (md *Modes) AddSubModes(submodes ...string) {
	for _, m := range submodes {
		md.subModes = append(md.subModes, strings.ToUpper(m))
	}
}

// AddDefaultSubMode adds a sub-mode to the front of the list.
func (md *Modes) AddDefaultSubMode(defSubMode string) {
	md.subModes = append([]string{strings.ToUpper(defSubMode)}, md.subModes...)
}

// AddBool flag for next call to Parse().
func (md *Modes) AddBool(name string, value bool, usage string) *bool {
	return md.flags.Bool(name, value, usage)
}

// AddDuration flag for next call to Parse().
func (md *Modes) AddDuration(name string, value time.Duration, usage string) *time.Duration {
	return md.flags.Duration(name, value, usage)
}

// AddInt flag for next call to Parse().
func (md *Modes) AddInt(name string, value int, usage string) *int {
	return md.flags.Int(name, value, usage)
}

// AddString flag for next call to Parse().
func (md *Modes) AddString(name string, value string, usage string) *string {
	return md.flags.String(name, value, usage)
}

// AddUint64 flag for next call to Parse().
func (md *Modes) AddUint64(name string, value uint64, usage string) *uint64 {
	return md.flags.Uint64(name, value, usage)
}

// AddAddress adds a flag for a 16 bit address for the next call to Parse().
// See the Address type for accepted formats.
func (md *Modes) AddAddress(name string, usage string) *Address {
	a := &Address{}
	md.flags.Var(a, name, usage)
	return a
}

// Visit calls fn for every flag that has been set, in lexicographical order.
func (md *Modes) Visit(fn func(flag string)) {
	md.flags.Visit(func(f *flag.Flag) {
		fn(f.Name)
	})
}
