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

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/disassembly"
	"github.com/drewwalton19216801/butterfly/hardware"
	"github.com/drewwalton19216801/butterfly/hardware/cpu"
	"github.com/drewwalton19216801/butterfly/hardware/memory"
	"github.com/drewwalton19216801/butterfly/hardware/preferences"
	"github.com/drewwalton19216801/butterfly/logger"
	"github.com/drewwalton19216801/butterfly/modalflag"
	"github.com/drewwalton19216801/butterfly/prefs"
	"github.com/drewwalton19216801/butterfly/script"
	"github.com/drewwalton19216801/butterfly/statsview"
	"github.com/drewwalton19216801/butterfly/version"
)

// exit values
const (
	exitOK         = 0
	exitParseError = 10
	exitModeError  = 20
)

func main() {
	// ctrl-c ends the emulation at the next opportunity
	quit := make(chan bool, 1)
	intChan := make(chan os.Signal, 1)
	signal.Notify(intChan, os.Interrupt)
	go func() {
		<-intChan
		quit <- true
	}()

	os.Exit(launch(os.Args[1:], os.Stdout, quit))
}

// launch the program with the command line arguments. returns the exit value
func launch(args []string, out io.Writer, quit <-chan bool) int {
	md := &modalflag.Modes{Output: out}
	md.NewArgs(args)
	md.AddSubModes("RUN", "SCRIPT", "DISASM", "VERSION")

	p, err := md.Parse()
	switch p {
	case modalflag.ParseHelp:
		return exitOK
	case modalflag.ParseError:
		fmt.Fprintf(out, "* error: %v\n", err)
		return exitParseError
	}

	switch md.Mode() {
	case "RUN":
		err = run(md, out, quit)
	case "SCRIPT":
		err = runScript(md, out)
	case "DISASM":
		err = disasm(md, out)
	case "VERSION":
		err = showVersion(md, out)
	}

	if err != nil {
		fmt.Fprintf(out, "* error in %s mode: %v\n", md, err)
		return exitModeError
	}

	return exitOK
}

// the command line flags common to the RUN and SCRIPT modes
type machineFlags struct {
	origin    *modalflag.Address
	strict    *bool
	trace     *bool
	random    *bool
	console   *bool
	speaker   *string
	tape      *string
	memviz    *string
	statsview *bool
	log       *bool
	prefs     *string
}

func addMachineFlags(md *modalflag.Modes) *machineFlags {
	return &machineFlags{
		origin:    md.AddAddress("load", "load address of the ROM (default: ROM ends at 0xffff)"),
		strict:    md.AddBool("strict", false, "skip undocumented opcodes"),
		trace:     md.AddBool("trace", false, "trace every instruction to stdout"),
		random:    md.AddBool("random", false, "randomise RAM on reset"),
		console:   md.AddBool("console", false, "attach the console device to the terminal"),
		speaker:   md.AddString("speaker", "", "record the speaker to a WAV file (a directory gives a unique filename)"),
		tape:      md.AddString("tape", "", "load tape from a WAV or MP3 file"),
		memviz:    md.AddString("memviz", "", "write Graphviz dump of the CPU state on exit (a directory gives a unique filename)"),
		statsview: md.AddBool("statsview", false, fmt.Sprintf("run stats server (available: %v)", statsview.Available())),
		log:       md.AddBool("log", false, "echo log to stdout"),
		prefs:     md.AddString("prefs", "", "preference values to use for this session (key::value; ...)"),
	}
}

// preferences for the session. command line values override the values in
// the preferences file
func (f *machineFlags) preferences(pth string) (*preferences.Preferences, error) {
	if *f.log {
		logger.SetEcho(os.Stdout)
	} else {
		logger.SetEcho(nil)
	}

	if *f.prefs != "" {
		prefs.PushCommandLineStack(*f.prefs)
	}

	var p *preferences.Preferences
	var err error
	if pth == "" {
		p, err = preferences.NewPreferences()
	} else {
		p, err = preferences.NewPreferencesFromFile(pth)
	}
	if *f.prefs != "" {
		if unused := prefs.PopCommandLineStack(); unused != "" {
			logger.Logf(logger.Allow, "butterfly", "unused preferences: %s", unused)
		}
	}
	if err != nil {
		return nil, err
	}

	if *f.strict {
		if err := p.IllegalOpcodes.Set(false); err != nil {
			return nil, err
		}
	}
	if *f.trace {
		if err := p.Trace.Set(true); err != nil {
			return nil, err
		}
	}
	if *f.random {
		if err := p.RandomState.Set(true); err != nil {
			return nil, err
		}
	}

	return p, nil
}

func run(md *modalflag.Modes, out io.Writer, quit <-chan bool) error {
	md.NewMode()

	flags := addMachineFlags(md)
	ticks := md.AddInt("ticks", 0, "number of clock ticks to run for (0 runs until halted)")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prf, err := flags.preferences("")
	if err != nil {
		return err
	}

	ses, err := newSession(flags, prf, md.GetArg(0), out)
	if err != nil {
		return err
	}

	if *flags.statsview {
		launchStatsview(out)
	}

	// the quit channel is only checked occasionally
	var brake int
	continueCheck := func() (bool, error) {
		brake++
		if brake < hardware.PerformanceBrake {
			return true, nil
		}
		brake = 0
		select {
		case <-quit:
			return false, nil
		default:
		}
		return true, nil
	}

	err = ses.m.Run(*ticks, continueCheck)
	endErr := ses.end()

	if curated.Is(err, cpu.Halted) {
		fmt.Fprintf(out, "%v\n", err)
		err = nil
	}
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "%d cycles\n", ses.m.CPU.TotalCycles)

	return endErr
}

func runScript(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	flags := addMachineFlags(md)

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	var rom string
	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("script file required for %s mode", md)
	case 1:
	case 2:
		rom = md.GetArg(1)
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	prf, err := flags.preferences("")
	if err != nil {
		return err
	}

	ses, err := newSession(flags, prf, rom, out)
	if err != nil {
		return err
	}

	if *flags.statsview {
		launchStatsview(out)
	}

	scr := script.NewScript(ses.m, out)
	defer scr.Close()

	err = scr.RunFile(md.GetArg(0))
	endErr := ses.end()
	if err != nil {
		return err
	}

	return endErr
}

func disasm(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	origin := md.AddAddress("load", "load address of the ROM (default: ROM ends at 0xffff)")
	entry := md.AddAddress("entry", "additional entry point for the disassembly")
	bytecode := md.AddBool("bytecode", false, "include bytecode in disassembly")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	switch len(md.RemainingArgs()) {
	case 0:
		return curated.Errorf("ROM file required for %s mode", md)
	case 1:
	default:
		return curated.Errorf("too many arguments for %s mode", md)
	}

	rom, err := memory.LoadROM(md.GetArg(0), origin.Get())
	if err != nil {
		return err
	}

	var entryPoints []uint16
	if e := entry.Get(); e != nil {
		entryPoints = append(entryPoints, *e)
	}

	dsm, err := disassembly.FromMemory(rom, entryPoints...)
	if err != nil {
		return err
	}

	return dsm.Write(out, disassembly.WriteAttr{ByteCode: *bytecode})
}

func showVersion(md *modalflag.Modes, out io.Writer) error {
	md.NewMode()

	revision := md.AddBool("revision", false, "display revision information")

	p, err := md.Parse()
	if err != nil || p != modalflag.ParseContinue {
		return err
	}

	if *revision {
		v, r, _ := version.Version()
		fmt.Fprintf(out, "%s\n%s\n", v, r)
		return nil
	}

	fmt.Fprintln(out, version.String())
	return nil
}

func launchStatsview(out io.Writer) {
	if !statsview.Available() {
		fmt.Fprintln(out, "* statsview not available in this build")
		return
	}
	fmt.Fprintf(out, "stats server available at %s\n", statsview.Launch())
}
