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

package script

import (
	"io"
	"strings"

	"github.com/drewwalton19216801/butterfly/curated"
	"github.com/drewwalton19216801/butterfly/hardware"
	"github.com/drewwalton19216801/butterfly/hardware/cpu"
	"github.com/drewwalton19216801/butterfly/logger"
	lua "github.com/yuin/gopher-lua"
)

// Error patterns.
const (
	ScriptError = "script: %v"
)

// Script is a Lua interpreter connected to a Machine.
type Script struct {
	m   *hardware.Machine
	out io.Writer
	L   *lua.LState
}

// NewScript is the preferred method of initialisation for the Script type.
// Output from the print() function is written to out.
func NewScript(m *hardware.Machine, out io.Writer) *Script {
	if out == nil {
		out = io.Discard
	}

	scr := &Script{
		m:   m,
		out: out,
		L:   lua.NewState(),
	}

	for name, fn := range map[string]lua.LGFunction{
		"print":  scr.print,
		"peek":   scr.peek,
		"poke":   scr.poke,
		"read":   scr.read,
		"write":  scr.write,
		"step":   scr.step,
		"tick":   scr.tick,
		"run":    scr.run,
		"reg":    scr.reg,
		"setreg": scr.setreg,
		"irq":    scr.irq,
		"nmi":    scr.nmi,
		"reset":  scr.reset,
		"cycles": scr.cycles,
		"halted": scr.halted,
		"last":   scr.last,
	} {
		scr.L.SetGlobal(name, scr.L.NewFunction(fn))
	}

	return scr
}

// Close the interpreter. The Script cannot be used afterwards.
func (scr *Script) Close() {
	scr.L.Close()
}

// RunFile runs the named Lua file to completion.
func (scr *Script) RunFile(filename string) error {
	logger.Logf(logger.Allow, "script", "running %s", filename)
	if err := scr.L.DoFile(filename); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

// RunString runs the Lua source to completion.
func (scr *Script) RunString(source string) error {
	if err := scr.L.DoString(source); err != nil {
		return curated.Errorf(ScriptError, err)
	}
	return nil
}

func (scr *Script) print(L *lua.LState) int {
	n := L.GetTop()
	s := make([]string, n)
	for i := 1; i <= n; i++ {
		s[i-1] = L.ToStringMeta(L.Get(i)).String()
	}
	io.WriteString(scr.out, strings.Join(s, "\t"))
	io.WriteString(scr.out, "\n")
	return 0
}

func checkAddress(L *lua.LState, n int) uint16 {
	a := L.CheckInt(n)
	if a < 0 || a > 0xffff {
		L.ArgError(n, "address out of range")
	}
	return uint16(a)
}

func checkValue(L *lua.LState, n int) uint8 {
	v := L.CheckInt(n)
	if v < 0 || v > 0xff {
		L.ArgError(n, "value out of range")
	}
	return uint8(v)
}

func (scr *Script) peek(L *lua.LState) int {
	v, err := scr.m.Bus.Peek(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) poke(L *lua.LState) int {
	if err := scr.m.Bus.Poke(checkAddress(L, 1), checkValue(L, 2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) read(L *lua.LState) int {
	v, err := scr.m.Bus.Read(checkAddress(L, 1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) write(L *lua.LState) int {
	if err := scr.m.Bus.Write(checkAddress(L, 1), checkValue(L, 2)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

// pushRunning pushes true if err is nil and false if the CPU has halted. any
// other error is raised
func pushRunning(L *lua.LState, err error) int {
	if err != nil && !curated.Is(err, cpu.Halted) {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LBool(err == nil))
	return 1
}

func (scr *Script) step(L *lua.LState) int {
	return pushRunning(L, scr.m.StepInstruction())
}

func (scr *Script) tick(L *lua.LState) int {
	n := L.OptInt(1, 1)
	for i := 0; i < n; i++ {
		if err := scr.m.Step(); err != nil {
			return pushRunning(L, err)
		}
	}
	return pushRunning(L, nil)
}

func (scr *Script) run(L *lua.LState) int {
	n := L.CheckInt(1)
	if n <= 0 {
		L.ArgError(1, "number of ticks must be positive")
	}
	return pushRunning(L, scr.m.Run(n, nil))
}

func (scr *Script) reg(L *lua.LState) int {
	v, err := scr.m.CPU.Register(L.CheckString(1))
	if err != nil {
		L.RaiseError("%v", err)
	}
	L.Push(lua.LNumber(v))
	return 1
}

func (scr *Script) setreg(L *lua.LState) int {
	v := L.CheckInt(2)
	if v < 0 || v > 0xffff {
		L.ArgError(2, "value out of range")
	}
	if err := scr.m.CPU.SetRegister(L.CheckString(1), uint16(v)); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) irq(L *lua.LState) int {
	scr.m.CPU.IRQ(L.OptBool(1, true))
	return 0
}

func (scr *Script) nmi(L *lua.LState) int {
	scr.m.CPU.NMI()
	return 0
}

func (scr *Script) reset(L *lua.LState) int {
	if err := scr.m.Reset(); err != nil {
		L.RaiseError("%v", err)
	}
	return 0
}

func (scr *Script) cycles(L *lua.LState) int {
	L.Push(lua.LNumber(scr.m.CPU.TotalCycles))
	return 1
}

func (scr *Script) halted(L *lua.LState) int {
	L.Push(lua.LBool(scr.m.CPU.Killed))
	return 1
}

func (scr *Script) last(L *lua.LState) int {
	L.Push(lua.LString(scr.m.CPU.LastResult.String()))
	return 1
}
