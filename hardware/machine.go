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

package hardware

import (
	"fmt"
	"io"

	"github.com/bradleyjkemp/memviz"
	"github.com/drewwalton19216801/butterfly/hardware/cpu"
	"github.com/drewwalton19216801/butterfly/hardware/memory/bus"
	"github.com/drewwalton19216801/butterfly/hardware/preferences"
)

// DefaultClock is the nominal speed of the CPU in Hz. Peripherals that
// convert CPU cycles to real time use this value.
const DefaultClock = 1000000

// Ticker is implemented by devices that are stepped once for every CPU cycle.
type Ticker interface {
	Tick() error
}

// Machine is the main container for the emulated components.
type Machine struct {
	Prefs *preferences.Preferences

	CPU *cpu.CPU
	Bus *bus.Bus

	tickers []Ticker

	// trace output. instructions are only traced if the Trace preference is
	// set
	trace io.Writer
}

// NewMachine creates a new machine with the devices attached to the bus in
// the order given. The prefs argument can be nil.
//
// The machine is reset before returning.
func NewMachine(prefs *preferences.Preferences, devices ...bus.Device) (*Machine, error) {
	var err error

	m := &Machine{Prefs: prefs}

	m.Bus, err = bus.NewBus(devices...)
	if err != nil {
		return nil, err
	}

	m.CPU = cpu.NewCPU(prefs, m.Bus)

	for _, d := range devices {
		if t, ok := d.(Ticker); ok {
			m.tickers = append(m.tickers, t)
		}
	}

	err = m.Reset()
	if err != nil {
		return nil, err
	}

	return m, nil
}

func (m *Machine) String() string {
	return fmt.Sprintf("%s\n%s", m.CPU, m.Bus)
}

// AddTicker adds a ticker that is not attached to the bus. Devices attached
// with NewMachine() that implement the Ticker interface are added
// automatically.
func (m *Machine) AddTicker(t Ticker) {
	m.tickers = append(m.tickers, t)
}

// SetTrace sets the writer to which traced instructions are written. A nil
// writer disables tracing.
func (m *Machine) SetTrace(w io.Writer) {
	m.trace = w
}

func (m *Machine) tracing() bool {
	if m.trace == nil {
		return false
	}
	return m.Prefs == nil || m.Prefs.Trace.Get().(bool)
}

// Reset all devices on the bus and then the CPU.
func (m *Machine) Reset() error {
	m.Bus.Reset()
	return m.CPU.Reset()
}

// Graph writes a Graphviz representation of the CPU registers and the result
// of the last instruction to w.
func (m *Machine) Graph(w io.Writer) {
	mc := m.CPU
	memviz.Map(w, &mc.PC, &mc.A, &mc.X, &mc.Y, &mc.SP, &mc.Status, &mc.LastResult)
}
