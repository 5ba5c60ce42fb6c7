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

package disassembly

import (
	"fmt"
	"io"
	"strings"
)

// the maximum number of data bytes shown on a single line
const dataPerLine = 8

// WriteAttr controls what is printed by the Write*() functions.
type WriteAttr struct {
	ByteCode bool
}

// Write the entire disassembly to io.Writer. Blessed entries are written as
// instructions and the bytes in between as data.
func (dsm *Disassembly) Write(output io.Writer, attr WriteAttr) error {
	var data []uint8
	var dataAddress uint16

	flush := func() error {
		if len(data) == 0 {
			return nil
		}
		err := dsm.writeData(output, attr, dataAddress, data)
		data = data[:0]
		return err
	}

	for i := 0; i < len(dsm.entries); {
		e := dsm.entries[i]

		if e.Level == EntryLevelBlessed {
			if err := flush(); err != nil {
				return err
			}
			if err := dsm.WriteLine(output, attr, e); err != nil {
				return err
			}
			i += e.Result.Defn.Bytes
			continue
		}

		if len(data) == 0 {
			dataAddress = e.Result.Address
		}
		data = append(data, e.bytecode[0])
		if len(data) == dataPerLine {
			if err := flush(); err != nil {
				return err
			}
		}
		i++
	}

	return flush()
}

// WriteLine writes a single entry to io.Writer.
func (dsm *Disassembly) WriteLine(output io.Writer, attr WriteAttr, e *Entry) error {
	if e.Label != "" {
		if _, err := fmt.Fprintf(output, "%s:\n", e.Label); err != nil {
			return err
		}
	}

	if attr.ByteCode {
		if _, err := fmt.Fprintf(output, "%-9s ", e.Bytecode()); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintln(output, e.String())
	return err
}

func (dsm *Disassembly) writeData(output io.Writer, attr WriteAttr, address uint16, data []uint8) error {
	s := make([]string, len(data))
	for i, b := range data {
		s[i] = fmt.Sprintf("$%02x", b)
	}

	if attr.ByteCode {
		if _, err := fmt.Fprintf(output, "%-9s ", ""); err != nil {
			return err
		}
	}

	_, err := fmt.Fprintf(output, "0x%04x .byte %s\n", address, strings.Join(s, ","))
	return err
}
