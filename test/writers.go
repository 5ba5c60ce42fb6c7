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

package test

import (
	"fmt"
)

// CompareWriter is an implementation of io.Writer. It should be used to
// capture output and to compare with predefined strings.
type CompareWriter struct {
	buffer []byte
}

// Write implements the io.Writer interface.
func (w *CompareWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	return len(p), nil
}

// Clear empties the buffer.
func (w *CompareWriter) Clear() {
	w.buffer = w.buffer[:0]
}

// Compare buffered output with predefined string.
func (w *CompareWriter) Compare(s string) bool {
	return s == string(w.buffer)
}

func (w *CompareWriter) String() string {
	return string(w.buffer)
}

// RingWriter is an implementation of io.Writer that keeps only the most
// recent output, up to a fixed size. Useful for checking the end of a long
// trace.
type RingWriter struct {
	buffer []byte
	size   int
}

// NewRingWriter is the preferred method of initialisation for the RingWriter
// type.
func NewRingWriter(size int) (*RingWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for RingWriter (%d)", size)
	}
	return &RingWriter{
		size:   size,
		buffer: make([]byte, 0, size*2),
	}, nil
}

// Write implements the io.Writer interface.
func (w *RingWriter) Write(p []byte) (int, error) {
	w.buffer = append(w.buffer, p...)
	if over := len(w.buffer) - w.size; over > 0 {
		w.buffer = append(w.buffer[:0], w.buffer[over:]...)
	}
	return len(p), nil
}

// Reset empties the buffer.
func (w *RingWriter) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *RingWriter) String() string {
	return string(w.buffer)
}

// CappedWriter is an implementation of io.Writer that keeps only the first
// output, up to a fixed size. Output beyond the cap is accepted and discarded
// so that writers further up the chain do not see an error.
type CappedWriter struct {
	buffer []byte
	size   int
}

// NewCappedWriter is the preferred method of initialisation for the
// CappedWriter type.
func NewCappedWriter(size int) (*CappedWriter, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid size for CappedWriter (%d)", size)
	}
	return &CappedWriter{
		size:   size,
		buffer: make([]byte, 0, size),
	}, nil
}

// Write implements the io.Writer interface.
func (w *CappedWriter) Write(p []byte) (int, error) {
	if remaining := w.size - len(w.buffer); remaining > 0 {
		w.buffer = append(w.buffer, p[:min(remaining, len(p))]...)
	}
	return len(p), nil
}

// Reset empties the buffer.
func (w *CappedWriter) Reset() {
	w.buffer = w.buffer[:0]
}

func (w *CappedWriter) String() string {
	return string(w.buffer)
}
