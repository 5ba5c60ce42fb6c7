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

// Package statsview provides a HTTP server offering runtime statistics of the
// emulator process. It is built only when the statsview build tag is given:
//
//	go build -tags=statsview .
//
// Without the tag the Launch() function does nothing and Available() returns
// false.
//
// The graphs are provided by github.com/go-echarts/statsview and are
// viewable at the URL returned by Launch(). Standard Go pprof statistics are
// available at /debug/pprof/ on the same address.
package statsview
