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

//go:build statsview

package statsview

import (
	"fmt"

	"github.com/drewwalton19216801/butterfly/logger"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
)

// Address of the statistics server.
const Address = "localhost:12650"

const path = "/debug/statsview"

// Launch the statistics server in a new goroutine. Returns the URL of the
// graphs.
func Launch() string {
	viewer.SetConfiguration(viewer.WithAddr(Address))
	mgr := statsview.New()
	go mgr.Start()

	url := fmt.Sprintf("http://%s%s", Address, path)
	logger.Logf(logger.Allow, "statsview", "server available at %s", url)
	return url
}

// Available returns true if the statistics server can be launched.
func Available() bool {
	return true
}
