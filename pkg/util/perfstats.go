// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package util

import (
	"runtime"
	"time"

	log "github.com/sirupsen/logrus"
)

// PerfStats records the time and heap allocation at a given moment, so that
// the cost of some subsequent operation can be reported.
type PerfStats struct {
	start  time.Time
	allocs uint64
	bytes  uint64
}

// NewPerfStats takes a snapshot of the current time and allocation counters.
func NewPerfStats() *PerfStats {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	return &PerfStats{time.Now(), m.Mallocs, m.TotalAlloc}
}

// Elapsed returns the time since this snapshot was taken.
func (p *PerfStats) Elapsed() time.Duration {
	return time.Since(p.start)
}

// Log reports (at debug level) the time taken and memory allocated since this
// snapshot was taken.
func (p *PerfStats) Log(prefix string) {
	var m runtime.MemStats
	//
	runtime.ReadMemStats(&m)
	//
	log.WithFields(log.Fields{
		"allocs": m.Mallocs - p.allocs,
		"kb":     (m.TotalAlloc - p.bytes) / 1024,
	}).Debugf("%s took %s", prefix, p.Elapsed())
}
