// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
// Copyright 2024 Institute of the Czech National Corpus,
//                Faculty of Arts, Charles University
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package analysis

import (
	"weblogstat/clustering"

	"github.com/rs/zerolog/log"
)

// Traffic contains optional statistics derived from hour buckets.
// A nil field means the respective analysis has not been configured.
type Traffic struct {
	Peaks       *PeakHours
	BusyPeriods []clustering.Period
}

// AnalyzeTraffic runs configured hour-based analyses. In case
// no analysis is configured, nil is returned.
func AnalyzeTraffic(res *Result, peakConf *PeakHoursConf, busyConf *clustering.Conf) *Traffic {
	if peakConf == nil && busyConf == nil {
		return nil
	}
	ans := &Traffic{}
	if peakConf != nil {
		ans.Peaks = FindPeakHours(res, peakConf)
	}
	if busyConf != nil {
		ans.BusyPeriods = clustering.FindPeriods(busyConf, res.Hours)
		log.Debug().
			Int("minDensity", busyConf.MinDensity).
			Float64("epsilon", busyConf.Epsilon).
			Int("foundPeriods", len(ans.BusyPeriods)).
			Msg("hour clustering done")
	}
	return ans
}
