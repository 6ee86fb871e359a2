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

package clustering

import (
	"errors"
	"math"
	"sort"
	"strconv"

	"github.com/kelindar/dbscan"
)

// Conf configures DBSCAN clustering of active hours.
// The distance of two hours is the absolute difference
// of their values (i.e. 23 and 0 are not neighbours).
type Conf struct {
	MinDensity int
	Epsilon    float64
}

func (conf *Conf) Validate() error {
	if conf.Epsilon <= 0 {
		return errors.New("failed to validate busy periods conf: epsilon must be > 0")
	}
	if conf.MinDensity <= 0 {
		return errors.New("failed to validate busy periods conf: minDensity must be > 0")
	}
	return nil
}

// Period is a continuous range of active hours
type Period struct {
	FirstHour int
	LastHour  int
	Hits      int
}

type clusterableHour struct {
	hour  int
	count int
}

func (ch clusterableHour) DistanceTo(other dbscan.Point) float64 {
	return math.Abs(float64(other.(clusterableHour).hour - ch.hour))
}

func (ch clusterableHour) Name() string {
	return strconv.Itoa(ch.hour)
}

func wrapHours(hours map[int]int) []dbscan.Point {
	keys := make([]int, 0, len(hours))
	for h, cnt := range hours {
		if cnt > 0 {
			keys = append(keys, h)
		}
	}
	sort.Ints(keys)
	ans := make([]dbscan.Point, len(keys))
	for i, h := range keys {
		ans[i] = clusterableHour{hour: h, count: hours[h]}
	}
	return ans
}

// FindPeriods groups active hours (count > 0) into periods.
// Each hour is reported in at most one period and the periods
// are sorted by their first hour.
func FindPeriods(conf *Conf, hours map[int]int) []Period {
	points := wrapHours(hours)
	ans := make([]Period, 0, len(points))
	if len(points) == 0 {
		return ans
	}
	clusters := dbscan.Cluster(conf.MinDensity, conf.Epsilon, points...)
	assigned := make(map[int]bool)
	for _, cl := range clusters {
		period := Period{FirstHour: math.MaxInt, LastHour: -1}
		for _, p := range cl {
			ch := p.(clusterableHour)
			if assigned[ch.hour] {
				continue
			}
			assigned[ch.hour] = true
			period.Hits += ch.count
			if ch.hour < period.FirstHour {
				period.FirstHour = ch.hour
			}
			if ch.hour > period.LastHour {
				period.LastHour = ch.hour
			}
		}
		if period.LastHour >= 0 {
			ans = append(ans, period)
		}
	}
	sort.Slice(ans, func(i, j int) bool {
		return ans[i].FirstHour < ans[j].FirstHour
	})
	return ans
}
