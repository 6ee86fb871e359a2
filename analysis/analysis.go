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
	"errors"
	"sort"

	"github.com/czcorpus/cnc-gokit/collections"
	"github.com/czcorpus/cnc-gokit/maths"
	"github.com/rs/zerolog/log"
)

type PeakHoursConf struct {
	// OutlierCoeff specifies how far from the Q3 must an hour count be
	// to be considered a peak (the formula is `Q3 + outlierCoeff * IQR`)
	OutlierCoeff float64

	// MinFreq specifies minimum number of requests per hour
	// to be reported as a peak. With small traffic, even normal
	// hours may be evaluated as outliers.
	MinFreq int
}

func (conf *PeakHoursConf) Validate() error {
	if conf.OutlierCoeff < 0 {
		return errors.New("failed to validate peak hours conf: outlierCoeff must be >= 0")
	}
	if conf.MinFreq < 0 {
		return errors.New("failed to validate peak hours conf: minFreq must be >= 0")
	}
	return nil
}

type sitemsWrapper struct {
	data collections.BinTree[*hourFreq]
}

func (w *sitemsWrapper) Get(idx int) maths.FreqInfo {
	return w.data.Get(idx)
}

func (w *sitemsWrapper) Len() int {
	return w.data.Len()
}

type hourFreq struct {
	Hour  int
	Count int
}

// Freq is implemented to satisfy cnc-gokit utils
func (hf *hourFreq) Freq() int {
	return hf.Count
}

// Compare orders by count. Equal counts are ordered by hour
// so no two buckets are equal.
func (hf *hourFreq) Compare(other collections.Comparable) int {
	o := other.(*hourFreq)
	if hf.Count > o.Count {
		return 1

	} else if hf.Count < o.Count {
		return -1
	}
	if hf.Hour > o.Hour {
		return 1

	} else if hf.Hour < o.Hour {
		return -1
	}
	return 0
}

// PeakHours describes hours with unusually high traffic
type PeakHours struct {
	Threshold int
	Hours     []HourCount
}

// FindPeakHours searches for outlier hour buckets. In case
// there is not enough data for quartiles, an empty result
// is returned.
func FindPeakHours(res *Result, conf *PeakHoursConf) *PeakHours {
	ans := &PeakHours{Hours: []HourCount{}}
	sortedItems := collections.BinTree[*hourFreq]{}
	for h, cnt := range res.Hours {
		if cnt > 0 {
			sortedItems.Add(&hourFreq{Hour: h, Count: cnt})
		}
	}
	if sortedItems.Len() == 0 {
		return ans
	}
	qrt, err := maths.GetQuartiles[maths.FreqInfo](&sitemsWrapper{sortedItems})
	if err == maths.ErrTooSmallDataset {
		log.Debug().Int("numHours", sortedItems.Len()).Msg("too few hours for peak detection")
		return ans

	} else if err != nil {
		log.Error().Err(err).Msg("failed to calculate hour quartiles")
		return ans
	}
	threshold := maths.Max(
		conf.MinFreq,
		int(float64(qrt.Q3)+conf.OutlierCoeff*float64(qrt.IQR())),
	)
	ans.Threshold = threshold
	sortedItems.ForEach(func(i int, v *hourFreq) bool {
		if v.Count > threshold {
			ans.Hours = append(ans.Hours, HourCount{Hour: v.Hour, Count: v.Count})
		}
		return true
	})
	sort.SliceStable(ans.Hours, func(i, j int) bool {
		return ans.Hours[i].Hour < ans.Hours[j].Hour
	})
	if len(ans.Hours) > 0 {
		log.Info().
			Int("threshold", threshold).
			Int("numPeaks", len(ans.Hours)).
			Msg("found peak hours")
	}
	return ans
}
