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
	"sort"

	"weblogstat/ctype"
)

// HourCount is a number of requests within an hour of day
type HourCount struct {
	Hour  int
	Count int
}

// Result is an aggregate of a single pass over a web log.
// Browsers and Hours contain only non-zero buckets.
type Result struct {
	Total    int
	Images   int
	Browsers map[string]int
	Hours    map[int]int

	// Skipped counts lines ignored as malformed or rejected
	// by a record filter. It is not part of the report.
	Skipped int
}

func NewResult() *Result {
	return &Result{
		Browsers: make(map[string]int),
		Hours:    make(map[int]int),
	}
}

// ImageShare returns percentage of image requests. For an empty
// result, zero is returned.
func (r *Result) ImageShare() float64 {
	if r.Total == 0 {
		return 0
	}
	return float64(r.Images) / float64(r.Total) * 100
}

// MostPopularBrowser returns the browser with the highest number
// of requests. Ties are resolved by the browser matching priority
// (Firefox, Safari, Chrome, Internet Explorer).
func (r *Result) MostPopularBrowser() (string, bool) {
	var ans string
	var maxCount int
	for _, b := range ctype.Browsers() {
		if cnt := r.Browsers[b]; cnt > maxCount {
			ans = b
			maxCount = cnt
		}
	}
	return ans, maxCount > 0
}

// RankedHours returns all the hours with at least one request
// sorted by number of requests (descending). Hours with the same
// count are sorted by the hour.
func (r *Result) RankedHours() []HourCount {
	ans := make([]HourCount, 0, len(r.Hours))
	for h, cnt := range r.Hours {
		if cnt > 0 {
			ans = append(ans, HourCount{Hour: h, Count: cnt})
		}
	}
	sort.SliceStable(ans, func(i, j int) bool {
		if ans[i].Count == ans[j].Count {
			return ans[i].Hour < ans[j].Hour
		}
		return ans[i].Count > ans[j].Count
	})
	return ans
}
