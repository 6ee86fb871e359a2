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

// Package report renders aggregated web log statistics
// as a human readable text.
package report

import (
	"bufio"
	"fmt"
	"io"

	"weblogstat/analysis"
)

const (
	msgNoImages   = "No image requests found."
	msgNoBrowsers = "No browser information found."
)

func writeTraffic(w io.Writer, traffic *analysis.Traffic) {
	if traffic.Peaks != nil {
		fmt.Fprintln(w, "\nPeak hours:")
		if len(traffic.Peaks.Hours) == 0 {
			fmt.Fprintln(w, "No peak hours found.")
		}
		for _, item := range traffic.Peaks.Hours {
			fmt.Fprintf(w, "Hour %02d has %d hits (threshold %d).\n", item.Hour, item.Count, traffic.Peaks.Threshold)
		}
	}
	if traffic.BusyPeriods != nil {
		fmt.Fprintln(w, "\nBusy periods:")
		if len(traffic.BusyPeriods) == 0 {
			fmt.Fprintln(w, "No busy periods found.")
		}
		for _, p := range traffic.BusyPeriods {
			fmt.Fprintf(w, "%02d:00-%02d:59 with %d hits.\n", p.FirstHour, p.LastHour, p.Hits)
		}
	}
}

// Write renders the result. The traffic argument is optional (nil).
func Write(w io.Writer, res *analysis.Result, traffic *analysis.Traffic) error {
	bw := bufio.NewWriter(w)
	if res.Total > 0 {
		fmt.Fprintf(bw, "Image requests account for %.1f%% of all requests\n", res.ImageShare())

	} else {
		fmt.Fprintln(bw, msgNoImages)
	}

	if browser, ok := res.MostPopularBrowser(); ok {
		fmt.Fprintf(bw, "The most popular browser is: %s\n", browser)

	} else {
		fmt.Fprintln(bw, msgNoBrowsers)
	}

	fmt.Fprintln(bw, "\nHits per hour:")
	for _, item := range res.RankedHours() {
		fmt.Fprintf(bw, "Hour %02d has %d hits.\n", item.Hour, item.Count)
	}

	if traffic != nil {
		writeTraffic(bw, traffic)
	}
	return bw.Flush()
}
