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

package main

import (
	"fmt"
	"io"
	"time"

	"weblogstat/analysis"
	"weblogstat/config"
	"weblogstat/load"
	"weblogstat/report"
	"weblogstat/scripting"

	"github.com/czcorpus/cnc-gokit/datetime"
	"github.com/rs/zerolog/log"
)

// runReportAction loads the web log from srcURL, aggregates it
// and writes a report to out. Any returned error means
// no report has been written.
func runReportAction(conf *config.Main, srcURL string, out io.Writer) error {
	t0 := time.Now()
	log.Info().
		Str("source", srcURL).
		Str("started", datetime.FormatDatetime(t0)).
		Msg("running web log report")

	var filter analysis.RecordFilter
	if conf.FilterScript != "" {
		luaFilter, err := scripting.LoadLuaFilter(conf.FilterScript, conf.HTTPTimeout())
		if err != nil {
			return err
		}
		defer func() {
			if luaFilter.NumErrors() > 0 {
				log.Warn().Int("numErrors", luaFilter.NumErrors()).Msg("record filter reported errors")
			}
			luaFilter.Close()
		}()
		filter = luaFilter
	}

	lines, err := load.ReadLines(srcURL, conf.HTTPTimeout())
	if err != nil {
		return err
	}
	res := analysis.NewAggregator(filter).Process(lines)
	log.Info().
		Int("numLines", len(lines)).
		Int("total", res.Total).
		Int("skipped", res.Skipped).
		Dur("took", time.Since(t0)).
		Msg("web log processed")

	traffic := analysis.AnalyzeTraffic(res, conf.PeakHours, conf.BusyPeriods)
	if err := report.Write(out, res, traffic); err != nil {
		return fmt.Errorf("failed to write report: %w", err)
	}
	return nil
}
