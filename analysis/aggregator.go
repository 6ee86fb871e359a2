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
	"encoding/csv"
	"errors"
	"io"
	"strings"

	"weblogstat/ctype"
	"weblogstat/record"

	"github.com/rs/zerolog/log"
)

// RecordFilter decides whether a parsed record should be
// aggregated at all.
type RecordFilter interface {
	Accept(rec *record.LogRecord) bool
}

// lineReader feeds CSV reader with lines one by one. Lines
// without a terminating newline get one so they cannot merge.
type lineReader struct {
	lines []string
	curr  int
	buf   string
}

func (lr *lineReader) Read(p []byte) (int, error) {
	for lr.buf == "" {
		if lr.curr >= len(lr.lines) {
			return 0, io.EOF
		}
		lr.buf = lr.lines[lr.curr]
		lr.curr++
		if !strings.HasSuffix(lr.buf, "\n") {
			lr.buf += "\n"
		}
	}
	n := copy(p, lr.buf)
	lr.buf = lr.buf[n:]
	return n, nil
}

// Aggregator counts image requests, browsers and hours
// of web log records in a single pass.
type Aggregator struct {
	filter RecordFilter
}

func (agg *Aggregator) procRecord(rec *record.LogRecord, ans *Result) {
	if rec.IsImageRequest() {
		ans.Images++
	}
	if browser, ok := ctype.DetectBrowser(rec.UserAgent); ok {
		ans.Browsers[browser]++
	}
	// records with invalid datetime still count to the total
	if hour, ok := rec.Hour(); ok {
		ans.Hours[hour]++
	}
	ans.Total++
}

// Process reads lines as CSV records in the order they are provided
// and returns aggregated counts. Lines which cannot be parsed or
// contain less than three fields are skipped. A quoting error skips
// just the affected record. The method never fails.
func (agg *Aggregator) Process(lines []string) *Result {
	ans := NewResult()
	rd := csv.NewReader(&lineReader{lines: lines})
	rd.FieldsPerRecord = -1
	rd.ReuseRecord = true
	for {
		fields, err := rd.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			var perr *csv.ParseError
			if errors.As(err, &perr) {
				log.Debug().Err(err).Int("line", perr.Line).Msg("skipping unparseable line")
				ans.Skipped++
				continue
			}
			log.Error().Err(err).Msg("failed to read web log, stopping")
			break
		}
		lineNum, _ := rd.FieldPos(0)
		rec, err := record.FromFields(fields, lineNum)
		if err != nil {
			log.Debug().Err(err).Msg("skipping malformed record")
			ans.Skipped++
			continue
		}
		if agg.filter != nil && !agg.filter.Accept(rec) {
			ans.Skipped++
			continue
		}
		agg.procRecord(rec, ans)
	}
	log.Debug().
		Int("total", ans.Total).
		Int("images", ans.Images).
		Int("skipped", ans.Skipped).
		Msg("web log aggregation done")
	return ans
}

// NewAggregator creates an aggregator. The filter is optional (nil).
func NewAggregator(filter RecordFilter) *Aggregator {
	return &Aggregator{filter: filter}
}
