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

// Package load provides raw lines of a web log.
package load

import (
	"fmt"
	"strings"
	"time"
	"unicode/utf8"

	"weblogstat/common"

	"github.com/rs/zerolog/log"
)

// SplitLines splits text into lines. Line terminators are kept
// so quoted multi-line CSV fields can be reconstructed.
func SplitLines(text string) []string {
	if text == "" {
		return []string{}
	}
	ans := strings.SplitAfter(text, "\n")
	if ans[len(ans)-1] == "" {
		ans = ans[:len(ans)-1]
	}
	return ans
}

// ReadLines downloads (or reads from a local file) a web log
// and returns its lines. The content must be a valid UTF-8 text.
func ReadLines(uri string, timeout time.Duration) ([]string, error) {
	t0 := time.Now()
	rawData, err := common.LoadSupportedResource(uri, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to load web log %s: %w", uri, err)
	}
	if !utf8.Valid(rawData) {
		return nil, fmt.Errorf("failed to load web log %s: content is not a valid UTF-8 text", uri)
	}
	ans := SplitLines(string(rawData))
	log.Info().
		Str("source", uri).
		Int("numBytes", len(rawData)).
		Int("numLines", len(ans)).
		Dur("took", time.Since(t0)).
		Msg("loaded web log")
	return ans, nil
}
