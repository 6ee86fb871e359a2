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
	"testing"

	"weblogstat/ctype"

	"github.com/stretchr/testify/assert"
)

func TestImageShare(t *testing.T) {
	res := NewResult()
	assert.Equal(t, 0.0, res.ImageShare())
	res.Total = 8
	res.Images = 2
	assert.InDelta(t, 25.0, res.ImageShare(), 0.0001)
}

func TestMostPopularBrowser(t *testing.T) {
	res := NewResult()
	_, ok := res.MostPopularBrowser()
	assert.False(t, ok)

	res.Browsers[ctype.BrowserChrome] = 5
	res.Browsers[ctype.BrowserFirefox] = 2
	b, ok := res.MostPopularBrowser()
	assert.True(t, ok)
	assert.Equal(t, ctype.BrowserChrome, b)
}

func TestMostPopularBrowserTie(t *testing.T) {
	res := NewResult()
	res.Browsers[ctype.BrowserInternetExplorer] = 3
	res.Browsers[ctype.BrowserChrome] = 3
	res.Browsers[ctype.BrowserSafari] = 1
	b, ok := res.MostPopularBrowser()
	assert.True(t, ok)
	assert.Equal(t, ctype.BrowserChrome, b)
}

func TestRankedHours(t *testing.T) {
	res := NewResult()
	res.Hours[3] = 1
	res.Hours[10] = 7
	res.Hours[23] = 4
	res.Hours[5] = 4
	res.Hours[6] = 0
	assert.Equal(
		t,
		[]HourCount{{10, 7}, {5, 4}, {23, 4}, {3, 1}},
		res.RankedHours(),
	)
	assert.Empty(t, NewResult().RankedHours())
}
