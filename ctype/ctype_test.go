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

package ctype

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDetectFirefox(t *testing.T) {
	b, ok := DetectBrowser("Mozilla/5.0 (X11; Ubuntu; Linux x86_64; rv:88.0) Gecko/20100101 Firefox/88.0")
	assert.True(t, ok)
	assert.Equal(t, BrowserFirefox, b)
}

func TestDetectIsCaseInsensitive(t *testing.T) {
	b, ok := DetectBrowser("some FIREFOX build")
	assert.True(t, ok)
	assert.Equal(t, BrowserFirefox, b)

	b, ok = DetectBrowser("mozilla/4.0 (compatible; msie 8.0)")
	assert.True(t, ok)
	assert.Equal(t, BrowserInternetExplorer, b)
}

// TestSafariBeforeChrome tests that a Chrome user agent (which
// always mentions Safari) is classified as Safari because of
// the rule order.
func TestSafariBeforeChrome(t *testing.T) {
	b, ok := DetectBrowser("Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/90.0.4430.212 Safari/537.36")
	assert.True(t, ok)
	assert.Equal(t, BrowserSafari, b)
}

func TestDetectChrome(t *testing.T) {
	b, ok := DetectBrowser("Mozilla Chrome/90")
	assert.True(t, ok)
	assert.Equal(t, BrowserChrome, b)
}

func TestDetectInternetExplorer(t *testing.T) {
	b, ok := DetectBrowser("Mozilla/5.0 (Windows NT 6.1; Trident/7.0; rv:11.0) like Gecko")
	assert.True(t, ok)
	assert.Equal(t, BrowserInternetExplorer, b)
}

func TestDetectUnknown(t *testing.T) {
	b, ok := DetectBrowser("curl/7.68.0")
	assert.False(t, ok)
	assert.Equal(t, "", b)

	_, ok = DetectBrowser("")
	assert.False(t, ok)
}

func TestBrowsersOrder(t *testing.T) {
	assert.Equal(
		t,
		[]string{BrowserFirefox, BrowserSafari, BrowserChrome, BrowserInternetExplorer},
		Browsers(),
	)
	assert.Equal(t, 0, Priority(BrowserFirefox))
	assert.Equal(t, 3, Priority(BrowserInternetExplorer))
	assert.Equal(t, -1, Priority("Opera"))
}
