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

// Package ctype detects client (browser) type based on
// a user agent string.
package ctype

import (
	"regexp"
)

const (
	BrowserFirefox          = "Firefox"
	BrowserSafari           = "Safari"
	BrowserChrome           = "Chrome"
	BrowserInternetExplorer = "Internet Explorer"
)

// BrowserInfo is a named user agent matching rule
type BrowserInfo struct {
	Title string
	Match *regexp.Regexp
}

// Matches tests whether the rule can be found anywhere
// in the user agent string
func (bi BrowserInfo) Matches(userAgent string) bool {
	return bi.Match.MatchString(userAgent)
}

// browserDefs are evaluated in the declared order and the first
// matching definition wins. Many Chrome user agents contain also
// "Safari" so the order matters.
var browserDefs = []BrowserInfo{
	{Title: BrowserFirefox, Match: regexp.MustCompile(`(?i)Firefox`)},
	{Title: BrowserSafari, Match: regexp.MustCompile(`(?i)Safari`)},
	{Title: BrowserChrome, Match: regexp.MustCompile(`(?i)Chrome`)},
	{Title: BrowserInternetExplorer, Match: regexp.MustCompile(`(?i)MSIE|Trident`)},
}

// Browsers returns titles of all the detectable browsers
// in their matching priority order.
func Browsers() []string {
	ans := make([]string, len(browserDefs))
	for i, bd := range browserDefs {
		ans[i] = bd.Title
	}
	return ans
}

// Priority returns position of a browser in the matching order.
// For unknown titles, -1 is returned.
func Priority(title string) int {
	for i, bd := range browserDefs {
		if bd.Title == title {
			return i
		}
	}
	return -1
}

// DetectBrowser returns a title of the first browser definition
// matching the user agent. If nothing matches, false is returned.
func DetectBrowser(userAgent string) (string, bool) {
	for _, bd := range browserDefs {
		if bd.Matches(userAgent) {
			return bd.Title, true
		}
	}
	return "", false
}
