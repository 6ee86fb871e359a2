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

package common

import (
	"bytes"
	"fmt"
	"net/http"
	"os"
	"strings"
	"time"
)

// DefaultHTTPTimeout is used whenever a caller passes a non-positive timeout
const DefaultHTTPTimeout = 30 * time.Second

func loadHTTPResource(url string, timeout time.Duration) ([]byte, error) {
	client := &http.Client{Timeout: timeout}
	resp, err := client.Get(url)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, fmt.Errorf("resource loading error: %s (url: %s)", resp.Status, url)
	}
	buf := new(bytes.Buffer)
	_, err = buf.ReadFrom(resp.Body)
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// IsHTTPResource tests whether the uri should be fetched via http(s)
func IsHTTPResource(uri string) bool {
	return strings.HasPrefix(uri, "http://") || strings.HasPrefix(uri, "https://")
}

// LocalPath returns a file system path for a non-http uri.
// Allowed forms are file:/localhost/..., file:///... and plain
// (absolute or relative) fs paths.
func LocalPath(uri string) string {
	if strings.HasPrefix(uri, "file:/localhost/") {
		return uri[len("file:/localhost/")-1:]

	} else if strings.HasPrefix(uri, "file:///") {
		return uri[len("file:///")-1:]
	}
	return uri
}

// LoadSupportedResource loads raw byte data of a web log, a configuration
// or a script.
// Allowed formats are:
// 1) http://..., https://...
// 2) file:/localhost/..., file:///...
// 3) /abs/fs/path, rel/fs/path
func LoadSupportedResource(uri string, timeout time.Duration) ([]byte, error) {
	if uri == "" {
		return nil, fmt.Errorf("no resource (http, file) specified")
	}
	if timeout <= 0 {
		timeout = DefaultHTTPTimeout
	}
	var rawData []byte
	var err error
	if IsHTTPResource(uri) {
		rawData, err = loadHTTPResource(uri, timeout)

	} else {
		rawData, err = os.ReadFile(LocalPath(uri))
	}
	if err != nil {
		return nil, err
	}
	return rawData, nil
}
