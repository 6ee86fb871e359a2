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
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLocalPath(t *testing.T) {
	assert.Equal(t, "/var/log/weblog.csv", LocalPath("file:///var/log/weblog.csv"))
	assert.Equal(t, "/var/log/weblog.csv", LocalPath("file:/localhost/var/log/weblog.csv"))
	assert.Equal(t, "data/weblog.csv", LocalPath("data/weblog.csv"))
}

func TestIsHTTPResource(t *testing.T) {
	assert.True(t, IsHTTPResource("http://example.com/weblog.csv"))
	assert.True(t, IsHTTPResource("https://example.com/weblog.csv"))
	assert.False(t, IsHTTPResource("file:///tmp/weblog.csv"))
	assert.False(t, IsHTTPResource("/tmp/weblog.csv"))
}

func TestLoadEmptyURI(t *testing.T) {
	_, err := LoadSupportedResource("", 0)
	assert.Error(t, err)
}

func TestLoadHTTPResource(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "/a.png,01 01 2024 10:15:00,Firefox\n")
	}))
	defer srv.Close()
	data, err := LoadSupportedResource(srv.URL, 0)
	assert.NoError(t, err)
	assert.Equal(t, "/a.png,01 01 2024 10:15:00,Firefox\n", string(data))
}

func TestLoadHTTPResourceBadStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "gone", http.StatusNotFound)
	}))
	defer srv.Close()
	_, err := LoadSupportedResource(srv.URL, 0)
	assert.Error(t, err)
}

func TestLoadFileResource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "weblog.csv")
	assert.NoError(t, os.WriteFile(path, []byte("x,y,z\n"), 0644))

	data, err := LoadSupportedResource(path, 0)
	assert.NoError(t, err)
	assert.Equal(t, "x,y,z\n", string(data))

	data, err = LoadSupportedResource("file://"+path, 0)
	assert.NoError(t, err)
	assert.Equal(t, "x,y,z\n", string(data))
}

func TestLoadMissingFile(t *testing.T) {
	_, err := LoadSupportedResource(filepath.Join(t.TempDir(), "nope.csv"), 0)
	assert.Error(t, err)
}
