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

package config

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"weblogstat/analysis"
	"weblogstat/clustering"
	"weblogstat/common"

	"github.com/czcorpus/cnc-gokit/fs"
	"github.com/rs/zerolog"
)

const (
	DefaultLogLevel        = "info"
	DefaultHTTPTimeoutSecs = 30
)

// Main describes weblogstat's configuration
type Main struct {
	LogPath         string                  `json:"logPath"`
	LogLevel        string                  `json:"logLevel"`
	HTTPTimeoutSecs int                     `json:"httpTimeoutSecs"`
	FilterScript    string                  `json:"filterScript"`
	PeakHours       *analysis.PeakHoursConf `json:"peakHours"`
	BusyPeriods     *clustering.Conf        `json:"busyPeriods"`
}

// HTTPTimeout returns timeout for loading remote resources
func (c *Main) HTTPTimeout() time.Duration {
	return time.Duration(c.HTTPTimeoutSecs) * time.Second
}

// ZerologLevel returns the configured log level; the value
// must be already validated
func (c *Main) ZerologLevel() zerolog.Level {
	lev, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.InfoLevel
	}
	return lev
}

// ApplyDefaults fills in missing values
func (c *Main) ApplyDefaults() {
	if c.LogLevel == "" {
		c.LogLevel = DefaultLogLevel
	}
	if c.HTTPTimeoutSecs == 0 {
		c.HTTPTimeoutSecs = DefaultHTTPTimeoutSecs
	}
}

// Validate checks for some essential config properties.
// Defaults should be applied first.
func (c *Main) Validate() error {
	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil || c.LogLevel == "" {
		return fmt.Errorf("invalid logLevel '%s'", c.LogLevel)
	}
	if c.HTTPTimeoutSecs < 0 {
		return errors.New("httpTimeoutSecs must be >= 0")
	}
	if c.FilterScript != "" && !common.IsHTTPResource(c.FilterScript) {
		isFile, err := fs.IsFile(common.LocalPath(c.FilterScript))
		if err != nil {
			return fmt.Errorf("failed to check filterScript: %w", err)
		}
		if !isFile {
			return fmt.Errorf("invalid filterScript '%s'", c.FilterScript)
		}
	}
	if c.PeakHours != nil {
		if err := c.PeakHours.Validate(); err != nil {
			return err
		}
	}
	if c.BusyPeriods != nil {
		if err := c.BusyPeriods.Validate(); err != nil {
			return err
		}
	}
	return nil
}

// Default returns configuration used when no config file is provided
func Default() *Main {
	conf := &Main{}
	conf.ApplyDefaults()
	return conf
}

// Load loads main configuration (either from a local fs or via http(s)).
// Defaults are applied to missing values. With an empty path, Default()
// is returned.
func Load(path string) (*Main, error) {
	if path == "" {
		return Default(), nil
	}
	rawData, err := common.LoadSupportedResource(path, common.DefaultHTTPTimeout)
	if err != nil {
		return nil, fmt.Errorf("failed to load config %s: %w", path, err)
	}
	var conf Main
	if err := json.Unmarshal(rawData, &conf); err != nil {
		return nil, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	conf.ApplyDefaults()
	return &conf, nil
}
