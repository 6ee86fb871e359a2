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

package record

import (
	"fmt"
	"regexp"
	"time"
)

const (
	// DatetimeLayout is the only accepted format of the datetime
	// column (MM DD YYYY HH:MM:SS, 24-hour clock)
	DatetimeLayout = "01 02 2006 15:04:05"

	// MinNumFields is a minimum number of CSV fields a line must
	// provide to be considered a log record
	MinNumFields = 3
)

var (
	imagePathPattern = regexp.MustCompile(`(?i)\.(jpg|gif|png)$`)
)

// LineParsingError informs that a CSV line cannot be used
// as a log record (typically because of missing fields).
type LineParsingError struct {
	LineNumber int
	Message    string
}

func (m LineParsingError) Error() string {
	return fmt.Sprintf("%s: LineParsingError at line %d", m.Message, m.LineNumber)
}

// NewLineParsingError is a constructor for LineParsingError
func NewLineParsingError(lineNumber int, message string) LineParsingError {
	return LineParsingError{LineNumber: lineNumber, Message: message}
}

// IsImagePath tests whether the path refers to a jpg, gif or png
// resource (case-insensitive).
func IsImagePath(path string) bool {
	return imagePathPattern.MatchString(path)
}

// LogRecord is a single web log entry. Only the first three
// columns of a CSV line are used, the rest is ignored.
type LogRecord struct {
	Path      string
	Datetime  string
	UserAgent string
}

// IsImageRequest tests whether the record requests an image
func (rec *LogRecord) IsImageRequest() bool {
	return IsImagePath(rec.Path)
}

// GetTime parses the record's datetime. The value carries no
// time zone information so the result is in UTC.
func (rec *LogRecord) GetTime() (time.Time, error) {
	return time.Parse(DatetimeLayout, rec.Datetime)
}

// Hour returns the hour of day (0-23) of the record. In case
// the datetime cannot be parsed, false is returned.
func (rec *LogRecord) Hour() (int, bool) {
	t, err := rec.GetTime()
	if err != nil {
		return -1, false
	}
	return t.Hour(), true
}

// FromFields creates a record from parsed CSV fields. The lineNum
// argument is used only for error reporting.
func FromFields(fields []string, lineNum int) (*LogRecord, error) {
	if len(fields) < MinNumFields {
		return nil, NewLineParsingError(
			lineNum,
			fmt.Sprintf("expected at least %d fields, found %d", MinNumFields, len(fields)),
		)
	}
	return &LogRecord{
		Path:      fields[0],
		Datetime:  fields[1],
		UserAgent: fields[2],
	}, nil
}
