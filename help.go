// Copyright 2024 Tomas Machalek <tomas.machalek@gmail.com>
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

const confHelpText = `The optional JSON configuration (-conf) may contain:

{
    "logPath": "/var/log/weblogstat.log",
    "logLevel": "info",
    "httpTimeoutSecs": 30,
    "filterScript": "/path/to/filter.lua",
    "peakHours": {"outlierCoeff": 1.5, "minFreq": 1},
    "busyPeriods": {"minDensity": 1, "epsilon": 1.5}
}

The filter script must define a function accept(path, datetime, user_agent)
returning true for records to be counted. Functions is_image(path),
browser(user_agent) and module require("weblog") are available.
`
