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

package scripting

import (
	"fmt"
	"time"

	"weblogstat/common"
	"weblogstat/record"

	"github.com/rs/zerolog/log"
	lua "github.com/yuin/gopher-lua"
)

const (
	acceptFnName = "accept"
)

// LuaFilter decides about web log records using a Lua function
// `accept(path, datetime, user_agent)` returning a boolean.
type LuaFilter struct {
	env      *lua.LState
	acceptFn lua.LValue
	numErrs  int
}

// Accept calls the script's `accept` function. A failing script
// call is logged and the record is accepted.
func (f *LuaFilter) Accept(rec *record.LogRecord) bool {
	err := f.env.CallByParam(
		lua.P{
			Fn:      f.acceptFn,
			NRet:    1,
			Protect: true,
		},
		lua.LString(rec.Path), lua.LString(rec.Datetime), lua.LString(rec.UserAgent),
	)
	if err != nil {
		f.numErrs++
		log.Warn().Err(err).Str("path", rec.Path).Msg("record filter failed, accepting record")
		return true
	}
	ret := f.env.Get(-1)
	f.env.Pop(1)
	return lua.LVAsBool(ret)
}

// NumErrors returns number of failed `accept` calls so far
func (f *LuaFilter) NumErrors() int {
	return f.numErrs
}

// Close releases the Lua state
func (f *LuaFilter) Close() {
	f.env.Close()
}

// NewLuaFilter compiles the source code and checks that it
// provides the `accept` function.
func NewLuaFilter(sourceCode string) (*LuaFilter, error) {
	env, err := CreateEnvironment(sourceCode)
	if err != nil {
		return nil, err
	}
	fnObj := env.GetGlobal(acceptFnName)
	if _, ok := fnObj.(*lua.LFunction); !ok {
		env.Close()
		return nil, fmt.Errorf("failed to create record filter: missing `%s` function", acceptFnName)
	}
	return &LuaFilter{env: env, acceptFn: fnObj}, nil
}

// LoadLuaFilter loads a filter script from a file or a http(s) URL
func LoadLuaFilter(uri string, timeout time.Duration) (*LuaFilter, error) {
	src, err := common.LoadSupportedResource(uri, timeout)
	if err != nil {
		return nil, fmt.Errorf("failed to load record filter %s: %w", uri, err)
	}
	f, err := NewLuaFilter(string(src))
	if err != nil {
		return nil, fmt.Errorf("failed to load record filter %s: %w", uri, err)
	}
	log.Info().Str("script", uri).Msg("using Lua record filter")
	return f, nil
}
