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

	"weblogstat/ctype"
	"weblogstat/record"

	lua "github.com/yuin/gopher-lua"
)

/*
built-in classifiers are exposed to scripts so a filter can reuse
exactly the same rules the aggregation uses
*/

func registerClassifiers(L *lua.LState) {
	L.SetGlobal("is_image", L.NewFunction(func(L *lua.LState) int {
		L.Push(lua.LBool(record.IsImagePath(L.CheckString(1))))
		return 1
	}))
	L.SetGlobal("browser", L.NewFunction(func(L *lua.LState) int {
		b, ok := ctype.DetectBrowser(L.CheckString(1))
		if !ok {
			L.Push(lua.LNil)
			return 1
		}
		L.Push(lua.LString(b))
		return 1
	}))
}

// CreateEnvironment creates a Lua state with registered helper
// functions and runs the provided source code in it.
func CreateEnvironment(sourceCode string) (*lua.LState, error) {
	L := lua.NewState()
	registerClassifiers(L)
	setupRequireFn(L)
	if err := L.DoString(sourceCode); err != nil {
		L.Close()
		return nil, fmt.Errorf("failed to process filter source code: %w", err)
	}
	return L, nil
}
