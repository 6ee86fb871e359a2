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
	"embed"
	"fmt"

	lua "github.com/yuin/gopher-lua"
)

//go:embed lua/*.lua
var luaScripts embed.FS

// filterModules lists modules a filter script may require
var filterModules = map[string]string{
	"weblog": "lua/weblog.lua",
}

func loadFilterModule(L *lua.LState, modname string) (lua.LValue, error) {
	scriptPath, ok := filterModules[modname]
	if !ok {
		return lua.LNil, fmt.Errorf("module `%s` is not available to filters", modname)
	}
	content, err := luaScripts.ReadFile(scriptPath)
	if err != nil {
		return lua.LNil, fmt.Errorf("failed to read module `%s`: %w", modname, err)
	}
	fn, err := L.LoadString(string(content))
	if err != nil {
		return lua.LNil, fmt.Errorf("failed to load module `%s`: %w", modname, err)
	}
	L.Push(fn)
	L.Call(0, 1)
	mod := L.Get(-1)
	L.Pop(1)
	return mod, nil
}

// setupRequireFn installs a `require` resolving only the allowed
// embedded modules. Each module is evaluated at most once per state.
func setupRequireFn(L *lua.LState) {
	loaded := L.NewTable()
	packageTable := L.NewTable()
	L.SetField(packageTable, "loaded", loaded)
	L.SetGlobal("package", packageTable)

	L.SetGlobal("require", L.NewFunction(func(L *lua.LState) int {
		modname := L.CheckString(1)
		if mod := L.GetField(loaded, modname); mod != lua.LNil {
			L.Push(mod)
			return 1
		}
		mod, err := loadFilterModule(L, modname)
		if err != nil {
			L.RaiseError("%s", err.Error())
			return 0
		}
		L.SetField(loaded, modname, mod)
		L.Push(mod)
		return 1
	}))
}
