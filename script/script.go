// Package script exposes the constant tables and input callbacks to Lua.
//
// Open installs a global "love" table with two functions:
//
//	love.getConstant(kind, name)   -- number, or nil if name is unknown
//	love.getConstant(kind, value)  -- name, or nil if value is unknown
//	love.getConstants(kind)        -- every name of kind, in declaration order
//
// Lookups never raise a Lua error: an unknown kind, name or value yields
// nil so scripts can validate user strings with a plain nil check.
//
// Dispatch forwards hid events to the matching love.<event> callback when
// the script defined one. Joystick ids are 1-based on the Lua side.
package script

import (
	"fmt"
	"slices"

	lua "github.com/yuin/gopher-lua"

	"github.com/lovepotion/love/hid"
	"github.com/lovepotion/love/joystick"
	"github.com/lovepotion/love/renderstate"
	"github.com/lovepotion/love/system"
	"github.com/lovepotion/love/texture"
)

// TableName is the global the functions are installed in.
const TableName = "love"

type enum interface{ ~uint8 }

// constants is one named table as seen from Lua.
type constants struct {
	names func() []string
	find  func(name string) (int, bool)
	name  func(value int) (string, bool)
}

func table[T enum](names func() []string, find func(string) (T, bool), name func(T) (string, bool)) constants {
	return constants{
		names: names,
		find: func(s string) (int, bool) {
			v, ok := find(s)
			return int(v), ok
		},
		name: func(v int) (string, bool) {
			if v < 0 || v > int(^T(0)) {
				return "", false
			}
			return name(T(v))
		},
	}
}

var kinds = map[string]constants{
	"blendmode":      table(renderstate.BlendModeNames, renderstate.BlendModeByName, renderstate.BlendModeName),
	"blendalpha":     table(renderstate.BlendAlphaModeNames, renderstate.BlendAlphaModeByName, renderstate.BlendAlphaModeName),
	"blendfactor":    table(renderstate.BlendFactorNames, renderstate.BlendFactorByName, renderstate.BlendFactorName),
	"blendoperation": table(renderstate.BlendOperationNames, renderstate.BlendOperationByName, renderstate.BlendOperationName),
	"comparemode":    table(renderstate.CompareModeNames, renderstate.CompareModeByName, renderstate.CompareModeName),
	"filtermode":     table(texture.FilterModeNames, texture.FilterModeByName, texture.FilterModeName),
	"wrapmode":       table(texture.WrapModeNames, texture.WrapModeByName, texture.WrapModeName),
	"gamepadbutton":  table(joystick.GamepadButtonNames, joystick.GamepadButtonByName, joystick.GamepadButtonName),
	"gamepadaxis":    table(joystick.GamepadAxisNames, joystick.GamepadAxisByName, joystick.GamepadAxisName),
	"inputtype":      table(joystick.InputTypeNames, joystick.InputTypeByName, joystick.InputTypeName),
	"gamepadtype":    table(joystick.GamepadTypeNames, joystick.GamepadTypeByName, joystick.GamepadTypeName),
	"powerstate":     table(system.PowerStateNames, system.PowerStateByName, system.PowerStateName),
	"networkstate":   table(system.NetworkStateNames, system.NetworkStateByName, system.NetworkStateName),
	"mediatype":      table(system.MediaTypeNames, system.MediaTypeByName, system.MediaTypeName),
	"event":          table(hid.EventTypeNames, hid.EventTypeByName, hid.EventTypeName),
}

// Kinds returns the constant kinds Open exposes, sorted.
func Kinds() []string {
	out := make([]string, 0, len(kinds))
	for k := range kinds {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// Open installs the love table in L, reusing an existing one.
func Open(L *lua.LState) {
	tbl, ok := L.GetGlobal(TableName).(*lua.LTable)
	if !ok {
		tbl = L.NewTable()
		L.SetGlobal(TableName, tbl)
	}
	L.SetField(tbl, "getConstant", L.NewFunction(getConstant))
	L.SetField(tbl, "getConstants", L.NewFunction(getConstants))
}

// lookupKind resolves argument 1. Non-string kinds are unknown.
func lookupKind(L *lua.LState) (constants, bool) {
	kind, _ := L.Get(1).(lua.LString)
	c, ok := kinds[string(kind)]
	return c, ok
}

func getConstant(L *lua.LState) int {
	c, ok := lookupKind(L)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	switch v := L.Get(2).(type) {
	case lua.LString:
		if n, ok := c.find(string(v)); ok {
			L.Push(lua.LNumber(n))
			return 1
		}
	case lua.LNumber:
		f := float64(v)
		if f == float64(int(f)) {
			if name, ok := c.name(int(f)); ok {
				L.Push(lua.LString(name))
				return 1
			}
		}
	}
	L.Push(lua.LNil)
	return 1
}

func getConstants(L *lua.LState) int {
	c, ok := lookupKind(L)
	if !ok {
		L.Push(lua.LNil)
		return 1
	}
	out := L.NewTable()
	for _, name := range c.names() {
		out.Append(lua.LString(name))
	}
	L.Push(out)
	return 1
}

// Dispatch calls love.<event>(...) for e. It reports whether a callback
// ran; a missing callback is not an error. Errors raised by the callback
// are returned.
func Dispatch(L *lua.LState, e hid.Event) (bool, error) {
	tbl, ok := L.GetGlobal(TableName).(*lua.LTable)
	if !ok {
		return false, nil
	}
	fn, ok := L.GetField(tbl, e.Type.String()).(*lua.LFunction)
	if !ok {
		return false, nil
	}
	err := L.CallByParam(lua.P{Fn: fn, NRet: 0, Protect: true}, eventArgs(e)...)
	if err != nil {
		return true, fmt.Errorf("script: %s: %w", e.Type, err)
	}
	return true, nil
}

func eventArgs(e hid.Event) []lua.LValue {
	id := lua.LNumber(e.Which + 1)
	switch e.Type {
	case hid.GamepadPressed, hid.GamepadReleased:
		return []lua.LValue{id, lua.LString(e.Button.String())}
	case hid.GamepadAxis:
		return []lua.LValue{id, lua.LString(e.Axis.String()), lua.LNumber(e.Value)}
	case hid.TouchPressed, hid.TouchMoved, hid.TouchReleased:
		t := e.Touch
		return []lua.LValue{lua.LNumber(t.ID), lua.LNumber(t.X), lua.LNumber(t.Y), lua.LNumber(t.Pressure)}
	}
	return []lua.LValue{id}
}
