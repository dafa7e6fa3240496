package scripting

import lua "github.com/yuin/gopher-lua"

// RegisterModules registers the game.* Lua table into L. The functions read
// and mutate game state through the Manager's injected callback fields:
//
//	game.has_condition(name)  -> bool
//	game.set_condition(name, state)
//	game.has_item(name)       -> bool
//	game.visited(room_id)     -> bool
//	game.current_room()       -> string
//	game.log(message)
//
// Precondition: L must be from NewSandboxedState.
// Postcondition: the game global is defined in L.
func (m *Manager) RegisterModules(L *lua.LState) {
	game := L.NewTable()

	L.SetField(game, "has_condition", L.NewFunction(func(ls *lua.LState) int {
		name := ls.CheckString(1)
		result := false
		if m.HasCondition != nil {
			result = m.HasCondition(name)
		}
		ls.Push(lua.LBool(result))
		return 1
	}))

	L.SetField(game, "set_condition", L.NewFunction(func(ls *lua.LState) int {
		name := ls.CheckString(1)
		state := ls.OptBool(2, true)
		if m.SetCondition != nil {
			m.SetCondition(name, state)
		}
		return 0
	}))

	L.SetField(game, "has_item", L.NewFunction(func(ls *lua.LState) int {
		name := ls.CheckString(1)
		result := false
		if m.HasItem != nil {
			result = m.HasItem(name)
		}
		ls.Push(lua.LBool(result))
		return 1
	}))

	L.SetField(game, "visited", L.NewFunction(func(ls *lua.LState) int {
		roomID := ls.CheckString(1)
		result := false
		if m.Visited != nil {
			result = m.Visited(roomID)
		}
		ls.Push(lua.LBool(result))
		return 1
	}))

	L.SetField(game, "current_room", L.NewFunction(func(ls *lua.LState) int {
		roomID := ""
		if m.CurrentRoom != nil {
			roomID = m.CurrentRoom()
		}
		ls.Push(lua.LString(roomID))
		return 1
	}))

	L.SetField(game, "log", L.NewFunction(func(ls *lua.LState) int {
		m.logger.Info("scripting: " + ls.CheckString(1))
		return 0
	}))

	L.SetGlobal("game", game)
}
