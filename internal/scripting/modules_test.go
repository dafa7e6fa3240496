package scripting_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func TestGameModule_HasCondition(t *testing.T) {
	mgr, _ := newTestManager(t)
	defer mgr.Close()
	mgr.HasCondition = func(name string) bool { return name == "sink_on" }

	dir := writeTempLua(t, "cond.lua", `
		function check(name)
			if game.has_condition(name) then
				return "yes"
			end
			return "no"
		end
	`)
	require.NoError(t, mgr.LoadZone(0, dir, 0))
	assert.Equal(t, "yes", mgr.CallString(0, "check", "sink_on"))
	assert.Equal(t, "no", mgr.CallString(0, "check", "door_open"))
}

func TestGameModule_SetCondition(t *testing.T) {
	mgr, _ := newTestManager(t)
	defer mgr.Close()
	set := map[string]bool{}
	mgr.SetCondition = func(name string, state bool) { set[name] = state }

	dir := writeTempLua(t, "set.lua", `
		function flip()
			game.set_condition("valve_open")
			game.set_condition("lights_on", false)
		end
	`)
	require.NoError(t, mgr.LoadZone(0, dir, 0))
	mgr.CallEvent(0, "flip")

	assert.True(t, set["valve_open"])
	assert.False(t, set["lights_on"])
}

func TestGameModule_HasItemAndVisited(t *testing.T) {
	mgr, _ := newTestManager(t)
	defer mgr.Close()
	mgr.HasItem = func(name string) bool { return name == "brass key" }
	mgr.Visited = func(roomID string) bool { return roomID == "cellar" }

	dir := writeTempLua(t, "state.lua", `
		function summary()
			local parts = {}
			if game.has_item("brass key") then table.insert(parts, "key") end
			if game.has_item("coin") then table.insert(parts, "coin") end
			if game.visited("cellar") then table.insert(parts, "cellar") end
			return table.concat(parts, ",")
		end
	`)
	require.NoError(t, mgr.LoadZone(0, dir, 0))
	assert.Equal(t, "key,cellar", mgr.CallString(0, "summary"))
}

func TestGameModule_CurrentRoom(t *testing.T) {
	mgr, _ := newTestManager(t)
	defer mgr.Close()
	mgr.CurrentRoom = func() string { return "landing" }

	dir := writeTempLua(t, "room.lua", `
		function where()
			return game.current_room()
		end
	`)
	require.NoError(t, mgr.LoadZone(0, dir, 0))
	assert.Equal(t, "landing", mgr.CallString(0, "where"))
}

func TestGameModule_NilCallbacks_ZeroValues(t *testing.T) {
	mgr, _ := newTestManager(t)
	defer mgr.Close()

	dir := writeTempLua(t, "nil.lua", `
		function probe()
			if game.has_condition("x") or game.has_item("x") or game.visited("x") then
				return "bad"
			end
			game.set_condition("x")
			return game.current_room()
		end
	`)
	require.NoError(t, mgr.LoadZone(0, dir, 0))
	assert.Equal(t, "", mgr.CallString(0, "probe"))
}

func TestGameModule_Log_WritesToLogger(t *testing.T) {
	mgr, logs := newTestManager(t)
	defer mgr.Close()

	dir := writeTempLua(t, "log.lua", `
		function do_log()
			game.log("hello from lua")
		end
	`)
	require.NoError(t, mgr.LoadZone(0, dir, 0))
	mgr.CallEvent(0, "do_log")

	found := false
	for _, e := range logs.All() {
		if e.Level == zap.InfoLevel && e.Message == "scripting: hello from lua" {
			found = true
			break
		}
	}
	assert.True(t, found, "expected Info log entry from game.log")
}
