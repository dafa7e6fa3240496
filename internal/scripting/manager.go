package scripting

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"sync"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// zoneVM pairs a zone's LState with its configured instruction budget so a
// fresh budget can be armed before every hook call.
type zoneVM struct {
	state  *lua.LState
	limit  int
	cancel func()
}

// Manager owns one sandboxed LState per zone and exposes hook dispatch.
//
// Each zone's LState is single-threaded; the mutex serializes hook calls
// across zones, which is all a single-player turn loop needs.
type Manager struct {
	mu     sync.Mutex
	zones  map[int]*zoneVM
	logger *zap.Logger

	// Injected after construction. nil = the matching game.* Lua function
	// returns its zero value.
	HasCondition func(name string) bool
	SetCondition func(name string, state bool)
	HasItem      func(name string) bool
	Visited      func(roomID string) bool
	CurrentRoom  func() string
}

// NewManager creates a Manager.
//
// Precondition: logger must be non-nil.
// Postcondition: Returns a non-nil Manager with an empty zone map.
func NewManager(logger *zap.Logger) *Manager {
	return &Manager{
		zones:  make(map[int]*zoneVM),
		logger: logger,
	}
}

// LoadZone creates a sandboxed VM for zoneID, registers all game.* modules,
// then executes every *.lua file in scriptDir in lexicographic order.
// Reloading a zone replaces and closes its previous VM.
//
// Precondition: scriptDir must be a readable directory.
// Postcondition: Zone VM is registered; returns error on Lua load failure.
func (m *Manager) LoadZone(zoneID int, scriptDir string, instLimit int) error {
	if instLimit <= 0 {
		instLimit = DefaultInstructionLimit
	}

	L, cancel := NewSandboxedState(instLimit)
	m.RegisterModules(L)

	entries, err := os.ReadDir(scriptDir)
	if err != nil {
		cancel()
		L.Close()
		return fmt.Errorf("scripting: reading script dir %q for zone %d: %w", scriptDir, zoneID, err)
	}

	var luaFiles []string
	for _, e := range entries {
		if !e.IsDir() && filepath.Ext(e.Name()) == ".lua" {
			luaFiles = append(luaFiles, filepath.Join(scriptDir, e.Name()))
		}
	}
	sort.Strings(luaFiles)

	for _, path := range luaFiles {
		if err := L.DoFile(path); err != nil {
			cancel()
			L.Close()
			return fmt.Errorf("scripting: loading %q for zone %d: %w", path, zoneID, err)
		}
	}

	m.mu.Lock()
	if old, ok := m.zones[zoneID]; ok {
		old.cancel()
		old.state.Close()
	}
	m.zones[zoneID] = &zoneVM{state: L, limit: instLimit, cancel: cancel}
	m.mu.Unlock()
	return nil
}

// Close tears down every zone VM. The Manager must not be used afterwards.
func (m *Manager) Close() {
	m.mu.Lock()
	defer m.mu.Unlock()
	for id, vm := range m.zones {
		vm.cancel()
		vm.state.Close()
		delete(m.zones, id)
	}
}

// CallHook calls the named Lua global function in zoneID's VM with string
// arguments. Returns (LNil, nil) if the hook is not defined or no VM exists.
// Lua runtime errors are logged at Warn level and never propagated; broken
// content degrades to silence rather than crashing a session.
//
// Postcondition: Returns the first return value of the hook, or LNil.
func (m *Manager) CallHook(zoneID int, hook string, args ...string) (lua.LValue, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	vm, ok := m.zones[zoneID]
	if !ok {
		m.logger.Info("scripting: no VM for zone",
			zap.Int("zone", zoneID),
			zap.String("hook", hook),
		)
		return lua.LNil, nil
	}
	L := vm.state

	fn := L.GetGlobal(hook)
	if fn == lua.LNil {
		return lua.LNil, nil
	}

	lvArgs := make([]lua.LValue, len(args))
	for i, a := range args {
		lvArgs[i] = lua.LString(a)
	}

	vm.cancel()
	vm.cancel = armInstructionBudget(L, vm.limit)

	if err := L.CallByParam(lua.P{
		Fn:      fn,
		NRet:    1,
		Protect: true,
	}, lvArgs...); err != nil {
		m.logger.Warn("scripting: Lua runtime error",
			zap.Int("zone", zoneID),
			zap.String("hook", hook),
			zap.Error(err),
		)
		return lua.LNil, nil
	}

	ret := L.Get(-1)
	L.Pop(1)
	return ret, nil
}

// CallString calls hook and coerces its return value to a string. LNil and
// non-string, non-number values coerce to "".
func (m *Manager) CallString(zoneID int, hook string, args ...string) string {
	ret, _ := m.CallHook(zoneID, hook, args...)
	return luaToString(ret)
}

// CallPages calls hook and coerces its return value to a slice of pages.
// A Lua string yields one page; an array-style table yields one page per
// element; anything else yields nil.
func (m *Manager) CallPages(zoneID int, hook string, args ...string) []string {
	ret, _ := m.CallHook(zoneID, hook, args...)
	switch v := ret.(type) {
	case lua.LString:
		return []string{string(v)}
	case *lua.LTable:
		var pages []string
		v.ForEach(func(_, value lua.LValue) {
			pages = append(pages, luaToString(value))
		})
		return pages
	default:
		return nil
	}
}

// CallBlock calls hook and interprets its return value as a block verdict.
// false or nil means not blocked; true means blocked with no custom text;
// a string means blocked with that text as the narration.
func (m *Manager) CallBlock(zoneID int, hook string, args ...string) (bool, string) {
	ret, _ := m.CallHook(zoneID, hook, args...)
	switch v := ret.(type) {
	case lua.LBool:
		return bool(v), ""
	case lua.LString:
		return true, string(v)
	default:
		return false, ""
	}
}

// CallEvent calls hook for its side effects, discarding any return value.
func (m *Manager) CallEvent(zoneID int, hook string, args ...string) {
	m.CallHook(zoneID, hook, args...) //nolint:errcheck // runtime errors are logged, not propagated
}

func luaToString(v lua.LValue) string {
	switch lv := v.(type) {
	case lua.LString:
		return string(lv)
	case lua.LNumber:
		return lv.String()
	default:
		return ""
	}
}
