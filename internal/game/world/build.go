package world

import "fmt"

// BehaviorFactory constructs a Behavior for a feature definition by type
// name. Factories may mutate the definition to apply type defaults (name,
// interaction text) before rules are resolved. Returning a nil Behavior is
// valid: the feature keeps the default interaction flow.
type BehaviorFactory func(typeName string, def *FeatureDef) (Behavior, error)

// ItemFactory applies type defaults to an item definition by type name.
// Unlike feature behaviors, item types carry no runtime strategy; they only
// default fields before the item is built.
type ItemFactory func(typeName string, def *ItemDef) error

// HookBinder resolves named script hooks into evaluation rules. Args are
// entity identifiers passed through to every hook invocation.
type HookBinder interface {
	TextHook(name string, args ...string) TextRule
	PagesHook(name string, args ...string) PagesRule
	BlockHook(name string, args ...string) BlockRule
	EventHook(name string, args ...string) func(GameState)
}

// BuildOptions supplies the collaborators zone construction needs.
type BuildOptions struct {
	// Behaviors constructs typed feature behaviors. nil rejects any
	// feature definition carrying a type.
	Behaviors BehaviorFactory
	// Items applies typed item defaults. nil rejects any item definition
	// carrying a type.
	Items ItemFactory
	// Hooks resolves script hook names. nil rejects any definition
	// carrying a hook.
	Hooks HookBinder
}

// BuildZone converts a parsed definition into a validated Zone.
//
// Postcondition: Returns a Zone passing Validate, or an error naming the
// offending room/exit/feature.
func BuildZone(def *ZoneDef, opts BuildOptions) (*Zone, error) {
	zone := &Zone{
		ID:                     def.ID,
		Name:                   def.Name,
		Description:            def.Description,
		StartRoom:              def.StartRoom,
		ScriptDir:              def.ScriptDir,
		ScriptInstructionLimit: def.ScriptInstructionLimit,
		Rooms:                  make(map[string]*Room, len(def.Rooms)),
	}

	for i := range def.Rooms {
		rd := &def.Rooms[i]
		room, err := buildRoom(rd, opts)
		if err != nil {
			return nil, fmt.Errorf("zone %d: room %q: %w", def.ID, rd.ID, err)
		}
		if _, exists := zone.Rooms[room.ID]; exists {
			return nil, fmt.Errorf("zone %d: duplicate room ID %q", def.ID, room.ID)
		}
		zone.Rooms[room.ID] = room
	}

	if err := zone.Validate(); err != nil {
		return nil, fmt.Errorf("validating zone: %w", err)
	}
	return zone, nil
}

func buildRoom(def *RoomDef, opts BuildOptions) (*Room, error) {
	room := &Room{ID: def.ID}

	enter, err := textRule(def.Enter, def.EnterHook, opts, def.ID)
	if err != nil {
		return nil, err
	}
	room.Enter = enter

	for i := range def.Exits {
		exit, err := buildExit(&def.Exits[i], opts)
		if err != nil {
			return nil, fmt.Errorf("exit %q: %w", def.Exits[i].Direction, err)
		}
		room.Exits = append(room.Exits, exit)
	}
	for i := range def.Features {
		feature, err := BuildFeature(&def.Features[i], opts)
		if err != nil {
			return nil, fmt.Errorf("feature %q: %w", def.Features[i].Name, err)
		}
		room.Features = append(room.Features, feature)
	}
	for i := range def.Items {
		item, err := BuildItem(&def.Items[i], opts)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", def.Items[i].Name, err)
		}
		room.Items = append(room.Items, item)
	}
	return room, nil
}

func buildExit(def *ExitDef, opts BuildOptions) (*Exit, error) {
	exit := &Exit{
		Direction:  def.Direction,
		TargetRoom: def.Target,
	}

	if def.Locked != nil {
		exit.Lock = NewLock(LockType(def.Locked.Type), def.Locked.Code)
		exit.Lock.Discovered = def.LockDiscovered
	}

	args := []string{def.Direction, def.Target}

	display, err := textRuleArgs(def.DisplayText, def.DisplayHook, opts, args)
	if err != nil {
		return nil, err
	}
	exit.DisplayText = display

	if def.LockedHook != "" || def.LockedText != "" {
		locked, err := textRuleArgs(def.LockedText, def.LockedHook, opts, args)
		if err != nil {
			return nil, err
		}
		exit.LockedText = locked
	}
	if def.UnlockHook != "" || def.UnlockText != "" {
		unlock, err := textRuleArgs(def.UnlockText, def.UnlockHook, opts, args)
		if err != nil {
			return nil, err
		}
		exit.UnlockText = unlock
	}

	switch {
	case def.BlockedHook != "":
		if opts.Hooks == nil {
			return nil, hookErr(def.BlockedHook)
		}
		exit.Block = opts.Hooks.BlockHook(def.BlockedHook, args...)
	case def.Blocked:
		text := def.BlockedText
		exit.Block = func(GameState) (bool, string) { return true, text }
	}

	if def.OnExitHook != "" {
		if opts.Hooks == nil {
			return nil, hookErr(def.OnExitHook)
		}
		exit.OnExit = opts.Hooks.EventHook(def.OnExitHook, args...)
	}

	return exit, nil
}

// BuildFeature converts a feature definition, recursively building nested
// contents and resolving the behavior type.
func BuildFeature(def *FeatureDef, opts BuildOptions) (*Feature, error) {
	var behavior Behavior
	if def.Type != "" {
		if opts.Behaviors == nil {
			return nil, fmt.Errorf("feature type %q: no behavior factory configured", def.Type)
		}
		var err error
		behavior, err = opts.Behaviors(def.Type, def)
		if err != nil {
			return nil, err
		}
	}

	if def.Name == "" {
		return nil, fmt.Errorf("feature must have a name")
	}

	f := &Feature{
		Name:         def.Name,
		Behavior:     behavior,
		DiscoverText: resolveTemplate(def.DiscoverText, DefaultDiscoverTemplate),
	}

	if def.Locked != nil {
		f.Lock = NewLock(LockType(def.Locked.Type), def.Locked.Code)
		f.Lock.Discovered = def.LockDiscovered
	}

	args := []string{def.Name}

	switch {
	case def.RoomHook != "":
		if opts.Hooks == nil {
			return nil, hookErr(def.RoomHook)
		}
		f.RoomText = opts.Hooks.TextHook(def.RoomHook, args...)
	default:
		if template := resolveTemplate(def.RoomText, DefaultRoomTextTemplate); template != "" {
			f.RoomText = StaticText(template)
		}
	}

	switch {
	case def.InteractionHook != "":
		if opts.Hooks == nil {
			return nil, hookErr(def.InteractionHook)
		}
		f.Interaction = opts.Hooks.PagesHook(def.InteractionHook, args...)
	case len(def.Interaction) > 0:
		f.Interaction = StaticPages(def.Interaction...)
	}

	if def.UnlockHook != "" || def.UnlockText != "" {
		unlock, err := textRuleArgs(def.UnlockText, def.UnlockHook, opts, args)
		if err != nil {
			return nil, err
		}
		f.UnlockText = unlock
	}

	for i := range def.Items {
		item, err := BuildItem(&def.Items[i], opts)
		if err != nil {
			return nil, fmt.Errorf("item %q: %w", def.Items[i].Name, err)
		}
		f.Items = append(f.Items, item)
	}
	for i := range def.Features {
		nested, err := BuildFeature(&def.Features[i], opts)
		if err != nil {
			return nil, fmt.Errorf("nested feature %q: %w", def.Features[i].Name, err)
		}
		f.Features = append(f.Features, nested)
	}

	return f, nil
}

// BuildItem converts an item definition, resolving the item type and
// applying template defaults.
func BuildItem(def *ItemDef, opts BuildOptions) (*Item, error) {
	if def.Type != "" {
		if opts.Items == nil {
			return nil, fmt.Errorf("item type %q: no item factory configured", def.Type)
		}
		if err := opts.Items(def.Type, def); err != nil {
			return nil, err
		}
	}

	if def.Name == "" {
		return nil, fmt.Errorf("item must have a name")
	}

	roomText := def.RoomText
	if roomText == "" {
		roomText = DefaultRoomTextTemplate
	}
	return &Item{
		Name:         def.Name,
		Description:  def.Description,
		RoomText:     roomText,
		DiscoverText: resolveTemplate(def.DiscoverText, DefaultDiscoverTemplate),
		KeyCode:      def.KeyCode,
	}, nil
}

// resolveTemplate applies the unset-vs-empty convention: nil means use the
// default template, empty string means "say nothing".
func resolveTemplate(value *string, fallback string) string {
	if value == nil {
		return fallback
	}
	return *value
}

func textRule(static, hook string, opts BuildOptions, args ...string) (TextRule, error) {
	return textRuleArgs(static, hook, opts, args)
}

func textRuleArgs(static, hook string, opts BuildOptions, args []string) (TextRule, error) {
	if hook != "" {
		if opts.Hooks == nil {
			return nil, hookErr(hook)
		}
		return opts.Hooks.TextHook(hook, args...), nil
	}
	if static == "" {
		return nil, nil
	}
	return StaticText(static), nil
}

func hookErr(name string) error {
	return fmt.Errorf("hook %q: scripting not configured", name)
}
