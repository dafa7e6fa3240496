package world

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// zoneFile is the top-level YAML structure for zone definition files.
type zoneFile struct {
	Zone ZoneDef `yaml:"zone"`
}

// ZoneDef is the serialized form of a zone.
type ZoneDef struct {
	ID                     int       `yaml:"id"`
	Name                   string    `yaml:"name"`
	Description            string    `yaml:"description"`
	StartRoom              string    `yaml:"start_room"`
	ScriptDir              string    `yaml:"script_dir"`
	ScriptInstructionLimit int       `yaml:"script_instruction_limit"`
	Rooms                  []RoomDef `yaml:"rooms"`
}

// RoomDef is the serialized form of a room.
type RoomDef struct {
	ID        string       `yaml:"id"`
	Enter     string       `yaml:"enter"`
	EnterHook string       `yaml:"enter_hook"`
	Exits     []ExitDef    `yaml:"exits"`
	Features  []FeatureDef `yaml:"features"`
	Items     []ItemDef    `yaml:"items"`
}

// LockDef configures a lock. Type defaults to "key" when empty.
type LockDef struct {
	Type string `yaml:"type"`
	Code string `yaml:"code"`
}

// ExitDef is the serialized form of an exit.
type ExitDef struct {
	Direction      string   `yaml:"direction"`
	Target         string   `yaml:"target"`
	DisplayText    string   `yaml:"display_text"`
	DisplayHook    string   `yaml:"display_hook"`
	Locked         *LockDef `yaml:"locked"`
	LockDiscovered bool     `yaml:"lock_discovered"`
	LockedText     string   `yaml:"locked_text"`
	LockedHook     string   `yaml:"locked_hook"`
	UnlockText     string   `yaml:"unlock_text"`
	UnlockHook     string   `yaml:"unlock_hook"`
	Blocked        bool     `yaml:"blocked"`
	BlockedText    string   `yaml:"blocked_text"`
	BlockedHook    string   `yaml:"blocked_hook"`
	OnExitHook     string   `yaml:"on_exit_hook"`
}

// FeatureDef is the serialized form of a feature. Type names a registered
// behavior constructor; behavior-specific payload fields land in Props.
//
// RoomText and DiscoverText are pointers to distinguish "unset, use the
// default template" from "empty string, say nothing".
type FeatureDef struct {
	Type            string         `yaml:"type"`
	Name            string         `yaml:"name"`
	RoomText        *string        `yaml:"room_text"`
	RoomHook        string         `yaml:"room_hook"`
	DiscoverText    *string        `yaml:"discover_text"`
	Interaction     []string       `yaml:"interaction"`
	InteractionHook string         `yaml:"interaction_hook"`
	Locked          *LockDef       `yaml:"locked"`
	LockDiscovered  bool           `yaml:"lock_discovered"`
	UnlockText      string         `yaml:"unlock_text"`
	UnlockHook      string         `yaml:"unlock_hook"`
	Items           []ItemDef      `yaml:"items"`
	Features        []FeatureDef   `yaml:"features"`
	Props           map[string]any `yaml:",inline"`
}

// ItemDef is the serialized form of an item. Type names a registered item
// kind that supplies field defaults ("keychain").
type ItemDef struct {
	Type         string  `yaml:"type"`
	Name         string  `yaml:"name"`
	Description  string  `yaml:"description"`
	RoomText     string  `yaml:"room_text"`
	DiscoverText *string `yaml:"discover_text"`
	KeyCode      string  `yaml:"key_code"`
}

// ParseZoneBytes parses a zone definition from YAML bytes.
//
// Postcondition: Returns the raw definition; building and validation are
// separate steps (BuildZone) so scripting can load between them.
func ParseZoneBytes(data []byte) (*ZoneDef, error) {
	var file zoneFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing zone YAML: %w", err)
	}
	return &file.Zone, nil
}

// ParseZoneFile reads and parses a zone definition file.
func ParseZoneFile(path string) (*ZoneDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading zone file %s: %w", path, err)
	}
	def, err := ParseZoneBytes(data)
	if err != nil {
		return nil, fmt.Errorf("zone file %s: %w", path, err)
	}
	return def, nil
}

// DecodeProps re-marshals the definition's inline payload fields into a
// typed struct, so behavior factories get yaml-tagged decoding of their
// type-specific configuration.
func (d *FeatureDef) DecodeProps(out any) error {
	if len(d.Props) == 0 {
		return nil
	}
	data, err := yaml.Marshal(d.Props)
	if err != nil {
		return fmt.Errorf("encoding feature props for %q: %w", d.Name, err)
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		return fmt.Errorf("decoding feature props for %q: %w", d.Name, err)
	}
	return nil
}
