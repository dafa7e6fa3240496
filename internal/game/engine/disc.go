package engine

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	"github.com/brr-dev/zenith/internal/game/world"
	"github.com/brr-dev/zenith/internal/scripting"
)

// Disc is one installable game: presentation metadata plus the deferred
// zone loaders. The name is a nod to swapping cartridges; a Disc is all
// an Engine needs to run a different game.
type Disc struct {
	Title       string
	Description string
	Welcome     []string
	Zones       world.ZoneMap
}

// discFile is the serialized form of a disc.
type discFile struct {
	Disc DiscDef `yaml:"disc"`
}

// DiscDef is the YAML shape of a disc: metadata plus zone file paths,
// relative to the disc file, in zone ID order.
type DiscDef struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Welcome     []string `yaml:"welcome"`
	Zones       []string `yaml:"zones"`
}

// DiscDeps are the collaborators zone construction needs.
type DiscDeps struct {
	// Behaviors resolves feature type names. nil rejects typed features.
	Behaviors world.BehaviorFactory
	// Items resolves item type names. nil rejects typed items.
	Items world.ItemFactory
	// Scripts hosts zone Lua VMs. nil rejects zones with a script_dir.
	Scripts *scripting.Manager
}

// LoadDisc reads a disc file and wires its zones into deferred loaders.
// Zone files are parsed, their scripts loaded, and their worlds built
// only when the engine first asks for that zone.
//
// Postcondition: Returns a Disc whose Zones map covers IDs 0..len-1.
func LoadDisc(path string, deps DiscDeps) (*Disc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading disc file %s: %w", path, err)
	}

	var file discFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parsing disc file %s: %w", path, err)
	}
	def := file.Disc

	if len(def.Zones) == 0 {
		return nil, fmt.Errorf("disc %s: no zones listed", path)
	}

	dir := filepath.Dir(path)
	zones := make(world.ZoneMap, len(def.Zones))
	for idx, zonePath := range def.Zones {
		zones[idx] = zoneLoadFunc(idx, filepath.Join(dir, zonePath), deps)
	}

	return &Disc{
		Title:       def.Title,
		Description: def.Description,
		Welcome:     def.Welcome,
		Zones:       zones,
	}, nil
}

// zoneLoadFunc defers a zone's parse/script-load/build chain until the
// engine asks for it.
func zoneLoadFunc(id int, path string, deps DiscDeps) world.LoadFunc {
	return func(ctx context.Context) (*world.Zone, error) {
		def, err := world.ParseZoneFile(path)
		if err != nil {
			return nil, err
		}
		if def.ID != id {
			return nil, fmt.Errorf("zone file %s: declares id %d, listed as zone %d", path, def.ID, id)
		}

		opts := world.BuildOptions{Behaviors: deps.Behaviors, Items: deps.Items}
		if def.ScriptDir != "" {
			if deps.Scripts == nil {
				return nil, fmt.Errorf("zone %d: script_dir set but scripting not configured", id)
			}
			scriptDir := filepath.Join(filepath.Dir(path), def.ScriptDir)
			if err := deps.Scripts.LoadZone(id, scriptDir, def.ScriptInstructionLimit); err != nil {
				return nil, err
			}
			opts.Hooks = deps.Scripts.Binder(id)
		}

		zone, err := world.BuildZone(def, opts)
		if err != nil {
			return nil, fmt.Errorf("zone file %s: %w", path, err)
		}
		return zone, nil
	}
}
