package content

import "github.com/brr-dev/zenith/internal/game/world"

// newSink applies the sink type's defaults and keeps the default
// interaction flow. Sinks exist so kitchens and bathrooms have something
// to poke at; any contents still discover normally.
func newSink(def *world.FeatureDef) (world.Behavior, error) {
	if def.Name == "" {
		def.Name = "sink"
	}
	if len(def.Interaction) == 0 && def.InteractionHook == "" {
		def.Interaction = []string{"It's a sink. Not much else to say."}
	}
	return nil, nil
}
