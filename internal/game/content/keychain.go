package content

import "github.com/brr-dev/zenith/internal/game/world"

// newKeychain applies the keychain type's defaults. A keychain is a plain
// item, typically carrying a key_code, that only defaults its name.
func newKeychain(def *world.ItemDef) error {
	if def.Name == "" {
		def.Name = "keychain"
	}
	return nil
}
