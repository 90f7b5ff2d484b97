package client

import (
	"github.com/vodex-console/lib/localstore"
)

// Theme is the console's display theme preference.
type Theme string

const (
	ThemeLight  Theme = "light"
	ThemeDark   Theme = "dark"
	ThemeSystem Theme = "system"
)

// Preferences persists operator UI preferences across restarts.
type Preferences struct {
	store *localstore.Store
}

// NewPreferences creates a preferences accessor over the persisted store.
func NewPreferences(store *localstore.Store) *Preferences {
	return &Preferences{store: store}
}

// Theme returns the stored theme preference, defaulting to the system
// theme. An unrecognized stored value also falls back to system.
func (p *Preferences) Theme() Theme {
	value, ok, err := p.store.Get(keyTheme)
	if err != nil || !ok {
		return ThemeSystem
	}
	switch Theme(value) {
	case ThemeLight, ThemeDark, ThemeSystem:
		return Theme(value)
	default:
		return ThemeSystem
	}
}

// SetTheme stores the theme preference.
func (p *Preferences) SetTheme(theme Theme) error {
	return p.store.Set(keyTheme, string(theme))
}
