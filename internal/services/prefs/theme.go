// Package prefs resolves device display preferences.
//
// Theme resolution mirrors what the web client does with local storage: an
// explicit light/dark choice wins; "system" defers to the client-reported
// OS preference; anything unrecognized falls back to light.
package prefs

import "github.com/lingokit/lingo-api/internal/models"

// ResolveTheme returns the effective theme for a device. systemPrefersDark
// is what the client reported via its media query (the server cannot know).
func ResolveTheme(stored models.Theme, systemPrefersDark bool) models.Theme {
	switch stored {
	case models.ThemeLight, models.ThemeDark:
		return stored
	case models.ThemeSystem:
		if systemPrefersDark {
			return models.ThemeDark
		}
		return models.ThemeLight
	default:
		return models.ThemeLight
	}
}
