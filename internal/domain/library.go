package domain

import "strings"

// DefaultBaseColor seeds an empty library.
const DefaultBaseColor = "#FF0000"

// BaseColor is one saved base color.
type BaseColor struct {
	ID    int64  `json:"id"`
	Color string `json:"color"`
}

// Library is the user's session state: saved base colors, the selected one and
// the theme preference. It is owned by the caller and persisted through
// ports.LibraryStore; palette generation never reads it.
type Library struct {
	Colors   []BaseColor `json:"base_colors"`
	Current  string      `json:"current"`
	DarkMode bool        `json:"dark_mode"`
}

// Find returns the saved entry matching color case-insensitively.
func (l Library) Find(color string) (BaseColor, bool) {
	for _, c := range l.Colors {
		if strings.EqualFold(c.Color, color) {
			return c, true
		}
	}
	return BaseColor{}, false
}

// Clone returns a copy that does not share the Colors backing array.
func (l Library) Clone() Library {
	out := l
	out.Colors = make([]BaseColor, len(l.Colors))
	copy(out.Colors, l.Colors)
	return out
}
