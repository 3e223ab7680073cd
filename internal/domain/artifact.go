package domain

import "time"

// PaletteArtifact is a saved palette snapshot.
type PaletteArtifact struct {
	Name      string    `json:"name"`
	Base      string    `json:"base"`
	Palette   Palette   `json:"palette"`
	CreatedAt time.Time `json:"created_at"`
}

// PaletteRef points at a saved artifact on disk.
type PaletteRef struct {
	ID   string
	Name string
	Path string
}

// Swatches is a named list of base colors exchanged as a file.
type Swatches struct {
	Name   string
	Colors []string
}
