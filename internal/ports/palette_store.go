package ports

import "github.com/sklarow/brutalist-color-pallete/internal/domain"

// PaletteStore persists generated palettes as artifacts.
type PaletteStore interface {
	SavePalette(a domain.PaletteArtifact) (id string, err error)
	ListPalettes() ([]domain.PaletteRef, error)
	LoadPalette(id string) (domain.PaletteArtifact, error)
}
