package ports

import "github.com/sklarow/brutalist-color-pallete/internal/domain"

// SwatchLoader reads and writes swatch files (e.g., YAML on disk).
type SwatchLoader interface {
	LoadSwatches(path string) (domain.Swatches, error)
	WriteSwatches(path string, s domain.Swatches) error
}
