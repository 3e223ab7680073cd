package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
)

// SwatchFiles reads and writes swatch files. The codec follows the file
// extension: .yaml/.yml, .toml, or .css (read only).
type SwatchFiles struct{}

func NewSwatchFiles() *SwatchFiles {
	return &SwatchFiles{}
}

var _ ports.SwatchLoader = (*SwatchFiles)(nil)

func (SwatchFiles) LoadSwatches(path string) (domain.Swatches, error) {
	return LoadSwatches(path)
}

func (SwatchFiles) WriteSwatches(path string, sw domain.Swatches) error {
	return WriteSwatches(path, sw)
}

func LoadSwatches(path string) (domain.Swatches, error) {
	f, err := formatOf(path)
	if err != nil {
		return domain.Swatches{}, err
	}

	b, err := os.ReadFile(path)
	if err != nil {
		kind := domain.KindExecution
		if errors.Is(err, os.ErrNotExist) {
			kind = domain.KindNotFound
		}
		return domain.Swatches{}, &domain.OpError{
			Op:   "config.load_swatches",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	dto, err := decodeSwatches(f, b)
	if err != nil {
		return domain.Swatches{}, &domain.OpError{
			Op:   "config.load_swatches",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapSwatches(path, dto)
}

func WriteSwatches(path string, sw domain.Swatches) error {
	f, err := formatOf(path)
	if err != nil {
		return err
	}

	b, err := encodeSwatches(f, UnmapSwatches(sw))
	if err != nil {
		kind := domain.KindExecution
		if f == formatCSS {
			kind = domain.KindInvalidConfig
		}
		return &domain.OpError{
			Op:   "config.write_swatches",
			Kind: kind,
			Path: path,
			Err:  err,
		}
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return &domain.OpError{
				Op:   "config.write_swatches",
				Kind: domain.KindExecution,
				Path: dir,
				Err:  err,
			}
		}
	}

	if err := os.WriteFile(path, b, 0o644); err != nil {
		return &domain.OpError{
			Op:   "config.write_swatches",
			Kind: domain.KindExecution,
			Path: path,
			Err:  err,
		}
	}
	return nil
}
