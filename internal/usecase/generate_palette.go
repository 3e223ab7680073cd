package usecase

import (
	"strings"
	"time"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
)

// GenerateOptions controls what happens after a palette is derived.
type GenerateOptions struct {
	Save bool
	Name string
}

// GenerateResult is a derived palette and, when saved, its artifact id.
type GenerateResult struct {
	Base    string
	Palette domain.Palette
	ID      string
}

type GeneratePalette struct {
	store ports.PaletteStore
	now   func() time.Time
}

// NewGeneratePalette wires the use case. store may be nil when saving is not
// needed.
func NewGeneratePalette(store ports.PaletteStore) *GeneratePalette {
	return &GeneratePalette{store: store, now: time.Now}
}

func (uc *GeneratePalette) Execute(base string, opts GenerateOptions) (GenerateResult, error) {
	p, err := palette.Generate(base)
	if err != nil {
		return GenerateResult{}, err
	}

	res := GenerateResult{Base: base, Palette: p}
	if !opts.Save {
		return res, nil
	}
	if uc.store == nil {
		return res, &domain.OpError{
			Op:   "usecase.generate.save",
			Kind: domain.KindInvalidConfig,
			Err:  errNoPaletteStore,
		}
	}

	name := strings.TrimSpace(opts.Name)
	if name == "" {
		name = strings.TrimPrefix(string(p[0]), "#")
	}

	id, err := uc.store.SavePalette(domain.PaletteArtifact{
		Name:      name,
		Base:      base,
		Palette:   p,
		CreatedAt: uc.now().UTC(),
	})
	res.ID = id
	return res, err
}
