package usecase

import (
	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
)

// ImportResult summarizes a swatch import.
type ImportResult struct {
	Name    string
	Added   []string
	Skipped []string
	Library domain.Library
}

type ImportSwatches struct {
	loader  ports.SwatchLoader
	library *ManageLibrary
}

func NewImportSwatches(loader ports.SwatchLoader, store ports.LibraryStore) *ImportSwatches {
	return &ImportSwatches{loader: loader, library: NewManageLibrary(store)}
}

// Execute adds every color from the file that is not already saved. The file
// is validated as a whole first, so a bad entry imports nothing.
func (uc *ImportSwatches) Execute(path string) (ImportResult, error) {
	sw, err := uc.loader.LoadSwatches(path)
	if err != nil {
		return ImportResult{}, err
	}

	for _, c := range sw.Colors {
		if _, err := validColor("usecase.swatches.import", c); err != nil {
			return ImportResult{}, err
		}
	}

	res := ImportResult{Name: sw.Name}
	for _, c := range sw.Colors {
		lib, added, err := uc.library.Add(c)
		if err != nil {
			return res, err
		}
		res.Library = lib
		if added {
			res.Added = append(res.Added, c)
		} else {
			res.Skipped = append(res.Skipped, c)
		}
	}
	if len(sw.Colors) == 0 {
		lib, err := uc.library.Load()
		if err != nil {
			return res, err
		}
		res.Library = lib
	}
	return res, nil
}

type ExportSwatches struct {
	loader  ports.SwatchLoader
	library *ManageLibrary
}

func NewExportSwatches(loader ports.SwatchLoader, store ports.LibraryStore) *ExportSwatches {
	return &ExportSwatches{loader: loader, library: NewManageLibrary(store)}
}

// Execute writes the saved colors, in library order, to path.
func (uc *ExportSwatches) Execute(path, name string) (domain.Swatches, error) {
	lib, err := uc.library.Load()
	if err != nil {
		return domain.Swatches{}, err
	}

	sw := domain.Swatches{Name: name, Colors: make([]string, 0, len(lib.Colors))}
	for _, c := range lib.Colors {
		sw.Colors = append(sw.Colors, c.Color)
	}
	if err := uc.loader.WriteSwatches(path, sw); err != nil {
		return domain.Swatches{}, err
	}
	return sw, nil
}
