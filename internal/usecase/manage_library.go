package usecase

import (
	"strings"
	"time"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
)

// ManageLibrary keeps the saved base colors, the current selection and the
// theme flag. Every mutating call loads, changes and saves the whole library,
// returning the new state.
type ManageLibrary struct {
	store ports.LibraryStore
	now   func() time.Time
}

func NewManageLibrary(store ports.LibraryStore) *ManageLibrary {
	return &ManageLibrary{store: store, now: time.Now}
}

// Load returns the stored library, seeding and saving the default color when
// nothing is stored yet.
func (uc *ManageLibrary) Load() (domain.Library, error) {
	if uc.store == nil {
		return domain.Library{}, &domain.OpError{Op: "usecase.library.load", Kind: domain.KindInvalidConfig, Err: errNoLibraryStore}
	}

	lib, err := uc.store.Load()
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return domain.Library{}, err
	}

	if len(lib.Colors) == 0 {
		lib.Colors = []domain.BaseColor{uc.newEntry(domain.DefaultBaseColor, nil)}
		if lib.Current == "" {
			lib.Current = domain.DefaultBaseColor
		}
		if err := uc.store.Save(lib); err != nil {
			return domain.Library{}, err
		}
	}
	return lib, nil
}

// Add saves color unless an entry with the same value (any case) exists.
// It reports whether the library changed.
func (uc *ManageLibrary) Add(color string) (domain.Library, bool, error) {
	norm, err := validColor("usecase.library.add", color)
	if err != nil {
		return domain.Library{}, false, err
	}

	lib, err := uc.Load()
	if err != nil {
		return domain.Library{}, false, err
	}
	if _, exists := lib.Find(norm); exists {
		return lib, false, nil
	}

	lib = lib.Clone()
	lib.Colors = append(lib.Colors, uc.newEntry(norm, lib.Colors))
	if err := uc.store.Save(lib); err != nil {
		return domain.Library{}, false, err
	}
	return lib, true, nil
}

// Select makes color the current base color. It does not need to be saved.
func (uc *ManageLibrary) Select(color string) (domain.Library, error) {
	norm, err := validColor("usecase.library.select", color)
	if err != nil {
		return domain.Library{}, err
	}

	lib, err := uc.Load()
	if err != nil {
		return domain.Library{}, err
	}
	if saved, ok := lib.Find(norm); ok {
		norm = saved.Color
	}
	lib.Current = norm
	if err := uc.store.Save(lib); err != nil {
		return domain.Library{}, err
	}
	return lib, nil
}

// Delete removes the entry with id. An emptied library is reseeded with the
// default color, and a removed current color falls back to the first entry.
func (uc *ManageLibrary) Delete(id int64) (domain.Library, error) {
	lib, err := uc.Load()
	if err != nil {
		return domain.Library{}, err
	}

	kept := make([]domain.BaseColor, 0, len(lib.Colors))
	found := false
	for _, c := range lib.Colors {
		if c.ID == id {
			found = true
			continue
		}
		kept = append(kept, c)
	}
	if !found {
		return lib, &domain.OpError{
			Op:   "usecase.library.delete",
			Kind: domain.KindNotFound,
			Err:  domain.ErrNotFound,
		}
	}

	if len(kept) == 0 {
		kept = []domain.BaseColor{uc.newEntry(domain.DefaultBaseColor, nil)}
	}
	lib.Colors = kept

	if _, ok := lib.Find(lib.Current); !ok {
		lib.Current = lib.Colors[0].Color
	}

	if err := uc.store.Save(lib); err != nil {
		return domain.Library{}, err
	}
	return lib, nil
}

// SetDarkMode persists the theme flag.
func (uc *ManageLibrary) SetDarkMode(dark bool) (domain.Library, error) {
	lib, err := uc.Load()
	if err != nil {
		return domain.Library{}, err
	}
	lib.DarkMode = dark
	if err := uc.store.Save(lib); err != nil {
		return domain.Library{}, err
	}
	return lib, nil
}

// CurrentColor picks the base color to show: the selection, else the first
// saved color, else fallback.
func CurrentColor(lib domain.Library, fallback string) string {
	if strings.TrimSpace(lib.Current) != "" {
		return lib.Current
	}
	if len(lib.Colors) > 0 {
		return lib.Colors[0].Color
	}
	return fallback
}

func (uc *ManageLibrary) newEntry(color string, existing []domain.BaseColor) domain.BaseColor {
	id := uc.now().UnixMilli()
	for _, c := range existing {
		if c.ID >= id {
			id = c.ID + 1
		}
	}
	return domain.BaseColor{ID: id, Color: color}
}

// validColor requires a full 6-digit color and returns it as "#RRGGBB".
func validColor(op, color string) (string, error) {
	rgb, err := colorspace.DecodeHex(strings.TrimSpace(color))
	if err != nil {
		return "", domain.InvalidHex(op, color)
	}
	return colorspace.EncodeHex(rgb).Upper(), nil
}
