package ports

import "github.com/sklarow/brutalist-color-pallete/internal/domain"

// LibraryStore persists the saved base colors and UI preferences.
type LibraryStore interface {
	// Load returns the stored library. A missing store is reported as a
	// domain.KindNotFound error so callers can seed defaults.
	Load() (domain.Library, error)
	Save(lib domain.Library) error
}
