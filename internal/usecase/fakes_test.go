package usecase

import (
	"errors"
	"time"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
)

type fakeLibraryStore struct {
	lib     domain.Library
	exists  bool
	saves   int
	saveErr error
	loadErr error
}

func (f *fakeLibraryStore) Load() (domain.Library, error) {
	if f.loadErr != nil {
		return domain.Library{}, f.loadErr
	}
	if !f.exists {
		return domain.Library{}, &domain.OpError{Op: "fake.load", Kind: domain.KindNotFound, Err: domain.ErrNotFound}
	}
	return f.lib.Clone(), nil
}

func (f *fakeLibraryStore) Save(lib domain.Library) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.lib = lib.Clone()
	f.exists = true
	f.saves++
	return nil
}

type fakePaletteStore struct {
	saved []domain.PaletteArtifact
	err   error
}

func (f *fakePaletteStore) SavePalette(a domain.PaletteArtifact) (string, error) {
	if f.err != nil {
		return "", f.err
	}
	f.saved = append(f.saved, a)
	return "20260101T000000Z_" + a.Name, nil
}

func (f *fakePaletteStore) ListPalettes() ([]domain.PaletteRef, error) {
	return nil, nil
}

func (f *fakePaletteStore) LoadPalette(id string) (domain.PaletteArtifact, error) {
	return domain.PaletteArtifact{}, domain.ErrNotFound
}

type fakeSwatchLoader struct {
	in      domain.Swatches
	loadErr error
	written domain.Swatches
	path    string
}

func (f *fakeSwatchLoader) LoadSwatches(path string) (domain.Swatches, error) {
	if f.loadErr != nil {
		return domain.Swatches{}, f.loadErr
	}
	return f.in, nil
}

func (f *fakeSwatchLoader) WriteSwatches(path string, s domain.Swatches) error {
	f.path = path
	f.written = s
	return nil
}

func fixedClock(ms int64) func() time.Time {
	return func() time.Time { return time.UnixMilli(ms) }
}

var errBoom = errors.New("boom")
