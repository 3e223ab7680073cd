package palettestore

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
)

const (
	defaultPalettesDir = "palettes"
	indexFile          = "index.jsonl"
	stampLayout        = "20060102T150405Z"
)

type JSONStore struct {
	rootDir    string
	dirName    string
	writeIndex bool
	now        func() time.Time
}

type Option func(*JSONStore)

// WithIndex enables palettes/index.jsonl.
func WithIndex(enabled bool) Option {
	return func(s *JSONStore) { s.writeIndex = enabled }
}

// WithNow is useful for tests.
func WithNow(now func() time.Time) Option {
	return func(s *JSONStore) { s.now = now }
}

func NewJSONStore(root string, cfg domain.Config, opts ...Option) *JSONStore {
	dir := cfg.Paths.PalettesDir
	if strings.TrimSpace(dir) == "" {
		dir = defaultPalettesDir
	}

	s := &JSONStore{
		rootDir:    root,
		dirName:    dir,
		writeIndex: cfg.Store.Index,
		now:        time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

var _ ports.PaletteStore = (*JSONStore)(nil)

func (s *JSONStore) dir() string {
	if filepath.IsAbs(s.dirName) {
		return s.dirName
	}
	return filepath.Join(s.rootDir, s.dirName)
}

func (s *JSONStore) SavePalette(a domain.PaletteArtifact) (string, error) {
	dir := s.dir()
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", &domain.OpError{Op: "palettestore.mkdir", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	if a.CreatedAt.IsZero() {
		a.CreatedAt = s.now()
	}
	a.CreatedAt = a.CreatedAt.UTC()

	slug := slugify(a.Name)
	if slug == "" {
		slug = slugify(strings.TrimPrefix(string(a.Palette[0]), "#"))
	}
	if slug == "" {
		slug = "palette"
	}

	id := fmt.Sprintf("%s_%s", a.CreatedAt.Format(stampLayout), slug)
	path := filepath.Join(dir, id+".json")
	for n := 2; fileExists(path); n++ {
		id = fmt.Sprintf("%s_%s_%d", a.CreatedAt.Format(stampLayout), slug, n)
		path = filepath.Join(dir, id+".json")
	}

	b, err := json.MarshalIndent(a, "", "  ")
	if err != nil {
		return "", &domain.OpError{Op: "palettestore.marshal", Kind: domain.KindExecution, Path: path, Err: err}
	}

	if err := writeAtomic(path, b); err != nil {
		return "", err
	}

	if s.writeIndex {
		_ = s.appendIndex(dir, id, a)
	}
	return id, nil
}

// ListPalettes returns saved palettes, newest first. Files that do not decode
// as artifacts are skipped.
func (s *JSONStore) ListPalettes() ([]domain.PaletteRef, error) {
	dir := s.dir()
	entries, err := os.ReadDir(dir)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return []domain.PaletteRef{}, nil
		}
		return nil, &domain.OpError{Op: "palettestore.list", Kind: domain.KindExecution, Path: dir, Err: err}
	}

	out := make([]domain.PaletteRef, 0, len(entries))
	for _, e := range entries {
		if e.IsDir() || filepath.Ext(e.Name()) != ".json" {
			continue
		}
		path := filepath.Join(dir, e.Name())
		a, err := readArtifact(path)
		if err != nil {
			continue
		}
		out = append(out, domain.PaletteRef{
			ID:   strings.TrimSuffix(e.Name(), ".json"),
			Name: a.Name,
			Path: path,
		})
	}

	sort.Slice(out, func(i, j int) bool { return out[i].ID > out[j].ID })
	return out, nil
}

// LoadPalette reads one artifact by id.
func (s *JSONStore) LoadPalette(id string) (domain.PaletteArtifact, error) {
	path := filepath.Join(s.dir(), filepath.Base(id)+".json")
	a, err := readArtifact(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return domain.PaletteArtifact{}, &domain.OpError{Op: "palettestore.load", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
		}
		return domain.PaletteArtifact{}, &domain.OpError{Op: "palettestore.load", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return a, nil
}

func readArtifact(path string) (domain.PaletteArtifact, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.PaletteArtifact{}, err
	}
	var a domain.PaletteArtifact
	if err := json.Unmarshal(b, &a); err != nil {
		return domain.PaletteArtifact{}, err
	}
	return a, nil
}

func (s *JSONStore) appendIndex(dir, id string, a domain.PaletteArtifact) error {
	type idx struct {
		ID        string    `json:"id"`
		File      string    `json:"file"`
		Name      string    `json:"name"`
		Base      string    `json:"base"`
		CreatedAt time.Time `json:"created_at"`
	}
	line, err := json.Marshal(idx{
		ID:        id,
		File:      id + ".json",
		Name:      a.Name,
		Base:      a.Base,
		CreatedAt: a.CreatedAt,
	})
	if err != nil {
		return err
	}

	f, err := os.OpenFile(filepath.Join(dir, indexFile), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return err
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

// writeAtomic writes to a tmp file then renames it over path.
func writeAtomic(path string, b []byte) error {
	tmp := path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o600); err != nil {
		return &domain.OpError{Op: "palettestore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "palettestore.rename", Kind: domain.KindExecution, Path: path, Err: err}
	}
	return nil
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// slugify produces a safe filename component.
func slugify(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))

	var b strings.Builder
	b.Grow(len(s))
	lastDash := false
	for _, r := range s {
		if (r >= 'a' && r <= 'z') || (r >= '0' && r <= '9') {
			b.WriteRune(r)
			lastDash = false
			continue
		}
		if !lastDash {
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.Trim(b.String(), "-")
}
