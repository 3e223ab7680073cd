package libstore

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/ports"
)

const defaultLibraryFile = ".brutalist/library.json"

// Keys written by the store. Other top-level keys in the file are kept as-is
// on save.
const (
	keyColors   = "base_colors"
	keyCurrent  = "current"
	keyDarkMode = "dark_mode"
)

// FileStore keeps the library as a flat JSON object of keys.
type FileStore struct {
	path string
}

func NewFileStore(root string, cfg domain.Config) *FileStore {
	file := cfg.Paths.LibraryFile
	if strings.TrimSpace(file) == "" {
		file = defaultLibraryFile
	}
	if !filepath.IsAbs(file) {
		file = filepath.Join(root, filepath.FromSlash(file))
	}
	return &FileStore{path: file}
}

var _ ports.LibraryStore = (*FileStore)(nil)

func (s *FileStore) Path() string { return s.path }

func (s *FileStore) Load() (domain.Library, error) {
	kv, err := s.readKV()
	if err != nil {
		return domain.Library{}, err
	}

	var lib domain.Library
	if raw, ok := kv[keyColors]; ok {
		if err := json.Unmarshal(raw, &lib.Colors); err != nil {
			return domain.Library{}, s.decodeErr(keyColors, err)
		}
	}
	if raw, ok := kv[keyCurrent]; ok {
		if err := json.Unmarshal(raw, &lib.Current); err != nil {
			return domain.Library{}, s.decodeErr(keyCurrent, err)
		}
	}
	if raw, ok := kv[keyDarkMode]; ok {
		if err := json.Unmarshal(raw, &lib.DarkMode); err != nil {
			return domain.Library{}, s.decodeErr(keyDarkMode, err)
		}
	}
	return lib, nil
}

func (s *FileStore) Save(lib domain.Library) error {
	kv, err := s.readKV()
	if err != nil && !domain.IsKind(err, domain.KindNotFound) {
		return err
	}
	if kv == nil {
		kv = map[string]json.RawMessage{}
	}

	colors := lib.Colors
	if colors == nil {
		colors = []domain.BaseColor{}
	}
	for key, v := range map[string]any{
		keyColors:   colors,
		keyCurrent:  lib.Current,
		keyDarkMode: lib.DarkMode,
	} {
		b, err := json.Marshal(v)
		if err != nil {
			return &domain.OpError{Op: "libstore.marshal", Kind: domain.KindExecution, Path: s.path, Err: err}
		}
		kv[key] = b
	}

	b, err := json.MarshalIndent(kv, "", "  ")
	if err != nil {
		return &domain.OpError{Op: "libstore.marshal", Kind: domain.KindExecution, Path: s.path, Err: err}
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return &domain.OpError{Op: "libstore.mkdir", Kind: domain.KindExecution, Path: filepath.Dir(s.path), Err: err}
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, append(b, '\n'), 0o600); err != nil {
		return &domain.OpError{Op: "libstore.write", Kind: domain.KindExecution, Path: tmp, Err: err}
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return &domain.OpError{Op: "libstore.rename", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	return nil
}

func (s *FileStore) readKV() (map[string]json.RawMessage, error) {
	b, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, &domain.OpError{Op: "libstore.load", Kind: domain.KindNotFound, Path: s.path, Err: domain.ErrNotFound}
		}
		return nil, &domain.OpError{Op: "libstore.load", Kind: domain.KindExecution, Path: s.path, Err: err}
	}
	if len(strings.TrimSpace(string(b))) == 0 {
		return map[string]json.RawMessage{}, nil
	}

	var kv map[string]json.RawMessage
	if err := json.Unmarshal(b, &kv); err != nil {
		return nil, &domain.OpError{Op: "libstore.decode", Kind: domain.KindInvalidConfig, Path: s.path, Err: err}
	}
	return kv, nil
}

func (s *FileStore) decodeErr(key string, err error) error {
	return &domain.OpError{
		Op:   "libstore.decode",
		Kind: domain.KindInvalidConfig,
		Path: s.path,
		Err:  errors.Join(errors.New(key), err),
	}
}
