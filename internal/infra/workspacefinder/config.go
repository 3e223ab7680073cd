package workspacefinder

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
	"gopkg.in/yaml.v3"
)

// ConfigFile marks a workspace root.
const ConfigFile = "brutalist.yaml"

var formats = map[string]bool{"pretty": true, "json": true, "css": true}

// LoadConfig loads brutalist.yaml from the workspace root and applies defaults.
func LoadConfig(root string) (domain.Config, error) {
	cfg := domain.DefaultConfig()

	path := filepath.Join(root, ConfigFile)
	b, err := os.ReadFile(path)
	if err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var y yamlConfig
	if err := yaml.Unmarshal(b, &y); err != nil {
		return cfg, &domain.OpError{
			Op:   "workspacefinder.loadconfig",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	c := y.Brutalist
	if base := strings.TrimSpace(c.Defaults.Base); base != "" {
		if _, err := colorspace.DecodeHex(base); err != nil {
			return cfg, invalid(path, "brutalist.defaults.base", fmt.Sprintf("%q is not a 6-digit hex color", base))
		}
		cfg.Defaults.Base = base
	}
	if f := strings.ToLower(strings.TrimSpace(c.Defaults.Format)); f != "" {
		if !formats[f] {
			return cfg, invalid(path, "brutalist.defaults.format", fmt.Sprintf("unknown format %q", f))
		}
		cfg.Defaults.Format = f
	}
	if c.Paths.PalettesDir != "" {
		cfg.Paths.PalettesDir = c.Paths.PalettesDir
	}
	if c.Paths.LibraryFile != "" {
		cfg.Paths.LibraryFile = c.Paths.LibraryFile
	}
	if c.Store.Index != nil {
		cfg.Store.Index = *c.Store.Index
	}

	return cfg, nil
}

func invalid(path, field, msg string) error {
	return &domain.OpError{
		Op:   "workspacefinder.loadconfig",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}

type yamlConfig struct {
	Brutalist struct {
		Defaults struct {
			Base   string `yaml:"base"`
			Format string `yaml:"format"`
		} `yaml:"defaults"`

		Paths struct {
			PalettesDir string `yaml:"palettes_dir"`
			LibraryFile string `yaml:"library_file"`
		} `yaml:"paths"`

		Store struct {
			Index *bool `yaml:"index"`
		} `yaml:"store"`
	} `yaml:"brutalist"`
}
