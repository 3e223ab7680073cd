package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/aymerick/douceur/css"
	"github.com/aymerick/douceur/parser"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
)

type format string

const (
	formatYAML format = "yaml"
	formatTOML format = "toml"
	formatCSS  format = "css"
)

func formatOf(path string) (format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return formatYAML, nil
	case ".toml":
		return formatTOML, nil
	case ".css":
		return formatCSS, nil
	default:
		return "", &domain.OpError{
			Op:   "config.format",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  fmt.Errorf("unsupported swatch file extension %q: %w", filepath.Ext(path), domain.ErrInvalidConfig),
		}
	}
}

func decodeSwatches(f format, b []byte) (YAMLSwatches, error) {
	var dto YAMLSwatches
	switch f {
	case formatTOML:
		err := toml.Unmarshal(b, &dto)
		return dto, err
	case formatCSS:
		return decodeCSS(string(b))
	default:
		err := yaml.Unmarshal(b, &dto)
		return dto, err
	}
}

func encodeSwatches(f format, dto YAMLSwatches) ([]byte, error) {
	switch f {
	case formatTOML:
		return toml.Marshal(dto)
	case formatCSS:
		return nil, fmt.Errorf("css swatches are import only: %w", domain.ErrInvalidConfig)
	default:
		return yaml.Marshal(dto)
	}
}

// decodeCSS collects every declaration value that is a 6-digit hex color, in
// source order and without duplicates. Nested at-rule bodies are walked.
func decodeCSS(src string) (YAMLSwatches, error) {
	sheet, err := parser.Parse(src)
	if err != nil {
		return YAMLSwatches{}, err
	}

	var dto YAMLSwatches
	seen := map[string]bool{}
	var walk func(rules []*css.Rule)
	walk = func(rules []*css.Rule) {
		for _, r := range rules {
			for _, d := range r.Declarations {
				v := strings.TrimSpace(d.Value)
				if _, err := colorspace.DecodeHex(v); err != nil || !strings.HasPrefix(v, "#") {
					continue
				}
				key := strings.ToUpper(v)
				if seen[key] {
					continue
				}
				seen[key] = true
				dto.Colors = append(dto.Colors, v)
			}
			walk(r.Rules)
		}
	}
	walk(sheet.Rules)
	return dto, nil
}
