package config

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
)

// MapSwatches validates every entry before anything is returned, so a file
// with one bad color is rejected as a whole.
func MapSwatches(path string, ys YAMLSwatches) (domain.Swatches, error) {
	name := strings.TrimSpace(ys.Name)
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	sw := domain.Swatches{Name: name, Colors: make([]string, 0, len(ys.Colors))}
	for i, c := range ys.Colors {
		field := fmt.Sprintf("colors[%d]", i)
		c = strings.TrimSpace(c)
		if c == "" {
			return domain.Swatches{}, invalidField(path, field, "color is required")
		}
		if _, err := colorspace.DecodeHex(c); err != nil {
			return domain.Swatches{}, invalidField(path, field, fmt.Sprintf("%q is not a 6-digit hex color", c))
		}
		sw.Colors = append(sw.Colors, c)
	}
	return sw, nil
}

func UnmapSwatches(sw domain.Swatches) YAMLSwatches {
	colors := sw.Colors
	if colors == nil {
		colors = []string{}
	}
	return YAMLSwatches{Name: sw.Name, Colors: colors}
}

func invalidField(path, field, msg string) error {
	return &domain.OpError{
		Op:   "config.map",
		Kind: domain.KindInvalidConfig,
		Path: path,
		Err:  fmt.Errorf("field %s: %s: %w", field, msg, domain.ErrInvalidConfig),
	}
}
