package tui

import (
	"errors"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
)

var reLine = regexp.MustCompile(`(?i)\bline\s+(\d+)\b`)

// userMessage turns an error into a one-line status for the explorer.
func userMessage(err error) string {
	if err == nil {
		return ""
	}

	var oe *domain.OpError
	if errors.As(err, &oe) {
		switch oe.Kind {

		case domain.KindNotFound:
			if strings.Contains(oe.Op, "config.load_swatches") {
				return "Swatch file not found"
			}
			if strings.Contains(oe.Op, "workspacefinder") {
				return "Workspace not found"
			}
			if strings.Contains(oe.Op, "palettestore") {
				return "Palette not found"
			}
			return "Not found"

		case domain.KindInvalidHex:
			return "Invalid color (expected #RRGGBB)"

		case domain.KindInvalidConfig:
			if strings.Contains(oe.Op, "generate.save") {
				return "Saving palettes needs a workspace (:init)"
			}
			base := "config"
			if strings.TrimSpace(oe.Path) != "" {
				base = filepath.Base(oe.Path)
			}

			if line := extractLine(err.Error()); line != "" {
				return "Invalid file " + base + " line " + line
			}
			if field := extractField(err.Error()); field != "" {
				return "Invalid " + field + " in " + base
			}
			return "Invalid " + base

		default:
			return "Unexpected error (see logs)"
		}
	}

	if line := extractLine(err.Error()); line != "" && looksLikeParseProblem(err.Error()) {
		return "Invalid file line " + line
	}
	return "Unexpected error (see logs)"
}

func looksLikeParseProblem(s string) bool {
	ls := strings.ToLower(s)
	return strings.Contains(ls, "yaml:") || strings.Contains(ls, "toml:") || strings.Contains(ls, "cannot unmarshal")
}

func extractLine(s string) string {
	m := reLine.FindStringSubmatch(s)
	if len(m) == 2 {
		return m[1]
	}
	return ""
}

var reField = regexp.MustCompile(`\bcolors\[\d+\]`)

func extractField(s string) string {
	return reField.FindString(s)
}
