package tui

import (
	"fmt"
	"strings"
	"unicode/utf8"

	"github.com/charmbracelet/lipgloss"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/showcase"
)

func clampString(s string, maxLen int) string {
	if maxLen <= 0 {
		return ""
	}
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	var b strings.Builder
	b.Grow(len(s))

	n := 0
	for _, r := range s {
		if n >= maxLen {
			break
		}
		b.WriteRune(r)
		n++
	}
	return b.String() + "…"
}

// completeColor pads typed hex digits to a full color. Input with characters
// other than hex digits and a leading '#' is rejected.
func completeColor(s string) (string, bool) {
	raw := strings.ToUpper(strings.TrimSpace(s))
	if colorspace.NormalizeInput(raw) != "#"+strings.TrimPrefix(raw, "#") {
		return "", false
	}
	return colorspace.CompleteInput(raw)
}

func swatchStyle(fill domain.Hex) lipgloss.Style {
	return lipgloss.NewStyle().
		Background(lipgloss.Color(string(fill))).
		Foreground(lipgloss.Color(string(showcase.TextColor(fill))))
}

func renderPalette(p domain.Palette) string {
	var b strings.Builder
	for i, step := range palette.Recipe() {
		if i > 0 {
			b.WriteString("\n")
		}
		b.WriteString(fmt.Sprintf("%2d ", step.Slot))
		b.WriteString(swatchStyle(p[i]).Width(10).Render(" " + string(p[i])))
		b.WriteString(" ")
		b.WriteString(step.Name)
	}
	return b.String()
}

func renderGradient(g showcase.Gradient) string {
	var b strings.Builder
	for _, stop := range g.Stops {
		b.WriteString(lipgloss.NewStyle().Background(lipgloss.Color(string(stop))).Render("  "))
	}
	return b.String()
}

func renderShowcase(sc showcase.Showcase) string {
	roles := make([]string, 0, len(sc.Swatches))
	for _, s := range sc.Swatches {
		roles = append(roles, swatchStyle(s.Fill).Padding(0, 1).Render(string(s.Role)))
	}

	var b strings.Builder
	b.WriteString(strings.Join(roles, " "))
	for _, g := range sc.Gradients {
		b.WriteString("\n")
		b.WriteString(renderGradient(g))
		b.WriteString(fmt.Sprintf(" %s → %s", g.From, g.To))
	}
	b.WriteString("\ntranslucent ")
	b.WriteString(sc.Translucent)
	return b.String()
}
