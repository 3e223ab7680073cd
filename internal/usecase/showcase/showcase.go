// Package showcase maps a palette onto the UI roles and sample elements that
// present it: role swatches with readable text, gradient bars and a
// translucent fill.
package showcase

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
)

const (
	// TranslucentAlpha is the opacity suffix appended for tinted fills (25%).
	TranslucentAlpha = "40"

	textDark  domain.Hex = "#000000"
	textLight domain.Hex = "#ffffff"

	brightnessThreshold = 128
)

// Swatch is a role color plus the text color to draw on top of it.
type Swatch struct {
	Role domain.Role
	Slot int
	Fill domain.Hex
	Text domain.Hex
}

// Gradient is a two-stop bar sampled into evenly spaced colors.
type Gradient struct {
	From  domain.Hex
	To    domain.Hex
	Stops []domain.Hex
}

// Showcase is everything a renderer needs to preview a palette.
type Showcase struct {
	Swatches    []Swatch
	Gradients   []Gradient
	Translucent string
}

// Build derives the showcase for p. steps is the number of samples per
// gradient bar (minimum 2).
func Build(p domain.Palette, steps int) (Showcase, error) {
	sc := Showcase{
		Swatches:    make([]Swatch, 0, len(domain.Roles())),
		Translucent: WithOpacity(p.Role(domain.RoleLight), TranslucentAlpha),
	}

	for _, r := range domain.Roles() {
		fill := p.Role(r)
		sc.Swatches = append(sc.Swatches, Swatch{
			Role: r,
			Slot: domain.RoleSlots[r],
			Fill: fill,
			Text: TextColor(fill),
		})
	}

	for _, pair := range [][2]int{{1, 2}, {4, 6}} {
		from, _ := p.Slot(pair[0])
		to, _ := p.Slot(pair[1])
		stops, err := Blend(from, to, steps)
		if err != nil {
			return Showcase{}, err
		}
		sc.Gradients = append(sc.Gradients, Gradient{From: from, To: to, Stops: stops})
	}

	return sc, nil
}

// IsLight reports whether h reads as a light background (YIQ brightness above
// 128). Undecodable input counts as dark.
func IsLight(h domain.Hex) bool {
	rgb, err := colorspace.DecodeHex(string(h))
	if err != nil {
		return false
	}
	brightness := float64(rgb.R*299+rgb.G*587+rgb.B*114) / 1000
	return brightness > brightnessThreshold
}

// TextColor picks black or white text for a background.
func TextColor(bg domain.Hex) domain.Hex {
	if IsLight(bg) {
		return textDark
	}
	return textLight
}

// WithOpacity appends a two-digit alpha suffix ("#rrggbb" + "40").
func WithOpacity(h domain.Hex, alpha string) string {
	return string(h) + alpha
}

// Blend samples a straight RGB ramp between two colors, endpoints included,
// matching a CSS linear-gradient.
func Blend(from, to domain.Hex, steps int) ([]domain.Hex, error) {
	if steps < 2 {
		steps = 2
	}

	a, err := colorful.Hex(string(from))
	if err != nil {
		return nil, domain.InvalidHex("showcase.blend", string(from))
	}
	b, err := colorful.Hex(string(to))
	if err != nil {
		return nil, domain.InvalidHex("showcase.blend", string(to))
	}

	out := make([]domain.Hex, 0, steps)
	for i := 0; i < steps; i++ {
		t := float64(i) / float64(steps-1)
		out = append(out, domain.Hex(a.BlendRgb(b, t).Clamped().Hex()))
	}
	return out, nil
}

// ContrastRatio is the WCAG 2 contrast ratio between two colors (1..21).
func ContrastRatio(a, b domain.Hex) (float64, error) {
	la, err := luminance(a)
	if err != nil {
		return 0, err
	}
	lb, err := luminance(b)
	if err != nil {
		return 0, err
	}
	if la < lb {
		la, lb = lb, la
	}
	return (la + 0.05) / (lb + 0.05), nil
}

func luminance(h domain.Hex) (float64, error) {
	c, err := colorful.Hex(string(h))
	if err != nil {
		return 0, domain.InvalidHex("showcase.luminance", string(h))
	}
	r, g, b := c.LinearRgb()
	return 0.2126*r + 0.7152*g + 0.0722*b, nil
}

// Describe renders a one-line summary of a swatch for logs and plain output.
func (s Swatch) Describe() string {
	return fmt.Sprintf("%-7s slot %-2d %s on %s", s.Role, s.Slot, s.Text, s.Fill)
}
