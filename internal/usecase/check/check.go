// Package check evaluates how readable the showcase pairings of a palette are.
package check

import (
	"fmt"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/showcase"
)

// WCAG 2 thresholds.
const (
	MinContrastAA      = 4.5
	MinContrastAALarge = 3.0
)

// Result is the outcome of one pairing.
type Result struct {
	Name    string
	Passed  bool
	Ratio   float64
	Message string
}

// Contrast checks fg on bg against min.
func Contrast(name string, fg, bg domain.Hex, min float64) Result {
	ratio, err := showcase.ContrastRatio(fg, bg)
	if err != nil {
		return Result{
			Name:    name,
			Passed:  false,
			Message: fmt.Sprintf("cannot compare %s on %s: %v", fg, bg, err),
		}
	}

	if ratio >= min {
		return Result{
			Name:    name,
			Passed:  true,
			Ratio:   ratio,
			Message: fmt.Sprintf("%s on %s %.2f:1 >= %.1f:1", fg, bg, ratio, min),
		}
	}
	return Result{
		Name:    name,
		Passed:  false,
		Ratio:   ratio,
		Message: fmt.Sprintf("expected contrast >= %.1f:1, got %.2f:1 (%s on %s)", min, ratio, fg, bg),
	}
}

// Evaluate checks every role swatch with its chosen text color, plus the card
// pairing (primary text on the light fill).
func Evaluate(p domain.Palette, min float64) []Result {
	out := make([]Result, 0, len(domain.Roles())+1)
	for _, r := range domain.Roles() {
		fill := p.Role(r)
		out = append(out, Contrast(string(r), showcase.TextColor(fill), fill, min))
	}
	out = append(out, Contrast("card", p.Role(domain.RolePrimary), p.Role(domain.RoleLight), min))
	return out
}

// Failures counts failed results.
func Failures(rs []Result) int {
	n := 0
	for _, r := range rs {
		if !r.Passed {
			n++
		}
	}
	return n
}
