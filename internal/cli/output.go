package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/showcase"
)

const (
	formatPretty = "pretty"
	formatJSON   = "json"
	formatCSS    = "css"
)

// newRenderer returns a lipgloss renderer bound to w. Colors follow the
// terminal profile of w and honor NO_COLOR, so pipes and files get plain text.
func newRenderer(w io.Writer) *lipgloss.Renderer {
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.NewOutput(w).EnvColorProfile())
	return r
}

func swatch(r *lipgloss.Renderer, fill domain.Hex, label string) string {
	return r.NewStyle().
		Background(lipgloss.Color(string(fill))).
		Foreground(lipgloss.Color(string(showcase.TextColor(fill)))).
		Padding(0, 1).
		Render(label)
}

func printPalette(w io.Writer, base string, p domain.Palette, format string) error {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case formatJSON:
		return writeJSON(w, palette.NewDocument(base, p))
	case formatCSS:
		printCSS(w, base, p)
		return nil
	case formatPretty, "":
		return printPrettyPalette(w, base, p)
	default:
		return fmt.Errorf("unsupported format %q (expected pretty|json|css)", format)
	}
}

// printPrettyPalette lists the slots and then the roles. Without color the
// role swatches cannot show their text pairing, so each role gets a line.
func printPrettyPalette(w io.Writer, base string, p domain.Palette) error {
	r := newRenderer(w)
	bold := r.NewStyle().Bold(true)
	faint := r.NewStyle().Faint(true)

	fmt.Fprintf(w, "%s %s\n\n", bold.Render("Base:"), base)
	for i, step := range palette.Recipe() {
		fmt.Fprintf(w, "%2d  %-9s %s  %s\n",
			step.Slot, step.Name, swatch(r, p[i], string(p[i])), faint.Render(step.Description))
	}

	fmt.Fprintln(w)
	if r.ColorProfile() == termenv.Ascii {
		sc, err := showcase.Build(p, 2)
		if err != nil {
			return err
		}
		fmt.Fprintln(w, "Roles:")
		for _, s := range sc.Swatches {
			fmt.Fprintf(w, "  %s\n", s.Describe())
		}
		return nil
	}

	roles := make([]string, 0, len(domain.RoleSlots))
	for _, role := range domain.Roles() {
		roles = append(roles, swatch(r, p.Role(role), string(role)))
	}
	fmt.Fprintf(w, "%s %s\n", bold.Render("Roles:"), strings.Join(roles, " "))
	return nil
}

func printCSS(w io.Writer, base string, p domain.Palette) {
	fmt.Fprintf(w, "/* brutalist palette for %s */\n", base)
	fmt.Fprintln(w, ":root {")
	for i, h := range p {
		fmt.Fprintf(w, "  --color-%d: %s;\n", i+1, h)
	}
	for _, role := range domain.Roles() {
		fmt.Fprintf(w, "  --%s: %s;\n", role, p.Role(role))
	}
	fmt.Fprintf(w, "  --light-translucent: %s;\n", showcase.WithOpacity(p.Role(domain.RoleLight), showcase.TranslucentAlpha))
	fmt.Fprintln(w, "}")
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
