package template

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
)

// Filters that may follow a placeholder name: {{color1 | rgb}}.
var filters = map[string]func(string) (string, error){
	"upper": func(v string) (string, error) { return strings.ToUpper(v), nil },
	"lower": func(v string) (string, error) { return strings.ToLower(v), nil },
	"bare":  func(v string) (string, error) { return strings.TrimPrefix(v, "#"), nil },
	"rgb": func(v string) (string, error) {
		rgb, err := colorspace.DecodeHex(v)
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("%d, %d, %d", rgb.R, rgb.G, rgb.B), nil
	},
	"hsl": func(v string) (string, error) {
		rgb, err := colorspace.DecodeHex(v)
		if err != nil {
			return "", err
		}
		hsl := colorspace.RGBToHSL(rgb)
		return fmt.Sprintf("%s, %s%%, %s%%", num(hsl.H), num(hsl.S), num(hsl.L)), nil
	},
}

func num(f float64) string {
	return strconv.FormatFloat(f, 'f', 1, 64)
}

// RenderString replaces {{VAR}} placeholders with vars values.
// It returns an error if a variable is missing or a placeholder is malformed.
func RenderString(input string, vars map[string]string) (string, error) {
	if input == "" {
		return "", nil
	}

	var out strings.Builder
	rest := input
	for {
		start := strings.Index(rest, "{{")
		if start == -1 {
			out.WriteString(rest)
			return out.String(), nil
		}

		out.WriteString(rest[:start])
		rest = rest[start+2:]

		end := strings.Index(rest, "}}")
		if end == -1 {
			return "", renderErr("unclosed template expression")
		}

		parts := strings.Split(rest[:end], "|")
		key := strings.TrimSpace(parts[0])
		if key == "" {
			return "", renderErr("empty template expression")
		}

		value, ok := vars[key]
		if !ok {
			return "", renderErr(fmt.Sprintf("missing variable %q", key))
		}

		for _, p := range parts[1:] {
			name := strings.TrimSpace(p)
			fn, ok := filters[name]
			if !ok {
				return "", renderErr(fmt.Sprintf("unknown filter %q", name))
			}
			v, err := fn(value)
			if err != nil {
				return "", renderErr(fmt.Sprintf("filter %q on %s: %v", name, key, err))
			}
			value = v
		}

		out.WriteString(value)
		rest = rest[end+2:]
	}
}

// RenderFile renders the template at path.
func RenderFile(path string, vars map[string]string) (string, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return "", &domain.OpError{Op: "template.read", Kind: domain.KindNotFound, Path: path, Err: domain.ErrNotFound}
		}
		return "", &domain.OpError{Op: "template.read", Kind: domain.KindExecution, Path: path, Err: err}
	}
	out, err := RenderString(string(b), vars)
	if err != nil {
		if oe, ok := err.(*domain.OpError); ok {
			oe.Path = path
		}
		return "", err
	}
	return out, nil
}

func renderErr(msg string) error {
	return &domain.OpError{
		Op:   "template.render",
		Kind: domain.KindInvalidConfig,
		Err:  fmt.Errorf("%s: %w", msg, domain.ErrInvalidConfig),
	}
}
