package showcase

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/palette"
)

func TestIsLight(t *testing.T) {
	cases := []struct {
		in   domain.Hex
		want bool
	}{
		{"#ffffff", true},
		{"#ffff00", true},
		{"#ff0000", false},
		{"#808080", false},
		{"#818181", true},
		{"#000000", false},
		{"not-a-color", false},
	}
	for _, c := range cases {
		if got := IsLight(c.in); got != c.want {
			t.Errorf("IsLight(%q) = %v, want %v", c.in, got, c.want)
		}
	}
}

func TestTextColor(t *testing.T) {
	if got := TextColor("#ffff00"); got != "#000000" {
		t.Errorf("expected black text on yellow, got %s", got)
	}
	if got := TextColor("#9e0000"); got != "#ffffff" {
		t.Errorf("expected white text on dark red, got %s", got)
	}
}

func TestWithOpacity(t *testing.T) {
	if got := WithOpacity("#ff6161", TranslucentAlpha); got != "#ff616140" {
		t.Fatalf("got %q", got)
	}
}

func TestBlend(t *testing.T) {
	got, err := Blend("#000000", "#ffffff", 3)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := []domain.Hex{"#000000", "#808080", "#ffffff"}
	if len(got) != len(want) {
		t.Fatalf("expected %d stops, got %d", len(want), len(got))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("stop %d = %s, want %s", i, got[i], want[i])
		}
	}
}

func TestBlend_MinimumTwoStops(t *testing.T) {
	got, err := Blend("#ff0000", "#0000ff", 0)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(got) != 2 || got[0] != "#ff0000" || got[1] != "#0000ff" {
		t.Fatalf("unexpected stops %v", got)
	}
}

func TestBlend_InvalidColor(t *testing.T) {
	_, err := Blend("#ff0000", "blue", 4)
	if !errors.Is(err, domain.ErrInvalidHex) {
		t.Fatalf("expected ErrInvalidHex, got %v", err)
	}
}

func TestContrastRatio(t *testing.T) {
	r, err := ContrastRatio("#000000", "#ffffff")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(r-21) > 1e-9 {
		t.Fatalf("expected 21, got %v", r)
	}

	same, err := ContrastRatio("#3366cc", "#3366cc")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if math.Abs(same-1) > 1e-9 {
		t.Fatalf("expected 1, got %v", same)
	}

	swapped, _ := ContrastRatio("#ffffff", "#3366cc")
	direct, _ := ContrastRatio("#3366cc", "#ffffff")
	if swapped != direct {
		t.Fatalf("expected symmetric ratio, got %v vs %v", swapped, direct)
	}
}

func TestBuild(t *testing.T) {
	p, err := palette.Generate("#FF0000")
	if err != nil {
		t.Fatalf("generate: %v", err)
	}

	sc, err := Build(p, 5)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if len(sc.Swatches) != 5 {
		t.Fatalf("expected 5 role swatches, got %d", len(sc.Swatches))
	}
	if sc.Swatches[0].Role != domain.RolePrimary || sc.Swatches[0].Fill != "#ff0000" {
		t.Fatalf("unexpected primary swatch %+v", sc.Swatches[0])
	}
	if sc.Swatches[4].Role != domain.RoleDark || sc.Swatches[4].Fill != "#9e0000" {
		t.Fatalf("unexpected dark swatch %+v", sc.Swatches[4])
	}

	if len(sc.Gradients) != 2 {
		t.Fatalf("expected 2 gradients, got %d", len(sc.Gradients))
	}
	g := sc.Gradients[1]
	if g.From != p[3] || g.To != p[5] {
		t.Fatalf("expected second gradient slot4->slot6, got %s->%s", g.From, g.To)
	}
	if len(g.Stops) != 5 || g.Stops[0] != g.From || g.Stops[4] != g.To {
		t.Fatalf("unexpected stops %v", g.Stops)
	}

	if sc.Translucent != "#ff616140" {
		t.Fatalf("unexpected translucent fill %q", sc.Translucent)
	}
}

func TestSwatchDescribe(t *testing.T) {
	s := Swatch{Role: domain.RoleAccent, Slot: 2, Fill: "#00ff4a", Text: "#000000"}
	if !strings.Contains(s.Describe(), "#00ff4a") {
		t.Fatalf("unexpected description %q", s.Describe())
	}
}
