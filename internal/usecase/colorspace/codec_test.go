package colorspace

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
)

func TestDecodeHex_Valid(t *testing.T) {
	cases := []struct {
		in   string
		want domain.RGB
	}{
		{"#ff0000", domain.RGB{R: 255}},
		{"#FF0000", domain.RGB{R: 255}},
		{"00ff00", domain.RGB{G: 255}},
		{"#1a2B3c", domain.RGB{R: 0x1a, G: 0x2b, B: 0x3c}},
		{"#000000", domain.RGB{}},
		{"FFFFFF", domain.RGB{R: 255, G: 255, B: 255}},
	}
	for _, c := range cases {
		got, err := DecodeHex(c.in)
		if err != nil {
			t.Errorf("DecodeHex(%q) unexpected error: %v", c.in, err)
			continue
		}
		if got != c.want {
			t.Errorf("DecodeHex(%q) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestDecodeHex_Invalid(t *testing.T) {
	for _, in := range []string{
		"blue",
		"#ff0",
		"ff0",
		"#gggggg",
		"",
		"#",
		"#ff00000",
		"##ff0000",
		" #ff0000",
		"#ff0000 ",
		"#ff 000",
	} {
		_, err := DecodeHex(in)
		if err == nil {
			t.Errorf("DecodeHex(%q): expected error", in)
			continue
		}
		if !errors.Is(err, domain.ErrInvalidHex) {
			t.Errorf("DecodeHex(%q): expected ErrInvalidHex, got %v", in, err)
		}
		if !domain.IsKind(err, domain.KindInvalidHex) {
			t.Errorf("DecodeHex(%q): expected kind %s", in, domain.KindInvalidHex)
		}
	}
}

func TestDecodeHex_AgreesWithColorful(t *testing.T) {
	for _, in := range []string{"#3366cc", "#808080", "#1a2b3c", "#fe01ab"} {
		got, err := DecodeHex(in)
		if err != nil {
			t.Fatalf("DecodeHex(%q): %v", in, err)
		}
		c, err := colorful.Hex(in)
		if err != nil {
			t.Fatalf("colorful.Hex(%q): %v", in, err)
		}
		r, g, b := c.RGB255()
		if got.R != int(r) || got.G != int(g) || got.B != int(b) {
			t.Errorf("DecodeHex(%q) = %+v, colorful says %d,%d,%d", in, got, r, g, b)
		}
	}
}

func TestEncodeHex(t *testing.T) {
	cases := []struct {
		in   domain.RGB
		want domain.Hex
	}{
		{domain.RGB{R: 255}, "#ff0000"},
		{domain.RGB{R: 1, G: 2, B: 3}, "#010203"},
		{domain.RGB{R: 0xab, G: 0xcd, B: 0xef}, "#abcdef"},
		{domain.RGB{}, "#000000"},
	}
	for _, c := range cases {
		if got := EncodeHex(c.in); got != c.want {
			t.Errorf("EncodeHex(%+v) = %q, want %q", c.in, got, c.want)
		}
	}
}

func TestHexRoundTrip_LowercaseNormalized(t *testing.T) {
	for _, in := range []string{"#FF0000", "3366CC", "#1a2B3c", "abcdef", "#00Ff7F"} {
		rgb, err := DecodeHex(in)
		if err != nil {
			t.Fatalf("DecodeHex(%q): %v", in, err)
		}
		want := strings.ToLower(in)
		if !strings.HasPrefix(want, "#") {
			want = "#" + want
		}
		if got := EncodeHex(rgb); string(got) != want {
			t.Errorf("round trip %q = %q, want %q", in, got, want)
		}
	}
}

func TestRGBToHSL_Known(t *testing.T) {
	cases := []struct {
		in   domain.RGB
		want domain.HSL
	}{
		{domain.RGB{R: 255}, domain.HSL{H: 0, S: 100, L: 50}},
		{domain.RGB{G: 255}, domain.HSL{H: 120, S: 100, L: 50}},
		{domain.RGB{B: 255}, domain.HSL{H: 240, S: 100, L: 50}},
		{domain.RGB{R: 255, G: 255, B: 255}, domain.HSL{H: 0, S: 0, L: 100}},
		{domain.RGB{}, domain.HSL{}},
		{domain.RGB{R: 0x33, G: 0x66, B: 0xcc}, domain.HSL{H: 220, S: 60, L: 50}},
	}
	for _, c := range cases {
		got := RGBToHSL(c.in)
		if !hslClose(got, c.want, 1e-9) {
			t.Errorf("RGBToHSL(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestRGBToHSL_Achromatic(t *testing.T) {
	got := RGBToHSL(domain.RGB{R: 128, G: 128, B: 128})
	if got.H != 0 || got.S != 0 {
		t.Fatalf("expected hue=0 sat=0 for grey, got %+v", got)
	}
	if math.Abs(got.L-128.0/255*100) > 1e-9 {
		t.Fatalf("unexpected lightness %v", got.L)
	}
}

// Red-dominant colors with blue above green land in the +6 branch; the hue must
// come out just below 360, never at or past it, and never negative.
func TestRGBToHSL_RedBranchWrap(t *testing.T) {
	cases := []struct {
		in     domain.RGB
		wantLo float64
		wantHi float64
	}{
		{domain.RGB{R: 255, G: 0, B: 1}, 359.7, 360},
		{domain.RGB{R: 255, G: 0, B: 128}, 329.8, 330},
		{domain.RGB{R: 255, G: 1, B: 0}, 0, 0.3},
		{domain.RGB{R: 255, G: 10, B: 10}, 0, 1e-12},
	}
	for _, c := range cases {
		got := RGBToHSL(c.in)
		if got.H < 0 || got.H >= 360 {
			t.Fatalf("RGBToHSL(%+v).H = %v, out of [0,360)", c.in, got.H)
		}
		if got.H < c.wantLo || got.H > c.wantHi {
			t.Errorf("RGBToHSL(%+v).H = %v, want in [%v,%v]", c.in, got.H, c.wantLo, c.wantHi)
		}
	}
}

func TestRGBToHSL_AgreesWithColorful(t *testing.T) {
	for r := 0; r <= 255; r += 17 {
		for g := 0; g <= 255; g += 51 {
			for b := 0; b <= 255; b += 85 {
				in := domain.RGB{R: r, G: g, B: b}
				got := RGBToHSL(in)

				c := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
				h, s, l := c.Hsl()
				want := domain.HSL{H: h, S: s * 100, L: l * 100}
				if !hslClose(got, want, 1e-6) {
					t.Errorf("RGBToHSL(%+v) = %+v, colorful says %+v", in, got, want)
				}
			}
		}
	}
}

func TestHSLToRGB_Known(t *testing.T) {
	cases := []struct {
		in   domain.HSL
		want domain.RGB
	}{
		{domain.HSL{H: 0, S: 100, L: 50}, domain.RGB{R: 255}},
		{domain.HSL{H: 137.5, S: 100, L: 50}, domain.RGB{R: 0, G: 255, B: 74}},
		{domain.HSL{H: 220, S: 60, L: 50}, domain.RGB{R: 0x33, G: 0x66, B: 0xcc}},
		{domain.HSL{H: 42, S: 0, L: 50}, domain.RGB{R: 128, G: 128, B: 128}},
		{domain.HSL{H: 0, S: 0, L: 100}, domain.RGB{R: 255, G: 255, B: 255}},
		{domain.HSL{H: 300, S: 100, L: 0}, domain.RGB{}},
	}
	for _, c := range cases {
		if got := HSLToRGB(c.in); got != c.want {
			t.Errorf("HSLToRGB(%+v) = %+v, want %+v", c.in, got, c.want)
		}
	}
}

func TestHSLToRGB_AgreesWithColorful(t *testing.T) {
	for h := 0.0; h < 360; h += 22.5 {
		for s := 0.0; s <= 100; s += 25 {
			for l := 0.0; l <= 100; l += 12.5 {
				got := HSLToRGB(domain.HSL{H: h, S: s, L: l})
				r, g, b := colorful.Hsl(h, s/100, l/100).RGB255()
				if absInt(got.R-int(r)) > 1 || absInt(got.G-int(g)) > 1 || absInt(got.B-int(b)) > 1 {
					t.Errorf("HSLToRGB(%v,%v,%v) = %+v, colorful says %d,%d,%d", h, s, l, got, r, g, b)
				}
			}
		}
	}
}

func TestRGBRoundTrip_WithinOne(t *testing.T) {
	for r := 0; r <= 255; r += 3 {
		for g := 0; g <= 255; g += 5 {
			for b := 0; b <= 255; b += 7 {
				in := domain.RGB{R: r, G: g, B: b}
				out := HSLToRGB(RGBToHSL(in))
				if absInt(out.R-r) > 1 || absInt(out.G-g) > 1 || absInt(out.B-b) > 1 {
					t.Fatalf("round trip %+v -> %+v", in, out)
				}
			}
		}
	}
}

func hslClose(a, b domain.HSL, eps float64) bool {
	dh := math.Abs(a.H - b.H)
	if dh > 180 {
		dh = 360 - dh
	}
	return dh <= eps && math.Abs(a.S-b.S) <= eps && math.Abs(a.L-b.L) <= eps
}

func absInt(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
