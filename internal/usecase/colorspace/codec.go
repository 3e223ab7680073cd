// Package colorspace converts between hex, RGB and HSL encodings and applies
// the HSL component transforms used by palette derivation. Everything here is
// a pure function over small value types.
package colorspace

import (
	"fmt"
	"math"
	"regexp"
	"strconv"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
)

var reHex = regexp.MustCompile(`^#?([0-9a-fA-F]{2})([0-9a-fA-F]{2})([0-9a-fA-F]{2})$`)

// DecodeHex parses "#rrggbb" or "rrggbb" (any case). Shorthand "#rgb" is rejected.
func DecodeHex(input string) (domain.RGB, error) {
	m := reHex.FindStringSubmatch(input)
	if m == nil {
		return domain.RGB{}, domain.InvalidHex("colorspace.decode_hex", input)
	}

	var ch [3]int
	for i := range ch {
		v, err := strconv.ParseUint(m[i+1], 16, 8)
		if err != nil {
			return domain.RGB{}, domain.InvalidHex("colorspace.decode_hex", input)
		}
		ch[i] = int(v)
	}
	return domain.RGB{R: ch[0], G: ch[1], B: ch[2]}, nil
}

// EncodeHex formats rgb as "#rrggbb". Channels must already be in [0,255].
func EncodeHex(rgb domain.RGB) domain.Hex {
	return domain.Hex(fmt.Sprintf("#%02x%02x%02x", rgb.R, rgb.G, rgb.B))
}

// RGBToHSL converts using the standard hexcone formula.
func RGBToHSL(rgb domain.RGB) domain.HSL {
	r := float64(rgb.R) / 255
	g := float64(rgb.G) / 255
	b := float64(rgb.B) / 255

	maxV := math.Max(r, math.Max(g, b))
	minV := math.Min(r, math.Min(g, b))
	l := (maxV + minV) / 2

	if maxV == minV {
		return domain.HSL{H: 0, S: 0, L: l * 100}
	}

	d := maxV - minV
	var s float64
	if l > 0.5 {
		s = d / (2 - maxV - minV)
	} else {
		s = d / (maxV + minV)
	}

	var h float64
	switch maxV {
	case r:
		h = (g - b) / d
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/d + 2
	default:
		h = (r-g)/d + 4
	}

	return domain.HSL{H: normalizeHue(h / 6 * 360), S: s * 100, L: l * 100}
}

// HSLToRGB converts back to 8-bit channels, rounding to the nearest integer.
func HSLToRGB(hsl domain.HSL) domain.RGB {
	h := hsl.H / 360
	s := hsl.S / 100
	l := hsl.L / 100

	var r, g, b float64
	if s == 0 {
		r, g, b = l, l, l
	} else {
		var q float64
		if l < 0.5 {
			q = l * (1 + s)
		} else {
			q = l + s - l*s
		}
		p := 2*l - q

		r = hueToChannel(p, q, h+1.0/3)
		g = hueToChannel(p, q, h)
		b = hueToChannel(p, q, h-1.0/3)
	}

	return domain.RGB{
		R: int(math.Round(r * 255)),
		G: int(math.Round(g * 255)),
		B: int(math.Round(b * 255)),
	}
}

func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6:
		return p + (q-p)*6*t
	case t < 1.0/2:
		return q
	case t < 2.0/3:
		return p + (q-p)*(2.0/3-t)*6
	default:
		return p
	}
}

// normalizeHue folds degrees into [0,360).
func normalizeHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds to 360.
	if h >= 360 {
		h -= 360
	}
	return h
}
