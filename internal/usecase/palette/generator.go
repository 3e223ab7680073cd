// Package palette derives the fixed ten-color palette from a base color.
package palette

import (
	"github.com/sklarow/brutalist-color-pallete/internal/domain"
	"github.com/sklarow/brutalist-color-pallete/internal/usecase/colorspace"
)

// Golden-ratio anchored constants.
const (
	GoldenAngle  = 137.5 // 360°/φ²
	GoldenAngle2 = 222.5 // 360°/φ
	GoldenAngle3 = 275.0 // 137.5° × 2
	GoldenAngle4 = 52.5  // 137.5° / φ

	MutedPercent    = 60.0
	GoldenMinor     = 38.2 // 100% - 61.8%
	GoldenMinorHalf = 23.6
)

// Step describes how one slot is derived from the base HSL.
type Step struct {
	Slot        int
	Name        string
	Description string
	apply       func(domain.HSL) domain.HSL
}

func rotate(delta float64) func(domain.HSL) domain.HSL {
	return func(c domain.HSL) domain.HSL {
		c.H = colorspace.RotateHue(c.H, delta)
		return c
	}
}

func desaturate(percent float64) func(domain.HSL) domain.HSL {
	return func(c domain.HSL) domain.HSL {
		c.S = colorspace.Desaturate(c.S, percent)
		return c
	}
}

func lightness(percent float64) func(domain.HSL) domain.HSL {
	return func(c domain.HSL) domain.HSL {
		c.L = colorspace.AdjustLightness(c.L, percent)
		return c
	}
}

var recipe = [domain.SlotCount]Step{
	{1, "base", "base color unchanged", nil},
	{2, "golden", "hue +137.5°", rotate(GoldenAngle)},
	{3, "muted", "saturation -60%", desaturate(MutedPercent)},
	{4, "golden-2", "hue +222.5°", rotate(GoldenAngle2)},
	{5, "golden-3", "hue +275°", rotate(GoldenAngle3)},
	{6, "golden-4", "hue +52.5°", rotate(GoldenAngle4)},
	{7, "soft", "saturation -38.2%", desaturate(GoldenMinor)},
	{8, "softer", "saturation -23.6%", desaturate(GoldenMinorHalf)},
	{9, "light", "lightness +38.2%", lightness(GoldenMinor)},
	{10, "dark", "lightness -38.2%", lightness(-GoldenMinor)},
}

// Recipe returns the slot derivations in order.
func Recipe() [domain.SlotCount]Step {
	return recipe
}

// Generate builds the palette for base. Every slot is derived from the base
// HSL directly, never from another slot. An undecodable base fails with
// domain.ErrInvalidHex and no palette.
func Generate(base string) (domain.Palette, error) {
	rgb, err := colorspace.DecodeHex(base)
	if err != nil {
		return domain.Palette{}, err
	}
	hsl0 := colorspace.RGBToHSL(rgb)

	var p domain.Palette
	for i, step := range recipe {
		if step.apply == nil {
			p[i] = colorspace.EncodeHex(rgb)
			continue
		}
		p[i] = colorspace.EncodeHex(colorspace.HSLToRGB(step.apply(hsl0)))
	}
	return p, nil
}
