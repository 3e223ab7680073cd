package colorspace

// RotateHue turns h by delta degrees around the wheel. The result is in [0,360)
// for any real h and delta.
func RotateHue(h, delta float64) float64 {
	return normalizeHue(h + delta)
}

// Desaturate scales saturation down by percent. 100 drives it to 0; negative
// percents saturate, still capped at 100.
func Desaturate(s, percent float64) float64 {
	return clamp(s*(1-percent/100), 0, 100)
}

// AdjustLightness changes lightness relative to its current value, so l=0
// never moves.
func AdjustLightness(l, percent float64) float64 {
	return clamp(l+l*(percent/100), 0, 100)
}

func clamp(v, lo, hi float64) float64 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
