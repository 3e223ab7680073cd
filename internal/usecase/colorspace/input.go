package colorspace

import "strings"

// NormalizeInput cleans free-form text typed into a hex field: uppercase,
// drop anything but '#' and hex digits, force a leading '#', cap at "#RRGGBB".
// The result is not necessarily a complete color.
func NormalizeInput(raw string) string {
	up := strings.ToUpper(raw)

	var b strings.Builder
	b.Grow(len(up) + 1)
	for _, r := range up {
		if r == '#' || (r >= '0' && r <= '9') || (r >= 'A' && r <= 'F') {
			b.WriteRune(r)
		}
	}

	v := b.String()
	if v != "" && !strings.HasPrefix(v, "#") {
		v = "#" + v
	}
	if len(v) > 7 {
		v = v[:7]
	}
	return v
}

// CompleteInput finishes a partially typed color by padding it with zeros, the
// way a field does when it loses focus. It reports whether the result decodes.
func CompleteInput(raw string) (string, bool) {
	v := NormalizeInput(raw)
	if strings.HasPrefix(v, "#") && len(v) > 1 && len(v) < 7 {
		v += strings.Repeat("0", 7-len(v))
	}
	if _, err := DecodeHex(v); err != nil {
		return v, false
	}
	return v, true
}
