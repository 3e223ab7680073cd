package domain

import "strings"

// SlotCount is the fixed number of colors in a Palette.
const SlotCount = 10

// Hex is a color in hexadecimal triplet form. Values produced by the codec are
// always "#rrggbb" with lowercase digits; user input may omit the '#' and use
// either case.
type Hex string

// String returns the hex form unchanged.
func (h Hex) String() string { return string(h) }

// Upper returns the display form used by the UI ("#RRGGBB").
func (h Hex) Upper() string { return strings.ToUpper(string(h)) }

// RGB is an 8-bit per channel color. Channels are in [0,255].
type RGB struct {
	R, G, B int
}

// HSL is a hue/saturation/lightness triple. H is in degrees [0,360),
// S and L are percentages [0,100].
type HSL struct {
	H, S, L float64
}

// Palette holds the ten derived colors. Slot n (1..10) lives at index n-1.
type Palette [SlotCount]Hex

// Slot returns the color for a 1-based slot number.
func (p Palette) Slot(n int) (Hex, bool) {
	if n < 1 || n > SlotCount {
		return "", false
	}
	return p[n-1], true
}

// Strings returns the palette as a fresh slice of hex strings in slot order.
func (p Palette) Strings() []string {
	out := make([]string, 0, SlotCount)
	for _, h := range p {
		out = append(out, string(h))
	}
	return out
}

// Role is a semantic name callers give to a palette slot.
type Role string

const (
	RolePrimary Role = "primary"
	RoleAccent  Role = "accent"
	RoleMuted   Role = "muted"
	RoleLight   Role = "light"
	RoleDark    Role = "dark"
)

// RoleSlots maps each role to the slot it reads from.
var RoleSlots = map[Role]int{
	RolePrimary: 1,
	RoleAccent:  2,
	RoleMuted:   3,
	RoleLight:   9,
	RoleDark:    10,
}

// Roles lists the roles in display order.
func Roles() []Role {
	return []Role{RolePrimary, RoleAccent, RoleMuted, RoleLight, RoleDark}
}

// Role returns the color assigned to r, or "" for an unknown role.
func (p Palette) Role(r Role) Hex {
	n, ok := RoleSlots[r]
	if !ok {
		return ""
	}
	h, _ := p.Slot(n)
	return h
}
