package palette

import (
	"strconv"

	"github.com/sklarow/brutalist-color-pallete/internal/domain"
)

// SlotView is one palette entry as exposed in JSON output.
type SlotView struct {
	Slot int        `json:"slot"`
	Name string     `json:"name"`
	Hex  domain.Hex `json:"hex"`
}

// Document is the JSON shape of a generated palette.
type Document struct {
	Base  string                     `json:"base"`
	Slots []SlotView                 `json:"slots"`
	Roles map[domain.Role]domain.Hex `json:"roles"`
}

// NewDocument lays p out with slot names and role assignments.
func NewDocument(base string, p domain.Palette) Document {
	doc := Document{
		Base:  base,
		Slots: make([]SlotView, 0, domain.SlotCount),
		Roles: make(map[domain.Role]domain.Hex, len(domain.RoleSlots)),
	}
	for i, step := range recipe {
		doc.Slots = append(doc.Slots, SlotView{Slot: step.Slot, Name: step.Name, Hex: p[i]})
	}
	for _, r := range domain.Roles() {
		doc.Roles[r] = p.Role(r)
	}
	return doc
}

// Vars flattens p into template variables: color1..color10, every role name
// and "base".
func Vars(base string, p domain.Palette) map[string]string {
	vars := make(map[string]string, domain.SlotCount+len(domain.RoleSlots)+1)
	vars["base"] = base
	for i, h := range p {
		vars["color"+strconv.Itoa(i+1)] = string(h)
	}
	for _, r := range domain.Roles() {
		vars[string(r)] = string(p.Role(r))
	}
	return vars
}
