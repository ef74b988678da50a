// Package entity provides the player, enemies and the items they carry.
package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/textrogue/internal/gamedata"
)

// Weapon is an owned weapon instance with limited durability.
type Weapon struct {
	Def        *gamedata.WeaponDef // Template this weapon was drawn from (nil for ad-hoc weapons)
	Name       string
	Damage     int
	Durability int // Remaining effective strikes, never negative
}

// NewWeapon creates a weapon. Negative damage or durability is clamped to zero.
func NewWeapon(name string, damage, durability int) *Weapon {
	return &Weapon{
		Name:       name,
		Damage:     max(damage, 0),
		Durability: max(durability, 0),
	}
}

// NewWeaponFromDef creates a fresh weapon instance from a template.
// The instance owns its durability; the template is never mutated.
func NewWeaponFromDef(def *gamedata.WeaponDef) *Weapon {
	w := NewWeapon(def.Name, def.Damage, def.Durability)
	w.Def = def
	return w
}

// Attack spends one point of durability and returns the weapon's damage.
// A broken weapon returns 0 and is left unchanged.
func (w *Weapon) Attack() int {
	if w.Durability <= 0 {
		return 0
	}
	w.Durability--
	return w.Damage
}

// Broken reports whether the weapon has no durability left.
func (w *Weapon) Broken() bool {
	return w.Durability <= 0
}

// Label returns the display name for lang.
func (w *Weapon) Label(lang string) string {
	if w.Def != nil {
		return w.Def.Label(lang)
	}
	return w.Name
}

// Color returns the tcell color of the weapon's template.
func (w *Weapon) Color() tcell.Color {
	if w.Def != nil {
		return w.Def.TCellColor()
	}
	return tcell.ColorDefault
}
