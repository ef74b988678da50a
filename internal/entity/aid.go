package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/textrogue/internal/gamedata"
)

// Aid is a single-use healing item. The owner discards it after Use.
type Aid struct {
	Def        *gamedata.AidDef
	Name       string
	HealAmount int
}

// NewAid creates an aid item. A negative heal amount is clamped to zero.
func NewAid(name string, healAmount int) *Aid {
	return &Aid{Name: name, HealAmount: max(healAmount, 0)}
}

// NewAidFromDef creates an aid item from a template.
func NewAidFromDef(def *gamedata.AidDef) *Aid {
	a := NewAid(def.Name, def.HealAmount)
	a.Def = def
	return a
}

// Use returns the amount of health the item restores.
func (a *Aid) Use() int {
	return a.HealAmount
}

// Label returns the display name for lang.
func (a *Aid) Label(lang string) string {
	if a.Def != nil {
		return a.Def.Label(lang)
	}
	return a.Name
}

// Color returns the tcell color of the aid's template.
func (a *Aid) Color() tcell.Color {
	if a.Def != nil {
		return a.Def.TCellColor()
	}
	return tcell.ColorDefault
}
