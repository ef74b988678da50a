package entity

import (
	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/textrogue/internal/combat"
	"github.com/samdwyer/textrogue/internal/gamedata"
)

// Enemy is a hostile combatant, created fresh for each encounter.
type Enemy struct {
	Fighter
	Def *gamedata.EnemyDef // Reference to the enemy definition (nil for ad-hoc enemies)
}

// NewEnemy creates an enemy at full health.
func NewEnemy(name string, maxHP int, weapon *Weapon) *Enemy {
	return &Enemy{Fighter: newFighter(name, maxHP, weapon)}
}

// NewEnemyFromDef creates an enemy from a data-driven definition.
// Health and weapon are rolled by the caller.
func NewEnemyFromDef(def *gamedata.EnemyDef, maxHP int, weapon *Weapon) *Enemy {
	e := NewEnemy(def.Name, maxHP, weapon)
	e.Def = def
	return e
}

// ID returns the enemy's type identifier.
func (e *Enemy) ID() string {
	if e.Def != nil {
		return e.Def.ID
	}
	return e.Name
}

// Label returns the display name for lang.
func (e *Enemy) Label(lang string) string {
	if e.Def != nil {
		return e.Def.Label(lang)
	}
	return e.Name
}

// Color returns the tcell color for this enemy.
func (e *Enemy) Color() tcell.Color {
	if e.Def != nil {
		return e.Def.TCellColor()
	}
	return tcell.ColorDefault
}

// Ensure Enemy implements combat.Combatant
var _ combat.Combatant = (*Enemy)(nil)
