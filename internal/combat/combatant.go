// Package combat provides the turn-based encounter loop.
package combat

// Combatant is the interface for any entity that can take part in an encounter.
// Both the player and enemies implement this interface.
type Combatant interface {
	// Identity
	GetName() string
	IsAlive() bool

	// Stats
	GetHP() int
	GetMaxHP() int

	// Mutations
	Attack() int               // Damage dealt by one strike of the owned weapon
	TakeDamage(amount int) int // Returns actual damage taken
}

// Hero is the player's side of an encounter: a combatant that may carry an aid item.
type Hero interface {
	Combatant
	HasAid() bool
	Heal() int // Consumes the aid item, returns actual amount healed
}
