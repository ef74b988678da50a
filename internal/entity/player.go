package entity

import "github.com/samdwyer/textrogue/internal/combat"

// Player is the operator's character. It lives for a whole session.
type Player struct {
	Fighter
	Aid   *Aid // At most one held at a time; nil when absent
	Score int
}

// NewPlayer creates a player at full health.
func NewPlayer(name string, maxHP int, weapon *Weapon, aid *Aid) *Player {
	return &Player{
		Fighter: newFighter(name, maxHP, weapon),
		Aid:     aid,
	}
}

// HasAid reports whether the player holds an aid item.
func (p *Player) HasAid() bool {
	return p.Aid != nil
}

// Heal consumes the held aid item, restoring HP up to MaxHP.
// Returns the HP actually restored; without an aid item it does nothing.
func (p *Player) Heal() int {
	if p.Aid == nil {
		return 0
	}
	restored := p.restore(p.Aid.Use())
	p.Aid = nil
	return restored
}

// GiveAid places an aid item in the player's empty slot.
// Returns false and leaves the slot unchanged if an item is already held.
func (p *Player) GiveAid(aid *Aid) bool {
	if p.Aid != nil || aid == nil {
		return false
	}
	p.Aid = aid
	return true
}

// AddScore adds points to the player's score.
func (p *Player) AddScore(points int) {
	if points > 0 {
		p.Score += points
	}
}

// Ensure Player implements combat.Hero
var _ combat.Hero = (*Player)(nil)
