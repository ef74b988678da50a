// Package game runs a play session: successive encounters until the player falls.
package game

// State represents the current session phase.
type State int

const (
	// StateIntro - asking the player's name and handing out starting gear
	StateIntro State = iota
	// StateCombat - an encounter is being resolved
	StateCombat
	// StateIntermission - scoring, loot and the key press between encounters
	StateIntermission
	// StateOver - the session has ended
	StateOver
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateIntro:
		return "intro"
	case StateCombat:
		return "combat"
	case StateIntermission:
		return "intermission"
	case StateOver:
		return "over"
	default:
		return "unknown"
	}
}
