package combat

// Action is a player's choice for one turn.
type Action int

const (
	// ActionSkip does nothing; the enemy still retaliates.
	ActionSkip Action = iota
	// ActionAttack strikes the enemy with the player's weapon.
	ActionAttack
	// ActionUseAid consumes the held aid item.
	ActionUseAid
)

// Menu tokens accepted from the operator.
const (
	TokenAttack = "1"
	TokenSkip   = "2"
	TokenUseAid = "3"
)

// String returns a human-readable action name.
func (a Action) String() string {
	switch a {
	case ActionSkip:
		return "skip"
	case ActionAttack:
		return "attack"
	case ActionUseAid:
		return "use_aid"
	default:
		return "unknown"
	}
}

// ParseAction maps a menu token to an action. Tokens are matched exactly.
// Anything unrecognised, including the aid token while no aid is held,
// becomes ActionSkip with ok == false.
func ParseAction(token string, hasAid bool) (action Action, ok bool) {
	switch token {
	case TokenAttack:
		return ActionAttack, true
	case TokenSkip:
		return ActionSkip, true
	case TokenUseAid:
		if hasAid {
			return ActionUseAid, true
		}
	}
	return ActionSkip, false
}
