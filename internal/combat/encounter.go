package combat

import (
	"context"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/textrogue/internal/telemetry"
)

// State represents the outcome of an encounter so far.
type State int

const (
	// StateOngoing - both sides still standing
	StateOngoing State = iota
	// StatePlayerWon - enemy reduced to 0 HP
	StatePlayerWon
	// StatePlayerLost - player reduced to 0 HP
	StatePlayerLost
)

// String returns a human-readable state name.
func (s State) String() string {
	switch s {
	case StateOngoing:
		return "ongoing"
	case StatePlayerWon:
		return "player_won"
	case StatePlayerLost:
		return "player_lost"
	default:
		return "unknown"
	}
}

// Strike records one blow from attacker to defender.
type Strike struct {
	Attacker   string
	Defender   string
	Damage     int  // What the weapon produced
	Dealt      int  // HP actually removed from the defender
	Killed     bool // Defender reached 0 HP
	AttackerHP int  // Health of both sides right after the blow
	DefenderHP int
}

// TurnResult describes everything that happened in one turn.
type TurnResult struct {
	Turn         int // 1-based turn number within the encounter
	Action       Action
	Invalid      bool    // Token was not recognised and the turn was skipped
	PlayerStrike *Strike // Set when the player attacked
	Healed       int     // HP restored by an aid item
	HealedTo     int     // Player HP right after healing
	AidUsed      bool
	EnemyStrike  *Strike // Nil when the enemy died before retaliating
	PlayerHP     int
	EnemyHP      int
	State        State
}

// ActionChooser supplies the raw menu token for the player's next turn.
type ActionChooser interface {
	ChooseAction(ctx context.Context, enc *Encounter) (string, error)
}

// ActionChooserFunc adapts a function to ActionChooser.
type ActionChooserFunc func(ctx context.Context, enc *Encounter) (string, error)

// ChooseAction calls f.
func (f ActionChooserFunc) ChooseAction(ctx context.Context, enc *Encounter) (string, error) {
	return f(ctx, enc)
}

// TurnObserver is called after every resolved turn.
type TurnObserver func(TurnResult)

// Encounter is one fight between the player and a single enemy.
type Encounter struct {
	Player Hero
	Enemy  Combatant
	state  State
	turns  int
}

// NewEncounter creates an encounter in the ongoing state.
func NewEncounter(player Hero, enemy Combatant) *Encounter {
	return &Encounter{
		Player: player,
		Enemy:  enemy,
		state:  StateOngoing,
	}
}

// State returns the encounter state as of the last evaluation.
func (e *Encounter) State() State { return e.state }

// Turns returns the number of turns resolved so far.
func (e *Encounter) Turns() int { return e.turns }

// evaluate checks liveness at the head of a turn. A dead player loses
// before anything else is considered.
func (e *Encounter) evaluate() State {
	switch {
	case !e.Player.IsAlive():
		return StatePlayerLost
	case !e.Enemy.IsAlive():
		return StatePlayerWon
	default:
		return StateOngoing
	}
}

// Step resolves a single turn with the given action. It does nothing once
// the encounter is over.
func (e *Encounter) Step(ctx context.Context, action Action) TurnResult {
	e.state = e.evaluate()
	if e.state != StateOngoing {
		return e.snapshot(TurnResult{Turn: e.turns, Action: action})
	}

	e.turns++
	tracer := telemetry.Tracer("combat")
	_, span := tracer.Start(ctx, "encounter.turn")
	defer span.End()

	result := TurnResult{Turn: e.turns, Action: action}

	switch action {
	case ActionAttack:
		result.PlayerStrike = strike(e.Player, e.Enemy)
	case ActionUseAid:
		if e.Player.HasAid() {
			result.Healed = e.Player.Heal()
			result.HealedTo = e.Player.GetHP()
			result.AidUsed = true
		} else {
			result.Action = ActionSkip
			result.Invalid = true
		}
	}

	// A killing blow pre-empts the counter-attack
	if e.Enemy.IsAlive() {
		result.EnemyStrike = strike(e.Enemy, e.Player)
	}

	e.state = e.evaluate()
	result = e.snapshot(result)

	span.SetAttributes(
		attribute.Int("turn", result.Turn),
		attribute.String("action", result.Action.String()),
		attribute.Int("player_hp", result.PlayerHP),
		attribute.Int("enemy_hp", result.EnemyHP),
	)
	if result.PlayerStrike != nil {
		span.SetAttributes(attribute.Int("damage_dealt", result.PlayerStrike.Dealt))
	}
	if result.EnemyStrike != nil {
		span.SetAttributes(attribute.Int("damage_taken", result.EnemyStrike.Dealt))
	}
	if result.AidUsed {
		span.SetAttributes(attribute.Int("healing", result.Healed))
	}

	return result
}

// Resolve runs turns until one side falls. It returns early with the
// chooser's error or the context's error; the encounter stays ongoing.
func (e *Encounter) Resolve(ctx context.Context, chooser ActionChooser, observe TurnObserver) (State, error) {
	tracer := telemetry.Tracer("combat")
	ctx, span := tracer.Start(ctx, "encounter.resolve")
	span.SetAttributes(
		attribute.String("enemy", e.Enemy.GetName()),
		attribute.Int("enemy_hp", e.Enemy.GetHP()),
		attribute.Int("player_hp", e.Player.GetHP()),
	)
	defer span.End()

	for {
		e.state = e.evaluate()
		if e.state != StateOngoing {
			break
		}

		if err := ctx.Err(); err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "cancelled")
			return e.state, err
		}

		token, err := chooser.ChooseAction(ctx, e)
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, "input failed")
			return e.state, err
		}

		action, ok := ParseAction(token, e.Player.HasAid())
		result := e.Step(ctx, action)
		if !ok {
			result.Invalid = true
		}
		if observe != nil {
			observe(result)
		}
	}

	span.SetAttributes(
		attribute.String("outcome", e.state.String()),
		attribute.Int("turns_taken", e.turns),
		attribute.Int("player_hp_remaining", e.Player.GetHP()),
	)
	return e.state, nil
}

func (e *Encounter) snapshot(r TurnResult) TurnResult {
	r.PlayerHP = e.Player.GetHP()
	r.EnemyHP = e.Enemy.GetHP()
	r.State = e.state
	return r
}

// strike applies one weapon blow from attacker to defender.
func strike(attacker, defender Combatant) *Strike {
	damage := attacker.Attack()
	dealt := defender.TakeDamage(damage)
	return &Strike{
		Attacker:   attacker.GetName(),
		Defender:   defender.GetName(),
		Damage:     damage,
		Dealt:      dealt,
		Killed:     !defender.IsAlive(),
		AttackerHP: attacker.GetHP(),
		DefenderHP: defender.GetHP(),
	}
}
