package game

import (
	"context"

	"github.com/samdwyer/textrogue/internal/combat"
	"github.com/samdwyer/textrogue/internal/entity"
)

// Input supplies the operator's responses.
type Input interface {
	// ReadLine returns one line without its terminator. io.EOF means no more input.
	ReadLine(ctx context.Context) (string, error)
	// ReadKey waits for a single key press.
	ReadKey(ctx context.Context) error
}

// Narrator reports session events to the operator.
type Narrator interface {
	Welcome()
	AskName()
	PlayerCreated(p *entity.Player)
	EnemyAppears(p *entity.Player, e *entity.Enemy)
	ActionMenu(p *entity.Player)
	TurnResolved(p *entity.Player, e *entity.Enemy, r combat.TurnResult)
	Victory(e *entity.Enemy, points, score int)
	AidFound(a *entity.Aid)
	PressAnyKey()
	GameOver(s Summary)
}
