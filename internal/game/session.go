package game

import (
	"context"
	"errors"
	"fmt"
	"io"

	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"

	"github.com/samdwyer/textrogue/internal/combat"
	"github.com/samdwyer/textrogue/internal/entity"
	"github.com/samdwyer/textrogue/internal/gamedata"
	"github.com/samdwyer/textrogue/internal/logger"
	"github.com/samdwyer/textrogue/internal/telemetry"
)

// ErrInputClosed is returned when input ends before the player dies.
var ErrInputClosed = errors.New("input closed")

// Summary is the end-of-session report.
type Summary struct {
	SessionID string
	Name      string
	Generated int // Encounters generated, including the fatal one
	Defeated  int // Generated - 1 after a death; wins so far if abandoned
	Score     int
	Turns     int  // Turns resolved across all encounters
	Abandoned bool // Input ended or failed before the player died
}

// Option configures a Session.
type Option func(*Session)

// WithSessionID overrides the generated session id.
func WithSessionID(id string) Option {
	return func(s *Session) {
		if id != "" {
			s.ID = id
		}
	}
}

// Session holds the state of one play-through.
type Session struct {
	ID string

	catalog *gamedata.Catalog
	rng     gamedata.Sampler
	in      Input
	out     Narrator

	player    *entity.Player
	state     State
	generated int
	wins      int
	turns     int
}

// New creates a session drawing content from catalog with rng.
func New(catalog *gamedata.Catalog, rng gamedata.Sampler, in Input, out Narrator, opts ...Option) *Session {
	s := &Session{
		ID:      logger.GenerateSessionID(),
		catalog: catalog,
		rng:     rng,
		in:      in,
		out:     out,
		state:   StateIntro,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// State returns the current session phase.
func (s *Session) State() State { return s.state }

// Player returns the player, or nil before the intro completes.
func (s *Session) Player() *entity.Player { return s.player }

// Run plays the session until the player dies or input fails. The summary
// is reported through the narrator and returned in both cases.
func (s *Session) Run(ctx context.Context) (Summary, error) {
	ctx = logger.WithSessionID(ctx, s.ID)
	log := logger.FromContext(ctx)

	tracer := telemetry.Tracer("game")
	ctx, span := tracer.Start(ctx, "session.run")
	span.SetAttributes(attribute.String("session.id", s.ID))
	defer span.End()

	log.Info("session started")

	err := s.play(ctx)
	s.setState(ctx, StateOver)

	summary := s.Summary()
	summary.Abandoned = err != nil
	s.out.GameOver(summary)

	span.SetAttributes(
		attribute.Int("encounters", summary.Generated),
		attribute.Int("defeated", summary.Defeated),
		attribute.Int("score", summary.Score),
		attribute.Int("turns", summary.Turns),
		attribute.Bool("abandoned", summary.Abandoned),
	)
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "session abandoned")
		log.Warn("session abandoned", "error", err, "encounters", summary.Generated)
	}

	log.Info("session ended",
		"player", summary.Name,
		"encounters", summary.Generated,
		"defeated", summary.Defeated,
		"score", summary.Score,
		"turns", summary.Turns)

	return summary, err
}

// Summary reports the session's progress so far.
func (s *Session) Summary() Summary {
	sum := Summary{
		SessionID: s.ID,
		Generated: s.generated,
		Defeated:  s.wins,
		Turns:     s.turns,
	}
	if s.player != nil {
		sum.Name = s.player.Name
		sum.Score = s.player.Score
		if !s.player.IsAlive() {
			sum.Defeated = s.generated - 1
		}
	}
	return sum
}

func (s *Session) play(ctx context.Context) error {
	s.setState(ctx, StateIntro)
	if err := s.intro(ctx); err != nil {
		return err
	}

	rules := s.catalog.Rules
	for s.player.IsAlive() {
		s.setState(ctx, StateCombat)
		s.generated++
		enemy := s.spawnEnemy()
		s.out.EnemyAppears(s.player, enemy)

		logger.FromContext(ctx).Debug("encounter started",
			"encounter", s.generated,
			"enemy", enemy.ID(),
			"enemy_hp", enemy.HP,
			"enemy_weapon", enemy.Weapon.Name)

		enc := combat.NewEncounter(s.player, enemy)
		outcome, err := enc.Resolve(ctx, s, func(r combat.TurnResult) {
			s.turns++
			if r.Invalid {
				logger.FromContext(ctx).Debug("invalid action treated as skip", "turn", r.Turn)
			}
			s.out.TurnResolved(s.player, enemy, r)
		})
		if err != nil {
			return err
		}

		logger.FromContext(ctx).Debug("encounter ended",
			"encounter", s.generated,
			"outcome", outcome.String(),
			"turns", enc.Turns(),
			"player_hp", s.player.HP)

		if outcome != combat.StatePlayerWon {
			break
		}

		s.setState(ctx, StateIntermission)
		s.wins++
		s.player.AddScore(rules.ScorePerWin)
		s.out.Victory(enemy, rules.ScorePerWin, s.player.Score)
		s.loot(ctx)

		s.out.PressAnyKey()
		if err := s.readKey(ctx); err != nil {
			return err
		}
	}
	return nil
}

// intro reads the player's name and draws the starting weapon, then aid.
func (s *Session) intro(ctx context.Context) error {
	s.out.Welcome()
	s.out.AskName()
	name, err := s.readLine(ctx)
	if err != nil {
		return err
	}

	weapon := entity.NewWeaponFromDef(s.catalog.RandomWeapon(s.rng))
	aid := entity.NewAidFromDef(s.catalog.RandomAid(s.rng))
	s.player = entity.NewPlayer(name, s.catalog.Rules.PlayerMaxHealth, weapon, aid)
	s.out.PlayerCreated(s.player)

	logger.FromContext(ctx).Debug("player created",
		"weapon", weapon.Name,
		"aid", aid.Name,
		"hp", s.player.HP)
	return nil
}

// spawnEnemy draws the enemy's identity, health, then weapon.
func (s *Session) spawnEnemy() *entity.Enemy {
	def := s.catalog.RandomEnemy(s.rng)
	hp := s.catalog.RandomEnemyHealth(s.rng)
	weapon := entity.NewWeaponFromDef(s.catalog.RandomWeapon(s.rng))
	return entity.NewEnemyFromDef(def, hp, weapon)
}

// loot rolls the post-victory aid drop. The roll is always drawn; the aid
// itself only when the roll succeeds and the slot is empty.
func (s *Session) loot(ctx context.Context) {
	tracer := telemetry.Tracer("game")
	_, span := tracer.Start(ctx, "session.loot")
	defer span.End()

	dropped := s.catalog.RollAidDrop(s.rng)
	span.SetAttributes(
		attribute.Bool("aid.rolled", dropped),
		attribute.Bool("aid.held", s.player.HasAid()),
	)
	if !dropped || s.player.HasAid() {
		return
	}

	aid := entity.NewAidFromDef(s.catalog.RandomAid(s.rng))
	s.player.GiveAid(aid)
	s.out.AidFound(aid)

	span.SetAttributes(attribute.String("aid.name", aid.Name))
	logger.FromContext(ctx).Info("aid found", "aid", aid.Name)
}

// ChooseAction shows the menu and reads the next token.
func (s *Session) ChooseAction(ctx context.Context, _ *combat.Encounter) (string, error) {
	s.out.ActionMenu(s.player)
	return s.readLine(ctx)
}

func (s *Session) readLine(ctx context.Context) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	line, err := s.in.ReadLine(ctx)
	if err != nil {
		return "", inputError(err)
	}
	return line, nil
}

func (s *Session) readKey(ctx context.Context) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	if err := s.in.ReadKey(ctx); err != nil {
		return inputError(err)
	}
	return nil
}

func inputError(err error) error {
	if errors.Is(err, io.EOF) {
		return fmt.Errorf("%w: %w", ErrInputClosed, err)
	}
	return err
}

func (s *Session) setState(ctx context.Context, state State) {
	if s.state == state {
		return
	}
	logger.FromContext(ctx).Debug("phase changed", "from", s.state.String(), "to", state.String())
	s.state = state
}

// Ensure Session can drive an encounter
var _ combat.ActionChooser = (*Session)(nil)
