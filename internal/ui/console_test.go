package ui

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/gdamore/tcell/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/samdwyer/textrogue/internal/combat"
	"github.com/samdwyer/textrogue/internal/entity"
	"github.com/samdwyer/textrogue/internal/game"
	"github.com/samdwyer/textrogue/internal/gamedata"
)

func newTestConsole(input, lang string) (*Console, *bytes.Buffer) {
	var out bytes.Buffer
	return NewConsole(strings.NewReader(input), &out, Options{Lang: lang, Color: ColorNever}), &out
}

func TestNewConsoleLanguage(t *testing.T) {
	tests := []struct {
		lang string
		want string
	}{
		{"ru", "ru"},
		{"RU", "ru"},
		{"en", "en"},
		{"de", "en"},
		{"", "en"},
	}
	for _, tt := range tests {
		c, _ := newTestConsole("", tt.lang)
		assert.Equal(t, tt.want, c.Lang(), "lang %q", tt.lang)
	}
}

func TestReadLine(t *testing.T) {
	c, _ := newTestConsole("Hero\r\n 1\nlast", "en")
	ctx := context.Background()

	for _, want := range []string{"Hero", " 1", "last"} {
		line, err := c.ReadLine(ctx)
		require.NoError(t, err)
		assert.Equal(t, want, line)
	}

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, io.EOF)
}

func TestReadLineCancelled(t *testing.T) {
	c, _ := newTestConsole("Hero\n", "en")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.ReadLine(ctx)
	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, c.ReadKey(ctx), context.Canceled)
}

func TestReadKeyWithoutTerminal(t *testing.T) {
	c, _ := newTestConsole("anything\nnext\n", "en")
	ctx := context.Background()

	require.NoError(t, c.ReadKey(ctx))
	line, err := c.ReadLine(ctx)
	require.NoError(t, err)
	assert.Equal(t, "next", line)

	assert.ErrorIs(t, c.ReadKey(ctx), io.EOF)
}

func TestKeyError(t *testing.T) {
	assert.ErrorIs(t, keyError(0x03), ErrInterrupted)
	assert.ErrorIs(t, keyError(0x04), io.EOF)
	assert.NoError(t, keyError('a'))
	assert.NoError(t, keyError('\r'))
}

func TestWelcomeLocalised(t *testing.T) {
	c, out := newTestConsole("", "ru")
	c.Welcome()
	c.AskName()
	assert.Equal(t, "Добро пожаловать!\nКак тебя зовут:\n ", out.String())

	c, out = newTestConsole("", "en")
	c.Welcome()
	assert.Equal(t, "Welcome!\n", out.String())
}

func TestPlayerCreated(t *testing.T) {
	c, out := newTestConsole("", "en")
	p := entity.NewPlayer("Hero", 100, entity.NewWeapon("Sword", 15, 10), entity.NewAid("Medkit", 40))

	c.PlayerCreated(p)

	assert.Contains(t, out.String(), "Your name is Hero\n")
	assert.Contains(t, out.String(), "You found Sword (15), and also Medkit (40hp).\n")
	assert.Contains(t, out.String(), "You have 100hp.\n")
}

func TestEnemyAppearsUsesLanguageLabel(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "goblin", Name: "Гоблин", Names: map[string]string{"en": "Goblin"}}
	enemy := entity.NewEnemyFromDef(def, 42, entity.NewWeapon("Axe", 20, 8))
	p := entity.NewPlayer("Hero", 100, nil, nil)

	c, out := newTestConsole("", "en")
	c.EnemyAppears(p, enemy)
	assert.Equal(t, "Hero meets the enemy Goblin (42hp), the enemy wields Axe (20)\n", out.String())

	c, out = newTestConsole("", "ru")
	c.EnemyAppears(p, enemy)
	assert.Equal(t, "Hero встречает врага Гоблин (42hp), у врага есть оружие Axe (20)\n", out.String())
}

func TestActionMenu(t *testing.T) {
	c, out := newTestConsole("", "en")
	p := entity.NewPlayer("Hero", 100, nil, entity.NewAid("Medkit", 40))

	c.ActionMenu(p)
	assert.Equal(t, "What will you do?\n1. Attack\n2. Skip the turn\n3. Use the aid kit\n> ", out.String())

	out.Reset()
	p.Heal()
	c.ActionMenu(p)
	assert.NotContains(t, out.String(), "3.")
}

func TestTurnResolved(t *testing.T) {
	newFight := func(weapon *entity.Weapon) (*entity.Player, *entity.Enemy, *combat.Encounter) {
		p := entity.NewPlayer("Hero", 100, weapon, entity.NewAid("Medkit", 40))
		e := entity.NewEnemy("Goblin", 30, entity.NewWeapon("Twig", 1, 5))
		return p, e, combat.NewEncounter(p, e)
	}
	ctx := context.Background()

	t.Run("attack", func(t *testing.T) {
		c, out := newTestConsole("", "en")
		p, e, enc := newFight(entity.NewWeapon("Sword", 15, 10))

		c.TurnResolved(p, e, enc.Step(ctx, combat.ActionAttack))

		assert.Equal(t, "Hero struck the enemy Goblin\n"+
			"The enemy has 15hp, you have 100hp\n"+
			"The enemy Goblin struck you!\n"+
			"The enemy has 15hp, you have 99hp\n", out.String())
	})

	t.Run("killing blow", func(t *testing.T) {
		c, out := newTestConsole("", "en")
		p, e, enc := newFight(entity.NewWeapon("Cannon", 100, 1))

		c.TurnResolved(p, e, enc.Step(ctx, combat.ActionAttack))

		assert.Equal(t, "Hero struck the enemy Goblin\nThe enemy has 0hp, you have 100hp\n", out.String())
	})

	t.Run("broken weapon", func(t *testing.T) {
		c, out := newTestConsole("", "en")
		p, e, enc := newFight(entity.NewWeapon("Stick", 5, 0))

		c.TurnResolved(p, e, enc.Step(ctx, combat.ActionAttack))

		assert.Contains(t, out.String(), "Your Stick is broken and deals no damage\n")
	})

	t.Run("skip", func(t *testing.T) {
		c, out := newTestConsole("", "en")
		p, e, enc := newFight(nil)

		c.TurnResolved(p, e, enc.Step(ctx, combat.ActionSkip))

		assert.True(t, strings.HasPrefix(out.String(), "Hero skips the turn\n"))
		assert.NotContains(t, out.String(), "Invalid")
	})

	t.Run("invalid", func(t *testing.T) {
		c, out := newTestConsole("", "en")
		p, e, enc := newFight(nil)

		r := enc.Step(ctx, combat.ActionSkip)
		r.Invalid = true
		c.TurnResolved(p, e, r)

		assert.True(t, strings.HasPrefix(out.String(), "Invalid input, skipping the turn\n"))
		assert.NotContains(t, out.String(), "skips")
	})

	t.Run("aid", func(t *testing.T) {
		c, out := newTestConsole("", "en")
		p, e, enc := newFight(nil)
		p.TakeDamage(50)

		c.TurnResolved(p, e, enc.Step(ctx, combat.ActionUseAid))

		assert.Equal(t, "Hero used the aid kit\n"+
			"Now you have 90hp\n"+
			"The enemy Goblin struck you!\n"+
			"The enemy has 30hp, you have 89hp\n", out.String())
	})
}

func TestVictoryAndLoot(t *testing.T) {
	c, out := newTestConsole("", "ru")
	e := entity.NewEnemy("Гоблин", 30, nil)

	c.Victory(e, 10, 20)
	c.AidFound(entity.NewAid("аптечка", 40))
	c.PressAnyKey()

	assert.Equal(t, "\nВы победили Гоблин! +10 очков. Всего очков: 20\n"+
		"Вы нашли аптечка!\n"+
		"Нажмите любую клавишу для продолжения...\n", out.String())
}

func TestGameOverBox(t *testing.T) {
	for _, lang := range []string{"en", "ru"} {
		t.Run(lang, func(t *testing.T) {
			c, out := newTestConsole("", lang)
			c.GameOver(game.Summary{Name: "Жирный Hero", Generated: 4, Defeated: 3, Score: 30, Turns: 17, Abandoned: true})

			var boxLines []string
			for _, l := range strings.Split(out.String(), "\n") {
				if strings.HasPrefix(l, "╔") || strings.HasPrefix(l, "║") || strings.HasPrefix(l, "╚") {
					boxLines = append(boxLines, l)
				}
			}
			require.Len(t, boxLines, 10)
			for _, l := range boxLines {
				assert.Equal(t, width.StringWidth(boxLines[0]), width.StringWidth(l), "line %q", l)
			}
			assert.Contains(t, out.String(), "Жирный Hero")
		})
	}

	c, out := newTestConsole("", "en")
	c.GameOver(game.Summary{Name: "Hero", Defeated: 1, Score: 10, Turns: 3})
	assert.Contains(t, out.String(), "║ Enemies defeated: 1 ║")
	assert.Contains(t, out.String(), "║ Final score: 10     ║")
	assert.NotContains(t, out.String(), "interrupted")
	assert.True(t, strings.HasSuffix(out.String(), "Thanks for playing!\n"))
}

func TestPaint(t *testing.T) {
	red := tcell.NewRGBColor(255, 0, 0)

	c := NewConsole(strings.NewReader(""), io.Discard, Options{Color: ColorAlways})
	assert.Equal(t, "\x1b[38;2;255;0;0mSword\x1b[0m", c.paint("Sword", red))
	assert.Equal(t, "Sword", c.paint("Sword", tcell.ColorDefault))

	c = NewConsole(strings.NewReader(""), io.Discard, Options{Color: ColorNever})
	assert.Equal(t, "Sword", c.paint("Sword", red))

	// A buffer is never a terminal
	c = NewConsole(strings.NewReader(""), &bytes.Buffer{}, Options{Color: ColorAuto})
	assert.Equal(t, "Sword", c.paint("Sword", red))
}
