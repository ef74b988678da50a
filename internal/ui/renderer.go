package ui

import (
	"fmt"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"
	"golang.org/x/text/message"

	"github.com/samdwyer/textrogue/internal/combat"
	"github.com/samdwyer/textrogue/internal/entity"
	"github.com/samdwyer/textrogue/internal/game"
)

// width measures terminal cells. East Asian ambiguous runes, Cyrillic
// among them, count as one cell regardless of locale.
var width = func() *runewidth.Condition {
	cond := runewidth.NewCondition()
	cond.EastAsianWidth = false
	return cond
}()

// say prints one localised line.
func (c *Console) say(key message.Reference, args ...any) {
	c.printer.Fprintf(c.out, key, args...)
	fmt.Fprintln(c.out)
}

// paint wraps text in a truecolor escape when colour output is enabled.
func (c *Console) paint(text string, color tcell.Color) string {
	if !c.color || color == tcell.ColorDefault || !color.Valid() {
		return text
	}
	r, g, b := color.RGB()
	if r < 0 {
		return text
	}
	return fmt.Sprintf("\x1b[38;2;%d;%d;%dm%s\x1b[0m", r, g, b, text)
}

func (c *Console) weaponName(w *entity.Weapon) string {
	if w == nil {
		return "-"
	}
	return c.paint(w.Label(c.lang), w.Color())
}

func (c *Console) enemyName(e *entity.Enemy) string {
	return c.paint(e.Label(c.lang), e.Color())
}

// Welcome prints the greeting.
func (c *Console) Welcome() {
	c.say(msgWelcome)
}

// AskName prompts for the player's name.
func (c *Console) AskName() {
	c.say(msgAskName)
	fmt.Fprint(c.out, " ")
}

// PlayerCreated announces the player's name, starting gear and health.
func (c *Console) PlayerCreated(p *entity.Player) {
	fmt.Fprintln(c.out)
	c.say(msgYourName, p.Name)
	switch {
	case p.Weapon != nil && p.Aid != nil:
		c.say(msgStartingGear, c.weaponName(p.Weapon), p.Weapon.Damage,
			c.paint(p.Aid.Label(c.lang), p.Aid.Color()), p.Aid.HealAmount)
	case p.Weapon != nil:
		c.say(msgStartingNoAid, c.weaponName(p.Weapon), p.Weapon.Damage)
	}
	c.say(msgYourHealth, p.HP)
	fmt.Fprintln(c.out)
}

// EnemyAppears introduces the encounter's enemy.
func (c *Console) EnemyAppears(p *entity.Player, e *entity.Enemy) {
	damage := 0
	if e.Weapon != nil {
		damage = e.Weapon.Damage
	}
	c.say(msgEnemyAppears, p.Name, c.enemyName(e), e.HP, c.weaponName(e.Weapon), damage)
}

// ActionMenu lists the available actions and prompts for one.
func (c *Console) ActionMenu(p *entity.Player) {
	c.say(msgWhatToDo)
	c.say(msgMenuAttack)
	c.say(msgMenuSkip)
	if p.HasAid() {
		c.say(msgMenuAid)
	}
	fmt.Fprint(c.out, "> ")
}

// TurnResolved narrates the player's action and the enemy's answer.
func (c *Console) TurnResolved(p *entity.Player, e *entity.Enemy, r combat.TurnResult) {
	switch {
	case r.Invalid:
		c.say(msgInvalid)
	case r.AidUsed:
		c.say(msgUsedAid, p.Name)
		c.say(msgNowHealth, r.HealedTo)
	case r.PlayerStrike != nil:
		c.say(msgPlayerStrikes, p.Name, c.enemyName(e))
		if r.PlayerStrike.Damage == 0 && p.Weapon != nil && p.Weapon.Broken() {
			c.say(msgWeaponBroken, c.weaponName(p.Weapon))
		}
		c.say(msgHealthStatus, r.PlayerStrike.DefenderHP, r.PlayerStrike.AttackerHP)
	default:
		c.say(msgSkips, p.Name)
	}

	if r.EnemyStrike != nil {
		c.say(msgEnemyStrikes, c.enemyName(e))
		c.say(msgHealthStatus, r.EnemyStrike.AttackerHP, r.EnemyStrike.DefenderHP)
	}
}

// Victory announces a won encounter and the new score.
func (c *Console) Victory(e *entity.Enemy, points, score int) {
	fmt.Fprintln(c.out)
	c.say(msgVictory, c.enemyName(e), points, score)
}

// AidFound announces an aid pickup.
func (c *Console) AidFound(a *entity.Aid) {
	c.say(msgAidFound, c.paint(a.Label(c.lang), a.Color()))
}

// PressAnyKey prompts before the next encounter.
func (c *Console) PressAnyKey() {
	c.say(msgPressAnyKey)
}

// GameOver prints the boxed final summary.
func (c *Console) GameOver(s game.Summary) {
	lines := []string{
		c.printer.Sprintf(msgGameOver),
		"",
		c.printer.Sprintf(msgSummaryPlayer, s.Name),
		c.printer.Sprintf(msgSummaryWins, s.Defeated),
		c.printer.Sprintf(msgSummaryScore, s.Score),
		c.printer.Sprintf(msgSummaryTurns, s.Turns),
	}
	if s.Abandoned {
		lines = append(lines, "", c.printer.Sprintf(msgInterrupted))
	}

	fmt.Fprintln(c.out)
	fmt.Fprint(c.out, box(lines))
	c.say(msgThanks)
}

// box frames lines, padding each to the widest in terminal cells.
func box(lines []string) string {
	inner := 0
	for _, l := range lines {
		inner = max(inner, width.StringWidth(l))
	}

	var b strings.Builder
	b.WriteString("╔" + strings.Repeat("═", inner+2) + "╗\n")
	for _, l := range lines {
		b.WriteString("║ " + width.FillRight(l, inner) + " ║\n")
	}
	b.WriteString("╚" + strings.Repeat("═", inner+2) + "╝\n")
	return b.String()
}

// Ensure Console narrates sessions
var _ game.Narrator = (*Console)(nil)
