package entity

import (
	"testing"

	"github.com/samdwyer/textrogue/internal/gamedata"
)

func TestWeaponAttackSpendsDurability(t *testing.T) {
	w := NewWeapon("Sword", 15, 3)

	for i := 3; i > 0; i-- {
		if got := w.Attack(); got != 15 {
			t.Errorf("Attack() with durability %d = %d, want 15", i, got)
		}
		if w.Durability != i-1 {
			t.Errorf("Durability after attack = %d, want %d", w.Durability, i-1)
		}
	}

	if !w.Broken() {
		t.Error("weapon should be broken after durability is spent")
	}

	for i := 0; i < 5; i++ {
		if got := w.Attack(); got != 0 {
			t.Errorf("broken Attack() = %d, want 0", got)
		}
		if w.Durability != 0 {
			t.Errorf("broken weapon durability = %d, want 0", w.Durability)
		}
	}
}

func TestNewWeaponClampsNegatives(t *testing.T) {
	w := NewWeapon("Twig", -5, -1)
	if w.Damage != 0 || w.Durability != 0 {
		t.Errorf("NewWeapon clamps = (%d, %d), want (0, 0)", w.Damage, w.Durability)
	}
	if got := w.Attack(); got != 0 {
		t.Errorf("Attack() = %d, want 0", got)
	}
}

func TestWeaponFromDefIsIndependent(t *testing.T) {
	def := &gamedata.WeaponDef{ID: "axe", Name: "Топор", Names: map[string]string{"en": "Axe"}, Damage: 20, Durability: 2}

	a := NewWeaponFromDef(def)
	b := NewWeaponFromDef(def)

	a.Attack()
	a.Attack()

	if !a.Broken() {
		t.Error("first instance should be broken")
	}
	if b.Durability != 2 {
		t.Errorf("second instance durability = %d, want 2", b.Durability)
	}
	if def.Durability != 2 {
		t.Errorf("template durability mutated to %d", def.Durability)
	}
	if a.Label("en") != "Axe" || a.Label("ru") != "Топор" {
		t.Errorf("unexpected labels %q / %q", a.Label("en"), a.Label("ru"))
	}
}

func TestTakeDamageFloorsAtZero(t *testing.T) {
	tests := []struct {
		hp, damage int
		wantHP     int
		wantTaken  int
	}{
		{50, 10, 40, 10},
		{50, 50, 0, 50},
		{50, 1000, 0, 50},
		{50, 0, 50, 0},
		{50, -7, 50, 0},
	}

	for _, tt := range tests {
		e := NewEnemy("Goblin", tt.hp, nil)
		taken := e.TakeDamage(tt.damage)
		if e.HP != tt.wantHP || taken != tt.wantTaken {
			t.Errorf("TakeDamage(%d) from %d: hp=%d taken=%d, want hp=%d taken=%d",
				tt.damage, tt.hp, e.HP, taken, tt.wantHP, tt.wantTaken)
		}
	}

	p := NewPlayer("Hero", 100, nil, nil)
	p.TakeDamage(60)
	p.TakeDamage(60)
	if p.HP != 0 || p.IsAlive() {
		t.Errorf("player hp = %d alive = %v, want 0 and dead", p.HP, p.IsAlive())
	}
}

func TestFighterAttackDelegatesToWeapon(t *testing.T) {
	e := NewEnemy("Skeleton", 30, NewWeapon("Bow", 12, 1))
	if got := e.Attack(); got != 12 {
		t.Errorf("Attack() = %d, want 12", got)
	}
	if got := e.Attack(); got != 0 {
		t.Errorf("Attack() with broken weapon = %d, want 0", got)
	}

	unarmed := NewEnemy("Zombie", 30, nil)
	if got := unarmed.Attack(); got != 0 {
		t.Errorf("unarmed Attack() = %d, want 0", got)
	}
}

func TestHealWithoutAidIsNoop(t *testing.T) {
	p := NewPlayer("Hero", 100, nil, nil)
	p.TakeDamage(30)

	if got := p.Heal(); got != 0 {
		t.Errorf("Heal() without aid = %d, want 0", got)
	}
	if p.HP != 70 {
		t.Errorf("HP = %d, want 70", p.HP)
	}
}

func TestHealConsumesAid(t *testing.T) {
	p := NewPlayer("Hero", 100, nil, NewAid("аптечка", 40))
	p.TakeDamage(50)

	if got := p.Heal(); got != 40 {
		t.Errorf("Heal() = %d, want 40", got)
	}
	if p.HP != 90 {
		t.Errorf("HP = %d, want 90", p.HP)
	}
	if p.HasAid() {
		t.Error("aid should be consumed")
	}
	if got := p.Heal(); got != 0 {
		t.Errorf("second Heal() = %d, want 0", got)
	}
}

func TestHealCappedAtMax(t *testing.T) {
	p := NewPlayer("Hero", 100, nil, NewAid("аптечка", 40))
	p.TakeDamage(10)

	if got := p.Heal(); got != 10 {
		t.Errorf("Heal() = %d, want 10 (capped)", got)
	}
	if p.HP != 100 {
		t.Errorf("HP = %d, want 100", p.HP)
	}
	if p.HasAid() {
		t.Error("aid should be consumed even when the heal is capped")
	}
}

func TestGiveAid(t *testing.T) {
	p := NewPlayer("Hero", 100, nil, nil)

	if !p.GiveAid(NewAid("a", 10)) {
		t.Fatal("GiveAid into empty slot should succeed")
	}
	if p.GiveAid(NewAid("b", 20)) {
		t.Error("GiveAid into a full slot should fail")
	}
	if p.Aid.Name != "a" {
		t.Errorf("held aid = %q, want %q", p.Aid.Name, "a")
	}
	if p.GiveAid(nil) {
		t.Error("GiveAid(nil) should fail")
	}
}

func TestAddScore(t *testing.T) {
	p := NewPlayer("Hero", 100, nil, nil)
	p.AddScore(10)
	p.AddScore(10)
	p.AddScore(-5)
	if p.Score != 20 {
		t.Errorf("Score = %d, want 20", p.Score)
	}
}

func TestEnemyFromDef(t *testing.T) {
	def := &gamedata.EnemyDef{ID: "goblin", Name: "Гоблин", Names: map[string]string{"en": "Goblin"}, Color: "#00FF00"}
	e := NewEnemyFromDef(def, 45, NewWeapon("Нож", 20, 6))

	if e.ID() != "goblin" {
		t.Errorf("ID() = %q, want goblin", e.ID())
	}
	if e.HP != 45 || e.MaxHP != 45 {
		t.Errorf("health = %d/%d, want 45/45", e.HP, e.MaxHP)
	}
	if e.Label("en") != "Goblin" {
		t.Errorf("Label(en) = %q", e.Label("en"))
	}
	if e.Color() == NewEnemy("x", 1, nil).Color() {
		t.Error("def color should differ from the default color")
	}
}
