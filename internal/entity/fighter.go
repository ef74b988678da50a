package entity

// Fighter is the state shared by the player and enemies.
type Fighter struct {
	Name   string
	HP     int // Current hit points, in [0, MaxHP]
	MaxHP  int
	Weapon *Weapon // Exclusively owned
}

func newFighter(name string, maxHP int, weapon *Weapon) Fighter {
	return Fighter{
		Name:   name,
		HP:     maxHP,
		MaxHP:  maxHP,
		Weapon: weapon,
	}
}

// GetName returns the fighter's name.
func (f *Fighter) GetName() string { return f.Name }

// IsAlive returns true if the fighter has HP remaining.
func (f *Fighter) IsAlive() bool { return f.HP > 0 }

// GetHP returns current HP.
func (f *Fighter) GetHP() int { return f.HP }

// GetMaxHP returns maximum HP.
func (f *Fighter) GetMaxHP() int { return f.MaxHP }

// Attack strikes with the owned weapon. An unarmed fighter deals no damage.
func (f *Fighter) Attack() int {
	if f.Weapon == nil {
		return 0
	}
	return f.Weapon.Attack()
}

// TakeDamage reduces HP, flooring at zero, and returns actual damage taken.
func (f *Fighter) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, f.HP)
	f.HP -= actual
	return actual
}

// restore adds HP up to MaxHP and returns the actual amount restored.
func (f *Fighter) restore(amount int) int {
	if amount <= 0 {
		return 0
	}
	actual := min(amount, f.MaxHP-f.HP)
	f.HP += actual
	return actual
}
