package gamedata

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gdamore/tcell/v2"
	"github.com/go-playground/validator/v10"
)

// catalogFile is the name of the embedded catalog.
const catalogFile = "catalog.json"

// Rules holds the numeric constants a session plays by.
type Rules struct {
	PlayerMaxHealth int `json:"playerMaxHealth" validate:"gt=0"`
	EnemyHealthMin  int `json:"enemyHealthMin" validate:"gt=0"`
	EnemyHealthMax  int `json:"enemyHealthMax" validate:"gtefield=EnemyHealthMin"`
	ScorePerWin     int `json:"scorePerWin" validate:"gte=0"`
	AidDropChance   int `json:"aidDropChance" validate:"gte=0,lte=100"` // Percent rolled after every win
}

// EnemyDef defines an enemy identity. Health and weapon are rolled per encounter.
type EnemyDef struct {
	ID    string            `json:"id" validate:"required"`
	Name  string            `json:"name" validate:"required"`  // Display name in the default language
	Names map[string]string `json:"names,omitempty"`           // Display names keyed by language tag
	Color string            `json:"color" validate:"omitempty,hexcolor"`
}

// WeaponDef defines a weapon template. Every draw produces an independent copy.
type WeaponDef struct {
	ID         string            `json:"id" validate:"required"`
	Name       string            `json:"name" validate:"required"`
	Names      map[string]string `json:"names,omitempty"`
	Damage     int               `json:"damage" validate:"gte=0"`
	Durability int               `json:"durability" validate:"gte=0"` // Number of effective strikes
	Color      string            `json:"color" validate:"omitempty,hexcolor"`
}

// AidDef defines a single-use healing item.
type AidDef struct {
	ID         string            `json:"id" validate:"required"`
	Name       string            `json:"name" validate:"required"`
	Names      map[string]string `json:"names,omitempty"`
	HealAmount int               `json:"healAmount" validate:"gte=0"`
	Color      string            `json:"color" validate:"omitempty,hexcolor"`
}

// Catalog is the complete set of content a session draws from.
type Catalog struct {
	Rules   Rules       `json:"rules"`
	Enemies []EnemyDef  `json:"enemies" validate:"min=1,unique=ID,dive"`
	Weapons []WeaponDef `json:"weapons" validate:"min=1,unique=ID,dive"`
	Aids    []AidDef    `json:"aids" validate:"min=1,unique=ID,dive"`
}

// Label returns the display name for lang, falling back to Name.
func (e *EnemyDef) Label(lang string) string { return label(e.Name, e.Names, lang) }

// TCellColor returns the color as a tcell.Color.
func (e *EnemyDef) TCellColor() tcell.Color { return colorOrDefault(e.Color) }

// Label returns the display name for lang, falling back to Name.
func (w *WeaponDef) Label(lang string) string { return label(w.Name, w.Names, lang) }

// TCellColor returns the color as a tcell.Color.
func (w *WeaponDef) TCellColor() tcell.Color { return colorOrDefault(w.Color) }

// Label returns the display name for lang, falling back to Name.
func (a *AidDef) Label(lang string) string { return label(a.Name, a.Names, lang) }

// TCellColor returns the color as a tcell.Color.
func (a *AidDef) TCellColor() tcell.Color { return colorOrDefault(a.Color) }

func label(name string, names map[string]string, lang string) string {
	if n, ok := names[lang]; ok && n != "" {
		return n
	}
	return name
}

var validate = validator.New()

// Validate checks the catalog for missing or out-of-range values.
func (c *Catalog) Validate() error {
	if err := validate.Struct(c); err != nil {
		return fmt.Errorf("invalid catalog: %w", err)
	}
	return nil
}

// LoadCatalog loads and validates the embedded catalog.json.
func LoadCatalog() (*Catalog, error) {
	catalog, err := Load[Catalog](catalogFile)
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// LoadCatalogFile loads and validates a catalog from a JSON file on disk.
func LoadCatalogFile(path string) (*Catalog, error) {
	catalog, err := LoadFS[Catalog](os.DirFS(filepath.Dir(path)), filepath.Base(path))
	if err != nil {
		return nil, err
	}
	if err := catalog.Validate(); err != nil {
		return nil, err
	}
	return &catalog, nil
}

// MustLoadCatalog loads the embedded catalog, panicking on error.
func MustLoadCatalog() *Catalog {
	catalog, err := LoadCatalog()
	if err != nil {
		panic(err)
	}
	return catalog
}

// RandomEnemy selects an enemy definition uniformly.
func (c *Catalog) RandomEnemy(s Sampler) *EnemyDef {
	return Pick(s, c.Enemies)
}

// RandomWeapon selects a weapon template uniformly.
func (c *Catalog) RandomWeapon(s Sampler) *WeaponDef {
	return Pick(s, c.Weapons)
}

// RandomAid selects an aid template uniformly.
func (c *Catalog) RandomAid(s Sampler) *AidDef {
	return Pick(s, c.Aids)
}

// RandomEnemyHealth rolls an enemy's maximum health within the rules' inclusive range.
func (c *Catalog) RandomEnemyHealth(s Sampler) int {
	return IntRange(s, c.Rules.EnemyHealthMin, c.Rules.EnemyHealthMax)
}

// RollAidDrop reports whether the post-victory aid roll succeeded.
func (c *Catalog) RollAidDrop(s Sampler) bool {
	return Chance(s, c.Rules.AidDropChance)
}
