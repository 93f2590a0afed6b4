// Package entities holds the combat data types: capabilities and the
// combatants that carry them. Nothing here rolls dice.
package entities

import (
	"strconv"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

// Entity types reported through core.Entity
const (
	TypePlayer = "player"
	TypeNPC    = "npc"
)

// Combatant is anything that can attack or be attacked. Combatants are
// single-owner values: callers serialize attacks against the same combatant.
type Combatant interface {
	core.Entity

	NumericID() int
	GetName() string
	HP() int
	AttackStat() int
	DefenseStat() int
	Weapon() *Capability
	Magic() *Capability

	// TakeDamage removes up to amount hit points and returns how many were
	// actually removed. HP never drops below zero.
	TakeDamage(amount int) int
	IsDefeated() bool
}

// CharacterConfig describes a combatant to build
type CharacterConfig struct {
	ID      int
	Name    string
	HP      int
	Attack  int
	Defense int
	Weapon  *Capability
	Magic   *Capability
}

// Validate rejects negative stats and mismatched equipment
func (c *CharacterConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	errors.ValidateRequired("name", c.Name, vb)
	errors.ValidateNonNegative("id", c.ID, vb)
	errors.ValidateNonNegative("hp", c.HP, vb)
	errors.ValidateNonNegative("attack", c.Attack, vb)
	errors.ValidateNonNegative("defense", c.Defense, vb)
	if c.Weapon != nil && c.Weapon.Kind() != KindWeapon {
		vb.InvalidField("weapon", "capability is not a weapon")
	}
	if c.Magic != nil && c.Magic.Kind() != KindMagic {
		vb.InvalidField("magic", "capability is not magic")
	}

	if err := vb.Build(); err != nil {
		return errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "invalid character config")
	}
	return nil
}

// Character is the data shared by every combatant variant
type Character struct {
	id      int
	name    string
	hp      int
	attack  int
	defense int
	weapon  *Capability
	magic   *Capability
}

func newCharacter(cfg *CharacterConfig) (*Character, error) {
	if cfg == nil {
		return nil, errors.InvalidConfiguration("character config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &Character{
		id:      cfg.ID,
		name:    cfg.Name,
		hp:      cfg.HP,
		attack:  cfg.Attack,
		defense: cfg.Defense,
		weapon:  cfg.Weapon,
		magic:   cfg.Magic,
	}, nil
}

// GetID returns the numeric id as a string for core.Entity
func (c *Character) GetID() string { return strconv.Itoa(c.id) }

// NumericID returns the battle-unique id
func (c *Character) NumericID() int { return c.id }

// SetID changes the id
func (c *Character) SetID(id int) { c.id = id }

// GetName returns the display name
func (c *Character) GetName() string { return c.name }

// SetName changes the display name
func (c *Character) SetName(name string) { c.name = name }

// HP returns the current hit points
func (c *Character) HP() int { return c.hp }

// SetHP sets hit points, clamping at zero
func (c *Character) SetHP(hp int) {
	if hp < 0 {
		hp = 0
	}
	c.hp = hp
}

// AttackStat returns the attack stat
func (c *Character) AttackStat() int { return c.attack }

// DefenseStat returns the defense stat
func (c *Character) DefenseStat() int { return c.defense }

// Weapon returns the equipped weapon, nil when none
func (c *Character) Weapon() *Capability { return c.weapon }

// Magic returns the equipped magic, nil when none
func (c *Character) Magic() *Capability { return c.magic }

// EquipWeapon replaces the equipped weapon
func (c *Character) EquipWeapon(weapon *Capability) error {
	if weapon == nil {
		return errors.InvalidArgument("weapon is required")
	}
	if weapon.Kind() != KindWeapon {
		return errors.InvalidArgumentf("%s is not a weapon", weapon.Name())
	}
	c.weapon = weapon
	return nil
}

// EquipMagic replaces the equipped magic
func (c *Character) EquipMagic(magic *Capability) error {
	if magic == nil {
		return errors.InvalidArgument("magic is required")
	}
	if magic.Kind() != KindMagic {
		return errors.InvalidArgumentf("%s is not magic", magic.Name())
	}
	c.magic = magic
	return nil
}

// TakeDamage subtracts amount from HP, clamped at zero. Overkill is not an error.
func (c *Character) TakeDamage(amount int) int {
	if amount <= 0 {
		return 0
	}
	if amount > c.hp {
		amount = c.hp
	}
	c.hp -= amount
	return amount
}

// Heal adds amount to HP
func (c *Character) Heal(amount int) int {
	if amount <= 0 {
		return 0
	}
	c.hp += amount
	return amount
}

// IsDefeated reports whether HP reached zero
func (c *Character) IsDefeated() bool { return c.hp == 0 }

// PlayerCharacter is a combatant controlled by a player
type PlayerCharacter struct {
	*Character
}

// NewPlayerCharacter builds a player-controlled combatant
func NewPlayerCharacter(cfg *CharacterConfig) (*PlayerCharacter, error) {
	char, err := newCharacter(cfg)
	if err != nil {
		return nil, err
	}
	return &PlayerCharacter{Character: char}, nil
}

// GetType returns the entity type for rpg-toolkit
func (p *PlayerCharacter) GetType() string { return TypePlayer }

// NonPlayerCharacter is a combatant controlled by the game
type NonPlayerCharacter struct {
	*Character
}

// NewNonPlayerCharacter builds a game-controlled combatant
func NewNonPlayerCharacter(cfg *CharacterConfig) (*NonPlayerCharacter, error) {
	char, err := newCharacter(cfg)
	if err != nil {
		return nil, err
	}
	return &NonPlayerCharacter{Character: char}, nil
}

// GetType returns the entity type for rpg-toolkit
func (n *NonPlayerCharacter) GetType() string { return TypeNPC }

// Compile-time check that both variants satisfy Combatant
var (
	_ Combatant = (*PlayerCharacter)(nil)
	_ Combatant = (*NonPlayerCharacter)(nil)
)
