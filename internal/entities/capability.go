package entities

import (
	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

// CapabilityKind distinguishes weapons from magic
type CapabilityKind string

// Capability kinds
const (
	KindWeapon CapabilityKind = "weapon"
	KindMagic  CapabilityKind = "magic"
)

// Category says whether a capability is used to attack or to protect
type Category string

// Capability categories
const (
	CategoryOffensive Category = "offensive"
	CategoryDefensive Category = "defensive"
)

// IsValid checks if the category is known
func (c Category) IsValid() bool {
	return c == CategoryOffensive || c == CategoryDefensive
}

// RangeType is the reach of a weapon. Magic has no range.
type RangeType string

// Range types
const (
	RangeMelee  RangeType = "melee"
	RangeRanged RangeType = "ranged"
	RangeNone   RangeType = "none"
)

// Capability is a weapon or a magic item. It is immutable once built and may
// be shared between combatants.
type Capability struct {
	name     string
	kind     CapabilityKind
	damage   int
	defense  int
	category Category
	rangeTyp RangeType
}

// WeaponConfig describes a weapon to build
type WeaponConfig struct {
	Name     string
	Damage   int
	Defense  int
	Category Category
	Range    RangeType
}

// MagicConfig describes a magic capability to build
type MagicConfig struct {
	Name     string
	Damage   int
	Defense  int
	Category Category
}

// NewWeapon builds a weapon capability
func NewWeapon(cfg WeaponConfig) (*Capability, error) {
	vb := errors.NewValidationBuilder()
	validateCapability(cfg.Name, cfg.Damage, cfg.Defense, cfg.Category, vb)
	errors.ValidateEnum("range", string(cfg.Range), []string{string(RangeMelee), string(RangeRanged)}, vb)

	if err := vb.Build(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "invalid weapon config")
	}

	return &Capability{
		name:     cfg.Name,
		kind:     KindWeapon,
		damage:   cfg.Damage,
		defense:  cfg.Defense,
		category: cfg.Category,
		rangeTyp: cfg.Range,
	}, nil
}

// NewMagic builds a magic capability
func NewMagic(cfg MagicConfig) (*Capability, error) {
	vb := errors.NewValidationBuilder()
	validateCapability(cfg.Name, cfg.Damage, cfg.Defense, cfg.Category, vb)

	if err := vb.Build(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInvalidConfiguration, "invalid magic config")
	}

	return &Capability{
		name:     cfg.Name,
		kind:     KindMagic,
		damage:   cfg.Damage,
		defense:  cfg.Defense,
		category: cfg.Category,
		rangeTyp: RangeNone,
	}, nil
}

func validateCapability(name string, damage, defense int, category Category, vb *errors.ValidationBuilder) {
	errors.ValidateRequired("name", name, vb)
	errors.ValidateNonNegative("damage", damage, vb)
	errors.ValidateNonNegative("defense", defense, vb)
	if !category.IsValid() {
		vb.InvalidField("category", "must be offensive or defensive")
	}
}

// Name returns the display name
func (c *Capability) Name() string { return c.name }

// Kind returns whether this is a weapon or magic
func (c *Capability) Kind() CapabilityKind { return c.kind }

// Damage returns the damage value
func (c *Capability) Damage() int { return c.damage }

// Defense returns the defense value
func (c *Capability) Defense() int { return c.defense }

// Category returns the offensive/defensive category
func (c *Capability) Category() Category { return c.category }

// Range returns the range type; always RangeNone for magic
func (c *Capability) Range() RangeType { return c.rangeTyp }

// IsOffensive reports whether the capability can carry an attack
func (c *Capability) IsOffensive() bool { return c.category == CategoryOffensive }

// IsDefensive reports whether the capability protects its holder
func (c *Capability) IsDefensive() bool { return c.category == CategoryDefensive }

// IsMelee reports whether the capability is a melee weapon
func (c *Capability) IsMelee() bool { return c.rangeTyp == RangeMelee }

// IsRanged reports whether the capability is a ranged weapon
func (c *Capability) IsRanged() bool { return c.rangeTyp == RangeRanged }
