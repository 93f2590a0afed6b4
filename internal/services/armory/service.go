// Package armory holds the weapon and magic pools combatants are equipped from
package armory

import (
	"context"
	"log/slog"
	"strings"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-duel/internal/entities"
	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

// Equipper is a combatant whose capability slots can be filled
type Equipper interface {
	entities.Combatant
	EquipWeapon(weapon *entities.Capability) error
	EquipMagic(magic *entities.Capability) error
}

// Service defines the armory operations
type Service interface {
	// Pools
	Weapons() []*entities.Capability
	Magic() []*entities.Capability
	FindWeapon(name string) (*entities.Capability, error)
	FindMagic(name string) (*entities.Capability, error)

	// Random assignment
	AssignWeapon(ctx context.Context, c Equipper) (*entities.Capability, error)
	AssignMagic(ctx context.Context, c Equipper) (*entities.Capability, error)
	Equip(ctx context.Context, c Equipper) error
}

// Config holds the dependencies for the armory
type Config struct {
	Roller  dice.Roller
	Weapons []*entities.Capability
	Magic   []*entities.Capability
}

// Validate ensures the roller and both pools are usable
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.Roller == nil {
		vb.RequiredField("Roller")
	}
	if len(c.Weapons) == 0 {
		vb.RequiredField("Weapons")
	}
	if len(c.Magic) == 0 {
		vb.RequiredField("Magic")
	}
	for i, w := range c.Weapons {
		if w == nil || w.Kind() != entities.KindWeapon {
			vb.Fieldf("Weapons", "entry %d is not a weapon", i)
		}
	}
	for i, m := range c.Magic {
		if m == nil || m.Kind() != entities.KindMagic {
			vb.Fieldf("Magic", "entry %d is not magic", i)
		}
	}

	return vb.Build()
}

type service struct {
	roller  dice.Roller
	weapons []*entities.Capability
	magic   []*entities.Capability
}

// NewService creates an armory. Pools are copied; capabilities are immutable
// and shared between combatants.
func NewService(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &service{
		roller:  cfg.Roller,
		weapons: append([]*entities.Capability(nil), cfg.Weapons...),
		magic:   append([]*entities.Capability(nil), cfg.Magic...),
	}, nil
}

func (s *service) Weapons() []*entities.Capability {
	return append([]*entities.Capability(nil), s.weapons...)
}

func (s *service) Magic() []*entities.Capability {
	return append([]*entities.Capability(nil), s.magic...)
}

func (s *service) FindWeapon(name string) (*entities.Capability, error) {
	return find(s.weapons, entities.KindWeapon, name)
}

func (s *service) FindMagic(name string) (*entities.Capability, error) {
	return find(s.magic, entities.KindMagic, name)
}

func (s *service) AssignWeapon(ctx context.Context, c Equipper) (*entities.Capability, error) {
	if c == nil {
		return nil, errors.InvalidArgument("combatant is required")
	}

	weapon, err := s.pick(s.weapons)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick weapon")
	}
	if err := c.EquipWeapon(weapon); err != nil {
		return nil, errors.Wrap(err, "failed to equip weapon")
	}

	slog.DebugContext(ctx, "Weapon assigned",
		"combatant_id", c.GetID(),
		"weapon", weapon.Name())

	return weapon, nil
}

func (s *service) AssignMagic(ctx context.Context, c Equipper) (*entities.Capability, error) {
	if c == nil {
		return nil, errors.InvalidArgument("combatant is required")
	}

	magic, err := s.pick(s.magic)
	if err != nil {
		return nil, errors.Wrap(err, "failed to pick magic")
	}
	if err := c.EquipMagic(magic); err != nil {
		return nil, errors.Wrap(err, "failed to equip magic")
	}

	slog.DebugContext(ctx, "Magic assigned",
		"combatant_id", c.GetID(),
		"magic", magic.Name())

	return magic, nil
}

// Equip fills whichever slots are empty. Equipped capabilities are kept.
func (s *service) Equip(ctx context.Context, c Equipper) error {
	if c == nil {
		return errors.InvalidArgument("combatant is required")
	}

	if c.Weapon() == nil {
		if _, err := s.AssignWeapon(ctx, c); err != nil {
			return err
		}
	}
	if c.Magic() == nil {
		if _, err := s.AssignMagic(ctx, c); err != nil {
			return err
		}
	}

	return nil
}

// pick rolls one die sized to the pool, so every entry is equally likely
func (s *service) pick(pool []*entities.Capability) (*entities.Capability, error) {
	roll, err := s.roller.Roll(len(pool))
	if err != nil {
		return nil, err
	}
	if roll < 1 || roll > len(pool) {
		return nil, errors.Internalf("roll %d outside pool of %d", roll, len(pool))
	}
	return pool[roll-1], nil
}

func find(pool []*entities.Capability, kind entities.CapabilityKind, name string) (*entities.Capability, error) {
	for _, c := range pool {
		if strings.EqualFold(c.Name(), strings.TrimSpace(name)) {
			return c, nil
		}
	}
	return nil, errors.NotFoundf("%s %q not found", kind, name).
		WithMeta("name", name)
}
