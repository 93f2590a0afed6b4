// Package testutils provides fixtures and deterministic dice for tests
package testutils

import (
	"github.com/KirkDiggler/rpg-duel/internal/entities"
)

// MustWeapon builds a weapon or panics. Test fixtures only.
func MustWeapon(name string, damage, defense int, category entities.Category, rangeType entities.RangeType) *entities.Capability {
	w, err := entities.NewWeapon(entities.WeaponConfig{
		Name:     name,
		Damage:   damage,
		Defense:  defense,
		Category: category,
		Range:    rangeType,
	})
	if err != nil {
		panic(err)
	}
	return w
}

// MustMagic builds a magic capability or panics. Test fixtures only.
func MustMagic(name string, damage, defense int, category entities.Category) *entities.Capability {
	m, err := entities.NewMagic(entities.MagicConfig{
		Name:     name,
		Damage:   damage,
		Defense:  defense,
		Category: category,
	})
	if err != nil {
		panic(err)
	}
	return m
}

// Common fixtures
func OffensiveSword() *entities.Capability {
	return MustWeapon("Sword", 20, 0, entities.CategoryOffensive, entities.RangeMelee)
}

func OffensiveBow() *entities.Capability {
	return MustWeapon("Bow", 12, 0, entities.CategoryOffensive, entities.RangeRanged)
}

func DefensiveShield() *entities.Capability {
	return MustWeapon("Shield", 8, 10, entities.CategoryDefensive, entities.RangeMelee)
}

func DefensiveSling() *entities.Capability {
	return MustWeapon("Sling", 4, 2, entities.CategoryDefensive, entities.RangeRanged)
}

func Fireball() *entities.Capability {
	return MustMagic("Fireball", 30, 0, entities.CategoryOffensive)
}

func Barrier() *entities.Capability {
	return MustMagic("Barrier", 0, 15, entities.CategoryDefensive)
}

// NewPlayer builds a player character or panics. Test fixtures only.
func NewPlayer(id int, name string, hp, attack, defense int, weapon, magic *entities.Capability) *entities.PlayerCharacter {
	pc, err := entities.NewPlayerCharacter(&entities.CharacterConfig{
		ID:      id,
		Name:    name,
		HP:      hp,
		Attack:  attack,
		Defense: defense,
		Weapon:  weapon,
		Magic:   magic,
	})
	if err != nil {
		panic(err)
	}
	return pc
}

// NewNPC builds a non-player character or panics. Test fixtures only.
func NewNPC(id int, name string, hp, attack, defense int, weapon, magic *entities.Capability) *entities.NonPlayerCharacter {
	npc, err := entities.NewNonPlayerCharacter(&entities.CharacterConfig{
		ID:      id,
		Name:    name,
		HP:      hp,
		Attack:  attack,
		Defense: defense,
		Weapon:  weapon,
		Magic:   magic,
	})
	if err != nil {
		panic(err)
	}
	return npc
}
