package armory

import (
	"github.com/KirkDiggler/rpg-duel/internal/entities"
)

var defaultWeapons = []entities.WeaponConfig{
	{Name: "Sword", Damage: 20, Category: entities.CategoryOffensive, Range: entities.RangeMelee},
	{Name: "Axe", Damage: 25, Category: entities.CategoryOffensive, Range: entities.RangeMelee},
	{Name: "Bow", Damage: 15, Category: entities.CategoryOffensive, Range: entities.RangeRanged},
	{Name: "Crossbow", Damage: 18, Category: entities.CategoryOffensive, Range: entities.RangeRanged},
	{Name: "Shield", Damage: 8, Defense: 12, Category: entities.CategoryDefensive, Range: entities.RangeMelee},
	{Name: "Sling", Damage: 5, Defense: 6, Category: entities.CategoryDefensive, Range: entities.RangeRanged},
}

var defaultMagic = []entities.MagicConfig{
	{Name: "Fireball", Damage: 30, Category: entities.CategoryOffensive},
	{Name: "Lightning", Damage: 25, Category: entities.CategoryOffensive},
	{Name: "Barrier", Defense: 15, Category: entities.CategoryDefensive},
	{Name: "Stoneskin", Defense: 10, Category: entities.CategoryDefensive},
}

// DefaultWeapons returns a fresh copy of the standard weapon pool
func DefaultWeapons() []*entities.Capability {
	out := make([]*entities.Capability, 0, len(defaultWeapons))
	for _, cfg := range defaultWeapons {
		w, err := entities.NewWeapon(cfg)
		if err != nil {
			// the table above is static
			panic(err)
		}
		out = append(out, w)
	}
	return out
}

// DefaultMagic returns a fresh copy of the standard magic pool
func DefaultMagic() []*entities.Capability {
	out := make([]*entities.Capability, 0, len(defaultMagic))
	for _, cfg := range defaultMagic {
		m, err := entities.NewMagic(cfg)
		if err != nil {
			panic(err)
		}
		out = append(out, m)
	}
	return out
}
