package combat

import "github.com/KirkDiggler/rpg-duel/internal/entities"

const (
	// MaxChance caps parry and dodge chances
	MaxChance = 100

	// percentPerTenPoints is the chance gained for every ten stat points
	percentPerTenPoints = 10
)

// ParryChance is the percentage chance the combatant parries, from its
// attack stat.
func ParryChance(c entities.Combatant) int {
	return scaledChance(c.AttackStat())
}

// DodgeChance is the percentage chance the combatant dodges, from its
// defense stat.
func DodgeChance(c entities.Combatant) int {
	return scaledChance(c.DefenseStat())
}

// ChanceForStat applies the parry/dodge scaling to a raw stat
func ChanceForStat(stat int) int {
	return scaledChance(stat)
}

func scaledChance(stat int) int {
	if stat <= 0 {
		return 0
	}
	if stat >= MaxChance*10/percentPerTenPoints {
		return MaxChance
	}
	return stat * percentPerTenPoints / 10
}
