package duel

import (
	"time"

	"github.com/KirkDiggler/rpg-toolkit/dice"

	"github.com/KirkDiggler/rpg-duel/internal/combat"
	"github.com/KirkDiggler/rpg-duel/internal/entities"
)

// ResolveAttackInput defines the request for resolving one attack
type ResolveAttackInput struct {
	Attacker entities.Combatant
	Defender entities.Combatant
	Roller   dice.Roller
}

// ResolveAttackOutput defines the response for a resolved attack
type ResolveAttackOutput struct {
	AttackID   string                `json:"attack_id"`
	ResolvedAt time.Time             `json:"resolved_at"`
	Outcome    *combat.AttackOutcome `json:"outcome"`
	Report     *combat.Report        `json:"report"`
}

// GetChancesInput defines the request for parry and dodge chances. When
// Combatant is set its stats are used and Attack/Defense are ignored.
type GetChancesInput struct {
	Combatant entities.Combatant
	Attack    int
	Defense   int
}

// GetChancesOutput defines the response for parry and dodge chances
type GetChancesOutput struct {
	ParryChance int `json:"parry_chance"`
	DodgeChance int `json:"dodge_chance"`
}
