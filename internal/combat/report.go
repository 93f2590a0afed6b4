package combat

import (
	"fmt"
	"strings"

	"github.com/KirkDiggler/rpg-duel/internal/entities"
)

// EntryKind identifies a step of a resolved attack
type EntryKind string

// Report entry kinds, in the order they can appear
const (
	EntryNoOffense        EntryKind = "no_offense"
	EntryAttack           EntryKind = "attack"
	EntryMiss             EntryKind = "miss"
	EntryHit              EntryKind = "hit"
	EntryDefenderDefeated EntryKind = "defender_defeated"
	EntryParry            EntryKind = "parry"
	EntryParryFailed      EntryKind = "parry_failed"
	EntryCounter          EntryKind = "counter"
	EntryAttackerDefeated EntryKind = "attacker_defeated"
	EntryDodge            EntryKind = "dodge"
	EntryDodgeFailed      EntryKind = "dodge_failed"
)

// ReportEntry is one step of the attack, ready for a presentation layer
type ReportEntry struct {
	Kind      EntryKind `json:"kind"`
	Actor     string    `json:"actor"`
	Target    string    `json:"target,omitempty"`
	Amount    int       `json:"amount,omitempty"`
	Remaining int       `json:"remaining,omitempty"`
	Detail    string    `json:"detail,omitempty"`
}

// Report is the ordered, structured account of one attack
type Report struct {
	Entries []ReportEntry `json:"entries"`
}

// NewReport maps an outcome to report entries. The combatants are only read
// for their names.
func NewReport(attacker, defender entities.Combatant, outcome *AttackOutcome) *Report {
	report := &Report{}
	if outcome == nil {
		return report
	}

	atk := attacker.GetName()
	def := defender.GetName()

	if outcome.NoOffensiveCapability {
		report.add(ReportEntry{Kind: EntryNoOffense, Actor: atk, Target: def})
		return report
	}

	report.add(ReportEntry{
		Kind:   EntryAttack,
		Actor:  atk,
		Target: def,
		Amount: outcome.Margin,
		Detail: fmt.Sprintf("%s attack, roll %d against %d (defense %d)",
			outcome.AttackType, outcome.AttackerRoll, outcome.DefenderRoll, outcome.EffectiveDefense),
	})

	if !outcome.Hit {
		report.add(ReportEntry{Kind: EntryMiss, Actor: atk, Target: def})
		return report
	}

	// defender HP before the attack; the hit entry shows what the hit alone
	// left, ignoring any later parry or dodge
	before := outcome.DefenderRemainingHP + outcome.DamageDealt
	report.add(ReportEntry{
		Kind:      EntryHit,
		Actor:     atk,
		Target:    def,
		Amount:    outcome.Damage,
		Remaining: before - min(outcome.Damage, before),
		Detail:    outcome.DamageSource,
	})

	if outcome.Terminal {
		report.add(ReportEntry{Kind: EntryDefenderDefeated, Actor: def})
		return report
	}

	if outcome.ParryAttempted {
		if !outcome.ParrySucceeded {
			report.add(ReportEntry{Kind: EntryParryFailed, Actor: def, Target: atk})
		} else {
			report.add(ReportEntry{Kind: EntryParry, Actor: def, Target: atk, Amount: outcome.Damage})
			report.add(ReportEntry{
				Kind:      EntryCounter,
				Actor:     def,
				Target:    atk,
				Amount:    outcome.CounterDamage,
				Remaining: outcome.AttackerRemainingHP,
			})
			if outcome.AttackerDefeated {
				report.add(ReportEntry{Kind: EntryAttackerDefeated, Actor: atk})
			}
			return report
		}
	}

	if outcome.DodgeAttempted {
		if outcome.DodgeSucceeded {
			report.add(ReportEntry{Kind: EntryDodge, Actor: def, Target: atk, Amount: outcome.Damage})
		} else {
			report.add(ReportEntry{Kind: EntryDodgeFailed, Actor: def, Target: atk})
		}
	}

	return report
}

func (r *Report) add(entry ReportEntry) {
	r.Entries = append(r.Entries, entry)
}

// String renders the report as plain text, one line per entry
func (r *Report) String() string {
	lines := make([]string, len(r.Entries))
	for i, entry := range r.Entries {
		lines[i] = entry.String()
	}
	return strings.Join(lines, "\n")
}

// String renders a single entry
func (e ReportEntry) String() string {
	switch e.Kind {
	case EntryNoOffense:
		return fmt.Sprintf("%s fails to attack %s: no offensive capability", e.Actor, e.Target)
	case EntryAttack:
		return fmt.Sprintf("%s attacks %s: %s, margin %d", e.Actor, e.Target, e.Detail, e.Amount)
	case EntryMiss:
		return "Missed!"
	case EntryHit:
		return fmt.Sprintf("Hit! %s deals %d damage to %s with %s, %d HP left",
			e.Actor, e.Amount, e.Target, e.Detail, e.Remaining)
	case EntryDefenderDefeated, EntryAttackerDefeated:
		return fmt.Sprintf("%s is defeated!", e.Actor)
	case EntryParry:
		return fmt.Sprintf("Parry! %s turns aside %d damage", e.Actor, e.Amount)
	case EntryParryFailed:
		return fmt.Sprintf("%s fails to parry, the damage stands", e.Actor)
	case EntryCounter:
		return fmt.Sprintf("Counter-attack! %s deals %d damage to %s, %d HP left",
			e.Actor, e.Amount, e.Target, e.Remaining)
	case EntryDodge:
		return fmt.Sprintf("Dodge! %s avoids %d damage", e.Actor, e.Amount)
	case EntryDodgeFailed:
		return fmt.Sprintf("%s fails to dodge", e.Actor)
	default:
		return string(e.Kind)
	}
}
