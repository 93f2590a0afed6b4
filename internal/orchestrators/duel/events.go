package duel

import (
	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-duel/internal/combat"
)

// EventAttackResolved is published once per resolved attack. The attacker is
// the event source and the defender its target.
const EventAttackResolved = "duel.attack.resolved"

// Event context keys
const (
	ContextAttackID            = "attack_id"
	ContextResolvedAt          = "resolved_at"
	ContextAttackType          = "attack_type"
	ContextHit                 = "hit"
	ContextDamageDealt         = "damage_dealt"
	ContextDefenderRemainingHP = "defender_remaining_hp"
	ContextParrySucceeded      = "parry_succeeded"
	ContextDodgeSucceeded      = "dodge_succeeded"
	ContextCounterDamage       = "counter_damage"
	ContextTerminal            = "terminal"
)

func newAttackResolvedEvent(out *ResolveAttackOutput, input *ResolveAttackInput) events.Event {
	event := events.NewGameEvent(EventAttackResolved, input.Attacker, input.Defender)

	o := out.Outcome
	ctx := event.Context()
	ctx.Set(ContextAttackID, out.AttackID)
	ctx.Set(ContextResolvedAt, out.ResolvedAt)
	ctx.Set(ContextAttackType, string(o.AttackType))
	ctx.Set(ContextHit, o.Hit)
	ctx.Set(ContextDamageDealt, o.DamageDealt)
	ctx.Set(ContextDefenderRemainingHP, o.DefenderRemainingHP)
	ctx.Set(ContextParrySucceeded, o.ParrySucceeded)
	ctx.Set(ContextDodgeSucceeded, o.DodgeSucceeded)
	ctx.Set(ContextCounterDamage, o.CounterDamage)
	ctx.Set(ContextTerminal, o.Terminal)

	return event
}

// StringContext reads a string value from an event's context
func StringContext(event events.Event, key string) (string, bool) {
	if val, ok := event.Context().Get(key); ok {
		if s, ok := val.(string); ok {
			return s, true
		}
	}
	return "", false
}

// IntContext reads an int value from an event's context
func IntContext(event events.Event, key string) (int, bool) {
	if val, ok := event.Context().Get(key); ok {
		if i, ok := val.(int); ok {
			return i, true
		}
	}
	return 0, false
}

// BoolContext reads a bool value from an event's context
func BoolContext(event events.Event, key string) (value, exists bool) {
	if val, ok := event.Context().Get(key); ok {
		if b, ok := val.(bool); ok {
			return b, true
		}
	}
	return false, false
}

// AttackTypeContext is the attack type carried by an event, or none
func AttackTypeContext(event events.Event) combat.AttackType {
	if s, ok := StringContext(event, ContextAttackType); ok {
		return combat.AttackType(s)
	}
	return combat.AttackTypeNone
}
