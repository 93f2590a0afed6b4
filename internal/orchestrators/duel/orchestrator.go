// Package duel implements the duel orchestrator: it resolves attacks between
// two combatants, stamps them and publishes the result on the event bus.
package duel

import (
	"context"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/events"

	"github.com/KirkDiggler/rpg-duel/internal/combat"
	"github.com/KirkDiggler/rpg-duel/internal/errors"
	"github.com/KirkDiggler/rpg-duel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-duel/internal/pkg/idgen"
)

// Service defines the interface for duel operations
type Service interface {
	ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error)
	GetChances(ctx context.Context, input *GetChancesInput) (*GetChancesOutput, error)
}

// Config holds the dependencies for the duel orchestrator
type Config struct {
	EventBus    events.EventBus
	IDGenerator idgen.Generator
	Clock       clock.Clock
	Options     combat.Options
}

// Validate ensures all required dependencies are provided
func (c *Config) Validate() error {
	vb := errors.NewValidationBuilder()

	if c.EventBus == nil {
		vb.RequiredField("EventBus")
	}
	if c.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if c.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type orchestrator struct {
	eventBus events.EventBus
	idGen    idgen.Generator
	clock    clock.Clock
	resolver *combat.Resolver
}

// NewOrchestrator creates a new duel orchestrator with the provided dependencies
func NewOrchestrator(cfg *Config) (Service, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config is required")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &orchestrator{
		eventBus: cfg.EventBus,
		idGen:    cfg.IDGenerator,
		clock:    cfg.Clock,
		resolver: combat.NewResolver(cfg.Options),
	}, nil
}

// ResolveAttack resolves one attack. Hit points are committed to the
// combatants before the event goes out, so a publish failure is only logged.
func (o *orchestrator) ResolveAttack(ctx context.Context, input *ResolveAttackInput) (*ResolveAttackOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	vb := errors.NewValidationBuilder()
	if input.Attacker == nil {
		vb.RequiredField("attacker")
	}
	if input.Defender == nil {
		vb.RequiredField("defender")
	}
	if input.Roller == nil {
		vb.RequiredField("roller")
	}
	if err := vb.Build(); err != nil {
		return nil, err
	}

	attackID := o.idGen.Generate()

	outcome, err := o.resolver.Resolve(input.Attacker, input.Defender, input.Roller)
	if err != nil {
		slog.WarnContext(ctx, "Attack failed",
			"attack_id", attackID,
			"attacker_id", input.Attacker.GetID(),
			"defender_id", input.Defender.GetID(),
			"error", err)
		return nil, errors.Wrapf(err, "failed to resolve attack %s", attackID)
	}

	output := &ResolveAttackOutput{
		AttackID:   attackID,
		ResolvedAt: o.clock.Now(),
		Outcome:    outcome,
		Report:     combat.NewReport(input.Attacker, input.Defender, outcome),
	}

	slog.InfoContext(ctx, "Attack resolved",
		"attack_id", attackID,
		"attacker_id", input.Attacker.GetID(),
		"defender_id", input.Defender.GetID(),
		"attack_type", outcome.AttackType,
		"hit", outcome.Hit,
		"damage_dealt", outcome.DamageDealt,
		"defender_hp", outcome.DefenderRemainingHP,
		"parried", outcome.ParrySucceeded,
		"dodged", outcome.DodgeSucceeded,
		"terminal", outcome.Terminal)

	if err := o.eventBus.Publish(ctx, newAttackResolvedEvent(output, input)); err != nil {
		slog.ErrorContext(ctx, "Failed to publish attack event",
			"attack_id", attackID,
			"event", EventAttackResolved,
			"error", err)
	}

	return output, nil
}

// GetChances reports the parry and dodge chances for a combatant or raw stats
func (o *orchestrator) GetChances(_ context.Context, input *GetChancesInput) (*GetChancesOutput, error) {
	if input == nil {
		return nil, errors.InvalidArgument("input is required")
	}

	if input.Combatant != nil {
		return &GetChancesOutput{
			ParryChance: combat.ParryChance(input.Combatant),
			DodgeChance: combat.DodgeChance(input.Combatant),
		}, nil
	}

	vb := errors.NewValidationBuilder()
	errors.ValidateNonNegative("attack", input.Attack, vb)
	errors.ValidateNonNegative("defense", input.Defense, vb)
	if err := vb.Build(); err != nil {
		return nil, err
	}

	return &GetChancesOutput{
		ParryChance: combat.ChanceForStat(input.Attack),
		DodgeChance: combat.ChanceForStat(input.Defense),
	}, nil
}
