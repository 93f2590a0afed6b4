package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"

	"github.com/KirkDiggler/rpg-toolkit/dice"
	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-duel/internal/combat"
	"github.com/KirkDiggler/rpg-duel/internal/entities"
	"github.com/KirkDiggler/rpg-duel/internal/orchestrators/duel"
	"github.com/KirkDiggler/rpg-duel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-duel/internal/pkg/idgen"
	"github.com/KirkDiggler/rpg-duel/internal/pkg/rng"
	"github.com/KirkDiggler/rpg-duel/internal/services/armory"
)

type combatantFlags struct {
	name    string
	hp      int
	attack  int
	defense int
	weapon  string
	magic   string
}

var (
	attackerFlags combatantFlags
	defenderFlags combatantFlags
	seed          int64
	replayable    bool
	magicDamage   bool
	jsonOutput    bool
)

var attackCmd = &cobra.Command{
	Use:   "attack",
	Short: "Resolve one attack",
	Long: `Resolve one attack from the attacker against the defender. Weapons and magic
left unset are drawn from the armory with the same dice as the attack.`,
	RunE: runAttack,
}

func init() {
	bindCombatantFlags(attackCmd, "attacker", &attackerFlags, combatantFlags{name: "Hero", hp: 100, attack: 50, defense: 30})
	bindCombatantFlags(attackCmd, "defender", &defenderFlags, combatantFlags{name: "Goblin", hp: 80, attack: 30, defense: 40})

	attackCmd.Flags().Int64Var(&seed, "seed", 0, "dice seed, 0 for crypto dice")
	attackCmd.Flags().BoolVar(&replayable, "replayable", false, "pick a random seed and print it, when --seed is 0")
	attackCmd.Flags().BoolVar(&magicDamage, "magic-damage", false, "apply magic damage when magic carries the attack")
	attackCmd.Flags().BoolVar(&jsonOutput, "json", false, "print the result as JSON")
}

func bindCombatantFlags(cmd *cobra.Command, prefix string, f *combatantFlags, defaults combatantFlags) {
	cmd.Flags().StringVar(&f.name, prefix+"-name", defaults.name, prefix+" name")
	cmd.Flags().IntVar(&f.hp, prefix+"-hp", defaults.hp, prefix+" hit points")
	cmd.Flags().IntVar(&f.attack, prefix+"-attack", defaults.attack, prefix+" attack stat")
	cmd.Flags().IntVar(&f.defense, prefix+"-defense", defaults.defense, prefix+" defense stat")
	cmd.Flags().StringVar(&f.weapon, prefix+"-weapon", "", prefix+" weapon name, random when empty")
	cmd.Flags().StringVar(&f.magic, prefix+"-magic", "", prefix+" magic name, random when empty")
}

type attackResult struct {
	Attacker combatantSummary `json:"attacker"`
	Defender combatantSummary `json:"defender"`
	Seed     int64            `json:"seed,omitempty"`
	*duel.ResolveAttackOutput
}

type combatantSummary struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	HP       int    `json:"hp"`
	Weapon   string `json:"weapon"`
	Magic    string `json:"magic"`
	Defeated bool   `json:"defeated"`
}

func summarize(c entities.Combatant) combatantSummary {
	return combatantSummary{
		ID:       c.GetID(),
		Name:     c.GetName(),
		HP:       c.HP(),
		Weapon:   c.Weapon().Name(),
		Magic:    c.Magic().Name(),
		Defeated: c.IsDefeated(),
	}
}

func runAttack(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	envCfg.applyAttackDefaults(cmd)

	if seed == 0 && replayable {
		s, err := rng.NewSeed()
		if err != nil {
			return fmt.Errorf("failed to pick seed: %w", err)
		}
		seed = s
	}

	var roller dice.Roller = dice.DefaultRoller
	if seed != 0 {
		roller = rng.NewSeeded(seed)
	}

	arm, err := armory.NewService(&armory.Config{
		Roller:  roller,
		Weapons: armory.DefaultWeapons(),
		Magic:   armory.DefaultMagic(),
	})
	if err != nil {
		return fmt.Errorf("failed to create armory: %w", err)
	}

	attacker, err := buildCombatant(ctx, arm, 1, attackerFlags, entities.TypePlayer)
	if err != nil {
		return fmt.Errorf("attacker: %w", err)
	}
	defender, err := buildCombatant(ctx, arm, 2, defenderFlags, entities.TypeNPC)
	if err != nil {
		return fmt.Errorf("defender: %w", err)
	}

	bus := events.NewBus()
	bus.SubscribeFunc(duel.EventAttackResolved, 100, func(ctx context.Context, e events.Event) error {
		id, _ := duel.StringContext(e, duel.ContextAttackID)
		dealt, _ := duel.IntContext(e, duel.ContextDamageDealt)
		slog.DebugContext(ctx, "Event received",
			"event", duel.EventAttackResolved,
			"attack_id", id,
			"attack_type", duel.AttackTypeContext(e),
			"damage_dealt", dealt)
		return nil
	})

	svc, err := duel.NewOrchestrator(&duel.Config{
		EventBus:    bus,
		IDGenerator: idgen.NewUUID("atk"),
		Clock:       clock.New(),
		Options:     combat.Options{MagicDamageForMagicAttacks: magicDamage},
	})
	if err != nil {
		return fmt.Errorf("failed to create duel orchestrator: %w", err)
	}

	out, err := svc.ResolveAttack(ctx, &duel.ResolveAttackInput{
		Attacker: attacker,
		Defender: defender,
		Roller:   roller,
	})
	if err != nil {
		return err
	}

	if jsonOutput {
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(attackResult{
			Attacker:            summarize(attacker),
			Defender:            summarize(defender),
			Seed:                seed,
			ResolveAttackOutput: out,
		})
	}

	w := cmd.OutOrStdout()
	if seed != 0 {
		fmt.Fprintf(w, "seed %d\n", seed)
	}
	fmt.Fprintf(w, "%s (%s, %s) vs %s (%s, %s)\n",
		attacker.GetName(), attacker.Weapon().Name(), attacker.Magic().Name(),
		defender.GetName(), defender.Weapon().Name(), defender.Magic().Name())
	fmt.Fprintln(w, out.Report.String())
	fmt.Fprintf(w, "%s: %d HP, %s: %d HP\n",
		attacker.GetName(), attacker.HP(), defender.GetName(), defender.HP())
	return nil
}

func buildCombatant(ctx context.Context, arm armory.Service, id int, f combatantFlags, kind string) (armory.Equipper, error) {
	cfg := &entities.CharacterConfig{
		ID:      id,
		Name:    f.name,
		HP:      f.hp,
		Attack:  f.attack,
		Defense: f.defense,
	}

	if f.weapon != "" {
		w, err := arm.FindWeapon(f.weapon)
		if err != nil {
			return nil, err
		}
		cfg.Weapon = w
	}
	if f.magic != "" {
		m, err := arm.FindMagic(f.magic)
		if err != nil {
			return nil, err
		}
		cfg.Magic = m
	}

	var (
		c   armory.Equipper
		err error
	)
	if kind == entities.TypePlayer {
		c, err = entities.NewPlayerCharacter(cfg)
	} else {
		c, err = entities.NewNonPlayerCharacter(cfg)
	}
	if err != nil {
		return nil, err
	}

	if err := arm.Equip(ctx, c); err != nil {
		return nil, err
	}
	return c, nil
}
