package main

import (
	"context"
	"fmt"

	"github.com/KirkDiggler/rpg-toolkit/events"
	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-duel/internal/orchestrators/duel"
	"github.com/KirkDiggler/rpg-duel/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-duel/internal/pkg/idgen"
)

var (
	chanceAttack  int
	chanceDefense int
)

var chancesCmd = &cobra.Command{
	Use:   "chances",
	Short: "Show parry and dodge chances for a pair of stats",
	RunE:  runChances,
}

func init() {
	chancesCmd.Flags().IntVar(&chanceAttack, "attack", 0, "attack stat, drives parry chance")
	chancesCmd.Flags().IntVar(&chanceDefense, "defense", 0, "defense stat, drives dodge chance")
}

func runChances(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	svc, err := duel.NewOrchestrator(&duel.Config{
		EventBus:    events.NewBus(),
		IDGenerator: idgen.NewSequential("atk"),
		Clock:       clock.New(),
	})
	if err != nil {
		return fmt.Errorf("failed to create duel orchestrator: %w", err)
	}

	out, err := svc.GetChances(ctx, &duel.GetChancesInput{
		Attack:  chanceAttack,
		Defense: chanceDefense,
	})
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "parry: %d%%\ndodge: %d%%\n", out.ParryChance, out.DodgeChance)
	return nil
}
