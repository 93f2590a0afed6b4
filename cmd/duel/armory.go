package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/KirkDiggler/rpg-duel/internal/entities"
	"github.com/KirkDiggler/rpg-duel/internal/services/armory"
)

var armoryCmd = &cobra.Command{
	Use:   "armory",
	Short: "List the weapons and magic combatants can be equipped with",
	RunE:  runArmory,
}

func runArmory(cmd *cobra.Command, args []string) error {
	tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tNAME\tDAMAGE\tDEFENSE\tCATEGORY\tRANGE")

	write := func(pool []*entities.Capability) {
		for _, c := range pool {
			fmt.Fprintf(tw, "%s\t%s\t%d\t%d\t%s\t%s\n",
				c.Kind(), c.Name(), c.Damage(), c.Defense(), c.Category(), c.Range())
		}
	}
	write(armory.DefaultWeapons())
	write(armory.DefaultMagic())

	return tw.Flush()
}
