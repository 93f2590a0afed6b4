// Package main is the entry point for the duel CLI
package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/KirkDiggler/rpg-duel/internal/errors"
)

var (
	verbose bool
	envCfg  envConfig
)

var rootCmd = &cobra.Command{
	Use:   "duel",
	Short: "Resolve attacks between two combatants",
	Long:  `duel resolves single attacks between a player and an opponent, each carrying one weapon and one magic.`,
	// main prints the error with its status code
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadEnvConfig()
		if err != nil {
			return err
		}
		envCfg = cfg

		level, err := cfg.logLevel()
		if err != nil {
			return err
		}
		if verbose {
			level = slog.LevelDebug
		}
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
		return nil
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		st := errors.ToStatus(err)
		fmt.Fprintf(os.Stderr, "Error: %s\n", st.Message())
		os.Exit(exitCode(st))
	}
}

// exitCode is the status code number, 1 for errors that carry no code
func exitCode(st *status.Status) int {
	switch st.Code() {
	case codes.OK, codes.Unknown:
		return 1
	default:
		return int(st.Code())
	}
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "log resolution details to stderr")

	rootCmd.AddCommand(attackCmd)
	rootCmd.AddCommand(chancesCmd)
	rootCmd.AddCommand(armoryCmd)
}
