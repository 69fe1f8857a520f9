// Package main provides the entry point for the permctl CLI tool.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sifting/permcore/cmd/permctl/commands"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "permctl",
		Short: "permctl inspects finite permutation groups from cycle-notation generators",
		Long: `permctl is a thin consumer of the permcore engine.

Commands:
  order    print a generated group's order, base and abelian-ness
  analyze  print derived-series length, solvability, nilpotency and simplicity
  sylow    compute a Sylow p-subgroup`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.AddCommand(commands.NewOrderCommand())
	rootCmd.AddCommand(commands.NewAnalyzeCommand())
	rootCmd.AddCommand(commands.NewSylowCommand())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
