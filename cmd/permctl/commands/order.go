package commands

import (
	"fmt"
	"io"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sifting/permcore/schreier"
)

// NewOrderCommand registers each cycle-notation argument as a
// generator, builds a Schreier–Sims chain, and prints the group's
// order, base, and whether it is abelian.
func NewOrderCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "order <cycle-notation>...",
		Short: "Print the order, base and abelian-ness of a generated group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runOrder(cmd.OutOrStdout(), args)
		},
	}
}

func runOrder(w io.Writer, args []string) error {
	store, gens, err := registerGenerators(args)
	if err != nil {
		return err
	}
	chain := schreier.Compute(store, gens)
	runID := uuid.New()

	bold := color.New(color.Bold)
	bold.Fprintf(w, "run %s\n", runID)
	fmt.Fprintf(w, "order:   %s\n", humanize.BigComma(chain.Order()))
	fmt.Fprintf(w, "base:    %v\n", chain.Base())
	fmt.Fprintf(w, "abelian: %t\n", gens.IsAbelian(store))
	return nil
}
