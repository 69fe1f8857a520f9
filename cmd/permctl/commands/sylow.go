package commands

import (
	"fmt"
	"io"
	"strconv"

	"github.com/dustin/go-humanize"
	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sifting/permcore/analysis"
	"github.com/sifting/permcore/schreier"
)

// NewSylowCommand computes and prints a Sylow p-subgroup's generators
// and order for the group generated by the given cycle notation.
func NewSylowCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "sylow <prime> <cycle-notation>...",
		Short: "Compute a Sylow p-subgroup of a generated group",
		Args:  cobra.MinimumNArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runSylow(cmd.OutOrStdout(), args, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a permctl safety-bounds config file")
	return cmd
}

func runSylow(w io.Writer, args []string, configPath string) error {
	p, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("permctl: prime argument %q: %w", args[0], err)
	}

	safety, err := LoadSafetyConfig(configPath)
	if err != nil {
		return err
	}
	cfg := analysis.NewConfig(
		analysis.WithSylowTrialBudget(safety.SylowTrialBudget),
		analysis.WithSylowRestartBudget(safety.SylowRestartBudget),
	)

	store, gens, err := registerGenerators(args[1:])
	if err != nil {
		return err
	}
	g := schreier.Compute(store, gens)

	sylow, err := analysis.SylowSubgroup(store, g, p, cfg)
	if err != nil {
		return fmt.Errorf("permctl: sylow search: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Fprintf(w, "run %s\n", uuid.New())
	fmt.Fprintf(w, "|G|:        %s\n", humanize.BigComma(g.Order()))
	fmt.Fprintf(w, "|Syl_%d(G)|: %s\n", p, humanize.BigComma(sylow.Order()))
	fmt.Fprintf(w, "generators: %v\n", sylow.AllStrongGenerators())
	return nil
}
