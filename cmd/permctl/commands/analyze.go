package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/google/uuid"
	"github.com/spf13/cobra"

	"github.com/sifting/permcore/analysis"
)

// NewAnalyzeCommand registers generators and prints structural
// properties of the group they generate: derived-series length,
// solvability, nilpotency, and the tri-state simplicity verdict.
func NewAnalyzeCommand() *cobra.Command {
	var configPath string
	cmd := &cobra.Command{
		Use:   "analyze <cycle-notation>...",
		Short: "Print solvability, nilpotency and simplicity of a generated group",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runAnalyze(cmd.OutOrStdout(), args, configPath)
		},
	}
	cmd.Flags().StringVar(&configPath, "config", "", "path to a permctl safety-bounds config file")
	return cmd
}

func runAnalyze(w io.Writer, args []string, configPath string) error {
	safety, err := LoadSafetyConfig(configPath)
	if err != nil {
		return err
	}
	cfg := analysis.NewConfig(
		analysis.WithDerivedSeriesDepth(safety.DerivedSeriesDepth),
		analysis.WithLowerCentralDepth(safety.LowerCentralDepth),
		analysis.WithSylowTrialBudget(safety.SylowTrialBudget),
		analysis.WithSylowRestartBudget(safety.SylowRestartBudget),
		analysis.WithQuotientIndexBound(safety.QuotientIndexBound),
	)

	store, gens, err := registerGenerators(args)
	if err != nil {
		return err
	}

	series, err := analysis.DerivedSeries(store, gens, cfg)
	if err != nil {
		return fmt.Errorf("permctl: derived series: %w", err)
	}
	solvable, err := analysis.IsSolvable(store, gens, cfg)
	if err != nil {
		return fmt.Errorf("permctl: solvability: %w", err)
	}
	nilpotent, err := analysis.IsNilpotent(store, gens, cfg)
	if err != nil {
		return fmt.Errorf("permctl: nilpotency: %w", err)
	}
	simple, err := analysis.IsSimple(store, gens, cfg)
	if err != nil {
		return fmt.Errorf("permctl: simplicity: %w", err)
	}

	bold := color.New(color.Bold)
	bold.Fprintf(w, "run %s\n", uuid.New())
	fmt.Fprintf(w, "derived series length: %d\n", len(series)-1)
	fmt.Fprintf(w, "solvable:              %t\n", solvable)
	fmt.Fprintf(w, "nilpotent:             %t\n", nilpotent)

	simpleColor := color.New(color.FgYellow)
	if simple == 1 {
		simpleColor = color.New(color.FgGreen)
	} else if simple == 0 {
		simpleColor = color.New(color.FgRed)
	}
	simpleColor.Fprintf(w, "simple:                %s\n", simple)
	return nil
}
