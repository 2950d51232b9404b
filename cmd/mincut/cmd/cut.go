package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/katalvlaran/mincut/graphio"
	"github.com/katalvlaran/mincut/sqrtcut"
)

var (
	// Cut command flags; viper-backed so MINCUT_* env and mincut.yaml can
	// override the defaults.
	cutProbability float64
	cutSeed        int64
	cutWorkers     int
	cutMultiplier  float64
	cutClickSize   int
)

// cutCmd runs the square-root cut on a graph file or the CLICK generator.
var cutCmd = &cobra.Command{
	Use:   "cut INPUT_FILE|CLICK",
	Short: "Compute a minimum-cut upper bound",
	Long: `Compute an upper bound on the minimum cut of the given input.

INPUT_FILE names a text graph ("<vertices> <edges>" header followed by
"<u> <v> <w>" lines); the literal CLICK selects the built-in synthetic
clustered input sized by --size.

On success a single CSV line is printed:
input,seed,processors,vertices,edges,cutting_s,comm_s,trials,variant,weight`,
	Example: `  # A graph file, 4 workers, 95% success probability
  mincut cut graph.txt -w 4 -p 0.95 --seed 7

  # The CLICK model on 200 vertices
  mincut cut CLICK --size 200 --seed 42 -w 8`,
	Args: cobra.ExactArgs(1),
	RunE: runCut,
}

func init() {
	rootCmd.AddCommand(cutCmd)

	defaults := sqrtcut.DefaultOptions()
	cutCmd.Flags().Float64VarP(&cutProbability, "probability", "p", defaults.SuccessProbability,
		"success probability in (0,1)")
	cutCmd.Flags().Int64Var(&cutSeed, "seed", defaults.Seed, "base random seed (0 = fixed default stream)")
	cutCmd.Flags().IntVarP(&cutWorkers, "workers", "w", defaults.Workers, "number of worker processes")
	cutCmd.Flags().Float64Var(&cutMultiplier, "multiplier", defaults.BaseCaseMultiplier,
		"shrinking constant c in the intermediate size ceil(c*sqrt(m)+1)")
	cutCmd.Flags().IntVar(&cutClickSize, "size", 200, "vertex count for the CLICK input")

	for _, flag := range []string{"probability", "seed", "workers", "multiplier", "size"} {
		// Binding cannot fail for flags registered above.
		_ = viper.BindPFlag(flag, cutCmd.Flags().Lookup(flag))
	}
}

func runCut(cmd *cobra.Command, args []string) error {
	var input sqrtcut.Input
	if args[0] == "CLICK" {
		input = graphio.NewClick(viper.GetInt("size"))
	} else {
		reader, err := graphio.Open(args[0])
		if err != nil {
			return err
		}
		input = reader
	}

	opts := sqrtcut.Options{
		SuccessProbability: viper.GetFloat64("probability"),
		Seed:               viper.GetInt64("seed"),
		Workers:            viper.GetInt("workers"),
		BaseCaseMultiplier: viper.GetFloat64("multiplier"),
	}

	result, err := sqrtcut.Run(input, opts)
	if err != nil {
		return err
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.CSV())

	return nil
}
