package cmd

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// rootCmd represents the base command.
var rootCmd = &cobra.Command{
	Use:   "mincut",
	Short: "Distributed Monte-Carlo minimum cut",
	Long: `mincut computes (or approximates) the minimum edge cut of a large,
undirected, positively weighted graph using a cluster of cooperating workers.

The engine shrinks the graph by iterated sparse sampling, contracts the
remainder recursively on a row-striped dense matrix, and schedules enough
independent Monte-Carlo trials to reach a caller-chosen success probability.
The reported weight is always an upper bound on the true minimum cut.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute runs the command tree. Any failure prints a diagnostic to stderr
// and exits with a non-zero status.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "mincut:", err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
}

// initConfig wires viper: an optional mincut.yaml in the working directory
// and MINCUT_* environment variables override flag defaults.
func initConfig() {
	viper.SetConfigName("mincut")
	viper.SetConfigType("yaml")
	viper.AddConfigPath(".")

	viper.SetEnvPrefix("mincut")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	// A missing config file is fine; only parse failures are fatal.
	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			fmt.Fprintln(os.Stderr, "mincut: config:", err)
			os.Exit(1)
		}
	}
}
