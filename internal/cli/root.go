package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/abstat/internal/output"
)

var version = "0.1.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:     "abstat",
	Short:   "Significance tests and sample-size planning for A/B experiments",
	Version: version,
	Long: `abstat compares a control and a treatment group. It runs a pooled
two-proportion z-test on conversion counts, a Student t-test or bootstrap on
continuous metrics, and answers how many samples per variant an experiment
needs to detect a given lift.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	Run: func(cmd *cobra.Command, args []string) {
		// If no subcommand is provided, print help
		cmd.Help()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() error {
	if err := RootCmd.Execute(); err != nil {
		noColor, _ := RootCmd.PersistentFlags().GetBool("no-color")
		fmt.Fprintf(os.Stderr, "%s Error: %v\n", output.ErrorIcon(noColor || !output.IsTerminal(os.Stderr)), err)
		return err
	}
	return nil
}

func init() {
	RootCmd.PersistentFlags().StringP("format", "f", string(output.FormatText), "Output format: text, json or yaml")
	RootCmd.PersistentFlags().Bool("no-color", false, "Disable colored output")
	RootCmd.PersistentFlags().BoolP("verbose", "v", false, "Show intermediate statistics")

	// Add subcommands to root command
	RootCmd.AddCommand(ztestCmd)
	RootCmd.AddCommand(powerCmd)
	RootCmd.AddCommand(ttestCmd)
	RootCmd.AddCommand(bootstrapCmd)
	RootCmd.AddCommand(runCmd)
}

// renderOptions are the global output flags of a command invocation.
type renderOptions struct {
	format    output.OutputFormat
	verbose   bool
	noColor   bool
	formatter output.FormatProvider
}

func newRenderOptions(cmd *cobra.Command) (*renderOptions, error) {
	formatFlag, _ := cmd.Flags().GetString("format")
	verbose, _ := cmd.Flags().GetBool("verbose")
	noColor, _ := cmd.Flags().GetBool("no-color")

	format, err := output.ParseFormat(formatFlag)
	if err != nil {
		return nil, err
	}

	// Colors only make sense on a terminal
	if !output.IsTerminal(os.Stdout) {
		noColor = true
	}

	return &renderOptions{
		format:    format,
		verbose:   verbose,
		noColor:   noColor,
		formatter: output.GetFormatter(format, verbose, noColor),
	}, nil
}
