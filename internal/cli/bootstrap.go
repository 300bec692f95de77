package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/abstat/internal/output"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

var bootstrapCmd = &cobra.Command{
	Use:   "bootstrap",
	Short: "Estimate a confidence interval for the lift by resampling",
	Long: `Resamples both groups with replacement and reports the median relative
lift of the means with a 95% percentile interval:

  abstat bootstrap --control control.txt --treatment treatment.txt --seed 42`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		iterations, _ := cmd.Flags().GetInt("iterations")

		opts, err := newRenderOptions(cmd)
		if err != nil {
			return err
		}

		control, treatment, err := readArms(cmd)
		if err != nil {
			return err
		}

		bopts := stats.BootstrapOptions{Iterations: iterations}
		if cmd.Flags().Changed("seed") {
			seed, _ := cmd.Flags().GetInt64("seed")
			bopts.Seed = &seed
		}

		res, err := stats.BootstrapLift(control, treatment, bopts)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), opts.formatter.FormatBootstrap(output.BootstrapReport{Name: name, Result: res}))
		return nil
	},
}

func init() {
	addArmFlags(bootstrapCmd)
	bootstrapCmd.Flags().Int("iterations", stats.DefaultBootstrapIterations, "Number of resamples")
	bootstrapCmd.Flags().Int64("seed", 0, "Random seed for reproducible intervals")
}
