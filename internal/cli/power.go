package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/abstat/internal/output"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

var powerCmd = &cobra.Command{
	Use:   "power",
	Short: "Compute the sample size needed per variant",
	Long: `Computes how many samples each variant needs to detect a relative
change of --mde on top of --baseline:

  abstat power --baseline 0.10 --mde 0.05`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		baseline, _ := cmd.Flags().GetFloat64("baseline")
		mde, _ := cmd.Flags().GetFloat64("mde")
		alpha, _ := cmd.Flags().GetFloat64("alpha")
		power, _ := cmd.Flags().GetFloat64("power")

		opts, err := newRenderOptions(cmd)
		if err != nil {
			return err
		}

		res, err := stats.ComputeSampleSize(baseline, mde, alpha, power)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), opts.formatter.FormatPower(output.PowerReport{Name: name, Result: res}))
		return nil
	},
}

func init() {
	powerCmd.Flags().StringP("name", "n", "", "Plan name shown in the report")
	powerCmd.Flags().Float64("baseline", 0, "Baseline conversion rate, e.g. 0.10")
	powerCmd.Flags().Float64("mde", 0, "Minimum detectable effect as a relative change, e.g. 0.05")
	powerCmd.Flags().Float64("alpha", stats.DefaultAlpha, "Significance level")
	powerCmd.Flags().Float64("power", stats.DefaultPower, "Statistical power")
	powerCmd.MarkFlagRequired("baseline")
	powerCmd.MarkFlagRequired("mde")
}
