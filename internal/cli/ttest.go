package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/abstat/internal/metrics"
	"github.com/wesleyorama2/abstat/internal/output"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

var ttestCmd = &cobra.Command{
	Use:   "ttest",
	Short: "Compare the means of a continuous metric",
	Long: `Runs Student's two-sample t-test (pooled variance) on per-user metric
values such as time on page or revenue:

  abstat ttest --control control.txt --treatment treatment.txt`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")

		opts, err := newRenderOptions(cmd)
		if err != nil {
			return err
		}

		control, treatment, err := readArms(cmd)
		if err != nil {
			return err
		}

		res, err := stats.EvaluateMeans(control, treatment)
		if err != nil {
			return err
		}

		controlSummary, err := metrics.Summarize(control)
		if err != nil {
			return err
		}
		treatmentSummary, err := metrics.Summarize(treatment)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), opts.formatter.FormatTTest(
			output.NewTTestReport(name, controlSummary, treatmentSummary, res)))
		return nil
	},
}

func init() {
	addArmFlags(ttestCmd)
}
