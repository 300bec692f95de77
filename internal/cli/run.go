package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/abstat/internal/config"
	"github.com/wesleyorama2/abstat/internal/output"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Analyse the experiments and sample-size plans of a plan file",
	Long: `Loads a YAML or JSON plan file, evaluates every experiment with the
z-test and answers every sample-size plan. --experiment and --plan restrict
the run to a single entry.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		configFile, _ := cmd.Flags().GetString("config")
		experiment, _ := cmd.Flags().GetString("experiment")
		planName, _ := cmd.Flags().GetString("plan")

		opts, err := newRenderOptions(cmd)
		if err != nil {
			return err
		}

		// Load configuration
		plan, err := config.LoadPlan(configFile)
		if err != nil {
			return fmt.Errorf("error loading config: %w", err)
		}

		// Validate configuration
		errors := config.ValidatePlan(plan)
		if len(errors) > 0 {
			errOut := cmd.ErrOrStderr()
			fmt.Fprintln(errOut, "Configuration validation errors:")
			for _, err := range errors {
				fmt.Fprintf(errOut, "  - %s\n", err.Error())
			}
			return fmt.Errorf("%s has %d validation error(s)", configFile, len(errors))
		}

		experiments, sampleSizes, err := selectEntries(plan, experiment, planName)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		if opts.format == output.FormatText && plan.Name != "" {
			fmt.Fprintf(out, "▶ PLAN: %s (%d experiments, %d sample-size plans)\n\n", plan.Name, len(experiments), len(sampleSizes))
		}

		for i, exp := range experiments {
			res, err := stats.CompareSamples(exp.Control, exp.Treatment)
			if err != nil {
				return fmt.Errorf("experiment '%s': %w", exp.Name, err)
			}
			if i > 0 && opts.format == output.FormatText {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, opts.formatter.FormatSignificance(
				output.NewSignificanceReport(exp.Name, exp.Control, exp.Treatment, res)))
		}

		for i, p := range sampleSizes {
			res, err := stats.ComputeSampleSize(p.BaselineRate, p.MDE, p.EffectiveAlpha(plan.Settings), p.EffectivePower(plan.Settings))
			if err != nil {
				return fmt.Errorf("plan '%s': %w", p.Name, err)
			}
			if (i > 0 || len(experiments) > 0) && opts.format == output.FormatText {
				fmt.Fprintln(out)
			}
			fmt.Fprint(out, opts.formatter.FormatPower(output.PowerReport{Name: p.Name, Result: res}))
		}
		return nil
	},
}

// selectEntries applies the --experiment and --plan filters. With neither
// set every entry is selected; naming one kind skips the other kind
// unless it is named too.
func selectEntries(plan *config.Plan, experiment, planName string) ([]config.Experiment, []config.SampleSizePlan, error) {
	if experiment == "" && planName == "" {
		return plan.Experiments, plan.SampleSizes, nil
	}

	var experiments []config.Experiment
	var sampleSizes []config.SampleSizePlan
	if experiment != "" {
		exp, err := config.FindExperiment(plan, experiment)
		if err != nil {
			return nil, nil, err
		}
		experiments = append(experiments, *exp)
	}
	if planName != "" {
		p, err := config.FindSampleSizePlan(plan, planName)
		if err != nil {
			return nil, nil, err
		}
		sampleSizes = append(sampleSizes, *p)
	}
	return experiments, sampleSizes, nil
}

func init() {
	runCmd.Flags().StringP("config", "c", "", "Plan file (YAML or JSON)")
	runCmd.Flags().StringP("experiment", "e", "", "Only evaluate this experiment")
	runCmd.Flags().StringP("plan", "p", "", "Only answer this sample-size plan")
	runCmd.MarkFlagRequired("config")
}
