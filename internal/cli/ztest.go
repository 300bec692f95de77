package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/wesleyorama2/abstat/internal/config"
	"github.com/wesleyorama2/abstat/internal/output"
	"github.com/wesleyorama2/abstat/pkg/stats"
)

var ztestCmd = &cobra.Command{
	Use:   "ztest [CONTROL_CONVERSIONS CONTROL_TOTAL TREATMENT_CONVERSIONS TREATMENT_TOTAL]",
	Short: "Test whether two conversion rates differ significantly",
	Long: `Runs a pooled two-proportion z-test on conversion counts.

Counts are given as four positional arguments, or read from a JSON export
with --json and JSONPath expressions:

  abstat ztest 358 4216 425 4216
  abstat ztest --json export.json --control-total-path '$.variants[0].users'`,
	Args: func(cmd *cobra.Command, args []string) error {
		jsonFile, _ := cmd.Flags().GetString("json")
		if jsonFile != "" {
			return cobra.NoArgs(cmd, args)
		}
		return cobra.ExactArgs(4)(cmd, args)
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		name, _ := cmd.Flags().GetString("name")
		jsonFile, _ := cmd.Flags().GetString("json")

		opts, err := newRenderOptions(cmd)
		if err != nil {
			return err
		}

		var control, treatment stats.ProportionSample
		if jsonFile != "" {
			control, treatment, err = readSamplesFromJSON(cmd, jsonFile)
		} else {
			control, treatment, err = parseSampleArgs(args)
		}
		if err != nil {
			return err
		}

		res, err := stats.CompareSamples(control, treatment)
		if err != nil {
			return err
		}

		fmt.Fprint(cmd.OutOrStdout(), opts.formatter.FormatSignificance(
			output.NewSignificanceReport(name, control, treatment, res)))
		return nil
	},
}

func parseSampleArgs(args []string) (stats.ProportionSample, stats.ProportionSample, error) {
	names := []string{"control conversions", "control total", "treatment conversions", "treatment total"}
	counts := make([]int64, len(args))
	for i, arg := range args {
		v, err := strconv.ParseInt(arg, 10, 64)
		if err != nil {
			return stats.ProportionSample{}, stats.ProportionSample{}, fmt.Errorf("invalid %s: %q is not an integer", names[i], arg)
		}
		counts[i] = v
	}
	return stats.ProportionSample{Conversions: counts[0], Total: counts[1]},
		stats.ProportionSample{Conversions: counts[2], Total: counts[3]}, nil
}

func readSamplesFromJSON(cmd *cobra.Command, file string) (stats.ProportionSample, stats.ProportionSample, error) {
	data, err := os.ReadFile(file)
	if err != nil {
		return stats.ProportionSample{}, stats.ProportionSample{}, fmt.Errorf("failed to read export: %w", err)
	}

	controlConversions, _ := cmd.Flags().GetString("control-conversions-path")
	controlTotal, _ := cmd.Flags().GetString("control-total-path")
	treatmentConversions, _ := cmd.Flags().GetString("treatment-conversions-path")
	treatmentTotal, _ := cmd.Flags().GetString("treatment-total-path")

	control, err := config.ReadSample(string(data), config.SamplePaths{Conversions: controlConversions, Total: controlTotal})
	if err != nil {
		return stats.ProportionSample{}, stats.ProportionSample{}, fmt.Errorf("control: %w", err)
	}
	treatment, err := config.ReadSample(string(data), config.SamplePaths{Conversions: treatmentConversions, Total: treatmentTotal})
	if err != nil {
		return stats.ProportionSample{}, stats.ProportionSample{}, fmt.Errorf("treatment: %w", err)
	}
	return control, treatment, nil
}

func init() {
	ztestCmd.Flags().StringP("name", "n", "", "Experiment name shown in the report")
	ztestCmd.Flags().String("json", "", "Read counts from a JSON export")
	ztestCmd.Flags().String("control-conversions-path", "$.control.conversions", "JSONPath to the control conversions")
	ztestCmd.Flags().String("control-total-path", "$.control.total", "JSONPath to the control sample size")
	ztestCmd.Flags().String("treatment-conversions-path", "$.treatment.conversions", "JSONPath to the treatment conversions")
	ztestCmd.Flags().String("treatment-total-path", "$.treatment.total", "JSONPath to the treatment sample size")
}
